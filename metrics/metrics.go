// Package metrics counts catalog traffic for Prometheus.
package metrics

import (
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
)

// OtherBrand labels catalog queries for brands outside the enumeration so
// arbitrary query strings cannot grow label cardinality.
const OtherBrand = "other"

const (
	OutcomeFound    = "found"
	OutcomeNotFound = "not_found"

	OutcomeAccepted  = "accepted"
	OutcomeInvalid   = "invalid"
	OutcomeThrottled = "throttled"
	OutcomeDelivered = "delivered"
	OutcomeFailed    = "failed"

	OutcomeHit   = "hit"
	OutcomeMiss  = "miss"
	OutcomeError = "error"
)

type Metrics struct {
	registry  *prometheus.Registry
	queries   *prometheus.CounterVec
	resolves  *prometheus.CounterVec
	enquiries *prometheus.CounterVec
	thumbs    *prometheus.CounterVec
}

// New registers the site's collectors, plus Go runtime and process
// collectors, on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		queries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "catalog_queries_total",
			Help: "Catalog listings served, by brand filter and sort mode.",
		}, []string{"brand", "sort"}),
		resolves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "catalog_resolves_total",
			Help: "Vehicle detail lookups by outcome.",
		}, []string{"outcome"}),
		enquiries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "enquiries_total",
			Help: "Enquiry submissions and deliveries by outcome.",
		}, []string{"outcome"}),
		thumbs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "thumbnails_total",
			Help: "Thumbnail requests by cache outcome.",
		}, []string{"outcome"}),
	}

	m.registry.MustRegister(
		m.queries,
		m.resolves,
		m.enquiries,
		m.thumbs,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveQuery counts a listing. known says whether brand is one of the
// catalog's brands.
func (m *Metrics) ObserveQuery(brand string, known bool, sort string) {
	if !known {
		brand = OtherBrand
	}
	m.queries.WithLabelValues(brand, sort).Inc()
}

func (m *Metrics) ObserveResolve(found bool) {
	outcome := OutcomeNotFound
	if found {
		outcome = OutcomeFound
	}
	m.resolves.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveEnquiry(outcome string) {
	m.enquiries.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveThumb(outcome string) {
	m.thumbs.WithLabelValues(outcome).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() fiber.Handler {
	h := fasthttpadaptor.NewFastHTTPHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
	return func(c *fiber.Ctx) error {
		h(c.Context())
		return nil
	}
}
