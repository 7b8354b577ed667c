package metrics

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveQuery(t *testing.T) {
	m := New()

	m.ObserveQuery("BMW", true, "price-asc")
	m.ObserveQuery("BMW", true, "price-asc")
	m.ObserveQuery("<script>", false, "default")
	m.ObserveQuery("Tesla", false, "default")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.queries.WithLabelValues("BMW", "price-asc")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.queries.WithLabelValues(OtherBrand, "default")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.queries))
}

func TestObserveOutcomes(t *testing.T) {
	m := New()

	m.ObserveResolve(true)
	m.ObserveResolve(false)
	m.ObserveResolve(false)
	m.ObserveEnquiry(OutcomeAccepted)
	m.ObserveThumb(OutcomeMiss)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.resolves.WithLabelValues(OutcomeFound)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.resolves.WithLabelValues(OutcomeNotFound)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.enquiries.WithLabelValues(OutcomeAccepted)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.thumbs.WithLabelValues(OutcomeMiss)))
}

func TestHandler(t *testing.T) {
	m := New()
	m.ObserveQuery("Porsche", true, "newest")

	app := fiber.New()
	app.Get("/metrics", m.Handler())

	resp, err := app.Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `catalog_queries_total{brand="Porsche",sort="newest"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}
