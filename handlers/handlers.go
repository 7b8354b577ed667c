// Package handlers serves the dealership site over fiber.
package handlers

import (
	"github.com/d-one-motors/site/catalog"
	"github.com/d-one-motors/site/metrics"
	"github.com/d-one-motors/site/sms"
	"github.com/d-one-motors/site/thumb"
)

// EnquirySubmitter queues an enquiry for delivery to the dealer.
type EnquirySubmitter interface {
	Submit(e sms.Enquiry) error
}

// ThumbRenderer renders a gallery image at one of the thumbnail widths.
type ThumbRenderer interface {
	Render(src string, width int) ([]byte, bool, error)
}

// Site holds what the handlers read. The catalog is shared read-only by
// every request.
type Site struct {
	Catalog   *catalog.Catalog
	Thumbs    ThumbRenderer
	Enquiries EnquirySubmitter
	Metrics   *metrics.Metrics
	// BaseURL is the public origin used in the sitemap.
	BaseURL string
	// Source describes where the inventory was loaded from.
	Source string
}

var _ ThumbRenderer = (*thumb.Renderer)(nil)
var _ EnquirySubmitter = (*sms.Dispatcher)(nil)
