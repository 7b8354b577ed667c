package handlers

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/d-one-motors/site/config"
	"github.com/d-one-motors/site/metrics"
	"github.com/d-one-motors/site/sms"
	"github.com/d-one-motors/site/ui"
)

// enquiryError answers htmx with a 200 so the message is swapped in;
// plain form posts get the real status.
func enquiryError(c *fiber.Ctx, status int, message string) error {
	if isHTMX(c) {
		status = fiber.StatusOK
	}
	return renderStatus(c, status, ui.EnquiryError(message))
}

func (s *Site) HandleEnquiry(c *fiber.Ctx) error {
	form, err := ValidateEnquiryForm(c)
	if err != nil {
		s.Metrics.ObserveEnquiry(metrics.OutcomeInvalid)
		return enquiryError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	enquiry := sms.Enquiry{
		Reference: uuid.NewString(),
		Name:      form.name,
		Phone:     form.phone,
		Message:   form.message,
		Received:  time.Now(),
	}
	if form.vehicleID != "" {
		v, ok := s.Catalog.Resolve(form.vehicleID)
		if !ok {
			s.Metrics.ObserveEnquiry(metrics.OutcomeInvalid)
			return enquiryError(c, fiber.StatusUnprocessableEntity, "This vehicle is no longer available.")
		}
		enquiry.VehicleID = v.ID
		enquiry.VehicleTitle = v.Title()
	}

	if err := s.Enquiries.Submit(enquiry); err != nil {
		if errors.Is(err, sms.ErrThrottled) {
			s.Metrics.ObserveEnquiry(metrics.OutcomeThrottled)
			return enquiryError(c, fiber.StatusTooManyRequests,
				"We are receiving many requests right now. Please call us at "+config.DealerPhone+".")
		}
		s.Metrics.ObserveEnquiry(metrics.OutcomeFailed)
		log.Printf("[enquiry] Could not queue %s: %v", enquiry.Reference, err)
		return enquiryError(c, fiber.StatusServiceUnavailable,
			"We could not send your request. Please call us at "+config.DealerPhone+".")
	}

	s.Metrics.ObserveEnquiry(metrics.OutcomeAccepted)
	log.Printf("[enquiry] Accepted %s for vehicle %q", enquiry.Reference, enquiry.VehicleID)
	return render(c, ui.EnquiryAccepted(enquiry.Reference))
}
