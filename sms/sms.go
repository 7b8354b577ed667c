// Package sms tells the dealer about new enquiries by text message.
package sms

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/twilio/twilio-go"
	Api "github.com/twilio/twilio-go/rest/api/v2010"
)

// Enquiry is a visitor's request to be contacted.
type Enquiry struct {
	Reference    string
	Name         string
	Phone        string
	VehicleID    string
	VehicleTitle string
	Message      string
	Received     time.Time
}

// Body is the text message sent to the dealer.
func (e Enquiry) Body() string {
	var b strings.Builder
	fmt.Fprintf(&b, "New enquiry %s from %s (%s)", e.Reference, e.Name, e.Phone)
	if e.VehicleTitle != "" {
		fmt.Fprintf(&b, " about %s", e.VehicleTitle)
	}
	if e.Message != "" {
		fmt.Fprintf(&b, ": %s", e.Message)
	}
	return b.String()
}

// Notifier delivers an enquiry to the dealer.
type Notifier interface {
	Notify(ctx context.Context, e Enquiry) error
}

// messageCreator is the part of the Twilio API client the notifier uses.
type messageCreator interface {
	CreateMessage(params *Api.CreateMessageParams) (*Api.ApiV2010Message, error)
}

type TwilioNotifier struct {
	api  messageCreator
	from string
	to   string
}

// NewTwilioNotifier sends enquiries from the given Twilio number to the
// dealer's phone.
func NewTwilioNotifier(accountSID, authToken, from, to string) (*TwilioNotifier, error) {
	if accountSID == "" || authToken == "" || from == "" {
		return nil, fmt.Errorf("missing Twilio configuration")
	}
	if to == "" {
		return nil, fmt.Errorf("missing dealer phone number")
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})

	return &TwilioNotifier{api: client.Api, from: from, to: to}, nil
}

func (t *TwilioNotifier) Notify(ctx context.Context, e Enquiry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	params := &Api.CreateMessageParams{}
	params.SetTo(t.to)
	params.SetFrom(t.from)
	params.SetBody(e.Body())

	if _, err := t.api.CreateMessage(params); err != nil {
		log.Printf("[SMS] Failed to send enquiry %s: %v", e.Reference, err)
		return fmt.Errorf("failed to send SMS: %w", err)
	}

	log.Printf("[SMS] Enquiry %s sent to %s", e.Reference, t.to)
	return nil
}

// LogNotifier only logs enquiries. It is used when Twilio is not
// configured and in tests.
type LogNotifier struct {
	mu   sync.Mutex
	sent []Enquiry
}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (l *LogNotifier) Notify(_ context.Context, e Enquiry) error {
	l.mu.Lock()
	l.sent = append(l.sent, e)
	l.mu.Unlock()
	log.Printf("[MOCK SMS] %s", e.Body())
	return nil
}

// Sent returns a copy of every enquiry seen so far.
func (l *LogNotifier) Sent() []Enquiry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Enquiry(nil), l.sent...)
}
