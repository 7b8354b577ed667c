package handlers

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

const (
	maxNameLength    = 100
	maxMessageLength = 1000
)

// formValue returns a trimmed copy of a form field. Fiber's strings point
// into the request buffer, which is reused once the handler returns.
func formValue(c *fiber.Ctx, fieldName string) string {
	return utils.CopyString(strings.TrimSpace(c.FormValue(fieldName)))
}

// ValidateRequired returns the trimmed form field, or an error with message when it is empty
func ValidateRequired(c *fiber.Ctx, fieldName, message string) (string, error) {
	value := formValue(c, fieldName)
	if value == "" {
		return "", errors.New(message)
	}
	return value, nil
}

// ValidateMaxLength checks a value's length in characters, not bytes
func ValidateMaxLength(value string, max int, displayName string) error {
	if utf8.RuneCountInString(value) > max {
		return fmt.Errorf("%s is too long.", displayName)
	}
	return nil
}

// ParseIntParam parses an integer parameter from the URL with consistent error handling
func ParseIntParam(c *fiber.Ctx, paramName, displayName string) (int, error) {
	value, err := c.ParamsInt(paramName)
	if err != nil {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Invalid "+displayName)
	}
	return value, nil
}

// validatePhone accepts digits with an optional leading plus and the usual
// separators, 7 to 15 digits in total.
func validatePhone(phone string) bool {
	digits := 0
	for i, r := range phone {
		switch {
		case unicode.IsDigit(r):
			digits++
		case r == '+' && i == 0:
		case r == ' ' || r == '-' || r == '(' || r == ')':
		default:
			return false
		}
	}
	return digits >= 7 && digits <= 15
}

// enquiryForm is a validated callback request before it is matched to a vehicle
type enquiryForm struct {
	name      string
	phone     string
	vehicleID string
	message   string
}

// ValidateEnquiryForm checks the enquiry fields in the order the form shows them
func ValidateEnquiryForm(c *fiber.Ctx) (enquiryForm, error) {
	var (
		form enquiryForm
		err  error
	)

	if form.name, err = ValidateRequired(c, "name", "Please enter your name."); err != nil {
		return form, err
	}
	if err = ValidateMaxLength(form.name, maxNameLength, "Name"); err != nil {
		return form, err
	}
	if form.phone, err = ValidateRequired(c, "phone", "Please enter a phone number."); err != nil {
		return form, err
	}
	if !validatePhone(form.phone) {
		return form, errors.New("Please enter a valid phone number.")
	}

	form.message = formValue(c, "message")
	if err = ValidateMaxLength(form.message, maxMessageLength, "Message"); err != nil {
		return form, err
	}
	form.vehicleID = formValue(c, "vehicle_id")
	return form, nil
}
