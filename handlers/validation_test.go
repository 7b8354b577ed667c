package handlers

import (
	"io"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// postForm runs handler against a urlencoded POST and returns the body
func postForm(t *testing.T, form url.Values, handler fiber.Handler) (int, string) {
	t.Helper()
	app := fiber.New()
	app.Post("/", handler)

	req := httptest.NewRequest("POST", "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := app.Test(req)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestValidateRequired(t *testing.T) {
	tests := []struct {
		name        string
		fieldValue  string
		expectError bool
		expected    string
	}{
		{name: "valid required field", fieldValue: "Aziz", expected: "Aziz"},
		{name: "surrounding space trimmed", fieldValue: "  Aziz ", expected: "Aziz"},
		{name: "empty required field", fieldValue: "", expectError: true},
		{name: "blank required field", fieldValue: "   ", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, body := postForm(t, url.Values{"name": {tt.fieldValue}}, func(c *fiber.Ctx) error {
				value, err := ValidateRequired(c, "name", "Please enter your name.")
				if err != nil {
					return c.SendString("error: " + err.Error())
				}
				return c.SendString(value)
			})

			if tt.expectError {
				assert.Equal(t, "error: Please enter your name.", body)
			} else {
				assert.Equal(t, tt.expected, body)
			}
		})
	}
}

func TestValidateMaxLength(t *testing.T) {
	assert.NoError(t, ValidateMaxLength("Ёлка", 4, "Name"))
	assert.EqualError(t, ValidateMaxLength("Ёлка!", 4, "Name"), "Name is too long.")
	assert.NoError(t, ValidateMaxLength("", 0, "Message"))
}

func TestParseIntParam(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: CustomErrorHandler})
	app.Get("/img/:idx", func(c *fiber.Ctx) error {
		idx, err := ParseIntParam(c, "idx", "image index")
		if err != nil {
			return err
		}
		return c.JSON(idx)
	})

	tests := []struct {
		path   string
		status int
	}{
		{"/img/2", 200},
		{"/img/0", 200},
		{"/img/two", 400},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", tt.path, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}

func TestValidateEnquiryForm(t *testing.T) {
	tests := []struct {
		name     string
		form     url.Values
		expected string
	}{
		{
			name:     "complete",
			form:     url.Values{"name": {"Aziz"}, "phone": {"+998 90 111 22 33"}, "vehicle_id": {" bmw-m5 "}, "message": {"Is it available?"}},
			expected: "Aziz|+998 90 111 22 33|bmw-m5|Is it available?",
		},
		{
			name:     "general enquiry",
			form:     url.Values{"name": {"Aziz"}, "phone": {"+998901112233"}},
			expected: "Aziz|+998901112233||",
		},
		{
			name:     "name too long",
			form:     url.Values{"name": {strings.Repeat("a", maxNameLength+1)}, "phone": {"+998901112233"}},
			expected: "error: Name is too long.",
		},
		{
			name:     "message too long",
			form:     url.Values{"name": {"Aziz"}, "phone": {"+998901112233"}, "message": {strings.Repeat("x", maxMessageLength+1)}},
			expected: "error: Message is too long.",
		},
		{
			name:     "bad phone",
			form:     url.Values{"name": {"Aziz"}, "phone": {"12345"}},
			expected: "error: Please enter a valid phone number.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, body := postForm(t, tt.form, func(c *fiber.Ctx) error {
				f, err := ValidateEnquiryForm(c)
				if err != nil {
					return c.SendString("error: " + err.Error())
				}
				return c.SendString(strings.Join([]string{f.name, f.phone, f.vehicleID, f.message}, "|"))
			})
			assert.Equal(t, tt.expected, body)
		})
	}
}

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		phone    string
		expected bool
	}{
		{"+998908186030", true},
		{"+998 90 818-60-30", true},
		{"(202) 555-0123", true},
		{"12345", false},
		{"+1234567890123456", false},
		{"90+8186030", false},
		{"call me", false},
	}

	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			assert.Equal(t, tt.expected, validatePhone(tt.phone))
		})
	}
}
