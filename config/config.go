// Package config holds site tunables and the settings read from the
// environment at startup.
package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	// SiteName is shown in page titles and the footer.
	SiteName = "D-ONE Motors"

	ServerReadTimeout  = 30 * time.Second
	ServerWriteTimeout = 30 * time.Second

	// ThumbCacheMaxCost bounds the encoded thumbnail cache in bytes.
	ThumbCacheMaxCost = 64 << 20
	// ThumbFetchTimeout bounds a single remote gallery image fetch.
	ThumbFetchTimeout = 10 * time.Second
	// ThumbMaxAge is the Cache-Control max-age for rendered thumbnails.
	ThumbMaxAge = 7 * 24 * time.Hour

	// EnquiryRate is the sustained number of dealer SMS per second.
	EnquiryRate = 0.2
	// EnquiryBurst is how many enquiries may be notified back to back.
	EnquiryBurst = 5

	TailwindCDN = "https://cdn.tailwindcss.com"
	HTMXCDN     = "https://unpkg.com/htmx.org@2.0.4"
)

// Dealer contact details.
const (
	DealerPhone        = "+998 90 818 60 30"
	DealerPhoneLink    = "tel:+998908186030"
	DealerTelegram     = "https://t.me/donemotors"
	DealerEmail        = "info@d-one-motors.uz"
	DealerAddress      = "Muqimiy Street, 7, Tashkent"
	DealerHours        = "Open daily until 9:00 PM"
	DealerMapLink      = "https://yandex.com/maps/-/CPa1NT-5"
	DealerFoundedYears = 5
)

// Config is the environment-backed part of the configuration.
type Config struct {
	Port          string
	InventoryPath string
	DatabaseURL   string
	BaseURL       string
	StaticDir     string

	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFromNumber string
	// NotifyPhone receives enquiry SMS.
	NotifyPhone string

	RateLimitMax int
	RateLimitExp time.Duration
}

// Load reads an optional .env file and returns the populated Config.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	return &Config{
		Port:          getEnv("PORT", "8000"),
		InventoryPath: getEnv("INVENTORY_PATH", ""),
		DatabaseURL:   getEnv("DATABASE_URL", ""),
		BaseURL:       getEnv("SITE_BASE_URL", "https://d-one-motors.uz"),
		StaticDir:     getEnv("STATIC_DIR", "./static"),

		TwilioAccountSID: getEnv("TWILIO_ACCOUNT_SID", ""),
		TwilioAuthToken:  getEnv("TWILIO_AUTH_TOKEN", ""),
		TwilioFromNumber: getEnv("TWILIO_FROM_NUMBER", ""),
		NotifyPhone:      getEnv("DEALER_PHONE", "+998908186030"),

		RateLimitMax: getEnvInt("RATE_LIMIT_MAX", 120),
		RateLimitExp: getEnvDuration("RATE_LIMIT_EXP", time.Minute),
	}
}

// TwilioEnabled reports whether every Twilio credential is present.
func (c *Config) TwilioEnabled() bool {
	return c.TwilioAccountSID != "" && c.TwilioAuthToken != "" && c.TwilioFromNumber != ""
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		d, err := time.ParseDuration(val)
		if err == nil {
			return d
		}
	}
	return fallback
}
