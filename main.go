package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/d-one-motors/site/cache"
	"github.com/d-one-motors/site/catalog"
	"github.com/d-one-motors/site/config"
	h "github.com/d-one-motors/site/handlers"
	"github.com/d-one-motors/site/inventory"
	"github.com/d-one-motors/site/metrics"
	"github.com/d-one-motors/site/sms"
	"github.com/d-one-motors/site/thumb"
)

func main() {
	cfg := config.Load()

	// Load the inventory once; it is read-only from here on
	source := inventory.Source{DatabaseURL: cfg.DatabaseURL, Path: cfg.InventoryPath}
	vehicles, err := inventory.Load(source)
	if err != nil {
		log.Fatalf("Failed to load inventory: %v", err)
	}
	cat := catalog.New(vehicles)

	thumbCache, err := cache.New[[]byte]("thumbnails", config.ThumbCacheMaxCost, func(b []byte) int64 {
		return int64(len(b))
	})
	if err != nil {
		log.Fatalf("Failed to initialize thumbnail cache: %v", err)
	}
	defer thumbCache.Close()

	m := metrics.New()

	var notifier sms.Notifier
	if cfg.TwilioEnabled() {
		notifier, err = sms.NewTwilioNotifier(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioFromNumber, cfg.NotifyPhone)
		if err != nil {
			log.Fatalf("Failed to initialize SMS: %v", err)
		}
	} else {
		log.Println("[SMS] Twilio not configured, enquiries are only logged")
		notifier = sms.NewLogNotifier()
	}
	dispatcher := sms.NewDispatcher(notifier, sms.DispatcherConfig{
		PerSecond: config.EnquiryRate,
		Burst:     config.EnquiryBurst,
		QueueSize: 64,
		OnResult: func(_ sms.Enquiry, err error) {
			if err != nil {
				m.ObserveEnquiry(metrics.OutcomeFailed)
				return
			}
			m.ObserveEnquiry(metrics.OutcomeDelivered)
		},
	})

	site := &h.Site{
		Catalog:   cat,
		Thumbs:    thumb.NewRenderer(cfg.StaticDir, thumbCache, config.ThumbFetchTimeout),
		Enquiries: dispatcher,
		Metrics:   m,
		BaseURL:   cfg.BaseURL,
		Source:    source.String(),
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: h.CustomErrorHandler,
		ReadTimeout:  config.ServerReadTimeout,
		WriteTimeout: config.ServerWriteTimeout,
	})

	app.Use(h.NewRateLimiter(cfg.RateLimitMax, cfg.RateLimitExp))
	app.Use(logger.New())

	app.Static("/", cfg.StaticDir)
	site.Register(app)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Println("Shutting down...")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Printf("Shutdown error: %v", err)
		}
	}()

	fmt.Printf("Starting server on port %s with %d vehicles...\n", cfg.Port, cat.Len())
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Printf("Server stopped: %v", err)
	}

	// Deliver enquiries accepted before shutdown
	dispatcher.Close()
}
