package sms

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

var (
	ErrThrottled = errors.New("too many enquiries, try again shortly")
	ErrQueueFull = errors.New("enquiry queue is full")
	ErrClosed    = errors.New("dispatcher is closed")
)

// NotifyTimeout bounds a single delivery attempt.
const NotifyTimeout = 15 * time.Second

// Dispatcher hands enquiries to a Notifier on a background goroutine so
// the request that submitted them does not wait on the SMS provider.
// Submissions beyond the token bucket are refused.
type Dispatcher struct {
	notifier Notifier
	limiter  *rate.Limiter
	queue    chan Enquiry
	done     chan struct{}

	onResult func(e Enquiry, err error)

	mu     sync.RWMutex
	closed bool
}

type DispatcherConfig struct {
	// PerSecond is the sustained notification rate and Burst the bucket size.
	PerSecond float64
	Burst     int
	QueueSize int
	// OnResult, when set, is called after every delivery attempt.
	OnResult func(e Enquiry, err error)
}

// NewDispatcher starts the delivery goroutine. Call Close to stop it.
func NewDispatcher(n Notifier, cfg DispatcherConfig) *Dispatcher {
	d := &Dispatcher{
		notifier: n,
		limiter:  rate.NewLimiter(rate.Limit(cfg.PerSecond), cfg.Burst),
		queue:    make(chan Enquiry, cfg.QueueSize),
		done:     make(chan struct{}),
		onResult: cfg.OnResult,
	}
	go d.run()
	return d
}

// Submit queues e for delivery.
func (d *Dispatcher) Submit(e Enquiry) error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		return ErrClosed
	}
	if !d.limiter.Allow() {
		return ErrThrottled
	}

	select {
	case d.queue <- e:
		return nil
	default:
		return ErrQueueFull
	}
}

func (d *Dispatcher) run() {
	defer close(d.done)
	for e := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), NotifyTimeout)
		err := d.notifier.Notify(ctx, e)
		cancel()
		if err != nil {
			log.Printf("[enquiry] Delivery of %s failed: %v", e.Reference, err)
		}
		if d.onResult != nil {
			d.onResult(e, err)
		}
	}
}

// Close stops accepting enquiries, delivers what is already queued and
// waits for the worker to exit.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()
	<-d.done
}
