package sms

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type failingNotifier struct{}

func (failingNotifier) Notify(context.Context, Enquiry) error { return assert.AnError }

func TestDispatcherDelivers(t *testing.T) {
	n := NewLogNotifier()

	var mu sync.Mutex
	var results []error
	d := NewDispatcher(n, DispatcherConfig{
		PerSecond: 1,
		Burst:     3,
		QueueSize: 10,
		OnResult: func(_ Enquiry, err error) {
			mu.Lock()
			results = append(results, err)
			mu.Unlock()
		},
	})

	require.NoError(t, d.Submit(Enquiry{Reference: "a"}))
	require.NoError(t, d.Submit(Enquiry{Reference: "b"}))
	d.Close()

	sent := n.Sent()
	require.Len(t, sent, 2)
	assert.Equal(t, "a", sent[0].Reference)
	assert.Equal(t, "b", sent[1].Reference)
	assert.Equal(t, []error{nil, nil}, results)
}

func TestDispatcherThrottles(t *testing.T) {
	d := NewDispatcher(NewLogNotifier(), DispatcherConfig{PerSecond: 0.001, Burst: 2, QueueSize: 10})
	defer d.Close()

	assert.NoError(t, d.Submit(Enquiry{Reference: "1"}))
	assert.NoError(t, d.Submit(Enquiry{Reference: "2"}))
	assert.ErrorIs(t, d.Submit(Enquiry{Reference: "3"}), ErrThrottled)
}

func TestDispatcherQueueFull(t *testing.T) {
	block := make(chan struct{})
	started := make(chan struct{}, 1)
	n := notifierFunc(func(context.Context, Enquiry) error {
		started <- struct{}{}
		<-block
		return nil
	})

	d := NewDispatcher(n, DispatcherConfig{PerSecond: 100, Burst: 10, QueueSize: 1})

	require.NoError(t, d.Submit(Enquiry{Reference: "in-flight"}))
	<-started
	require.NoError(t, d.Submit(Enquiry{Reference: "queued"}))
	assert.ErrorIs(t, d.Submit(Enquiry{Reference: "dropped"}), ErrQueueFull)

	close(block)
	d.Close()
}

func TestDispatcherReportsFailures(t *testing.T) {
	var got error
	d := NewDispatcher(failingNotifier{}, DispatcherConfig{
		PerSecond: 1,
		Burst:     1,
		QueueSize: 1,
		OnResult:  func(_ Enquiry, err error) { got = err },
	})

	require.NoError(t, d.Submit(Enquiry{Reference: "x"}))
	d.Close()
	assert.ErrorIs(t, got, assert.AnError)
}

func TestDispatcherClose(t *testing.T) {
	d := NewDispatcher(NewLogNotifier(), DispatcherConfig{PerSecond: 1, Burst: 1, QueueSize: 1})
	d.Close()
	d.Close()

	assert.ErrorIs(t, d.Submit(Enquiry{}), ErrClosed)
}

type notifierFunc func(context.Context, Enquiry) error

func (f notifierFunc) Notify(ctx context.Context, e Enquiry) error { return f(ctx, e) }
