package changefeed

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	defaultBufferSize     = 256
	defaultHandlerTimeout = 30 * time.Second
)

// LocalBus dispatches events on a single goroutine in publish order.
// Publish never blocks: with a full buffer the event is dropped, which is
// safe as long as handlers recompute from scratch.
type LocalBus struct {
	log            *zap.SugaredLogger
	events         chan Event
	handlerTimeout time.Duration

	mu       sync.RWMutex
	handlers []Handler

	startOnce sync.Once
	stopOnce  sync.Once
	done      chan struct{}
	stopped   chan struct{}
}

func NewLocalBus(log *zap.SugaredLogger) *LocalBus {
	return &LocalBus{
		log:            log,
		events:         make(chan Event, defaultBufferSize),
		handlerTimeout: defaultHandlerTimeout,
		done:           make(chan struct{}),
		stopped:        make(chan struct{}),
	}
}

func (b *LocalBus) Subscribe(handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers = append(b.handlers, handler)
}

func (b *LocalBus) Publish(_ context.Context, event Event) error {
	select {
	case <-b.done:
		return nil
	default:
	}
	select {
	case b.events <- event:
	default:
		b.log.Warnw("change event dropped, dispatcher busy",
			"collection", event.Collection,
			"operation", event.Operation,
		)
	}
	return nil
}

func (b *LocalBus) Start(context.Context) error {
	b.startOnce.Do(func() { go b.run() })
	return nil
}

// Stop halts dispatching and waits for the in-flight handler, bounded by ctx.
func (b *LocalBus) Stop(ctx context.Context) error {
	// never started: nothing to wait for
	b.startOnce.Do(func() { close(b.stopped) })
	b.stopOnce.Do(func() { close(b.done) })
	select {
	case <-b.stopped:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (b *LocalBus) run() {
	defer close(b.stopped)
	for {
		select {
		case <-b.done:
			return
		case ev := <-b.events:
			b.dispatch(ev)
		}
	}
}

func (b *LocalBus) dispatch(ev Event) {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers...)
	b.mu.RUnlock()

	for _, h := range handlers {
		func() {
			ctx, cancel := context.WithTimeout(context.Background(), b.handlerTimeout)
			defer cancel()
			defer func() {
				if r := recover(); r != nil {
					b.log.Errorw("change event handler panicked", "collection", ev.Collection, "panic", r)
				}
			}()
			h(ctx, ev)
		}()
	}
}
