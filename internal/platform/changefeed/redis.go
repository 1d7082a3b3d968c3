package changefeed

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const changeChannel = "coursehub:changefeed"

// RedisBus publishes events on a Redis channel so every instance sees
// writes made by any instance. Received events are dispatched through a
// LocalBus.
type RedisBus struct {
	client *redis.Client
	local  *LocalBus
	log    *zap.SugaredLogger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewRedisBus(client *redis.Client, log *zap.SugaredLogger) *RedisBus {
	return &RedisBus{client: client, local: NewLocalBus(log), log: log}
}

func (b *RedisBus) Subscribe(handler Handler) { b.local.Subscribe(handler) }

func (b *RedisBus) Publish(ctx context.Context, event Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal change event: %w", err)
	}
	if err := b.client.Publish(ctx, changeChannel, data).Err(); err != nil {
		b.log.Errorw("failed to publish change event",
			"collection", event.Collection,
			"operation", event.Operation,
			"error", err,
		)
		return fmt.Errorf("failed to publish change event: %w", err)
	}
	return nil
}

// Start subscribes to the channel and returns once Redis confirmed the
// subscription.
func (b *RedisBus) Start(ctx context.Context) error {
	if err := b.local.Start(ctx); err != nil {
		return err
	}
	runCtx, cancel := context.WithCancel(context.Background())
	pubsub := b.client.Subscribe(runCtx, changeChannel)
	if _, err := pubsub.Receive(ctx); err != nil {
		cancel()
		_ = pubsub.Close()
		return fmt.Errorf("failed to subscribe to change channel: %w", err)
	}
	b.cancel = cancel
	b.log.Infow("subscribed to change events", "channel", changeChannel)

	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		defer pubsub.Close()
		b.receive(runCtx, pubsub.Channel())
	}()
	return nil
}

func (b *RedisBus) receive(ctx context.Context, ch <-chan *redis.Message) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				b.log.Warnw("change event channel closed")
				return
			}
			var event Event
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				b.log.Warnw("failed to unmarshal change event", "payload", msg.Payload, "error", err)
				continue
			}
			_ = b.local.Publish(ctx, event)
		}
	}
}

func (b *RedisBus) Stop(ctx context.Context) error {
	if b.cancel != nil {
		b.cancel()
		b.wg.Wait()
	}
	return b.local.Stop(ctx)
}
