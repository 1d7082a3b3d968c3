package changefeed

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLocalBus_DispatchesInOrder(t *testing.T) {
	bus := NewLocalBus(zap.NewNop().Sugar())
	var mu sync.Mutex
	var got []Operation
	bus.Subscribe(func(_ context.Context, ev Event) {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, ev.Operation)
	})
	require.NoError(t, bus.Start(context.Background()))

	ctx := context.Background()
	require.NoError(t, bus.Publish(ctx, NewEvent(CollectionAccount, OperationInsert)))
	require.NoError(t, bus.Publish(ctx, NewEvent(CollectionCourse, OperationUpdate)))
	require.NoError(t, bus.Publish(ctx, NewEvent(CollectionAccount, OperationDelete)))

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(got) == 3
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, []Operation{OperationInsert, OperationUpdate, OperationDelete}, got)

	require.NoError(t, bus.Stop(context.Background()))
	// publishing after stop is a no-op
	require.NoError(t, bus.Publish(ctx, NewEvent(CollectionAccount, OperationInsert)))
}

func TestLocalBus_HandlerPanicDoesNotStopDispatch(t *testing.T) {
	bus := NewLocalBus(zap.NewNop().Sugar())
	calls := make(chan struct{}, 2)
	bus.Subscribe(func(context.Context, Event) {
		calls <- struct{}{}
		panic("boom")
	})
	require.NoError(t, bus.Start(context.Background()))
	t.Cleanup(func() { _ = bus.Stop(context.Background()) })

	_ = bus.Publish(context.Background(), NewEvent(CollectionCourse, OperationUpdate))
	_ = bus.Publish(context.Background(), NewEvent(CollectionCourse, OperationUpdate))

	for i := 0; i < 2; i++ {
		select {
		case <-calls:
		case <-time.After(time.Second):
			t.Fatal("handler not invoked")
		}
	}
}

func TestLocalBus_StopWithoutStart(t *testing.T) {
	bus := NewLocalBus(zap.NewNop().Sugar())
	require.NoError(t, bus.Stop(context.Background()))
}
