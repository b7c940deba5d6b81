package scheduler

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/rocketscienceinc/gamehub-backend/internal/entity"
	"github.com/rocketscienceinc/gamehub-backend/internal/protocol"
)

type fakeHandler struct {
	mu     sync.Mutex
	calls  []string
	ticks  int
	panics bool
}

func (that *fakeHandler) record(call string) {
	that.mu.Lock()
	defer that.mu.Unlock()
	that.calls = append(that.calls, call)
}

func (that *fakeHandler) HandleConnect(id string, _ entity.Sender) { that.record("connect:" + id) }

func (that *fakeHandler) HandleMessage(id string, msg protocol.Inbound) {
	if that.panics {
		panic("boom")
	}
	that.record("message:" + id + ":" + msg.Type())
}

func (that *fakeHandler) HandleDisconnect(id string) { that.record("disconnect:" + id) }

func (that *fakeHandler) Tick(time.Time) {
	that.mu.Lock()
	defer that.mu.Unlock()
	that.ticks++
}

func (that *fakeHandler) snapshot() ([]string, int) {
	that.mu.Lock()
	defer that.mu.Unlock()
	return append([]string(nil), that.calls...), that.ticks
}

func start(t *testing.T, handler Handler, tickRate int) (*Scheduler, context.Context) {
	t.Helper()

	sched := New(zaptest.NewLogger(t), handler, tickRate, 16)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- sched.Run(ctx) }()

	t.Cleanup(func() {
		cancel()
		require.NoError(t, <-done)
	})

	return sched, ctx
}

func TestScheduler_EventsInOrder(t *testing.T) {
	// Given: a running scheduler
	handler := &fakeHandler{}
	sched, ctx := start(t, handler, 20)

	// When: a client connects, sends a message and leaves
	require.NoError(t, sched.Connect(ctx, "a", nil))
	require.NoError(t, sched.Deliver(ctx, "a", protocol.GetRooms{}))
	require.NoError(t, sched.Disconnect(ctx, "a"))

	// Then: the handler sees them in order
	require.NoError(t, sched.Do(ctx, func() {}))
	calls, _ := handler.snapshot()
	assert.Equal(t, []string{"connect:a", "message:a:get_rooms", "disconnect:a"}, calls)
}

func TestScheduler_Ticks(t *testing.T) {
	// Given: a scheduler at 100 ticks per second
	handler := &fakeHandler{}
	sched, _ := start(t, handler, 100)

	assert.Equal(t, 10*time.Millisecond, sched.Interval())

	// Then: ticks keep coming and are counted
	require.Eventually(t, func() bool {
		_, ticks := handler.snapshot()
		return ticks >= 3
	}, time.Second, 5*time.Millisecond)

	assert.GreaterOrEqual(t, sched.Metrics().TickCount, int64(3))
}

func TestScheduler_Do(t *testing.T) {
	handler := &fakeHandler{}
	sched, ctx := start(t, handler, 20)

	// When: running a closure on the loop
	var result int
	err := sched.Do(ctx, func() { result = 42 })

	// Then: it has completed when Do returns
	require.NoError(t, err)
	assert.Equal(t, 42, result)
}

func TestScheduler_RecoversFromPanics(t *testing.T) {
	// Given: a handler that panics on messages
	handler := &fakeHandler{panics: true}
	sched, ctx := start(t, handler, 20)

	// When: a message is delivered
	require.NoError(t, sched.Deliver(ctx, "a", protocol.Restart{}))

	// Then: the loop survives and keeps serving
	require.NoError(t, sched.Connect(ctx, "b", nil))
	require.NoError(t, sched.Do(ctx, func() {}))

	calls, _ := handler.snapshot()
	assert.Equal(t, []string{"connect:b"}, calls)
	assert.Equal(t, int64(1), sched.Metrics().Panics)
	assert.GreaterOrEqual(t, sched.Metrics().EventsProcessed, int64(2))
}

func TestScheduler_Stopped(t *testing.T) {
	// Given: a scheduler that has finished running
	sched := New(zaptest.NewLogger(t), &fakeHandler{}, 20, 0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, sched.Run(ctx))

	// When: posting afterwards
	err := sched.Connect(context.Background(), "a", nil)

	// Then: the caller is told instead of blocking forever
	require.ErrorIs(t, err, ErrStopped)
}
