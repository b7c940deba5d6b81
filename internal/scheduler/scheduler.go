package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/rocketscienceinc/gamehub-backend/internal/entity"
	"github.com/rocketscienceinc/gamehub-backend/internal/protocol"
)

var ErrStopped = errors.New("scheduler is stopped")

// Handler owns all game state. The scheduler calls it from a single goroutine only.
type Handler interface {
	HandleConnect(id string, conn entity.Sender)
	HandleMessage(id string, msg protocol.Inbound)
	HandleDisconnect(id string)
	Tick(now time.Time)
}

type eventKind uint8

const (
	eventConnect eventKind = iota
	eventMessage
	eventDisconnect
	eventCall
)

type event struct {
	kind eventKind
	id   string
	conn entity.Sender
	msg  protocol.Inbound
	fn   func()
	done chan struct{}
}

// Scheduler serialises connection events, client messages and simulation ticks onto one
// goroutine so game state needs no locks.
type Scheduler struct {
	logger   *zap.Logger
	handler  Handler
	events   chan event
	interval time.Duration
	stopped  chan struct{}
	metrics  Metrics
}

func New(logger *zap.Logger, handler Handler, tickRate, queueSize int) *Scheduler {
	if tickRate <= 0 {
		tickRate = 20
	}

	return &Scheduler{
		logger:   logger.With(zap.String("component", "scheduler")),
		handler:  handler,
		events:   make(chan event, queueSize),
		interval: time.Second / time.Duration(tickRate),
		stopped:  make(chan struct{}),
	}
}

func (that *Scheduler) Interval() time.Duration {
	return that.interval
}

func (that *Scheduler) Metrics() Snapshot {
	return that.metrics.Snapshot()
}

func (that *Scheduler) Connect(ctx context.Context, id string, conn entity.Sender) error {
	return that.post(ctx, event{kind: eventConnect, id: id, conn: conn})
}

func (that *Scheduler) Deliver(ctx context.Context, id string, msg protocol.Inbound) error {
	return that.post(ctx, event{kind: eventMessage, id: id, msg: msg})
}

func (that *Scheduler) Disconnect(ctx context.Context, id string) error {
	return that.post(ctx, event{kind: eventDisconnect, id: id})
}

// Do runs fn on the loop and waits for it to finish.
func (that *Scheduler) Do(ctx context.Context, fn func()) error {
	done := make(chan struct{})

	if err := that.post(ctx, event{kind: eventCall, fn: fn, done: done}); err != nil {
		return err
	}

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("failed to wait for call: %w", ctx.Err())
	case <-that.stopped:
		return ErrStopped
	}
}

func (that *Scheduler) post(ctx context.Context, ev event) error {
	select {
	case that.events <- ev:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("failed to post event: %w", ctx.Err())
	case <-that.stopped:
		return ErrStopped
	}
}

// Run processes events and ticks until ctx is done.
func (that *Scheduler) Run(ctx context.Context) error {
	log := that.logger.With(zap.String("method", "Run"))

	ticker := time.NewTicker(that.interval)
	defer ticker.Stop()
	defer close(that.stopped)

	log.Info("scheduler started", zap.Duration("tick", that.interval))

	for {
		select {
		case <-ctx.Done():
			log.Info("scheduler stopped")
			return nil

		case ev := <-that.events:
			that.safely("event", func() { that.dispatch(ev) })
			that.metrics.events.Add(1)

		case now := <-ticker.C:
			start := time.Now()
			that.safely("tick", func() { that.handler.Tick(now) })
			that.metrics.addTick(time.Since(start).Nanoseconds())
		}
	}
}

func (that *Scheduler) dispatch(ev event) {
	switch ev.kind {
	case eventConnect:
		that.handler.HandleConnect(ev.id, ev.conn)
	case eventMessage:
		that.handler.HandleMessage(ev.id, ev.msg)
	case eventDisconnect:
		that.handler.HandleDisconnect(ev.id)
	case eventCall:
		defer close(ev.done)
		ev.fn()
	}
}

// safely keeps one failing handler from taking the whole loop down.
func (that *Scheduler) safely(what string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			that.metrics.panics.Add(1)
			that.logger.Error("recovered from panic", zap.String("in", what), zap.Any("panic", r), zap.Stack("stack"))
		}
	}()

	fn()
}
