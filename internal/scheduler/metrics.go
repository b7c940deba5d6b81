package scheduler

import "sync/atomic"

// Metrics counts loop activity. Readable from any goroutine.
type Metrics struct {
	tickCount   atomic.Int64
	totalTickNs atomic.Int64
	events      atomic.Int64
	panics      atomic.Int64
}

type Snapshot struct {
	TickCount       int64   `json:"tick_count"`
	AvgTickMs       float64 `json:"avg_tick_ms"`
	EventsProcessed int64   `json:"events_processed"`
	Panics          int64   `json:"panics"`
}

func (that *Metrics) addTick(ns int64) {
	that.tickCount.Add(1)
	that.totalTickNs.Add(ns)
}

func (that *Metrics) Snapshot() Snapshot {
	ticks := that.tickCount.Load()
	total := that.totalTickNs.Load()

	var avgMs float64
	if ticks > 0 {
		avgMs = float64(total) / float64(ticks) / 1e6
	}

	return Snapshot{
		TickCount:       ticks,
		AvgTickMs:       avgMs,
		EventsProcessed: that.events.Load(),
		Panics:          that.panics.Load(),
	}
}
