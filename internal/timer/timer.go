// Package timer derives the discussion countdown and fires expiry for timed rooms.
package timer

import (
	"context"
	"errors"
	"math"
	"sync"
	"time"

	"github.com/KirkDiggler/minimposter/internal/common/clock"
	"github.com/KirkDiggler/minimposter/internal/models"
	"github.com/rs/zerolog"
)

// DefaultInterval is how often a watcher re-evaluates the countdown
const DefaultInterval = time.Second

// TimeLeft returns the whole seconds remaining until endsAt, never negative
func TimeLeft(endsAt, now time.Time) int {
	remaining := endsAt.Sub(now)
	if remaining <= 0 {
		return 0
	}
	return int(math.Ceil(remaining.Seconds()))
}

// RoomTimeLeft is TimeLeft for a room, 0 when no timer is running
func RoomTimeLeft(room *models.Room, now time.Time) int {
	if room == nil || room.TimerEndsAt == nil {
		return 0
	}
	return TimeLeft(*room.TimerEndsAt, now)
}

// Running reports whether the room is in a timed discussion with a deadline set
func Running(room *models.Room) bool {
	return room != nil &&
		room.Phase == models.PhaseDiscussion &&
		room.TimeMode == models.TimeModeTimed &&
		room.TimerEndsAt != nil
}

// ExpireFunc is called once when a room's discussion deadline passes
type ExpireFunc func(ctx context.Context, room *models.Room)

// TickFunc receives the countdown on every evaluation while the timer runs
type TickFunc func(room *models.Room, secondsLeft int)

// Config for a watcher
type Config struct {
	Clock    clock.Clock
	Interval time.Duration
	OnExpire ExpireFunc
	OnTick   TickFunc
	Logger   zerolog.Logger
}

// Watcher follows one room's snapshots and calls OnExpire once per deadline
type Watcher struct {
	clock    clock.Clock
	interval time.Duration
	onExpire ExpireFunc
	onTick   TickFunc
	logger   zerolog.Logger

	mu      sync.Mutex
	latest  *models.Room
	firedAt time.Time
}

// New creates a watcher
func New(cfg *Config) (*Watcher, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.OnExpire == nil {
		return nil, errors.New("expire callback cannot be nil")
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}
	interval := cfg.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	return &Watcher{
		clock:    clk,
		interval: interval,
		onExpire: cfg.OnExpire,
		onTick:   cfg.OnTick,
		logger:   cfg.Logger,
	}, nil
}

// Run consumes room snapshots until ctx is cancelled or the channel closes
func (w *Watcher) Run(ctx context.Context, updates <-chan *models.Room) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case room, ok := <-updates:
			if !ok {
				return
			}
			w.observe(room)
			w.evaluate(ctx)
		case <-ticker.C:
			w.evaluate(ctx)
		}
	}
}

func (w *Watcher) observe(room *models.Room) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.latest = room
}

func (w *Watcher) evaluate(ctx context.Context) {
	w.mu.Lock()
	room := w.latest
	if !Running(room) {
		w.mu.Unlock()
		return
	}
	deadline := *room.TimerEndsAt
	left := TimeLeft(deadline, w.clock.Now())
	fire := left == 0 && !w.firedAt.Equal(deadline)
	if fire {
		w.firedAt = deadline
	}
	w.mu.Unlock()

	if w.onTick != nil {
		w.onTick(room, left)
	}
	if !fire {
		return
	}

	w.logger.Debug().
		Str("room", room.Code).
		Time("deadline", deadline).
		Msg("discussion timer expired")
	w.onExpire(ctx, room)
}
