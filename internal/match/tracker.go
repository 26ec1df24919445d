package match

import (
	"time"

	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

// Tracker follows the engine's TickResults for one player and produces a
// Result when a match is won or abandoned. It is not safe for concurrent use.
type Tracker struct {
	player string
	now    func() time.Time

	active    bool
	id        ID
	startedAt time.Time
	ticks     uint64
	rounds    int
	left      int
	right     int
}

// TrackerOption customizes a Tracker.
type TrackerOption func(*Tracker)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) TrackerOption {
	return func(t *Tracker) {
		t.now = now
	}
}

// NewTracker creates an idle tracker for player.
func NewTracker(player string, opts ...TrackerOption) *Tracker {
	t := &Tracker{
		player: player,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Begin starts a new match and returns its ID. Any running match is discarded.
func (t *Tracker) Begin() ID {
	t.active = true
	t.id = NewID()
	t.startedAt = t.now()
	t.ticks = 0
	t.rounds = 0
	t.left = 0
	t.right = 0
	return t.id
}

// Observe records one engine tick. It returns the finished result on the
// tick a winner appears.
func (t *Tracker) Observe(res pong.TickResult) (Result, bool) {
	if !t.active {
		return Result{}, false
	}

	t.ticks++
	if res.Goal != pong.SideNone {
		t.rounds++
	}
	t.left = res.LeftScore
	t.right = res.RightScore

	if res.Winner == pong.SideNone {
		return Result{}, false
	}
	return t.finish(res.Winner, EndReasonCompleted), true
}

// Abort ends a running match as abandoned. It returns false when no match is running.
func (t *Tracker) Abort() (Result, bool) {
	if !t.active {
		return Result{}, false
	}
	return t.finish(pong.SideNone, EndReasonAbandoned), true
}

// Active reports whether a match is being tracked.
func (t *Tracker) Active() bool {
	return t.active
}

// Player returns the name results are recorded under.
func (t *Tracker) Player() string {
	return t.player
}

func (t *Tracker) finish(winner pong.Side, reason EndReason) Result {
	t.active = false
	return Result{
		ID:         t.id,
		Player:     t.player,
		LeftScore:  t.left,
		RightScore: t.right,
		Winner:     winner,
		Reason:     reason,
		Rounds:     t.rounds,
		Ticks:      t.ticks,
		Duration:   t.now().Sub(t.startedAt),
	}
}
