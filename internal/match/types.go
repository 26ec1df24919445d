// Package match tracks single pong matches from serve to final score
// and hands finished results to whatever persists them.
package match

import (
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

// ID uniquely identifies a match.
type ID string

// NewID returns a random match ID.
func NewID() ID {
	return ID(uuid.NewString())
}

// EndReason describes why a match ended.
type EndReason int

const (
	EndReasonCompleted EndReason = iota // A paddle reached the winning score
	EndReasonAbandoned                  // The player left mid-match
)

func (r EndReason) String() string {
	switch r {
	case EndReasonCompleted:
		return "completed"
	case EndReasonAbandoned:
		return "abandoned"
	default:
		return "unknown"
	}
}

// ParseEndReason is the inverse of EndReason.String.
func ParseEndReason(s string) (EndReason, bool) {
	switch s {
	case "completed":
		return EndReasonCompleted, true
	case "abandoned":
		return EndReasonAbandoned, true
	}
	return EndReasonCompleted, false
}

// Result is the outcome of one match.
type Result struct {
	ID         ID
	Player     string
	LeftScore  int
	RightScore int
	Winner     pong.Side // SideNone for abandoned matches
	Reason     EndReason
	Rounds     int // Goals scored
	Ticks      uint64
	Duration   time.Duration
}

// ResultSaver is an interface for saving match results.
// This allows drivers to record matches without depending on the storage package.
type ResultSaver interface {
	SaveMatchResult(result Result) error
}
