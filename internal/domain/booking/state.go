package booking

import (
	"strings"
	"time"

	"shareit-backend/internal/domain"
)

// State is the filter vocabulary for booking queries. ALL, PAST, FUTURE
// and CURRENT classify against the query time; WAITING and REJECTED
// classify by status.
type State string

const (
	StateAll      State = "ALL"
	StatePast     State = "PAST"
	StateFuture   State = "FUTURE"
	StateCurrent  State = "CURRENT"
	StateWaiting  State = "WAITING"
	StateRejected State = "REJECTED"
)

// stateFilters maps each state to its predicate. The table is built once
// and never mutated; "now" is supplied by the caller so the classification
// instant is explicit.
var stateFilters = map[State]func(b *Booking, now time.Time) bool{
	StateAll:     func(b *Booking, now time.Time) bool { return true },
	StatePast:    func(b *Booking, now time.Time) bool { return b.End().Before(now) },
	StateFuture:  func(b *Booking, now time.Time) bool { return b.Start().After(now) },
	StateCurrent: func(b *Booking, now time.Time) bool { return b.Start().Before(now) && b.End().After(now) },
	StateWaiting: func(b *Booking, now time.Time) bool { return b.Status() == StatusWaiting },
	StateRejected: func(b *Booking, now time.Time) bool {
		return b.Status() == StatusRejected
	},
}

// ParseState parses a state token. A blank token (empty or
// whitespace-only) defaults to ALL; tokens outside the closed set fail
// (exact-match, case-sensitive).
func ParseState(token string) (State, error) {
	if strings.TrimSpace(token) == "" {
		return StateAll, nil
	}
	s := State(token)
	if _, ok := stateFilters[s]; !ok {
		return "", domain.NewBadRequestError("Unknown state: " + token)
	}
	return s, nil
}

// Matches reports whether the booking belongs to this state bucket at the
// given instant.
func (s State) Matches(b *Booking, now time.Time) bool {
	f, ok := stateFilters[s]
	if !ok {
		return false
	}
	return f(b, now)
}
