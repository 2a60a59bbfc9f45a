// Package timerange turns named dashboard windows into absolute intervals.
//
// All arithmetic happens on wall clock readings at a fixed local offset. Each
// boundary is converted to an instant exactly once, local to UTC.
package timerange

import (
	"fmt"
	"time"

	"github.com/lorrc/usage-dashboard/internal/core/domain"
	apperrors "github.com/lorrc/usage-dashboard/internal/core/errors"
)

// Resolve maps label to an absolute interval relative to now, using offset to
// locate local midnight. It never reads the system clock.
func Resolve(label domain.RangeLabel, now time.Time, offset time.Duration) (domain.Interval, error) {
	now = now.Round(0).UTC()
	midnight := ToWallClock(now, offset).Midnight()

	var from WallClock
	switch label {
	case domain.RangeToday:
		from = midnight
	case domain.RangeYesterday:
		return domain.Interval{
			From: ToInstant(midnight.AddDays(-1), offset),
			To:   ToInstant(midnight, offset),
		}, nil
	case domain.RangeLast3Days:
		from = midnight.AddDays(-3)
	case domain.RangeLastWeek:
		from = midnight.AddDays(-7)
	case domain.RangeLast2Weeks:
		from = midnight.AddDays(-14)
	case domain.RangeLastMonth:
		from = midnight.AddMonthsClamped(-1)
	default:
		return domain.Interval{}, fmt.Errorf("%w: %q", apperrors.ErrInvalidRangeLabel, string(label))
	}

	return domain.Interval{From: ToInstant(from, offset), To: now}, nil
}

// MustResolve is like Resolve but panics on an unknown label. Meant for
// labels fixed at compile time.
func MustResolve(label domain.RangeLabel, now time.Time, offset time.Duration) domain.Interval {
	iv, err := Resolve(label, now, offset)
	if err != nil {
		panic(err)
	}
	return iv
}

// Resolver resolves labels against an injected Clock.
type Resolver struct {
	clock Clock
}

// NewResolver creates a resolver reading time from clock.
func NewResolver(clock Clock) *Resolver {
	return &Resolver{clock: clock}
}

// Resolve reads the clock once and resolves label against that reading.
func (r *Resolver) Resolve(label domain.RangeLabel) (domain.Interval, error) {
	return Resolve(label, r.clock.Now(), r.clock.Offset())
}
