package domain

import (
	"fmt"
	"time"

	apperrors "github.com/lorrc/usage-dashboard/internal/core/errors"
)

// Interval is an absolute, UTC-normalized time window. From never exceeds To.
type Interval struct {
	From time.Time
	To   time.Time
}

// NewInterval builds an interval from two instants, normalizing both to UTC.
func NewInterval(from, to time.Time) (Interval, error) {
	iv := Interval{From: from.UTC(), To: to.UTC()}
	if err := iv.Validate(); err != nil {
		return Interval{}, err
	}
	return iv, nil
}

// Validate enforces From <= To.
func (i Interval) Validate() error {
	if i.From.After(i.To) {
		return fmt.Errorf("%w: from=%s to=%s", apperrors.ErrInvalidInterval,
			i.From.Format(time.RFC3339), i.To.Format(time.RFC3339))
	}
	return nil
}

// Duration returns the length of the interval.
func (i Interval) Duration() time.Duration {
	return i.To.Sub(i.From)
}

// Contains reports whether t falls in [From, To].
func (i Interval) Contains(t time.Time) bool {
	return !t.Before(i.From) && !t.After(i.To)
}

func (i Interval) String() string {
	return i.From.Format(time.RFC3339) + "/" + i.To.Format(time.RFC3339)
}
