package timerange

import "time"

// Clock supplies the current instant and the local UTC offset used to find
// day boundaries. Range resolution reads time only through a Clock.
type Clock interface {
	Now() time.Time
	Offset() time.Duration
}

// SystemClock reads the wall clock of the host. When built with a fixed
// offset it ignores the host time zone.
type SystemClock struct {
	offset time.Duration
	fixed  bool
}

// NewSystemClock returns a clock using the host's local zone offset.
func NewSystemClock() SystemClock {
	return SystemClock{}
}

// NewSystemClockWithOffset returns a clock reporting the given offset
// regardless of the host configuration.
func NewSystemClockWithOffset(offset time.Duration) SystemClock {
	return SystemClock{offset: offset, fixed: true}
}

func (c SystemClock) Now() time.Time {
	return time.Now()
}

func (c SystemClock) Offset() time.Duration {
	if c.fixed {
		return c.offset
	}
	_, seconds := time.Now().Zone()
	return time.Duration(seconds) * time.Second
}

// FixedClock always reports the same instant and offset. Used by tests and
// by callers replaying a past dashboard view.
type FixedClock struct {
	At        time.Time
	UTCOffset time.Duration
}

func (c FixedClock) Now() time.Time {
	return c.At
}

func (c FixedClock) Offset() time.Duration {
	return c.UTCOffset
}
