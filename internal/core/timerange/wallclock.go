package timerange

import (
	"fmt"
	"time"
)

// WallClock is a calendar date and time of day with no zone attached. It only
// becomes an instant once paired with a UTC offset.
type WallClock struct {
	Year       int
	Month      time.Month
	Day        int
	Hour       int
	Minute     int
	Second     int
	Nanosecond int
}

// Date builds a WallClock at midnight of the given day.
func Date(year int, month time.Month, day int) WallClock {
	return WallClock{Year: year, Month: month, Day: day}
}

// ToInstant converts a local wall clock reading at the given offset to an
// absolute UTC instant. Out-of-range fields are normalized the way time.Date
// does it.
func ToInstant(w WallClock, offset time.Duration) time.Time {
	return w.asUTC().Add(-offset)
}

// ToWallClock reads the instant t on a clock running at the given offset.
// ToWallClock(ToInstant(w, o), o) == w for every normalized w.
func ToWallClock(t time.Time, offset time.Duration) WallClock {
	return fromUTC(t.UTC().Add(offset))
}

// Normalize folds overflowing fields (e.g. day 32) into the following units.
func (w WallClock) Normalize() WallClock {
	return fromUTC(w.asUTC())
}

// Midnight drops the time of day.
func (w WallClock) Midnight() WallClock {
	return WallClock{Year: w.Year, Month: w.Month, Day: w.Day}
}

// AddDays moves the reading by n calendar days, keeping the time of day.
func (w WallClock) AddDays(n int) WallClock {
	w.Day += n
	return w.Normalize()
}

// AddMonthsClamped moves the reading by n calendar months. When the day does
// not exist in the target month it is clamped to that month's last day, so
// March 31 minus one month is the last day of February.
func (w WallClock) AddMonthsClamped(n int) WallClock {
	first := time.Date(w.Year, w.Month+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
	w.Year, w.Month = first.Year(), first.Month()
	if last := daysIn(w.Year, w.Month); w.Day > last {
		w.Day = last
	}
	return w.Normalize()
}

// Before reports whether w is earlier than other on the same clock.
func (w WallClock) Before(other WallClock) bool {
	return w.asUTC().Before(other.asUTC())
}

func (w WallClock) String() string {
	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d.%09d",
		w.Year, int(w.Month), w.Day, w.Hour, w.Minute, w.Second, w.Nanosecond)
}

func (w WallClock) asUTC() time.Time {
	return time.Date(w.Year, w.Month, w.Day, w.Hour, w.Minute, w.Second, w.Nanosecond, time.UTC)
}

func fromUTC(t time.Time) WallClock {
	return WallClock{
		Year:       t.Year(),
		Month:      t.Month(),
		Day:        t.Day(),
		Hour:       t.Hour(),
		Minute:     t.Minute(),
		Second:     t.Second(),
		Nanosecond: t.Nanosecond(),
	}
}

func daysIn(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
