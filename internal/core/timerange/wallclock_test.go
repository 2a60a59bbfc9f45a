package timerange_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lorrc/usage-dashboard/internal/core/timerange"
)

var testOffsets = []struct {
	name   string
	offset time.Duration
}{
	{"UTC", 0},
	{"UTC+5:30", 5*time.Hour + 30*time.Minute},
	{"UTC+14", 14 * time.Hour},
	{"UTC-3", -3 * time.Hour},
	{"UTC-12", -12 * time.Hour},
}

func TestToInstant_Direction(t *testing.T) {
	tests := []struct {
		name   string
		wall   timerange.WallClock
		offset time.Duration
		want   time.Time
	}{
		{
			name:   "zero offset is identity",
			wall:   timerange.WallClock{Year: 2024, Month: time.June, Day: 15, Hour: 15, Minute: 30},
			offset: 0,
			want:   time.Date(2024, time.June, 15, 15, 30, 0, 0, time.UTC),
		},
		{
			name:   "positive offset moves midnight back into previous UTC day",
			wall:   timerange.Date(2024, time.January, 1),
			offset: 2 * time.Hour,
			want:   time.Date(2023, time.December, 31, 22, 0, 0, 0, time.UTC),
		},
		{
			name:   "negative offset moves midnight forward",
			wall:   timerange.Date(2024, time.January, 1),
			offset: -5 * time.Hour,
			want:   time.Date(2024, time.January, 1, 5, 0, 0, 0, time.UTC),
		},
		{
			name:   "overflowing day is normalized",
			wall:   timerange.Date(2024, time.February, 30),
			offset: 0,
			want:   time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, timerange.ToInstant(tt.wall, tt.offset))
		})
	}
}

func TestToWallClock_RoundTrip(t *testing.T) {
	walls := []timerange.WallClock{
		timerange.Date(2024, time.June, 15),
		{Year: 2024, Month: time.January, Day: 31, Hour: 23, Minute: 59, Second: 59, Nanosecond: 999_999_999},
		{Year: 2024, Month: time.February, Day: 29, Hour: 12},
		{Year: 2023, Month: time.December, Day: 31, Hour: 22, Minute: 15},
		timerange.Date(2024, time.March, 1),
	}

	for _, off := range testOffsets {
		for _, w := range walls {
			t.Run(off.name+"/"+w.String(), func(t *testing.T) {
				got := timerange.ToWallClock(timerange.ToInstant(w, off.offset), off.offset)
				assert.Equal(t, w, got)
			})
		}
	}
}

func TestToWallClock_ReadsInstantAtOffset(t *testing.T) {
	instant := time.Date(2024, time.March, 1, 1, 0, 0, 0, time.UTC)

	got := timerange.ToWallClock(instant, -3*time.Hour)

	assert.Equal(t, timerange.WallClock{Year: 2024, Month: time.February, Day: 29, Hour: 22}, got)
}

func TestWallClock_AddDays(t *testing.T) {
	w := timerange.WallClock{Year: 2024, Month: time.March, Day: 2, Hour: 7}

	assert.Equal(t, timerange.WallClock{Year: 2024, Month: time.February, Day: 28, Hour: 7}, w.AddDays(-3))
	assert.Equal(t, timerange.WallClock{Year: 2024, Month: time.March, Day: 9, Hour: 7}, w.AddDays(7))
}

func TestWallClock_AddMonthsClamped(t *testing.T) {
	tests := []struct {
		name string
		from timerange.WallClock
		n    int
		want timerange.WallClock
	}{
		{"leap february clamp", timerange.Date(2024, time.March, 31), -1, timerange.Date(2024, time.February, 29)},
		{"non-leap february clamp", timerange.Date(2023, time.March, 30), -1, timerange.Date(2023, time.February, 28)},
		{"thirty day month clamp", timerange.Date(2024, time.May, 31), -1, timerange.Date(2024, time.April, 30)},
		{"year boundary", timerange.Date(2024, time.January, 15), -1, timerange.Date(2023, time.December, 15)},
		{"no clamp needed", timerange.Date(2024, time.June, 15), -1, timerange.Date(2024, time.May, 15)},
		{"forward", timerange.Date(2024, time.January, 31), 1, timerange.Date(2024, time.February, 29)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.AddMonthsClamped(tt.n))
		})
	}
}

func TestWallClock_Midnight(t *testing.T) {
	w := timerange.WallClock{Year: 2024, Month: time.June, Day: 15, Hour: 15, Minute: 30, Second: 1, Nanosecond: 5}

	assert.Equal(t, timerange.Date(2024, time.June, 15), w.Midnight())
	assert.True(t, w.Midnight().Before(w))
}
