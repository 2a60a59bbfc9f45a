package domain

import (
	"fmt"
	"strings"

	apperrors "github.com/lorrc/usage-dashboard/internal/core/errors"
)

// RangeLabel names a relative time window picked on the dashboard.
// The value is the label shown to users and sent as the range descriptor.
type RangeLabel string

const (
	RangeToday      RangeLabel = "Today"
	RangeYesterday  RangeLabel = "Yesterday"
	RangeLast3Days  RangeLabel = "Last 3 days"
	RangeLastWeek   RangeLabel = "Last week"
	RangeLast2Weeks RangeLabel = "Last 2 weeks"
	RangeLastMonth  RangeLabel = "Last month"
)

// AllRangeLabels returns every label in the order the dashboard lists them.
func AllRangeLabels() []RangeLabel {
	return []RangeLabel{
		RangeToday,
		RangeYesterday,
		RangeLast3Days,
		RangeLastWeek,
		RangeLast2Weeks,
		RangeLastMonth,
	}
}

// IsValid checks if the label is one of the known windows.
func (l RangeLabel) IsValid() bool {
	switch l {
	case RangeToday, RangeYesterday, RangeLast3Days, RangeLastWeek, RangeLast2Weeks, RangeLastMonth:
		return true
	}
	return false
}

func (l RangeLabel) String() string {
	return string(l)
}

// ParseRangeLabel maps user input to a RangeLabel. Matching ignores case and
// surrounding whitespace.
func ParseRangeLabel(s string) (RangeLabel, error) {
	trimmed := strings.TrimSpace(s)
	for _, l := range AllRangeLabels() {
		if strings.EqualFold(trimmed, string(l)) {
			return l, nil
		}
	}
	return "", fmt.Errorf("%w: %q", apperrors.ErrInvalidRangeLabel, s)
}
