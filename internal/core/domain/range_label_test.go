package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lorrc/usage-dashboard/internal/core/domain"
	apperrors "github.com/lorrc/usage-dashboard/internal/core/errors"
)

func TestRangeLabel_IsValid(t *testing.T) {
	tests := []struct {
		name  string
		label domain.RangeLabel
		want  bool
	}{
		{"Today is valid", domain.RangeToday, true},
		{"Yesterday is valid", domain.RangeYesterday, true},
		{"Last 3 days is valid", domain.RangeLast3Days, true},
		{"Last week is valid", domain.RangeLastWeek, true},
		{"Last 2 weeks is valid", domain.RangeLast2Weeks, true},
		{"Last month is valid", domain.RangeLastMonth, true},
		{"empty is invalid", domain.RangeLabel(""), false},
		{"lowercase is invalid", domain.RangeLabel("last week"), false},
		{"unknown is invalid", domain.RangeLabel("Last year"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.label.IsValid())
		})
	}
}

func TestParseRangeLabel(t *testing.T) {
	tests := []struct {
		input   string
		want    domain.RangeLabel
		wantErr bool
	}{
		{"Last week", domain.RangeLastWeek, false},
		{"  last 2 WEEKS ", domain.RangeLast2Weeks, false},
		{"today", domain.RangeToday, false},
		{"Last month", domain.RangeLastMonth, false},
		{"", "", true},
		{"Last 30 days", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := domain.ParseRangeLabel(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrInvalidRangeLabel)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAllRangeLabels(t *testing.T) {
	labels := domain.AllRangeLabels()

	require.Len(t, labels, 6)
	assert.Equal(t, domain.RangeToday, labels[0])
	assert.Equal(t, domain.RangeLastMonth, labels[5])
	for _, l := range labels {
		assert.True(t, l.IsValid(), l.String())
	}
}
