package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lorrc/usage-dashboard/internal/core/domain"
	apperrors "github.com/lorrc/usage-dashboard/internal/core/errors"
)

func TestNewInterval(t *testing.T) {
	from := time.Date(2024, time.June, 8, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, time.June, 15, 15, 30, 0, 0, time.UTC)

	t.Run("valid interval", func(t *testing.T) {
		iv, err := domain.NewInterval(from, to)

		require.NoError(t, err)
		assert.Equal(t, from, iv.From)
		assert.Equal(t, to, iv.To)
		assert.Equal(t, 7*24*time.Hour+15*time.Hour+30*time.Minute, iv.Duration())
	})

	t.Run("empty interval is allowed", func(t *testing.T) {
		_, err := domain.NewInterval(from, from)
		assert.NoError(t, err)
	})

	t.Run("reversed interval is rejected", func(t *testing.T) {
		_, err := domain.NewInterval(to, from)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInterval)
	})

	t.Run("endpoints are normalized to UTC", func(t *testing.T) {
		zone := time.FixedZone("UTC-3", -3*60*60)
		iv, err := domain.NewInterval(from.In(zone), to.In(zone))

		require.NoError(t, err)
		assert.Equal(t, time.UTC, iv.From.Location())
		assert.True(t, iv.From.Equal(from))
	})
}

func TestInterval_Contains(t *testing.T) {
	iv := domain.Interval{
		From: time.Date(2024, time.June, 14, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC),
	}

	assert.True(t, iv.Contains(iv.From))
	assert.True(t, iv.Contains(iv.To))
	assert.True(t, iv.Contains(iv.From.Add(time.Hour)))
	assert.False(t, iv.Contains(iv.To.Add(time.Nanosecond)))
	assert.Equal(t, "2024-06-14T00:00:00Z/2024-06-15T00:00:00Z", iv.String())
}

func TestCategoryFilter(t *testing.T) {
	t.Run("duplicates collapse and order is irrelevant", func(t *testing.T) {
		a := domain.NewCategoryFilter("social", "ads", "social")
		b := domain.NewCategoryFilter("ads", "social")

		assert.Equal(t, 2, a.Len())
		assert.Equal(t, a.Values(), b.Values())
		assert.Equal(t, []string{"ads", "social"}, a.Values())
	})

	t.Run("blank ids are dropped", func(t *testing.T) {
		f := domain.NewCategoryFilter(" ", "", " games ")

		assert.Equal(t, []string{"games"}, f.Values())
		assert.True(t, f.Contains("games"))
		assert.False(t, f.Contains(" games "))
	})

	t.Run("empty filter serializes as empty slice", func(t *testing.T) {
		var zero domain.CategoryFilter

		assert.NotNil(t, zero.Values())
		assert.Empty(t, zero.Values())
		assert.Equal(t, 0, zero.Len())
	})
}
