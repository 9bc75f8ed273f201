package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartOfDay_TruncatesToUTCMidnight(t *testing.T) {
	t.Parallel()

	jakarta, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)

	// 2025-03-10 02:30 WIB is still 2025-03-09 in UTC
	local := time.Date(2025, 3, 10, 2, 30, 0, 0, jakarta)
	got := StartOfDay(local)

	assert.Equal(t, time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC), got)
	assert.Equal(t, time.UTC, got.Location())
}

func TestEndOfDay_LastInstantOfSameDay(t *testing.T) {
	t.Parallel()

	got := EndOfDay(time.Date(2025, 6, 15, 13, 45, 0, 0, time.UTC))

	assert.Equal(t, 15, got.Day())
	assert.Equal(t, 23, got.Hour())
	assert.True(t, got.Before(time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)))
}

func TestTrailingWindow_SevenDaysInclusive(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 15, 13, 45, 0, 0, time.UTC)
	window := TrailingWindow(now, 7)

	require.Len(t, window, 7)
	assert.Equal(t, time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC), window[0])
	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), window[6])
}

func TestTrailingWindow_CrossesMonthBoundary(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 7, 2, 8, 0, 0, 0, time.UTC)
	window := TrailingWindow(now, 7)

	require.Len(t, window, 7)
	assert.Equal(t, time.Date(2025, 6, 26, 0, 0, 0, 0, time.UTC), window[0])
}

func TestMonthBounds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		year  int
		month time.Month
		first time.Time
		last  time.Time
	}{
		{
			name:  "regular month",
			year:  2025,
			month: time.April,
			first: time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
			last:  time.Date(2025, 4, 30, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "leap february",
			year:  2024,
			month: time.February,
			first: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			last:  time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "december",
			year:  2025,
			month: time.December,
			first: time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
			last:  time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, last := MonthBounds(tt.year, tt.month)
			assert.Equal(t, tt.first, first)
			assert.Equal(t, tt.last, last)
		})
	}
}

func TestCombineDateAndTime(t *testing.T) {
	t.Parallel()

	date := time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC)
	nineAM := time.Date(0, 1, 1, 9, 0, 0, 0, time.UTC)

	got := CombineDateAndTime(date, &nineAM)
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2025, 5, 20, 9, 0, 0, 0, time.UTC), *got)

	assert.Nil(t, CombineDateAndTime(time.Time{}, &nineAM))
	assert.Nil(t, CombineDateAndTime(date, nil))
}

func TestCombineDateAndTime_KeepsDateAcrossZones(t *testing.T) {
	t.Parallel()

	jakarta, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)

	// A date carried in a non-UTC zone must still combine on its UTC day.
	date := time.Date(2025, 5, 20, 7, 0, 0, 0, jakarta) // 2025-05-20 00:00 UTC
	tod := time.Date(0, 1, 1, 8, 30, 0, 0, time.UTC)

	got := CombineDateAndTime(date, &tod)
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2025, 5, 20, 8, 30, 0, 0, time.UTC), *got)
}
