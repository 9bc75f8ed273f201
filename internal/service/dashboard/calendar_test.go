package dashboard

import (
	"testing"
	"time"

	"github.com/andalanhr/hrops-backend-go/internal/domain/dashboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func leave(userID string, from, to time.Time, typ dashboard.LeaveType) dashboard.LeaveRecord {
	return dashboard.LeaveRecord{
		UserID:    userID,
		UserName:  "User " + userID,
		StartDate: from,
		EndDate:   to,
		Type:      typ,
	}
}

func TestBuildCalendar_ClipsSpanToMonth(t *testing.T) {
	t.Parallel()

	leaves := []dashboard.LeaveRecord{
		leave("a", day(2024, 12, 30), day(2025, 1, 2), dashboard.LeaveTypeLeave),
	}

	events := buildCalendar(leaves, 2025, time.January, DefaultLeaveStyles)

	require.Len(t, events, 2)
	assert.Contains(t, events, 1)
	assert.Contains(t, events, 2)
	assert.NotContains(t, events, 30)
	assert.NotContains(t, events, 31)
}

func TestBuildCalendar_DominantTypeByCount(t *testing.T) {
	t.Parallel()

	leaves := []dashboard.LeaveRecord{
		leave("a", day(2025, 6, 10), day(2025, 6, 10), dashboard.LeaveTypeSick),
		leave("b", day(2025, 6, 10), day(2025, 6, 10), dashboard.LeaveTypeSick),
		leave("c", day(2025, 6, 10), day(2025, 6, 10), dashboard.LeaveTypePermit),
	}

	events := buildCalendar(leaves, 2025, time.June, DefaultLeaveStyles)

	require.Contains(t, events, 10)
	assert.Equal(t, "red", events[10].ColorKey)
	assert.Equal(t, "2 Sick, 1 Permit", events[10].Tooltip)
}

func TestBuildCalendar_TieBrokenByStylePriority(t *testing.T) {
	t.Parallel()

	leaves := []dashboard.LeaveRecord{
		leave("a", day(2025, 6, 10), day(2025, 6, 10), dashboard.LeaveTypePermit),
		leave("b", day(2025, 6, 10), day(2025, 6, 10), dashboard.LeaveTypeLeave),
	}

	events := buildCalendar(leaves, 2025, time.June, DefaultLeaveStyles)

	// "leave" outranks "permit" in the priority table on equal counts
	require.Contains(t, events, 10)
	assert.Equal(t, "green", events[10].ColorKey)
	assert.Equal(t, "1 Leave, 1 Permit", events[10].Tooltip)
}

func TestBuildCalendar_MultiDaySpanFillsEachDay(t *testing.T) {
	t.Parallel()

	leaves := []dashboard.LeaveRecord{
		leave("a", day(2025, 6, 5), day(2025, 6, 8), dashboard.LeaveTypeLeave),
	}

	events := buildCalendar(leaves, 2025, time.June, DefaultLeaveStyles)

	require.Len(t, events, 4)
	for dom := 5; dom <= 8; dom++ {
		assert.Contains(t, events, dom)
		assert.Equal(t, "1 Leave", events[dom].Tooltip)
	}
}

func TestBuildCalendar_NoLeavesYieldsEmptyMap(t *testing.T) {
	t.Parallel()

	events := buildCalendar(nil, 2025, time.June, DefaultLeaveStyles)
	assert.Empty(t, events)
}
