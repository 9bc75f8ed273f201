package dashboard

import (
	"fmt"
	"strings"
	"time"

	"github.com/andalanhr/hrops-backend-go/internal/domain/dashboard"
	"github.com/andalanhr/hrops-backend-go/internal/pkg/timeutil"
)

// buildCalendar expands approved leave spans into per-day events, clipped to
// the queried month. Days outside the month never appear.
func buildCalendar(leaves []dashboard.LeaveRecord, year int, month time.Month, styles []LeaveTypeStyle) map[int]dashboard.CalendarDayEvent {
	monthStart, monthEnd := timeutil.MonthBounds(year, month)

	counts := make(map[int]map[dashboard.LeaveType]int)
	for _, leave := range leaves {
		from := timeutil.StartOfDay(leave.StartDate)
		if from.Before(monthStart) {
			from = monthStart
		}
		to := timeutil.StartOfDay(leave.EndDate)
		if to.After(monthEnd) {
			to = monthEnd
		}
		for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
			byType := counts[day.Day()]
			if byType == nil {
				byType = make(map[dashboard.LeaveType]int)
				counts[day.Day()] = byType
			}
			byType[leave.Type]++
		}
	}

	events := make(map[int]dashboard.CalendarDayEvent, len(counts))
	for dayOfMonth, byType := range counts {
		events[dayOfMonth] = reduceDay(byType, styles)
	}
	return events
}

// reduceDay picks the dominant type for single-color display and builds the
// tooltip. The styles order doubles as the tie-break priority, so iterating
// it keeps both outputs deterministic.
func reduceDay(byType map[dashboard.LeaveType]int, styles []LeaveTypeStyle) dashboard.CalendarDayEvent {
	var event dashboard.CalendarDayEvent
	best := 0
	parts := make([]string, 0, len(byType))
	for _, style := range styles {
		n := byType[style.Type]
		if n == 0 {
			continue
		}
		if n > best {
			best = n
			event.ColorKey = style.ColorKey
		}
		parts = append(parts, fmt.Sprintf("%d %s", n, style.Label))
	}
	event.Tooltip = strings.Join(parts, ", ")
	return event
}
