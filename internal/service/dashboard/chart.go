package dashboard

import (
	"time"

	"github.com/andalanhr/hrops-backend-go/internal/domain/dashboard"
	"github.com/andalanhr/hrops-backend-go/internal/pkg/timeutil"
)

// buildChart sums late-arrival and early-departure minutes per trailing
// window day. Every window day appears in the result, zero-valued when no
// record matched it.
func buildChart(window []time.Time, records []dashboard.AttendanceRecord, resolver *Resolver, labels DayLabels) []dashboard.ChartPoint {
	points := make([]dashboard.ChartPoint, len(window))
	index := make(map[time.Time]int, len(window))
	for i, day := range window {
		points[i] = dashboard.ChartPoint{DayLabel: labels[day.Weekday()]}
		index[day] = i
	}

	for _, rec := range records {
		day := timeutil.StartOfDay(rec.Date)
		i, ok := index[day]
		if !ok {
			continue
		}
		delta := computeDelta(rec, resolver.ResolveFor(rec.UserID, day))
		points[i].ArrivalMinutes += delta.LateArrivalMinutes
		points[i].DepartureMinutes += delta.EarlyDepartureMinutes
	}

	return points
}
