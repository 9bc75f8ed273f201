package dashboard

import (
	"github.com/andalanhr/hrops-backend-go/internal/domain/dashboard"
	"github.com/andalanhr/hrops-backend-go/internal/pkg/timeutil"
)

// computeDelta derives the lateness pair for one attendance record against
// its resolved shift. Unscheduled days, off days and patterns with a missing
// clock-in time all degrade to zeros rather than failing the request.
func computeDelta(rec dashboard.AttendanceRecord, shift *dashboard.ShiftAssignment) dashboard.DailyDelta {
	delta := dashboard.DailyDelta{Date: timeutil.StartOfDay(rec.Date)}
	if shift == nil || shift.Status != dashboard.ShiftStatusWork {
		return delta
	}

	if start := timeutil.CombineDateAndTime(rec.Date, shift.Pattern.Start); start != nil {
		if minutes := int(rec.CheckIn.Sub(*start).Minutes()); minutes > 0 {
			delta.LateArrivalMinutes = minutes
		}
	}

	if rec.CheckOut != nil {
		if end := timeutil.CombineDateAndTime(rec.Date, shift.Pattern.End); end != nil {
			if minutes := int(end.Sub(*rec.CheckOut).Minutes()); minutes > 0 {
				delta.EarlyDepartureMinutes = minutes
			}
		}
	}

	return delta
}
