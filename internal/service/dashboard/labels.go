package dashboard

import (
	"time"

	"github.com/andalanhr/hrops-backend-go/internal/domain/dashboard"
)

// DayLabels maps a weekday to the label shown on the trailing chart.
type DayLabels map[time.Weekday]string

var DefaultDayLabels = DayLabels{
	time.Monday:    "Mon",
	time.Tuesday:   "Tue",
	time.Wednesday: "Wed",
	time.Thursday:  "Thu",
	time.Friday:    "Fri",
	time.Saturday:  "Sat",
	time.Sunday:    "Sun",
}

// DefaultWeekdayBarLabels are the five labels of the per-department bar
// summary, Monday first.
var DefaultWeekdayBarLabels = []string{"Mon", "Tue", "Wed", "Thu", "Fri"}

// LeaveTypeStyle binds a leave type to its display label and calendar color.
type LeaveTypeStyle struct {
	Type     dashboard.LeaveType
	Label    string
	ColorKey string
}

// DefaultLeaveStyles is ordered: when two types tie for dominance on a
// calendar day, the earlier entry wins.
var DefaultLeaveStyles = []LeaveTypeStyle{
	{Type: dashboard.LeaveTypeLeave, Label: "Leave", ColorKey: "green"},
	{Type: dashboard.LeaveTypeSick, Label: "Sick", ColorKey: "red"},
	{Type: dashboard.LeaveTypePermit, Label: "Permit", ColorKey: "yellow"},
	{Type: dashboard.LeaveTypeOther, Label: "Other", ColorKey: "gray"},
}
