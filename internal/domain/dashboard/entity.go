package dashboard

import "time"

type ShiftStatus string

const (
	ShiftStatusWork ShiftStatus = "work"
	ShiftStatusOff  ShiftStatus = "off"
)

type LeaveType string

const (
	LeaveTypeLeave  LeaveType = "leave"
	LeaveTypeSick   LeaveType = "sick"
	LeaveTypePermit LeaveType = "permit"
	LeaveTypeOther  LeaveType = "other"
)

// NormalizeLeaveType maps raw upstream type strings onto the enum; anything
// unrecognized becomes LeaveTypeOther.
func NormalizeLeaveType(raw string) LeaveType {
	switch LeaveType(raw) {
	case LeaveTypeLeave, LeaveTypeSick, LeaveTypePermit:
		return LeaveType(raw)
	default:
		return LeaveTypeOther
	}
}

// AttendanceRecord is one punch row as read for aggregation. Immutable once
// queried; the capture flow that writes it lives outside this service.
type AttendanceRecord struct {
	ID            string
	UserID        string
	Date          time.Time // calendar day, midnight UTC
	CheckIn       time.Time
	CheckOut      *time.Time
	CheckInStatus string // free-text label written upstream, possibly stale

	// DTO, joined by the repository
	UserName       string
	DepartmentName string
}

// WorkPattern is a schedule's clock-in/clock-out pair. Time-of-day only, no
// date component; either side may be missing upstream.
type WorkPattern struct {
	Start *time.Time
	End   *time.Time
}

// ShiftAssignment binds a work pattern to a user. An assignment without an
// EffectiveStart is a standing default; one with an EffectiveStart is a dated
// override restricted to [EffectiveStart, EffectiveEnd], where a nil
// EffectiveEnd means open-ended.
type ShiftAssignment struct {
	UserID         string
	Pattern        WorkPattern
	EffectiveStart *time.Time
	EffectiveEnd   *time.Time
	Status         ShiftStatus
	CreatedAt      time.Time
}

// LeaveRecord is an approved leave span, inclusive on both ends.
type LeaveRecord struct {
	UserID    string
	UserName  string
	StartDate time.Time
	EndDate   time.Time
	Type      LeaveType
}

type Department struct {
	ID   string
	Name string
}

// HeadlineCounts are the plain counts shown at the top of the dashboard.
type HeadlineCounts struct {
	ActiveEmployees int64
	Departments     int64
	Locations       int64
	ShiftPatterns   int64
	Admins          int64
	ApprovedPermits int64
}

// DailyDelta is the lateness pair for one attendance record. Both fields are
// always >= 0; unscheduled days stay at zero.
type DailyDelta struct {
	Date                  time.Time
	LateArrivalMinutes    int
	EarlyDepartureMinutes int
}

// UserAggregate accumulates one user's attendance over a period.
type UserAggregate struct {
	UserID           string
	Name             string
	DepartmentName   string
	AttendanceCount  int
	LateCount        int
	TotalLateMinutes int
}
