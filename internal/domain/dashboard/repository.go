package dashboard

import (
	"context"
	"time"
)

// Repository defines the read-only queries the aggregation engine consumes.
// All methods read a consistent snapshot; nothing here mutates state.
type Repository interface {
	// GetHeadlineCounts returns the plain dashboard counts in a single query.
	GetHeadlineCounts(ctx context.Context) (*HeadlineCounts, error)

	// ListAttendanceBetween returns attendance records whose date falls in
	// [from, to], with user and department names joined. A non-nil
	// departmentID restricts the result to one department.
	ListAttendanceBetween(ctx context.Context, from, to time.Time, departmentID *string) ([]AttendanceRecord, error)

	// ListApprovedLeavesOverlapping returns approved leaves whose
	// [StartDate, EndDate] span overlaps [from, to].
	ListApprovedLeavesOverlapping(ctx context.Context, from, to time.Time) ([]LeaveRecord, error)

	// ListShiftAssignments returns each user's assignments ordered most
	// recently created first, so overlapping dated overrides resolve to the
	// newest one.
	ListShiftAssignments(ctx context.Context, userIDs []string) (map[string][]ShiftAssignment, error)

	// ListDepartments returns the department filter options ordered by name.
	ListDepartments(ctx context.Context) ([]Department, error)
}
