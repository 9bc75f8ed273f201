package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/andalanhr/hrops-backend-go/internal/domain/dashboard"
	"github.com/andalanhr/hrops-backend-go/internal/pkg/database"
)

type dashboardRepositoryImpl struct {
	db database.Querier
}

// NewDashboardRepository builds the read-only dashboard repository. It takes
// the Querier interface rather than the pool so tests can substitute a mock.
func NewDashboardRepository(db database.Querier) dashboard.Repository {
	return &dashboardRepositoryImpl{db: db}
}

// GetHeadlineCounts returns all headline counts in a single query.
func (r *dashboardRepositoryImpl) GetHeadlineCounts(ctx context.Context) (*dashboard.HeadlineCounts, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM users WHERE deleted_at IS NULL AND status = 'active') AS active_employees,
			(SELECT COUNT(*) FROM departments WHERE deleted_at IS NULL) AS departments,
			(SELECT COUNT(*) FROM locations WHERE deleted_at IS NULL) AS locations,
			(SELECT COUNT(*) FROM shifts WHERE deleted_at IS NULL) AS shift_patterns,
			(SELECT COUNT(*) FROM users WHERE deleted_at IS NULL AND role = 'admin') AS admins,
			(SELECT COUNT(*) FROM leaves WHERE status = 'approved' AND type = 'permit') AS approved_permits
	`

	var counts dashboard.HeadlineCounts
	err := r.db.QueryRow(ctx, query).Scan(
		&counts.ActiveEmployees,
		&counts.Departments,
		&counts.Locations,
		&counts.ShiftPatterns,
		&counts.Admins,
		&counts.ApprovedPermits,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get headline counts: %w", err)
	}
	return &counts, nil
}

// ListAttendanceBetween returns punches in [from, to] with the user and
// department names the rankings need, ordered so repeated runs over the same
// data scan identically.
func (r *dashboardRepositoryImpl) ListAttendanceBetween(ctx context.Context, from, to time.Time, departmentID *string) ([]dashboard.AttendanceRecord, error) {
	query := `
		SELECT a.id, a.user_id, u.name, COALESCE(d.name, ''), a.date, a.check_in, a.check_out, COALESCE(a.check_in_status, '')
		FROM attendances a
		INNER JOIN users u ON u.id = a.user_id
		LEFT JOIN departments d ON d.id = u.department_id
		WHERE a.date >= $1 AND a.date <= $2 AND a.check_in IS NOT NULL
	`
	args := []interface{}{from, to}
	if departmentID != nil {
		query += ` AND u.department_id = $3`
		args = append(args, *departmentID)
	}
	query += ` ORDER BY a.date, a.user_id`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	var records []dashboard.AttendanceRecord
	for rows.Next() {
		var rec dashboard.AttendanceRecord
		err := rows.Scan(
			&rec.ID,
			&rec.UserID,
			&rec.UserName,
			&rec.DepartmentName,
			&rec.Date,
			&rec.CheckIn,
			&rec.CheckOut,
			&rec.CheckInStatus,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance row: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read attendance rows: %w", err)
	}
	return records, nil
}

// ListApprovedLeavesOverlapping returns approved leaves whose span touches
// [from, to].
func (r *dashboardRepositoryImpl) ListApprovedLeavesOverlapping(ctx context.Context, from, to time.Time) ([]dashboard.LeaveRecord, error) {
	query := `
		SELECT l.user_id, u.name, l.start_date, l.end_date, l.type
		FROM leaves l
		INNER JOIN users u ON u.id = l.user_id
		WHERE l.status = 'approved' AND l.start_date <= $2 AND l.end_date >= $1
		ORDER BY l.start_date, l.user_id
	`

	rows, err := r.db.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list leaves: %w", err)
	}
	defer rows.Close()

	var leaves []dashboard.LeaveRecord
	for rows.Next() {
		var leave dashboard.LeaveRecord
		var rawType string
		err := rows.Scan(
			&leave.UserID,
			&leave.UserName,
			&leave.StartDate,
			&leave.EndDate,
			&rawType,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave row: %w", err)
		}
		leave.Type = dashboard.NormalizeLeaveType(rawType)
		leaves = append(leaves, leave)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read leave rows: %w", err)
	}
	return leaves, nil
}

// ListShiftAssignments returns assignments for exactly the supplied users,
// newest first per user so the resolver's tie-break holds.
func (r *dashboardRepositoryImpl) ListShiftAssignments(ctx context.Context, userIDs []string) (map[string][]dashboard.ShiftAssignment, error) {
	query := `
		SELECT s.user_id, s.start_time, s.end_time, s.effective_start, s.effective_end, s.status, s.created_at
		FROM user_shifts s
		WHERE s.user_id = ANY($1)
		ORDER BY s.user_id, s.created_at DESC
	`

	rows, err := r.db.Query(ctx, query, userIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list shift assignments: %w", err)
	}
	defer rows.Close()

	assignments := make(map[string][]dashboard.ShiftAssignment)
	for rows.Next() {
		var a dashboard.ShiftAssignment
		var status string
		err := rows.Scan(
			&a.UserID,
			&a.Pattern.Start,
			&a.Pattern.End,
			&a.EffectiveStart,
			&a.EffectiveEnd,
			&status,
			&a.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift assignment row: %w", err)
		}
		a.Status = dashboard.ShiftStatus(status)
		assignments[a.UserID] = append(assignments[a.UserID], a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read shift assignment rows: %w", err)
	}
	return assignments, nil
}

// ListDepartments returns the department filter options.
func (r *dashboardRepositoryImpl) ListDepartments(ctx context.Context) ([]dashboard.Department, error) {
	query := `
		SELECT id, name
		FROM departments
		WHERE deleted_at IS NULL
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	defer rows.Close()

	var departments []dashboard.Department
	for rows.Next() {
		var dept dashboard.Department
		if err := rows.Scan(&dept.ID, &dept.Name); err != nil {
			return nil, fmt.Errorf("failed to scan department row: %w", err)
		}
		departments = append(departments, dept)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read department rows: %w", err)
	}
	return departments, nil
}
