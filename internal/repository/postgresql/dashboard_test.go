package postgresql

import (
	"context"
	"testing"
	"time"

	"github.com/andalanhr/hrops-backend-go/internal/domain/dashboard"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (pgxmock.PgxPoolIface, dashboard.Repository) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, NewDashboardRepository(mock)
}

func TestDashboardRepository_GetHeadlineCounts(t *testing.T) {
	t.Parallel()
	mock, repo := newMockRepo(t)

	rows := pgxmock.NewRows([]string{
		"active_employees", "departments", "locations", "shift_patterns", "admins", "approved_permits",
	}).AddRow(int64(42), int64(5), int64(3), int64(4), int64(2), int64(7))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM users`).WillReturnRows(rows)

	counts, err := repo.GetHeadlineCounts(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(42), counts.ActiveEmployees)
	assert.Equal(t, int64(5), counts.Departments)
	assert.Equal(t, int64(7), counts.ApprovedPermits)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDashboardRepository_ListAttendanceBetween(t *testing.T) {
	t.Parallel()
	mock, repo := newMockRepo(t)

	from := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	checkIn := time.Date(2025, 6, 10, 9, 15, 0, 0, time.UTC)

	rows := pgxmock.NewRows([]string{"id", "user_id", "name", "dept_name", "date", "check_in", "check_out", "check_in_status"}).
		AddRow("att-1", "u1", "Budi", "Engineering", from.AddDate(0, 0, 1), checkIn, nil, "late")
	mock.ExpectQuery(`FROM attendances`).WithArgs(from, to).WillReturnRows(rows)

	records, err := repo.ListAttendanceBetween(context.Background(), from, to, nil)
	require.NoError(t, err)

	require.Len(t, records, 1)
	assert.Equal(t, "u1", records[0].UserID)
	assert.Equal(t, "Budi", records[0].UserName)
	assert.Equal(t, "Engineering", records[0].DepartmentName)
	assert.Equal(t, checkIn, records[0].CheckIn)
	assert.Nil(t, records[0].CheckOut)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDashboardRepository_ListAttendanceBetween_DepartmentFilter(t *testing.T) {
	t.Parallel()
	mock, repo := newMockRepo(t)

	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	deptID := "dept-1"

	rows := pgxmock.NewRows([]string{"id", "user_id", "name", "dept_name", "date", "check_in", "check_out", "check_in_status"})
	mock.ExpectQuery(`AND u\.department_id = \$3`).WithArgs(from, to, deptID).WillReturnRows(rows)

	records, err := repo.ListAttendanceBetween(context.Background(), from, to, &deptID)
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDashboardRepository_ListApprovedLeavesOverlapping_NormalizesType(t *testing.T) {
	t.Parallel()
	mock, repo := newMockRepo(t)

	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	rows := pgxmock.NewRows([]string{"user_id", "name", "start_date", "end_date", "type"}).
		AddRow("u1", "Sari", from, from.AddDate(0, 0, 2), "sick").
		AddRow("u2", "Andi", from, from, "bereavement")
	mock.ExpectQuery(`FROM leaves`).WithArgs(from, to).WillReturnRows(rows)

	leaves, err := repo.ListApprovedLeavesOverlapping(context.Background(), from, to)
	require.NoError(t, err)

	require.Len(t, leaves, 2)
	assert.Equal(t, dashboard.LeaveTypeSick, leaves[0].Type)
	// unknown upstream types collapse to "other"
	assert.Equal(t, dashboard.LeaveTypeOther, leaves[1].Type)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDashboardRepository_ListShiftAssignments_GroupsByUserNewestFirst(t *testing.T) {
	t.Parallel()
	mock, repo := newMockRepo(t)

	start := time.Date(0, 1, 1, 9, 0, 0, 0, time.UTC)
	end := time.Date(0, 1, 1, 18, 0, 0, 0, time.UTC)
	newer := time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC)
	older := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	effective := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	rows := pgxmock.NewRows([]string{"user_id", "start_time", "end_time", "effective_start", "effective_end", "status", "created_at"}).
		AddRow("u1", &start, &end, &effective, nil, "work", newer).
		AddRow("u1", &start, &end, nil, nil, "work", older)
	mock.ExpectQuery(`FROM user_shifts`).WithArgs([]string{"u1"}).WillReturnRows(rows)

	assignments, err := repo.ListShiftAssignments(context.Background(), []string{"u1"})
	require.NoError(t, err)

	require.Len(t, assignments["u1"], 2)
	assert.NotNil(t, assignments["u1"][0].EffectiveStart)
	assert.Nil(t, assignments["u1"][1].EffectiveStart)
	assert.Equal(t, dashboard.ShiftStatusWork, assignments["u1"][0].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDashboardRepository_ListDepartments(t *testing.T) {
	t.Parallel()
	mock, repo := newMockRepo(t)

	rows := pgxmock.NewRows([]string{"id", "name"}).
		AddRow("d1", "Engineering").
		AddRow("d2", "Finance")
	mock.ExpectQuery(`FROM departments`).WillReturnRows(rows)

	departments, err := repo.ListDepartments(context.Background())
	require.NoError(t, err)

	require.Len(t, departments, 2)
	assert.Equal(t, "Engineering", departments[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}
