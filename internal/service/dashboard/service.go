package dashboard

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/andalanhr/hrops-backend-go/internal/domain/dashboard"
	"github.com/andalanhr/hrops-backend-go/internal/pkg/timeutil"
	"golang.org/x/sync/errgroup"
)

const trailingChartDays = 7

type DashboardServiceImpl struct {
	dashboard.Repository
	now         func() time.Time
	dayLabels   DayLabels
	barLabels   []string
	leaveStyles []LeaveTypeStyle
}

func NewDashboardService(repo dashboard.Repository) dashboard.Service {
	return &DashboardServiceImpl{
		Repository:  repo,
		now:         time.Now,
		dayLabels:   DefaultDayLabels,
		barLabels:   DefaultWeekdayBarLabels,
		leaveStyles: DefaultLeaveStyles,
	}
}

// GetDashboard runs the four pipeline stages: snapshot fan-out, working-set
// derivation, dependent shift fetch, pure aggregation.
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context, q dashboard.Query) (*dashboard.DashboardResponse, error) {
	now := s.now().UTC()
	today := timeutil.StartOfDay(now)
	window := timeutil.TrailingWindow(now, trailingChartDays)

	thisStart, thisEnd := timeutil.MonthBounds(now.Year(), now.Month())
	lastRef := thisStart.AddDate(0, -1, 0)
	lastStart, lastEnd := timeutil.MonthBounds(lastRef.Year(), lastRef.Month())
	calStart, calEnd := timeutil.MonthBounds(q.Year, q.Month)

	// Stage 1: independent snapshot reads, fanned out like the reads are
	// issued against one point in time. Each read is read-only so ordering
	// between them does not matter.
	var (
		headline    *dashboard.HeadlineCounts
		windowRecs  []dashboard.AttendanceRecord
		thisRecs    []dashboard.AttendanceRecord
		lastRecs    []dashboard.AttendanceRecord
		monthLeaves []dashboard.LeaveRecord
		todayLeaves []dashboard.LeaveRecord
		departments []dashboard.Department
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		headline, err = s.GetHeadlineCounts(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		windowRecs, err = s.ListAttendanceBetween(gCtx, window[0], today, q.DepartmentID)
		return err
	})
	g.Go(func() error {
		var err error
		thisRecs, err = s.ListAttendanceBetween(gCtx, thisStart, thisEnd, q.DepartmentID)
		return err
	})
	g.Go(func() error {
		var err error
		lastRecs, err = s.ListAttendanceBetween(gCtx, lastStart, lastEnd, q.DepartmentID)
		return err
	})
	g.Go(func() error {
		var err error
		monthLeaves, err = s.ListApprovedLeavesOverlapping(gCtx, calStart, calEnd)
		return err
	})
	g.Go(func() error {
		var err error
		todayLeaves, err = s.ListApprovedLeavesOverlapping(gCtx, today, today)
		return err
	})
	g.Go(func() error {
		var err error
		departments, err = s.ListDepartments(gCtx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("dashboard snapshot read: %w", err)
	}

	// Stage 2: derive the working set from the attendance batches. Shift
	// data is only loaded for users the response actually references.
	userIDs := collectUserIDs(windowRecs, thisRecs, lastRecs)

	// Stage 3: dependent fetch.
	assignments := make(map[string][]dashboard.ShiftAssignment)
	if len(userIDs) > 0 {
		var err error
		assignments, err = s.ListShiftAssignments(ctx, userIDs)
		if err != nil {
			return nil, fmt.Errorf("dashboard shift lookup: %w", err)
		}
	}

	// Stage 4: pure aggregation.
	resolver := NewResolver(assignments)
	thisLate, thisDisciplined := buildRankings(thisRecs, resolver)
	lastLate, lastDisciplined := buildRankings(lastRecs, resolver)

	return &dashboard.DashboardResponse{
		Headline: dashboard.HeadlineResponse{
			ActiveEmployees: headline.ActiveEmployees,
			Departments:     headline.Departments,
			Locations:       headline.Locations,
			ShiftPatterns:   headline.ShiftPatterns,
			Admins:          headline.Admins,
			ApprovedPermits: headline.ApprovedPermits,
		},
		WeekdayBars: buildWeekdayBars(windowRecs, s.barLabels),
		Chart:       buildChart(window, windowRecs, resolver, s.dayLabels),
		LeaveToday:  leaveTodayItems(todayLeaves, s.leaveStyles),
		Departments: departmentOptions(departments),
		TopLate: dashboard.RankingPair{
			This: thisLate,
			Last: lastLate,
		},
		TopDisciplined: dashboard.RankingPair{
			This: thisDisciplined,
			Last: lastDisciplined,
		},
		Calendar: dashboard.CalendarResponse{
			Year:        q.Year,
			Month:       int(q.Month) - 1,
			EventsByDay: buildCalendar(monthLeaves, q.Year, q.Month, s.leaveStyles),
		},
	}, nil
}

// collectUserIDs returns the distinct user IDs across the attendance batches,
// sorted so the dependent fetch gets a deterministic argument.
func collectUserIDs(batches ...[]dashboard.AttendanceRecord) []string {
	seen := make(map[string]struct{})
	ids := make([]string, 0)
	for _, batch := range batches {
		for _, rec := range batch {
			if _, ok := seen[rec.UserID]; ok {
				continue
			}
			seen[rec.UserID] = struct{}{}
			ids = append(ids, rec.UserID)
		}
	}
	sort.Strings(ids)
	return ids
}

func leaveTodayItems(leaves []dashboard.LeaveRecord, styles []LeaveTypeStyle) []dashboard.LeaveTodayItem {
	labels := make(map[dashboard.LeaveType]string, len(styles))
	for _, style := range styles {
		labels[style.Type] = style.Label
	}
	items := make([]dashboard.LeaveTodayItem, 0, len(leaves))
	for _, leave := range leaves {
		items = append(items, dashboard.LeaveTodayItem{
			UserID: leave.UserID,
			Name:   leave.UserName,
			Type:   string(leave.Type),
			Label:  labels[leave.Type],
		})
	}
	return items
}

func departmentOptions(departments []dashboard.Department) []dashboard.DepartmentOption {
	options := make([]dashboard.DepartmentOption, 0, len(departments))
	for _, dept := range departments {
		options = append(options, dashboard.DepartmentOption{ID: dept.ID, Name: dept.Name})
	}
	return options
}
