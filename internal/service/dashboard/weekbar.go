package dashboard

import (
	"sort"
	"time"

	"github.com/andalanhr/hrops-backend-go/internal/domain/dashboard"
	"github.com/andalanhr/hrops-backend-go/internal/pkg/timeutil"
)

// buildWeekdayBars counts attendance per department across the Monday-Friday
// labels of the trailing window. Weekend records are skipped; departments are
// ordered by name so the dataset order is stable.
func buildWeekdayBars(records []dashboard.AttendanceRecord, labels []string) dashboard.WeekdayBarResponse {
	byDepartment := make(map[string][]int64)
	for _, rec := range records {
		weekday := timeutil.StartOfDay(rec.Date).Weekday()
		if weekday == time.Saturday || weekday == time.Sunday {
			continue
		}
		values := byDepartment[rec.DepartmentName]
		if values == nil {
			values = make([]int64, len(labels))
			byDepartment[rec.DepartmentName] = values
		}
		values[int(weekday)-1]++ // Monday is index 0
	}

	names := make([]string, 0, len(byDepartment))
	for name := range byDepartment {
		names = append(names, name)
	}
	sort.Strings(names)

	datasets := make([]dashboard.WeekdayBarDataset, 0, len(names))
	for _, name := range names {
		datasets = append(datasets, dashboard.WeekdayBarDataset{
			Department: name,
			Values:     byDepartment[name],
		})
	}

	return dashboard.WeekdayBarResponse{Labels: labels, Datasets: datasets}
}
