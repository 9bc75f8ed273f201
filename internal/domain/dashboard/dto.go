package dashboard

import "time"

// Query carries the parsed dashboard request parameters. Month is the
// internal 1-based time.Month; the wire parameter is 0-based.
type Query struct {
	DepartmentID *string
	Year         int
	Month        time.Month
}

// DashboardResponse is the combined payload for the operations dashboard.
type DashboardResponse struct {
	Headline       HeadlineResponse   `json:"headline"`
	WeekdayBars    WeekdayBarResponse `json:"weekday_bars"`
	Chart          []ChartPoint       `json:"chart"`
	LeaveToday     []LeaveTodayItem   `json:"leave_today"`
	Departments    []DepartmentOption `json:"departments"`
	TopLate        RankingPair        `json:"top_late"`
	TopDisciplined RankingPair        `json:"top_disciplined"`
	Calendar       CalendarResponse   `json:"calendar"`
}

type HeadlineResponse struct {
	ActiveEmployees int64 `json:"active_employees"`
	Departments     int64 `json:"departments"`
	Locations       int64 `json:"locations"`
	ShiftPatterns   int64 `json:"shift_patterns"`
	Admins          int64 `json:"admins"`
	ApprovedPermits int64 `json:"approved_permits"`
}

// WeekdayBarResponse is the small per-department bar summary keyed by the
// five weekday labels.
type WeekdayBarResponse struct {
	Labels   []string            `json:"labels"`
	Datasets []WeekdayBarDataset `json:"datasets"`
}

type WeekdayBarDataset struct {
	Department string  `json:"department"`
	Values     []int64 `json:"values"`
}

// ChartPoint is one day of the trailing punctuality series. Days without
// records are present with zero values.
type ChartPoint struct {
	DayLabel         string `json:"day_label"`
	ArrivalMinutes   int    `json:"arrival_minutes"`
	DepartureMinutes int    `json:"departure_minutes"`
}

type LeaveTodayItem struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Type   string `json:"type"`
	Label  string `json:"label"`
}

type DepartmentOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// RankingPair holds the same ranking computed for two comparable periods.
type RankingPair struct {
	This []RankedEntry `json:"this"`
	Last []RankedEntry `json:"last"`
}

type RankedEntry struct {
	Rank           int     `json:"rank"`
	UserID         string  `json:"user_id"`
	Name           string  `json:"name"`
	DepartmentName string  `json:"department"`
	Metric         float64 `json:"metric"`
}

// CalendarResponse maps day-of-month to its leave event within the queried
// month. Month mirrors the 0-based wire parameter.
type CalendarResponse struct {
	Year        int                      `json:"year"`
	Month       int                      `json:"month"`
	EventsByDay map[int]CalendarDayEvent `json:"events_by_day"`
}

type CalendarDayEvent struct {
	ColorKey string `json:"color_key"`
	Tooltip  string `json:"tooltip"`
}
