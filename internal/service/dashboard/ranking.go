package dashboard

import (
	"sort"

	"github.com/andalanhr/hrops-backend-go/internal/domain/dashboard"
)

const rankingLimit = 5

// buildRankings reduces one period's records into the two top-5 lists. The
// shift-derived arithmetic is the single source of truth for lateness: a
// record counts as late iff its computed late-arrival minutes are positive,
// and the same minutes feed the total. The upstream status label is ignored
// here because it can go stale when a shift is edited after the punch.
func buildRankings(records []dashboard.AttendanceRecord, resolver *Resolver) (topLate, topDisciplined []dashboard.RankedEntry) {
	aggregates := make(map[string]*dashboard.UserAggregate)
	for _, rec := range records {
		agg, ok := aggregates[rec.UserID]
		if !ok {
			agg = &dashboard.UserAggregate{
				UserID:         rec.UserID,
				Name:           rec.UserName,
				DepartmentName: rec.DepartmentName,
			}
			aggregates[rec.UserID] = agg
		}
		agg.AttendanceCount++

		delta := computeDelta(rec, resolver.ResolveFor(rec.UserID, rec.Date))
		if delta.LateArrivalMinutes > 0 {
			agg.LateCount++
			agg.TotalLateMinutes += delta.LateArrivalMinutes
		}
	}

	all := make([]*dashboard.UserAggregate, 0, len(aggregates))
	late := make([]*dashboard.UserAggregate, 0, len(aggregates))
	for _, agg := range aggregates {
		all = append(all, agg)
		if agg.LateCount > 0 {
			late = append(late, agg)
		}
	}

	// The final UserID comparison keeps the output order byte-identical
	// across runs over the same input.
	sort.Slice(late, func(i, j int) bool {
		if late[i].LateCount != late[j].LateCount {
			return late[i].LateCount > late[j].LateCount
		}
		if late[i].TotalLateMinutes != late[j].TotalLateMinutes {
			return late[i].TotalLateMinutes > late[j].TotalLateMinutes
		}
		return late[i].UserID < late[j].UserID
	})
	topLate = rankEntries(late, func(a *dashboard.UserAggregate) float64 {
		return float64(a.LateCount)
	})

	sort.Slice(all, func(i, j int) bool {
		si, sj := punctualityScore(all[i]), punctualityScore(all[j])
		if si != sj {
			return si > sj
		}
		if all[i].AttendanceCount != all[j].AttendanceCount {
			return all[i].AttendanceCount > all[j].AttendanceCount
		}
		return all[i].UserID < all[j].UserID
	})
	topDisciplined = rankEntries(all, punctualityScore)

	return topLate, topDisciplined
}

// punctualityScore is the percentage of a user's attendance days that were
// not late over the period.
func punctualityScore(a *dashboard.UserAggregate) float64 {
	if a.AttendanceCount == 0 {
		return 0
	}
	return float64(a.AttendanceCount-a.LateCount) / float64(a.AttendanceCount) * 100
}

func rankEntries(aggregates []*dashboard.UserAggregate, metric func(*dashboard.UserAggregate) float64) []dashboard.RankedEntry {
	if len(aggregates) > rankingLimit {
		aggregates = aggregates[:rankingLimit]
	}
	entries := make([]dashboard.RankedEntry, 0, len(aggregates))
	for i, agg := range aggregates {
		entries = append(entries, dashboard.RankedEntry{
			Rank:           i + 1,
			UserID:         agg.UserID,
			Name:           agg.Name,
			DepartmentName: agg.DepartmentName,
			Metric:         metric(agg),
		})
	}
	return entries
}
