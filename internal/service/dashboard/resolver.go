package dashboard

import (
	"time"

	"github.com/andalanhr/hrops-backend-go/internal/domain/dashboard"
	"github.com/andalanhr/hrops-backend-go/internal/pkg/timeutil"
)

// shiftKey identifies one (user, day) resolution. Day must always be a
// timeutil.StartOfDay value so struct equality is well-defined.
type shiftKey struct {
	userID string
	day    time.Time
}

// Resolver picks the shift assignment that applies to a user on a given day.
// Assignments per user must be supplied most recently created first; when
// dated overrides overlap, the newest one wins.
type Resolver struct {
	byUser map[string][]dashboard.ShiftAssignment
	memo   map[shiftKey]*dashboard.ShiftAssignment
}

func NewResolver(byUser map[string][]dashboard.ShiftAssignment) *Resolver {
	return &Resolver{
		byUser: byUser,
		memo:   make(map[shiftKey]*dashboard.ShiftAssignment),
	}
}

// ResolveFor returns the applicable assignment or nil when the user has no
// scheduled shift that day. Nil is not an error; callers exclude such days
// from lateness math.
func (r *Resolver) ResolveFor(userID string, day time.Time) *dashboard.ShiftAssignment {
	key := shiftKey{userID: userID, day: timeutil.StartOfDay(day)}
	if resolved, ok := r.memo[key]; ok {
		return resolved
	}
	resolved := resolve(r.byUser[userID], key.day)
	r.memo[key] = resolved
	return resolved
}

// resolve implements the precedence rule: the first dated override whose
// interval contains the day wins immediately; otherwise the first standing
// default; otherwise nil.
func resolve(assignments []dashboard.ShiftAssignment, day time.Time) *dashboard.ShiftAssignment {
	for i := range assignments {
		a := &assignments[i]
		if a.EffectiveStart == nil {
			continue
		}
		if day.Before(timeutil.StartOfDay(*a.EffectiveStart)) {
			continue
		}
		// nil EffectiveEnd means the override is open-ended
		if a.EffectiveEnd != nil && day.After(timeutil.StartOfDay(*a.EffectiveEnd)) {
			continue
		}
		return a
	}
	for i := range assignments {
		if assignments[i].EffectiveStart == nil {
			return &assignments[i]
		}
	}
	return nil
}
