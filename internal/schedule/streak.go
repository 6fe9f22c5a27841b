package schedule

import (
	"time"

	"hifz_keep/internal/model"
)

// AdvanceStreak records activity on today and mutates rec accordingly.
// It returns false when today's activity was already counted (same-day
// calls are a no-op). Three cases:
//
//	gap == 1 day  -> current++, longest = max(longest, current)
//	gap  > 1 day  -> current = 1, longest unchanged
//	gap == 0 days -> no-op
//
// A zero-valued rec (no prior activity) initializes current = longest = 1.
func AdvanceStreak(rec *model.Streak, today time.Time) bool {
	day := Day(today)

	if rec.LastActivityDate.IsZero() {
		rec.Current = 1
		rec.Longest = 1
		rec.LastActivityDate = day
		return true
	}

	last := Day(rec.LastActivityDate)

	// Compare calendar days, not wall-clock durations: a DST transition
	// makes the next day 23 or 25 hours long.
	switch {
	case !day.After(last):
		return false
	case day.Equal(last.AddDate(0, 0, 1)):
		rec.Current++
		if rec.Current > rec.Longest {
			rec.Longest = rec.Current
		}
	default:
		rec.Current = 1
	}
	rec.LastActivityDate = day
	return true
}
