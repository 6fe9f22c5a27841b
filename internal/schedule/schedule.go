// Package schedule holds the pure date arithmetic behind memorization
// plans, review obligations and streaks. Everything here is deterministic:
// callers supply the clock.
package schedule

import (
	"fmt"
	"time"

	"hifz_keep/internal/model"
)

// ReviewOffset pairs a review type with its distance from the memorize
// event, in days.
type ReviewOffset struct {
	Type model.ReviewType
	Days int
}

// ReviewOffsets are the fixed follow-up intervals applied after every
// memorize event: next day, one week, one month.
var ReviewOffsets = []ReviewOffset{
	{Type: model.ReviewShort, Days: 1},
	{Type: model.ReviewMedium, Days: 7},
	{Type: model.ReviewLong, Days: 30},
}

// Day truncates t to midnight of its calendar day.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// BuildPlanDates assigns one calendar date per item: the first perDay items
// get the start date, the next perDay items the following day, and so on.
// Assignment stops once the running date passes end, so the result may be
// shorter than itemCount. Dates are midnight-truncated and non-decreasing.
func BuildPlanDates(start, end time.Time, perDay, itemCount int) ([]time.Time, error) {
	if perDay < 1 {
		return nil, fmt.Errorf("hadiths per day must be at least 1, got %d: %w", perDay, model.ErrInvalidInput)
	}
	if itemCount < 0 {
		return nil, fmt.Errorf("item count must not be negative, got %d: %w", itemCount, model.ErrInvalidInput)
	}

	startDay := Day(start)
	endDay := Day(end)

	dates := make([]time.Time, 0, itemCount)
	for i := 0; i < itemCount; i++ {
		d := startDay.AddDate(0, 0, i/perDay)
		if d.After(endDay) {
			break
		}
		dates = append(dates, d)
	}
	return dates, nil
}

// ReviewDates returns the scheduled dates for the fixed offsets, in the
// same order as ReviewOffsets.
func ReviewDates(now time.Time) []time.Time {
	day := Day(now)
	dates := make([]time.Time, len(ReviewOffsets))
	for i, off := range ReviewOffsets {
		dates[i] = day.AddDate(0, 0, off.Days)
	}
	return dates
}
