package schedule

import (
	"testing"
	"time"

	"hifz_keep/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestAdvanceStreak_FirstActivity(t *testing.T) {
	rec := &model.Streak{}
	today := date("2024-05-01")

	changed := AdvanceStreak(rec, today)

	assert.True(t, changed)
	assert.Equal(t, 1, rec.Current)
	assert.Equal(t, 1, rec.Longest)
	assert.True(t, rec.LastActivityDate.Equal(today))
}

func TestAdvanceStreak_ConsecutiveDay(t *testing.T) {
	rec := &model.Streak{Current: 3, Longest: 5, LastActivityDate: date("2024-05-01")}

	changed := AdvanceStreak(rec, date("2024-05-02"))

	assert.True(t, changed)
	assert.Equal(t, 4, rec.Current)
	assert.Equal(t, 5, rec.Longest, "longest stays when new current is below it")
}

func TestAdvanceStreak_NewLongest(t *testing.T) {
	rec := &model.Streak{Current: 5, Longest: 5, LastActivityDate: date("2024-05-01")}

	changed := AdvanceStreak(rec, date("2024-05-02"))

	assert.True(t, changed)
	assert.Equal(t, 6, rec.Current)
	assert.Equal(t, 6, rec.Longest)
}

func TestAdvanceStreak_Broken(t *testing.T) {
	rec := &model.Streak{Current: 7, Longest: 9, LastActivityDate: date("2024-05-01")}

	changed := AdvanceStreak(rec, date("2024-05-04"))

	assert.True(t, changed)
	assert.Equal(t, 1, rec.Current)
	assert.Equal(t, 9, rec.Longest, "longest never decreases")
	assert.True(t, rec.LastActivityDate.Equal(date("2024-05-04")))
}

func TestAdvanceStreak_SameDayIsNoOp(t *testing.T) {
	last := date("2024-05-01")
	rec := &model.Streak{Current: 4, Longest: 6, LastActivityDate: last}

	changed := AdvanceStreak(rec, date("2024-05-01"))

	assert.False(t, changed)
	assert.Equal(t, 4, rec.Current)
	assert.Equal(t, 6, rec.Longest)
	assert.True(t, rec.LastActivityDate.Equal(last))
}

func TestAdvanceStreak_SameDayIgnoresTimeOfDay(t *testing.T) {
	rec := &model.Streak{Current: 2, Longest: 2, LastActivityDate: date("2024-05-01")}

	later := time.Date(2024, 5, 1, 23, 59, 0, 0, time.UTC)
	changed := AdvanceStreak(rec, later)

	assert.False(t, changed)
	assert.Equal(t, 2, rec.Current)
}

func TestAdvanceStreak_NextDayAcrossSpringForward(t *testing.T) {
	// The day after a spring-forward transition is only 23 hours long;
	// a duration-based gap would see 0 days and drop the increment.
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}

	// Clocks jump forward at 02:00 on 2026-03-08, so midnight Mar 8 to
	// midnight Mar 9 spans just 23 hours.
	rec := &model.Streak{
		Current:          3,
		Longest:          3,
		LastActivityDate: time.Date(2026, 3, 8, 0, 0, 0, 0, loc),
	}

	changed := AdvanceStreak(rec, time.Date(2026, 3, 9, 9, 30, 0, 0, loc))

	assert.True(t, changed)
	assert.Equal(t, 4, rec.Current)
	assert.Equal(t, 4, rec.Longest)
}

func TestAdvanceStreak_LongRun(t *testing.T) {
	rec := &model.Streak{}
	day := date("2024-01-01")
	for i := 0; i < 30; i++ {
		AdvanceStreak(rec, day.AddDate(0, 0, i))
	}
	assert.Equal(t, 30, rec.Current)
	assert.Equal(t, 30, rec.Longest)

	// break, then rebuild a shorter run
	AdvanceStreak(rec, day.AddDate(0, 0, 40))
	assert.Equal(t, 1, rec.Current)
	assert.Equal(t, 30, rec.Longest)
}
