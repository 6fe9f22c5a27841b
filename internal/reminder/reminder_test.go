package reminder

import (
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"hifz_keep/internal/config"
	"hifz_keep/internal/model"
	"hifz_keep/internal/repository/mocks"
	servicemocks "hifz_keep/internal/service/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestScheduler(t *testing.T, cfg *config.Config) (*Scheduler, *mocks.ReviewRepository, *mocks.UserRepository, *servicemocks.Mailer) {
	t.Helper()
	reviewRepo := mocks.NewReviewRepository(t)
	userRepo := mocks.NewUserRepository(t)
	mailer := servicemocks.NewMailer(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(nil, reviewRepo, userRepo, mailer, cfg, logger), reviewRepo, userRepo, mailer
}

func digestConfig(startHour, endHour int) *config.Config {
	return &config.Config{
		App:      config.AppConfig{Name: "HifzKeep", FrontendURL: "http://localhost:3000"},
		Reminder: config.ReminderConfig{Enabled: true, StartHour: startHour, EndHour: endHour},
	}
}

func TestScheduler_SentToday(t *testing.T) {
	s, _, _, _ := newTestScheduler(t, digestConfig(0, 23))
	userID := uuid.New()
	now := time.Now()

	assert.False(t, s.sentToday(userID, now), "nothing sent yet")

	s.markSent(userID, now)
	assert.True(t, s.sentToday(userID, now), "same-day send is suppressed")
	assert.True(t, s.sentToday(userID, now.Add(2*time.Hour)), "later hour on the same day is still suppressed")
	assert.False(t, s.sentToday(userID, now.AddDate(0, 0, 1)), "next day sends again")
}

func TestScheduler_MarkSentPrunesStaleEntries(t *testing.T) {
	s, _, _, _ := newTestScheduler(t, digestConfig(0, 23))
	now := time.Now()
	staleID := uuid.New()
	freshID := uuid.New()

	s.lastSent[staleID] = now.AddDate(0, 0, -3)
	s.markSent(freshID, now)

	assert.Len(t, s.lastSent, 1, "entries from earlier days are pruned")
	assert.Contains(t, s.lastSent, freshID)
	assert.NotContains(t, s.lastSent, staleID)
}

func TestScheduler_CheckAndSendDigests(t *testing.T) {
	t.Run("outside the notification window nothing runs", func(t *testing.T) {
		// StartHour two past the current hour keeps the check outside the
		// window even if the clock ticks over mid-test.
		start := time.Now().Hour() + 2
		s, _, _, _ := newTestScheduler(t, digestConfig(start, start))

		s.checkAndSendDigests()
		// The constructor mocks fail the test on any unexpected call.
	})

	t.Run("digest goes out once per day", func(t *testing.T) {
		s, reviewRepo, userRepo, mailer := newTestScheduler(t, digestConfig(0, 23))
		userID := uuid.New()
		user := &model.User{UserID: userID, Name: "Aisha", Email: "aisha@example.com", IsActive: true}

		reviewRepo.On("UserIDsWithDueReviews", mock.Anything, mock.Anything, mock.AnythingOfType("time.Time")).
			Return([]uuid.UUID{userID}, nil).Twice()
		reviewRepo.On("CountDueByUser", mock.Anything, mock.Anything, userID, mock.AnythingOfType("time.Time")).
			Return(int64(2), nil).Once()
		userRepo.On("FindByID", mock.Anything, mock.Anything, userID).Return(user, nil).Once()
		mailer.On("Send", mock.Anything, "aisha@example.com",
			mock.MatchedBy(func(subject string) bool { return strings.Contains(subject, "2 review(s)") }),
			mock.MatchedBy(func(body string) bool { return strings.Contains(body, "Aisha") }),
		).Return(nil).Once()

		s.checkAndSendDigests()
		// The second run on the same day must not mail again.
		s.checkAndSendDigests()

		mailer.AssertNumberOfCalls(t, "Send", 1)
	})

	t.Run("user with nothing due gets no mail", func(t *testing.T) {
		s, reviewRepo, _, _ := newTestScheduler(t, digestConfig(0, 23))
		userID := uuid.New()

		reviewRepo.On("UserIDsWithDueReviews", mock.Anything, mock.Anything, mock.AnythingOfType("time.Time")).
			Return([]uuid.UUID{userID}, nil).Once()
		reviewRepo.On("CountDueByUser", mock.Anything, mock.Anything, userID, mock.AnythingOfType("time.Time")).
			Return(int64(0), nil).Once()

		s.checkAndSendDigests()
	})

	t.Run("inactive account is skipped", func(t *testing.T) {
		s, reviewRepo, userRepo, _ := newTestScheduler(t, digestConfig(0, 23))
		userID := uuid.New()

		reviewRepo.On("UserIDsWithDueReviews", mock.Anything, mock.Anything, mock.AnythingOfType("time.Time")).
			Return([]uuid.UUID{userID}, nil).Once()
		reviewRepo.On("CountDueByUser", mock.Anything, mock.Anything, userID, mock.AnythingOfType("time.Time")).
			Return(int64(3), nil).Once()
		userRepo.On("FindByID", mock.Anything, mock.Anything, userID).
			Return(&model.User{UserID: userID, Email: "gone@example.com", IsActive: false}, nil).Once()

		s.checkAndSendDigests()
	})
}
