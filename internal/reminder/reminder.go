// Package reminder runs the hourly due-review digest job.
package reminder

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"hifz_keep/internal/config"
	"hifz_keep/internal/repository"
	"hifz_keep/internal/schedule"
	"hifz_keep/internal/service"

	"github.com/go-co-op/gocron"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Scheduler checks every hour, inside the configured notification window,
// which users have reviews due today and mails each of them one digest.
// A user gets at most one digest per calendar day.
type Scheduler struct {
	scheduler  *gocron.Scheduler
	db         *gorm.DB
	reviewRepo repository.ReviewRepository
	userRepo   repository.UserRepository
	mailer     service.Mailer
	cfg        *config.Config
	logger     *slog.Logger

	mu       sync.Mutex
	lastSent map[uuid.UUID]time.Time
}

func New(db *gorm.DB, reviewRepo repository.ReviewRepository, userRepo repository.UserRepository, mailer service.Mailer, cfg *config.Config, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		scheduler:  gocron.NewScheduler(time.Local),
		db:         db,
		reviewRepo: reviewRepo,
		userRepo:   userRepo,
		mailer:     mailer,
		cfg:        cfg,
		logger:     logger,
		lastSent:   make(map[uuid.UUID]time.Time),
	}
}

// Start schedules the hourly check and returns immediately.
func (s *Scheduler) Start() {
	s.scheduler.Every(1).Hour().Do(s.checkAndSendDigests)
	s.scheduler.StartAsync()
	s.logger.Info("Reminder scheduler started",
		"start_hour", s.cfg.Reminder.StartHour,
		"end_hour", s.cfg.Reminder.EndHour,
	)
}

func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

func (s *Scheduler) checkAndSendDigests() {
	ctx := context.Background()
	now := time.Now()

	currentHour := now.Hour()
	if currentHour < s.cfg.Reminder.StartHour || currentHour > s.cfg.Reminder.EndHour {
		s.logger.Debug("Outside notification window, skipping digests", "hour", currentHour)
		return
	}

	userIDs, err := s.reviewRepo.UserIDsWithDueReviews(ctx, s.db, now)
	if err != nil {
		s.logger.Error("Failed to list users with due reviews", "error", err)
		return
	}

	for _, userID := range userIDs {
		if s.sentToday(userID, now) {
			continue
		}
		if err := s.sendDigest(ctx, userID, now); err != nil {
			s.logger.Error("Failed to send review digest", "error", err, "user_id", userID)
			continue
		}
		s.markSent(userID, now)
	}
}

func (s *Scheduler) sendDigest(ctx context.Context, userID uuid.UUID, now time.Time) error {
	count, err := s.reviewRepo.CountDueByUser(ctx, s.db, userID, now)
	if err != nil {
		return err
	}
	if count == 0 {
		return nil
	}

	user, err := s.userRepo.FindByID(ctx, s.db, userID)
	if err != nil {
		return err
	}
	if !user.IsActive {
		return nil
	}

	subject := fmt.Sprintf("[%s] You have %d review(s) due today", s.cfg.App.Name, count)
	body := fmt.Sprintf(
		"Assalamu alaikum %s,\n\nYou have %d hadith review(s) waiting for you today.\nKeeping up with reviews is what makes memorization stick.\n\n%s/reviews\n",
		user.Name, count, s.cfg.App.FrontendURL,
	)

	if err := s.mailer.Send(ctx, user.Email, subject, body); err != nil {
		return err
	}

	s.logger.Info("Review digest sent", "user_id", userID, "due_count", count)
	return nil
}

func (s *Scheduler) sentToday(userID uuid.UUID, now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	last, ok := s.lastSent[userID]
	return ok && schedule.Day(last).Equal(schedule.Day(now))
}

func (s *Scheduler) markSent(userID uuid.UUID, now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	// Prune stale entries so the map does not grow without bound.
	today := schedule.Day(now)
	for id, ts := range s.lastSent {
		if !schedule.Day(ts).Equal(today) {
			delete(s.lastSent, id)
		}
	}
	s.lastSent[userID] = now
}
