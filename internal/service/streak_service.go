package service

import (
	"context"
	"errors"
	"time"

	"hifz_keep/internal/middleware"
	"hifz_keep/internal/model"
	"hifz_keep/internal/repository"
	"hifz_keep/internal/schedule"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StreakService interface {
	// RecordActivity advances the user's streak for today. The
	// read-modify-write runs in a transaction with a row lock so two
	// concurrent requests for the same user cannot lose an update.
	RecordActivity(ctx context.Context, userID uuid.UUID) (*model.StreakResponse, error)
	GetStreak(ctx context.Context, userID uuid.UUID) (*model.StreakResponse, error)
}

type streakService struct {
	db         *gorm.DB
	streakRepo repository.StreakRepository
}

func NewStreakService(db *gorm.DB, streakRepo repository.StreakRepository) StreakService {
	return &streakService{db: db, streakRepo: streakRepo}
}

func (s *streakService) RecordActivity(ctx context.Context, userID uuid.UUID) (*model.StreakResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)
	today := time.Now()

	var updated *model.Streak

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rec, err := s.streakRepo.FindForUpdate(ctx, tx, userID)
		if err != nil {
			if !errors.Is(err, model.ErrNotFound) {
				logger.Error("Error locking streak row", "error", err)
				return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to update the streak.", "", err)
			}
			rec = &model.Streak{UserID: userID}
		}

		changed := schedule.AdvanceStreak(rec, today)
		if changed {
			if err := s.streakRepo.Save(ctx, tx, rec); err != nil {
				logger.Error("Error saving streak", "error", err)
				return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to update the streak.", "", err)
			}
		}

		updated = rec
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Debug("Streak advanced", "current", updated.Current, "longest", updated.Longest)
	return model.NewStreakResponse(updated), nil
}

func (s *streakService) GetStreak(ctx context.Context, userID uuid.UUID) (*model.StreakResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	rec, err := s.streakRepo.Find(ctx, s.db, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			// No activity yet; report a zeroed streak rather than a 404.
			return &model.StreakResponse{Current: 0, Longest: 0, LastActivityDate: ""}, nil
		}
		logger.Error("Error loading streak", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to load the streak.", "", err)
	}

	return model.NewStreakResponse(rec), nil
}
