package service

import (
	"context"
	"errors"
	"time"

	"hifz_keep/internal/config"
	"hifz_keep/internal/middleware"
	"hifz_keep/internal/model"
	"hifz_keep/internal/repository"
	"hifz_keep/internal/schedule"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReviewService interface {
	// Memorize records a memorize event: it upserts the progress row and
	// replaces the item's pending review obligations, atomically.
	Memorize(ctx context.Context, userID, planID, hadithID uuid.UUID, req *model.MemorizeRequest) (*model.MemorizeResponse, error)
	GetDueReviews(ctx context.Context, userID uuid.UUID) ([]*model.DueReviewResponse, error)
	CompleteReview(ctx context.Context, userID, reviewID uuid.UUID) error
}

type reviewService struct {
	db           *gorm.DB
	planRepo     repository.PlanRepository
	progressRepo repository.ProgressRepository
	reviewRepo   repository.ReviewRepository
	cfg          *config.Config
}

func NewReviewService(db *gorm.DB, planRepo repository.PlanRepository, progressRepo repository.ProgressRepository, reviewRepo repository.ReviewRepository, cfg *config.Config) ReviewService {
	return &reviewService{
		db:           db,
		planRepo:     planRepo,
		progressRepo: progressRepo,
		reviewRepo:   reviewRepo,
		cfg:          cfg,
	}
}

func (s *reviewService) Memorize(ctx context.Context, userID, planID, hadithID uuid.UUID, req *model.MemorizeRequest) (*model.MemorizeResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "plan_id", planID, "hadith_id", hadithID)
	now := time.Now()

	var progressID uuid.UUID

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.planRepo.FindByID(ctx, tx, userID, planID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("NOT_FOUND", "Plan not found.", "", model.ErrNotFound)
			}
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to record the memorization.", "", err)
		}
		if _, err := s.planRepo.FindItem(ctx, tx, planID, hadithID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("NOT_FOUND", "This hadith is not part of the plan.", "", model.ErrNotFound)
			}
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to record the memorization.", "", err)
		}

		progress := &model.MemorizationProgress{
			ProgressID: uuid.New(),
			UserID:     userID,
			HadithID:   hadithID,
			PlanID:     planID,
			Status:     model.ProgressMemorized,
			Confidence: req.Confidence,
			Note:       req.Note,
		}
		if err := s.progressRepo.Upsert(ctx, tx, progress); err != nil {
			logger.Error("Error upserting progress", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to record the memorization.", "", err)
		}
		progressID = progress.ProgressID

		// Replace, don't accumulate: a re-memorize resets the pending
		// obligations instead of multiplying them.
		if err := s.reviewRepo.DeletePending(ctx, tx, userID, planID, hadithID); err != nil {
			logger.Error("Error clearing pending reviews", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to schedule the reviews.", "", err)
		}

		dates := schedule.ReviewDates(now)
		entries := make([]model.ReviewEntry, len(schedule.ReviewOffsets))
		for i, off := range schedule.ReviewOffsets {
			entries[i] = model.ReviewEntry{
				ReviewID:     uuid.New(),
				UserID:       userID,
				PlanID:       planID,
				HadithID:     hadithID,
				ReviewType:   off.Type,
				ScheduledFor: dates[i],
				Status:       model.ReviewPending,
			}
		}
		if err := s.reviewRepo.CreateBatch(ctx, tx, entries); err != nil {
			logger.Error("Error creating review entries", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to schedule the reviews.", "", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Hadith memorized, reviews scheduled", "reviews", len(schedule.ReviewOffsets))
	return &model.MemorizeResponse{
		ProgressID:    progressID,
		Status:        model.ProgressMemorized,
		Confidence:    req.Confidence,
		ReviewsQueued: len(schedule.ReviewOffsets),
	}, nil
}

func (s *reviewService) GetDueReviews(ctx context.Context, userID uuid.UUID) ([]*model.DueReviewResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	entries, err := s.reviewRepo.FindDueByUser(ctx, s.db, userID, time.Now(), s.cfg.App.DueReviewLimit)
	if err != nil {
		logger.Error("Failed to find due reviews", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to load due reviews.", "", err)
	}

	responses := make([]*model.DueReviewResponse, 0, len(entries))
	for _, e := range entries {
		if e.Hadith == nil {
			logger.Warn("Due review with missing hadith, skipping", "review_id", e.ReviewID)
			continue
		}
		responses = append(responses, &model.DueReviewResponse{
			ReviewID:     e.ReviewID,
			HadithID:     e.HadithID,
			PlanID:       e.PlanID,
			ReviewType:   e.ReviewType,
			ScheduledFor: e.ScheduledFor.Format(model.DateLayout),
			ArabicText:   e.Hadith.ArabicText,
			Translation:  e.Hadith.Translation,
			Collection:   e.Hadith.Collection,
			Number:       e.Hadith.Number,
		})
	}

	logger.Info("Due reviews retrieved", "count", len(responses))
	return responses, nil
}

func (s *reviewService) CompleteReview(ctx context.Context, userID, reviewID uuid.UUID) error {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "review_id", reviewID)
	now := time.Now()

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		entry, err := s.reviewRepo.FindByID(ctx, tx, userID, reviewID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("NOT_FOUND", "Review not found.", "", model.ErrNotFound)
			}
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to complete the review.", "", err)
		}
		if entry.Status == model.ReviewCompleted {
			return model.NewAppError("ALREADY_COMPLETED", "This review has already been completed.", "", model.ErrConflict)
		}

		if err := s.reviewRepo.Complete(ctx, tx, userID, reviewID, now); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("NOT_FOUND", "Review not found.", "", model.ErrNotFound)
			}
			logger.Error("Error completing review", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to complete the review.", "", err)
		}

		// Reflect the review in the progress row so plan summaries show
		// the reviewed state. Confidence and note are carried over from
		// the memorize event.
		progress := &model.MemorizationProgress{
			ProgressID: uuid.New(),
			UserID:     userID,
			HadithID:   entry.HadithID,
			PlanID:     entry.PlanID,
			Status:     model.ProgressReviewed,
		}
		if existing, err := s.progressRepo.FindByKey(ctx, tx, userID, entry.HadithID, entry.PlanID); err == nil {
			progress.Confidence = existing.Confidence
			progress.Note = existing.Note
		} else if !errors.Is(err, model.ErrNotFound) {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to complete the review.", "", err)
		}
		if err := s.progressRepo.Upsert(ctx, tx, progress); err != nil {
			logger.Error("Error updating progress after review", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to complete the review.", "", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	logger.Info("Review completed")
	return nil
}
