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

type PlanService interface {
	CreatePlan(ctx context.Context, userID uuid.UUID, req *model.CreatePlanRequest) (*model.PlanDetailResponse, error)
	GetPlan(ctx context.Context, userID, planID uuid.UUID) (*model.PlanDetailResponse, error)
	ListPlans(ctx context.Context, userID uuid.UUID) ([]*model.PlanResponse, error)
	PatchPlan(ctx context.Context, userID, planID uuid.UUID, req *model.PatchPlanRequest) (*model.PlanResponse, error)
	DeletePlan(ctx context.Context, userID, planID uuid.UUID) error
	GetPlanProgress(ctx context.Context, userID, planID uuid.UUID) (*model.PlanProgressResponse, error)
}

type planService struct {
	db           *gorm.DB
	planRepo     repository.PlanRepository
	hadithRepo   repository.HadithRepository
	progressRepo repository.ProgressRepository
}

func NewPlanService(db *gorm.DB, planRepo repository.PlanRepository, hadithRepo repository.HadithRepository, progressRepo repository.ProgressRepository) PlanService {
	return &planService{
		db:           db,
		planRepo:     planRepo,
		hadithRepo:   hadithRepo,
		progressRepo: progressRepo,
	}
}

// CreatePlan inserts the plan and its scheduled items in one transaction.
// Items whose computed date falls past the end date are dropped, per the
// schedule generator's contract.
func (s *planService) CreatePlan(ctx context.Context, userID uuid.UUID, req *model.CreatePlanRequest) (*model.PlanDetailResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	startDate, err := time.Parse(model.DateLayout, req.StartDate)
	if err != nil {
		return nil, model.NewAppError("VALIDATION_ERROR", "start_date must be a YYYY-MM-DD date.", "start_date", model.ErrInvalidInput)
	}
	endDate, err := time.Parse(model.DateLayout, req.EndDate)
	if err != nil {
		return nil, model.NewAppError("VALIDATION_ERROR", "end_date must be a YYYY-MM-DD date.", "end_date", model.ErrInvalidInput)
	}
	if endDate.Before(startDate) {
		return nil, model.NewAppError("VALIDATION_ERROR", "end_date must not be before start_date.", "end_date", model.ErrInvalidInput)
	}

	dates, err := schedule.BuildPlanDates(startDate, endDate, req.HadithsPerDay, len(req.HadithIDs))
	if err != nil {
		return nil, model.NewAppError("VALIDATION_ERROR", "The schedule parameters are invalid.", "hadiths_per_day", err)
	}

	var created *model.MemorizationPlan

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		hadiths, err := s.hadithRepo.FindByIDs(ctx, tx, req.HadithIDs)
		if err != nil {
			logger.Error("Error loading hadiths for plan", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to create the plan.", "", err)
		}
		if len(hadiths) != len(req.HadithIDs) {
			return model.NewAppError("UNKNOWN_HADITH", "One or more hadith IDs do not exist.", "hadith_ids", model.ErrInvalidInput)
		}

		plan := &model.MemorizationPlan{
			PlanID:        uuid.New(),
			UserID:        userID,
			Name:          req.Name,
			Description:   req.Description,
			StartDate:     startDate,
			EndDate:       endDate,
			HadithsPerDay: req.HadithsPerDay,
			Status:        model.PlanActive,
		}
		if err := s.planRepo.Create(ctx, tx, plan); err != nil {
			logger.Error("Error creating plan", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to create the plan.", "", err)
		}

		items := make([]model.PlanHadith, len(dates))
		for i := range dates {
			items[i] = model.PlanHadith{
				PlanHadithID:  uuid.New(),
				PlanID:        plan.PlanID,
				HadithID:      req.HadithIDs[i],
				Position:      i + 1,
				ScheduledDate: dates[i],
			}
		}
		if err := s.planRepo.CreateItems(ctx, tx, items); err != nil {
			logger.Error("Error creating plan items", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to create the plan items.", "", err)
		}

		plan.Items = items
		created = plan
		return nil
	})
	if err != nil {
		return nil, err
	}

	if dropped := len(req.HadithIDs) - len(dates); dropped > 0 {
		logger.Info("Plan created with dropped items", "plan_id", created.PlanID, "dropped", dropped)
	} else {
		logger.Info("Plan created", "plan_id", created.PlanID, "items", len(dates))
	}

	return newPlanDetailResponse(created), nil
}

func (s *planService) GetPlan(ctx context.Context, userID, planID uuid.UUID) (*model.PlanDetailResponse, error) {
	plan, err := s.planRepo.FindByIDWithItems(ctx, s.db, userID, planID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("NOT_FOUND", "Plan not found.", "", model.ErrNotFound)
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to load the plan.", "", err)
	}
	return newPlanDetailResponse(plan), nil
}

func (s *planService) ListPlans(ctx context.Context, userID uuid.UUID) ([]*model.PlanResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	plans, err := s.planRepo.FindByUser(ctx, s.db, userID)
	if err != nil {
		logger.Error("Error listing plans", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to list plans.", "", err)
	}

	responses := make([]*model.PlanResponse, 0, len(plans))
	for _, p := range plans {
		count, err := s.planRepo.CountItems(ctx, s.db, p.PlanID)
		if err != nil {
			logger.Error("Error counting plan items", "error", err, "plan_id", p.PlanID)
			return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to list plans.", "", err)
		}
		responses = append(responses, model.NewPlanResponse(p, int(count)))
	}
	return responses, nil
}

func (s *planService) PatchPlan(ctx context.Context, userID, planID uuid.UUID, req *model.PatchPlanRequest) (*model.PlanResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "plan_id", planID)
	var updated *model.MemorizationPlan
	var itemCount int64

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.planRepo.FindByID(ctx, tx, userID, planID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("NOT_FOUND", "Plan not found.", "", model.ErrNotFound)
			}
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to load the plan.", "", err)
		}

		updates := make(map[string]interface{})
		if req.Name != nil {
			updates["name"] = *req.Name
		}
		if req.Status != nil {
			updates["status"] = *req.Status
		}

		if len(updates) > 0 {
			if err := s.planRepo.Update(ctx, tx, userID, planID, updates); err != nil {
				logger.Error("Error updating plan", "error", err)
				return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to update the plan.", "", err)
			}
		}

		plan, err := s.planRepo.FindByID(ctx, tx, userID, planID)
		if err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to load the updated plan.", "", err)
		}
		count, err := s.planRepo.CountItems(ctx, tx, planID)
		if err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to load the updated plan.", "", err)
		}
		updated = plan
		itemCount = count
		return nil
	})
	if err != nil {
		return nil, err
	}

	return model.NewPlanResponse(updated, int(itemCount)), nil
}

func (s *planService) DeletePlan(ctx context.Context, userID, planID uuid.UUID) error {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "plan_id", planID)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.planRepo.Delete(ctx, tx, userID, planID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("NOT_FOUND", "Plan not found.", "", model.ErrNotFound)
			}
			logger.Error("Error deleting plan", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to delete the plan.", "", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info("Plan deleted")
	return nil
}

func (s *planService) GetPlanProgress(ctx context.Context, userID, planID uuid.UUID) (*model.PlanProgressResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "plan_id", planID)

	if _, err := s.planRepo.FindByID(ctx, s.db, userID, planID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("NOT_FOUND", "Plan not found.", "", model.ErrNotFound)
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to load the plan.", "", err)
	}

	total, err := s.planRepo.CountItems(ctx, s.db, planID)
	if err != nil {
		logger.Error("Error counting plan items", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to load plan progress.", "", err)
	}

	// A reviewed item is still memorized; completing a review must not
	// shrink the plan progress.
	memorized, err := s.progressRepo.CountByPlan(ctx, s.db, userID, planID, model.ProgressMemorized, model.ProgressReviewed)
	if err != nil {
		logger.Error("Error counting memorized items", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to load plan progress.", "", err)
	}

	percent := 0.0
	if total > 0 {
		percent = float64(memorized) / float64(total) * 100
	}

	return &model.PlanProgressResponse{
		PlanID:    planID,
		Total:     total,
		Memorized: memorized,
		Percent:   percent,
	}, nil
}

func newPlanDetailResponse(plan *model.MemorizationPlan) *model.PlanDetailResponse {
	items := make([]*model.PlanItemResponse, 0, len(plan.Items))
	for i := range plan.Items {
		item := &plan.Items[i]
		items = append(items, &model.PlanItemResponse{
			HadithID:      item.HadithID,
			Position:      item.Position,
			ScheduledDate: item.ScheduledDate.Format(model.DateLayout),
			Hadith:        item.Hadith,
		})
	}
	return &model.PlanDetailResponse{
		PlanResponse: *model.NewPlanResponse(plan, len(items)),
		Items:        items,
	}
}
