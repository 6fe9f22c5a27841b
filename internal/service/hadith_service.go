package service

import (
	"context"
	"errors"

	"hifz_keep/internal/middleware"
	"hifz_keep/internal/model"
	"hifz_keep/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	defaultPerPage = 20
	maxPerPage     = 100
)

type HadithService interface {
	CreateHadith(ctx context.Context, req *model.CreateHadithRequest) (*model.Hadith, error)
	GetHadith(ctx context.Context, hadithID uuid.UUID) (*model.Hadith, error)
	ListHadiths(ctx context.Context, q model.ListHadithsQuery) (*model.HadithListResponse, error)
	UpdateHadith(ctx context.Context, hadithID uuid.UUID, req *model.UpdateHadithRequest) (*model.Hadith, error)
	DeleteHadith(ctx context.Context, hadithID uuid.UUID) error
}

type hadithService struct {
	db         *gorm.DB
	hadithRepo repository.HadithRepository
}

func NewHadithService(db *gorm.DB, hadithRepo repository.HadithRepository) HadithService {
	return &hadithService{db: db, hadithRepo: hadithRepo}
}

func (s *hadithService) CreateHadith(ctx context.Context, req *model.CreateHadithRequest) (*model.Hadith, error) {
	logger := middleware.GetLogger(ctx)
	var created *model.Hadith

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := s.hadithRepo.CheckDuplicate(ctx, tx, req.Collection, req.Number)
		if err != nil {
			logger.Error("Error checking hadith duplicate", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to create the hadith.", "", err)
		}
		if exists {
			return model.NewAppError("DUPLICATE_HADITH", "A hadith with this collection and number already exists.", "collection,number", model.ErrConflict)
		}

		hadith := &model.Hadith{
			HadithID:    uuid.New(),
			Collection:  req.Collection,
			Number:      req.Number,
			ArabicText:  req.ArabicText,
			Translation: req.Translation,
			Narrator:    req.Narrator,
			Grade:       req.Grade,
			Topic:       req.Topic,
		}
		if err := s.hadithRepo.Create(ctx, tx, hadith); err != nil {
			if errors.Is(err, model.ErrConflict) {
				return model.NewAppError("DUPLICATE_HADITH", "A hadith with this collection and number already exists.", "collection,number", model.ErrConflict)
			}
			logger.Error("Error creating hadith", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to create the hadith.", "", err)
		}

		created = hadith
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Hadith created", "hadith_id", created.HadithID, "collection", created.Collection, "number", created.Number)
	return created, nil
}

func (s *hadithService) GetHadith(ctx context.Context, hadithID uuid.UUID) (*model.Hadith, error) {
	hadith, err := s.hadithRepo.FindByID(ctx, s.db, hadithID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("NOT_FOUND", "Hadith not found.", "", model.ErrNotFound)
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to load the hadith.", "", err)
	}
	return hadith, nil
}

func (s *hadithService) ListHadiths(ctx context.Context, q model.ListHadithsQuery) (*model.HadithListResponse, error) {
	logger := middleware.GetLogger(ctx)

	if q.Page < 1 {
		q.Page = 1
	}
	if q.PerPage < 1 {
		q.PerPage = defaultPerPage
	}
	if q.PerPage > maxPerPage {
		q.PerPage = maxPerPage
	}

	hadiths, total, err := s.hadithRepo.List(ctx, s.db, q)
	if err != nil {
		logger.Error("Error listing hadiths", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to list hadiths.", "", err)
	}
	if hadiths == nil {
		hadiths = []*model.Hadith{}
	}

	return &model.HadithListResponse{
		Hadiths: hadiths,
		Total:   total,
		Page:    q.Page,
		PerPage: q.PerPage,
	}, nil
}

func (s *hadithService) UpdateHadith(ctx context.Context, hadithID uuid.UUID, req *model.UpdateHadithRequest) (*model.Hadith, error) {
	logger := middleware.GetLogger(ctx)
	var updated *model.Hadith

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.hadithRepo.FindByID(ctx, tx, hadithID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("NOT_FOUND", "Hadith not found.", "", model.ErrNotFound)
			}
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to load the hadith.", "", err)
		}

		updates := make(map[string]interface{})
		if req.ArabicText != nil {
			updates["arabic_text"] = *req.ArabicText
		}
		if req.Translation != nil {
			updates["translation"] = *req.Translation
		}
		if req.Narrator != nil {
			updates["narrator"] = *req.Narrator
		}
		if req.Grade != nil {
			updates["grade"] = *req.Grade
		}
		if req.Topic != nil {
			updates["topic"] = *req.Topic
		}

		if len(updates) > 0 {
			if err := s.hadithRepo.Update(ctx, tx, hadithID, updates); err != nil {
				logger.Error("Error updating hadith", "error", err)
				return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to update the hadith.", "", err)
			}
		}

		hadith, err := s.hadithRepo.FindByID(ctx, tx, hadithID)
		if err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to load the updated hadith.", "", err)
		}
		updated = hadith
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *hadithService) DeleteHadith(ctx context.Context, hadithID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)

	err := s.hadithRepo.Delete(ctx, s.db, hadithID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.NewAppError("NOT_FOUND", "Hadith not found.", "", model.ErrNotFound)
		}
		logger.Error("Error deleting hadith", "error", err)
		return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to delete the hadith.", "", err)
	}

	logger.Info("Hadith deleted", "hadith_id", hadithID)
	return nil
}
