package service

import (
	"context"
	"errors"
	"testing"

	"hifz_keep/internal/model"
	"hifz_keep/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDBHadith(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db
}

func Test_hadithService_CreateHadith(t *testing.T) {
	req := &model.CreateHadithRequest{
		Collection: "bukhari",
		Number:     1,
		ArabicText: "innama al-a'malu bin-niyyat",
		Narrator:   "Umar ibn al-Khattab",
		Grade:      "sahih",
	}

	tests := []struct {
		name      string
		setupMock func(m *mocks.HadithRepository)
		wantCode  string
	}{
		{
			name: "success",
			setupMock: func(m *mocks.HadithRepository) {
				m.On("CheckDuplicate", mock.Anything, mock.Anything, "bukhari", 1).
					Return(false, nil).Once()
				m.On("Create", mock.Anything, mock.Anything, mock.MatchedBy(func(h *model.Hadith) bool {
					return h.Collection == "bukhari" && h.Number == 1 && h.HadithID != uuid.Nil
				})).Return(nil).Once()
			},
		},
		{
			name: "duplicate collection and number",
			setupMock: func(m *mocks.HadithRepository) {
				m.On("CheckDuplicate", mock.Anything, mock.Anything, "bukhari", 1).
					Return(true, nil).Once()
			},
			wantCode: "DUPLICATE_HADITH",
		},
		{
			name: "unique index fires on concurrent insert",
			setupMock: func(m *mocks.HadithRepository) {
				m.On("CheckDuplicate", mock.Anything, mock.Anything, "bukhari", 1).
					Return(false, nil).Once()
				m.On("Create", mock.Anything, mock.Anything, mock.AnythingOfType("*model.Hadith")).
					Return(model.ErrConflict).Once()
			},
			wantCode: "DUPLICATE_HADITH",
		},
		{
			name: "repo error",
			setupMock: func(m *mocks.HadithRepository) {
				m.On("CheckDuplicate", mock.Anything, mock.Anything, "bukhari", 1).
					Return(false, errors.New("db down")).Once()
			},
			wantCode: "INTERNAL_SERVER_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := setupTestDBHadith(t)
			hadithRepo := mocks.NewHadithRepository(t)
			tt.setupMock(hadithRepo)

			svc := NewHadithService(db, hadithRepo)
			created, err := svc.CreateHadith(context.Background(), req)

			if tt.wantCode != "" {
				var appErr *model.AppError
				require.ErrorAs(t, err, &appErr)
				assert.Equal(t, tt.wantCode, appErr.Detail.Code)
				assert.Nil(t, created)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, created)
			assert.Equal(t, req.ArabicText, created.ArabicText)
		})
	}
}

func Test_hadithService_ListHadiths(t *testing.T) {
	t.Run("paging defaults and caps are applied", func(t *testing.T) {
		db := setupTestDBHadith(t)
		hadithRepo := mocks.NewHadithRepository(t)
		// Page 0 becomes 1, per_page 1000 is capped.
		hadithRepo.On("List", mock.Anything, mock.Anything, model.ListHadithsQuery{Page: 1, PerPage: 100}).
			Return([]*model.Hadith{}, int64(0), nil).Once()

		svc := NewHadithService(db, hadithRepo)
		resp, err := svc.ListHadiths(context.Background(), model.ListHadithsQuery{Page: 0, PerPage: 1000})

		require.NoError(t, err)
		assert.Equal(t, 1, resp.Page)
		assert.Equal(t, 100, resp.PerPage)
		assert.NotNil(t, resp.Hadiths)
	})

	t.Run("collection filter passes through", func(t *testing.T) {
		db := setupTestDBHadith(t)
		hadithRepo := mocks.NewHadithRepository(t)
		q := model.ListHadithsQuery{Collection: "muslim", Page: 2, PerPage: 10}
		hadithRepo.On("List", mock.Anything, mock.Anything, q).
			Return([]*model.Hadith{{HadithID: uuid.New(), Collection: "muslim"}}, int64(21), nil).Once()

		svc := NewHadithService(db, hadithRepo)
		resp, err := svc.ListHadiths(context.Background(), q)

		require.NoError(t, err)
		assert.Equal(t, int64(21), resp.Total)
		assert.Len(t, resp.Hadiths, 1)
	})
}

func Test_hadithService_UpdateHadith(t *testing.T) {
	hadithID := uuid.New()
	newGrade := "hasan"

	t.Run("only provided fields are updated", func(t *testing.T) {
		db := setupTestDBHadith(t)
		hadithRepo := mocks.NewHadithRepository(t)
		existing := &model.Hadith{HadithID: hadithID, Collection: "bukhari", Number: 1, Grade: "sahih"}
		updated := &model.Hadith{HadithID: hadithID, Collection: "bukhari", Number: 1, Grade: newGrade}

		hadithRepo.On("FindByID", mock.Anything, mock.Anything, hadithID).Return(existing, nil).Once()
		hadithRepo.On("Update", mock.Anything, mock.Anything, hadithID, map[string]interface{}{"grade": newGrade}).
			Return(nil).Once()
		hadithRepo.On("FindByID", mock.Anything, mock.Anything, hadithID).Return(updated, nil).Once()

		svc := NewHadithService(db, hadithRepo)
		resp, err := svc.UpdateHadith(context.Background(), hadithID, &model.UpdateHadithRequest{Grade: &newGrade})

		require.NoError(t, err)
		assert.Equal(t, newGrade, resp.Grade)
	})

	t.Run("not found", func(t *testing.T) {
		db := setupTestDBHadith(t)
		hadithRepo := mocks.NewHadithRepository(t)
		hadithRepo.On("FindByID", mock.Anything, mock.Anything, hadithID).
			Return(nil, model.ErrNotFound).Once()

		svc := NewHadithService(db, hadithRepo)
		_, err := svc.UpdateHadith(context.Background(), hadithID, &model.UpdateHadithRequest{Grade: &newGrade})

		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "NOT_FOUND", appErr.Detail.Code)
	})
}
