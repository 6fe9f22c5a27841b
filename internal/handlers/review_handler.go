package handlers

import (
	"log/slog"
	"net/http"

	"hifz_keep/internal/middleware"
	"hifz_keep/internal/model"
	"hifz_keep/internal/service"
	"hifz_keep/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// ReviewHandler serves the memorize and review endpoints. Memorizing and
// completing a review both count as streak activity; the streak update runs
// as its own transaction after the main one commits.
type ReviewHandler struct {
	reviewService service.ReviewService
	streakService service.StreakService
	logger        *slog.Logger
}

func NewReviewHandler(reviewService service.ReviewService, streakService service.StreakService, logger *slog.Logger) *ReviewHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReviewHandler{
		reviewService: reviewService,
		streakService: streakService,
		logger:        logger,
	}
}

// Memorize marks one plan item memorized and schedules its reviews.
func (h *ReviewHandler) Memorize(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "Memorize"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "Authentication required.", "", model.ErrUnauthorized))
		return
	}
	planID, err := uuid.Parse(chi.URLParam(r, "plan_id"))
	if err != nil {
		webutil.HandleError(w, logger, model.NewAppError("VALIDATION_ERROR", "plan_id must be a UUID.", "plan_id", model.ErrInvalidInput))
		return
	}
	hadithID, err := uuid.Parse(chi.URLParam(r, "hadith_id"))
	if err != nil {
		webutil.HandleError(w, logger, model.NewAppError("VALIDATION_ERROR", "hadith_id must be a UUID.", "hadith_id", model.ErrInvalidInput))
		return
	}

	var req model.MemorizeRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		logger.Warn("Invalid memorize request", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	resp, err := h.reviewService.Memorize(r.Context(), userID, planID, hadithID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	// The memorize event stands even if the streak bump fails.
	if _, err := h.streakService.RecordActivity(r.Context(), userID); err != nil {
		logger.Error("Failed to record streak activity after memorize", slog.Any("error", err), slog.String("user_id", userID.String()))
	}

	webutil.RespondWithJSON(w, logger, http.StatusCreated, resp)
}

func (h *ReviewHandler) GetDueReviews(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetDueReviews"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "Authentication required.", "", model.ErrUnauthorized))
		return
	}

	reviews, err := h.reviewService.GetDueReviews(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if reviews == nil {
		reviews = []*model.DueReviewResponse{}
	}
	webutil.RespondWithJSON(w, logger, http.StatusOK, reviews)
}

func (h *ReviewHandler) CompleteReview(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "CompleteReview"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "Authentication required.", "", model.ErrUnauthorized))
		return
	}
	reviewID, err := uuid.Parse(chi.URLParam(r, "review_id"))
	if err != nil {
		webutil.HandleError(w, logger, model.NewAppError("VALIDATION_ERROR", "review_id must be a UUID.", "review_id", model.ErrInvalidInput))
		return
	}

	if err := h.reviewService.CompleteReview(r.Context(), userID, reviewID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if _, err := h.streakService.RecordActivity(r.Context(), userID); err != nil {
		logger.Error("Failed to record streak activity after review", slog.Any("error", err), slog.String("user_id", userID.String()))
	}

	webutil.RespondWithJSON(w, logger, http.StatusOK, map[string]string{"message": "Review completed."})
}
