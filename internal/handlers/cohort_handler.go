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

type CohortHandler struct {
	cohortService service.CohortService
	authService   service.AuthService
	logger        *slog.Logger
}

func NewCohortHandler(cohortService service.CohortService, authService service.AuthService, logger *slog.Logger) *CohortHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CohortHandler{
		cohortService: cohortService,
		authService:   authService,
		logger:        logger,
	}
}

// CreateCohort opens a new cohort. Admin accounts only.
func (h *CohortHandler) CreateCohort(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "CreateCohort"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "Authentication required.", "", model.ErrUnauthorized))
		return
	}

	user, err := h.authService.GetUser(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if !user.IsAdmin {
		logger.Warn("Non-admin attempted cohort creation", slog.String("user_id", userID.String()))
		webutil.HandleError(w, logger, model.NewAppError("FORBIDDEN", "Only administrators can create cohorts.", "", model.ErrForbidden))
		return
	}

	var req model.CreateCohortRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		logger.Warn("Invalid create cohort request", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	cohort, err := h.cohortService.CreateCohort(r.Context(), &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Cohort created", slog.String("cohort_id", cohort.CohortID.String()))
	webutil.RespondWithJSON(w, logger, http.StatusCreated, cohort)
}

func (h *CohortHandler) ListCohorts(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ListCohorts"))

	cohorts, err := h.cohortService.ListUpcomingCohorts(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if cohorts == nil {
		cohorts = []*model.CohortResponse{}
	}
	webutil.RespondWithJSON(w, logger, http.StatusOK, cohorts)
}

func (h *CohortHandler) Enroll(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "Enroll"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "Authentication required.", "", model.ErrUnauthorized))
		return
	}
	cohortID, err := uuid.Parse(chi.URLParam(r, "cohort_id"))
	if err != nil {
		webutil.HandleError(w, logger, model.NewAppError("VALIDATION_ERROR", "cohort_id must be a UUID.", "cohort_id", model.ErrInvalidInput))
		return
	}

	enrollment, err := h.cohortService.Enroll(r.Context(), userID, cohortID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, logger, http.StatusCreated, enrollment)
}

func (h *CohortHandler) ListMyEnrollments(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ListMyEnrollments"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "Authentication required.", "", model.ErrUnauthorized))
		return
	}

	enrollments, err := h.cohortService.ListMyEnrollments(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if enrollments == nil {
		enrollments = []*model.EnrollmentResponse{}
	}
	webutil.RespondWithJSON(w, logger, http.StatusOK, enrollments)
}
