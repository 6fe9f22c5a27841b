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

type PlanHandler struct {
	service service.PlanService
	logger  *slog.Logger
}

func NewPlanHandler(s service.PlanService, logger *slog.Logger) *PlanHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &PlanHandler{service: s, logger: logger}
}

func (h *PlanHandler) CreatePlan(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "CreatePlan"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "Authentication required.", "", model.ErrUnauthorized))
		return
	}

	var req model.CreatePlanRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		logger.Warn("Invalid create plan request", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	plan, err := h.service.CreatePlan(r.Context(), userID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Plan created", slog.String("plan_id", plan.PlanID.String()))
	webutil.RespondWithJSON(w, logger, http.StatusCreated, plan)
}

func (h *PlanHandler) GetPlan(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetPlan"))

	userID, planID, err := h.authAndPlanID(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	plan, err := h.service.GetPlan(r.Context(), userID, planID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, logger, http.StatusOK, plan)
}

func (h *PlanHandler) ListPlans(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ListPlans"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "Authentication required.", "", model.ErrUnauthorized))
		return
	}

	plans, err := h.service.ListPlans(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if plans == nil {
		plans = []*model.PlanResponse{}
	}
	webutil.RespondWithJSON(w, logger, http.StatusOK, plans)
}

func (h *PlanHandler) PatchPlan(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PatchPlan"))

	userID, planID, err := h.authAndPlanID(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.PatchPlanRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	plan, err := h.service.PatchPlan(r.Context(), userID, planID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, logger, http.StatusOK, plan)
}

func (h *PlanHandler) DeletePlan(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeletePlan"))

	userID, planID, err := h.authAndPlanID(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if err := h.service.DeletePlan(r.Context(), userID, planID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *PlanHandler) GetPlanProgress(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetPlanProgress"))

	userID, planID, err := h.authAndPlanID(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	progress, err := h.service.GetPlanProgress(r.Context(), userID, planID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, logger, http.StatusOK, progress)
}

// authAndPlanID extracts the authenticated user and the plan_id path param.
func (h *PlanHandler) authAndPlanID(r *http.Request) (uuid.UUID, uuid.UUID, error) {
	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		return uuid.Nil, uuid.Nil, model.NewAppError("UNAUTHORIZED", "Authentication required.", "", model.ErrUnauthorized)
	}
	planID, err := uuid.Parse(chi.URLParam(r, "plan_id"))
	if err != nil {
		return uuid.Nil, uuid.Nil, model.NewAppError("VALIDATION_ERROR", "plan_id must be a UUID.", "plan_id", model.ErrInvalidInput)
	}
	return userID, planID, nil
}
