package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"hifz_keep/internal/model"
	"hifz_keep/internal/service"
	"hifz_keep/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type HadithHandler struct {
	service service.HadithService
	logger  *slog.Logger
}

func NewHadithHandler(s service.HadithService, logger *slog.Logger) *HadithHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &HadithHandler{service: s, logger: logger}
}

func (h *HadithHandler) CreateHadith(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "CreateHadith"))

	var req model.CreateHadithRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		logger.Warn("Invalid create hadith request", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	hadith, err := h.service.CreateHadith(r.Context(), &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, logger, http.StatusCreated, hadith)
}

func (h *HadithHandler) GetHadith(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetHadith"))

	hadithID, err := uuid.Parse(chi.URLParam(r, "hadith_id"))
	if err != nil {
		appErr := model.NewAppError("VALIDATION_ERROR", "hadith_id must be a UUID.", "hadith_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	hadith, err := h.service.GetHadith(r.Context(), hadithID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, logger, http.StatusOK, hadith)
}

func (h *HadithHandler) ListHadiths(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ListHadiths"))

	q := model.ListHadithsQuery{
		Collection: r.URL.Query().Get("collection"),
	}
	q.Page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	q.PerPage, _ = strconv.Atoi(r.URL.Query().Get("per_page"))

	resp, err := h.service.ListHadiths(r.Context(), q)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, logger, http.StatusOK, resp)
}

func (h *HadithHandler) UpdateHadith(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "UpdateHadith"))

	hadithID, err := uuid.Parse(chi.URLParam(r, "hadith_id"))
	if err != nil {
		appErr := model.NewAppError("VALIDATION_ERROR", "hadith_id must be a UUID.", "hadith_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	var req model.UpdateHadithRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	hadith, err := h.service.UpdateHadith(r.Context(), hadithID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, logger, http.StatusOK, hadith)
}

func (h *HadithHandler) DeleteHadith(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteHadith"))

	hadithID, err := uuid.Parse(chi.URLParam(r, "hadith_id"))
	if err != nil {
		appErr := model.NewAppError("VALIDATION_ERROR", "hadith_id must be a UUID.", "hadith_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := h.service.DeleteHadith(r.Context(), hadithID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
