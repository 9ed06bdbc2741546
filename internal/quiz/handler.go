package quiz

import (
	"errors"
	"net/http"

	"github.com/saulo-duarte/adaptive-tutor/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

// Generate godoc
// @Summary      Generate an adaptive quiz question
// @Tags         quiz
// @Accept       json
// @Produce      json
// @Param        request body     GenerateRequest true "Quiz topic and optional session"
// @Success      200     {object} GenerateResponse
// @Failure      400     {object} config.ErrorResponse
// @Failure      404     {object} config.ErrorResponse
// @Failure      500     {object} config.ErrorResponse
// @Router       /api/quiz/generate [post]
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req GenerateRequest
	if err := config.DecodeJSON(r, &req); err != nil {
		log.WithError(err).Warn("Invalid quiz generate request")
		config.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.service.Generate(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			config.Error(w, http.StatusNotFound, "Quiz session not found")
			return
		}
		log.WithError(err).Error("Adaptive quiz generation failed")
		config.Error(w, http.StatusInternalServerError, "Failed to generate adaptive quiz")
		return
	}

	config.JSON(w, http.StatusOK, resp)
}

// Submit godoc
// @Summary      Submit an answer to a quiz question
// @Tags         quiz
// @Accept       json
// @Produce      json
// @Param        request body     SubmitRequest true "Answer"
// @Success      200     {object} SubmitResponse
// @Failure      400     {object} config.ErrorResponse
// @Failure      404     {object} config.ErrorResponse
// @Failure      500     {object} config.ErrorResponse
// @Router       /api/quiz/submit [post]
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req SubmitRequest
	if err := config.DecodeJSON(r, &req); err != nil {
		log.WithError(err).Warn("Invalid quiz submit request")
		config.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.service.Submit(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			config.Error(w, http.StatusNotFound, "Quiz session not found")
			return
		}
		log.WithError(err).Error("Quiz submit failed")
		config.Error(w, http.StatusInternalServerError, "Failed to submit answer")
		return
	}

	config.JSON(w, http.StatusOK, resp)
}
