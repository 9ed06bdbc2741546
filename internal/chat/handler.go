package chat

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/saulo-duarte/adaptive-tutor/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

// SendMessage godoc
// @Summary      Send a message to the tutor
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        request body     MessageRequest true "Student message"
// @Success      200     {object} MessageResponse
// @Failure      400     {object} config.ErrorResponse
// @Failure      404     {object} config.ErrorResponse
// @Failure      500     {object} config.ErrorResponse
// @Router       /api/chat [post]
func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req MessageRequest
	if err := config.DecodeJSON(r, &req); err != nil {
		log.WithError(err).Warn("Invalid chat request")
		config.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.service.SendMessage(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			config.Error(w, http.StatusNotFound, "Chat session not found")
			return
		}
		config.Error(w, http.StatusInternalServerError, "Failed to process message")
		return
	}

	config.JSON(w, http.StatusOK, resp)
}

// History godoc
// @Summary      Conversation history of a chat session
// @Tags         chat
// @Produce      json
// @Param        sessionId path     string true "Chat session ID"
// @Success      200       {object} HistoryResponse
// @Failure      400       {object} config.ErrorResponse
// @Failure      404       {object} config.ErrorResponse
// @Failure      500       {object} config.ErrorResponse
// @Router       /api/chat/history/{sessionId} [get]
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "sessionId"))
	if err != nil {
		log.WithError(err).Warn("Invalid chat session id")
		config.Error(w, http.StatusBadRequest, "invalid session id")
		return
	}

	messages, err := h.service.History(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			config.Error(w, http.StatusNotFound, "Chat session not found")
			return
		}
		log.WithError(err).Error("Failed to fetch chat history")
		config.Error(w, http.StatusInternalServerError, "Failed to fetch history")
		return
	}

	config.JSON(w, http.StatusOK, ToHistoryResponse(messages))
}
