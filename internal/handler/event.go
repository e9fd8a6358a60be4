package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/daybook/daybook/internal/auth"
	"github.com/daybook/daybook/internal/handler/dto"
	"github.com/daybook/daybook/internal/service"
)

// EventHandler handles HTTP requests for event operations.
// All routes sit behind the auth middleware; the owner id is always
// taken from the request context, never from the payload.
type EventHandler struct {
	svc    *service.EventService
	logger *slog.Logger
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(svc *service.EventService, logger *slog.Logger) *EventHandler {
	return &EventHandler{
		svc:    svc,
		logger: logger,
	}
}

// List handles GET /api/events.
func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	ownerID := auth.UserIDFromContext(r.Context())

	events, err := h.svc.List(r.Context(), ownerID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToEventListResponse(events))
}

// Create handles POST /api/events.
func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	ownerID := auth.UserIDFromContext(r.Context())

	var req dto.CreateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	event, err := h.svc.Create(r.Context(), ownerID, service.CreateEventInput{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Category:    req.Category,
		Reminder:    req.Reminder,
	})
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("event_created",
		"event_id", event.ID,
		"owner_id", ownerID,
	)

	writeJSON(w, http.StatusCreated, dto.ToEventResponse(event))
}

// Update handles PUT /api/events/{id}.
func (h *EventHandler) Update(w http.ResponseWriter, r *http.Request) {
	ownerID := auth.UserIDFromContext(r.Context())

	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "MISSING_ID", "Event ID is required")
		return
	}

	var req dto.UpdateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	event, err := h.svc.Update(r.Context(), ownerID, id, service.UpdateEventInput{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Category:    req.Category,
		Reminder:    req.Reminder,
	})
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("event_updated",
		"event_id", event.ID,
		"owner_id", ownerID,
	)

	writeJSON(w, http.StatusOK, dto.ToEventResponse(event))
}

// Delete handles DELETE /api/events/{id}.
func (h *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ownerID := auth.UserIDFromContext(r.Context())

	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "MISSING_ID", "Event ID is required")
		return
	}

	if err := h.svc.Delete(r.Context(), ownerID, id); err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("event_deleted",
		"event_id", id,
		"owner_id", ownerID,
	)

	writeJSON(w, http.StatusOK, dto.MessageResponse{Message: "event deleted"})
}

// handleServiceError maps event service errors to HTTP responses.
func (h *EventHandler) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrEventNotFound):
		writeError(w, http.StatusNotFound, "NOT_FOUND", "Event not found")
	case errors.Is(err, service.ErrMissingTitle):
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Event title is required")
	case errors.Is(err, service.ErrMissingDate):
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Event date is required")
	default:
		h.logger.Error("internal_error", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
	}
}
