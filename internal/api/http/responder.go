package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"cinerent-backend/internal/domain"
	"cinerent-backend/internal/logger"
)

type errorResponse struct {
	Code      string                   `json:"code"`
	Message   string                   `json:"message"`
	Conflicts []domain.BookingConflict `json:"conflicts,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			logger.Error("failed to encode response", "error", err)
		}
	}
}

// writeError maps the engine's error taxonomy onto HTTP status codes in one
// place so handlers never invent their own mapping.
func writeError(w http.ResponseWriter, err error) {
	var conflict *domain.ConflictError
	var validation *domain.ValidationError
	var persistence *domain.PersistenceError

	switch {
	case errors.As(err, &conflict):
		writeJSON(w, http.StatusConflict, errorResponse{
			Code:      "ALREADY_BOOKED",
			Message:   conflict.Error(),
			Conflicts: conflict.Conflicts,
		})
	case errors.Is(err, domain.ErrEquipmentUnavailable):
		writeJSON(w, http.StatusConflict, errorResponse{
			Code:    "EQUIPMENT_UNAVAILABLE",
			Message: err.Error(),
		})
	case errors.As(err, &validation):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Code:    "VALIDATION_ERROR",
			Message: validation.Error(),
		})
	case errors.Is(err, domain.ErrBatchTooLarge):
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Code:    "BATCH_OVERSIZE",
			Message: err.Error(),
		})
	case errors.Is(err, domain.ErrEquipmentNotFound),
		errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrProjectNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{
			Code:    "NOT_FOUND",
			Message: err.Error(),
		})
	case errors.As(err, &persistence):
		logger.Error("persistence failure", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Code:    "PERSISTENCE_FAILURE",
			Message: "a transient storage fault occurred; the request may be retried",
		})
	default:
		logger.Error("unhandled error", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Code:    "INTERNAL_ERROR",
			Message: "internal server error",
		})
	}
}
