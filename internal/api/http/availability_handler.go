package http

import (
	"encoding/json"
	"net/http"
	"time"

	"cinerent-backend/internal/domain"
	"cinerent-backend/internal/service"
)

type AvailabilityHandler struct {
	availability service.AvailabilityService
}

func NewAvailabilityHandler(availability service.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{availability: availability}
}

type checkAvailabilityRequest struct {
	EquipmentID      int32     `json:"equipment_id"`
	StartDate        time.Time `json:"start_date"`
	EndDate          time.Time `json:"end_date"`
	Quantity         int32     `json:"quantity"`
	ExcludeBookingID int32     `json:"exclude_booking_id,omitempty"`
}

type checkAvailabilityResponse struct {
	Available bool                     `json:"available"`
	Conflicts []domain.BookingConflict `json:"conflicts,omitempty"`
}

func (h *AvailabilityHandler) Check(w http.ResponseWriter, r *http.Request) {
	var req checkAvailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Code: "BAD_REQUEST", Message: "malformed request body"})
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	available, conflicts, err := h.availability.CheckAvailability(r.Context(), req.EquipmentID, req.StartDate, req.EndDate, req.Quantity, req.ExcludeBookingID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, checkAvailabilityResponse{Available: available, Conflicts: conflicts})
}
