package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"cinerent-backend/internal/domain"
	"cinerent-backend/internal/service"
)

type BookingHandler struct {
	bookings service.BookingService
	pageSize int32
}

func NewBookingHandler(bookings service.BookingService, pageSize int32) *BookingHandler {
	return &BookingHandler{bookings: bookings, pageSize: pageSize}
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Code: "BAD_REQUEST", Message: "malformed request body"})
		return
	}

	booking, err := h.bookings.CreateBooking(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, booking)
}

func (h *BookingHandler) CreateBatch(w http.ResponseWriter, r *http.Request) {
	var reqs []domain.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&reqs); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Code: "BAD_REQUEST", Message: "malformed request body"})
		return
	}

	result, err := h.bookings.CreateBatch(r.Context(), reqs)
	if err != nil {
		if result != nil && result.RolledBack {
			writeJSON(w, http.StatusInternalServerError, result)
			return
		}
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *BookingHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	booking, err := h.bookings.GetBooking(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

type updateDatesRequest struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

func (h *BookingHandler) UpdateDates(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req updateDatesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Code: "BAD_REQUEST", Message: "malformed request body"})
		return
	}

	booking, err := h.bookings.UpdateBookingDates(r.Context(), id, req.StartDate, req.EndDate)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

type transitionStatusRequest struct {
	Status string `json:"status"`
}

func (h *BookingHandler) TransitionStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req transitionStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Code: "BAD_REQUEST", Message: "malformed request body"})
		return
	}

	booking, err := h.bookings.TransitionStatus(r.Context(), id, domain.BookingStatus(req.Status))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

func (h *BookingHandler) UpdatePayment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req transitionStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Code: "BAD_REQUEST", Message: "malformed request body"})
		return
	}

	booking, err := h.bookings.UpdatePaymentStatus(r.Context(), id, domain.PaymentStatus(req.Status))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

type listResponse struct {
	Bookings []domain.Booking `json:"bookings"`
	Total    int32            `json:"total"`
	Page     int32            `json:"page"`
}

func (h *BookingHandler) ListByProject(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	page, status := listParams(r)
	bookings, total, err := h.bookings.ListByProject(r.Context(), id, status, page, h.pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Bookings: bookings, Total: total, Page: page})
}

func (h *BookingHandler) ListByClient(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	page, status := listParams(r)
	bookings, total, err := h.bookings.ListByClient(r.Context(), id, status, page, h.pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Bookings: bookings, Total: total, Page: page})
}

func pathID(w http.ResponseWriter, r *http.Request, name string) (int32, bool) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Code: "BAD_REQUEST", Message: "invalid id"})
		return 0, false
	}
	return int32(id), true
}

func listParams(r *http.Request) (int32, string) {
	page := int32(1)
	if raw := r.URL.Query().Get("page"); raw != "" {
		if p, err := strconv.ParseInt(raw, 10, 32); err == nil && p > 0 {
			page = int32(p)
		}
	}
	return page, r.URL.Query().Get("status")
}
