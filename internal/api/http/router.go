package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter wires the reservation engine's HTTP surface.
func NewRouter(availability *AvailabilityHandler, bookings *BookingHandler, projects *ProjectHandler) *mux.Router {
	r := mux.NewRouter()
	r.Use(RequestID, Logging)

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/availability/check", availability.Check).Methods(http.MethodPost)

	api.HandleFunc("/bookings", bookings.Create).Methods(http.MethodPost)
	api.HandleFunc("/bookings/batch", bookings.CreateBatch).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{id}", bookings.Get).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{id}/dates", bookings.UpdateDates).Methods(http.MethodPatch)
	api.HandleFunc("/bookings/{id}/status", bookings.TransitionStatus).Methods(http.MethodPatch)
	api.HandleFunc("/bookings/{id}/payment", bookings.UpdatePayment).Methods(http.MethodPatch)

	api.HandleFunc("/projects/{id}", projects.Get).Methods(http.MethodGet)
	api.HandleFunc("/projects/{id}/status", projects.TransitionStatus).Methods(http.MethodPatch)
	api.HandleFunc("/projects/{id}/bookings", bookings.ListByProject).Methods(http.MethodGet)

	api.HandleFunc("/clients/{id}/bookings", bookings.ListByClient).Methods(http.MethodGet)

	return r
}
