package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"pescatours-backend/internal/service"

	"github.com/go-chi/chi/v5"
)

type TripHandler struct {
	svc *service.TripService
}

func NewTripHandler(s *service.TripService) *TripHandler {
	return &TripHandler{svc: s}
}

// @Summary Detalle de un tour
// @Tags trips
// @Produce json
// @Param id path string true "tripId"
// @Success 200 {object} models.TripDoc
// @Router /trips/{id} [get]
func (h *TripHandler) GetTrip(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	tripID := chi.URLParam(r, "id")
	trip, err := h.svc.GetByID(r.Context(), tripID)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	if trip == nil {
		http.Error(w, "trip not found", http.StatusNotFound)
		return
	}
	_ = json.NewEncoder(w).Encode(trip)
}

// @Summary Buscar tours
// @Tags trips
// @Produce json
// @Param q query string false "texto en el título"
// @Param status query string false "SCHEDULED|COMPLETED|CANCELLED"
// @Param port query string false "puerto de salida"
// @Success 200 {array} models.TripDoc
// @Router /trips [get]
func (h *TripHandler) Search(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	q := r.URL.Query().Get("q")
	status := r.URL.Query().Get("status")
	port := r.URL.Query().Get("port")
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	trips, err := h.svc.Search(r.Context(), q, status, port, limit, offset)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	_ = json.NewEncoder(w).Encode(trips)
}
