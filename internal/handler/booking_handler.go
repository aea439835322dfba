package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"pescatours-backend/internal/service"
)

type BookingHandler struct {
	svc *service.BookingService
}

func NewBookingHandler(s *service.BookingService) *BookingHandler {
	return &BookingHandler{svc: s}
}

// @Summary Reservas del usuario autenticado
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.BookingWithTrip
// @Router /me/bookings [get]
func (h *BookingHandler) GetMyBookings(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	userID := UserIDFromContext(r.Context())
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	list, err := h.svc.ListByUser(r.Context(), userID, limit, offset)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	_ = json.NewEncoder(w).Encode(list)
}
