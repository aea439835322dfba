package service

import (
	"context"

	"pescatours-backend/internal/models"
	"pescatours-backend/internal/repository"
)

// BookingService solo lee: las reservas las escribe el servicio de bookings.
type BookingService struct {
	bookings *repository.BookingRepository
}

func NewBookingService(bookings *repository.BookingRepository) *BookingService {
	return &BookingService{bookings: bookings}
}

func (s *BookingService) ListByUser(ctx context.Context, userID string, limit, offset int) ([]models.BookingWithTrip, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.bookings.ListByUser(ctx, userID, limit, offset)
}
