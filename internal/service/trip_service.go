package service

import (
	"context"

	"pescatours-backend/internal/models"
	"pescatours-backend/internal/repository"
)

type TripService struct {
	trips *repository.TripRepository
}

func NewTripService(trips *repository.TripRepository) *TripService {
	return &TripService{trips: trips}
}

func (s *TripService) GetByID(ctx context.Context, tripID string) (*models.TripDoc, error) {
	return s.trips.GetByID(ctx, tripID)
}

func (s *TripService) Search(ctx context.Context, q, status, port string, limit, offset int) ([]models.TripDoc, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.trips.Search(ctx, q, status, port, limit, offset)
}
