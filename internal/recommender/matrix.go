package recommender

import (
	"context"
	"fmt"
	"log"

	"pescatours-backend/internal/models"
)

// ratingFor convierte una reserva en un score implícito: base 1.0,
// +0.5 si el tour se completó, +0.2 si fue una reserva grupal.
func ratingFor(b models.BookingInteraction) float64 {
	r := baseRating
	if b.Status == models.BookingStatusCompleted {
		r += completedBonus
	}
	if b.Participants > 1 {
		r += groupBonus
	}
	return r
}

// loadInteractionMatrix arma la matriz usuario-tour y su transpuesta en una
// sola pasada sobre las reservas CONFIRMED/COMPLETED. Si el fetch falla, el
// run queda intacto (se construye sobre mapas nuevos y se asigna al final).
func (e *Engine) loadInteractionMatrix(ctx context.Context, r *run) error {
	interactions, err := e.bookings.FindInteractions(ctx)
	if err != nil {
		return fmt.Errorf("cargando interacciones: %w", err)
	}

	userItem := make(map[string]map[string]float64)
	itemUser := make(map[string]map[string]float64)

	for _, b := range interactions {
		// el repo ya filtra por estado, pero no confiamos en eso
		if b.Status != models.BookingStatusConfirmed && b.Status != models.BookingStatusCompleted {
			continue
		}
		if b.UserID == "" || b.TripID == "" {
			continue
		}

		rating := ratingFor(b)

		// asignación directa: si el mismo par (usuario, tour) aparece dos
		// veces, gana la última (no se acumula)
		if userItem[b.UserID] == nil {
			userItem[b.UserID] = make(map[string]float64)
		}
		userItem[b.UserID][b.TripID] = rating

		if itemUser[b.TripID] == nil {
			itemUser[b.TripID] = make(map[string]float64)
		}
		itemUser[b.TripID][b.UserID] = rating
	}

	r.userItem = userItem
	r.itemUser = itemUser

	log.Printf("[recommender] matriz cargada: %d usuarios, %d tours, %d interacciones",
		len(userItem), len(itemUser), len(interactions))
	e.report("matrix", len(interactions), len(interactions))
	return nil
}
