package models

import "time"

// Estados posibles de una reserva (los escribe el servicio de bookings,
// aquí solo se leen).
const (
	BookingStatusPending   = "PENDING"
	BookingStatusConfirmed = "CONFIRMED"
	BookingStatusCompleted = "COMPLETED"
	BookingStatusCancelled = "CANCELLED"
)

// BookingDoc documento de la colección bookings.
type BookingDoc struct {
	BookingID    string    `json:"bookingId" bson:"bookingId"`
	UserID       string    `json:"userId" bson:"userId"`
	TripID       string    `json:"tripId" bson:"tripId"`
	Participants int       `json:"participants" bson:"participants"`
	Status       string    `json:"status" bson:"status"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
}

// BookingInteraction proyección mínima que consume el recomendador:
// nada de joins dinámicos, solo los campos que la matriz necesita.
type BookingInteraction struct {
	UserID       string `json:"userId" bson:"userId"`
	TripID       string `json:"tripId" bson:"tripId"`
	Status       string `json:"status" bson:"status"`
	Participants int    `json:"participants" bson:"participants"`
}

// BookingWithTrip reserva + datos del tour para /me/bookings.
type BookingWithTrip struct {
	BookingDoc `bson:",inline"`
	Trip       TripDisplay `json:"trip" bson:"trip"`
}
