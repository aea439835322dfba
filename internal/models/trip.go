package models

import "time"

// Estados del tour (los gestiona el servicio de trips).
const (
	TripStatusScheduled = "SCHEDULED"
	TripStatusCompleted = "COMPLETED"
	TripStatusCancelled = "CANCELLED"
)

// TripDoc documento de la colección trips.
type TripDoc struct {
	TripID      string    `json:"tripId" bson:"tripId"`
	Title       string    `json:"title" bson:"title"`
	Description string    `json:"description" bson:"description"`
	Price       float64   `json:"price" bson:"price"`
	Capacity    int       `json:"capacity" bson:"capacity"`
	Status      string    `json:"status" bson:"status"`
	Date        time.Time `json:"date" bson:"date"`
	Port        string    `json:"port,omitempty" bson:"port,omitempty"`
	Species     []string  `json:"species,omitempty" bson:"species,omitempty"`
	CreatedAt   string    `json:"createdAt" bson:"createdAt"`
	UpdatedAt   string    `json:"updatedAt" bson:"updatedAt"`
}

// TripDisplay campos mínimos que los consumidores necesitan junto a una
// recomendación o una reserva.
type TripDisplay struct {
	TripID      string    `json:"tripId" bson:"tripId"`
	Title       string    `json:"title" bson:"title"`
	Description string    `json:"description" bson:"description"`
	Price       float64   `json:"price" bson:"price"`
	Capacity    int       `json:"capacity" bson:"capacity"`
	Status      string    `json:"status" bson:"status"`
	Date        time.Time `json:"date" bson:"date"`
	Port        string    `json:"port,omitempty" bson:"port,omitempty"`
}
