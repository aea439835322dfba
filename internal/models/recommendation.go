package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Tipo de recomendación que este servicio posee. Otros servicios pueden
// escribir tipos distintos en la misma colección; el reemplazo por corrida
// solo toca las COLLABORATIVE.
const RecommendationTypeCollaborative = "COLLABORATIVE"

// UserSimilarity entrada de la lista de vecinos de un usuario.
type UserSimilarity struct {
	UserID     string  `json:"userId"`
	Similarity float64 `json:"similarity"`
}

// TripRecommendation resultado en memoria del generador, antes de
// persistirse como RecommendationDoc.
type TripRecommendation struct {
	UserID            string   `json:"userId"`
	TripID            string   `json:"tripId"`
	Score             float64  `json:"score"`
	Reason            string   `json:"reason"`
	ContributingUsers []string `json:"contributingUsers"`
}

// RecommendationMetadata auditoría de "por qué se recomendó esto".
type RecommendationMetadata struct {
	ContributingUsers []string  `json:"contributingUsers" bson:"contributingUsers"`
	Algorithm         string    `json:"algorithm" bson:"algorithm"`
	GeneratedAt       time.Time `json:"generatedAt" bson:"generatedAt"`
}

// RecommendationDoc documento persistido en la colección recommendations.
type RecommendationDoc struct {
	ID             primitive.ObjectID     `json:"id" bson:"_id,omitempty"`
	UserID         string                 `json:"userId" bson:"userId"`
	Type           string                 `json:"type" bson:"type"`
	Title          string                 `json:"title" bson:"title"`
	Description    string                 `json:"description" bson:"description"`
	TripID         string                 `json:"tripId" bson:"tripId"`
	Priority       int                    `json:"priority" bson:"priority"`
	RelevanceScore float64                `json:"relevanceScore" bson:"relevanceScore"`
	IsActive       bool                   `json:"isActive" bson:"isActive"`
	ValidFrom      time.Time              `json:"validFrom" bson:"validFrom"`
	Metadata       RecommendationMetadata `json:"metadata" bson:"metadata"`
}

// RecommendationWithTrip lo que devuelve el read path: la recomendación
// junto con los campos de display del tour.
type RecommendationWithTrip struct {
	RecommendationDoc `bson:",inline"`
	Trip              TripDisplay `json:"trip" bson:"trip"`
}

// RecommendationSummary agregados para el panel admin.
type RecommendationSummary struct {
	TotalRecommendations     int64      `json:"totalRecommendations"`
	UsersWithRecommendations int64      `json:"usersWithRecommendations"`
	LastGeneratedAt          *time.Time `json:"lastGeneratedAt,omitempty"`
}
