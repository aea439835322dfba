package repository

import (
	"context"

	"pescatours-backend/internal/db"
	"pescatours-backend/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type BookingRepository struct {
	col *mongo.Collection
}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{col: db.DB().Collection("bookings")}
}

// FindInteractions devuelve todas las reservas CONFIRMED/COMPLETED
// proyectadas al mínimo que necesita la matriz usuario-tour.
func (r *BookingRepository) FindInteractions(ctx context.Context) ([]models.BookingInteraction, error) {
	filter := bson.M{
		"status": bson.M{"$in": []string{
			models.BookingStatusConfirmed,
			models.BookingStatusCompleted,
		}},
	}

	opts := options.Find().SetProjection(bson.M{
		"userId":       1,
		"tripId":       1,
		"status":       1,
		"participants": 1,
	})

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.BookingInteraction
	for cur.Next(ctx) {
		var b models.BookingInteraction
		if err := cur.Decode(&b); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, cur.Err()
}

// ListByUser reservas del usuario con su tour (para /me/bookings).
func (r *BookingRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]models.BookingWithTrip, error) {
	pipeline := bson.A{
		bson.D{{Key: "$match", Value: bson.D{{Key: "userId", Value: userID}}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
		bson.D{{Key: "$skip", Value: offset}},
		bson.D{{Key: "$limit", Value: limit}},
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "trips"},
			{Key: "localField", Value: "tripId"},
			{Key: "foreignField", Value: "tripId"},
			{Key: "as", Value: "trip"},
		}}},
		bson.D{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$trip"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.BookingWithTrip
	for cur.Next(ctx) {
		var b models.BookingWithTrip
		if err := cur.Decode(&b); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, cur.Err()
}
