package repository

import (
	"context"

	"pescatours-backend/internal/db"
	"pescatours-backend/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type TripRepository struct {
	col *mongo.Collection
}

func NewTripRepository() *TripRepository {
	return &TripRepository{col: db.DB().Collection("trips")}
}

func (r *TripRepository) GetByID(ctx context.Context, tripID string) (*models.TripDoc, error) {
	var t models.TripDoc
	err := r.col.FindOne(ctx, bson.M{"tripId": tripID}).Decode(&t)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &t, err
}

func (r *TripRepository) Search(
	ctx context.Context,
	q string,
	status string,
	port string,
	limit, offset int,
) ([]models.TripDoc, error) {

	filter := bson.M{}

	if q != "" {
		filter["title"] = bson.M{"$regex": q, "$options": "i"}
	}
	if status != "" {
		filter["status"] = status
	}
	if port != "" {
		filter["port"] = port
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: 1}}).
		SetLimit(int64(limit)).
		SetSkip(int64(offset))

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.TripDoc
	for cur.Next(ctx) {
		var t models.TripDoc
		if err := cur.Decode(&t); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, cur.Err()
}
