package repository

import (
	"context"

	"pescatours-backend/internal/db"
	"pescatours-backend/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FetchPageSize máximo de recomendaciones que devuelve el read path.
const FetchPageSize = 5

type RecommendationRepository struct {
	col    *mongo.Collection
	client *mongo.Client
}

func NewRecommendationRepository() *RecommendationRepository {
	return &RecommendationRepository{
		col:    db.DB().Collection("recommendations"),
		client: db.Client(),
	}
}

// ReplaceForUsers borra las recomendaciones COLLABORATIVE previas de los
// usuarios afectados e inserta el lote nuevo, todo dentro de una sola
// transacción: ningún usuario queda con el delete aplicado y el insert no.
func (r *RecommendationRepository) ReplaceForUsers(ctx context.Context, recs []models.RecommendationDoc) error {
	if len(recs) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(recs))
	var users []string
	docs := make([]any, 0, len(recs))

	for _, rec := range recs {
		if _, ok := seen[rec.UserID]; !ok {
			seen[rec.UserID] = struct{}{}
			users = append(users, rec.UserID)
		}
		docs = append(docs, rec)
	}

	session, err := r.client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (any, error) {
		delFilter := bson.M{
			"userId": bson.M{"$in": users},
			"type":   models.RecommendationTypeCollaborative,
		}
		if _, err := r.col.DeleteMany(sc, delFilter); err != nil {
			return nil, err
		}
		if _, err := r.col.InsertMany(sc, docs); err != nil {
			return nil, err
		}
		return nil, nil
	})
	return err
}

// FindByUser devuelve las recomendaciones activas del usuario ordenadas por
// relevancia descendente, con join al display del tour.
func (r *RecommendationRepository) FindByUser(ctx context.Context, userID string) ([]models.RecommendationWithTrip, error) {
	pipeline := bson.A{
		bson.D{{Key: "$match", Value: bson.D{
			{Key: "userId", Value: userID},
			{Key: "type", Value: models.RecommendationTypeCollaborative},
			{Key: "isActive", Value: true},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "relevanceScore", Value: -1}}}},
		bson.D{{Key: "$limit", Value: FetchPageSize}},
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

	var out []models.RecommendationWithTrip
	for cur.Next(ctx) {
		var rec models.RecommendationWithTrip
		if err := cur.Decode(&rec); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, cur.Err()
}

// Summary agregados globales para el panel admin.
func (r *RecommendationRepository) Summary(ctx context.Context) (*models.RecommendationSummary, error) {
	filter := bson.M{"type": models.RecommendationTypeCollaborative}

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	users, err := r.col.Distinct(ctx, "userId", filter)
	if err != nil {
		return nil, err
	}

	summary := &models.RecommendationSummary{
		TotalRecommendations:     total,
		UsersWithRecommendations: int64(len(users)),
	}

	// última generación registrada en metadata
	opts := options.FindOne().SetSort(bson.D{{Key: "metadata.generatedAt", Value: -1}})
	var last models.RecommendationDoc
	err = r.col.FindOne(ctx, filter, opts).Decode(&last)
	if err == nil {
		summary.LastGeneratedAt = &last.Metadata.GeneratedAt
	} else if err != mongo.ErrNoDocuments {
		return nil, err
	}

	return summary, nil
}
