package recommender

import (
	"context"
	"math"
	"testing"

	"pescatours-backend/internal/models"
)

// fakeSource fuente de reservas en memoria.
type fakeSource struct {
	interactions []models.BookingInteraction
	err          error
}

func (f *fakeSource) FindInteractions(ctx context.Context) ([]models.BookingInteraction, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.interactions, nil
}

// fakeStore replica el contrato del repo real: reemplazo completo por
// usuario afectado, nunca merge.
type fakeStore struct {
	err     error
	calls   int
	batches [][]models.RecommendationDoc
	byUser  map[string][]models.RecommendationDoc
}

func (f *fakeStore) ReplaceForUsers(ctx context.Context, recs []models.RecommendationDoc) error {
	if f.err != nil {
		return f.err
	}
	f.calls++
	f.batches = append(f.batches, recs)

	if f.byUser == nil {
		f.byUser = make(map[string][]models.RecommendationDoc)
	}
	affected := make(map[string]struct{})
	for _, r := range recs {
		affected[r.UserID] = struct{}{}
	}
	for u := range affected {
		delete(f.byUser, u)
	}
	for _, r := range recs {
		f.byUser[r.UserID] = append(f.byUser[r.UserID], r)
	}
	return nil
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func booking(userID, tripID, status string, participants int) models.BookingInteraction {
	return models.BookingInteraction{
		UserID:       userID,
		TripID:       tripID,
		Status:       status,
		Participants: participants,
	}
}

func requireNoErr(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
}
