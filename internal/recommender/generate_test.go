package recommender

import (
	"context"
	"strings"
	"testing"

	"pescatours-backend/internal/models"
)

func TestGenerateScoreIsMeanOfWeightedContributions(t *testing.T) {
	e := NewEngine(&fakeSource{}, &fakeStore{})
	r := &run{
		userItem: map[string]map[string]float64{
			"target": {"z": 1.0},
			"n1":     {"z": 1.0, "cand": 1.5},
			"n2":     {"z": 1.0, "cand": 1.7},
		},
		neighbors: map[string][]models.UserSimilarity{
			"target": {
				{UserID: "n1", Similarity: 0.9},
				{UserID: "n2", Similarity: 0.8},
			},
		},
	}

	recs := e.generateForUser(r, "target", DefaultLimit)
	if len(recs) != 1 {
		t.Fatalf("recomendaciones = %d, esperaba 1", len(recs))
	}

	rec := recs[0]
	if rec.TripID != "cand" {
		t.Fatalf("tripId = %s, esperaba cand", rec.TripID)
	}
	// (s1·r1 + s2·r2) / 2, dividido por la cantidad de vecinos que
	// aportaron, NO por la suma de similitudes
	want := (0.9*1.5 + 0.8*1.7) / 2
	if !almostEqual(rec.Score, want) {
		t.Errorf("score = %v, esperaba %v", rec.Score, want)
	}
	if len(rec.ContributingUsers) != 2 {
		t.Errorf("contribuyentes = %d, esperaba 2", len(rec.ContributingUsers))
	}
	if !strings.Contains(rec.Reason, "2") {
		t.Errorf("la razón debería citar la cantidad de contribuyentes: %q", rec.Reason)
	}
}

func TestGenerateNeverRecommendsAlreadyBooked(t *testing.T) {
	e := NewEngine(&fakeSource{}, &fakeStore{})
	r := &run{
		userItem: map[string]map[string]float64{
			"target": {"t1": 1.0, "t2": 1.2},
			"n1":     {"t1": 1.5, "t2": 1.7, "t3": 1.5},
		},
		neighbors: map[string][]models.UserSimilarity{
			"target": {{UserID: "n1", Similarity: 0.95}},
		},
	}

	recs := e.generateForUser(r, "target", DefaultLimit)
	for _, rec := range recs {
		if _, ok := r.userItem["target"][rec.TripID]; ok {
			t.Errorf("se recomendó %s, que el usuario ya reservó", rec.TripID)
		}
	}
	if len(recs) != 1 || recs[0].TripID != "t3" {
		t.Fatalf("esperaba solo t3, se obtuvo %+v", recs)
	}
}

func TestGenerateNoNeighborsReturnsEmpty(t *testing.T) {
	e := NewEngine(&fakeSource{}, &fakeStore{})
	r := &run{
		userItem:  map[string]map[string]float64{"target": {"t1": 1.0}},
		neighbors: map[string][]models.UserSimilarity{},
	}

	if recs := e.generateForUser(r, "target", DefaultLimit); len(recs) != 0 {
		t.Errorf("esperaba secuencia vacía, se obtuvo %d", len(recs))
	}
}

func TestGenerateRespectsLimitAndOrder(t *testing.T) {
	e := NewEngine(&fakeSource{}, &fakeStore{})
	r := &run{
		userItem: map[string]map[string]float64{
			"target": {"z": 1.0},
			"n1":     {"z": 1.0, "a": 1.0, "b": 1.5, "c": 1.7, "d": 1.2},
		},
		neighbors: map[string][]models.UserSimilarity{
			"target": {{UserID: "n1", Similarity: 1.0}},
		},
	}

	recs := e.generateForUser(r, "target", 2)
	if len(recs) != 2 {
		t.Fatalf("recomendaciones = %d, esperaba 2 (limit)", len(recs))
	}
	if recs[0].TripID != "c" || recs[1].TripID != "b" {
		t.Errorf("orden = [%s %s], esperaba [c b]", recs[0].TripID, recs[1].TripID)
	}
	if recs[0].Score < recs[1].Score {
		t.Error("las recomendaciones no están ordenadas por score descendente")
	}
}

// Escenario completo de referencia: A y B reservaron trip1, B además
// completó trip2. A debe recibir trip2 con score 1.5.
func TestRecommendWorkedScenario(t *testing.T) {
	src := &fakeSource{interactions: []models.BookingInteraction{
		booking("A", "trip1", models.BookingStatusConfirmed, 1), // 1.0
		booking("B", "trip1", models.BookingStatusCompleted, 2), // 1.7
		booking("B", "trip2", models.BookingStatusCompleted, 1), // 1.5
	}}
	e := NewEngine(src, &fakeStore{})

	recs, err := e.Recommend(context.Background(), "A", DefaultLimit)
	requireNoErr(t, err)

	if len(recs) != 1 {
		t.Fatalf("recomendaciones para A = %d, esperaba 1", len(recs))
	}
	rec := recs[0]
	if rec.TripID != "trip2" {
		t.Errorf("tripId = %s, esperaba trip2", rec.TripID)
	}
	// sim(A,B) = 1.0 sobre la intersección {trip1}; score = 1.0·1.5/1
	if !almostEqual(rec.Score, 1.5) {
		t.Errorf("score = %v, esperaba 1.5", rec.Score)
	}
	if !strings.Contains(rec.Reason, "1") {
		t.Errorf("la razón debería citar 1 contribuyente: %q", rec.Reason)
	}
	if len(rec.ContributingUsers) != 1 || rec.ContributingUsers[0] != "B" {
		t.Errorf("contribuyentes = %v, esperaba [B]", rec.ContributingUsers)
	}
}

// Un usuario sin solapamiento con nadie obtiene una secuencia vacía, no error.
func TestRecommendUserWithoutOverlap(t *testing.T) {
	src := &fakeSource{interactions: []models.BookingInteraction{
		booking("A", "trip1", models.BookingStatusConfirmed, 1),
		booking("B", "trip2", models.BookingStatusCompleted, 1),
	}}
	e := NewEngine(src, &fakeStore{})

	recs, err := e.Recommend(context.Background(), "A", DefaultLimit)
	requireNoErr(t, err)
	if len(recs) != 0 {
		t.Errorf("esperaba 0 recomendaciones, se obtuvo %d", len(recs))
	}
}
