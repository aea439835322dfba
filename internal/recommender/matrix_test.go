package recommender

import (
	"context"
	"errors"
	"testing"

	"pescatours-backend/internal/models"
)

func TestLoadInteractionMatrixRatingPolicy(t *testing.T) {
	src := &fakeSource{interactions: []models.BookingInteraction{
		booking("u1", "t1", models.BookingStatusConfirmed, 1), // 1.0
		booking("u1", "t2", models.BookingStatusConfirmed, 3), // 1.2
		booking("u2", "t1", models.BookingStatusCompleted, 1), // 1.5
		booking("u2", "t3", models.BookingStatusCompleted, 2), // 1.7
		booking("u3", "t1", models.BookingStatusPending, 1),   // excluida
		booking("u4", "t2", models.BookingStatusCancelled, 4), // excluida
	}}
	e := NewEngine(src, &fakeStore{})

	r := &run{}
	requireNoErr(t, e.loadInteractionMatrix(context.Background(), r))

	want := map[string]map[string]float64{
		"u1": {"t1": 1.0, "t2": 1.2},
		"u2": {"t1": 1.5, "t3": 1.7},
	}

	if len(r.userItem) != len(want) {
		t.Fatalf("usuarios en matriz = %d, esperaba %d", len(r.userItem), len(want))
	}
	for u, items := range want {
		for trip, rating := range items {
			got, ok := r.userItem[u][trip]
			if !ok {
				t.Fatalf("falta la entrada (%s, %s)", u, trip)
			}
			if !almostEqual(got, rating) {
				t.Errorf("rating(%s,%s) = %v, esperaba %v", u, trip, got, rating)
			}
		}
		if len(r.userItem[u]) != len(items) {
			t.Errorf("entradas de %s = %d, esperaba %d", u, len(r.userItem[u]), len(items))
		}
	}

	// usuarios con cero interacciones válidas no aparecen como key
	if _, ok := r.userItem["u3"]; ok {
		t.Error("u3 (PENDING) no debería estar en la matriz")
	}
	if _, ok := r.userItem["u4"]; ok {
		t.Error("u4 (CANCELLED) no debería estar en la matriz")
	}

	// la transpuesta refleja exactamente las mismas entradas
	for u, items := range r.userItem {
		for trip, rating := range items {
			if got := r.itemUser[trip][u]; !almostEqual(got, rating) {
				t.Errorf("transpuesta(%s,%s) = %v, esperaba %v", trip, u, got, rating)
			}
		}
	}
	total := 0
	for _, us := range r.itemUser {
		total += len(us)
	}
	if total != 4 {
		t.Errorf("entradas en transpuesta = %d, esperaba 4", total)
	}
}

func TestLoadInteractionMatrixLastWriteWins(t *testing.T) {
	src := &fakeSource{interactions: []models.BookingInteraction{
		booking("u1", "t1", models.BookingStatusCompleted, 2), // 1.7
		booking("u1", "t1", models.BookingStatusConfirmed, 1), // 1.0, pisa a la anterior
	}}
	e := NewEngine(src, &fakeStore{})

	r := &run{}
	requireNoErr(t, e.loadInteractionMatrix(context.Background(), r))

	if got := r.userItem["u1"]["t1"]; !almostEqual(got, 1.0) {
		t.Errorf("rating = %v, esperaba 1.0 (last-write-wins, sin acumular)", got)
	}
	if got := r.itemUser["t1"]["u1"]; !almostEqual(got, 1.0) {
		t.Errorf("transpuesta = %v, esperaba 1.0", got)
	}
}

func TestLoadInteractionMatrixFetchError(t *testing.T) {
	src := &fakeSource{err: errors.New("store caído")}
	e := NewEngine(src, &fakeStore{})

	r := &run{}
	if err := e.loadInteractionMatrix(context.Background(), r); err == nil {
		t.Fatal("esperaba error cuando el fetch falla")
	}
	// fail-before-clear: el run no quedó con matrices a medias
	if r.userItem != nil || r.itemUser != nil {
		t.Error("el run no debería tener matrices tras un fetch fallido")
	}
}
