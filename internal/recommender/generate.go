package recommender

import (
	"context"
	"fmt"
	"log"
	"sort"

	"pescatours-backend/internal/models"
)

// generateForUser agrega las preferencias de los vecinos del usuario en
// candidatos puntuados, excluyendo los tours que ya reservó. El score final
// es el promedio de las contribuciones sim*rating, dividido por la CANTIDAD
// de vecinos que aportaron (no por la suma de similitudes).
func (e *Engine) generateForUser(r *run, userID string, limit int) []models.TripRecommendation {
	if limit <= 0 {
		limit = DefaultLimit
	}

	neighbors := r.neighbors[userID]
	if len(neighbors) == 0 {
		// esperado para usuarios nuevos o sin solapamiento; no es error
		log.Printf("[recommender] usuario %s sin vecinos, sin recomendaciones", userID)
		return nil
	}

	already := r.userItem[userID]

	scores := make(map[string]float64)
	counts := make(map[string]int)
	contributors := make(map[string][]string)

	for _, n := range neighbors {
		for tripID, rating := range r.userItem[n.UserID] {
			if _, ok := already[tripID]; ok {
				continue
			}
			scores[tripID] += n.Similarity * rating
			counts[tripID]++
			contributors[tripID] = append(contributors[tripID], n.UserID)
		}
	}

	out := make([]models.TripRecommendation, 0, len(scores))
	for tripID, sum := range scores {
		c := counts[tripID]
		out = append(out, models.TripRecommendation{
			UserID:            userID,
			TripID:            tripID,
			Score:             sum / float64(c),
			Reason:            fmt.Sprintf("A %d pescador(es) con reservas parecidas a las tuyas les gustó este tour", c),
			ContributingUsers: contributors[tripID],
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].TripID < out[j].TripID
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Recommend genera recomendaciones al vuelo para un solo usuario, sobre una
// corrida fresca (matriz + similitudes) y sin persistir nada.
func (e *Engine) Recommend(ctx context.Context, userID string, limit int) ([]models.TripRecommendation, error) {
	r := &run{}
	if err := e.loadInteractionMatrix(ctx, r); err != nil {
		return nil, err
	}
	e.computeAllPairSimilarities(r)
	return e.generateForUser(r, userID, limit), nil
}
