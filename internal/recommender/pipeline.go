package recommender

import (
	"context"
	"fmt"
	"log"
	"math"
	"sort"
	"time"

	"pescatours-backend/internal/models"
)

// PipelineSummary resultado de una corrida completa.
type PipelineSummary struct {
	TotalRecommendations     int `json:"totalRecommendations"`
	UsersWithRecommendations int `json:"usersWithRecommendations"`

	// AffectedUsers usuarios cuyas recomendaciones se reemplazaron; lo usa
	// el servicio para invalidar cache, no viaja en la respuesta JSON.
	AffectedUsers []string `json:"-"`
}

// RunFullPipeline corre las cuatro etapas en secuencia: matriz → similitudes
// → generación por usuario → persistencia en un solo lote. Cualquier etapa
// que falle aborta la corrida; como el persist es el único efecto durable y
// va al final, una corrida fallida no deja recomendaciones parciales.
func (e *Engine) RunFullPipeline(ctx context.Context) (*PipelineSummary, error) {
	start := time.Now()

	r := &run{}
	if err := e.loadInteractionMatrix(ctx, r); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	e.computeAllPairSimilarities(r)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	users := make([]string, 0, len(r.userItem))
	for u := range r.userItem {
		users = append(users, u)
	}
	sort.Strings(users)

	now := time.Now()
	summary := &PipelineSummary{}
	var batch []models.RecommendationDoc

	for i, u := range users {
		recs := e.generateForUser(r, u, PipelinePerUser)
		e.report("generate", i+1, len(users))
		if len(recs) == 0 {
			continue
		}

		summary.UsersWithRecommendations++
		summary.AffectedUsers = append(summary.AffectedUsers, u)
		for _, rec := range recs {
			batch = append(batch, toDoc(rec, now))
		}
	}
	summary.TotalRecommendations = len(batch)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if len(batch) > 0 {
		if err := e.store.ReplaceForUsers(ctx, batch); err != nil {
			return nil, fmt.Errorf("persistiendo recomendaciones: %w", err)
		}
	}

	log.Printf("[recommender] pipeline completo en %s: %d recomendaciones para %d usuarios",
		time.Since(start).Round(time.Millisecond), summary.TotalRecommendations, summary.UsersWithRecommendations)
	return summary, nil
}

// toDoc arma el documento persistible de una recomendación generada.
func toDoc(rec models.TripRecommendation, now time.Time) models.RecommendationDoc {
	return models.RecommendationDoc{
		UserID:         rec.UserID,
		Type:           models.RecommendationTypeCollaborative,
		Title:          "Tour recomendado para ti",
		Description:    rec.Reason,
		TripID:         rec.TripID,
		Priority:       int(math.Round(rec.Score * 10)),
		RelevanceScore: rec.Score,
		IsActive:       true,
		ValidFrom:      now,
		Metadata: models.RecommendationMetadata{
			ContributingUsers: rec.ContributingUsers,
			Algorithm:         Algorithm,
			GeneratedAt:       now,
		},
	}
}
