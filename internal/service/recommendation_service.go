package service

import (
	"context"
	"fmt"
	"log"

	"pescatours-backend/internal/cache"
	"pescatours-backend/internal/models"
	"pescatours-backend/internal/recommender"
	"pescatours-backend/internal/repository"
)

// TTL del cache de lectura por usuario, en segundos (1 hora).
const recsCacheTTL = 60 * 60

type RecommendationService struct {
	engine *recommender.Engine
	recs   *repository.RecommendationRepository
}

func NewRecommendationService(engine *recommender.Engine, recs *repository.RecommendationRepository) *RecommendationService {
	return &RecommendationService{engine: engine, recs: recs}
}

func cacheKey(userID string) string {
	return fmt.Sprintf("recs:user:%s", userID)
}

// GetForUser read path con read-through a Redis: cache → Mongo (con join al
// tour) → cache.
func (s *RecommendationService) GetForUser(ctx context.Context, userID string) ([]models.RecommendationWithTrip, error) {
	var cached []models.RecommendationWithTrip
	if ok, err := cache.GetJSON(ctx, cacheKey(userID), &cached); err == nil && ok {
		return cached, nil
	}

	out, err := s.recs.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := cache.SetJSON(ctx, cacheKey(userID), out, recsCacheTTL); err != nil {
		log.Printf("[recs] error cacheando recomendaciones de %s: %v", userID, err)
	}
	return out, nil
}

// Rebuild corre el pipeline completo e invalida el cache de los usuarios
// cuyas recomendaciones se reemplazaron.
func (s *RecommendationService) Rebuild(ctx context.Context) (*recommender.PipelineSummary, error) {
	return s.rebuild(ctx, nil)
}

// RebuildWithProgress ídem, pero reportando avance (lo usa el WS de admin).
func (s *RecommendationService) RebuildWithProgress(ctx context.Context, progress func(stage string, done, total int)) (*recommender.PipelineSummary, error) {
	return s.rebuild(ctx, progress)
}

func (s *RecommendationService) rebuild(ctx context.Context, progress func(stage string, done, total int)) (*recommender.PipelineSummary, error) {
	eng := s.engine
	if progress != nil {
		eng = eng.WithProgress(progress)
	}

	summary, err := eng.RunFullPipeline(ctx)
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(summary.AffectedUsers))
	for _, u := range summary.AffectedUsers {
		keys = append(keys, cacheKey(u))
	}
	if err := cache.Del(ctx, keys...); err != nil {
		// no rompemos la corrida por esto: el TTL limpia solo
		log.Printf("[recs] error invalidando cache: %v", err)
	}

	return summary, nil
}

// Summary agregados para el panel admin.
func (s *RecommendationService) Summary(ctx context.Context) (*models.RecommendationSummary, error) {
	return s.recs.Summary(ctx)
}
