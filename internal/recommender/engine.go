package recommender

import (
	"context"

	"pescatours-backend/internal/models"
)

// Constantes del algoritmo. Son tunables, pero cambiarlas cambia los
// resultados: tratarlas como configuración, no como verdad derivada.
const (
	baseRating     = 1.0
	completedBonus = 0.5
	groupBonus     = 0.2

	// SimilarityThreshold pares con similitud <= a esto se descartan.
	SimilarityThreshold = 0.1
	// MaxNeighbors tope de vecinos que se guardan por usuario.
	MaxNeighbors = 5
	// DefaultLimit recomendaciones por usuario en el path on-demand.
	DefaultLimit = 5
	// PipelinePerUser recomendaciones por usuario en la corrida batch.
	PipelinePerUser = 3

	// Algorithm nombre que queda en la metadata de cada documento.
	Algorithm = "user-based-cf-cosine"
)

// BookingSource es lo único que el recomendador sabe del store de reservas.
type BookingSource interface {
	FindInteractions(ctx context.Context) ([]models.BookingInteraction, error)
}

// RecommendationStore persiste el lote de una corrida (reemplazo completo
// por usuario afectado, nunca merge).
type RecommendationStore interface {
	ReplaceForUsers(ctx context.Context, recs []models.RecommendationDoc) error
}

// Engine orquesta las cuatro etapas del pipeline. No guarda estado entre
// corridas: cada invocación arma su propio run y lo descarta al final.
type Engine struct {
	bookings BookingSource
	store    RecommendationStore

	// Progress, si no es nil, recibe el avance de cada etapa. Lo usa el
	// WebSocket de admin; el log por consola sale igual sin él.
	Progress func(stage string, done, total int)
}

func NewEngine(bookings BookingSource, store RecommendationStore) *Engine {
	return &Engine{
		bookings: bookings,
		store:    store,
	}
}

// run es el estado de una sola corrida: las dos matrices dispersas y las
// listas de vecinos. Se construye completo cada vez, nunca incremental.
type run struct {
	// userItem: userId -> tripId -> rating implícito
	userItem map[string]map[string]float64
	// itemUser: transpuesta, armada en la misma pasada
	itemUser map[string]map[string]float64
	// neighbors: userId -> vecinos ordenados por similitud desc (máx 5)
	neighbors map[string][]models.UserSimilarity
}

// WithProgress devuelve una copia del engine que reporta su avance a fn
// (para no pisar el Progress de otras invocaciones en curso).
func (e *Engine) WithProgress(fn func(stage string, done, total int)) *Engine {
	c := *e
	c.Progress = fn
	return &c
}

func (e *Engine) report(stage string, done, total int) {
	if e.Progress != nil {
		e.Progress(stage, done, total)
	}
}
