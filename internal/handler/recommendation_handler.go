package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"pescatours-backend/internal/models"
	"pescatours-backend/internal/service"

	"github.com/gorilla/websocket"
)

type RecommendationHandler struct {
	svc *service.RecommendationService
}

func NewRecommendationHandler(s *service.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{svc: s}
}

// @Summary Recomendaciones del usuario autenticado
// @Tags recommendations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.RecommendationWithTrip
// @Router /me/recommendations [get]
func (h *RecommendationHandler) GetMyRecommendations(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	userID := UserIDFromContext(r.Context())
	recs, err := h.svc.GetForUser(r.Context(), userID)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	if recs == nil {
		// sin recomendaciones es un resultado válido, no un error
		recs = []models.RecommendationWithTrip{}
	}
	_ = json.NewEncoder(w).Encode(recs)
}

// @Summary Regenerar todas las recomendaciones (pipeline completo)
// @Tags recommendations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} recommender.PipelineSummary
// @Router /admin/recommendations/rebuild [post]
func (h *RecommendationHandler) Rebuild(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	summary, err := h.svc.Rebuild(r.Context())
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	_ = json.NewEncoder(w).Encode(summary)
}

// @Summary Resumen de recomendaciones persistidas
// @Tags recommendations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.RecommendationSummary
// @Router /admin/recommendations/summary [get]
func (h *RecommendationHandler) Summary(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	summary, err := h.svc.Summary(r.Context())
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	_ = json.NewEncoder(w).Encode(summary)
}

// upgrader global (no afecta a swagger)
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// @Summary Regenerar recomendaciones con progreso en vivo (WebSocket)
// @Tags recommendations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /admin/ws/recommendations/rebuild [get]
func (h *RecommendationHandler) RebuildWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, "No se pudo abrir WebSocket", 400)
		return
	}
	defer conn.Close()

	conn.WriteJSON(map[string]any{
		"type": "start",
		"msg":  "Conexión WS abierta, corriendo pipeline…",
	})

	summary, err := h.svc.RebuildWithProgress(r.Context(), func(stage string, done, total int) {
		pct := 0
		if total > 0 {
			pct = done * 100 / total
		}
		conn.WriteJSON(map[string]any{
			"type":  "progress",
			"stage": stage,
			"pct":   pct,
		})
	})
	if err != nil {
		conn.WriteJSON(map[string]any{
			"type":  "error",
			"error": err.Error(),
		})
		return
	}

	conn.WriteJSON(map[string]any{
		"type":        "summary",
		"summary":     summary,
		"generatedAt": time.Now(),
	})
}
