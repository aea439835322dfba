package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pescatours-backend/internal/cache"
	"pescatours-backend/internal/config"
	"pescatours-backend/internal/db"
	"pescatours-backend/internal/recommender"
	"pescatours-backend/internal/repository"
	"pescatours-backend/internal/service"
)

// Job batch: corre el pipeline completo de recomendaciones una vez y
// termina. Pensado para cron/scheduler; si algo falla sale con código != 0.
func main() {
	cfg := config.Load()
	db.InitMongo(cfg)
	cache.InitRedis(cfg)

	bookingRepo := repository.NewBookingRepository()
	recRepo := repository.NewRecommendationRepository()

	engine := recommender.NewEngine(bookingRepo, recRepo)
	recSvc := service.NewRecommendationService(engine, recRepo)

	// abortable entre etapas con SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	start := time.Now()
	log.Println("[recsjob] iniciando corrida de recomendaciones")

	summary, err := recSvc.Rebuild(ctx)
	if err != nil {
		log.Fatalf("[recsjob] corrida fallida: %v", err)
	}

	log.Printf("[recsjob] OK en %s: %d recomendaciones para %d usuarios",
		time.Since(start).Round(time.Millisecond),
		summary.TotalRecommendations,
		summary.UsersWithRecommendations,
	)
}
