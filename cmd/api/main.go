package main

import (
	"log"
	"net/http"

	_ "pescatours-backend/docs" // swagger docs

	"pescatours-backend/internal/cache"
	"pescatours-backend/internal/config"
	"pescatours-backend/internal/db"
	"pescatours-backend/internal/handler"
	"pescatours-backend/internal/recommender"
	"pescatours-backend/internal/repository"
	"pescatours-backend/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title PescaTours Recommendation API
// @version 1.0
// @description API de recomendaciones colaborativas para tours de pesca (user-based CF, Mongo, Redis)
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	// Mongo y Redis
	db.InitMongo(cfg)
	cache.InitRedis(cfg)

	// repos
	userRepo := repository.NewUserRepository()
	tripRepo := repository.NewTripRepository()
	bookingRepo := repository.NewBookingRepository()
	recRepo := repository.NewRecommendationRepository()

	// motor de recomendaciones (las cuatro etapas del pipeline)
	engine := recommender.NewEngine(bookingRepo, recRepo)

	// services
	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret)
	tripSvc := service.NewTripService(tripRepo)
	bookingSvc := service.NewBookingService(bookingRepo)
	recSvc := service.NewRecommendationService(engine, recRepo)

	// handlers
	authH := handler.NewAuthHandler(authSvc)
	tripH := handler.NewTripHandler(tripSvc)
	bookingH := handler.NewBookingHandler(bookingSvc)
	recH := handler.NewRecommendationHandler(recSvc)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// =============
	// Rutas públicas
	// =============
	r.Get("/health", handler.Health)

	r.Post("/auth/register", authH.Register)
	r.Post("/auth/login", authH.Login)

	// Tours (públicos)
	r.Get("/trips", tripH.Search)
	r.Get("/trips/{id}", tripH.GetTrip)

	// ===========================
	// Rutas protegidas con JWT
	// ===========================
	authMw := handler.JWTAuth(cfg.JWTSecret)

	r.Group(func(r chi.Router) {
		r.Use(authMw)

		// ---- Endpoints /me (USER normal) ----
		r.Route("/me", func(r chi.Router) {
			r.Get("/bookings", bookingH.GetMyBookings)
			r.Get("/recommendations", recH.GetMyRecommendations)
		})

		// ---- Endpoints solo ADMIN ----
		r.Group(func(r chi.Router) {
			r.Use(handler.AdminOnly())

			// corrida batch inline + panel
			r.Post("/admin/recommendations/rebuild", recH.Rebuild)
			r.Get("/admin/recommendations/summary", recH.Summary)

			// WebSocket con progreso del pipeline
			r.Get("/admin/ws/recommendations/rebuild", recH.RebuildWS)
		})
	})

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	log.Printf("HTTP escuchando en :%s", cfg.HTTPPort)
	log.Fatal(http.ListenAndServe(":"+cfg.HTTPPort, r))
}
