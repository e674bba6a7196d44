package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/rohanjx/workouthub-backend/internal/config"
	"github.com/rohanjx/workouthub-backend/internal/database"
	"github.com/rohanjx/workouthub-backend/internal/handlers"
	"github.com/rohanjx/workouthub-backend/internal/middleware"
	"github.com/rohanjx/workouthub-backend/internal/routes"
	"github.com/rohanjx/workouthub-backend/internal/services"
	"github.com/rohanjx/workouthub-backend/internal/store"
	"github.com/rohanjx/workouthub-backend/internal/templates"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	cfg := config.Load()

	// Sessions are signed with this key; refuse to start without it
	if cfg.SecretKey == "" {
		log.Fatal("SECRET_KEY is required. Generate one with: openssl rand -base64 32")
	}

	// Connect to PostgreSQL
	log.Printf("Connecting to PostgreSQL...")
	db, err := database.ConnectPostgres(cfg.PostgresURI)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL:", err)
	}
	defer db.Close()

	// Connect to Redis
	log.Printf("Connecting to Redis...")
	redisClient, err := database.ConnectRedis(cfg.RedisURI)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}
	defer redisClient.Close()

	tmpl, err := templates.New()
	if err != nil {
		log.Fatal("Failed to parse templates:", err)
	}

	users := store.NewPostgresUserStore(db)
	workouts := store.NewPostgresWorkoutStore(db)
	sessions := services.NewRedisSessions(redisClient)

	authSvc := services.NewAuthService(users, sessions)
	workoutSvc := services.NewWorkoutService(workouts)

	h := handlers.New(authSvc, workoutSvc, tmpl, cfg.SecretKey, cfg.IsProduction())

	// Setup router
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Production: security headers + in-process per-IP rate limiting
	// Non-production: Redis-based rate limit only
	if cfg.IsProduction() {
		for _, mw := range middleware.ProductionSecurity() {
			r.Use(mw)
		}
		log.Println("✅ Production security enabled (security headers, per-IP + login rate limiting)")
	} else {
		r.Use(middleware.RateLimit(redisClient))
	}

	routes.SetupRoutes(r, h)

	log.Println("📋 Registered routes:")
	log.Println("  GET/POST /")
	log.Println("  GET/POST /register")
	log.Println("  GET/POST /home")
	log.Println("  GET/POST /add")
	log.Println("  GET/POST /workout/{exercise}")
	log.Println("  GET      /logout")
	log.Println("  GET      /health")

	log.Printf("🚀 WorkoutHub backend running on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
