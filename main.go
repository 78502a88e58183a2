// Entry point of the immy API. Initializes configuration, the database pool,
// services and handlers, sets up the HTTP router and middleware, and starts
// the server with graceful shutdown.
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/user/immy-go/apperror"
	"github.com/user/immy-go/auth"
	"github.com/user/immy-go/coach"
	"github.com/user/immy-go/config"
	"github.com/user/immy-go/db"
	"github.com/user/immy-go/response"
	"github.com/user/immy-go/users"
)

func main() {
	// .env is a development convenience; in production the variables are set
	// directly in the environment.
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading it: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	pool, err := db.NewDBPool(cfg.DB)
	if err != nil {
		log.Fatalf("Failed to create database pool: %v", err)
	}
	defer pool.Close()

	migrationsPath := os.Getenv("MIGRATIONS_PATH")
	if migrationsPath == "" {
		migrationsPath = "./migrations"
	}
	if err := db.RunMigrations(cfg.DB, migrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Services and handlers, wired with explicit constructor injection.
	tokenService := auth.NewTokenService(cfg.Auth)
	authService := auth.NewAuthService(auth.NewPostgresUserStore(pool), tokenService)
	authHandlers := auth.NewHandlers(authService)

	userService := users.NewUserService(users.NewPostgresProfileStore(pool))
	userHandlers := users.NewUserHandlers(userService)

	coachService := coach.NewCoachService(coach.NewPostgresChildStore(pool))
	coachHandlers := coach.NewCoachHandlers(coachService)

	r := chi.NewRouter()

	// Chi requires all middleware to be registered before any routes.
	r.Use(middleware.Logger)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Panic recovery that still emits the response envelope.
	r.Use(response.Recoverer)

	// Unknown routes and method mismatches keep the envelope contract.
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.WriteError(w, r, apperror.NewNotFoundError("Not found", nil))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		response.WriteError(w, r, apperror.NewBadRequestError("Method not allowed", nil))
	})

	// Public auth routes
	r.Post("/register", authHandlers.HandleRegister())
	r.Post("/login", authHandlers.HandleLogin())

	// Protected routes: the bearer-token guard runs before every handler in
	// this group.
	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAuth(tokenService))

		r.Get("/profile", userHandlers.HandleGetProfile())
		r.Get("/coach_data", coachHandlers.HandleGetCoachData())
	})

	addr := fmt.Sprintf(":%s", cfg.Server.Port)

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
	log.Println("Server stopped gracefully")
}
