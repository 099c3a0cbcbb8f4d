// @title UGEM Backend API
// @version 1.0
// @description Student union backend for member accounts and candidate registration
// @termsOfService http://swagger.io/terms/

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/cors"

	_ "UGEM_BACK-END/docs" // This is required for swagger
	"UGEM_BACK-END/internal/config"
	"UGEM_BACK-END/internal/handlers"
	"UGEM_BACK-END/internal/migrations"
	"UGEM_BACK-END/internal/repository"
	"UGEM_BACK-END/internal/routes"
	"UGEM_BACK-END/internal/service"
	"UGEM_BACK-END/internal/uploads"
	"UGEM_BACK-END/internal/utils"
	"UGEM_BACK-END/internal/validation"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	dsn := cfg.GetDSN()

	// pgxpool + simple protocol (needed when connecting through PgBouncer)
	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		slog.Error("failed to parse database DSN", "error", err)
		os.Exit(1)
	}
	poolCfg.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol
	poolCfg.ConnConfig.RuntimeParams["application_name"] = "ugem-backend"
	poolCfg.ConnConfig.RuntimeParams["statement_timeout"] = "30000" // 30s
	poolCfg.MaxConns = cfg.Database.MaxConns
	poolCfg.MinConns = cfg.Database.MinConns
	poolCfg.MaxConnLifetime = cfg.Database.MaxLifetime

	pool, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	{
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			slog.Error("database ping failed", "error", err)
			os.Exit(1)
		}
	}

	// Apply schema migrations before taking traffic
	{
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		if err := migrations.Run(ctx, dsn); err != nil {
			slog.Error("migrations failed", "error", err)
			os.Exit(1)
		}
	}

	// Repositories
	userRepo := repository.NewUserRepository(pool)
	candidateRepo := repository.NewCandidateRepository(pool)
	verificationRepo := repository.NewVerificationRepository(pool)

	// Services
	emailService := utils.NewEmailService(&cfg.Email)
	authService := service.NewAuthService(userRepo, verificationRepo, emailService, &cfg.JWT)
	candidateService := service.NewCandidateService(candidateRepo)

	validator := validation.New()
	uploadClient := uploads.NewClient(&cfg.Upload)

	// Handlers
	h := routes.Handlers{
		Auth:           handlers.NewAuthHandler(authService, validator),
		ForgotPassword: handlers.NewForgotPasswordHandler(authService, validator),
		GoogleAuth:     handlers.NewGoogleAuthHandler(authService, userRepo, cfg),
		Candidates:     handlers.NewCandidateHandler(candidateService, validator),
		Profile:        handlers.NewProfileHandler(authService, validator),
		Uploads:        handlers.NewUploadHandler(uploadClient, &cfg.Upload),
		OG:             handlers.NewOGHandler("UGEM", "Student Union Candidate Registry"),
		Health:         handlers.NewHealthHandler(pool),
	}

	routes.SetupRoutes(h, cfg)

	// CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
	})
	handler := c.Handler(http.DefaultServeMux)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           handler,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		slog.Info("HTTP server listening", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
	}
	slog.Info("server stopped")
}
