package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"datosempleado/internal/config"
	"datosempleado/internal/db"
	"datosempleado/internal/domain"
	apihttp "datosempleado/internal/http"
	"datosempleado/internal/repository"
	"datosempleado/internal/service"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	if err := db.EnsureSchema(ctx, pool); err != nil {
		logger.Fatal("ensure schema", zap.Error(err))
	}

	employeeRepo := repository.NewPgEmployeeRepository(pool)
	jwtSvc := service.NewJWTService(cfg.JWTSecret, time.Duration(cfg.JWTTTLMinutes)*time.Minute)
	authSvc := service.NewAuthService(domain.Credential{
		ID:           cfg.AdminID,
		Username:     cfg.AdminUsername,
		PasswordHash: cfg.AdminPasswordHash,
	}, jwtSvc)

	authHandler := apihttp.NewAuthHandler(logger, authSvc)
	employeeHandler := apihttp.NewEmployeeHandler(logger, employeeRepo, func(ctx context.Context) error {
		return db.Ping(ctx, pool)
	})
	router := apihttp.NewRouter(logger, jwtSvc, authHandler, employeeHandler, cfg.CORSOrigin)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
