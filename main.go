package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"charity-events-api/config"
	"charity-events-api/db"
	"charity-events-api/middlewares"
	"charity-events-api/models"
	"charity-events-api/routes"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load config", zap.Error(err))
	}

	database, err := db.Connect(&cfg.DB)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := database.InitSchema(ctx); err != nil {
		log.Fatal("failed to initialize schema", zap.Error(err))
	}
	log.Info("database ready",
		zap.String("host", cfg.DB.Host),
		zap.String("name", cfg.DB.Name),
		zap.Int("max_open_conns", cfg.DB.MaxOpenConns),
	)

	server := gin.New()
	server.Use(middlewares.Recovery(log))
	server.Use(middlewares.RequestLogger(log))
	server.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
	}))

	routes.RegisterRoutes(server,
		models.NewSQLEventRepository(database.DB),
		models.NewSQLRegistrationRepository(database.DB),
		models.NewSQLCategoryRepository(database.DB),
		log,
	)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      server,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Info("server starting", zap.String("addr", cfg.Addr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", zap.Error(err))
	}

	// The pool closes after the server has drained so in-flight queries
	// finish on live connections.
	if err := database.Close(); err != nil {
		log.Error("failed to close database", zap.Error(err))
	}

	log.Info("server exited")
}
