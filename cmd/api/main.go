package main

import (
	"net/http"
	"os"
	"time"

	"nutricat/internal/config"
	"nutricat/internal/platform/logger"
	"nutricat/internal/router"

	"github.com/joho/godotenv"
)

// @title nutricat API
// @version 1.0
// @description Mascota virtual alimentada por el registro nutricional del usuario.
// @BasePath /
func main() {
	// .env es opcional; en prod las vars vienen del entorno.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	loc, err := cfg.Location()
	if err != nil {
		log.Error("invalid timezone", map[string]any{"timezone": cfg.Timezone, "error": err.Error()})
		os.Exit(1)
	}

	r := router.NewRouter(router.Options{
		AuthVerifier: nil, // sin verifier para modo dev
		Location:     loc,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("starting server", map[string]any{"addr": srv.Addr})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}
