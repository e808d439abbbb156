package main

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/youruser/pamphletapp/internal/api"
	"github.com/youruser/pamphletapp/internal/config"
	"github.com/youruser/pamphletapp/internal/imagegen"
	"github.com/youruser/pamphletapp/internal/storage"
	"github.com/youruser/pamphletapp/internal/textgen"
)

func main() {
	// Best-effort; the environment may carry everything already.
	_ = godotenv.Load()
	cfg := config.Load()

	log := newLogger(cfg.AppEnv)

	store, err := storage.NewStore(cfg.OutputDir)
	if err != nil {
		log.Fatal().Err(err).Msg("storage init failed")
	}

	a := &api.API{
		Text:          textgen.NewClient(cfg.OllamaBaseURL, cfg.OllamaModel, log),
		Image:         imagegen.NewClient(cfg.StabilityAPIKey, cfg.StabilityURL, log),
		Store:         store,
		PublicBaseURL: cfg.PublicBaseURL,
		Log:           log,
	}

	if cfg.AppEnv != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), api.RequestLogger(log))
	api.RegisterRoutes(r, a)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
	}
	log.Info().Str("port", cfg.Port).Str("output_dir", store.Dir()).Msg("starting server")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func newLogger(env string) zerolog.Logger {
	if env == "development" {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
			With().Timestamp().Logger()
	}
	return zerolog.New(os.Stderr).With().Timestamp().Logger()
}
