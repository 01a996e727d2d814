// Package main is the entry point for the tweetstore server application.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ASHISH26940/tweetstore/internal/config"
	"github.com/ASHISH26940/tweetstore/internal/metrics"
	"github.com/ASHISH26940/tweetstore/internal/server"
	"github.com/ASHISH26940/tweetstore/internal/store"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// --- Configuration and Flags ---
	configFile := flag.String("config", "config.toml", "Path to config file")
	flag.Parse()

	cfg := config.New()
	if err := cfg.Load(*configFile); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Fatal().Err(err).Str("fileName", *configFile).Msg("Failed to load config")
		}
		log.Warn().Str("fileName", *configFile).Msg("Config file not found, continuing with defaults...")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid config")
	}
	initLog(cfg)

	// --- Initialize Store and Seed It ---
	st := store.NewStore()
	if err := seed(st, cfg.Seeds); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed store")
	}
	metrics.RegisterTweetCount(st.Len)

	// --- Start the Metrics Server ---
	if cfg.MetricsAddr != "" {
		startMetricsServer(cfg.MetricsAddr)
	}

	// --- Start the HTTP Server ---
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           server.New(st, cfg.StaticDir, log.Logger),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       90 * time.Second,
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// done is closed once Shutdown has drained in-flight requests.
	done := make(chan struct{})
	go func() {
		defer close(done)
		<-ctx.Done()
		log.Info().Msg("Gracefully shutting down tweetstore...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("HTTP server shutdown failed")
		}
	}()

	log.Info().Str("addr", cfg.Addr()).Int("tweets", st.Len()).Msg("Starting HTTP server")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("HTTP server failed")
	}
	<-done
	log.Info().Msg("tweetstore is no longer running")
}

func initLog(cfg *config.Config) {
	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Debug().Msgf("Logger level set to '%s'", level)
}

func seed(st *store.Store, seeds []config.Seed) error {
	for _, s := range seeds {
		tweet, err := st.Append(s.Author, s.Message)
		if err != nil {
			return fmt.Errorf("seed tweet by %q: %w", s.Author, err)
		}
		log.Debug().Str("tweetID", tweet.ID).Str("author", tweet.Author).Msg("Seeded tweet")
	}
	return nil
}

func startMetricsServer(addr string) {
	go func() {
		log.Info().Str("addr", addr).Msg("Starting metrics server")
		if err := http.ListenAndServe(addr, metrics.Handler()); err != nil {
			log.Error().Err(err).Msg("Metrics server failed")
		}
	}()
}
