package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/tallybook/backend/internal/browser"
	"github.com/tallybook/backend/internal/config"
	"github.com/tallybook/backend/internal/controllers"
	"github.com/tallybook/backend/internal/models"
	"github.com/tallybook/backend/internal/router"
	"golang.org/x/sync/errgroup"
)

func main() {
	// Values from a .env file take effect as if they were set in the
	// environment
	_ = godotenv.Load()

	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	cfg, err := config.Load("tallybook.toml")
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	if err := cfg.Validate(); err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	output := io.Writer(os.Stdout)
	if (cfg.LogFormat == "" && gin.IsDebugging()) || cfg.LogFormat == "human" {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	// Create the directory for the ledger file
	if err := os.MkdirAll(filepath.Dir(cfg.DataFile), os.ModePerm); err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Open the ledger
	ledger, err := models.Connect(cfg.DataFile)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	if cfg.SeedDemoData {
		if err := ledger.Seed(); err != nil {
			log.Fatal().Msg(err.Error())
		}
	}

	r, teardown, err := router.Config()
	defer teardown()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	router.AttachRoutes(controllers.Controller{Ledger: ledger}, r.Group("/"))

	srv := &http.Server{
		Addr:           fmt.Sprintf(":%d", cfg.Port),
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 16, // 64KB
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Str("address", srv.Addr).Msg("Starting server")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	})

	if cfg.OpenBrowser {
		g.Go(func() error {
			// Give the server a moment to start listening
			select {
			case <-gCtx.Done():
				return nil
			case <-time.After(time.Second):
			}

			if err := browser.Open(gCtx, fmt.Sprintf("http://localhost:%d", cfg.Port)); err != nil {
				log.Warn().Msg(err.Error())
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		log.Fatal().Msg(err.Error())
	}

	log.Info().Msg("Server stopped gracefully")
}
