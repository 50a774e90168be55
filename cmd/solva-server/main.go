package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/tomasvidela/solva/internal/app"
	"github.com/tomasvidela/solva/internal/common"
	"github.com/tomasvidela/solva/internal/server"
)

func main() {
	// .env values feed the SOLVA_* overrides before config resolution.
	_ = godotenv.Load()

	a, err := app.NewApp(os.Getenv("SOLVA_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize app: %v\n", err)
		os.Exit(1)
	}
	defer a.Close()

	common.PrintBanner(a.Config, a.Logger)

	srv := server.NewServer(a)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			a.Logger.Fatal().Err(err).Msg("HTTP server failed")
		}
	case sig := <-sigCh:
		a.Logger.Info().Str("signal", sig.String()).Msg("Shutdown signal received")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		a.Logger.Error().Err(err).Msg("HTTP shutdown error")
	}

	common.PrintShutdownBanner(a.Logger)
}
