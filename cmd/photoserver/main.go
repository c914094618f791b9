package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-faster/errors"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/five82/gallery/internal/logging"
	"github.com/five82/gallery/internal/photoserver"
)

const shutdownTimeout = 5 * time.Second

func main() {
	os.Exit(run())
}

func run() int {
	defaults := photoserver.DefaultConfig()
	addr := flag.String("addr", defaults.Addr, "listen address")
	fixtures := flag.String("fixtures", "", "YAML fixtures file (optional, defaults to 25 generated photos)")
	latency := flag.Duration("latency", 0, "delay added to every response")
	failStatus := flag.Int("fail-status", 0, "answer every request with this status (0 disables)")
	logLevel := flag.String("log-level", "info", "log level")
	flag.Parse()

	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "photoserver: invalid log level %q\n", *logLevel)
		return 2
	}
	logger := logging.NewConsole(os.Stdout, level)

	cfg := photoserver.Config{
		Addr:         *addr,
		FixturesPath: *fixtures,
		Latency:      *latency,
		FailStatus:   *failStatus,
	}
	fx, err := cfg.Fixtures()
	if err != nil {
		logger.Error().Err(err).Str("path", cfg.FixturesPath).Msg("load fixtures")
		return 1
	}
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           photoserver.New(cfg, fx, logger).Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info().
			Str("addr", cfg.Addr).
			Int("photos", len(fx.Photos)).
			Dur("latency", cfg.Latency).
			Int("fail_status", cfg.FailStatus).
			Msg("photoserver listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logger.Info().Msg("shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error().Err(err).Msg("photoserver stopped")
		return 1
	}
	return 0
}
