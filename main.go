package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/nk-nigeria/blackjack-solo/api"
	"github.com/nk-nigeria/blackjack-solo/entity"
	"github.com/nk-nigeria/blackjack-solo/pkg/logging"
	"github.com/nk-nigeria/blackjack-solo/usecase/engine"
	"github.com/nk-nigeria/blackjack-solo/usecase/session"
	"go.uber.org/zap"
)

// version is set by ldflags during build
var version = "dev"

const shutdownTimeout = 5 * time.Second

type CLI struct {
	Version        kong.VersionFlag `short:"v" help:"Show version"`
	Addr           string           `kong:"default=':8000',env='LISTEN_ADDR',help='HTTP listen address'"`
	Debug          bool             `kong:"env='DEBUG',help='Enable debug logging'"`
	Strict         bool             `kong:"env='STRICT_RULES',help='Reject unknown actions and invalid bets instead of silently accepting them'"`
	AllowedOrigins []string         `kong:"default='*',env='ALLOWED_ORIGINS',help='Allowed CORS origins'"`
}

func main() {
	_ = godotenv.Load()

	var cli CLI
	kong.Parse(&cli,
		kong.Name(entity.ModuleName),
		kong.Description("Single-player blackjack game server"),
		kong.UsageOnError(),
		kong.Vars{"version": version},
	)

	logger, err := logging.NewLogger(cli.Debug)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	var opts []engine.Option
	if cli.Strict {
		opts = append(opts, engine.WithStrictRules())
	}

	store := session.NewRegistry(opts...)
	srv := api.NewServer(store, logger, cli.AllowedOrigins)

	httpSrv := &http.Server{
		Addr:    cli.Addr,
		Handler: srv.Handler(),
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server starting",
			zap.String("addr", cli.Addr),
			zap.Bool("strict", cli.Strict),
			zap.String("version", version))
		serverErr <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	case sig := <-sigChan:
		logger.Info("shutting down", zap.String("signal", sig.String()))
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpSrv.Shutdown(ctx); err != nil {
			logger.Warn("shutdown incomplete", zap.Error(err))
		}
	}
}
