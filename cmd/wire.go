package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/Spaaern/pubcrawl-cli/internal/adapters/repo/jsonfile"
	"github.com/Spaaern/pubcrawl-cli/internal/application"
	"github.com/Spaaern/pubcrawl-cli/internal/ports"
	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
)

const defaultShareBase = "https://spaaern.github.io/pubcrawl/"

type app struct {
	store     ports.HubStore
	clock     ports.Clock
	logger    *log.Logger
	hubPath   string
	shareBase string
}

func wireApp() (*app, error) {
	cfg := viper.New()
	cfg.SetDefault("share.base", defaultShareBase)

	store, err := jsonfile.NewStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire hub store: %w", err)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		Prefix:          "pc",
	})

	return &app{
		store:     store,
		clock:     ports.SystemClock{},
		logger:    logger,
		hubPath:   store.Path(),
		shareBase: envOrDefault("PUBCRAWL_SHARE_BASE", cfg.GetString("share.base")),
	}, nil
}

func (a *app) open(ctx context.Context) (*application.Session, error) {
	return application.Open(ctx, a.store, a.clock, a.logger)
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
