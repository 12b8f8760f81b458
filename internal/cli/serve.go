package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deckforge/deckforge/pkg/cache"
	"github.com/deckforge/deckforge/pkg/config"
	"github.com/deckforge/deckforge/pkg/gen"
	"github.com/deckforge/deckforge/pkg/images"
	"github.com/deckforge/deckforge/pkg/pipeline"
	"github.com/deckforge/deckforge/pkg/store"
	"github.com/deckforge/deckforge/pkg/theme"

	"github.com/deckforge/deckforge/internal/server"
)

// serveCommand creates the serve command for running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr       string
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the deckforge HTTP API server",
		Long: `Run the deckforge HTTP API server.

Storage and cache backends come from the config file: MongoDB for
projects and themes when mongo.uri is set (in-memory stores otherwise),
Redis for the artifact cache when redis.addr is set (file cache
otherwise). Deck generation is enabled when the Gemini API key
environment variable is present.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr, configPath)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "listen address (overrides config)")
	cmd.Flags().StringVar(&configPath, "config", "", "config file path")

	return cmd
}

// runServe wires the configured backends and runs the server until the
// context is cancelled.
func (c *CLI) runServe(ctx context.Context, addr, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if addr == "" {
		addr = cfg.Server.Addr
	}

	deps, err := c.buildServerConfig(ctx, cfg)
	if err != nil {
		return err
	}
	srv := server.New(deps)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe(addr)
	}()

	select {
	case <-ctx.Done():
		c.Logger.Info("shutting down")
		return ctx.Err()
	case err := <-errCh:
		return err
	}
}

// buildServerConfig assembles stores, cache, image chain, and generator
// from the loaded configuration.
func (c *CLI) buildServerConfig(ctx context.Context, cfg config.Config) (server.Config, error) {
	var (
		projects store.ProjectStore
		jobs     store.JobStore
		themes   store.ThemeStore
	)
	if cfg.Mongo.URI != "" {
		db, err := store.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
		if err != nil {
			return server.Config{}, fmt.Errorf("connect mongo: %w", err)
		}
		ps := store.NewMongoProjectStore(db)
		if err := ps.EnsureIndexes(ctx); err != nil {
			return server.Config{}, fmt.Errorf("ensure indexes: %w", err)
		}
		projects = ps
		jobs = store.NewMongoJobStore(db)
		themes = store.NewMongoThemeStore(db)
		c.Logger.Info("using mongodb stores", "database", cfg.Mongo.Database)
	} else {
		projects = store.NewMemoryProjectStore()
		jobs = store.NewMemoryJobStore()
		themes = store.NewMemoryThemeStore(theme.Builtin()...)
		c.Logger.Info("using in-memory stores")
	}

	var cch cache.Cache
	if cfg.Redis.Addr != "" {
		rc, err := cache.NewRedisCache(ctx, cfg.Redis.Addr)
		if err != nil {
			return server.Config{}, fmt.Errorf("connect redis: %w", err)
		}
		cch = rc
		c.Logger.Info("using redis cache", "addr", cfg.Redis.Addr)
	} else {
		var err error
		cch, err = newCache(false)
		if err != nil {
			return server.Config{}, fmt.Errorf("open cache: %w", err)
		}
	}

	chain, err := images.NewChain(cfg.Images, c.Logger)
	if err != nil {
		return server.Config{}, fmt.Errorf("build image chain: %w", err)
	}

	runner := pipeline.NewRunner(cch, nil, c.Logger)

	var generator *gen.Generator
	if apiKey := cfg.APIKey(); apiKey != "" {
		model, err := gen.NewGeminiModel(ctx, apiKey, cfg.Gemini.Model)
		if err != nil {
			return server.Config{}, fmt.Errorf("create gemini client: %w", err)
		}
		generator = gen.NewGenerator(model, c.Logger)
		c.Logger.Info("deck generation enabled", "model", model.Name())
	} else {
		c.Logger.Warn("deck generation disabled", "reason", "no API key")
	}

	return server.Config{
		Projects:  projects,
		Jobs:      jobs,
		Themes:    themes,
		Runner:    runner,
		Generator: generator,
		Images:    chain,
		Logger:    c.Logger,
	}, nil
}
