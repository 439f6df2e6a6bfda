package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/neutech/estates/internal/llm"
	"github.com/neutech/estates/internal/refdata"
	"github.com/neutech/estates/internal/service"
	"github.com/neutech/estates/internal/storage"
)

// initStorage opens the configured database, runs migrations, and seeds
// reference data into an empty store. The default path is the in-memory
// database, so a fresh session starts from the bundled seed set.
func initStorage(ctx context.Context) (service.Storage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = storage.InMemoryDSN
	}
	dbPath = expandPath(dbPath)

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	// Run migrations
	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := ensureSeedData(ctx, store); err != nil {
		return nil, err
	}

	return store, nil
}

// ensureSeedData loads the bundled listings and publisher applications
// into a store that has none yet. Already-populated stores are left alone.
func ensureSeedData(ctx context.Context, store service.Storage) error {
	listings, err := store.ListListings(ctx)
	if err != nil {
		return fmt.Errorf("failed to check existing listings: %w", err)
	}
	if len(listings) == 0 {
		for _, p := range refdata.SeedListings() {
			if err := store.AddListing(ctx, p); err != nil {
				return fmt.Errorf("failed to seed listing %s: %w", p.ID, err)
			}
		}
	}

	users, err := store.ListUsers(ctx)
	if err != nil {
		return fmt.Errorf("failed to check existing users: %w", err)
	}
	if len(users) == 0 {
		if err := store.SaveUsers(ctx, refdata.SeedUsers()); err != nil {
			return fmt.Errorf("failed to seed publisher applications: %w", err)
		}
	}
	return nil
}

// initDescriber builds the description generator from config. The API key
// may come from the environment via .env; without one the application
// still runs, and every generation request yields the fallback text.
func initDescriber() (service.Describer, error) {
	cfg := llm.Config{
		Provider:    viper.GetString("llm.provider"),
		Model:       viper.GetString("llm.model"),
		APIKey:      apiKeyForProvider(viper.GetString("llm.provider")),
		Temperature: viper.GetFloat64("llm.temperature"),
		MaxTokens:   viper.GetInt("llm.max_tokens"),
	}
	describer, err := llm.NewDescriber(cfg)
	if err != nil {
		slog.Warn("description assistance unavailable", "error", err)
		return llm.NewDescriberWithClient(llm.Unavailable{}), nil
	}
	return describer, nil
}

func apiKeyForProvider(provider string) string {
	if key := viper.GetString("llm.api_key"); key != "" {
		return key
	}
	switch provider {
	case "openai":
		return os.Getenv("OPENAI_API_KEY")
	default:
		return os.Getenv("ANTHROPIC_API_KEY")
	}
}

// expandPath resolves a leading tilde and environment variables. The
// in-memory DSN passes through untouched.
func expandPath(path string) string {
	if path == storage.InMemoryDSN {
		return path
	}
	if len(path) > 1 && path[0] == '~' && path[1] == '/' {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	}
	return os.ExpandEnv(path)
}
