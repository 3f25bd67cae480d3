package cmd

import (
	"fmt"
	"os"

	"guide-sync/core/config"
	"guide-sync/core/database"
	"guide-sync/core/logger"
	"guide-sync/core/storage"
	"guide-sync/feature/catalog/snapshot"
	"guide-sync/feature/catalog/store"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "guide-sync",
	Short: "Keep the game guide in line with the codex",
	Long: `guide-sync compares the guide database with snapshots of the official codex,
reports every difference and, when asked, writes the codex values back to the guide.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console encoding at debug level gives readable ISO8601 timestamps.
		l, logErr := logger.New(&logger.Config{Level: "debug", Format: "console"})
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

// setup loads the configuration and builds the logger every command uses.
func setup() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return cfg, l, nil
}

func openGuide(cfg *config.Config) (*store.Store, error) {
	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return store.New(db), nil
}

func openSnapshots(cfg *config.Config) (*snapshot.Store, storage.Client, error) {
	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to storage: %w", err)
	}
	return snapshot.NewStore(client, cfg.Storage.Bucket), client, nil
}
