package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateCmd creates or updates the guide tables and checks the result.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the guide tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		cfg, l, err := setup()
		if err != nil {
			return err
		}
		defer l.Sync()

		guide, err := openGuide(cfg)
		if err != nil {
			return err
		}
		if err := guide.Migrate(ctx); err != nil {
			return fmt.Errorf("failed to migrate: %w", err)
		}

		missing, err := guide.Verify(ctx)
		if err != nil {
			return err
		}
		for table, columns := range missing {
			l.Error("Table is missing columns", zap.String("table", table), zap.Strings("columns", columns))
		}
		if len(missing) > 0 {
			return fmt.Errorf("%d tables do not match the models", len(missing))
		}

		l.Info("Guide schema up to date", zap.String("driver", cfg.Database.Driver))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(migrateCmd)
}
