package cmd

import (
	"context"
	"fmt"

	"guide-sync/core/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	mergeFrom []string
	mergeTo   string
	dumpTo    string
)

// mergeCmd merges stored snapshots into a new one.
var mergeCmd = &cobra.Command{
	Use:     "merge",
	Short:   "Merge snapshots into a new snapshot (later snapshots win)",
	Example: `  merge --from snapshots/2024-05-01,snapshots/2024-06-01 --to snapshots/latest`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		cfg, l, err := setup()
		if err != nil {
			return err
		}
		defer l.Sync()

		snaps, client, err := openSnapshots(cfg)
		if err != nil {
			return err
		}

		merged, err := snaps.LoadMerged(ctx, mergeFrom)
		if err != nil {
			return err
		}
		if err := storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region); err != nil {
			return err
		}
		if err := snaps.Save(ctx, mergeTo, merged); err != nil {
			return err
		}

		l.Info("Snapshots merged",
			zap.Strings("from", mergeFrom),
			zap.String("to", mergeTo),
			zap.Int("codex_items", len(merged.Codex.Items)),
			zap.Int("codex_monsters", len(merged.Codex.Monsters)+len(merged.Codex.Bosses)+len(merged.Codex.Raids)),
			zap.Int("codex_skills", len(merged.Codex.Skills)),
			zap.Int("codex_followers", len(merged.Codex.Followers)),
		)
		return nil
	},
}

// dumpCmd stores the current guide database as a snapshot.
var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Store the guide database as a snapshot",
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
		snaps, client, err := openSnapshots(cfg)
		if err != nil {
			return err
		}

		data, err := guide.Dump(ctx)
		if err != nil {
			return err
		}
		if err := storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region); err != nil {
			return err
		}
		snap, err := snaps.Load(ctx, dumpTo)
		if err != nil {
			return err
		}
		// The codex side of an existing snapshot is kept.
		snap.Guide = data
		if err := snaps.Save(ctx, dumpTo, snap); err != nil {
			return err
		}

		l.Info("Guide dumped",
			zap.String("to", dumpTo),
			zap.Int("items", len(data.Items)),
			zap.Int("monsters", len(data.Monsters)),
			zap.Int("skills", len(data.Skills)),
			zap.Int("pets", len(data.Pets)),
		)
		return nil
	},
}

// snapshotsCmd lists the stored snapshots.
var snapshotsCmd = &cobra.Command{
	Use:   "snapshots",
	Short: "List stored snapshots",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, l, err := setup()
		if err != nil {
			return err
		}
		defer l.Sync()

		snaps, _, err := openSnapshots(cfg)
		if err != nil {
			return err
		}
		prefixes, err := snaps.List(context.Background(), cfg.Reconcile.SnapshotRoot)
		if err != nil {
			return err
		}
		for _, p := range prefixes {
			fmt.Println(p)
		}
		l.Info("Snapshots listed", zap.String("root", cfg.Reconcile.SnapshotRoot), zap.Int("count", len(prefixes)))
		return nil
	},
}

// snapshotsRmCmd deletes a stored snapshot.
var snapshotsRmCmd = &cobra.Command{
	Use:   "rm <prefix>",
	Short: "Delete a stored snapshot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, l, err := setup()
		if err != nil {
			return err
		}
		defer l.Sync()

		snaps, _, err := openSnapshots(cfg)
		if err != nil {
			return err
		}
		if !confirmDestructiveAction() {
			l.Warn("Operation cancelled by user. No changes were made.")
			return nil
		}
		if err := snaps.Delete(context.Background(), args[0]); err != nil {
			return err
		}
		l.Info("Snapshot deleted", zap.String("prefix", args[0]))
		return nil
	},
}

func init() {
	mergeCmd.Flags().StringSliceVar(&mergeFrom, "from", nil, "Snapshot prefixes to merge, oldest first")
	mergeCmd.Flags().StringVar(&mergeTo, "to", "", "Prefix of the merged snapshot")
	_ = mergeCmd.MarkFlagRequired("from")
	_ = mergeCmd.MarkFlagRequired("to")

	dumpCmd.Flags().StringVar(&dumpTo, "to", "", "Prefix of the snapshot to write")
	_ = dumpCmd.MarkFlagRequired("to")

	snapshotsRmCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm destructive actions (non-interactive)")
	snapshotsCmd.AddCommand(snapshotsRmCmd)

	RootCmd.AddCommand(mergeCmd, dumpCmd, snapshotsCmd)
}
