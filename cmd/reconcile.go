package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"guide-sync/core/utils"
	"guide-sync/feature/catalog"
	"guide-sync/feature/catalog/models"
	"guide-sync/feature/catalog/reconcile"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	fixReconcile   bool
	yesConfirm     bool
	snapshotsFlag  []string
	reportPathFlag string
)

// reconcileCmd compares the guide with the codex and optionally fixes it.
var reconcileCmd = &cobra.Command{
	Use:       "reconcile [kind...]",
	Short:     "Reconcile the guide with the codex (report + optionally fix)",
	ValidArgs: []string{"all", "items", "monsters", "skills", "followers"},
	Args:      cobra.OnlyValidArgs,
	Long: `Reconcile guide entities with the codex snapshots.

Reports codex entities missing from the guide, guide entities pointing nowhere,
and field mismatches. With --fix, missing entities are created and mismatching
fields are written back to the guide.

Examples:
  # Report only (dry-run), kinds from RECONCILE_KINDS
  reconcile

  # Report items against two snapshots, oldest first
  reconcile items --snapshots snapshots/2024-05-01,snapshots/2024-06-01

  # Fix monsters and items with auto-confirm
  reconcile monsters items --fix --yes`,
	RunE: runReconcile,
}

func init() {
	reconcileCmd.Flags().BoolVar(&fixReconcile, "fix", false, "Write codex values back to the guide")
	reconcileCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm destructive actions (non-interactive)")
	reconcileCmd.Flags().StringSliceVar(&snapshotsFlag, "snapshots", nil, "Snapshot prefixes to merge, oldest first (default RECONCILE_SNAPSHOTS)")
	reconcileCmd.Flags().StringVar(&reportPathFlag, "report", "", "Write the full report as JSON to this file")

	RootCmd.AddCommand(reconcileCmd)
}

func runReconcile(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, l, err := setup()
	if err != nil {
		return err
	}
	defer l.Sync()

	names := args
	if len(names) == 0 {
		names = cfg.Reconcile.KindNames()
	}
	kinds, err := models.ParseKinds(names)
	if err != nil {
		return err
	}

	prefixes := snapshotsFlag
	if len(prefixes) == 0 {
		prefixes = cfg.Reconcile.SnapshotPrefixes()
	}
	if len(prefixes) == 0 {
		return fmt.Errorf("no snapshot prefixes given")
	}

	guide, err := openGuide(cfg)
	if err != nil {
		return err
	}
	snaps, _, err := openSnapshots(cfg)
	if err != nil {
		return err
	}

	if fixReconcile && !confirmDestructiveAction() {
		l.Warn("Operation cancelled by user. No changes were made.")
		return nil
	}

	l.Info("Loading codex snapshots and guide", zap.Strings("snapshots", prefixes))
	data, err := catalog.NewService(snaps, prefixes, guide, l, 0).Load(ctx)
	if err != nil {
		return err
	}

	driver := reconcile.NewDriver(reconcile.StoresFrom(guide), data, l, reconcile.Options{Fix: fixReconcile})
	report, err := driver.Run(ctx, kinds)
	if err != nil {
		return fmt.Errorf("reconciliation aborted: %w", err)
	}

	printReconcileReport(l, report)

	if reportPathFlag != "" {
		body, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		if err := os.WriteFile(reportPathFlag, body, 0o644); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		l.Info("Report written", zap.String("path", reportPathFlag))
	}

	if !fixReconcile && !report.Clean() {
		l.Info("Dry-run mode: No changes were made. Use --fix to repair the guide.")
	}
	return nil
}

// printReconcileReport logs the per-kind counts and a sample of what differs.
func printReconcileReport(l *zap.Logger, report *reconcile.Report) {
	for _, s := range report.Summaries {
		l.Info("Reconciliation report",
			zap.String("kind", string(s.Kind)),
			zap.Int("missing", s.Missing),
			zap.Int("created", s.Created),
			zap.Int("orphans", s.Orphans),
			zap.Int("checked", s.Checked),
			zap.Int("mismatched", s.Mismatched),
			zap.Int("fixed", s.Fixed),
			zap.Int("unfixed", s.Unfixed),
			zap.Int("failed", s.Failed),
			zap.Int("duplicates", s.Duplicates),
		)
	}

	const maxShow = 5
	for i, e := range report.Entities {
		if i == maxShow {
			l.Info("Additional entities not shown", zap.Int("count", len(report.Entities)-maxShow))
			break
		}
		for _, d := range e.Discrepancies {
			l.Info("Sample mismatch",
				zap.String("kind", string(e.Kind)),
				zap.Int("id", e.ID),
				zap.String("uri", e.URI),
				zap.String("field", d.Field),
				zap.String("expected", utils.Truncate(fmt.Sprint(d.Expected), 80)),
				zap.String("actual", utils.Truncate(fmt.Sprint(d.Actual), 80)),
			)
		}
	}

	// Failures are listed in full so they can be retried by hand.
	for _, f := range report.Failures {
		l.Warn("Entity failed",
			zap.String("kind", string(f.Kind)),
			zap.Int("id", f.ID),
			zap.String("uri", f.URI),
			zap.String("error", f.Error),
		)
	}
}

// confirmDestructiveAction prompts the user for confirmation or uses --yes flag.
func confirmDestructiveAction() bool {
	if yesConfirm {
		fmt.Println("\n✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Print("\n⚠️  Type 'yes' to confirm writing to the guide: ")
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	return strings.TrimSpace(response) == "yes"
}
