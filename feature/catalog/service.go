package catalog

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"guide-sync/feature/catalog/models"
	"guide-sync/feature/catalog/reconcile"
	"guide-sync/feature/catalog/snapshot"
	"guide-sync/feature/catalog/store"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// Service builds dry-run reconciliation reports for the HTTP API.
type Service struct {
	snapshots *snapshot.Store
	prefixes  []string
	guide     *store.Store
	logger    *zap.Logger
	ttl       time.Duration

	mu      sync.RWMutex
	reports map[string]cachedReport
	sf      singleflight.Group
}

type cachedReport struct {
	report *reconcile.Report
	built  time.Time
}

// NewService creates a report service. Reports are reused for ttl; zero
// disables reuse.
func NewService(snapshots *snapshot.Store, prefixes []string, guide *store.Store, logger *zap.Logger, ttl time.Duration) *Service {
	return &Service{
		snapshots: snapshots,
		prefixes:  prefixes,
		guide:     guide,
		logger:    logger,
		ttl:       ttl,
		reports:   make(map[string]cachedReport),
	}
}

// Load reads the codex from the merged snapshots and the guide from the
// database, concurrently.
func (s *Service) Load(ctx context.Context) (*models.Data, error) {
	var data models.Data
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		merged, err := s.snapshots.LoadMerged(ctx, s.prefixes)
		if err != nil {
			return fmt.Errorf("failed to load snapshots: %w", err)
		}
		data.Codex = merged.Codex
		return nil
	})
	g.Go(func() error {
		guide, err := s.guide.Dump(ctx)
		if err != nil {
			return fmt.Errorf("failed to dump guide: %w", err)
		}
		data.Guide = guide
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &data, nil
}

// Report returns a dry-run report for the kinds. Concurrent requests for the
// same kinds share one build.
func (s *Service) Report(ctx context.Context, kinds []models.Kind) (*reconcile.Report, error) {
	key := cacheKey(kinds)

	s.mu.RLock()
	cached, ok := s.reports[key]
	s.mu.RUnlock()
	if ok && s.fresh(cached) {
		return cached.report, nil
	}

	result, err, shared := s.sf.Do(key, func() (any, error) {
		data, err := s.Load(ctx)
		if err != nil {
			return nil, err
		}

		driver := reconcile.NewDriver(reconcile.StoresFrom(s.guide), data, s.logger, reconcile.Options{})
		report, err := driver.Run(ctx, kinds)
		if err != nil {
			return nil, err
		}

		s.mu.Lock()
		s.reports[key] = cachedReport{report: report, built: time.Now()}
		s.mu.Unlock()
		return report, nil
	})
	if err != nil {
		return nil, err
	}
	if shared {
		s.logger.Debug("Report build shared", zap.String("kinds", key))
	}
	return result.(*reconcile.Report), nil
}

// Invalidate drops every cached report.
func (s *Service) Invalidate() {
	s.mu.Lock()
	clear(s.reports)
	s.mu.Unlock()
}

func (s *Service) fresh(c cachedReport) bool {
	return s.ttl > 0 && time.Since(c.built) < s.ttl
}

func cacheKey(kinds []models.Kind) string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return strings.Join(names, ",")
}
