package reconcile

import (
	"context"
	"fmt"

	"guide-sync/core/reconcile"
	"guide-sync/feature/catalog/match"
	"guide-sync/feature/catalog/models"
	"guide-sync/feature/catalog/store"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Collection is the authoritative store of one kind.
type Collection[E any] interface {
	reconcile.Store[E]
	List(ctx context.Context) ([]models.Listing, error)
	Create(ctx context.Context, entity E) error
}

// Stores groups the collections the driver writes to.
type Stores struct {
	Items    Collection[models.Item]
	Monsters Collection[models.Monster]
	Skills   Collection[models.Skill]
	Pets     Collection[models.Pet]
}

// StoresFrom exposes the tables of a guide store as driver collections.
func StoresFrom(s *store.Store) Stores {
	return Stores{Items: s.Items, Monsters: s.Monsters, Skills: s.Skills, Pets: s.Pets}
}

// Options control a run.
type Options struct {
	// Fix writes corrections back to the guide. Without it the run only reports.
	Fix bool
}

// Driver reconciles the guide against the codex, one kind at a time.
// The aggregate it is given is kept up to date with every write.
type Driver struct {
	stores  Stores
	data    *models.Data
	logger  *zap.Logger
	opts    Options
	lookups *lookups
}

// NewDriver creates a driver over an aggregate and the guide collections.
func NewDriver(stores Stores, data *models.Data, logger *zap.Logger, opts Options) *Driver {
	return &Driver{stores: stores, data: data, logger: logger, opts: opts}
}

// page is one codex entity with the namespace it was found in.
type page[C any] struct {
	prefix string
	slug   string
	name   string
	entity C
}

func (p page[C]) uri() string { return match.URI(p.prefix, p.slug) }

func pagesOf[C any](prefix string, codex []C, slug, name func(C) string) []page[C] {
	out := make([]page[C], 0, len(codex))
	for _, c := range codex {
		out = append(out, page[C]{prefix: prefix, slug: slug(c), name: name(c), entity: c})
	}
	return out
}

// kindRun binds the generic run phases to one kind.
type kindRun[G, C any] struct {
	kind        models.Kind
	store       Collection[G]
	guides      *[]G
	pages       []page[C]
	id          func(G) int
	name        func(G) string
	uri         func(G) string
	counterpart func(G) (page[C], error)
	// seed builds the skeleton of a guide entity for a missing codex page.
	// Local fields are applied to it before it is created.
	seed   func(page[C]) G
	fields func(G, page[C]) []reconcile.Field[G]
}

// Run reconciles the given kinds in the order they are given and returns
// the report. Failures on single entities are recorded and the run goes on.
// Only cancellation of ctx ends a run early.
func (d *Driver) Run(ctx context.Context, kinds []models.Kind) (*Report, error) {
	rep := newReport(uuid.NewString(), d.opts.Fix)
	log := d.logger.With(zap.String("run_id", rep.ID), zap.Bool("fix", d.opts.Fix))
	log.Info("Starting reconciliation", zap.Int("kinds", len(kinds)))

	for _, kind := range kinds {
		d.lookups = buildLookups(d.data.Guide)

		var (
			sum Summary
			err error
		)
		switch kind {
		case models.KindItem:
			sum, err = runKind(ctx, d, d.itemRun(), rep)
		case models.KindMonster:
			sum, err = runKind(ctx, d, d.monsterRun(), rep)
		case models.KindSkill:
			sum, err = runKind(ctx, d, d.skillRun(), rep)
		case models.KindFollower:
			sum, err = runKind(ctx, d, d.followerRun(), rep)
		default:
			return rep, fmt.Errorf("unknown kind %q", kind)
		}
		rep.Summaries = append(rep.Summaries, sum)
		if err != nil {
			return rep, err
		}

		log.Info("Kind reconciled",
			zap.String("kind", string(kind)),
			zap.Int("missing", sum.Missing),
			zap.Int("created", sum.Created),
			zap.Int("orphans", sum.Orphans),
			zap.Int("checked", sum.Checked),
			zap.Int("mismatched", sum.Mismatched),
			zap.Int("fixed", sum.Fixed),
			zap.Int("unfixed", sum.Unfixed),
			zap.Int("failed", sum.Failed),
			zap.Int("duplicates", sum.Duplicates),
		)
	}

	return rep, nil
}

func runKind[G, C any](ctx context.Context, d *Driver, k kindRun[G, C], rep *Report) (Summary, error) {
	sum := Summary{Kind: k.kind}
	log := d.logger.With(zap.String("kind", string(k.kind)))

	if err := missingPhase(ctx, d, k, rep, &sum, log); err != nil {
		return sum, err
	}
	return sum, fieldPhase(ctx, d, k, rep, &sum, log)
}
