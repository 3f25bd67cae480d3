package reconcile

import (
	"context"
	"errors"
	"slices"

	"guide-sync/core/reconcile"
	"guide-sync/core/utils"
	"guide-sync/feature/catalog/exclusions"
	"guide-sync/feature/catalog/match"
	"guide-sync/feature/catalog/models"

	"go.uber.org/zap"
)

// missingPhase reports codex pages without a guide entity and, when fixing,
// creates them and appends the stored result to the aggregate.
func missingPhase[G, C any](ctx context.Context, d *Driver, k kindRun[G, C], rep *Report, sum *Summary, log *zap.Logger) error {
	linked := make(map[string]bool, len(*k.guides))
	for _, g := range *k.guides {
		if uri := canonicalURI(k.uri(g)); uri != "" {
			linked[uri] = true
		}
	}

	var missing []page[C]
	for _, p := range k.pages {
		if exclusions.Entity(p.prefix, p.slug) || linked[p.uri()] {
			continue
		}
		missing = append(missing, p)
	}
	sum.Missing = len(missing)
	if len(missing) == 0 {
		return nil
	}

	first := len(rep.Missing)
	for _, p := range missing {
		rep.Missing = append(rep.Missing, MissingEntity{Kind: k.kind, URI: p.uri(), Name: p.name})
		log.Info("Missing from guide", zap.String("uri", p.uri()), zap.String("name", p.name))
	}
	if !d.opts.Fix {
		return nil
	}

	created, err := createMissing(ctx, d, k, missing, rep, sum, log)
	if err != nil {
		return err
	}

	for i, p := range missing {
		if _, err := match.GuideFor(p.slug, p.prefix, created, k.uri); err == nil {
			rep.Missing[first+i].Created = true
			sum.Created++
		}
	}
	return nil
}

// createMissing creates one guide entity per page, then lists the kind and
// retrieves every ID that was not there before. The retrieved entities are
// appended to the aggregate and returned.
func createMissing[G, C any](ctx context.Context, d *Driver, k kindRun[G, C], missing []page[C], rep *Report, sum *Summary, log *zap.Logger) ([]G, error) {
	before, err := reconcile.RetryOnce(func() ([]models.Listing, error) { return k.store.List(ctx) })
	if err != nil {
		rep.Failures = append(rep.Failures, Failure{Kind: k.kind, Error: err.Error()})
		sum.Failed++
		log.Error("Failed to list before creating", zap.Error(err))
		return nil, nil
	}
	known := make(map[int]bool, len(before))
	for _, l := range before {
		known[l.ID] = true
	}

	for _, p := range missing {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		entity := k.seed(p)
		for _, f := range applicable(k.fields(entity, p), p) {
			if lf, ok := f.(reconcile.LocalField[G]); ok {
				lf.Apply(&entity)
			}
		}
		if err := createOnce(ctx, k, entity, known); err != nil {
			rep.Failures = append(rep.Failures, Failure{Kind: k.kind, URI: p.uri(), Error: err.Error()})
			sum.Failed++
			log.Error("Failed to create", zap.String("uri", p.uri()), zap.Error(err))
			continue
		}
		log.Info("Created from codex", zap.String("uri", p.uri()))
	}

	after, err := reconcile.RetryOnce(func() ([]models.Listing, error) { return k.store.List(ctx) })
	if err != nil {
		rep.Failures = append(rep.Failures, Failure{Kind: k.kind, Error: err.Error()})
		sum.Failed++
		log.Error("Failed to list after creating", zap.Error(err))
		return nil, nil
	}

	var created []G
	for _, l := range after {
		if known[l.ID] {
			continue
		}
		entity, err := reconcile.RetryOnce(func() (G, error) { return k.store.Retrieve(ctx, l.ID) })
		if err != nil {
			rep.Failures = append(rep.Failures, Failure{Kind: k.kind, ID: l.ID, Error: err.Error()})
			sum.Failed++
			log.Error("Failed to retrieve created entity", zap.Int("id", l.ID), zap.Error(err))
			continue
		}
		created = append(created, entity)
	}
	*k.guides = append(*k.guides, created...)
	return created, nil
}

// createOnce creates entity, retrying once. Create is not idempotent: the
// first attempt may have been committed before it failed, so the kind is
// listed again and the retry is skipped when a new row with the entity's name
// is there. known holds the IDs listed before any creation.
func createOnce[G, C any](ctx context.Context, k kindRun[G, C], entity G, known map[int]bool) error {
	err := k.store.Create(ctx, entity)
	if err == nil {
		return nil
	}

	listing, listErr := k.store.List(ctx)
	if listErr != nil {
		return err
	}
	name := k.name(entity)
	for _, l := range listing {
		if !known[l.ID] && l.Name == name {
			return nil
		}
	}
	return k.store.Create(ctx, entity)
}

// fieldPhase compares every linked guide entity with its codex page and,
// when fixing, repairs the fields that differ.
func fieldPhase[G, C any](ctx context.Context, d *Driver, k kindRun[G, C], rep *Report, sum *Summary, log *zap.Logger) error {
	counts := make(map[string]int, len(*k.guides))
	for _, g := range *k.guides {
		counts[canonicalURI(k.uri(g))]++
	}

	checker := reconcile.Checker[G]{
		Kind:   string(k.kind),
		Store:  k.store,
		ID:     k.id,
		Logger: d.logger,
		Fix:    d.opts.Fix,
	}

	for _, g := range slices.Clone(*k.guides) {
		if err := ctx.Err(); err != nil {
			return err
		}

		id, uri := k.id(g), k.uri(g)
		if utils.IsBlank(uri) {
			rep.Orphans = append(rep.Orphans, Orphan{Kind: k.kind, ID: id, Name: k.name(g)})
			sum.Orphans++
			continue
		}
		if n := counts[canonicalURI(uri)]; n > 1 {
			rep.Failures = append(rep.Failures, Failure{Kind: k.kind, ID: id, URI: uri, Error: reconcile.ErrDuplicateMatch.Error()})
			sum.Duplicates++
			log.Warn("Codex page linked by several guide entities", zap.Int("id", id), zap.String("uri", uri), zap.Int("count", n))
			continue
		}

		p, err := k.counterpart(g)
		if errors.Is(err, reconcile.ErrNotFound) {
			rep.Orphans = append(rep.Orphans, Orphan{Kind: k.kind, ID: id, Name: k.name(g), URI: uri})
			sum.Orphans++
			continue
		}
		if err != nil {
			rep.Failures = append(rep.Failures, Failure{Kind: k.kind, ID: id, URI: uri, Error: err.Error()})
			sum.Failed++
			continue
		}
		if exclusions.Entity(p.prefix, p.slug) {
			continue
		}

		entity := g
		out, err := checker.Check(ctx, &entity, applicable(k.fields(g, p), p))
		sum.Checked++
		sum.Fixed += len(out.Fixed)
		sum.Unfixed += len(out.Discrepancies) - len(out.Fixed)
		if len(out.Discrepancies) > 0 {
			sum.Mismatched++
			rep.Entities = append(rep.Entities, EntityResult{Kind: k.kind, ID: id, Name: k.name(g), URI: p.uri(), Outcome: out})
		}
		if d.opts.Fix {
			replaceByID(k.guides, entity, k.id)
		}

		if err != nil {
			var te *reconcile.TransportError
			if !errors.As(err, &te) {
				return err
			}
			rep.Failures = append(rep.Failures, Failure{Kind: k.kind, ID: id, URI: p.uri(), Error: err.Error()})
			sum.Failed++
			log.Error("Giving up on entity", zap.Int("id", id), zap.Error(err))
		}
	}
	return nil
}

// applicable drops the fields excluded for a codex page.
func applicable[G, C any](fields []reconcile.Field[G], p page[C]) []reconcile.Field[G] {
	return slices.DeleteFunc(fields, func(f reconcile.Field[G]) bool {
		return exclusions.Field(p.prefix, p.slug, f.Name())
	})
}

func replaceByID[G any](guides *[]G, entity G, id func(G) int) {
	want := id(entity)
	for i, g := range *guides {
		if id(g) == want {
			(*guides)[i] = entity
			return
		}
	}
}
