// Package reconcile provides the generic building blocks used to keep an
// authoritative, ID-keyed store consistent with a read-only reference source.
//
// The package knows nothing about concrete entity kinds. Feature packages
// describe their fields and this package compares and repairs them.
//
// # Components
//
//   - SortedDiff: linear merge-walk over two sorted slices, returning what
//     must be added and removed.
//   - Resolve: converts reference names into authoritative IDs, keeping the
//     names that could not be converted.
//   - Field: a per-field comparison strategy (scalar, debug rendering or
//     sorted ID set) bundled with a Lens used to repair it.
//   - Guarded: keeps a field whose expected value could not be fully
//     resolved from being applied, reporting the unresolved names instead.
//   - Checker: runs fields against an entity, reports every discrepancy and,
//     when fixing, performs retrieve, mutate, save, re-retrieve per field.
//   - RetryOnce: wraps every store call with a single retry.
//
// # Usage Example
//
//	checker := &reconcile.Checker[models.Item]{
//	    Kind:   "item",
//	    Store:  itemStore,
//	    ID:     func(i models.Item) int { return i.ID },
//	    Logger: logger,
//	    Fix:    fix,
//	}
//	outcome, err := checker.Check(ctx, &item, []reconcile.Field[models.Item]{
//	    reconcile.Scalar("tier", tierLens, codexItem.Tier),
//	    reconcile.IDSet("materials", materialsLens, reconcile.Resolve(names, itemIDs)),
//	})
//
// The checker is sequential: a fix finishes its round trip before the next
// field is compared, so the store's read-after-write view stays consistent.
package reconcile
