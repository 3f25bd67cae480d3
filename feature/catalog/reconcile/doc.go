// Package reconcile drives reconciliation of the guide against the codex.
//
// A run goes kind by kind (skills, monsters, followers, items). Each kind has
// two phases:
//
//   - missing: codex pages no guide entity links to are reported and, when
//     fixing, created, re-listed and appended to the in-memory aggregate.
//   - fields: every linked guide entity is compared with its codex page
//     through the field table of its kind, and mismatches are repaired with
//     the core/reconcile Checker.
//
// Codex references are resolved against lookup tables rebuilt from the
// aggregate before each kind. Entities excluded upstream are skipped, and a
// transport failure gives up on the entity only.
package reconcile
