// Package catalog serves reconciliation reports over HTTP.
//
// The codex side is read from the merged snapshots in object storage and the
// guide side from the live database; the report is always a dry run. Writes
// only happen through the reconcile command.
//
// # Routes
//
//   - GET /reconcile/{kind}: report for items, monsters, skills, followers or all
//   - GET /reconcile/exclusions: the exclusion table
package catalog
