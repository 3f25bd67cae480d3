// Package models defines the entities of both catalogs: the codex (the
// read-only reference, keyed by slug) and the guide (the editable store,
// keyed by numeric ID), and the Data aggregate holding both.
package models
