// Package store implements the guide side of reconciliation on top of GORM.
//
// Each collection is a Table offering the four operations the reconciliation
// engine relies on: Retrieve by ID, Save, List (id, name) and Create. Tables
// read straight from the database on every call, so a Retrieve after a Save
// always observes the saved row.
//
// ID lists (status effects, skills, drops, materials) are stored as JSON
// columns through GORM's json serializer.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	s := store.New(db)
//	item, err := s.Items.Retrieve(ctx, 42)
package store
