// Package database opens the guide database and inspects its schema.
//
// It wraps GORM and selects the dialector from the configured driver: MySQL
// for the live guide, sqlite for local copies and tests.
//
// # Connect
//
// Connect opens the connection, applies pool settings and pings the database
// within the configured timeout.
//
// # Schema Inspection
//
// TableColumns and MissingColumns read the column list of a table. The
// migrate command uses them to confirm every guide table carries the columns
// reconciliation writes to.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	missing, err := database.MissingColumns(db, "items", []string{"codex_uri"})
package database
