// Package config loads the guide-sync configuration.
//
// Values come from the environment, optionally seeded from a .env file, and
// fall back to the default tags of each section struct.
//
// # Configuration Structure
//
//   - Server: HTTP port, API key and report timeout
//   - Database: guide database driver and connection details
//   - Storage: MinIO credentials and the snapshot bucket
//   - Log: logging level and format
//   - Reconcile: default kinds and snapshot prefixes
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Database.Driver)
package config
