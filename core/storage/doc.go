// Package storage wraps the MinIO client used to keep codex and guide
// snapshots in S3 compatible object storage.
//
// The Client interface is the subset of minio.Client the snapshot store
// calls, so tests can substitute core/storage/mocks.Client.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	if err := storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region); err != nil {
//	    return err
//	}
package storage
