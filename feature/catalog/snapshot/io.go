package snapshot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path"
	"slices"
	"strings"

	"guide-sync/core/storage"
	"guide-sync/feature/catalog/models"

	"github.com/minio/minio-go/v7"
)

// Store reads and writes snapshots in object storage. A snapshot is a prefix
// holding one JSON object per collection (e.g. "snapshots/2024-05-01/codex_items.json").
type Store struct {
	client storage.Client
	bucket string
}

// NewStore creates a snapshot store on the given bucket.
func NewStore(client storage.Client, bucket string) *Store {
	return &Store{client: client, bucket: bucket}
}

// collections maps every object name of a snapshot to the slice it holds.
func collections(d *models.Data) map[string]any {
	return map[string]any{
		"guide_items.json":          &d.Guide.Items,
		"guide_monsters.json":       &d.Guide.Monsters,
		"guide_skills.json":         &d.Guide.Skills,
		"guide_pets.json":           &d.Guide.Pets,
		"guide_status_effects.json": &d.Guide.StatusEffects,
		"guide_spawns.json":         &d.Guide.Spawns,
		"codex_items.json":          &d.Codex.Items,
		"codex_monsters.json":       &d.Codex.Monsters,
		"codex_bosses.json":         &d.Codex.Bosses,
		"codex_raids.json":          &d.Codex.Raids,
		"codex_skills.json":         &d.Codex.Skills,
		"codex_followers.json":      &d.Codex.Followers,
	}
}

// Save writes every collection of data under prefix.
func (s *Store) Save(ctx context.Context, prefix string, data models.Data) error {
	for name, v := range collections(&data) {
		body, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal %s: %w", name, err)
		}

		objectName := path.Join(prefix, name)
		_, err = s.client.PutObject(
			ctx,
			s.bucket,
			objectName,
			bytes.NewReader(body),
			int64(len(body)),
			minio.PutObjectOptions{ContentType: "application/json"},
		)
		if err != nil {
			return fmt.Errorf("failed to write %s: %w", objectName, err)
		}
	}
	return nil
}

// Load reads the snapshot stored under prefix. Collections missing from the
// snapshot are left empty: older snapshots did not fetch every collection.
func (s *Store) Load(ctx context.Context, prefix string) (models.Data, error) {
	var data models.Data
	for name, v := range collections(&data) {
		objectName := path.Join(prefix, name)
		body, err := s.read(ctx, objectName)
		if err != nil {
			if isNoSuchKey(err) {
				continue
			}
			return models.Data{}, fmt.Errorf("failed to read %s: %w", objectName, err)
		}
		if err := json.Unmarshal(body, v); err != nil {
			return models.Data{}, fmt.Errorf("failed to parse %s: %w", objectName, err)
		}
	}
	return data, nil
}

// LoadMerged loads every prefix, oldest first, and merges them.
func (s *Store) LoadMerged(ctx context.Context, prefixes []string) (models.Data, error) {
	snapshots := make([]models.Data, 0, len(prefixes))
	for _, prefix := range prefixes {
		data, err := s.Load(ctx, prefix)
		if err != nil {
			return models.Data{}, err
		}
		snapshots = append(snapshots, data)
	}
	return Merge(snapshots), nil
}

// List returns the snapshot prefixes directly under root, sorted.
func (s *Store) List(ctx context.Context, root string) ([]string, error) {
	if root != "" && !strings.HasSuffix(root, "/") {
		root += "/"
	}

	var prefixes []string
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Prefix: root}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", root, obj.Err)
		}
		if strings.HasSuffix(obj.Key, "/") {
			prefixes = append(prefixes, strings.TrimSuffix(obj.Key, "/"))
		}
	}
	slices.Sort(prefixes)
	return prefixes, nil
}

// Delete removes every collection object of the snapshot under prefix.
func (s *Store) Delete(ctx context.Context, prefix string) error {
	names := collections(&models.Data{})
	objectsCh := make(chan minio.ObjectInfo, len(names))
	for name := range names {
		objectsCh <- minio.ObjectInfo{Key: path.Join(prefix, name)}
	}
	close(objectsCh)

	var failed []string
	for e := range s.client.RemoveObjects(ctx, s.bucket, objectsCh, minio.RemoveObjectsOptions{}) {
		if e.Err != nil {
			failed = append(failed, fmt.Sprintf("%s: %v", e.ObjectName, e.Err))
		}
	}
	if len(failed) > 0 {
		return fmt.Errorf("failed to delete %d objects of %s: %v", len(failed), prefix, failed)
	}
	return nil
}

func (s *Store) read(ctx context.Context, objectName string) ([]byte, error) {
	reader, err := s.client.GetObject(ctx, s.bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	return io.ReadAll(reader)
}

func isNoSuchKey(err error) bool {
	return minio.ToErrorResponse(err).Code == "NoSuchKey"
}
