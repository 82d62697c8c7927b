// Package storage wraps the MinIO client behind a narrow interface.
//
// The bucket source backend reads catalog, collection and card documents through
// it, and the inventory command uploads rendered reports with it. Tests use the
// testify mock in core/storage/mocks.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	err = storage.EnsureBucket(ctx, client, cfg.Storage.Bucket)
package storage
