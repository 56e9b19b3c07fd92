// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind a small interface used to keep document
// snapshots in a bucket. Both AWS S3 and self-hosted MinIO instances work.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (as seen in core/storage/mocks).
//
// # Operations
//
//   - BucketExists / MakeBucket: used by EnsureBucket at startup.
//   - PutObject: uploads an encoded snapshot.
//   - GetObject: retrieves a snapshot; missing keys yield ErrNotFound.
//   - ListObjects: lists snapshots (supports prefix/recursive).
//   - RemoveObject: deletes a snapshot.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	if err := storage.EnsureBucket(ctx, client, config.Bucket, config.Region); err != nil {
//	    return err
//	}
package storage
