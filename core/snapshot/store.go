package snapshot

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync"
	"time"

	"msforge/core/msdata"
	"msforge/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// StoragePrefix marks a key as an object in the snapshot bucket rather than a
// local path.
const StoragePrefix = "storage:"

// Store loads and saves snapshots from local files or an object storage
// bucket. Loaded documents are cached per key and shared between callers, so
// they must be treated as read-only.
type Store struct {
	client storage.Client
	bucket string
	ttl    time.Duration
	logger *zap.Logger

	mu    sync.RWMutex
	cache map[string]*entry
	sf    singleflight.Group
}

type entry struct {
	doc   *msdata.Document
	built time.Time
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithCacheTTL sets how long loaded documents are reused. Zero disables caching.
func WithCacheTTL(ttl time.Duration) StoreOption {
	return func(s *Store) { s.ttl = ttl }
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) StoreOption {
	return func(s *Store) { s.logger = logger }
}

// NewStore creates a store. client may be nil, in which case only local paths
// can be used.
func NewStore(client storage.Client, bucket string, opts ...StoreOption) *Store {
	s := &Store{
		client: client,
		bucket: bucket,
		ttl:    5 * time.Minute,
		logger: zap.NewNop(),
		cache:  make(map[string]*entry),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// IsStorageKey reports whether key names an object in the bucket.
func IsStorageKey(key string) bool {
	return strings.HasPrefix(key, StoragePrefix)
}

func (s *Store) expired(e *entry) bool {
	if s.ttl == 0 {
		return true
	}
	return time.Since(e.built) > s.ttl
}

// Load returns the document stored under key. Concurrent loads of the same key
// share a single read.
func (s *Store) Load(ctx context.Context, key string) (*msdata.Document, error) {
	s.mu.RLock()
	e, ok := s.cache[key]
	s.mu.RUnlock()
	if ok && !s.expired(e) {
		return e.doc, nil
	}

	result, err, _ := s.sf.Do(key, func() (interface{}, error) {
		s.mu.RLock()
		e, ok := s.cache[key]
		s.mu.RUnlock()
		if ok && !s.expired(e) {
			return e.doc, nil
		}

		start := time.Now()
		doc, err := s.read(ctx, key)
		if err != nil {
			return nil, err
		}
		s.logger.Debug("snapshot loaded", zap.String("key", key), zap.Duration("elapsed", time.Since(start)))

		s.mu.Lock()
		s.cache[key] = &entry{doc: doc, built: time.Now()}
		s.mu.Unlock()
		return doc, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*msdata.Document), nil
}

func (s *Store) read(ctx context.Context, key string) (*msdata.Document, error) {
	format, err := FormatFromPath(key)
	if err != nil {
		return nil, err
	}

	if !IsStorageKey(key) {
		f, err := os.Open(key)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("snapshot: %s: %w", key, storage.ErrNotFound)
			}
			return nil, fmt.Errorf("snapshot: %w", err)
		}
		defer f.Close()
		return Decode(f, format)
	}

	client, err := s.storage()
	if err != nil {
		return nil, err
	}
	obj, err := client.GetObject(ctx, s.bucket, strings.TrimPrefix(key, StoragePrefix), minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("snapshot: load %s: %w", key, err)
	}
	defer obj.Close()
	return Decode(obj, format)
}

// Save encodes doc under key and drops any cached copy.
func (s *Store) Save(ctx context.Context, key string, doc *msdata.Document) error {
	format, err := FormatFromPath(key)
	if err != nil {
		return err
	}
	defer s.Invalidate(key)

	if !IsStorageKey(key) {
		f, err := os.Create(key)
		if err != nil {
			return fmt.Errorf("snapshot: %w", err)
		}
		if err := Encode(f, doc, format); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}

	client, err := s.storage()
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := Encode(&buf, doc, format); err != nil {
		return err
	}
	name := strings.TrimPrefix(key, StoragePrefix)
	_, err = client.PutObject(ctx, s.bucket, name, &buf, int64(buf.Len()), minio.PutObjectOptions{
		ContentType: contentType(format),
	})
	if err != nil {
		return fmt.Errorf("snapshot: save %s: %w", key, err)
	}
	s.logger.Info("snapshot saved", zap.String("bucket", s.bucket), zap.String("object", name))
	return nil
}

// List returns the storage keys of the snapshots in the bucket under prefix.
func (s *Store) List(ctx context.Context, prefix string) ([]string, error) {
	client, err := s.storage()
	if err != nil {
		return nil, err
	}
	var keys []string
	for obj := range client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("snapshot: list: %w", obj.Err)
		}
		if _, err := FormatFromPath(obj.Key); err == nil {
			keys = append(keys, StoragePrefix+obj.Key)
		}
	}
	return keys, nil
}

// Delete removes a snapshot from the bucket.
func (s *Store) Delete(ctx context.Context, key string) error {
	if !IsStorageKey(key) {
		return fmt.Errorf("snapshot: delete %s: only storage keys can be deleted", key)
	}
	client, err := s.storage()
	if err != nil {
		return err
	}
	defer s.Invalidate(key)
	if err := client.RemoveObject(ctx, s.bucket, strings.TrimPrefix(key, StoragePrefix), minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("snapshot: delete %s: %w", key, err)
	}
	return nil
}

// Invalidate drops the cached copy of key.
func (s *Store) Invalidate(key string) {
	s.mu.Lock()
	delete(s.cache, key)
	s.mu.Unlock()
}

func (s *Store) storage() (storage.Client, error) {
	if s.client == nil {
		return nil, errors.New("snapshot: object storage is not configured")
	}
	return s.client, nil
}

func contentType(f Format) string {
	if f == JSON {
		return "application/json"
	}
	return "application/msgpack"
}
