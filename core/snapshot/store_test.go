package snapshot

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"msforge/core/storage"
	"msforge/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStore_Local(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "doc.json")
	store := NewStore(nil, "")

	require.NoError(t, store.Save(ctx, path, testDocument()))
	first, err := store.Load(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, "doc", first.ID)

	// served from cache after the file is gone
	require.NoError(t, os.Remove(path))
	second, err := store.Load(ctx, path)
	require.NoError(t, err)
	assert.Same(t, first, second)

	store.Invalidate(path)
	_, err = store.Load(ctx, path)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestStore_NoCache(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "doc.msgpack")
	store := NewStore(nil, "", WithCacheTTL(0))
	require.NoError(t, store.Save(ctx, path, testDocument()))

	first, err := store.Load(ctx, path)
	require.NoError(t, err)
	second, err := store.Load(ctx, path)
	require.NoError(t, err)
	assert.NotSame(t, first, second)
}

func TestStore_UnknownFormat(t *testing.T) {
	_, err := NewStore(nil, "").Load(context.Background(), "doc.mzML")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestStore_Bucket(t *testing.T) {
	ctx := context.Background()
	var encoded bytes.Buffer
	require.NoError(t, Encode(&encoded, testDocument(), Msgpack))

	client := mocks.NewClient(t)
	client.On("GetObject", ctx, "snapshots", "runs/a.msgpack", minio.GetObjectOptions{}).
		Return(io.NopCloser(bytes.NewReader(encoded.Bytes())), nil).Once()
	client.On("GetObject", ctx, "snapshots", "runs/missing.msgpack", minio.GetObjectOptions{}).
		Return(nil, storage.ErrNotFound)
	client.On("PutObject", ctx, "snapshots", "runs/b.json", mock.Anything, mock.AnythingOfType("int64"), mock.Anything).
		Return(minio.UploadInfo{}, nil)
	client.On("RemoveObject", ctx, "snapshots", "runs/b.json", minio.RemoveObjectOptions{}).Return(nil)

	store := NewStore(client, "snapshots", WithCacheTTL(time.Minute))

	doc, err := store.Load(ctx, "storage:runs/a.msgpack")
	require.NoError(t, err)
	again, err := store.Load(ctx, "storage:runs/a.msgpack")
	require.NoError(t, err)
	assert.Same(t, doc, again)

	_, err = store.Load(ctx, "storage:runs/missing.msgpack")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	require.NoError(t, store.Save(ctx, "storage:runs/b.json", doc))
	require.NoError(t, store.Delete(ctx, "storage:runs/b.json"))
	assert.Error(t, store.Delete(ctx, "local.json"))
}

func TestStore_List(t *testing.T) {
	ctx := context.Background()
	objects := make(chan minio.ObjectInfo, 3)
	objects <- minio.ObjectInfo{Key: "runs/a.json"}
	objects <- minio.ObjectInfo{Key: "runs/readme.txt"}
	objects <- minio.ObjectInfo{Key: "runs/b.msgpack"}
	close(objects)

	client := mocks.NewClient(t)
	client.On("ListObjects", ctx, "snapshots", minio.ListObjectsOptions{Prefix: "runs/", Recursive: true}).
		Return((<-chan minio.ObjectInfo)(objects))

	keys, err := NewStore(client, "snapshots").List(ctx, "runs/")
	require.NoError(t, err)
	assert.Equal(t, []string{"storage:runs/a.json", "storage:runs/b.msgpack"}, keys)
}

func TestStore_NoClient(t *testing.T) {
	_, err := NewStore(nil, "").Load(context.Background(), "storage:a.json")
	assert.Error(t, err)
	assert.False(t, errors.Is(err, storage.ErrNotFound))
}
