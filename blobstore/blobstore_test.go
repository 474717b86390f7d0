package blobstore

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/brepgo/snapshot"
)

func testStores(t *testing.T) map[string]BlobStore {
	t.Helper()

	return map[string]BlobStore{
		"memory": NewMemoryStore(),
		"local":  NewLocalStore(t.TempDir()),
	}
}

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	data := []byte("snapshot bytes")

	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Put(ctx, "models/box.brep", data))

			blob, err := store.Open(ctx, "models/box.brep")
			require.NoError(t, err)
			defer blob.Close()

			assert.Equal(t, int64(len(data)), blob.Size())

			got := make([]byte, len(data))
			n, err := blob.ReadAt(ctx, got, 0)
			if err != nil {
				require.ErrorIs(t, err, io.EOF)
			}
			require.Equal(t, len(data), n)
			assert.Equal(t, data, got)
		})
	}
}

func TestStoreCreateStreaming(t *testing.T) {
	ctx := context.Background()

	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			w, err := store.Create(ctx, "streamed")
			require.NoError(t, err)

			_, err = w.Write([]byte("part one "))
			require.NoError(t, err)
			_, err = w.Write([]byte("part two"))
			require.NoError(t, err)
			require.NoError(t, w.Sync())
			require.NoError(t, w.Close())

			blob, err := store.Open(ctx, "streamed")
			require.NoError(t, err)
			defer blob.Close()

			rc, err := blob.ReadRange(ctx, 5, 3)
			require.NoError(t, err)
			got, err := io.ReadAll(rc)
			require.NoError(t, err)
			require.NoError(t, rc.Close())
			assert.Equal(t, "one", string(got))
		})
	}
}

func TestStoreOpenMissing(t *testing.T) {
	ctx := context.Background()

	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			_, err := store.Open(ctx, "missing")
			assert.True(t, errors.Is(err, ErrNotFound) || os.IsNotExist(err))
		})
	}
}

func TestStoreDeleteAndList(t *testing.T) {
	ctx := context.Background()

	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Put(ctx, "models/a.brep", []byte("a")))
			require.NoError(t, store.Put(ctx, "models/b.brep", []byte("b")))
			require.NoError(t, store.Put(ctx, "other/c.brep", []byte("c")))

			names, err := store.List(ctx, "models/")
			require.NoError(t, err)
			assert.Equal(t, []string{"models/a.brep", "models/b.brep"}, names)

			require.NoError(t, store.Delete(ctx, "models/a.brep"))
			require.NoError(t, store.Delete(ctx, "models/a.brep"), "deleting a missing blob is not an error")

			names, err = store.List(ctx, "models/")
			require.NoError(t, err)
			assert.Equal(t, []string{"models/b.brep"}, names)
		})
	}
}

func TestLocalPutLeavesNoTempFiles(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store := NewLocalStore(dir)

	require.NoError(t, store.Put(ctx, "model.brep", []byte("payload")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "model.brep", entries[0].Name())

	// Put over an existing blob replaces it.
	require.NoError(t, store.Put(ctx, "model.brep", []byte("v2")))
	got, err := os.ReadFile(filepath.Join(dir, "model.brep"))
	require.NoError(t, err)
	assert.Equal(t, "v2", string(got))
}

func TestSectionReaderLoadsSnapshots(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	m := snapshot.NewManifest("stored-model")
	payload := map[string][]float64{"xs": {0, 1, 2}}

	var buf bytes.Buffer
	require.NoError(t, snapshot.Save(&buf, m, payload))
	require.NoError(t, store.Put(ctx, "models/stored.brep", buf.Bytes()))

	blob, err := store.Open(ctx, "models/stored.brep")
	require.NoError(t, err)
	defer blob.Close()

	gotM, gotP, err := snapshot.Load[map[string][]float64](SectionReader(ctx, blob))
	require.NoError(t, err)
	assert.Equal(t, m.ID, gotM.ID)
	assert.Equal(t, payload, gotP)
}
