package s3

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/brepgo/blobstore"
)

var (
	_ blobstore.BlobStore    = (*Store)(nil)
	_ blobstore.Blob         = (*baseBlob)(nil)
	_ blobstore.WritableBlob = (*baseWritableBlob)(nil)
)

// fakeS3Client implements the read-side S3 calls over an in-memory map.
// Unimplemented methods panic through the embedded interface.
type fakeS3Client struct {
	Client
	objects map[string][]byte
}

func (f *fakeS3Client) HeadObject(_ context.Context, params *awss3.HeadObjectInput, _ ...func(*awss3.Options)) (*awss3.HeadObjectOutput, error) {
	data, ok := f.objects[*params.Key]
	if !ok {
		return nil, &s3types.NotFound{}
	}
	return &awss3.HeadObjectOutput{ContentLength: aws.Int64(int64(len(data)))}, nil
}

func (f *fakeS3Client) GetObject(_ context.Context, params *awss3.GetObjectInput, _ ...func(*awss3.Options)) (*awss3.GetObjectOutput, error) {
	data, ok := f.objects[*params.Key]
	if !ok {
		return nil, &s3types.NoSuchKey{}
	}

	start, end := int64(0), int64(len(data))-1
	if params.Range != nil {
		if _, err := fmt.Sscanf(*params.Range, "bytes=%d-%d", &start, &end); err != nil {
			return nil, err
		}
	}
	if end >= int64(len(data)) {
		end = int64(len(data)) - 1
	}

	return &awss3.GetObjectOutput{
		Body:          io.NopCloser(strings.NewReader(string(data[start : end+1]))),
		ContentLength: aws.Int64(end - start + 1),
	}, nil
}

func (f *fakeS3Client) PutObject(_ context.Context, params *awss3.PutObjectInput, _ ...func(*awss3.Options)) (*awss3.PutObjectOutput, error) {
	data, err := io.ReadAll(params.Body)
	if err != nil {
		return nil, err
	}
	f.objects[*params.Key] = data
	return &awss3.PutObjectOutput{}, nil
}

func (f *fakeS3Client) DeleteObject(_ context.Context, params *awss3.DeleteObjectInput, _ ...func(*awss3.Options)) (*awss3.DeleteObjectOutput, error) {
	delete(f.objects, *params.Key)
	return &awss3.DeleteObjectOutput{}, nil
}

func (f *fakeS3Client) ListObjectsV2(_ context.Context, params *awss3.ListObjectsV2Input, _ ...func(*awss3.Options)) (*awss3.ListObjectsV2Output, error) {
	var contents []s3types.Object
	for key := range f.objects {
		if strings.HasPrefix(key, aws.ToString(params.Prefix)) {
			contents = append(contents, s3types.Object{Key: aws.String(key)})
		}
	}
	return &awss3.ListObjectsV2Output{Contents: contents}, nil
}

func newFakeStore(objects map[string][]byte) *Store {
	return NewStore(&fakeS3Client{objects: objects}, "bucket", WithPrefix("models"))
}

func TestStoreOpenAndRead(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore(map[string][]byte{"models/box.brep": []byte("0123456789")})

	blob, err := store.Open(ctx, "box.brep")
	require.NoError(t, err)
	defer blob.Close()

	assert.Equal(t, int64(10), blob.Size())

	t.Run("interior read", func(t *testing.T) {
		p := make([]byte, 4)
		n, err := blob.ReadAt(ctx, p, 3)
		require.NoError(t, err)
		assert.Equal(t, 4, n)
		assert.Equal(t, "3456", string(p))
	})

	t.Run("read past end", func(t *testing.T) {
		p := make([]byte, 4)
		n, err := blob.ReadAt(ctx, p, 8)
		require.NoError(t, err, "short read ending exactly at the blob end")
		assert.Equal(t, 2, n)
		assert.Equal(t, "89", string(p[:n]))
	})

	t.Run("offset beyond size", func(t *testing.T) {
		_, err := blob.ReadAt(ctx, make([]byte, 1), 10)
		require.ErrorIs(t, err, io.EOF)
	})

	t.Run("read range", func(t *testing.T) {
		rc, err := blob.ReadRange(ctx, 2, 5)
		require.NoError(t, err)
		got, err := io.ReadAll(rc)
		require.NoError(t, err)
		assert.Equal(t, "23456", string(got))
	})
}

func TestStoreOpenMissing(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore(map[string][]byte{})

	_, err := store.Open(ctx, "missing.brep")
	require.ErrorIs(t, err, blobstore.ErrNotFound)
}

func TestStorePutDeleteList(t *testing.T) {
	ctx := context.Background()
	objects := map[string][]byte{}
	store := newFakeStore(objects)

	require.NoError(t, store.Put(ctx, "a.brep", []byte("a")))
	require.NoError(t, store.Put(ctx, "b.brep", []byte("b")))

	names, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.brep", "b.brep"}, names)

	require.NoError(t, store.Delete(ctx, "a.brep"))

	names, err = store.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"b.brep"}, names)

	// Keys carry the configured prefix inside the bucket.
	assert.Contains(t, objects, "models/b.brep")
}

func TestComputeCRC32C(t *testing.T) {
	// S3 wants four base64-encoded big-endian bytes.
	sum := computeCRC32C([]byte("hello"))
	assert.Len(t, sum, 8)
	assert.NotEqual(t, computeCRC32C([]byte("world")), sum)
}
