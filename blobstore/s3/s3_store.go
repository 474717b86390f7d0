package s3

import (
	"context"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/hupe1980/brepgo/blobstore"
)

// Store implements blobstore.BlobStore for S3.
type Store struct {
	client    Client
	bucket    string
	prefix    string
	region    string
	uploadCfg UploadConfig
}

// Option configures a Store.
type Option func(*Store)

// WithPrefix sets the root prefix prepended to all keys (e.g. "models/").
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// WithUploadConfig overrides the upload settings.
func WithUploadConfig(cfg UploadConfig) Option {
	return func(s *Store) {
		s.uploadCfg = cfg
	}
}

// WithRegion sets the AWS region New resolves configuration for. It has
// no effect with NewStore, which takes a ready client.
func WithRegion(region string) Option {
	return func(s *Store) {
		s.region = region
	}
}

// New creates an S3 blob store using the default AWS configuration
// chain (environment, shared config, instance role).
func New(ctx context.Context, bucket string, optFns ...Option) (*Store, error) {
	store := &Store{
		bucket:    bucket,
		uploadCfg: DefaultUploadConfig(),
	}
	for _, fn := range optFns {
		fn(store)
	}

	var loadOpts []func(*config.LoadOptions) error
	if store.region != "" {
		loadOpts = append(loadOpts, config.WithRegion(store.region))
	}
	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, err
	}
	store.client = s3.NewFromConfig(cfg)
	return store, nil
}

// NewStore creates an S3 blob store over an existing client.
func NewStore(client Client, bucket string, optFns ...Option) *Store {
	store := &Store{
		client:    client,
		bucket:    bucket,
		uploadCfg: DefaultUploadConfig(),
	}
	for _, fn := range optFns {
		fn(store)
	}
	return store
}

func (s *Store) key(name string) string {
	return path.Join(s.prefix, name)
}

// Open opens a blob for reading.
func (s *Store) Open(ctx context.Context, name string) (blobstore.Blob, error) {
	return openBlob(ctx, s.client, s.bucket, s.key(name))
}

// Create creates a blob for streaming writes via multipart upload.
func (s *Store) Create(ctx context.Context, name string) (blobstore.WritableBlob, error) {
	uploader := newUploader(s.client, s.uploadCfg)
	return newStreamingBlob(ctx, uploader, s.bucket, s.key(name), s.uploadCfg.EnableChecksum), nil
}

// Put writes a blob with CRC32C integrity validation. S3 object writes
// are atomic; readers never observe partial objects.
func (s *Store) Put(ctx context.Context, name string, data []byte) error {
	return putWithChecksum(ctx, s.client, s.bucket, s.key(name), data)
}

// Delete removes a blob. S3 deletes of missing keys succeed.
func (s *Store) Delete(ctx context.Context, name string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(name)),
	})
	return err
}

// List returns all blob names with the given prefix, sorted.
func (s *Store) List(ctx context.Context, prefix string) ([]string, error) {
	return listObjects(ctx, s.client, s.bucket, s.key(prefix), s.prefix)
}
