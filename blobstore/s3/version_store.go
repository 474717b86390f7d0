package s3

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Version is one committed snapshot pointer.
type Version struct {
	// Number is the monotonically increasing commit version.
	Number uint64
	// Path is the blob name of the snapshot this version points at.
	Path string
}

// ErrConcurrentModification is returned when a concurrent commit is
// detected; the caller should re-read the latest version and retry.
var ErrConcurrentModification = errors.New("concurrent modification detected")

// ErrNoVersion is returned by Latest when nothing has been committed.
var ErrNoVersion = errors.New("no committed version")

// DDBClient is the interface for DynamoDB operations.
type DDBClient interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

// VersionStore tracks the latest committed snapshot of a model in
// DynamoDB. Snapshot bytes live in a BlobStore; the version store only
// holds the pointer, using conditional writes for the compare-and-swap
// semantics object storage lacks. Multiple writers coordinate safely:
// at most one commit wins each version number.
//
// Table schema:
//   - Partition key: model_uri (string) - the store prefix/path
//   - Sort key: version (number) - monotonically increasing version
//
// Create table with:
//
//	aws dynamodb create-table \
//	  --table-name brepgo-versions \
//	  --attribute-definitions AttributeName=model_uri,AttributeType=S AttributeName=version,AttributeType=N \
//	  --key-schema AttributeName=model_uri,KeyType=HASH AttributeName=version,KeyType=RANGE \
//	  --billing-mode PAY_PER_REQUEST
type VersionStore struct {
	client    DDBClient
	tableName string
	modelURI  string // partition key, e.g. "s3://bucket/prefix"
}

// NewVersionStore creates a DynamoDB-backed version store. modelURI is
// used as the partition key, typically "s3://bucket/prefix".
func NewVersionStore(client DDBClient, tableName, modelURI string) *VersionStore {
	return &VersionStore{
		client:    client,
		tableName: tableName,
		modelURI:  modelURI,
	}
}

// Latest returns the most recently committed version.
func (s *VersionStore) Latest(ctx context.Context) (Version, error) {
	resp, err := s.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.tableName),
		KeyConditionExpression: aws.String("model_uri = :uri"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uri": &types.AttributeValueMemberS{Value: s.modelURI},
		},
		ScanIndexForward: aws.Bool(false), // descending
		Limit:            aws.Int32(1),
	})
	if err != nil {
		return Version{}, fmt.Errorf("failed to query latest version: %w", err)
	}

	if len(resp.Items) == 0 {
		return Version{}, ErrNoVersion
	}

	item := resp.Items[0]
	versionAttr, ok := item["version"].(*types.AttributeValueMemberN)
	if !ok {
		return Version{}, errors.New("invalid version attribute")
	}
	pathAttr, ok := item["snapshot_path"].(*types.AttributeValueMemberS)
	if !ok {
		return Version{}, errors.New("invalid snapshot_path attribute")
	}

	var number uint64
	if _, err := fmt.Sscanf(versionAttr.Value, "%d", &number); err != nil {
		return Version{}, fmt.Errorf("failed to parse version: %w", err)
	}

	return Version{Number: number, Path: pathAttr.Value}, nil
}

// Commit atomically points the model at snapshotPath. The new version
// number is latest+1; if another writer claims it first, Commit returns
// ErrConcurrentModification without overwriting anything.
func (s *VersionStore) Commit(ctx context.Context, snapshotPath string) (Version, error) {
	current, err := s.Latest(ctx)
	if err != nil && !errors.Is(err, ErrNoVersion) {
		return Version{}, err
	}

	next := Version{Number: current.Number + 1, Path: snapshotPath}

	// Conditional put: only succeed if this version doesn't exist yet.
	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item: map[string]types.AttributeValue{
			"model_uri":     &types.AttributeValueMemberS{Value: s.modelURI},
			"version":       &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", next.Number)},
			"snapshot_path": &types.AttributeValueMemberS{Value: snapshotPath},
		},
		ConditionExpression: aws.String("attribute_not_exists(version)"),
	})
	if err != nil {
		var condErr *types.ConditionalCheckFailedException
		if errors.As(err, &condErr) {
			return Version{}, ErrConcurrentModification
		}
		return Version{}, fmt.Errorf("failed to commit version: %w", err)
	}

	return next, nil
}
