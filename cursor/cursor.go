// Package cursor persists content API cursors in dynamodb, handing out
// opaque tokens in their place so raw cursors never reach end clients.
package cursor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/nisimpson/ezcms"
	"github.com/oklog/ulid/v2"
)

// ErrTokenNotFound is returned when a token has no stored cursor, either
// because it was never issued or because its record expired.
var ErrTokenNotFound = errors.New("cursor token not found")

// AttributeToken is the partition key attribute of the token table.
const AttributeToken = "token"

// ItemGetter implements the dynamodb GetItem API.
type ItemGetter interface {
	GetItem(context.Context, *dynamodb.GetItemInput, ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
}

// ItemPutter implements the dynamodb PutItem API.
type ItemPutter interface {
	PutItem(context.Context, *dynamodb.PutItemInput, ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// DynamoDBClient combines the dynamodb operations used by the store.
type DynamoDBClient interface {
	ItemGetter
	ItemPutter
}

type Options struct {
	// TTL bounds the lifetime of stored cursors. Zero stores them without
	// an expiry attribute.
	TTL time.Duration
	// NewToken mints opaque tokens.
	NewToken func() string
	// Tick supplies expiry timestamps.
	Tick func() time.Time
}

// record expiry is epoch seconds so the table TTL attribute can point at it.
type record struct {
	Token   string `dynamodbav:"token"`
	Cursor  string `dynamodbav:"cursor"`
	Expires int64  `dynamodbav:"expires,omitempty"`
}

// DynamoDBStore stores cursors in a dynamodb table keyed by token. It
// implements [ezcms.CursorTokenProvider] and [ezcms.CursorProvider].
type DynamoDBStore struct {
	tableName string
	client    DynamoDBClient
	options   Options
}

var (
	_ ezcms.CursorTokenProvider = DynamoDBStore{}
	_ ezcms.CursorProvider      = DynamoDBStore{}
)

// NewDynamoDBStore creates a new store backed by the provided table.
func NewDynamoDBStore(tableName string, client DynamoDBClient, opts ...func(*Options)) DynamoDBStore {
	options := Options{
		NewToken: func() string { return ulid.Make().String() },
		Tick:     time.Now,
	}
	for _, opt := range opts {
		opt(&options)
	}
	return DynamoDBStore{
		tableName: tableName,
		client:    client,
		options:   options,
	}
}

// GetCursorToken stores the cursor and returns the minted token.
func (s DynamoDBStore) GetCursorToken(ctx context.Context, cursor ezcms.Cursor) (string, error) {
	rec := record{
		Token:  s.options.NewToken(),
		Cursor: cursor,
	}
	if s.options.TTL > 0 {
		rec.Expires = s.options.Tick().UTC().Add(s.options.TTL).Unix()
	}
	item, err := attributevalue.MarshalMap(rec)
	if err != nil {
		return "", fmt.Errorf("marshal cursor record: %w", err)
	}
	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      item,
	})
	if err != nil {
		return "", fmt.Errorf("store cursor record: %w", err)
	}
	return rec.Token, nil
}

// GetCursor looks up the cursor stored under the provided token.
func (s DynamoDBStore) GetCursor(ctx context.Context, token string) (ezcms.Cursor, error) {
	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			AttributeToken: &types.AttributeValueMemberS{Value: token},
		},
	})
	if err != nil {
		return "", fmt.Errorf("load cursor record: %w", err)
	}
	if out.Item == nil {
		return "", ErrTokenNotFound
	}
	var rec record
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return "", fmt.Errorf("unmarshal cursor record: %w", err)
	}
	return rec.Cursor, nil
}
