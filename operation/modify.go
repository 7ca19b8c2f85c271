package operation

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/nisimpson/ezcms"
	"github.com/nisimpson/ezcms/filter"
	"github.com/oklog/ulid/v2"
)

type invoker[T any] interface {
	Invoke(context.Context) (*T, error)
}

type modifier[T any] func(context.Context, *T) error

type modifierGroup[T any] []modifier[T]

func (m modifierGroup[T]) Join() modifier[T] {
	return func(ctx context.Context, t *T) error {
		for _, mod := range m {
			if err := mod(ctx, t); err != nil {
				return err
			}
		}
		return nil
	}
}

func newModiferGroup[T any, U any](items []U, mapper func(context.Context, *T, U) error) modifierGroup[T] {
	group := make(modifierGroup[T], 0, len(items))
	for _, item := range items {
		item := item
		group = append(group, func(ctx context.Context, t *T) error {
			return mapper(ctx, t, item)
		})
	}
	return group
}

func modify[T any](ctx context.Context, invoker invoker[T], modifier modifier[T]) (*T, error) {
	if input, err := invoker.Invoke(ctx); err != nil {
		return nil, err
	} else if err := modifier(ctx, input); err != nil {
		return nil, err
	} else {
		return input, nil
	}
}

// sendRequest forwards the wire request to the requester and decodes the
// response payload into T.
func sendRequest[T any](ctx context.Context, requester ezcms.Requester,
	req *ezcms.Request, options ...func(*ezcms.RequestOptions)) (*T, error) {
	res, err := requester.Request(ctx, req, options...)
	if err != nil {
		return nil, err
	}
	if err := res.Err(); err != nil {
		return nil, err
	}
	output := new(T)
	if len(res.Body) == 0 {
		return output, nil
	}
	if err := json.Unmarshal(res.Body, output); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return output, nil
}

// mergeBatchSpace folds an operation's space id into the batch space id.
// All members of a batch must target the same space.
func mergeBatchSpace(batch string, next string) (string, error) {
	if next == "" {
		return "", fmt.Errorf("operation missing space id; cannot modify batch input")
	}
	if batch == "" {
		return next, nil
	}
	if batch != next {
		return "", fmt.Errorf("operation space %q does not match batch space %q", next, batch)
	}
	return batch, nil
}

type withLimit int

// ModifyListItemsInput implements ListModifier.
func (w withLimit) ModifyListItemsInput(ctx context.Context, input *ezcms.ListItemsInput) error {
	if w > 0 {
		input.Limit = int(w)
	}
	return nil
}

// ModifyListResourcesInput implements ListResourcesModifier.
func (w withLimit) ModifyListResourcesInput(ctx context.Context, input *ezcms.ListResourcesInput) error {
	if w > 0 {
		input.Limit = int(w)
	}
	return nil
}

// ModifyListRelationshipsInput implements ListRelationshipsModifier.
func (w withLimit) ModifyListRelationshipsInput(ctx context.Context, input *ezcms.ListRelationshipsInput) error {
	if w > 0 {
		input.Limit = int(w)
	}
	return nil
}

// WithLimit provides an input modifier for adjusting the number of records
// returned on a listing. Non-positive values are ignored.
func WithLimit(value int) withLimit {
	return withLimit(value)
}

type withCursor struct {
	provider ezcms.CursorProvider
	token    string
}

// ModifyListItemsInput implements ListModifier.
func (w withCursor) ModifyListItemsInput(ctx context.Context, input *ezcms.ListItemsInput) error {
	if cursor, err := ezcms.GetCursor(ctx, w.provider, w.token); err != nil {
		return err
	} else {
		input.Cursor = cursor
		return nil
	}
}

// ModifyListResourcesInput implements ListResourcesModifier.
func (w withCursor) ModifyListResourcesInput(ctx context.Context, input *ezcms.ListResourcesInput) error {
	if cursor, err := ezcms.GetCursor(ctx, w.provider, w.token); err != nil {
		return err
	} else {
		input.Cursor = cursor
		return nil
	}
}

// ModifyListRelationshipsInput implements ListRelationshipsModifier.
func (w withCursor) ModifyListRelationshipsInput(ctx context.Context, input *ezcms.ListRelationshipsInput) error {
	if cursor, err := ezcms.GetCursor(ctx, w.provider, w.token); err != nil {
		return err
	} else {
		input.Cursor = cursor
		return nil
	}
}

// WithCursor creates a new input modifier that resumes a listing from the
// page identified by the opaque token.
func WithCursor(token string, provider ezcms.CursorProvider) withCursor {
	return withCursor{token: token, provider: provider}
}

type withFilter struct {
	expr filter.Expression
}

// ModifyListItemsInput implements ListModifier.
func (w withFilter) ModifyListItemsInput(ctx context.Context, input *ezcms.ListItemsInput) error {
	values, err := filter.QueryValues(w.expr)
	if err != nil {
		return err
	}
	if input.Filter == nil {
		input.Filter = url.Values{}
	}
	for key, entries := range values {
		for _, entry := range entries {
			input.Filter.Add(key, entry)
		}
	}
	return nil
}

// WithFilter creates a new input modifier that applies the compiled filter
// criteria to an item listing.
func WithFilter(builder filter.Builder) withFilter {
	return withFilter{expr: builder.Expression()}
}

type withOrder []string

// ModifyListItemsInput implements ListModifier.
func (w withOrder) ModifyListItemsInput(ctx context.Context, input *ezcms.ListItemsInput) error {
	input.Order = append(input.Order, w...)
	return nil
}

// WithOrder creates a new input modifier that sorts an item listing by the
// named fields. Prefix a field with "-" for descending order.
func WithOrder(fields ...string) withOrder {
	return withOrder(fields)
}

type withInclude []string

// ModifyGetItemInput implements GetModifier.
func (w withInclude) ModifyGetItemInput(ctx context.Context, input *ezcms.GetItemInput) error {
	input.Include = append(input.Include, w...)
	return nil
}

// ModifyListItemsInput implements ListModifier.
func (w withInclude) ModifyListItemsInput(ctx context.Context, input *ezcms.ListItemsInput) error {
	input.Include = append(input.Include, w...)
	return nil
}

// ModifyBatchGetInput implements BatchGetModifier.
func (w withInclude) ModifyBatchGetInput(ctx context.Context, input *ezcms.BatchGetInput) error {
	input.Include = append(input.Include, w...)
	return nil
}

// WithInclude creates a new input modifier that resolves the named
// relationships inline on retrieval.
func WithInclude(relations ...string) withInclude {
	return withInclude(relations)
}

type withIdempotencyKey string

// ModifyCreateItemInput implements CreateModifier.
func (w withIdempotencyKey) ModifyCreateItemInput(ctx context.Context, input *ezcms.CreateItemInput) error {
	input.IdempotencyKey = string(w)
	return nil
}

// ModifyCreateResourceInput implements CreateResourceModifier.
func (w withIdempotencyKey) ModifyCreateResourceInput(ctx context.Context, input *ezcms.CreateResourceInput) error {
	input.IdempotencyKey = string(w)
	return nil
}

// ModifyBatchWriteInput implements BatchWriteModifier.
func (w withIdempotencyKey) ModifyBatchWriteInput(ctx context.Context, input *ezcms.BatchWriteInput) error {
	input.IdempotencyKey = string(w)
	return nil
}

// WithIdempotencyKey creates a new input modifier that marks a write with a
// unique key, allowing the server to deduplicate retried requests.
func WithIdempotencyKey() withIdempotencyKey {
	return withIdempotencyKey(ulid.Make().String())
}

// WithIdempotencyKeyValue creates a new input modifier that marks a write
// with the provided key.
func WithIdempotencyKeyValue(key string) withIdempotencyKey {
	return withIdempotencyKey(key)
}
