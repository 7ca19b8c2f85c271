package operation

import (
	"context"
	"errors"
	"sync"

	"github.com/nisimpson/ezcms"
	"github.com/nisimpson/ezcms/internal/collection"
)

const (
	// MaxBatchGetSize is the maximum number of items the content API
	// retrieves in a single batch get call.
	MaxBatchGetSize = 100
)

// BatchGet functions generate batch retrieval request data given some context.
type BatchGet func(context.Context) (*ezcms.BatchGetInput, error)

// NewBatchGetOperation creates a new batch get operation instance.
func NewBatchGetOperation() BatchGet {
	return func(ctx context.Context) (*ezcms.BatchGetInput, error) {
		return &ezcms.BatchGetInput{}, nil
	}
}

// Invoke is a wrapper around the function invocation for stylistic purposes.
func (b BatchGet) Invoke(ctx context.Context) (*ezcms.BatchGetInput, error) {
	return b(ctx)
}

// BatchGetModifier makes modifications to the input before the operation is executed.
type BatchGetModifier interface {
	// ModifyBatchGetInput is invoked when this modifier is applied to the provided input.
	ModifyBatchGetInput(context.Context, *ezcms.BatchGetInput) error
}

// Modify adds modifying functions to the operation, transforming the input
// before it is executed.
func (b BatchGet) Modify(modifiers ...BatchGetModifier) BatchGet {
	mapper := func(ctx context.Context, input *ezcms.BatchGetInput, mod BatchGetModifier) error {
		return mod.ModifyBatchGetInput(ctx, input)
	}
	return func(ctx context.Context) (*ezcms.BatchGetInput, error) {
		return modify[ezcms.BatchGetInput](ctx, b, newModiferGroup(modifiers, mapper).Join())
	}
}

// Execute executes the operation, returning the API result.
func (b BatchGet) Execute(ctx context.Context,
	requester ezcms.Requester, options ...func(*ezcms.RequestOptions)) (*ezcms.BatchGetOutput, error) {
	if input, err := b.Invoke(ctx); err != nil {
		return nil, err
	} else {
		return sendRequest[ezcms.BatchGetOutput](ctx, requester, input.Request(), options...)
	}
}

// BatchGetCollection groups item retrievals into as many batch get
// operations as necessary, [MaxBatchGetSize] retrievals per operation.
type BatchGetCollection []BatchGetModifier

// Join partitions the collection into batch get operations.
func (c BatchGetCollection) Join() ([]BatchGet, error) {
	batches, err := collection.Chunk(c, MaxBatchGetSize)
	if err != nil {
		return nil, err
	}
	ops := make([]BatchGet, 0, len(batches))
	for _, batch := range batches {
		op := NewBatchGetOperation().Modify(batch...)
		ops = append(ops, op)
	}
	return ops, nil
}

// Execute executes each batch operation in order, returning the merged API
// results. Failed batches do not halt execution; their errors are joined.
func (c BatchGetCollection) Execute(ctx context.Context,
	requester ezcms.Requester, options ...func(*ezcms.RequestOptions)) (*ezcms.BatchGetOutput, error) {
	ops, err := c.Join()
	if err != nil {
		return nil, err
	}
	output := make([]*ezcms.BatchGetOutput, len(ops))
	errs := make([]error, len(ops))
	for idx, op := range ops {
		if out, err := op.Execute(ctx, requester, options...); err != nil {
			errs[idx] = err
		} else {
			output[idx] = out
		}
	}
	return c.mergeOutput(output), errors.Join(errs...)
}

// ExecuteAsync executes the batch operations concurrently, returning the
// merged API results once every batch completes.
func (c BatchGetCollection) ExecuteAsync(ctx context.Context,
	requester ezcms.Requester, options ...func(*ezcms.RequestOptions)) (*ezcms.BatchGetOutput, error) {
	ops, err := c.Join()
	if err != nil {
		return nil, err
	}
	wg := &sync.WaitGroup{}
	output := make([]*ezcms.BatchGetOutput, len(ops))
	errs := make([]error, len(ops))
	for idx, op := range ops {
		wg.Add(1)
		go func(idx int, op BatchGet) {
			defer wg.Done()
			if out, err := op.Execute(ctx, requester, options...); err != nil {
				errs[idx] = err
			} else {
				output[idx] = out
			}
		}(idx, op)
	}
	wg.Wait()
	return c.mergeOutput(output), errors.Join(errs...)
}

func (BatchGetCollection) mergeOutput(items []*ezcms.BatchGetOutput) *ezcms.BatchGetOutput {
	output := &ezcms.BatchGetOutput{}
	for _, item := range items {
		if item == nil {
			continue
		}
		output.Items = append(output.Items, item.Items...)
		output.Total += item.Total
	}
	return output
}
