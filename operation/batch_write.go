package operation

import (
	"context"
	"errors"
	"sync"

	"github.com/nisimpson/ezcms"
	"github.com/nisimpson/ezcms/internal/collection"
)

const (
	// MaxBatchWriteSize is the maximum number of actions the content API
	// applies in a single batch write call.
	MaxBatchWriteSize = 100
)

// BatchWrite functions generate batch write request data given some context.
type BatchWrite func(context.Context) (*ezcms.BatchWriteInput, error)

func newBatchWriteOperation() BatchWrite {
	return func(ctx context.Context) (*ezcms.BatchWriteInput, error) {
		return &ezcms.BatchWriteInput{}, nil
	}
}

// Invoke is a wrapper around the function invocation for stylistic purposes.
func (b BatchWrite) Invoke(ctx context.Context) (*ezcms.BatchWriteInput, error) {
	return b(ctx)
}

// BatchWriteModifier makes modifications to the input before the operation is executed.
type BatchWriteModifier interface {
	// ModifyBatchWriteInput is invoked when this modifier is applied to the provided input.
	ModifyBatchWriteInput(context.Context, *ezcms.BatchWriteInput) error
}

// Modify adds modifying functions to the operation, transforming the input
// before it is executed.
func (b BatchWrite) Modify(modifiers ...BatchWriteModifier) BatchWrite {
	mapper := func(ctx context.Context, input *ezcms.BatchWriteInput, mod BatchWriteModifier) error {
		return mod.ModifyBatchWriteInput(ctx, input)
	}
	return func(ctx context.Context) (*ezcms.BatchWriteInput, error) {
		return modify[ezcms.BatchWriteInput](ctx, b, newModiferGroup(modifiers, mapper).Join())
	}
}

// Execute executes the operation, returning the API result.
func (b BatchWrite) Execute(ctx context.Context,
	requester ezcms.Requester, options ...func(*ezcms.RequestOptions)) (*ezcms.BatchWriteOutput, error) {
	if input, err := b.Invoke(ctx); err != nil {
		return nil, err
	} else {
		return sendRequest[ezcms.BatchWriteOutput](ctx, requester, input.Request(), options...)
	}
}

// BatchWriteCollection groups write actions into as many batch write
// operations as necessary, [MaxBatchWriteSize] actions per operation.
type BatchWriteCollection []BatchWriteModifier

// Join partitions the collection into batch write operations.
func (c BatchWriteCollection) Join() ([]BatchWrite, error) {
	batches, err := collection.Chunk(c, MaxBatchWriteSize)
	if err != nil {
		return nil, err
	}
	ops := make([]BatchWrite, 0, len(batches))
	for _, batch := range batches {
		op := newBatchWriteOperation().Modify(batch...)
		ops = append(ops, op)
	}
	return ops, nil
}

// Execute executes each batch operation in order, returning the merged API
// results. Failed batches do not halt execution; their errors are joined.
func (c BatchWriteCollection) Execute(ctx context.Context,
	requester ezcms.Requester, options ...func(*ezcms.RequestOptions)) (*ezcms.BatchWriteOutput, error) {
	ops, err := c.Join()
	if err != nil {
		return nil, err
	}
	output := make([]*ezcms.BatchWriteOutput, len(ops))
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
func (c BatchWriteCollection) ExecuteAsync(ctx context.Context,
	requester ezcms.Requester, options ...func(*ezcms.RequestOptions)) (*ezcms.BatchWriteOutput, error) {
	ops, err := c.Join()
	if err != nil {
		return nil, err
	}
	wg := &sync.WaitGroup{}
	output := make([]*ezcms.BatchWriteOutput, len(ops))
	errs := make([]error, len(ops))
	for idx, op := range ops {
		wg.Add(1)
		go func(idx int, op BatchWrite) {
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

func (BatchWriteCollection) mergeOutput(items []*ezcms.BatchWriteOutput) *ezcms.BatchWriteOutput {
	output := &ezcms.BatchWriteOutput{}
	for _, item := range items {
		if item == nil {
			continue
		}
		output.Results = append(output.Results, item.Results...)
		output.Failed = append(output.Failed, item.Failed...)
	}
	return output
}
