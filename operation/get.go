package operation

import (
	"context"

	"github.com/nisimpson/ezcms"
)

// Get functions generate item retrieval request data given some context.
type Get func(context.Context) (*ezcms.GetItemInput, error)

// Invoke is a wrapper around the function invocation for stylistic purposes.
func (g Get) Invoke(ctx context.Context) (*ezcms.GetItemInput, error) {
	return g(ctx)
}

// GetModifier makes modifications to the input before the operation is executed.
type GetModifier interface {
	// ModifyGetItemInput is invoked when this modifier is applied to the provided input.
	ModifyGetItemInput(context.Context, *ezcms.GetItemInput) error
}

// GetModifierFunc is a function that implements GetModifier.
type GetModifierFunc modifier[ezcms.GetItemInput]

func (f GetModifierFunc) ModifyGetItemInput(ctx context.Context, input *ezcms.GetItemInput) error {
	return f(ctx, input)
}

// Modify adds modifying functions to the operation, transforming the input
// before it is executed.
func (g Get) Modify(modifiers ...GetModifier) Get {
	mapper := func(ctx context.Context, input *ezcms.GetItemInput, mod GetModifier) error {
		return mod.ModifyGetItemInput(ctx, input)
	}
	return func(ctx context.Context) (*ezcms.GetItemInput, error) {
		return modify[ezcms.GetItemInput](ctx, g, newModiferGroup(modifiers, mapper).Join())
	}
}

// Execute executes the operation, returning the API result.
func (g Get) Execute(ctx context.Context,
	requester ezcms.Requester, options ...func(*ezcms.RequestOptions)) (*ezcms.GetItemOutput, error) {
	if input, err := g.Invoke(ctx); err != nil {
		return nil, err
	} else {
		return sendRequest[ezcms.GetItemOutput](ctx, requester, input.Request(), options...)
	}
}

// ModifyBatchGetInput implements the BatchGetModifier interface.
func (g Get) ModifyBatchGetInput(ctx context.Context, input *ezcms.BatchGetInput) error {
	get, err := g.Invoke(ctx)
	if err != nil {
		return err
	}
	space, err := mergeBatchSpace(input.SpaceID, get.SpaceID)
	if err != nil {
		return err
	}
	input.SpaceID = space
	input.IDs = append(input.IDs, get.ItemID)
	return nil
}
