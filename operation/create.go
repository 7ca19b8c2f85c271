package operation

import (
	"context"

	"github.com/nisimpson/ezcms"
)

// Create functions generate item creation request data given some context.
type Create func(context.Context) (*ezcms.CreateItemInput, error)

// Invoke is a wrapper around the function invocation for stylistic purposes.
func (c Create) Invoke(ctx context.Context) (*ezcms.CreateItemInput, error) {
	return c(ctx)
}

// CreateModifier makes modifications to the input before the operation is executed.
type CreateModifier interface {
	// ModifyCreateItemInput is invoked when this modifier is applied to the provided input.
	ModifyCreateItemInput(context.Context, *ezcms.CreateItemInput) error
}

// CreateModifierFunc is a function that implements CreateModifier.
type CreateModifierFunc modifier[ezcms.CreateItemInput]

func (f CreateModifierFunc) ModifyCreateItemInput(ctx context.Context, input *ezcms.CreateItemInput) error {
	return f(ctx, input)
}

// Modify adds modifying functions to the operation, transforming the input
// before it is executed.
func (c Create) Modify(modifiers ...CreateModifier) Create {
	mapper := func(ctx context.Context, input *ezcms.CreateItemInput, mod CreateModifier) error {
		return mod.ModifyCreateItemInput(ctx, input)
	}
	return func(ctx context.Context) (*ezcms.CreateItemInput, error) {
		return modify[ezcms.CreateItemInput](ctx, c, newModiferGroup(modifiers, mapper).Join())
	}
}

// Execute executes the operation, returning the API result.
func (c Create) Execute(ctx context.Context,
	requester ezcms.Requester, options ...func(*ezcms.RequestOptions)) (*ezcms.CreateItemOutput, error) {
	if input, err := c.Invoke(ctx); err != nil {
		return nil, err
	} else {
		return sendRequest[ezcms.CreateItemOutput](ctx, requester, input.Request(), options...)
	}
}

// ModifyBatchWriteInput implements the BatchWriteModifier interface.
func (c Create) ModifyBatchWriteInput(ctx context.Context, input *ezcms.BatchWriteInput) error {
	create, err := c.Invoke(ctx)
	if err != nil {
		return err
	}
	space, err := mergeBatchSpace(input.SpaceID, create.SpaceID)
	if err != nil {
		return err
	}
	item := create.Item
	input.SpaceID = space
	input.Actions = append(input.Actions, ezcms.Action{
		Type:   ezcms.ActionCreate,
		ItemID: item.ID,
		Item:   &item,
	})
	return nil
}
