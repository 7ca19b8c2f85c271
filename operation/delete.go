package operation

import (
	"context"

	"github.com/nisimpson/ezcms"
)

// Delete functions generate item deletion request data given some context.
type Delete func(context.Context) (*ezcms.DeleteItemInput, error)

// Invoke is a wrapper around the function invocation for stylistic purposes.
func (d Delete) Invoke(ctx context.Context) (*ezcms.DeleteItemInput, error) {
	return d(ctx)
}

// DeleteModifier makes modifications to the input before the operation is executed.
type DeleteModifier interface {
	// ModifyDeleteItemInput is invoked when this modifier is applied to the provided input.
	ModifyDeleteItemInput(context.Context, *ezcms.DeleteItemInput) error
}

// DeleteModifierFunc is a function that implements DeleteModifier.
type DeleteModifierFunc modifier[ezcms.DeleteItemInput]

func (f DeleteModifierFunc) ModifyDeleteItemInput(ctx context.Context, input *ezcms.DeleteItemInput) error {
	return f(ctx, input)
}

// Modify adds modifying functions to the operation, transforming the input
// before it is executed.
func (d Delete) Modify(modifiers ...DeleteModifier) Delete {
	mapper := func(ctx context.Context, input *ezcms.DeleteItemInput, mod DeleteModifier) error {
		return mod.ModifyDeleteItemInput(ctx, input)
	}
	return func(ctx context.Context) (*ezcms.DeleteItemInput, error) {
		return modify[ezcms.DeleteItemInput](ctx, d, newModiferGroup(modifiers, mapper).Join())
	}
}

// Execute executes the operation, returning the API result.
func (d Delete) Execute(ctx context.Context,
	requester ezcms.Requester, options ...func(*ezcms.RequestOptions)) (*ezcms.DeleteItemOutput, error) {
	if input, err := d.Invoke(ctx); err != nil {
		return nil, err
	} else {
		return sendRequest[ezcms.DeleteItemOutput](ctx, requester, input.Request(), options...)
	}
}

// ModifyBatchWriteInput implements the BatchWriteModifier interface.
func (d Delete) ModifyBatchWriteInput(ctx context.Context, input *ezcms.BatchWriteInput) error {
	del, err := d.Invoke(ctx)
	if err != nil {
		return err
	}
	space, err := mergeBatchSpace(input.SpaceID, del.SpaceID)
	if err != nil {
		return err
	}
	input.SpaceID = space
	input.Actions = append(input.Actions, ezcms.Action{
		Type:    ezcms.ActionDelete,
		ItemID:  del.ItemID,
		Version: del.Version,
	})
	return nil
}
