package operation

import (
	"context"

	"github.com/nisimpson/ezcms"
)

// Update functions generate item update request data given some context.
type Update func(context.Context) (*ezcms.UpdateItemInput, error)

// Invoke is a wrapper around the function invocation for stylistic purposes.
func (u Update) Invoke(ctx context.Context) (*ezcms.UpdateItemInput, error) {
	return u(ctx)
}

// UpdateModifier makes modifications to the input before the operation is executed.
type UpdateModifier interface {
	// ModifyUpdateItemInput is invoked when this modifier is applied to the provided input.
	ModifyUpdateItemInput(context.Context, *ezcms.UpdateItemInput) error
}

// UpdateModifierFunc is a function that implements UpdateModifier.
type UpdateModifierFunc modifier[ezcms.UpdateItemInput]

func (f UpdateModifierFunc) ModifyUpdateItemInput(ctx context.Context, input *ezcms.UpdateItemInput) error {
	return f(ctx, input)
}

// Modify adds modifying functions to the operation, transforming the input
// before it is executed.
func (u Update) Modify(modifiers ...UpdateModifier) Update {
	mapper := func(ctx context.Context, input *ezcms.UpdateItemInput, mod UpdateModifier) error {
		return mod.ModifyUpdateItemInput(ctx, input)
	}
	return func(ctx context.Context) (*ezcms.UpdateItemInput, error) {
		return modify[ezcms.UpdateItemInput](ctx, u, newModiferGroup(modifiers, mapper).Join())
	}
}

// Execute executes the operation, returning the API result.
func (u Update) Execute(ctx context.Context,
	requester ezcms.Requester, options ...func(*ezcms.RequestOptions)) (*ezcms.UpdateItemOutput, error) {
	if input, err := u.Invoke(ctx); err != nil {
		return nil, err
	} else {
		return sendRequest[ezcms.UpdateItemOutput](ctx, requester, input.Request(), options...)
	}
}

// ModifyBatchWriteInput implements the BatchWriteModifier interface.
func (u Update) ModifyBatchWriteInput(ctx context.Context, input *ezcms.BatchWriteInput) error {
	update, err := u.Invoke(ctx)
	if err != nil {
		return err
	}
	space, err := mergeBatchSpace(input.SpaceID, update.SpaceID)
	if err != nil {
		return err
	}
	input.SpaceID = space
	input.Actions = append(input.Actions, ezcms.Action{
		Type:    ezcms.ActionUpdate,
		ItemID:  update.ItemID,
		Version: update.Version,
		Fields:  update.Fields,
	})
	return nil
}
