package operation

import (
	"context"

	"github.com/nisimpson/ezcms"
)

// Link functions generate relationship creation request data given some context.
type Link func(context.Context) (*ezcms.LinkInput, error)

// Invoke is a wrapper around the function invocation for stylistic purposes.
func (l Link) Invoke(ctx context.Context) (*ezcms.LinkInput, error) {
	return l(ctx)
}

// Execute executes the operation, returning the API result.
func (l Link) Execute(ctx context.Context,
	requester ezcms.Requester, options ...func(*ezcms.RequestOptions)) (*ezcms.LinkOutput, error) {
	if input, err := l.Invoke(ctx); err != nil {
		return nil, err
	} else {
		return sendRequest[ezcms.LinkOutput](ctx, requester, input.Request(), options...)
	}
}

// ModifyBatchWriteInput implements the BatchWriteModifier interface.
func (l Link) ModifyBatchWriteInput(ctx context.Context, input *ezcms.BatchWriteInput) error {
	link, err := l.Invoke(ctx)
	if err != nil {
		return err
	}
	space, err := mergeBatchSpace(input.SpaceID, link.SpaceID)
	if err != nil {
		return err
	}
	input.SpaceID = space
	input.Actions = append(input.Actions, ezcms.Action{
		Type:     ezcms.ActionLink,
		ItemID:   link.ItemID,
		Relation: link.Relation,
		TargetID: link.TargetID,
	})
	return nil
}

// Unlink functions generate relationship removal request data given some context.
type Unlink func(context.Context) (*ezcms.UnlinkInput, error)

// Invoke is a wrapper around the function invocation for stylistic purposes.
func (u Unlink) Invoke(ctx context.Context) (*ezcms.UnlinkInput, error) {
	return u(ctx)
}

// Execute executes the operation, returning the API result.
func (u Unlink) Execute(ctx context.Context,
	requester ezcms.Requester, options ...func(*ezcms.RequestOptions)) (*ezcms.UnlinkOutput, error) {
	if input, err := u.Invoke(ctx); err != nil {
		return nil, err
	} else {
		return sendRequest[ezcms.UnlinkOutput](ctx, requester, input.Request(), options...)
	}
}

// ModifyBatchWriteInput implements the BatchWriteModifier interface.
func (u Unlink) ModifyBatchWriteInput(ctx context.Context, input *ezcms.BatchWriteInput) error {
	unlink, err := u.Invoke(ctx)
	if err != nil {
		return err
	}
	space, err := mergeBatchSpace(input.SpaceID, unlink.SpaceID)
	if err != nil {
		return err
	}
	input.SpaceID = space
	input.Actions = append(input.Actions, ezcms.Action{
		Type:     ezcms.ActionUnlink,
		ItemID:   unlink.ItemID,
		Relation: unlink.Relation,
		TargetID: unlink.TargetID,
	})
	return nil
}

// ListRelationships functions generate relationship listing request data
// given some context.
type ListRelationships func(context.Context) (*ezcms.ListRelationshipsInput, error)

// Invoke is a wrapper around the function invocation for stylistic purposes.
func (l ListRelationships) Invoke(ctx context.Context) (*ezcms.ListRelationshipsInput, error) {
	return l(ctx)
}

// ListRelationshipsModifier makes modifications to the listing input before
// the operation is executed.
type ListRelationshipsModifier interface {
	// ModifyListRelationshipsInput is invoked when this modifier is applied to the provided input.
	ModifyListRelationshipsInput(context.Context, *ezcms.ListRelationshipsInput) error
}

// Modify adds modifying functions to the operation, transforming the input
// before it is executed.
func (l ListRelationships) Modify(modifiers ...ListRelationshipsModifier) ListRelationships {
	mapper := func(ctx context.Context, input *ezcms.ListRelationshipsInput, mod ListRelationshipsModifier) error {
		return mod.ModifyListRelationshipsInput(ctx, input)
	}
	return func(ctx context.Context) (*ezcms.ListRelationshipsInput, error) {
		return modify[ezcms.ListRelationshipsInput](ctx, l, newModiferGroup(modifiers, mapper).Join())
	}
}

// Execute executes the operation, returning the API result.
func (l ListRelationships) Execute(ctx context.Context,
	requester ezcms.Requester, options ...func(*ezcms.RequestOptions)) (*ezcms.ListRelationshipsOutput, error) {
	if input, err := l.Invoke(ctx); err != nil {
		return nil, err
	} else {
		return sendRequest[ezcms.ListRelationshipsOutput](ctx, requester, input.Request(), options...)
	}
}
