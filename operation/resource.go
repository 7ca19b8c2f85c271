package operation

import (
	"context"

	"github.com/nisimpson/ezcms"
)

// GetResource functions generate resource retrieval request data given some context.
type GetResource func(context.Context) (*ezcms.GetResourceInput, error)

// Invoke is a wrapper around the function invocation for stylistic purposes.
func (g GetResource) Invoke(ctx context.Context) (*ezcms.GetResourceInput, error) {
	return g(ctx)
}

// Execute executes the operation, returning the API result.
func (g GetResource) Execute(ctx context.Context,
	requester ezcms.Requester, options ...func(*ezcms.RequestOptions)) (*ezcms.GetResourceOutput, error) {
	if input, err := g.Invoke(ctx); err != nil {
		return nil, err
	} else {
		return sendRequest[ezcms.GetResourceOutput](ctx, requester, input.Request(), options...)
	}
}

// ListResources functions generate resource listing request data given some context.
type ListResources func(context.Context) (*ezcms.ListResourcesInput, error)

// Invoke is a wrapper around the function invocation for stylistic purposes.
func (l ListResources) Invoke(ctx context.Context) (*ezcms.ListResourcesInput, error) {
	return l(ctx)
}

// ListResourcesModifier makes modifications to the listing input before the
// operation is executed.
type ListResourcesModifier interface {
	// ModifyListResourcesInput is invoked when this modifier is applied to the provided input.
	ModifyListResourcesInput(context.Context, *ezcms.ListResourcesInput) error
}

// Modify adds modifying functions to the operation, transforming the input
// before it is executed.
func (l ListResources) Modify(modifiers ...ListResourcesModifier) ListResources {
	mapper := func(ctx context.Context, input *ezcms.ListResourcesInput, mod ListResourcesModifier) error {
		return mod.ModifyListResourcesInput(ctx, input)
	}
	return func(ctx context.Context) (*ezcms.ListResourcesInput, error) {
		return modify[ezcms.ListResourcesInput](ctx, l, newModiferGroup(modifiers, mapper).Join())
	}
}

// Execute executes the operation, returning the API result.
func (l ListResources) Execute(ctx context.Context,
	requester ezcms.Requester, options ...func(*ezcms.RequestOptions)) (*ezcms.ListResourcesOutput, error) {
	if input, err := l.Invoke(ctx); err != nil {
		return nil, err
	} else {
		return sendRequest[ezcms.ListResourcesOutput](ctx, requester, input.Request(), options...)
	}
}

// CreateResource functions generate resource creation request data given some context.
type CreateResource func(context.Context) (*ezcms.CreateResourceInput, error)

// Invoke is a wrapper around the function invocation for stylistic purposes.
func (c CreateResource) Invoke(ctx context.Context) (*ezcms.CreateResourceInput, error) {
	return c(ctx)
}

// CreateResourceModifier makes modifications to the input before the
// operation is executed.
type CreateResourceModifier interface {
	// ModifyCreateResourceInput is invoked when this modifier is applied to the provided input.
	ModifyCreateResourceInput(context.Context, *ezcms.CreateResourceInput) error
}

// Modify adds modifying functions to the operation, transforming the input
// before it is executed.
func (c CreateResource) Modify(modifiers ...CreateResourceModifier) CreateResource {
	mapper := func(ctx context.Context, input *ezcms.CreateResourceInput, mod CreateResourceModifier) error {
		return mod.ModifyCreateResourceInput(ctx, input)
	}
	return func(ctx context.Context) (*ezcms.CreateResourceInput, error) {
		return modify[ezcms.CreateResourceInput](ctx, c, newModiferGroup(modifiers, mapper).Join())
	}
}

// Execute executes the operation, returning the API result.
func (c CreateResource) Execute(ctx context.Context,
	requester ezcms.Requester, options ...func(*ezcms.RequestOptions)) (*ezcms.CreateResourceOutput, error) {
	if input, err := c.Invoke(ctx); err != nil {
		return nil, err
	} else {
		return sendRequest[ezcms.CreateResourceOutput](ctx, requester, input.Request(), options...)
	}
}

// DeleteResource functions generate resource deletion request data given some context.
type DeleteResource func(context.Context) (*ezcms.DeleteResourceInput, error)

// Invoke is a wrapper around the function invocation for stylistic purposes.
func (d DeleteResource) Invoke(ctx context.Context) (*ezcms.DeleteResourceInput, error) {
	return d(ctx)
}

// Execute executes the operation, returning the API result.
func (d DeleteResource) Execute(ctx context.Context,
	requester ezcms.Requester, options ...func(*ezcms.RequestOptions)) (*ezcms.DeleteResourceOutput, error) {
	if input, err := d.Invoke(ctx); err != nil {
		return nil, err
	} else {
		return sendRequest[ezcms.DeleteResourceOutput](ctx, requester, input.Request(), options...)
	}
}
