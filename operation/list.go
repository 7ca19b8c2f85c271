package operation

import (
	"context"

	"github.com/nisimpson/ezcms"
)

// List functions generate item listing request data given some context.
type List func(context.Context) (*ezcms.ListItemsInput, error)

// Invoke is a wrapper around the function invocation for stylistic purposes.
func (l List) Invoke(ctx context.Context) (*ezcms.ListItemsInput, error) {
	return l(ctx)
}

// ListModifier makes modifications to the listing input before the operation
// is executed.
type ListModifier interface {
	// ModifyListItemsInput is invoked when this modifier is applied to the provided input.
	ModifyListItemsInput(context.Context, *ezcms.ListItemsInput) error
}

// ListModifierFunc is a function that implements ListModifier.
type ListModifierFunc modifier[ezcms.ListItemsInput]

func (f ListModifierFunc) ModifyListItemsInput(ctx context.Context, input *ezcms.ListItemsInput) error {
	return f(ctx, input)
}

// Modify adds modifying functions to the operation, transforming the input
// before it is executed.
func (l List) Modify(modifiers ...ListModifier) List {
	mapper := func(ctx context.Context, input *ezcms.ListItemsInput, mod ListModifier) error {
		return mod.ModifyListItemsInput(ctx, input)
	}
	return func(ctx context.Context) (*ezcms.ListItemsInput, error) {
		return modify[ezcms.ListItemsInput](ctx, l, newModiferGroup(modifiers, mapper).Join())
	}
}

// Execute executes the operation, returning the API result.
func (l List) Execute(ctx context.Context,
	requester ezcms.Requester, options ...func(*ezcms.RequestOptions)) (*ezcms.ListItemsOutput, error) {
	if input, err := l.Invoke(ctx); err != nil {
		return nil, err
	} else {
		return sendRequest[ezcms.ListItemsOutput](ctx, requester, input.Request(), options...)
	}
}

// PageCallback is invoked each time a listing page is retrieved. The result
// of the call is provided for further processing; to halt further page
// retrievals, return false.
type PageCallback = func(context.Context, *ezcms.ListItemsOutput) bool

// WithPagination creates a new operation that exhaustively retrieves items
// from the space using the initial operation. Use the callback to access
// data from each response.
func (l List) WithPagination(callback PageCallback) ListExecutor {
	return func(ctx context.Context, requester ezcms.Requester, options ...func(*ezcms.RequestOptions)) (*ezcms.ListItemsOutput, error) {
		input, err := l.Invoke(ctx)
		if err != nil {
			return nil, err
		}
		for {
			output, err := sendRequest[ezcms.ListItemsOutput](ctx, requester, input.Request(), options...)
			if err != nil {
				return nil, err
			}
			if ok := callback(ctx, output); !ok {
				return output, nil
			}
			if output.NextCursor == "" {
				return output, nil
			}
			input.Cursor = output.NextCursor
		}
	}
}

// ListExecutor functions execute the item listing API.
type ListExecutor func(context.Context, ezcms.Requester, ...func(*ezcms.RequestOptions)) (*ezcms.ListItemsOutput, error)

// Execute invokes the item listing API using the provided requester and options.
func (l ListExecutor) Execute(ctx context.Context,
	requester ezcms.Requester, options ...func(*ezcms.RequestOptions)) (*ezcms.ListItemsOutput, error) {
	return l(ctx, requester, options...)
}
