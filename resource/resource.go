// Package resource provides a space-scoped client for building asset
// metadata operations.
package resource

import (
	"context"

	"github.com/nisimpson/ezcms"
	"github.com/nisimpson/ezcms/operation"
	"github.com/oklog/ulid/v2"
)

// IDGenerator functions mint identifiers for newly registered resources.
type IDGenerator func(context.Context) string

type Options struct {
	// GenerateID mints ids for registered resources.
	GenerateID IDGenerator
}

// Client builds operations against the resources of a single space.
type Client struct {
	spaceID string
	options Options
}

// NewClient creates a new resource [Client] targeting the provided space.
func NewClient(spaceID string, opts ...func(*Options)) Client {
	options := Options{
		GenerateID: func(context.Context) string { return ulid.Make().String() },
	}
	for _, opt := range opts {
		opt(&options)
	}
	return Client{spaceID: spaceID, options: options}
}

// SpaceID returns the target space id.
func (c Client) SpaceID() string { return c.spaceID }

// Get retrieves the resource with the provided id.
func (c Client) Get(id string) operation.GetResource {
	return func(ctx context.Context) (*ezcms.GetResourceInput, error) {
		return &ezcms.GetResourceInput{
			SpaceID:    c.spaceID,
			ResourceID: id,
		}, nil
	}
}

// List retrieves resources of the provided content type. An empty content
// type lists every resource in the space.
func (c Client) List(contentType string) operation.ListResources {
	return func(ctx context.Context) (*ezcms.ListResourcesInput, error) {
		return &ezcms.ListResourcesInput{
			SpaceID:     c.spaceID,
			ContentType: contentType,
		}, nil
	}
}

// Create registers the resource metadata, minting an id when absent.
func (c Client) Create(res ezcms.Resource) operation.CreateResource {
	return func(ctx context.Context) (*ezcms.CreateResourceInput, error) {
		if res.ID == "" {
			res.ID = c.options.GenerateID(ctx)
		}
		return &ezcms.CreateResourceInput{
			SpaceID:  c.spaceID,
			Resource: res,
		}, nil
	}
}

// Delete removes the resource with the provided id.
func (c Client) Delete(id string) operation.DeleteResource {
	return func(ctx context.Context) (*ezcms.DeleteResourceInput, error) {
		return &ezcms.DeleteResourceInput{
			SpaceID:    c.spaceID,
			ResourceID: id,
		}, nil
	}
}
