// AngelaMos | 2026
// client.go

// Package graph talks to the Cambiatus GraphQL API. Record decoding
// happens elsewhere; this package only moves queries and raw result
// objects across the wire.
package graph

import (
	"context"
	"errors"
)

// Client is the minimal contract the record loaders need from the
// GraphQL upstream.
type Client interface {
	Query(ctx context.Context, query string, variables map[string]any) (Result, error)
	Ping(ctx context.Context) error
	Close() error
}

// Result is the "data" object of a GraphQL response.
type Result map[string]any

// ErrMissingURL indicates the GraphQL endpoint is not configured.
var ErrMissingURL = errors.New("graphql URL is required")
