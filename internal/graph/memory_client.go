// AngelaMos | 2026
// memory_client.go

package graph

import (
	"context"
	"sync"
)

// MemoryClient is an in-memory Client used to exercise record loaders
// without a running GraphQL upstream.
type MemoryClient struct {
	mu      sync.Mutex
	queries []ExecutedQuery
	results []Result
	err     error
	pingErr error
}

// ExecutedQuery captures a document and variables sent through the
// client.
type ExecutedQuery struct {
	Query     string
	Variables map[string]any
}

func NewMemoryClient() *MemoryClient {
	return &MemoryClient{}
}

// WithError makes every subsequent Query call fail with err.
func (m *MemoryClient) WithError(err error) *MemoryClient {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
	return m
}

// WithPingError forces Ping to return the supplied error.
func (m *MemoryClient) WithPingError(err error) *MemoryClient {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pingErr = err
	return m
}

// PushResult appends a result returned by the next Query call.
func (m *MemoryClient) PushResult(res Result) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results = append(m.results, res)
}

// Queries returns every document executed so far.
func (m *MemoryClient) Queries() []ExecutedQuery {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]ExecutedQuery, len(m.queries))
	copy(out, m.queries)
	return out
}

func (m *MemoryClient) Query(
	_ context.Context,
	query string,
	variables map[string]any,
) (Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.queries = append(m.queries, ExecutedQuery{Query: query, Variables: variables})

	if m.err != nil {
		return nil, m.err
	}

	if len(m.results) == 0 {
		return Result{}, nil
	}

	res := m.results[0]
	m.results = m.results[1:]
	return res, nil
}

func (m *MemoryClient) Ping(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pingErr
}

func (m *MemoryClient) Close() error {
	return nil
}

var _ Client = (*MemoryClient)(nil)
