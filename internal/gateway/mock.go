package gateway

import (
	"context"
	"encoding/json"
	"sync"
)

// MockResponse is a canned response for the MockGateway.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// MockGateway is a deterministic Gateway for testing.
// It returns canned responses in FIFO order and records all requests.
type MockGateway struct {
	mu        sync.Mutex
	responses []MockResponse
	Calls     []Request
}

// NewMockGateway creates a MockGateway with the given canned responses.
func NewMockGateway(responses ...MockResponse) *MockGateway {
	return &MockGateway{responses: responses}
}

// Generate returns the next canned response or ErrUnavailable if the
// queue is empty.
func (m *MockGateway) Generate(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	if len(m.responses) == 0 {
		return nil, &ErrUnavailable{Err: nil}
	}

	resp := m.responses[0]
	m.responses = m.responses[1:]

	if resp.Err != nil {
		return nil, resp.Err
	}

	return &Response{
		Content:    resp.Content,
		Usage:      resp.Usage,
		Model:      "mock",
		StopReason: "end",
	}, nil
}

// ModelID returns "mock".
func (m *MockGateway) ModelID() string {
	return "mock"
}

// AddResponse appends a canned response to the queue.
func (m *MockGateway) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, resp)
}

// CallCount returns the number of Generate calls made.
func (m *MockGateway) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
