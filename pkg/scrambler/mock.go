package scrambler

import (
	"context"
	"fmt"
)

// MockClient is a mock scramble service client for testing
type MockClient struct {
	baseURL     string
	scrambleErr error
	canned      []string
	calls       int
}

// MockOption configures the mock client
type MockOption func(*MockClient)

// WithScrambles sets a canned scramble list to serve, cycled in order
func WithScrambles(scrambles []string) MockOption {
	return func(m *MockClient) {
		m.canned = scrambles
	}
}

// WithScrambleError sets an error to return from Scramble and ScrambleBatch
func WithScrambleError(err error) MockOption {
	return func(m *MockClient) {
		m.scrambleErr = err
	}
}

// WithBaseURL sets the base URL
func WithBaseURL(url string) MockOption {
	return func(m *MockClient) {
		m.baseURL = url
	}
}

// NewMockClient creates a new mock scramble client
func NewMockClient(opts ...MockOption) *MockClient {
	m := &MockClient{
		baseURL: "http://mock-scrambler.local",
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// BaseURL returns the configured base URL
func (m *MockClient) BaseURL() string {
	return m.baseURL
}

// SetBaseURL updates the base URL
func (m *MockClient) SetBaseURL(url string) {
	m.baseURL = url
}

// Scramble returns the next canned scramble, or a generated placeholder
func (m *MockClient) Scramble(ctx context.Context, scrambleType string, length int) (string, error) {
	if m.scrambleErr != nil {
		return "", m.scrambleErr
	}
	m.calls++
	if len(m.canned) > 0 {
		return m.canned[(m.calls-1)%len(m.canned)], nil
	}
	return fmt.Sprintf("%s scramble #%d (len %d)", scrambleType, m.calls, length), nil
}

// ScrambleBatch returns count scrambles via Scramble
func (m *MockClient) ScrambleBatch(ctx context.Context, scrambleType string, length, count int) ([]string, error) {
	out := make([]string, 0, count)
	for i := 0; i < count; i++ {
		s, err := m.Scramble(ctx, scrambleType, length)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// Calls returns how many scrambles were generated (for testing)
func (m *MockClient) Calls() int {
	return m.calls
}

// Ensure MockClient implements Client
var _ Client = (*MockClient)(nil)
