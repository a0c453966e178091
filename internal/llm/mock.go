package llm

import (
	"context"
	"sync"
)

// MockResponse is one scripted reply for MockClient.
type MockResponse struct {
	Text string
	Err  error
}

// MockClient is a scripted Client for tests. Responses are consumed in
// order by GenerateContent and GenerateJSON alike; once the script is
// exhausted the last response repeats.
type MockClient struct {
	mu        sync.Mutex
	responses []MockResponse
	calls     int
	systems   []string
	prompts   []string
}

// NewMockClient returns a client that replays the given responses.
func NewMockClient(responses ...MockResponse) *MockClient {
	return &MockClient{responses: responses}
}

func (m *MockClient) next(ctx context.Context, system, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.systems = append(m.systems, system)
	m.prompts = append(m.prompts, prompt)

	idx := m.calls
	m.calls++
	if idx >= len(m.responses) {
		idx = len(m.responses) - 1
	}
	if idx < 0 {
		return "", nil
	}

	r := m.responses[idx]
	return r.Text, r.Err
}

// GenerateContent replays the next scripted response.
func (m *MockClient) GenerateContent(ctx context.Context, system, prompt string, _ ModelTier) (string, error) {
	return m.next(ctx, system, prompt)
}

// GenerateJSON replays the next scripted response.
func (m *MockClient) GenerateJSON(ctx context.Context, system, prompt string, _ ModelTier) (string, error) {
	return m.next(ctx, system, prompt)
}

// GetModel returns a synthetic model name for the tier.
func (m *MockClient) GetModel(tier ModelTier) string {
	return "mock-" + string(tier)
}

// Close is a no-op.
func (m *MockClient) Close() error {
	return nil
}

// Calls reports how many generate calls were made.
func (m *MockClient) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// Prompts returns the user prompts seen so far, in call order.
func (m *MockClient) Prompts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.prompts...)
}

// Systems returns the system instructions seen so far, in call order.
func (m *MockClient) Systems() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.systems...)
}

var _ Client = (*MockClient)(nil)
