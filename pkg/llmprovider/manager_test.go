package llmprovider

import (
	"context"
	"errors"
	"testing"
	"time"

	"mental-health-support/pkg/log"
)

// mockProvider is a test implementation of the Provider interface
type mockProvider struct {
	name       string
	model      string
	shouldFail bool
	response   *Response
	callCount  int
}

func (m *mockProvider) GenerateReply(ctx context.Context, req *Request) (*Response, error) {
	m.callCount++
	if m.shouldFail {
		return nil, errors.New("mock provider error")
	}
	return m.response, nil
}

func (m *mockProvider) Name() string  { return m.name }
func (m *mockProvider) Model() string { return m.model }

func newTestResponse(name, content string) *Response {
	return &Response{
		Content:      content,
		ProviderName: name,
		ModelName:    name + "-model",
		Usage: &Usage{
			InputTokens:  100,
			OutputTokens: 50,
			TotalTokens:  150,
		},
	}
}

func TestGenerateReply_SuccessWithPrimaryProvider(t *testing.T) {
	primary := &mockProvider{
		name:     "primary",
		model:    "primary-model",
		response: newTestResponse("primary", "Hello from primary provider"),
	}

	manager := NewManager([]Provider{primary}, &Config{
		FallbackEnabled: true,
		RetryAttempts:   3,
		RetryDelay:      10 * time.Millisecond,
	}, log.NewNop())

	resp, err := manager.GenerateReply(context.Background(), &Request{
		Messages: []Message{{Role: "user", Content: "hi"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Content != "Hello from primary provider" {
		t.Errorf("unexpected content: %q", resp.Content)
	}
	if primary.callCount != 1 {
		t.Errorf("expected 1 call, got %d", primary.callCount)
	}
}

func TestGenerateReply_FallbackToSecondary(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "m1", shouldFail: true}
	secondary := &mockProvider{
		name:     "secondary",
		model:    "m2",
		response: newTestResponse("secondary", "Hello from secondary"),
	}

	manager := NewManager([]Provider{primary, secondary}, &Config{
		FallbackEnabled: true,
		RetryAttempts:   2,
		RetryDelay:      time.Millisecond,
	}, log.NewNop())

	resp, err := manager.GenerateReply(context.Background(), &Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.ProviderName != "secondary" {
		t.Errorf("expected secondary provider, got %s", resp.ProviderName)
	}
	if primary.callCount != 2 {
		t.Errorf("expected 2 retry attempts on primary, got %d", primary.callCount)
	}
}

func TestGenerateReply_AllProvidersFail(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "m1", shouldFail: true}

	manager := NewManager([]Provider{primary}, &Config{
		FallbackEnabled: true,
		RetryAttempts:   1,
		RetryDelay:      time.Millisecond,
	}, log.NewNop())

	_, err := manager.GenerateReply(context.Background(), &Request{})
	if !errors.Is(err, ErrAllProvidersFailed) {
		t.Errorf("expected ErrAllProvidersFailed, got %v", err)
	}
}

func TestGenerateReply_FallbackDisabledStopsAfterFirst(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "m1", shouldFail: true}
	secondary := &mockProvider{name: "secondary", model: "m2", response: newTestResponse("secondary", "hi")}

	manager := NewManager([]Provider{primary, secondary}, &Config{
		FallbackEnabled: false,
		RetryAttempts:   1,
	}, log.NewNop())

	_, err := manager.GenerateReply(context.Background(), &Request{})
	if err == nil {
		t.Fatal("expected error when fallback disabled and primary fails")
	}
	if secondary.callCount != 0 {
		t.Errorf("secondary should not be called, got %d calls", secondary.callCount)
	}
}

func TestGenerateReply_EmptyReplyTreatedAsFailure(t *testing.T) {
	empty := &mockProvider{name: "empty", model: "m1", response: newTestResponse("empty", "")}

	manager := NewManager([]Provider{empty}, &Config{
		FallbackEnabled: true,
		RetryAttempts:   2,
		RetryDelay:      time.Millisecond,
	}, log.NewNop())

	_, err := manager.GenerateReply(context.Background(), &Request{})
	if !errors.Is(err, ErrAllProvidersFailed) {
		t.Errorf("expected ErrAllProvidersFailed for empty content, got %v", err)
	}
}

func TestGenerateReply_NoProviders(t *testing.T) {
	manager := NewManager(nil, &Config{}, log.NewNop())

	_, err := manager.GenerateReply(context.Background(), &Request{})
	if !errors.Is(err, ErrNoProvidersConfigured) {
		t.Errorf("expected ErrNoProvidersConfigured, got %v", err)
	}
}

func TestGenerateReply_GlobalTimeout(t *testing.T) {
	slow := &slowProvider{delay: 50 * time.Millisecond}

	manager := NewManager([]Provider{slow, slow}, &Config{
		FallbackEnabled: true,
		RetryAttempts:   1,
		MaxTotalTimeout: 20 * time.Millisecond,
	}, log.NewNop())

	_, err := manager.GenerateReply(context.Background(), &Request{})
	if err == nil {
		t.Fatal("expected timeout error")
	}
}

type slowProvider struct {
	delay time.Duration
}

func (s *slowProvider) GenerateReply(ctx context.Context, req *Request) (*Response, error) {
	select {
	case <-time.After(s.delay):
		return nil, errors.New("slow failure")
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (s *slowProvider) Name() string  { return "slow" }
func (s *slowProvider) Model() string { return "slow-model" }
