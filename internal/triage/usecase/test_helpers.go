package usecase

import (
	"context"
	"errors"

	"message-triage-assistant/internal/triage"
	"message-triage-assistant/internal/triage/repository"
	"message-triage-assistant/pkg/openrouter"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, args ...any)  {}

// Mock LLM client: completeFunc receives the full prompt, so tests can
// branch on which stage is calling.
type mockLLM struct {
	completeFunc func(prompt string) (string, error)
}

func (m *mockLLM) Complete(ctx context.Context, prompt string) (string, error) {
	if m.completeFunc == nil {
		return "", errors.New("mockLLM: completeFunc not set")
	}
	return m.completeFunc(prompt)
}

func (m *mockLLM) GenerateContent(ctx context.Context, req *openrouter.Request) (*openrouter.Response, error) {
	if len(req.Messages) == 0 {
		return nil, openrouter.ErrEmptyChoices
	}
	content, err := m.Complete(ctx, req.Messages[0].Content)
	if err != nil {
		return nil, err
	}
	return &openrouter.Response{
		Choices: []openrouter.Choice{{Message: openrouter.Message{Role: "assistant", Content: content}}},
	}, nil
}

// Mock knowledge repository.
type mockKnowledge struct {
	searchFunc func(query string, limit int) ([]triage.Passage, error)
}

func (m *mockKnowledge) Search(ctx context.Context, query string, limit int) ([]triage.Passage, error) {
	if m.searchFunc == nil {
		return nil, nil
	}
	return m.searchFunc(query, limit)
}

// Mock lead repository recording every save.
type mockLeads struct {
	saveErr error
	saved   []repository.SaveLeadInput
}

func (m *mockLeads) Migrate(ctx context.Context) error {
	return nil
}

func (m *mockLeads) SaveLead(ctx context.Context, input repository.SaveLeadInput) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = append(m.saved, input)
	return nil
}
