package usecase

import (
	"message-triage-assistant/internal/triage"
	"message-triage-assistant/internal/triage/repository"
	pkgLog "message-triage-assistant/pkg/log"
	"message-triage-assistant/pkg/openrouter"
)

type implUseCase struct {
	l         pkgLog.Logger
	llm       openrouter.IOpenRouter
	knowledge repository.KnowledgeRepository
	leads     repository.LeadRepository
	policy    triage.Policy
}

// Ensure implUseCase implements the triage UseCase.
var _ triage.UseCase = (*implUseCase)(nil)

// New creates a new triage UseCase instance.
func New(
	l pkgLog.Logger,
	llm openrouter.IOpenRouter,
	knowledge repository.KnowledgeRepository,
	leads repository.LeadRepository,
	policy triage.Policy,
) *implUseCase {
	if policy.ExtractionMode == "" {
		policy.ExtractionMode = triage.ExtractionModeLead
	}
	if policy.RetrieveTopK <= 0 {
		policy.RetrieveTopK = triage.DefaultRetrieveTopK
	}

	return &implUseCase{
		l:         l,
		llm:       llm,
		knowledge: knowledge,
		leads:     leads,
		policy:    policy,
	}
}
