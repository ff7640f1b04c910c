package usecase

import (
	"context"
	"fmt"
	"strings"

	"message-triage-assistant/internal/triage"
)

// answer serves the question path: retrieve the top-K most similar
// passages and synthesize a reply from context + question.
func (uc *implUseCase) answer(ctx context.Context, question string) (string, []triage.Passage, error) {
	passages, err := uc.knowledge.Search(ctx, question, uc.policy.RetrieveTopK)
	if err != nil {
		return "", nil, fmt.Errorf("knowledge search failed: %w", err)
	}

	if len(passages) == 0 {
		uc.l.Infof(ctx, "triage usecase: no passages found for question, replying without LLM call")
		return triage.ReplyNoKnowledge, nil, nil
	}

	var contextBuilder strings.Builder
	for i, p := range passages {
		if i > 0 {
			contextBuilder.WriteString("\n")
		}
		contextBuilder.WriteString(p.Content)
	}

	prompt := fmt.Sprintf(triage.PromptAnswer, contextBuilder.String(), question)

	reply, err := uc.llm.Complete(ctx, prompt)
	if err != nil {
		return "", passages, fmt.Errorf("answer generation failed: %w", err)
	}

	return reply, passages, nil
}
