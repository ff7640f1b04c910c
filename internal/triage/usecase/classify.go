package usecase

import (
	"context"
	"fmt"

	"message-triage-assistant/internal/triage"
)

// classify asks the model for a one-word label and normalizes the free-text
// reply into a Category. Upstream failures wrap triage.ErrClassification
// and are not retried within the run.
func (uc *implUseCase) classify(ctx context.Context, messageText string) (triage.Category, error) {
	prompt := fmt.Sprintf(triage.PromptClassify, messageText)

	reply, err := uc.llm.Complete(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("%w: %w", triage.ErrClassification, err)
	}

	category := triage.NormalizeLabel(reply)
	uc.l.Infof(ctx, "triage usecase: classified as %s (raw label: %q)", category, reply)

	return category, nil
}
