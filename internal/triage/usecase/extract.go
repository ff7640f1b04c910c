package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"message-triage-assistant/internal/triage"
)

// extract pulls structured fields out of a sale-inquiry message.
// The failure policy is lossy-but-available: a malformed or missing model
// reply yields an empty record with Degraded set instead of an error, so
// the sale path always reaches persistence. Fields come back as untrusted
// free text; downstream consumers must treat them accordingly.
func (uc *implUseCase) extract(ctx context.Context, messageText string) triage.ExtractionResult {
	var prompt string
	switch uc.policy.ExtractionMode {
	case triage.ExtractionModeCaseNotes:
		prompt = fmt.Sprintf(triage.PromptExtractCaseNotes, messageText)
	default:
		prompt = fmt.Sprintf(triage.PromptExtractLead, messageText)
	}

	reply, err := uc.llm.Complete(ctx, prompt)
	if err != nil {
		uc.l.Warnf(ctx, "triage usecase: extraction LLM call failed, saving lead with empty fields: %v", err)
		return triage.ExtractionResult{Degraded: true}
	}

	cleaned := stripCodeFence(reply)

	var record triage.ExtractedRecord
	if err := json.Unmarshal([]byte(cleaned), &record); err != nil {
		uc.l.Warnf(ctx, "triage usecase: extraction reply is not valid JSON, saving lead with empty fields: %v", err)
		return triage.ExtractionResult{Degraded: true}
	}

	record.ContactInfo = dropNullToken(record.ContactInfo)
	record.FullName = dropNullToken(record.FullName)
	record.Product = dropNullToken(record.Product)
	record.CaseNotes = dropNullToken(record.CaseNotes)

	return triage.ExtractionResult{Record: record}
}

// dropNullToken treats string spellings of the null sentinel ("None",
// "null") as absent. Models occasionally quote the sentinel despite the
// prompt asking for a JSON null.
func dropNullToken(field *string) *string {
	if field == nil {
		return nil
	}
	switch *field {
	case "", "None", "none", "null":
		return nil
	}
	return field
}
