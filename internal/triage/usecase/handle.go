package usecase

import (
	"context"
	"strings"

	"message-triage-assistant/internal/model"
	"message-triage-assistant/internal/triage"
	"message-triage-assistant/internal/triage/repository"
)

// Handle drives one message through the triage state machine:
//
//	received → classified → {retrieving | extracting | rejected}
//	         → {answered | persisted} → done
//
// Exactly one terminal path is taken per message and the reply is non-empty
// on every terminal state. All failures are converted into reply-producing
// transitions; Handle never returns an error and never panics out.
func (uc *implUseCase) Handle(ctx context.Context, msg model.Message) (out triage.HandleOutput) {
	state := &triage.RoutingState{
		Message: msg,
		Status:  triage.StatusReceived,
	}

	defer func() {
		if r := recover(); r != nil {
			uc.l.Errorf(ctx, "triage usecase: panic during run: %v", r)
			out = triage.HandleOutput{
				Reply:  triage.ReplyGenericError,
				Status: triage.StatusDone,
			}
		}
	}()

	if strings.TrimSpace(msg.Text) == "" {
		uc.l.Warnf(ctx, "triage usecase: %v", triage.ErrEmptyMessage)
		state.Status = triage.StatusDone
		state.Reply = triage.ReplyGenericError
		return terminal(state)
	}

	// received → classified
	category, err := uc.classify(ctx, msg.Text)
	if err != nil {
		uc.l.Errorf(ctx, "triage usecase: %v", err)
		state.Status = triage.StatusDone
		state.Reply = triage.ReplyGenericError
		return terminal(state)
	}
	state.Category = category
	state.Status = triage.StatusClassified

	switch category {
	case triage.CategorySpam:
		return uc.reject(ctx, state)
	case triage.CategorySaleInquiry:
		return uc.extractAndPersist(ctx, state)
	default:
		return uc.retrieveAndAnswer(ctx, state)
	}
}

// reject ends the spam path with a fixed polite decline. Whether spam is
// logged to the lead store for audit is deployment policy.
func (uc *implUseCase) reject(ctx context.Context, state *triage.RoutingState) triage.HandleOutput {
	state.Status = triage.StatusRejected
	state.Reply = triage.ReplySpamDeclined

	if uc.policy.PersistSpam {
		input := repository.SaveLeadInput{
			Message:  state.Message,
			Category: state.Category,
		}
		if err := uc.leads.SaveLead(ctx, input); err != nil {
			// Audit write only; the decline reply stands.
			uc.l.Errorf(ctx, "triage usecase: failed to log spam message: %v", err)
		}
	}

	return terminal(state)
}

// retrieveAndAnswer serves the question path.
func (uc *implUseCase) retrieveAndAnswer(ctx context.Context, state *triage.RoutingState) triage.HandleOutput {
	state.Status = triage.StatusRetrieving

	reply, passages, err := uc.answer(ctx, state.Message.Text)
	if err != nil {
		uc.l.Errorf(ctx, "triage usecase: %v", err)
		state.Status = triage.StatusDone
		state.Reply = triage.ReplyGenericError
		return terminal(state)
	}

	state.Passages = passages
	state.Status = triage.StatusAnswered
	state.Reply = reply
	return terminal(state)
}

// extractAndPersist serves the sale-inquiry path. The run proceeds to
// persistence regardless of whether extraction degraded: a partially empty
// record is preferable to losing the lead entirely.
func (uc *implUseCase) extractAndPersist(ctx context.Context, state *triage.RoutingState) triage.HandleOutput {
	state.Status = triage.StatusExtracting

	result := uc.extract(ctx, state.Message.Text)
	state.Record = &result.Record
	state.Degraded = result.Degraded

	input := repository.SaveLeadInput{
		Message:     state.Message,
		Category:    state.Category,
		ContactInfo: result.Record.ContactInfo,
		FullName:    result.Record.FullName,
		Product:     result.Record.Product,
		CaseNotes:   result.Record.CaseNotes,
	}

	if err := uc.leads.SaveLead(ctx, input); err != nil {
		// Never dress a lost lead up as a success.
		uc.l.Errorf(ctx, "triage usecase: %v: %v", triage.ErrPersistence, err)
		state.Status = triage.StatusDone
		state.Reply = triage.ReplyPersistFailed
		return terminal(state)
	}

	state.Status = triage.StatusPersisted
	state.Reply = triage.ReplyThankYou
	return terminal(state)
}

// terminal snapshots the run's outcome. Status keeps the last stage the
// run reached; a bare StatusDone means the run was cut short by a failure.
func terminal(state *triage.RoutingState) triage.HandleOutput {
	return triage.HandleOutput{
		Reply:    state.Reply,
		Category: state.Category,
		Status:   state.Status,
		Degraded: state.Degraded,
	}
}
