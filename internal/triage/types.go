package triage

import "message-triage-assistant/internal/model"

// Category is the triage label assigned to a message.
// It is derived once per message and never revised within a run.
type Category string

const (
	CategorySpam        Category = "spam"
	CategoryQuestion    Category = "question"
	CategorySaleInquiry Category = "sale_inquiry"
)

// Status is the state of a triage run.
type Status string

const (
	StatusReceived   Status = "received"
	StatusClassified Status = "classified"
	StatusRetrieving Status = "retrieving"
	StatusExtracting Status = "extracting"
	StatusRejected   Status = "rejected"
	StatusAnswered   Status = "answered"
	StatusPersisted  Status = "persisted"
	StatusDone       Status = "done"
)

// ExtractionMode selects the structured-extraction prompt schema.
type ExtractionMode string

const (
	// ExtractionModeLead asks for {contact_info, fio, product}.
	ExtractionModeLead ExtractionMode = "lead"
	// ExtractionModeCaseNotes asks for a single free-text {case_data} summary.
	ExtractionModeCaseNotes ExtractionMode = "case_notes"
)

// ExtractedRecord holds structured fields pulled from a sale-inquiry message.
// Nil means the field was not discoverable in the text, never a fabricated
// guess. Values are untrusted free text; validation is advisory only and is
// performed by the model, not here.
type ExtractedRecord struct {
	ContactInfo *string `json:"contact_info"`
	FullName    *string `json:"fio"`
	Product     *string `json:"product"`
	CaseNotes   *string `json:"case_data"`
}

// Empty reports whether no field was extracted.
func (r ExtractedRecord) Empty() bool {
	return r.ContactInfo == nil && r.FullName == nil && r.Product == nil && r.CaseNotes == nil
}

// ExtractionResult pairs the record with a degraded flag.
// Degraded means the model reply could not be parsed and the record is empty;
// it is distinguishable from a genuinely empty-but-valid record.
type ExtractionResult struct {
	Record   ExtractedRecord
	Degraded bool
}

// Passage is one retrieved knowledge-base snippet.
type Passage struct {
	Content string
	Title   string
	Score   float64
}

// RoutingState is the transient state threaded through one triage run.
// Stages only add fields, never erase prior ones. It is per-run and is
// discarded after the reply is sent.
type RoutingState struct {
	Message  model.Message
	Category Category
	Passages []Passage
	Record   *ExtractedRecord
	Degraded bool
	Status   Status
	Reply    string
}

// HandleOutput is the terminal result of a triage run. Reply is non-empty
// on every path. Status is the last stage the run reached (rejected,
// answered or persisted); a bare StatusDone means the run was cut short
// by a failure.
type HandleOutput struct {
	Reply    string
	Category Category
	Status   Status
	Degraded bool
}

// Policy holds routing policy knobs that are deployment configuration,
// not structural requirements.
type Policy struct {
	ExtractionMode ExtractionMode
	PersistSpam    bool // log spam to the lead store for audit
	RetrieveTopK   int  // passages fetched on the question path
}
