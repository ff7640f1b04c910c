package triage

import "strings"

// Substring labels matched in the classifier reply. The order is a named
// policy: spam before sale inquiry before the question default.
var (
	labelsSpam = []string{"спам", "spam"}
	labelsSale = []string{"заявка", "sale"}
)

// NormalizeLabel maps a free-text classifier reply to a Category.
// This is a containment match, not an exact match: the model may wrap the
// label in extra words and still classify correctly. Replies matching no
// label fall through to question, the safe default, so a message is never
// dropped as spam unless explicitly labeled.
func NormalizeLabel(raw string) Category {
	reply := strings.ToLower(raw)

	for _, label := range labelsSpam {
		if strings.Contains(reply, label) {
			return CategorySpam
		}
	}
	for _, label := range labelsSale {
		if strings.Contains(reply, label) {
			return CategorySaleInquiry
		}
	}
	return CategoryQuestion
}
