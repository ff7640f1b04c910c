package triage_test

import (
	"testing"

	"message-triage-assistant/internal/triage"
)

func TestNormalizeLabel(t *testing.T) {
	cases := []struct {
		name  string
		reply string
		want  triage.Category
	}{
		{"Bare Russian Spam", "спам", triage.CategorySpam},
		{"Uppercase Spam With Surrounding Text", "Это определенно СПАМ сообщение", triage.CategorySpam},
		{"English Spam", "This looks like SPAM to me", triage.CategorySpam},
		{"Bare Sale Label", "заявка", triage.CategorySaleInquiry},
		{"Sale With Punctuation", "Метка: Заявка.", triage.CategorySaleInquiry},
		{"English Sale", "sale inquiry", triage.CategorySaleInquiry},
		{"Question Label", "вопрос", triage.CategoryQuestion},
		{"Unknown Text Defaults To Question", "нейтральный текст", triage.CategoryQuestion},
		{"Empty Reply Defaults To Question", "", triage.CategoryQuestion},
		{"Spam Takes Precedence Over Sale", "это спам, а не заявка", triage.CategorySpam},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := triage.NormalizeLabel(tc.reply); got != tc.want {
				t.Errorf("NormalizeLabel(%q) = %s, want %s", tc.reply, got, tc.want)
			}
		})
	}
}
