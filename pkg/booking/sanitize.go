package booking

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

// maxSanitizePasses bounds how many entity layers are peeled off free text.
const maxSanitizePasses = 4

// sanitizeText strips any markup from free text. The payload carries plain
// text, so entities are decoded after each pass and the text is sanitised
// again until it stops changing. Markup hidden behind entities is removed
// the same way as literal markup.
func sanitizeText(raw string) string {
	text := strings.TrimSpace(raw)
	if text == "" {
		return ""
	}
	policy := textSanitizer()
	for i := 0; i < maxSanitizePasses; i++ {
		next := strings.TrimSpace(html.UnescapeString(policy.Sanitize(text)))
		if next == text {
			return text
		}
		text = next
	}
	// Still decoding after the last pass: keep it escaped.
	return strings.TrimSpace(policy.Sanitize(text))
}

func textSanitizer() *bluemonday.Policy {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return textPolicy
}
