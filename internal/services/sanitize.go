package services

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// sanitizeText strips HTML markup from contact form text before it is
// forwarded by email. Input without markup is returned as is,
// and entities produced by the policy are decoded back to plain text.
func sanitizeText(input string) string {
	if !strings.ContainsAny(input, "<>") {
		return input
	}
	return strings.TrimSpace(html.UnescapeString(strictPolicy.Sanitize(input)))
}
