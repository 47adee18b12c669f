// internal/app/system/htmlsanitize/htmlsanitize.go

// Package htmlsanitize strips markup from untrusted text. Contact-form
// submissions are stored and later shown in admin tooling, so anything
// that looks like HTML is removed before the document is written.
package htmlsanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// strict removes every element and attribute; only text survives.
var strict = bluemonday.StrictPolicy()

// Clean returns s with all HTML elements removed and surrounding
// whitespace trimmed. Text content inside removed elements is kept
// (except script/style bodies, which are dropped entirely).
func Clean(s string) string {
	return strings.TrimSpace(strict.Sanitize(s))
}

// CleanAll applies Clean to every string in the slice, dropping entries
// that are empty after cleaning.
func CleanAll(in []string) []string {
	if len(in) == 0 {
		return in
	}
	out := make([]string, 0, len(in))
	for _, s := range in {
		if c := Clean(s); c != "" {
			out = append(out, c)
		}
	}
	return out
}
