package sanitize

import (
	"regexp"
	"strconv"
	"strings"
)

// personalizationTokens is the closed set of {{...}} names that survive
// sanitization verbatim. Anything else matching the bare-token shape is
// silently dropped; tokens with a colon or slash (the inline formatting
// namespace) never match bareTokenRE in the first place.
var personalizationTokens = map[string]struct{}{
	"firstName": {},
	"lastName":  {},
	"email":     {},
}

// bareTokenRE matches {{identifier}} only. The character class excludes ':'
// and '/', keeping {{bold:#fff}} and {{/bold}} out of this extraction stage.
var bareTokenRE = regexp.MustCompile(`\{\{\s*([a-zA-Z][a-zA-Z0-9_]*)\s*\}\}`)

// SanitizeContent is the entry point for rich-text block content: it lifts
// personalization tokens out of the way, runs the HTML whitelist sanitizer,
// and puts the original token text back. Non-whitelisted bare {{...}} tokens
// are dropped during extraction.
func SanitizeContent(input string, allowedTags []string) string {
	extracted, kept := extractPersonalization(input)
	out := SanitizeHTML(extracted, allowedTags)
	return restorePersonalization(out, kept)
}

// extractPersonalization replaces whitelisted tokens with counter-suffixed
// markers that are guaranteed absent from user text: NUL bytes are stripped
// from the input first, and the markers are NUL-delimited.
func extractPersonalization(s string) (string, []string) {
	s = strings.ReplaceAll(s, "\x00", "")
	if !strings.Contains(s, "{{") {
		return s, nil
	}
	var kept []string
	out := bareTokenRE.ReplaceAllStringFunc(s, func(m string) string {
		name := bareTokenRE.FindStringSubmatch(m)[1]
		if _, ok := personalizationTokens[name]; !ok {
			return ""
		}
		kept = append(kept, m)
		return marker(len(kept) - 1)
	})
	return out, kept
}

func restorePersonalization(s string, kept []string) string {
	for i, tok := range kept {
		s = strings.Replace(s, marker(i), tok, 1)
	}
	return s
}

func marker(i int) string {
	return "\x00pt" + strconv.Itoa(i) + "\x00"
}
