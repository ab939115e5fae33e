package sanitize

import "strings"

// escapeSeq maps each HTML-significant byte to its entity. The forward slash
// is included so that even attribute-context injections like </script> cannot
// be reassembled from escaped output; the stdlib html package stops at five
// characters, which is why this is hand-rolled.
var escapeSeq = map[byte]string{
	'&':  "&amp;",
	'<':  "&lt;",
	'>':  "&gt;",
	'"':  "&quot;",
	'\'': "&#39;",
	'/':  "&#x2F;",
}

// EscapeHTML replaces the six HTML-significant characters with their entity
// equivalents. Each character is replaced independently and exactly once;
// input is assumed raw, so already-escaped entities get their ampersand
// escaped again.
func EscapeHTML(s string) string {
	var sb strings.Builder
	start := 0
	for i := 0; i < len(s); i++ {
		seq, ok := escapeSeq[s[i]]
		if !ok {
			continue
		}
		if sb.Cap() == 0 {
			sb.Grow(len(s) + 16)
		}
		sb.WriteString(s[start:i])
		sb.WriteString(seq)
		start = i + 1
	}
	if start == 0 {
		return s
	}
	sb.WriteString(s[start:])
	return sb.String()
}

// namedEntities is the small set of common entities DecodeEntities restores.
// A full entity table is deliberately out of scope; these cover the mixed
// raw/encoded input seen from rich-text editors.
var namedEntities = []struct{ entity, char string }{
	{"&lt;", "<"},
	{"&gt;", ">"},
	{"&quot;", "\""},
	{"&#34;", "\""},
	{"&#39;", "'"},
	{"&apos;", "'"},
	{"&#x2F;", "/"},
	{"&#47;", "/"},
	{"&nbsp;", " "},
	// Ampersand last so it cannot manufacture new entities out of the
	// replacements above.
	{"&amp;", "&"},
	{"&#38;", "&"},
}

// DecodeEntities converts the common named entities back to characters.
// Used to normalize mixed raw/encoded input before it is re-escaped at a
// later stage.
func DecodeEntities(s string) string {
	if !strings.Contains(s, "&") {
		return s
	}
	for _, e := range namedEntities {
		s = strings.ReplaceAll(s, e.entity, e.char)
	}
	return s
}
