package sanitize

import "strings"

// dangerousTags are dropped entirely, both open and close instances,
// regardless of the caller's whitelist.
var dangerousTags = map[string]struct{}{
	"script": {}, "iframe": {}, "object": {}, "embed": {}, "applet": {},
	"form": {}, "input": {}, "button": {}, "textarea": {}, "select": {},
	"option": {}, "style": {}, "link": {}, "meta": {}, "base": {},
	"frame": {}, "frameset": {}, "svg": {}, "math": {},
}

// dangerousAttrs are dropped from allowed tags in addition to any attribute
// whose name starts with "on".
var dangerousAttrs = map[string]struct{}{
	"style": {}, "class": {}, "id": {}, "srcset": {}, "formaction": {},
	"background": {}, "action": {},
}

// allowedAttrs is the per-tag attribute whitelist. Tags absent from this map
// keep no attributes at all.
var allowedAttrs = map[string]map[string]struct{}{
	"a":   {"href": {}},
	"img": {"src": {}, "alt": {}, "width": {}, "height": {}},
}

// urlAttrs get their values gated through IsValidProtocol; an invalid value
// drops the attribute, it is never just escaped.
var urlAttrs = map[string]struct{}{"href": {}, "src": {}}

var voidTags = map[string]struct{}{"br": {}, "hr": {}, "img": {}}

// DropKind classifies an entry in the sanitizer's drop report.
type DropKind string

const (
	DroppedTag       DropKind = "tag"
	DroppedAttribute DropKind = "attribute"
	DroppedToken     DropKind = "token"
)

// Dropped is one neutralized item from a sanitization pass. The primary
// string result never changes based on whether the report is requested; the
// report exists purely for observability and auditing.
type Dropped struct {
	Kind  DropKind
	Name  string
	Value string
}

// SanitizeHTML converts a string possibly containing HTML markup into a
// string containing only tags from allowedTags, with all text nodes
// entity-escaped and attributes filtered per the package whitelists.
//
// The input is tokenized in a single linear pass. Dropped tags take only
// their markup with them; inner text survives escaped. A trailing unmatched
// '<' is treated as literal text.
func SanitizeHTML(input string, allowedTags []string) string {
	out, _ := sanitizeScan(input, tagSet(allowedTags), false)
	return out
}

// SanitizeHTMLReport is SanitizeHTML with a side-channel listing every tag
// and attribute that was dropped.
func SanitizeHTMLReport(input string, allowedTags []string) (string, []Dropped) {
	return sanitizeScan(input, tagSet(allowedTags), true)
}

// StripAllHTML removes every tag unconditionally and decodes the common
// named entities, returning plain text. Used for block fields that permit no
// markup at all, such as button labels and image alt text. The result is not
// escaped; callers re-escape at render time.
func StripAllHTML(input string) string {
	var sb strings.Builder
	i := 0
	for i < len(input) {
		lt := strings.IndexByte(input[i:], '<')
		if lt < 0 {
			sb.WriteString(input[i:])
			break
		}
		lt += i
		sb.WriteString(input[i:lt])
		gt := strings.IndexByte(input[lt:], '>')
		if gt < 0 {
			sb.WriteString(input[lt:])
			break
		}
		gt += lt
		if _, ok := parseTag(input[lt+1 : gt]); !ok {
			// Not tag-like ("a < b" and similar); keep the text.
			sb.WriteString(input[lt : gt+1])
		}
		i = gt + 1
	}
	return DecodeEntities(sb.String())
}

func tagSet(tags []string) map[string]struct{} {
	m := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		m[strings.ToLower(t)] = struct{}{}
	}
	return m
}

func sanitizeScan(input string, allowed map[string]struct{}, collect bool) (string, []Dropped) {
	var sb strings.Builder
	var report []Dropped
	sb.Grow(len(input))

	i := 0
	for i < len(input) {
		lt := strings.IndexByte(input[i:], '<')
		if lt < 0 {
			sb.WriteString(EscapeHTML(input[i:]))
			break
		}
		lt += i
		sb.WriteString(EscapeHTML(input[i:lt]))

		gt := strings.IndexByte(input[lt:], '>')
		if gt < 0 {
			// Unterminated tag: no unbounded scanning, the rest is text.
			sb.WriteString(EscapeHTML(input[lt:]))
			break
		}
		gt += lt
		raw := input[lt+1 : gt]
		i = gt + 1

		tag, ok := parseTag(raw)
		if !ok {
			sb.WriteString(EscapeHTML(input[lt : gt+1]))
			continue
		}

		if _, bad := dangerousTags[tag.name]; bad {
			if collect {
				report = append(report, Dropped{Kind: DroppedTag, Name: tag.name, Value: raw})
			}
			continue
		}
		if _, ok := allowed[tag.name]; !ok {
			if collect {
				report = append(report, Dropped{Kind: DroppedTag, Name: tag.name, Value: raw})
			}
			continue
		}

		if tag.closing {
			sb.WriteString("</")
			sb.WriteString(tag.name)
			sb.WriteByte('>')
			continue
		}

		sb.WriteByte('<')
		sb.WriteString(tag.name)
		for _, a := range tag.attrs {
			kept, why := filterAttr(tag.name, a)
			if !kept {
				if collect {
					report = append(report, Dropped{Kind: DroppedAttribute, Name: why, Value: a.value})
				}
				continue
			}
			sb.WriteByte(' ')
			sb.WriteString(a.name)
			sb.WriteString(`="`)
			sb.WriteString(EscapeHTML(a.value))
			sb.WriteByte('"')
		}
		if _, void := voidTags[tag.name]; void {
			sb.WriteString(" />")
		} else {
			sb.WriteByte('>')
		}
	}

	return sb.String(), report
}

// filterAttr reports whether the attribute survives on the given tag. The
// second return names the dropped attribute (qualified with the tag) for the
// report.
func filterAttr(tag string, a attribute) (bool, string) {
	name := tag + "." + a.name
	if strings.HasPrefix(a.name, "on") {
		return false, name
	}
	if _, bad := dangerousAttrs[a.name]; bad {
		return false, name
	}
	whitelist, ok := allowedAttrs[tag]
	if !ok {
		return false, name
	}
	if _, ok := whitelist[a.name]; !ok {
		return false, name
	}
	if _, isURL := urlAttrs[a.name]; isURL && !IsValidProtocol(a.value) {
		return false, name
	}
	return true, ""
}

type attribute struct {
	name  string
	value string
}

type parsedTag struct {
	name    string
	closing bool
	attrs   []attribute
}

// parseTag interprets the text between '<' and '>'. It returns false when
// the content is not tag-like (no leading letter), in which case the caller
// treats the whole span as literal text.
func parseTag(raw string) (parsedTag, bool) {
	var t parsedTag
	s := strings.TrimSpace(raw)
	s = strings.TrimSuffix(s, "/") // self-closing slash carries no meaning here

	if strings.HasPrefix(s, "/") {
		t.closing = true
		s = strings.TrimSpace(s[1:])
	}

	end := 0
	for end < len(s) && isTagNameChar(s[end], end == 0) {
		end++
	}
	if end == 0 {
		return t, false
	}
	t.name = strings.ToLower(s[:end])
	if t.closing {
		return t, true
	}

	t.attrs = parseAttrs(s[end:])
	return t, true
}

func isTagNameChar(c byte, first bool) bool {
	if c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' {
		return true
	}
	return !first && c >= '0' && c <= '9'
}

// parseAttrs scans name, name=value, name="value" and name='value' pairs.
// Attribute names are lowercased; unclosed quotes consume the rest of the
// tag body, which matches browser recovery closely enough for filtering.
func parseAttrs(s string) []attribute {
	var attrs []attribute
	i := 0
	for i < len(s) {
		for i < len(s) && isSpace(s[i]) {
			i++
		}
		if i >= len(s) {
			break
		}
		start := i
		for i < len(s) && !isSpace(s[i]) && s[i] != '=' {
			i++
		}
		name := strings.ToLower(s[start:i])
		if name == "" {
			i++
			continue
		}
		for i < len(s) && isSpace(s[i]) {
			i++
		}
		if i >= len(s) || s[i] != '=' {
			attrs = append(attrs, attribute{name: name})
			continue
		}
		i++ // skip '='
		for i < len(s) && isSpace(s[i]) {
			i++
		}
		var value string
		if i < len(s) && (s[i] == '"' || s[i] == '\'') {
			quote := s[i]
			i++
			vStart := i
			for i < len(s) && s[i] != quote {
				i++
			}
			value = s[vStart:i]
			if i < len(s) {
				i++ // closing quote
			}
		} else {
			vStart := i
			for i < len(s) && !isSpace(s[i]) {
				i++
			}
			value = s[vStart:i]
		}
		attrs = append(attrs, attribute{name: name, value: value})
	}
	return attrs
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
