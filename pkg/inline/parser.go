package inline

import (
	"regexp"
	"strings"

	"github.com/dmitrymomot/mailblocks/pkg/sanitize"
)

// hexColorRE accepts #RGB and #RRGGBB. Anything else is not a color and the
// token degrades per its kind.
var hexColorRE = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// IsHexColor reports whether s is a #RGB or #RRGGBB hex color.
func IsHexColor(s string) bool {
	return hexColorRE.MatchString(s)
}

// linkDefaultColor and the weight constants are the anchor defaults; the
// bold modifier promotes the weight to 700.
const (
	linkDefaultColor = "#008867"
	weightNormal     = "400"
	weightSemibold   = "600"
	weightBold       = "700"
)

// Expand converts all inline formatting tokens in s to HTML. Pass order is
// fixed (bold, then style, then link) and each pass sees the previous
// pass's output. Unmatched or malformed tokens are left as literal text.
func Expand(s string) string {
	if !strings.Contains(s, "{{") {
		return s
	}
	s = expandKind(s, "bold", expandBold)
	s = expandKind(s, "style", expandStyle)
	s = expandKind(s, "link", expandLink)
	return s
}

// expandKind is a single linear scan-and-replace pass for one token kind.
// The expand callback returns the replacement and whether to apply it; false
// leaves the entire token, braces included, as literal text. Keyword
// matching is case-sensitive.
func expandKind(s, kind string, expand func(spec, content string) (string, bool)) string {
	open := "{{" + kind + ":"
	closing := "{{/" + kind + "}}"

	var sb strings.Builder
	i := 0
	for {
		start := strings.Index(s[i:], open)
		if start < 0 {
			break
		}
		start += i

		specEnd := strings.Index(s[start+len(open):], "}}")
		if specEnd < 0 {
			// Unterminated opener; everything from here on is literal.
			break
		}
		specEnd += start + len(open)
		spec := s[start+len(open) : specEnd]

		contentStart := specEnd + 2
		end := strings.Index(s[contentStart:], closing)
		if end < 0 {
			// Opener without a closing token stays literal; keep scanning
			// past it so a later well-formed token still expands.
			sb.WriteString(s[i:contentStart])
			i = contentStart
			continue
		}
		end += contentStart
		content := s[contentStart:end]

		replacement, ok := expand(spec, content)
		if !ok {
			replacement = s[start : end+len(closing)]
		}
		sb.WriteString(s[i:start])
		sb.WriteString(replacement)
		i = end + len(closing)
	}
	if i == 0 {
		return s
	}
	sb.WriteString(s[i:])
	return sb.String()
}

// expandBold handles {{bold:#HEX}}. An invalid color leaves the token
// completely unexpanded, a permissive fallback rather than an error.
func expandBold(spec, content string) (string, bool) {
	if !IsHexColor(spec) {
		return "", false
	}
	return `<span style="color:` + spec + `;font-weight:700;">` + content + `</span>`, true
}

// expandStyle handles {{style:mod|mod|...}} with modifiers normal, semibold,
// bold and color:#HEX. At least one recognized modifier is required, else
// the content is emitted unwrapped. The first weight keyword wins; later
// ones are ignored.
func expandStyle(spec, content string) (string, bool) {
	var styles []string
	weightSet := false
	for _, mod := range strings.Split(spec, "|") {
		mod = strings.TrimSpace(mod)
		switch {
		case mod == "normal" || mod == "semibold" || mod == "bold":
			if weightSet {
				continue
			}
			weightSet = true
			styles = append(styles, "font-weight:"+styleWeight(mod))
		case strings.HasPrefix(mod, "color:"):
			if c := mod[len("color:"):]; IsHexColor(c) {
				styles = append(styles, "color:"+c)
			}
		}
	}
	if len(styles) == 0 {
		return content, true
	}
	return `<span style="` + strings.Join(styles, ";") + `;">` + content + `</span>`, true
}

func styleWeight(keyword string) string {
	switch keyword {
	case "semibold":
		return weightSemibold
	case "bold":
		return weightBold
	default:
		return weightNormal
	}
}

// expandLink handles {{link:URL|mod|...}} with modifiers bold and
// color:#HEX. An invalid URL discards the wrapper and emits the content as
// plain text with no anchor and no error.
func expandLink(spec, content string) (string, bool) {
	parts := strings.Split(spec, "|")
	rawURL := strings.TrimSpace(parts[0])
	if !linkURLAllowed(rawURL) {
		return content, true
	}

	color := linkDefaultColor
	weight := weightSemibold
	for _, mod := range parts[1:] {
		mod = strings.TrimSpace(mod)
		switch {
		case mod == "bold":
			weight = weightBold
		case strings.HasPrefix(mod, "color:"):
			if c := mod[len("color:"):]; IsHexColor(c) {
				color = c
			}
		}
	}

	// The URL already passed the protocol whitelist; only the quote needs
	// neutralizing so the href attribute cannot be broken out of.
	href := strings.ReplaceAll(rawURL, `"`, "%22")

	return `<a href="` + href + `" style="color:` + color + `;text-decoration:none;font-weight:` + weight +
		`;" target="_blank" rel="noopener noreferrer">` + content + `</a>`, true
}

// linkURLAllowed applies the protocol whitelist. The explicit wa.me check is
// a redundant special case of the generic https rule, kept because WhatsApp
// deep links are called out separately in the product requirements.
func linkURLAllowed(raw string) bool {
	if strings.HasPrefix(strings.ToLower(raw), "https://wa.me/") {
		return true
	}
	return sanitize.IsValidProtocol(raw)
}
