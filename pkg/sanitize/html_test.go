package sanitize_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/mailblocks/pkg/sanitize"
)

func TestSanitizeHTML(t *testing.T) {
	inlineTags := []string{"strong", "b", "em", "i", "u", "a", "br"}

	tests := []struct {
		name     string
		input    string
		allowed  []string
		expected string
	}{
		{
			name:     "keeps allowed tags",
			input:    "<strong>bold</strong> and <em>italic</em>",
			allowed:  inlineTags,
			expected: "<strong>bold</strong> and <em>italic</em>",
		},
		{
			name:     "drops script tag markup",
			input:    "before<script>alert(1)</script>after",
			allowed:  inlineTags,
			expected: "beforealert(1)after",
		},
		{
			name:     "drops uppercase script tag",
			input:    "<SCRIPT>x</SCRIPT>done",
			allowed:  inlineTags,
			expected: "xdone",
		},
		{
			name:     "drops disallowed tag but keeps inner text",
			input:    "<div>content survives</div>",
			allowed:  inlineTags,
			expected: "content survives",
		},
		{
			name:     "escapes plain text between tags",
			input:    "<b>a & b</b>",
			allowed:  inlineTags,
			expected: "<b>a &amp; b</b>",
		},
		{
			name:     "drops event handler attributes",
			input:    `<b onclick="steal()">x</b>`,
			allowed:  inlineTags,
			expected: "<b>x</b>",
		},
		{
			name:     "drops style class and id attributes",
			input:    `<b style="color:red" class="c" id="i">x</b>`,
			allowed:  inlineTags,
			expected: "<b>x</b>",
		},
		{
			name:     "keeps href with valid protocol",
			input:    `<a href="https://example.com">link</a>`,
			allowed:  inlineTags,
			expected: `<a href="https:&#x2F;&#x2F;example.com">link</a>`,
		},
		{
			name:     "drops href with javascript protocol",
			input:    `<a href="javascript:alert(1)">link</a>`,
			allowed:  inlineTags,
			expected: "<a>link</a>",
		},
		{
			name:     "drops non-whitelisted attribute on anchor",
			input:    `<a href="https://e.co" target="_blank">x</a>`,
			allowed:  inlineTags,
			expected: `<a href="https:&#x2F;&#x2F;e.co">x</a>`,
		},
		{
			name:     "normalizes tag name case",
			input:    "<B>x</B>",
			allowed:  inlineTags,
			expected: "<b>x</b>",
		},
		{
			name:     "renders br as void",
			input:    "a<br>b",
			allowed:  inlineTags,
			expected: "a<br />b",
		},
		{
			name:     "trailing unmatched angle bracket is literal",
			input:    "a < b",
			allowed:  inlineTags,
			expected: "a &lt; b",
		},
		{
			name:     "unterminated tag at end of string is literal",
			input:    "text <b unclosed",
			allowed:  inlineTags,
			expected: "text &lt;b unclosed",
		},
		{
			name:     "non-tag angle bracket pair is literal",
			input:    "1 < 2 > 0",
			allowed:  inlineTags,
			expected: "1 &lt; 2 &gt; 0",
		},
		{
			name:     "empty whitelist strips everything",
			input:    "<b>x</b><i>y</i>",
			allowed:  nil,
			expected: "xy",
		},
		{
			name:     "iframe dropped regardless of whitelist",
			input:    `<iframe src="https://evil.example"></iframe>rest`,
			allowed:  []string{"iframe"},
			expected: "rest",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitize.SanitizeHTML(tt.input, tt.allowed))
		})
	}
}

// Whitelist closure: no dangerous tag survives sanitization in any casing.
func TestSanitizeHTMLDangerousClosure(t *testing.T) {
	dangerous := []string{"script", "iframe", "object", "embed", "form", "input", "button", "textarea", "style", "link", "meta", "base"}
	for _, tag := range dangerous {
		t.Run(tag, func(t *testing.T) {
			input := "x<" + tag + ` a="b">y</` + tag + ">z"
			out := sanitize.SanitizeHTML(input, []string{"b", "a"})
			assert.NotContains(t, strings.ToLower(out), "<"+tag)
			assert.NotContains(t, strings.ToLower(out), "</"+tag)
		})
	}
}

func TestSanitizeHTMLReport(t *testing.T) {
	input := `<div><b onclick="x()">keep</b></div><script>drop</script>`
	out, report := sanitize.SanitizeHTMLReport(input, []string{"b"})
	assert.Equal(t, "<b>keep</b>drop", out)

	var tags, attrs int
	for _, d := range report {
		switch d.Kind {
		case sanitize.DroppedTag:
			tags++
		case sanitize.DroppedAttribute:
			attrs++
		}
	}
	assert.Equal(t, 4, tags) // div, /div, script, /script
	assert.Equal(t, 1, attrs)

	// The primary result is identical without the report.
	assert.Equal(t, out, sanitize.SanitizeHTML(input, []string{"b"}))
}

func TestStripAllHTML(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "removes all tags",
			input:    "<b>bold</b> and <a href='x'>link</a>",
			expected: "bold and link",
		},
		{
			name:     "decodes common entities",
			input:    "a &amp; b &lt;ok&gt;",
			expected: "a & b <ok>",
		},
		{
			name:     "keeps non-tag angle brackets",
			input:    "1 < 2",
			expected: "1 < 2",
		},
		{
			name:     "keeps trailing unterminated bracket",
			input:    "text <b oops",
			expected: "text <b oops",
		},
		{
			name:     "plain text unchanged",
			input:    "hello",
			expected: "hello",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitize.StripAllHTML(tt.input))
		})
	}
}
