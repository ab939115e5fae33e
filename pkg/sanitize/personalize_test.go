package sanitize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/mailblocks/pkg/sanitize"
)

func TestSanitizeContent(t *testing.T) {
	tags := []string{"strong", "b", "em", "i", "u", "a", "br"}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "personalization tokens survive untouched",
			input:    "Hi {{firstName}} {{lastName}}!",
			expected: "Hi {{firstName}} {{lastName}}!",
		},
		{
			name:     "email token survives",
			input:    "Sent to {{email}}",
			expected: "Sent to {{email}}",
		},
		{
			name:     "unknown bare token is dropped",
			input:    "Hi {{hacker}}!",
			expected: "Hi !",
		},
		{
			name:     "inline formatting tokens pass through the extraction stage",
			input:    "{{bold:#008867}}x{{/bold}} and {{firstName}}",
			expected: "{{bold:#008867}}x{{/bold}} and {{firstName}}",
		},
		{
			name:     "closing token slash never matches extraction",
			input:    "{{/bold}}",
			expected: "{{/bold}}",
		},
		{
			name:     "tokens survive alongside html sanitization",
			input:    "<div>Hi {{firstName}}</div><script>x</script>",
			expected: "Hi {{firstName}}x",
		},
		{
			name:     "token inside allowed tag",
			input:    "<strong>{{firstName}}</strong>",
			expected: "<strong>{{firstName}}</strong>",
		},
		{
			name:     "repeated tokens restored in order",
			input:    "{{firstName}} {{firstName}} {{lastName}}",
			expected: "{{firstName}} {{firstName}} {{lastName}}",
		},
		{
			name:     "token with inner spacing preserved verbatim",
			input:    "Hi {{ firstName }}",
			expected: "Hi {{ firstName }}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitize.SanitizeContent(tt.input, tags))
		})
	}
}
