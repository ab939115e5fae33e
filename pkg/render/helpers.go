package render

import (
	"strconv"
	"strings"

	"github.com/dmitrymomot/mailblocks/pkg/block"
	"github.com/dmitrymomot/mailblocks/pkg/inline"
)

// fontStack is the single font family used throughout; single quotes keep it
// embeddable in double-quoted style attributes.
const fontStack = "Arial,'Helvetica Neue',Helvetica,sans-serif"

func px(n int) string {
	return strconv.Itoa(n) + "px"
}

func floatAttr(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// defaultColor substitutes fallback unless v is a well-formed hex color.
// Color fields are the only free-form strings embedded in style attributes,
// so anything that is not a validated hex value never reaches the output.
func defaultColor(v, fallback string) string {
	if !inline.IsHexColor(v) {
		return fallback
	}
	return v
}

func defaultInt(v, fallback int) int {
	if v <= 0 {
		return fallback
	}
	return v
}

func defaultFloat(v, fallback float64) float64 {
	if v <= 0 {
		return fallback
	}
	return v
}

func defaultAlign(v, fallback block.Alignment) block.Alignment {
	switch v {
	case block.AlignLeft, block.AlignCenter, block.AlignRight:
		return v
	}
	return fallback
}

// attrURL neutralizes the double quote so a URL cannot break out of its
// attribute. URLs reach the renderer already gated by the protocol
// whitelist, so full entity escaping (which would mangle the slashes) is not
// needed.
func attrURL(u string) string {
	return strings.ReplaceAll(u, `"`, "%22")
}
