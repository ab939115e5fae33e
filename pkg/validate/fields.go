package validate

import (
	"fmt"

	"github.com/dmitrymomot/mailblocks/pkg/block"
	"github.com/dmitrymomot/mailblocks/pkg/inline"
	"github.com/dmitrymomot/mailblocks/pkg/sanitize"
)

// checkFields runs the per-variant field rules. Each variant's optional
// fields are enumerated statically here rather than probed dynamically, so
// adding a field without a rule shows up in review, not at runtime.
//
// Color findings are warnings: the renderer substitutes defaults for values
// it cannot use, so a bad color degrades the email without breaking it.
// URL findings are errors because sanitization would reject the block
// outright.
func checkFields(b block.Block) Errors {
	var errs Errors

	color := func(field, value string) {
		if value != "" && !inline.IsHexColor(value) {
			errs = append(errs, Error{
				Code:     CodeInvalidColor,
				Message:  fmt.Sprintf("%s is not a valid hex color: %q", field, value),
				Severity: SeverityWarning,
				BlockID:  b.BlockID(),
			})
		}
	}
	content := func(field, value string) {
		if value == "" {
			errs = append(errs, Error{
				Code:     CodeEmptyContent,
				Message:  field + " is empty",
				Severity: SeverityWarning,
				BlockID:  b.BlockID(),
			})
		}
	}

	switch v := b.(type) {
	case block.Title:
		content("title content", v.Content)
		color("title color", v.Color)
	case block.Paragraph:
		content("paragraph content", v.Content)
		color("paragraph color", v.Color)
	case block.Image:
		if !sanitize.IsValidURL(v.Src, false) {
			errs = append(errs, Error{
				Code:     CodeInvalidURL,
				Message:  fmt.Sprintf("image src is not a valid url: %q", v.Src),
				Severity: SeverityError,
				BlockID:  v.ID,
			})
		}
	case block.Button:
		content("button label", v.Label)
		color("button background color", v.BackgroundColor)
		color("button text color", v.TextColor)
		if !sanitize.IsValidProtocol(v.URL) {
			errs = append(errs, Error{
				Code:     CodeInvalidURL,
				Message:  fmt.Sprintf("button url is not a valid url: %q", v.URL),
				Severity: SeverityError,
				BlockID:  v.ID,
			})
		}
	case block.Divider:
		color("divider color", v.Color)
	case block.HighlightBox:
		content("highlight box content", v.Content)
		color("highlight box background color", v.BackgroundColor)
		color("highlight box border color", v.BorderColor)
		color("highlight box text color", v.TextColor)
	}

	return errs
}
