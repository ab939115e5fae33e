package render

import (
	"strconv"

	"github.com/dmitrymomot/mailblocks/pkg/block"
	"github.com/dmitrymomot/mailblocks/pkg/inline"
	"github.com/dmitrymomot/mailblocks/pkg/sanitize"
)

// RenderBlock produces the self-contained HTML table fragment for one body
// block. Defaults are substituted for absent optional attributes; nothing is
// validated or rejected here.
//
// Title and Paragraph content runs through the inline token expander.
// HighlightBox content does not: the editor has never offered formatting
// tokens inside highlight boxes, and expanding them there would change the
// rendered output of existing stored documents. Button labels and image alt
// text are plain text by contract and are entity-escaped only.
func RenderBlock(b block.Block) string {
	switch v := b.(type) {
	case block.Title:
		return renderTitle(v)
	case block.Paragraph:
		return renderParagraph(v)
	case block.Image:
		return renderImage(v)
	case block.Button:
		return renderButton(v)
	case block.Divider:
		return renderDivider(v)
	case block.HighlightBox:
		return renderHighlightBox(v)
	default:
		return ""
	}
}

func renderTitle(b block.Title) string {
	color := defaultColor(b.Color, "#0F172A")
	size := defaultInt(b.FontSize, 24)
	align := defaultAlign(b.Align, block.AlignLeft)
	spacing := defaultInt(b.SpacingBottom, 16)

	return `<table role="presentation" width="100%" cellpadding="0" cellspacing="0" border="0"><tr>` +
		`<td style="padding:0 0 ` + px(spacing) + ` 0;text-align:` + string(align) +
		`;color:` + color + `;font-size:` + px(size) + `;line-height:1.3;font-weight:700;font-family:` + fontStack + `;">` +
		inline.Expand(b.Content) +
		`</td></tr></table>`
}

func renderParagraph(b block.Paragraph) string {
	color := defaultColor(b.Color, "#334155")
	size := defaultInt(b.FontSize, 15)
	lineHeight := defaultFloat(b.LineHeight, 1.6)
	align := defaultAlign(b.Align, block.AlignLeft)
	spacing := defaultInt(b.SpacingBottom, 16)

	return `<table role="presentation" width="100%" cellpadding="0" cellspacing="0" border="0"><tr>` +
		`<td style="padding:0 0 ` + px(spacing) + ` 0;text-align:` + string(align) +
		`;color:` + color + `;font-size:` + px(size) + `;line-height:` + floatAttr(lineHeight) +
		`;font-family:` + fontStack + `;">` +
		inline.Expand(b.Content) +
		`</td></tr></table>`
}

func renderImage(b block.Image) string {
	width := defaultInt(b.Width, 560)
	align := defaultAlign(b.Align, block.AlignCenter)
	spacing := defaultInt(b.SpacingBottom, 16)

	return `<table role="presentation" width="100%" cellpadding="0" cellspacing="0" border="0"><tr>` +
		`<td align="` + string(align) + `" style="padding:0 0 ` + px(spacing) + ` 0;">` +
		`<img src="` + attrURL(b.Src) + `" alt="` + sanitize.EscapeHTML(b.Alt) + `" width="` + strconv.Itoa(width) +
		`" style="display:block;border:0;outline:none;max-width:100%;height:auto;" />` +
		`</td></tr></table>`
}

func renderButton(b block.Button) string {
	background := defaultColor(b.BackgroundColor, "#008867")
	textColor := defaultColor(b.TextColor, "#FFFFFF")
	radius := defaultInt(b.BorderRadius, 6)
	align := defaultAlign(b.Align, block.AlignCenter)
	spacing := defaultInt(b.SpacingBottom, 16)

	return `<table role="presentation" width="100%" cellpadding="0" cellspacing="0" border="0"><tr>` +
		`<td align="` + string(align) + `" style="padding:0 0 ` + px(spacing) + ` 0;">` +
		`<table role="presentation" cellpadding="0" cellspacing="0" border="0"><tr>` +
		`<td style="background-color:` + background + `;border-radius:` + px(radius) + `;">` +
		`<a href="` + attrURL(b.URL) + `" target="_blank" rel="noopener noreferrer" style="display:inline-block;padding:12px 24px;color:` +
		textColor + `;font-size:15px;font-weight:600;text-decoration:none;font-family:` + fontStack + `;">` +
		sanitize.EscapeHTML(b.Label) +
		`</a></td></tr></table>` +
		`</td></tr></table>`
}

func renderDivider(b block.Divider) string {
	color := defaultColor(b.Color, "#E2E8F0")
	thickness := defaultInt(b.Thickness, 1)
	top := defaultInt(b.SpacingTop, 8)
	bottom := defaultInt(b.SpacingBottom, 8)

	return `<table role="presentation" width="100%" cellpadding="0" cellspacing="0" border="0"><tr>` +
		`<td style="padding:` + px(top) + ` 0 ` + px(bottom) + ` 0;">` +
		`<table role="presentation" width="100%" cellpadding="0" cellspacing="0" border="0"><tr>` +
		`<td style="border-top:` + px(thickness) + ` solid ` + color + `;font-size:0;line-height:0;">&nbsp;</td>` +
		`</tr></table>` +
		`</td></tr></table>`
}

func renderHighlightBox(b block.HighlightBox) string {
	background := defaultColor(b.BackgroundColor, "#F0FDF4")
	border := defaultColor(b.BorderColor, "#008867")
	textColor := defaultColor(b.TextColor, "#14532D")
	spacing := defaultInt(b.SpacingBottom, 16)

	return `<table role="presentation" width="100%" cellpadding="0" cellspacing="0" border="0"><tr>` +
		`<td style="padding:0 0 ` + px(spacing) + ` 0;">` +
		`<table role="presentation" width="100%" cellpadding="0" cellspacing="0" border="0"><tr>` +
		`<td style="background-color:` + background + `;border-left:4px solid ` + border +
		`;border-radius:4px;padding:16px 20px;color:` + textColor +
		`;font-size:15px;line-height:1.6;font-family:` + fontStack + `;">` +
		b.Content +
		`</td></tr></table>` +
		`</td></tr></table>`
}
