package render

import (
	"strconv"
	"strings"

	"github.com/dmitrymomot/mailblocks/pkg/block"
	"github.com/dmitrymomot/mailblocks/pkg/sanitize"
)

// contentWidth is the fixed width of the email column. 600px is the widest
// layout that renders without horizontal scrolling in the desktop clients
// this output targets.
const contentWidth = 600

// RenderDocument serializes doc into one complete HTML document string,
// ready to hand to an email transport or an iframe preview.
//
// Sections are concatenated in fixed order: boilerplate, header, body
// blocks, optional help section, compliance (always), footer. The assembler
// performs no sanitization or token parsing itself; block renderers handle
// that, and section text is escaped where embedded. A document with zero
// body blocks still yields a complete, well-formed skeleton.
func RenderDocument(doc block.EmailDocument) string {
	var sb strings.Builder
	sb.Grow(4096)

	sb.WriteString(`<!DOCTYPE html>`)
	sb.WriteString(`<html lang="en">`)
	sb.WriteString(`<head>`)
	sb.WriteString(`<meta charset="utf-8" />`)
	sb.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1.0" />`)
	sb.WriteString(`<meta http-equiv="X-UA-Compatible" content="IE=edge" />`)
	sb.WriteString(`<title>` + sanitize.EscapeHTML(doc.Subject) + `</title>`)
	// Minimal reset; everything else is inline-styled for client support.
	sb.WriteString(`<style>body{margin:0;padding:0;}table{border-collapse:collapse;}img{-ms-interpolation-mode:bicubic;}</style>`)
	sb.WriteString(`</head>`)
	sb.WriteString(`<body style="margin:0;padding:0;background-color:#F1F5F9;">`)

	sb.WriteString(`<table role="presentation" width="100%" cellpadding="0" cellspacing="0" border="0" style="background-color:#F1F5F9;"><tr><td align="center" style="padding:0 12px;">`)
	sb.WriteString(`<table role="presentation" width="` + strconv.Itoa(contentWidth) + `" cellpadding="0" cellspacing="0" border="0" style="width:` + px(contentWidth) + `;max-width:100%;">`)

	sb.WriteString(`<tr><td>`)
	sb.WriteString(renderHeader(doc.Header))
	sb.WriteString(`</td></tr>`)

	sb.WriteString(`<tr><td style="background-color:#FFFFFF;border-radius:8px;padding:32px 20px;">`)
	for _, b := range doc.Blocks {
		sb.WriteString(RenderBlock(b))
	}
	sb.WriteString(renderHelp(doc.Help))
	sb.WriteString(`</td></tr>`)

	sb.WriteString(`<tr><td>`)
	sb.WriteString(renderCompliance(doc.Compliance))
	sb.WriteString(renderFooter(doc.Footer))
	sb.WriteString(`</td></tr>`)

	sb.WriteString(`</table>`)
	sb.WriteString(`</td></tr></table>`)
	sb.WriteString(`</body></html>`)

	return sb.String()
}
