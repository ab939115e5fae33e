package render

import (
	"strconv"

	"github.com/dmitrymomot/mailblocks/pkg/block"
	"github.com/dmitrymomot/mailblocks/pkg/sanitize"
)

// socialIconSpacing is the fixed right margin between footer icons; the last
// icon gets zero so the row stays visually centered.
const socialIconSpacing = 8

func renderHeader(h block.Header) string {
	var inner string
	if h.LogoURL != "" {
		height := defaultInt(h.LogoHeight, 32)
		inner = `<img src="` + attrURL(h.LogoURL) + `" alt="` + sanitize.EscapeHTML(h.FallbackText) +
			`" height="` + strconv.Itoa(height) + `" style="display:block;border:0;height:` + px(height) + `;" />`
	} else {
		inner = `<span style="color:#0F172A;font-size:20px;font-weight:700;font-family:` + fontStack + `;">` +
			sanitize.EscapeHTML(h.FallbackText) + `</span>`
	}
	return `<table role="presentation" width="100%" cellpadding="0" cellspacing="0" border="0"><tr>` +
		`<td align="center" style="padding:24px 0;">` + inner + `</td></tr></table>`
}

func renderHelp(h *block.HelpSection) string {
	if h == nil {
		return ""
	}
	out := `<table role="presentation" width="100%" cellpadding="0" cellspacing="0" border="0">` +
		`<tr><td style="padding:24px 0 8px 0;color:#0F172A;font-size:16px;font-weight:700;font-family:` + fontStack + `;">` +
		sanitize.EscapeHTML(h.Title) + `</td></tr>` +
		`<tr><td style="padding:0 0 12px 0;color:#475569;font-size:13px;line-height:1.5;font-family:` + fontStack + `;">` +
		sanitize.EscapeHTML(h.Description) + `</td></tr>`
	for _, c := range h.Contacts {
		out += `<tr><td style="padding:0 0 8px 0;">` +
			`<table role="presentation" cellpadding="0" cellspacing="0" border="0"><tr>` +
			`<td width="20" style="padding:0 8px 0 0;"><img src="` + contactIconURL(c.Kind) +
			`" width="16" height="16" alt="" style="display:block;border:0;" /></td>` +
			`<td style="color:#475569;font-size:13px;font-family:` + fontStack + `;">` +
			sanitize.EscapeHTML(c.Label) + `: <a href="` + attrURL(c.Href) +
			`" style="color:#008867;text-decoration:none;" target="_blank" rel="noopener noreferrer">` +
			sanitize.EscapeHTML(c.Value) + `</a></td>` +
			`</tr></table>` +
			`</td></tr>`
	}
	return out + `</table>`
}

func renderCompliance(c block.ComplianceSection) string {
	out := `<table role="presentation" width="100%" cellpadding="0" cellspacing="0" border="0">` +
		`<tr><td style="padding:16px 0 0 0;color:#94A3B8;font-size:11px;line-height:1.5;font-family:` + fontStack + `;">` +
		sanitize.EscapeHTML(c.LegalText)
	if c.RegistrationNumber != "" {
		out += ` <strong>` + sanitize.EscapeHTML(c.RegistrationNumber) + `</strong>`
	}
	out += `</td></tr>`
	if c.SandboxNotice != "" {
		out += `<tr><td style="padding:8px 0 0 0;color:#B45309;font-size:11px;line-height:1.5;font-family:` + fontStack + `;">` +
			sanitize.EscapeHTML(c.SandboxNotice) + `</td></tr>`
	}
	return out + `</table>`
}

func renderFooter(f block.Footer) string {
	out := `<table role="presentation" width="100%" cellpadding="0" cellspacing="0" border="0">`
	if f.LogoURL != "" {
		out += `<tr><td align="center" style="padding:24px 0 8px 0;"><img src="` + attrURL(f.LogoURL) +
			`" alt="` + sanitize.EscapeHTML(f.CompanyName) + `" height="24" style="display:block;border:0;height:24px;" /></td></tr>`
	}
	out += `<tr><td align="center" style="padding:8px 0 4px 0;color:#334155;font-size:13px;font-weight:600;font-family:` + fontStack + `;">` +
		sanitize.EscapeHTML(f.CompanyName) + `</td></tr>` +
		`<tr><td align="center" style="padding:0 0 12px 0;color:#94A3B8;font-size:12px;line-height:1.5;font-family:` + fontStack + `;">` +
		sanitize.EscapeHTML(f.Address) + `</td></tr>`
	if len(f.Social) > 0 {
		out += `<tr><td align="center" style="padding:0 0 24px 0;">` +
			`<table role="presentation" cellpadding="0" cellspacing="0" border="0"><tr>`
		for i, s := range f.Social {
			margin := socialIconSpacing
			if i == len(f.Social)-1 {
				margin = 0
			}
			out += `<td width="24" style="padding:0 ` + px(margin) + ` 0 0;">` +
				`<a href="` + attrURL(s.URL) + `" target="_blank" rel="noopener noreferrer">` +
				`<img src="` + socialIconURL(s.Platform) + `" width="24" height="24" alt="` +
				sanitize.EscapeHTML(string(s.Platform)) + `" style="display:block;border:0;" /></a></td>`
		}
		out += `</tr></table></td></tr>`
	}
	return out + `</table>`
}
