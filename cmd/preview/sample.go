package main

import "github.com/dmitrymomot/mailblocks/pkg/block"

// sampleDocument builds a representative document for one template so every
// block type and fixed section can be eyeballed in the preview iframe.
func sampleDocument(templateName string) block.EmailDocument {
	doc := block.EmailDocument{
		Template: templateName,
		Subject:  "Preview: " + templateName,
		Header: block.Header{
			LogoURL:      "https://static.mailblocks.dev/logo.png",
			LogoHeight:   32,
			FallbackText: "Mailblocks",
		},
		Help: &block.HelpSection{
			Title:       "Need a hand?",
			Description: "Our support team replies within one business day.",
			Contacts: []block.ContactItem{
				{Kind: block.ContactEmail, Label: "Email", Value: "support@mailblocks.dev", Href: "mailto:support@mailblocks.dev"},
				{Kind: block.ContactWhatsApp, Label: "WhatsApp", Value: "+1 555 010 2030", Href: "https://wa.me/15550102030"},
			},
		},
		Compliance: block.ComplianceSection{
			LegalText:          "You received this email because you signed up for a Mailblocks account.",
			RegistrationNumber: "Reg. No. 12-345678",
		},
		Footer: block.Footer{
			LogoURL:     "https://static.mailblocks.dev/logo.png",
			CompanyName: "Mailblocks Inc.",
			Address:     "548 Market St, San Francisco, CA 94104",
			Social: []block.SocialLink{
				{Platform: block.PlatformX, URL: "https://x.com/mailblocks"},
				{Platform: block.PlatformLinkedIn, URL: "https://linkedin.com/company/mailblocks"},
			},
		},
	}

	doc.Blocks = []block.Block{
		block.NewTitle("Welcome to {{bold:#008867}}Mailblocks{{/bold}}, {{firstName}}"),
		block.NewParagraph("Your workspace is ready. Visit the {{link:https://mailblocks.dev/docs|bold}}documentation{{/link}} to build your first campaign."),
		block.NewHighlightBox("Your trial ends in 14 days."),
		block.NewDivider(),
		block.NewButton("Open dashboard", "https://app.mailblocks.dev"),
	}
	return doc
}
