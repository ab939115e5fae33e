package sanitize

import (
	"fmt"

	"github.com/dmitrymomot/mailblocks/pkg/block"
)

// Per-block-type whitelists of permitted inline tags. Titles keep emphasis
// only; paragraphs and highlight boxes additionally allow underline, links
// and line breaks.
var (
	TitleTags        = []string{"strong", "b", "em", "i"}
	ParagraphTags    = []string{"strong", "b", "em", "i", "u", "a", "br"}
	HighlightBoxTags = []string{"strong", "b", "em", "i", "u", "a", "br"}
)

// SanitizeBlock returns a copy of b with its user-supplied text fields
// sanitized. Rich-text content goes through the whitelist sanitizer with the
// block type's tag whitelist; plain-text fields (button label, image alt)
// are stripped of all markup.
//
// This is the one place sanitization blocks instead of degrading: a button
// or image whose URL fails validation returns ErrInvalidButtonURL or
// ErrInvalidImageURL wrapped with the block ID.
func SanitizeBlock(b block.Block) (block.Block, error) {
	switch v := b.(type) {
	case block.Title:
		v.Content = SanitizeContent(v.Content, TitleTags)
		return v, nil
	case block.Paragraph:
		v.Content = SanitizeContent(v.Content, ParagraphTags)
		return v, nil
	case block.HighlightBox:
		v.Content = SanitizeContent(v.Content, HighlightBoxTags)
		return v, nil
	case block.Button:
		if !IsValidProtocol(v.URL) {
			return nil, fmt.Errorf("%w: block %s", ErrInvalidButtonURL, v.ID)
		}
		v.Label = StripAllHTML(v.Label)
		return v, nil
	case block.Image:
		if !IsValidURL(v.Src, false) {
			return nil, fmt.Errorf("%w: block %s", ErrInvalidImageURL, v.ID)
		}
		v.Alt = StripAllHTML(v.Alt)
		return v, nil
	case block.Divider:
		return v, nil
	default:
		// Unreachable while the union stays sealed.
		return b, nil
	}
}

// SanitizeDocument sanitizes every body block of doc, returning a copy. It
// stops at the first blocking error.
func SanitizeDocument(doc block.EmailDocument) (block.EmailDocument, error) {
	if len(doc.Blocks) == 0 {
		return doc, nil
	}
	cleaned := make([]block.Block, len(doc.Blocks))
	for i, b := range doc.Blocks {
		cb, err := SanitizeBlock(b)
		if err != nil {
			return doc, err
		}
		cleaned[i] = cb
	}
	doc.Blocks = cleaned
	return doc, nil
}
