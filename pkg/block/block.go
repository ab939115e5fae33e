package block

import "github.com/google/uuid"

// Type discriminates the block variants of the body union.
type Type string

const (
	TypeTitle        Type = "title"
	TypeParagraph    Type = "paragraph"
	TypeImage        Type = "image"
	TypeButton       Type = "button"
	TypeDivider      Type = "divider"
	TypeHighlightBox Type = "highlight_box"
)

// Alignment is the horizontal alignment of a block within the email column.
type Alignment string

const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
)

// Block is the closed union over the six body block variants. Each variant
// carries a unique string identifier and type-specific attributes. Uniqueness
// of IDs within a document is enforced by pkg/validate, not here.
type Block interface {
	BlockID() string
	BlockType() Type

	// sealed prevents implementations outside this package so that type
	// switches over the union stay exhaustive.
	sealed()
}

// Title is a heading block. Content may carry inline formatting tokens.
type Title struct {
	ID            string
	Content       string
	Color         string    // hex, default #0F172A
	FontSize      int       // px, default 24
	Align         Alignment // default left
	SpacingBottom int       // px, default 16
}

// Paragraph is a body text block. Content may carry inline formatting tokens.
type Paragraph struct {
	ID            string
	Content       string
	Color         string    // hex, default #334155
	FontSize      int       // px, default 15
	LineHeight    float64   // default 1.6
	Align         Alignment // default left
	SpacingBottom int       // px, default 16
}

// Image is a remote image block. Alt is plain text, never tokenized.
type Image struct {
	ID            string
	Src           string
	Alt           string
	Width         int       // px, default 560 (full column width)
	Align         Alignment // default center
	SpacingBottom int       // px, default 16
}

// Button is a call-to-action block. Label is plain text, never tokenized.
type Button struct {
	ID              string
	Label           string
	URL             string
	BackgroundColor string    // hex, default #008867
	TextColor       string    // hex, default #FFFFFF
	BorderRadius    int       // px, default 6
	Align           Alignment // default center
	SpacingBottom   int       // px, default 16
}

// Divider is a horizontal rule block.
type Divider struct {
	ID            string
	Color         string // hex, default #E2E8F0
	Thickness     int    // px, default 1
	SpacingTop    int    // px, default 8
	SpacingBottom int    // px, default 8
}

// HighlightBox is a framed callout block.
type HighlightBox struct {
	ID              string
	Content         string
	BackgroundColor string // hex, default #F0FDF4
	BorderColor     string // hex, default #008867
	TextColor       string // hex, default #14532D
	SpacingBottom   int    // px, default 16
}

func (b Title) BlockID() string        { return b.ID }
func (b Paragraph) BlockID() string    { return b.ID }
func (b Image) BlockID() string        { return b.ID }
func (b Button) BlockID() string       { return b.ID }
func (b Divider) BlockID() string      { return b.ID }
func (b HighlightBox) BlockID() string { return b.ID }

func (Title) BlockType() Type        { return TypeTitle }
func (Paragraph) BlockType() Type    { return TypeParagraph }
func (Image) BlockType() Type        { return TypeImage }
func (Button) BlockType() Type       { return TypeButton }
func (Divider) BlockType() Type      { return TypeDivider }
func (HighlightBox) BlockType() Type { return TypeHighlightBox }

func (Title) sealed()        {}
func (Paragraph) sealed()    {}
func (Image) sealed()        {}
func (Button) sealed()       {}
func (Divider) sealed()      {}
func (HighlightBox) sealed() {}

// NewTitle returns a Title block with a fresh identifier.
func NewTitle(content string) Title {
	return Title{ID: uuid.NewString(), Content: content}
}

// NewParagraph returns a Paragraph block with a fresh identifier.
func NewParagraph(content string) Paragraph {
	return Paragraph{ID: uuid.NewString(), Content: content}
}

// NewImage returns an Image block with a fresh identifier.
func NewImage(src, alt string) Image {
	return Image{ID: uuid.NewString(), Src: src, Alt: alt}
}

// NewButton returns a Button block with a fresh identifier.
func NewButton(label, url string) Button {
	return Button{ID: uuid.NewString(), Label: label, URL: url}
}

// NewDivider returns a Divider block with a fresh identifier.
func NewDivider() Divider {
	return Divider{ID: uuid.NewString()}
}

// NewHighlightBox returns a HighlightBox block with a fresh identifier.
func NewHighlightBox(content string) HighlightBox {
	return HighlightBox{ID: uuid.NewString(), Content: content}
}
