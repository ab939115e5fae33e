package block_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailblocks/pkg/block"
)

func TestBlockTypeMapping(t *testing.T) {
	tests := []struct {
		b        block.Block
		expected block.Type
	}{
		{block.Title{ID: "1"}, block.TypeTitle},
		{block.Paragraph{ID: "2"}, block.TypeParagraph},
		{block.Image{ID: "3"}, block.TypeImage},
		{block.Button{ID: "4"}, block.TypeButton},
		{block.Divider{ID: "5"}, block.TypeDivider},
		{block.HighlightBox{ID: "6"}, block.TypeHighlightBox},
	}

	for _, tt := range tests {
		t.Run(string(tt.expected), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.b.BlockType())
			assert.NotEmpty(t, tt.b.BlockID())
		})
	}
}

func TestConstructors(t *testing.T) {
	t.Run("fields are set", func(t *testing.T) {
		title := block.NewTitle("Welcome")
		assert.Equal(t, "Welcome", title.Content)

		img := block.NewImage("https://e.co/a.png", "logo")
		assert.Equal(t, "https://e.co/a.png", img.Src)
		assert.Equal(t, "logo", img.Alt)

		btn := block.NewButton("Go", "https://e.co")
		assert.Equal(t, "Go", btn.Label)
		assert.Equal(t, "https://e.co", btn.URL)
	})

	t.Run("identifiers are valid uuids", func(t *testing.T) {
		for _, b := range []block.Block{
			block.NewTitle("t"),
			block.NewParagraph("p"),
			block.NewImage("s", "a"),
			block.NewButton("l", "u"),
			block.NewDivider(),
			block.NewHighlightBox("h"),
		} {
			_, err := uuid.Parse(b.BlockID())
			require.NoError(t, err, "%T", b)
		}
	})

	t.Run("identifiers are unique", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 50; i++ {
			id := block.NewParagraph("x").ID
			assert.False(t, seen[id])
			seen[id] = true
		}
	})
}
