package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailblocks/pkg/block"
	"github.com/dmitrymomot/mailblocks/pkg/template"
	"github.com/dmitrymomot/mailblocks/pkg/validate"
)

func welcomeCfg(t *testing.T) template.Config {
	t.Helper()
	cfg, err := template.Builtin("welcome")
	require.NoError(t, err)
	return cfg
}

func validWelcomeDoc() block.EmailDocument {
	return block.EmailDocument{
		Template: "welcome",
		Blocks: []block.Block{
			block.Title{ID: "t1", Content: "Welcome"},
			block.Paragraph{ID: "p1", Content: "Hello there."},
			block.Button{ID: "b1", Label: "Start", URL: "https://example.com"},
		},
	}
}

func TestValidate(t *testing.T) {
	t.Run("valid document yields nil", func(t *testing.T) {
		errs := validate.Validate(validWelcomeDoc(), welcomeCfg(t), false)
		assert.Nil(t, errs)
	})

	t.Run("missing mandatory button", func(t *testing.T) {
		doc := validWelcomeDoc()
		doc.Blocks = doc.Blocks[:2]
		errs := validate.Validate(doc, welcomeCfg(t), false)
		require.NotNil(t, errs)
		assert.True(t, errs.Has(validate.CodeMissingMandatory))
		assert.True(t, errs.Has(validate.CodeTooFewOfType))
		assert.True(t, errs.HasBlocking())
	})

	t.Run("too many of one type", func(t *testing.T) {
		doc := validWelcomeDoc()
		doc.Blocks = append(doc.Blocks, block.Title{ID: "t2", Content: "Another"})
		errs := validate.Validate(doc, welcomeCfg(t), false)
		assert.True(t, errs.Has(validate.CodeTooManyOfType))
	})

	t.Run("type not allowed", func(t *testing.T) {
		cfg := template.Config{
			Name:      "minimal",
			MaxBlocks: 5,
			Limits: map[block.Type]template.Cardinality{
				block.TypeTitle: {Min: 1, Max: 1},
			},
		}
		doc := block.EmailDocument{Blocks: []block.Block{
			block.Title{ID: "t1", Content: "x"},
			block.Divider{ID: "d1"},
		}}
		errs := validate.Validate(doc, cfg, false)
		require.True(t, errs.Has(validate.CodeTypeNotAllowed))
		assert.NotEmpty(t, errs.ForBlock("d1"))
	})

	t.Run("total block budget", func(t *testing.T) {
		cfg := template.Config{
			Name:      "tiny",
			MaxBlocks: 1,
			Limits: map[block.Type]template.Cardinality{
				block.TypeParagraph: {},
			},
		}
		doc := block.EmailDocument{Blocks: []block.Block{
			block.Paragraph{ID: "p1", Content: "a"},
			block.Paragraph{ID: "p2", Content: "b"},
		}}
		errs := validate.Validate(doc, cfg, false)
		assert.True(t, errs.Has(validate.CodeTooManyBlocks))
	})

	t.Run("missing and duplicate ids", func(t *testing.T) {
		doc := validWelcomeDoc()
		doc.Blocks = append(doc.Blocks,
			block.Paragraph{Content: "no id"},
			block.Paragraph{ID: "p1", Content: "reused id"},
		)
		errs := validate.Validate(doc, welcomeCfg(t), false)
		assert.True(t, errs.Has(validate.CodeMissingID))
		assert.True(t, errs.Has(validate.CodeDuplicateID))
	})

	t.Run("bad color is a warning", func(t *testing.T) {
		doc := validWelcomeDoc()
		doc.Blocks[0] = block.Title{ID: "t1", Content: "Welcome", Color: "red"}
		errs := validate.Validate(doc, welcomeCfg(t), false)
		require.True(t, errs.Has(validate.CodeInvalidColor))
		assert.False(t, errs.HasBlocking())

		found := errs.ForBlock("t1")
		require.Len(t, found, 1)
		assert.Equal(t, validate.SeverityWarning, found[0].Severity)
	})

	t.Run("strict promotes warnings to errors", func(t *testing.T) {
		doc := validWelcomeDoc()
		doc.Blocks[0] = block.Title{ID: "t1", Content: "Welcome", Color: "red"}
		errs := validate.Validate(doc, welcomeCfg(t), true)
		require.True(t, errs.Has(validate.CodeInvalidColor))
		assert.True(t, errs.HasBlocking())
	})

	t.Run("bad button url is an error", func(t *testing.T) {
		doc := validWelcomeDoc()
		doc.Blocks[2] = block.Button{ID: "b1", Label: "Start", URL: "javascript:alert(1)"}
		errs := validate.Validate(doc, welcomeCfg(t), false)
		require.True(t, errs.Has(validate.CodeInvalidURL))
		assert.True(t, errs.HasBlocking())
	})

	t.Run("empty content is a warning", func(t *testing.T) {
		doc := validWelcomeDoc()
		doc.Blocks[1] = block.Paragraph{ID: "p1"}
		errs := validate.Validate(doc, welcomeCfg(t), false)
		require.True(t, errs.Has(validate.CodeEmptyContent))
		assert.False(t, errs.HasBlocking())
	})
}

func TestErrors(t *testing.T) {
	t.Run("error string lists codes", func(t *testing.T) {
		errs := validate.Errors{
			{Code: validate.CodeMissingID, Message: "title block has no id", Severity: validate.SeverityError},
			{Code: validate.CodeInvalidColor, Message: "bad color", Severity: validate.SeverityWarning},
		}
		msg := errs.Error()
		assert.Contains(t, msg, "missing_id")
		assert.Contains(t, msg, "invalid_color")
	})

	t.Run("empty collection still prints", func(t *testing.T) {
		assert.Equal(t, "validation failed", validate.Errors{}.Error())
	})
}
