package validate

import (
	"fmt"

	"github.com/dmitrymomot/mailblocks/pkg/block"
	"github.com/dmitrymomot/mailblocks/pkg/template"
)

// Validate checks doc against cfg and returns every finding. A nil result
// means the document is acceptable. With strict set, warnings are promoted
// to errors before returning.
func Validate(doc block.EmailDocument, cfg template.Config, strict bool) Errors {
	var errs Errors

	errs = append(errs, checkCardinality(doc, cfg)...)
	errs = append(errs, checkIdentifiers(doc)...)
	for _, b := range doc.Blocks {
		errs = append(errs, checkFields(b)...)
	}

	if strict {
		for i := range errs {
			errs[i].Severity = SeverityError
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func checkCardinality(doc block.EmailDocument, cfg template.Config) Errors {
	var errs Errors

	if cfg.MaxBlocks > 0 && len(doc.Blocks) > cfg.MaxBlocks {
		errs = append(errs, Error{
			Code:     CodeTooManyBlocks,
			Message:  fmt.Sprintf("template %s allows at most %d blocks, got %d", cfg.Name, cfg.MaxBlocks, len(doc.Blocks)),
			Severity: SeverityError,
		})
	}

	counts := make(map[block.Type]int)
	for _, b := range doc.Blocks {
		counts[b.BlockType()]++
		if !cfg.Allows(b.BlockType()) {
			errs = append(errs, Error{
				Code:     CodeTypeNotAllowed,
				Message:  fmt.Sprintf("template %s does not allow %s blocks", cfg.Name, b.BlockType()),
				Severity: SeverityError,
				BlockID:  b.BlockID(),
			})
		}
	}

	for t, card := range cfg.Limits {
		n := counts[t]
		if n < card.Min {
			errs = append(errs, Error{
				Code:     CodeTooFewOfType,
				Message:  fmt.Sprintf("template %s requires at least %d %s blocks, got %d", cfg.Name, card.Min, t, n),
				Severity: SeverityError,
			})
		}
		if card.Max > 0 && n > card.Max {
			errs = append(errs, Error{
				Code:     CodeTooManyOfType,
				Message:  fmt.Sprintf("template %s allows at most %d %s blocks, got %d", cfg.Name, card.Max, t, n),
				Severity: SeverityError,
			})
		}
	}

	for _, t := range cfg.Mandatory {
		if counts[t] == 0 {
			errs = append(errs, Error{
				Code:     CodeMissingMandatory,
				Message:  fmt.Sprintf("template %s requires a %s block", cfg.Name, t),
				Severity: SeverityError,
			})
		}
	}

	return errs
}

func checkIdentifiers(doc block.EmailDocument) Errors {
	var errs Errors
	seen := make(map[string]bool, len(doc.Blocks))
	for _, b := range doc.Blocks {
		id := b.BlockID()
		if id == "" {
			errs = append(errs, Error{
				Code:     CodeMissingID,
				Message:  fmt.Sprintf("%s block has no id", b.BlockType()),
				Severity: SeverityError,
			})
			continue
		}
		if seen[id] {
			errs = append(errs, Error{
				Code:     CodeDuplicateID,
				Message:  fmt.Sprintf("block id %s is used more than once", id),
				Severity: SeverityError,
				BlockID:  id,
			})
		}
		seen[id] = true
	}
	return errs
}
