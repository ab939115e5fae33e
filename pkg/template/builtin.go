package template

import (
	"fmt"
	"sort"

	"github.com/dmitrymomot/mailblocks/pkg/block"
)

// builtins are the templates shipped with the composer. Deployments can
// override or extend them via Load.
var builtins = map[string]Config{
	"welcome": {
		Name:      "welcome",
		MaxBlocks: 10,
		Limits: map[block.Type]Cardinality{
			block.TypeTitle:        {Min: 1, Max: 1},
			block.TypeParagraph:    {Min: 1, Max: 4},
			block.TypeImage:        {Max: 1},
			block.TypeButton:       {Min: 1, Max: 1},
			block.TypeDivider:      {Max: 2},
			block.TypeHighlightBox: {Max: 1},
		},
		Mandatory: []block.Type{block.TypeTitle, block.TypeButton},
	},
	"transactional": {
		Name:      "transactional",
		MaxBlocks: 8,
		Limits: map[block.Type]Cardinality{
			block.TypeTitle:        {Min: 1, Max: 1},
			block.TypeParagraph:    {Min: 1, Max: 3},
			block.TypeButton:       {Max: 1},
			block.TypeDivider:      {Max: 1},
			block.TypeHighlightBox: {Max: 1},
		},
		Mandatory: []block.Type{block.TypeTitle, block.TypeParagraph},
	},
	"newsletter": {
		Name:      "newsletter",
		MaxBlocks: 20,
		Limits: map[block.Type]Cardinality{
			block.TypeTitle:        {Min: 1, Max: 4},
			block.TypeParagraph:    {Min: 1},
			block.TypeImage:        {Max: 6},
			block.TypeButton:       {Max: 3},
			block.TypeDivider:      {Max: 6},
			block.TypeHighlightBox: {Max: 2},
		},
		Mandatory: []block.Type{block.TypeTitle},
	},
}

// Builtin returns the named built-in template configuration.
func Builtin(name string) (Config, error) {
	c, ok := builtins[name]
	if !ok {
		return Config{}, fmt.Errorf("%w: %s", ErrUnknownTemplate, name)
	}
	return c, nil
}

// BuiltinNames lists the registered built-in templates.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
