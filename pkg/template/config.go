package template

import "github.com/dmitrymomot/mailblocks/pkg/block"

// Cardinality bounds how many blocks of one type a template accepts.
// Max zero means unbounded.
type Cardinality struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Config is one template's block policy. Types absent from Limits are not
// permitted at all.
type Config struct {
	Name      string                     `yaml:"name"`
	MaxBlocks int                        `yaml:"max_blocks"`
	Limits    map[block.Type]Cardinality `yaml:"limits"`
	Mandatory []block.Type               `yaml:"mandatory"`
}

// Allows reports whether the template permits the given block type.
func (c Config) Allows(t block.Type) bool {
	_, ok := c.Limits[t]
	return ok
}
