package template

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidConfig is returned when a loaded template configuration is
	// structurally unusable (missing name, negative bounds, min above max).
	ErrInvalidConfig = errors.New("invalid template config")

	// ErrUnknownTemplate is returned by Builtin for names that were never
	// registered.
	ErrUnknownTemplate = errors.New("unknown template")
)

// configFile is the on-disk shape: a flat list under a single key so files
// stay greppable and mergeable.
type configFile struct {
	Templates []Config `yaml:"templates"`
}

// Load reads template configurations from YAML. Every entry is checked for
// structural sanity before any is returned, so a bad file never half-loads.
func Load(r io.Reader) ([]Config, error) {
	var f configFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	for _, c := range f.Templates {
		if err := check(c); err != nil {
			return nil, err
		}
	}
	return f.Templates, nil
}

// LoadFile is Load over a file path.
func LoadFile(path string) ([]Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	defer f.Close()
	return Load(f)
}

func check(c Config) error {
	if c.Name == "" {
		return fmt.Errorf("%w: template name is required", ErrInvalidConfig)
	}
	if c.MaxBlocks < 0 {
		return fmt.Errorf("%w: %s: max_blocks must not be negative", ErrInvalidConfig, c.Name)
	}
	for t, card := range c.Limits {
		if card.Min < 0 || card.Max < 0 {
			return fmt.Errorf("%w: %s: negative bound for %s", ErrInvalidConfig, c.Name, t)
		}
		if card.Max > 0 && card.Min > card.Max {
			return fmt.Errorf("%w: %s: min above max for %s", ErrInvalidConfig, c.Name, t)
		}
	}
	for _, t := range c.Mandatory {
		if _, ok := c.Limits[t]; !ok {
			return fmt.Errorf("%w: %s: mandatory type %s has no limits entry", ErrInvalidConfig, c.Name, t)
		}
	}
	return nil
}
