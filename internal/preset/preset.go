// Package preset applies named bundles of compositor keywords.
package preset

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Keyword is a single `keyword <option> <value>` command.
type Keyword struct {
	Option string `yaml:"option"`
	Value  string `yaml:"value"`
}

// Preset is a named set of keyword and dispatch commands.
type Preset struct {
	Name        string    `yaml:"name"`
	Description string    `yaml:"description"`
	Keywords    []Keyword `yaml:"keywords"`
	Dispatch    []string  `yaml:"dispatch"`
}

// Commander is the part of the compositor client a preset needs.
type Commander interface {
	Keyword(option, value string) error
	Dispatch(args string) error
}

// Parse parses a YAML preset definition.
func Parse(data []byte) (*Preset, error) {
	var p Preset
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse preset: %w", err)
	}
	return &p, nil
}

// Validate checks that the keyword is well formed.
func (k Keyword) Validate() error {
	if k.Option == "" {
		return fmt.Errorf("option required")
	}
	if strings.ContainsAny(k.Option, " \t\n") {
		return fmt.Errorf("option must not contain whitespace: %q", k.Option)
	}
	return nil
}

// Validate checks the entire preset.
func (p *Preset) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("preset name required")
	}
	if len(p.Keywords) == 0 && len(p.Dispatch) == 0 {
		return fmt.Errorf("at least one keyword or dispatch required")
	}
	for i, k := range p.Keywords {
		if err := k.Validate(); err != nil {
			return fmt.Errorf("keyword %d: %w", i, err)
		}
	}
	for i, d := range p.Dispatch {
		if strings.TrimSpace(d) == "" {
			return fmt.Errorf("dispatch %d: empty command", i)
		}
	}
	return nil
}

// Apply sends every keyword, then every dispatch, stopping at the first error.
func (p *Preset) Apply(c Commander) error {
	for _, k := range p.Keywords {
		if err := c.Keyword(k.Option, k.Value); err != nil {
			return fmt.Errorf("keyword %s: %w", k.Option, err)
		}
	}
	for _, d := range p.Dispatch {
		if err := c.Dispatch(d); err != nil {
			return fmt.Errorf("dispatch %s: %w", d, err)
		}
	}
	return nil
}
