package liquid

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// Presets maps preset names to parsed pipelines.
type Presets map[string]Pipeline

// LoadPresets decodes a YAML mapping of preset name to pipeline expression.
// Every pipeline must parse and reference filters registered in reg.
// An empty document yields an empty set.
func LoadPresets(r io.Reader, reg *Registry) (Presets, error) {
	raw := make(map[string]string)
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Join(ErrInvalidPresets, err)
	}

	presets := make(Presets, len(raw))
	for name, expr := range raw {
		p, err := ParsePipeline(expr)
		if err != nil {
			return nil, fmt.Errorf("%w: preset %q: %w", ErrInvalidPresets, name, err)
		}
		if err := p.Validate(reg); err != nil {
			return nil, fmt.Errorf("%w: preset %q: %w", ErrInvalidPresets, name, err)
		}
		presets[name] = p
	}
	return presets, nil
}

// LoadPresetsFile reads presets from a YAML file.
func LoadPresetsFile(path string, reg *Registry) (Presets, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Join(ErrInvalidPresets, err)
	}
	defer f.Close()

	return LoadPresets(f, reg)
}

// Get returns the pipeline registered under name.
func (p Presets) Get(name string) (Pipeline, error) {
	pipeline, ok := p[name]
	if !ok {
		return Pipeline{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return pipeline, nil
}

// Names returns the preset names in sorted order.
func (p Presets) Names() []string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
