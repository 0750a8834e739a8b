// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/sic/contexts"
)

// contextEntry is one item of a context-set file:
//
//   - kind: thermal
//     params: {temperature: 20}
type contextEntry struct {
	Kind   string             `yaml:"kind"`
	Params map[string]float64 `yaml:"params"`
}

// LoadContexts decodes a YAML list of {kind, params} entries. An empty
// document yields an empty set.
func LoadContexts(r io.Reader) ([]contexts.Context, error) {
	var entries []contextEntry
	if err := yaml.NewDecoder(r).Decode(&entries); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to decode contexts: %w", err)
	}

	out := make([]contexts.Context, 0, len(entries))
	for i, e := range entries {
		if e.Kind == "" {
			return nil, fmt.Errorf("%w: context %d has no kind", ErrInvalid, i)
		}
		out = append(out, contexts.New(contexts.ParseKind(e.Kind), e.Params))
	}

	return out, nil
}

// ReferenceContexts returns the nine-context demonstration set: four thermal,
// three quantum and two social contexts with disjoint parameter names.
func ReferenceContexts() []contexts.Context {
	one := func(k contexts.Kind, name string, v float64) contexts.Context {
		return contexts.WithParams(k, contexts.Param{Name: name, Value: v})
	}

	return []contexts.Context{
		one(contexts.KindThermal, "temperature", 20),
		one(contexts.KindThermal, "temperature", 22),
		one(contexts.KindThermal, "temperature", 21),
		one(contexts.KindThermal, "temperature", 23),
		one(contexts.KindQuantum, "energy", 100),
		one(contexts.KindQuantum, "energy", 102),
		one(contexts.KindQuantum, "energy", 101),
		one(contexts.KindSocial, "density", 50),
		one(contexts.KindSocial, "density", 52),
	}
}

// ReferenceReadings is the demonstration sensor sequence.
func ReferenceReadings() []float64 {
	return []float64{100, -50, 200, -150, 80, -30, 10, -5}
}
