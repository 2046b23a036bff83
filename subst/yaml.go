package subst

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// document is the on-disk layout of a substitution table:
//
//	substitutions:
//	  aa: 1.0
//	  ab: -1.0
//	  "0O": 0.5
type document struct {
	Substitutions map[string]float64 `yaml:"substitutions"`
}

// ParseYAML decodes a table document. Keys follow FromMap rules.
func ParseYAML(data []byte) (*Table, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("subst: parse yaml: %w", err)
	}

	return FromMap(doc.Substitutions)
}

// LoadFile reads and decodes a YAML table document from path.
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("subst: read %s: %w", path, err)
	}
	t, err := ParseYAML(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return t, nil
}

// MarshalYAML renders t as a table document. yaml.v3 sorts mapping keys,
// so output is deterministic.
func (t *Table) MarshalYAML() (interface{}, error) {
	m := make(map[string]float64, len(t.scores))
	for p, s := range t.scores {
		m[p.String()] = s
	}

	return document{Substitutions: m}, nil
}
