package extract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// templateFile mirrors the YAML template layout. Rule order within a state
// is the YAML sequence order; state order is irrelevant.
type templateFile struct {
	Name   string               `yaml:"name"`
	Fields []fieldDef           `yaml:"fields"`
	States map[string][]ruleDef `yaml:"states"`
}

type fieldDef struct {
	Name     string `yaml:"name"`
	Pattern  string `yaml:"pattern"`
	Required bool   `yaml:"required,omitempty"`
	Fillup   bool   `yaml:"fillup,omitempty"`
}

type ruleDef struct {
	Match    string `yaml:"match"`
	Record   bool   `yaml:"record,omitempty"`
	Continue bool   `yaml:"continue,omitempty"`
	Next     string `yaml:"next,omitempty"`
	Error    string `yaml:"error,omitempty"`
}

// LoadFile reads a YAML template file and returns the compiled template.
// A missing name defaults to the file basename without extension.
func LoadFile(path string) (*Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", path, err)
	}

	def, err := decodeDefinition(data)
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", path, err)
	}
	if def.Name == "" {
		base := filepath.Base(path)
		def.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}

	return Compile(def)
}

// LoadDefinition parses YAML template bytes and returns the compiled
// template.
func LoadDefinition(data []byte) (*Template, error) {
	def, err := decodeDefinition(data)
	if err != nil {
		return nil, fmt.Errorf("parsing template: %w", err)
	}
	return Compile(def)
}

func decodeDefinition(data []byte) (*Definition, error) {
	var tf templateFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, err
	}

	def := &Definition{
		Name:   tf.Name,
		Fields: make([]Field, 0, len(tf.Fields)),
		States: make(map[string][]Rule, len(tf.States)),
	}
	for _, f := range tf.Fields {
		def.Fields = append(def.Fields, Field{
			Name:     f.Name,
			Pattern:  f.Pattern,
			Required: f.Required,
			Fillup:   f.Fillup,
		})
	}
	for state, rules := range tf.States {
		out := make([]Rule, 0, len(rules))
		for _, r := range rules {
			out = append(out, Rule{
				Match:    r.Match,
				Record:   r.Record,
				Continue: r.Continue,
				Next:     r.Next,
				Error:    r.Error,
			})
		}
		def.States[state] = out
	}
	return def, nil
}
