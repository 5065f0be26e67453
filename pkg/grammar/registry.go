// Package grammar provides the built-in extraction templates for device
// dumps consumed by test automation: LLDP neighbor tables, COPP policy
// dumps, and buffer-profile lookup tables. Templates are compiled once at
// package init; a broken built-in is a programming error and panics.
package grammar

import (
	"fmt"
	"sort"

	"github.com/newtron-network/newtparse/pkg/extract"
	"github.com/newtron-network/newtparse/pkg/util"
)

// builtins lists every built-in template definition. New grammars register
// here.
var builtins = []*extract.Definition{
	lldpNeighbors,
	coppPolicy,
	pgProfileLookup,
}

var templates map[string]*extract.Template

func init() {
	templates = make(map[string]*extract.Template, len(builtins))
	for _, def := range builtins {
		if _, dup := templates[def.Name]; dup {
			panic(fmt.Sprintf("duplicate built-in template %q", def.Name))
		}
		templates[def.Name] = extract.MustCompile(def)
	}
}

// Lookup returns the built-in template with the given name.
func Lookup(name string) (*extract.Template, error) {
	t, ok := templates[name]
	if !ok {
		return nil, fmt.Errorf("built-in template %q: %w", name, util.ErrNotFound)
	}
	return t, nil
}

// Names returns the sorted names of all built-in templates.
func Names() []string {
	names := make([]string, 0, len(templates))
	for name := range templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
