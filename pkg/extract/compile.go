package extract

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/newtron-network/newtparse/pkg/util"
)

// fieldNameRE bounds field names to valid regexp group names.
var fieldNameRE = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// placeholderRE matches ${Name} field references in rule match expressions.
var placeholderRE = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// Template is a compiled, immutable extraction template. A Template is safe
// for concurrent use: each Parse call keeps all mutable state local.
type Template struct {
	name   string
	fields []Field
	byName map[string]Field
	states map[string][]compiledRule
}

type compiledRule struct {
	re     *regexp.Regexp
	record bool
	cont   bool
	next   string
	abort  string
}

// Compile validates a Definition and compiles its rule patterns. All
// malformed-definition problems (unknown states, undeclared fields, bad
// regexps, illegal flag combinations) are reported here, accumulated into
// a single ValidationError, so parse time never sees a config error.
func Compile(def *Definition) (*Template, error) {
	v := &util.ValidationBuilder{}

	v.Add(def.Name != "", "template name is required")

	byName := make(map[string]Field, len(def.Fields))
	v.Add(len(def.Fields) > 0, "at least one field is required")
	for _, f := range def.Fields {
		if !fieldNameRE.MatchString(f.Name) {
			v.AddErrorf("field name %q is not a valid capture group name", f.Name)
			continue
		}
		if _, dup := byName[f.Name]; dup {
			v.AddErrorf("duplicate field %q", f.Name)
			continue
		}
		if f.Pattern == "" {
			v.AddErrorf("field %q has no capture pattern", f.Name)
			continue
		}
		if _, err := regexp.Compile(f.Pattern); err != nil {
			v.AddErrorf("field %q pattern: %v", f.Name, err)
			continue
		}
		byName[f.Name] = f
	}

	if _, ok := def.States[StartState]; !ok {
		v.AddErrorf("state %q is not defined", StartState)
	}

	states := make(map[string][]compiledRule, len(def.States))
	// Deterministic error ordering across states.
	names := make([]string, 0, len(def.States))
	for name := range def.States {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, state := range names {
		rules := def.States[state]
		compiled := make([]compiledRule, 0, len(rules))
		for i, r := range rules {
			where := fmt.Sprintf("state %s rule %d", state, i+1)
			cr, ok := compileRule(v, where, r, byName, def.States)
			if ok {
				compiled = append(compiled, cr)
			}
		}
		states[state] = compiled
	}

	if err := v.Build(); err != nil {
		return nil, fmt.Errorf("template %s: %w", def.Name, err)
	}

	return &Template{
		name:   def.Name,
		fields: append([]Field(nil), def.Fields...),
		byName: byName,
		states: states,
	}, nil
}

// MustCompile is Compile for statically-declared templates; it panics on
// validation errors.
func MustCompile(def *Definition) *Template {
	t, err := Compile(def)
	if err != nil {
		panic(err)
	}
	return t
}

// Name returns the template name.
func (t *Template) Name() string { return t.name }

// Fields returns the declared fields in declaration order.
func (t *Template) Fields() []Field {
	return append([]Field(nil), t.fields...)
}

// States returns the sorted state names.
func (t *Template) States() []string {
	names := make([]string, 0, len(t.states))
	for name := range t.states {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func compileRule(v *util.ValidationBuilder, where string, r Rule, fields map[string]Field, states map[string][]Rule) (compiledRule, bool) {
	if r.Match == "" {
		v.AddErrorf("%s: match pattern is required", where)
		return compiledRule{}, false
	}
	if r.Error != "" && (r.Record || r.Continue || r.Next != "") {
		v.AddErrorf("%s: error action cannot combine with record/continue/next", where)
		return compiledRule{}, false
	}
	if r.Continue && (r.Record || r.Next != "") {
		v.AddErrorf("%s: continue cannot combine with record or a state transition", where)
		return compiledRule{}, false
	}
	if r.Next != "" {
		if _, ok := states[r.Next]; !ok {
			v.AddErrorf("%s: transition to undefined state %q", where, r.Next)
			return compiledRule{}, false
		}
	}

	undeclared := false
	expanded := placeholderRE.ReplaceAllStringFunc(r.Match, func(ref string) string {
		name := placeholderRE.FindStringSubmatch(ref)[1]
		f, ok := fields[name]
		if !ok {
			v.AddErrorf("%s: reference to undeclared field %q", where, name)
			undeclared = true
			return ref
		}
		return "(?P<" + name + ">" + f.Pattern + ")"
	})
	if undeclared {
		// Unresolved ${...} left in the pattern; don't compound the
		// error list with a confusing regexp failure.
		return compiledRule{}, false
	}

	re, err := regexp.Compile(expanded)
	if err != nil {
		v.AddErrorf("%s: %v", where, err)
		return compiledRule{}, false
	}
	for gi, name := range re.SubexpNames() {
		if gi == 0 || name == "" {
			continue
		}
		if _, ok := fields[name]; !ok {
			v.AddErrorf("%s: capture group %q does not name a declared field", where, name)
		}
	}

	return compiledRule{
		re:     re,
		record: r.Record,
		cont:   r.Continue,
		next:   r.Next,
		abort:  r.Error,
	}, true
}
