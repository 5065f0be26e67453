package extract

import (
	"errors"
	"strings"
	"testing"

	"github.com/newtron-network/newtparse/pkg/util"
)

func validDefinition() *Definition {
	return &Definition{
		Name: "valid",
		Fields: []Field{
			{Name: "Name", Pattern: `\S+`},
		},
		States: map[string][]Rule{
			StartState: {
				{Match: `^name\s+${Name}$`, Record: true},
			},
		},
	}
}

func TestCompile_Valid(t *testing.T) {
	tmpl, err := Compile(validDefinition())
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	if tmpl.Name() != "valid" {
		t.Errorf("Name() = %q, want valid", tmpl.Name())
	}
	if len(tmpl.Fields()) != 1 {
		t.Errorf("Fields() = %v, want one field", tmpl.Fields())
	}
}

func TestCompile_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(d *Definition)
		wantMsg string
	}{
		{
			name:    "missing name",
			mutate:  func(d *Definition) { d.Name = "" },
			wantMsg: "template name is required",
		},
		{
			name:    "no fields",
			mutate:  func(d *Definition) { d.Fields = nil },
			wantMsg: "at least one field is required",
		},
		{
			name: "bad field name",
			mutate: func(d *Definition) {
				d.Fields = append(d.Fields, Field{Name: "Port-ID", Pattern: `\S+`})
			},
			wantMsg: "not a valid capture group name",
		},
		{
			name: "duplicate field",
			mutate: func(d *Definition) {
				d.Fields = append(d.Fields, Field{Name: "Name", Pattern: `\d+`})
			},
			wantMsg: `duplicate field "Name"`,
		},
		{
			name: "empty field pattern",
			mutate: func(d *Definition) {
				d.Fields = append(d.Fields, Field{Name: "TTL"})
			},
			wantMsg: "no capture pattern",
		},
		{
			name: "bad field pattern",
			mutate: func(d *Definition) {
				d.Fields = append(d.Fields, Field{Name: "TTL", Pattern: `(`})
			},
			wantMsg: `field "TTL" pattern`,
		},
		{
			name: "missing Start state",
			mutate: func(d *Definition) {
				d.States = map[string][]Rule{"Other": {{Match: `^x$`}}}
			},
			wantMsg: `state "Start" is not defined`,
		},
		{
			name: "empty rule match",
			mutate: func(d *Definition) {
				d.States[StartState] = append(d.States[StartState], Rule{})
			},
			wantMsg: "match pattern is required",
		},
		{
			name: "undeclared placeholder",
			mutate: func(d *Definition) {
				d.States[StartState] = append(d.States[StartState], Rule{Match: `^ttl\s+${TTL}$`})
			},
			wantMsg: `undeclared field "TTL"`,
		},
		{
			name: "undeclared raw capture group",
			mutate: func(d *Definition) {
				d.States[StartState] = append(d.States[StartState], Rule{Match: `^ttl\s+(?P<TTL>\d+)$`})
			},
			wantMsg: `capture group "TTL" does not name a declared field`,
		},
		{
			name: "bad rule regexp",
			mutate: func(d *Definition) {
				d.States[StartState] = append(d.States[StartState], Rule{Match: `^name [$`})
			},
			wantMsg: "state Start rule 2",
		},
		{
			name: "transition to unknown state",
			mutate: func(d *Definition) {
				d.States[StartState] = append(d.States[StartState], Rule{Match: `^x$`, Next: "Missing"})
			},
			wantMsg: `transition to undefined state "Missing"`,
		},
		{
			name: "continue with record",
			mutate: func(d *Definition) {
				d.States[StartState] = append(d.States[StartState], Rule{Match: `^x$`, Continue: true, Record: true})
			},
			wantMsg: "continue cannot combine",
		},
		{
			name: "continue with transition",
			mutate: func(d *Definition) {
				d.States[StartState] = append(d.States[StartState], Rule{Match: `^x$`, Continue: true, Next: StartState})
			},
			wantMsg: "continue cannot combine",
		},
		{
			name: "error with record",
			mutate: func(d *Definition) {
				d.States[StartState] = append(d.States[StartState], Rule{Match: `^x$`, Error: "boom", Record: true})
			},
			wantMsg: "error action cannot combine",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := validDefinition()
			tt.mutate(def)

			_, err := Compile(def)
			if err == nil {
				t.Fatal("Compile() error = nil, want validation failure")
			}
			if !errors.Is(err, util.ErrValidationFailed) {
				t.Errorf("error = %v, want ErrValidationFailed", err)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestCompile_AccumulatesErrors(t *testing.T) {
	def := validDefinition()
	def.Name = ""
	def.States[StartState] = append(def.States[StartState], Rule{Match: `^ttl\s+${TTL}$`})

	_, err := Compile(def)
	if err == nil {
		t.Fatal("Compile() error = nil, want validation failure")
	}

	var verr *util.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error type = %T, want *util.ValidationError", err)
	}
	if len(verr.Errors) != 2 {
		t.Errorf("got %d errors, want 2: %v", len(verr.Errors), verr.Errors)
	}
}

func TestMustCompile_PanicsOnInvalid(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustCompile did not panic on invalid definition")
		}
	}()
	def := validDefinition()
	def.Name = ""
	MustCompile(def)
}
