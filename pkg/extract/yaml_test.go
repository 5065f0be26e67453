package extract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const statusTemplateYAML = `
name: port_status
fields:
  - name: Port
    pattern: 'Ethernet\d+'
    required: true
  - name: Status
    pattern: 'up|down'
  - name: VRF
    pattern: '\S+'
    fillup: true
states:
  Start:
    - match: '^VRF:\s+${VRF}$'
    - match: '^${Port}\s+is\s+${Status}$'
      record: true
`

func TestLoadDefinition(t *testing.T) {
	tmpl, err := LoadDefinition([]byte(statusTemplateYAML))
	require.NoError(t, err)
	assert.Equal(t, "port_status", tmpl.Name())

	fields := tmpl.Fields()
	require.Len(t, fields, 3)
	assert.True(t, fields[0].Required)
	assert.True(t, fields[2].Fillup)

	records, err := tmpl.Parse("VRF: default\nEthernet0 is up\n")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, Record{"Port": "Ethernet0", "Status": "up", "VRF": "default"}, records[0])
}

func TestLoadDefinition_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantMsg string
	}{
		{
			name:    "not yaml",
			yaml:    "{not valid yaml",
			wantMsg: "parsing template",
		},
		{
			name: "undeclared field",
			yaml: `
name: broken
fields:
  - name: Port
    pattern: '\S+'
states:
  Start:
    - match: '^${Missing}$'
`,
			wantMsg: `undeclared field "Missing"`,
		},
		{
			name: "unknown next state",
			yaml: `
name: broken
fields:
  - name: Port
    pattern: '\S+'
states:
  Start:
    - match: '^${Port}$'
      next: Elsewhere
`,
			wantMsg: `undefined state "Elsewhere"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadDefinition([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "port_status.yaml")
	require.NoError(t, os.WriteFile(path, []byte(statusTemplateYAML), 0o644))

	tmpl, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "port_status", tmpl.Name())
}

func TestLoadFile_NameDefaultsToBasename(t *testing.T) {
	yaml := `
fields:
  - name: Port
    pattern: '\S+'
states:
  Start:
    - match: '^${Port}$'
      record: true
`
	dir := t.TempDir()
	path := filepath.Join(dir, "bgp_summary.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	tmpl, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "bgp_summary", tmpl.Name())
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading template")
}
