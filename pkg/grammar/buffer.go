package grammar

import "github.com/newtron-network/newtparse/pkg/extract"

// pgProfileLookup parses a platform pg_profile_lookup.ini lossless
// headroom table:
//
//	# PG lossless profiles.
//	# speed  cable    size     xon      xoff    threshold   xon_offset
//	  10000    5m    34816    18432    16384    0           2496
//	  25000    5m    34816    18432    16384    0           2496
//
// One record per row. The xon_offset column is optional — platforms with
// six-column tables match the second rule. Comment and blank lines match
// nothing and are skipped.
var pgProfileLookup = &extract.Definition{
	Name: "pg_profile_lookup",
	Fields: []extract.Field{
		{Name: "SPEED", Pattern: `\d+`, Required: true},
		{Name: "CABLE_LENGTH", Pattern: `\d+m`, Required: true},
		{Name: "SIZE", Pattern: `\d+`},
		{Name: "XON", Pattern: `\d+`},
		{Name: "XOFF", Pattern: `\d+`},
		{Name: "THRESHOLD", Pattern: `-?\d+`},
		{Name: "XON_OFFSET", Pattern: `\d+`},
	},
	States: map[string][]extract.Rule{
		extract.StartState: {
			{
				Match:  `^\s*${SPEED}\s+${CABLE_LENGTH}\s+${SIZE}\s+${XON}\s+${XOFF}\s+${THRESHOLD}\s+${XON_OFFSET}\s*$`,
				Record: true,
			},
			{
				Match:  `^\s*${SPEED}\s+${CABLE_LENGTH}\s+${SIZE}\s+${XON}\s+${XOFF}\s+${THRESHOLD}\s*$`,
				Record: true,
			},
		},
	},
}
