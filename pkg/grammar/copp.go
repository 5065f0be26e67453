package grammar

import "github.com/newtron-network/newtparse/pkg/extract"

// coppPolicy parses a COPP policy dump, one record per flow group:
//
//	Policy copp-system-policy
//	CoPP Aggregate Group: queue4_group1
//	    trap-action: trap
//	    trap-priority: 4
//	  Flow Group: copp-flow-bgp
//	    trap-ids: bgp,bgpv6
//	    queue: 4
//	    cir: 10000
//	    cbs: 10000
//	  Flow Group: copp-flow-lacp
//	    trap-ids: lacp
//	    queue: 4
//	    cir: 600
//	    cbs: 600
//
// The cbs line closes a flow-group block and emits the record. Policy name,
// aggregate group, and the group-level trap action/priority are fill-up
// fields: captured once on their header lines and carried into every flow
// record that follows, until the next header overwrites them. A block with
// no Flow Group line (group-level defaults) is dropped by the COPP_FGROUP
// requirement.
var coppPolicy = &extract.Definition{
	Name: "copp_policy",
	Fields: []extract.Field{
		{Name: "POLICY", Pattern: `\S+`, Fillup: true},
		{Name: "COPP_AGROUP", Pattern: `\S+`, Fillup: true},
		{Name: "TRAP_ACTION", Pattern: `\S+`, Fillup: true},
		{Name: "TRAP_PRIORITY", Pattern: `\d+`, Fillup: true},
		{Name: "COPP_FGROUP", Pattern: `\S+`, Required: true},
		{Name: "TRAP_IDS", Pattern: `\S+`},
		{Name: "QUEUE", Pattern: `\d+`},
		{Name: "CIR", Pattern: `\d+`},
		{Name: "CBS", Pattern: `\d+`},
	},
	States: map[string][]extract.Rule{
		extract.StartState: {
			{Match: `^Policy\s+${POLICY}\s*$`, Next: "Policy"},
		},
		"Policy": {
			{Match: `^Policy\s+${POLICY}\s*$`},
			{Match: `^CoPP Aggregate Group:\s+${COPP_AGROUP}\s*$`},
			{Match: `^\s+Flow Group:\s+${COPP_FGROUP}\s*$`},
			{Match: `^\s+trap-ids:\s+${TRAP_IDS}\s*$`},
			{Match: `^\s+trap-action:\s+${TRAP_ACTION}\s*$`},
			{Match: `^\s+trap-priority:\s+${TRAP_PRIORITY}\s*$`},
			{Match: `^\s+queue:\s+${QUEUE}\s*$`},
			{Match: `^\s+cir:\s+${CIR}\s*$`},
			{Match: `^\s+cbs:\s+${CBS}\s*$`, Record: true},
		},
	},
}
