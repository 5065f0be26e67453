package grammar

import "github.com/newtron-network/newtparse/pkg/extract"

// lldpNeighbors parses lldpctl block output, one record per neighbor:
//
//	-------------------------------------------------------------------------
//	LLDP neighbors:
//	-------------------------------------------------------------------------
//	Interface:    Ethernet0, via: LLDP, RID: 1, Time: 0 day, 00:25:09
//	  Chassis:
//	    ChassisID:    mac 52:54:00:12:34:56
//	    SysName:      leaf2-ny
//	    SysDescr:     SONiC Software Version: SONiC.4.1.0
//	    MgmtIP:       10.250.0.102
//	    Capability:   Bridge, on
//	  Port:
//	    PortID:       ifname Ethernet4
//	    PortDescr:    to-leaf1
//	    TTL:          120
//	-------------------------------------------------------------------------
//
// The dashed separator is the record boundary. Leading separators and the
// "LLDP neighbors:" banner produce no record: nothing is captured and the
// required fields are unset.
var lldpNeighbors = &extract.Definition{
	Name: "lldp_neighbors",
	Fields: []extract.Field{
		{Name: "Interface", Pattern: `[^,]+`, Required: true},
		{Name: "Via", Pattern: `[^,]+`},
		{Name: "RID", Pattern: `\d+`},
		{Name: "Age", Pattern: `.+`},
		{Name: "Chassis_ID_type", Pattern: `\S+`},
		{Name: "Chassis_ID_value", Pattern: `\S+`, Required: true},
		{Name: "SysName", Pattern: `\S+`},
		{Name: "SysDescr", Pattern: `.+`},
		{Name: "MgmtIP", Pattern: `\S+`},
		{Name: "Capability", Pattern: `.+`},
		{Name: "PortID_type", Pattern: `\S+`},
		{Name: "PortID_value", Pattern: `\S+`, Required: true},
		{Name: "PortDescr", Pattern: `.+`},
		{Name: "TTL", Pattern: `\d+`},
	},
	States: map[string][]extract.Rule{
		extract.StartState: {
			{Match: `^Interface:\s+${Interface},\s+via:\s+${Via},\s+RID:\s+${RID},\s+Time:\s+${Age}$`},
			{Match: `^\s+ChassisID:\s+${Chassis_ID_type}\s+${Chassis_ID_value}\s*$`},
			{Match: `^\s+SysName:\s+${SysName}\s*$`},
			{Match: `^\s+SysDescr:\s+${SysDescr}$`},
			{Match: `^\s+MgmtIP:\s+${MgmtIP}\s*$`},
			{Match: `^\s+Capability:\s+${Capability}$`},
			{Match: `^\s+PortID:\s+${PortID_type}\s+${PortID_value}\s*$`},
			{Match: `^\s+PortDescr:\s+${PortDescr}$`},
			{Match: `^\s+TTL:\s+${TTL}\s*$`},
			{Match: `^-{5,}\s*$`, Record: true},
		},
	},
}
