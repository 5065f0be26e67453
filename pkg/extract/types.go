// Package extract implements a line-oriented record extractor for network
// device CLI output. A template declares named capture fields and ordered
// per-state rule lists; parsing scans each input line against the rules of
// the current state, first match wins, and emits flat string records at
// explicit boundary rules. Lines matching no rule are skipped — device
// output interleaves banners and separators with data.
package extract

// StartState is the state every parse begins in. A Definition without it
// is rejected at compile time.
const StartState = "Start"

// Field declares a named capture slot for a template.
type Field struct {
	// Name is the record key. It must be usable as a regexp group name
	// (letters, digits, underscores).
	Name string

	// Pattern is the regexp fragment substituted for ${Name} references
	// in rule match expressions.
	Pattern string

	// Required drops the record at emission time when the field was not
	// captured. The drop is silent: absence of a record means "no match",
	// not failure.
	Required bool

	// Fillup carries the last captured value into subsequent records
	// until a new value is captured.
	Fillup bool
}

// Rule matches one input line and drives the extractor. Match may reference
// declared fields as ${Name} placeholders or contain raw (?P<Name>...)
// groups; either way every group must name a declared field.
//
// Control flags combine as follows: Record emits and resets the current
// record, Next transitions to another state before the next line, and the
// two may be combined. Continue re-scans the same line against subsequent
// rules of the current state and cannot be combined with Record or Next.
// Error aborts the whole parse and is exclusive with everything else.
type Rule struct {
	Match    string
	Record   bool
	Continue bool
	Next     string
	Error    string
}

// Definition is the declarative, uncompiled form of a template.
type Definition struct {
	Name   string
	Fields []Field
	States map[string][]Rule
}

// Record maps field names to captured values. Numeric fields (TTL, CIR,
// CBS, ...) stay strings at this layer; conversion is up to the caller.
type Record map[string]string
