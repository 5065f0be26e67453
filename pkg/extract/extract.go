package extract

import (
	"regexp"
	"strings"

	"github.com/newtron-network/newtparse/pkg/util"
)

// Options tunes parse behavior for one extraction pass.
type Options struct {
	// FillupSatisfiesRequired lets a Required field pass the emission
	// check when its value was carried over by Fillup rather than
	// captured in the current record. Off by default: a record must
	// capture its own required values.
	FillupSatisfiesRequired bool
}

// Parse runs the template over text with default options. See ParseWith.
func (t *Template) Parse(text string) ([]Record, error) {
	return t.ParseWith(text, Options{})
}

// ParseWith scans text line by line and returns the emitted records in
// boundary order. The only error source is a rule with an Error action;
// unmatched lines are skipped and records missing Required fields are
// dropped silently.
func (t *Template) ParseWith(text string, opts Options) ([]Record, error) {
	x := &extraction{
		tmpl:     t,
		opts:     opts,
		state:    StartState,
		cur:      make(map[string]string),
		captured: make(map[string]bool),
		fillup:   make(map[string]string),
	}

	for _, line := range splitLines(text) {
		if err := x.scan(line); err != nil {
			return nil, err
		}
	}

	// Pending record at end of input: emitted when it captured anything
	// since the last boundary and passes the Required check.
	if len(x.captured) > 0 {
		x.emit()
	}

	util.WithTemplate(t.name).Debugf("extracted %d records", len(x.records))
	return x.records, nil
}

// extraction is the per-parse accumulator: current state, in-progress
// record, and persisted fill-up values. It is created per call, so
// independent parses share nothing.
type extraction struct {
	tmpl     *Template
	opts     Options
	state    string
	cur      map[string]string
	captured map[string]bool
	fillup   map[string]string
	records  []Record
}

// scan applies the first matching rule of the current state to line.
// A Continue rule keeps scanning the same line against later rules.
func (x *extraction) scan(line string) error {
	rules := x.tmpl.states[x.state]
	for _, r := range rules {
		m := r.re.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		x.capture(r.re, m)
		if r.abort != "" {
			return &util.ParseAbortError{
				Template: x.tmpl.name,
				State:    x.state,
				Line:     line,
				Message:  r.abort,
			}
		}
		if r.record {
			x.emit()
		}
		if r.next != "" {
			x.state = r.next
		}
		if r.cont {
			continue
		}
		return nil
	}
	// No rule matched: skip the line. Device output interleaves banners
	// and separators with data, so this is not an error.
	return nil
}

// capture writes every participating named group into the current record.
// Groups that matched empty are treated as not captured.
func (x *extraction) capture(re *regexp.Regexp, m []string) {
	for gi, name := range re.SubexpNames() {
		if gi == 0 || name == "" || m[gi] == "" {
			continue
		}
		x.cur[name] = m[gi]
		x.captured[name] = true
		if x.tmpl.byName[name].Fillup {
			x.fillup[name] = m[gi]
		}
	}
}

// emit finalizes the current record and resets the buffer. Persisted
// fill-up values survive the reset.
func (x *extraction) emit() {
	if rec, ok := x.finalize(); ok {
		x.records = append(x.records, rec)
	}
	x.cur = make(map[string]string)
	x.captured = make(map[string]bool)
}

// finalize merges fill-up values into unset fields, applies the Required
// check, and reports whether the record should be emitted. Records with
// no values at all (boundary lines with nothing captured) are not emitted.
func (x *extraction) finalize() (Record, bool) {
	for name, val := range x.fillup {
		if _, set := x.cur[name]; !set {
			x.cur[name] = val
		}
	}
	if len(x.cur) == 0 {
		return nil, false
	}
	for _, f := range x.tmpl.fields {
		if !f.Required || x.captured[f.Name] {
			continue
		}
		if x.opts.FillupSatisfiesRequired && f.Fillup && x.cur[f.Name] != "" {
			continue
		}
		util.WithTemplate(x.tmpl.name).Debugf("dropping record: required field %s unset", f.Name)
		return nil, false
	}
	rec := make(Record, len(x.cur))
	for name, val := range x.cur {
		rec[name] = val
	}
	return rec, true
}

// splitLines splits on newlines, tolerating CRLF input and a trailing
// newline on the final line.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
