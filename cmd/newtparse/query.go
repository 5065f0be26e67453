package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/itchyny/gojq"

	"github.com/newtron-network/newtparse/pkg/extract"
)

// runQuery applies a jq expression to the record array and writes each
// result as a JSON line, matching jq's output shape.
func runQuery(w io.Writer, expr string, records []extract.Record) error {
	query, err := gojq.Parse(expr)
	if err != nil {
		return fmt.Errorf("parsing query: %w", err)
	}

	enc := json.NewEncoder(w)
	iter := query.Run(recordsToAny(records))
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if qerr, isErr := v.(error); isErr {
			return fmt.Errorf("running query: %w", qerr)
		}
		if err := enc.Encode(v); err != nil {
			return err
		}
	}
	return nil
}

// recordsToAny converts records to the plain any-typed values gojq operates
// on.
func recordsToAny(records []extract.Record) []any {
	out := make([]any, len(records))
	for i, rec := range records {
		m := make(map[string]any, len(rec))
		for k, v := range rec {
			m[k] = v
		}
		out[i] = m
	}
	return out
}
