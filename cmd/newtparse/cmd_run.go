package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/newtron-network/newtparse/pkg/cli"
	"github.com/newtron-network/newtparse/pkg/extract"
	"github.com/newtron-network/newtparse/pkg/grammar"
	"github.com/newtron-network/newtparse/pkg/util"
)

var (
	templateName   string // -t, --template
	templateFile   string // -f, --template-file
	jsonOutput     bool
	queryExpr      string // -q, --query
	fillupRequired bool
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Parse device output with a template",
	Long: `Parse a file (or stdin) with a built-in grammar or a YAML template.

Records print as an aligned table by default. --json emits a JSON array;
--query filters the array with a jq expression.

Examples:
  lldpctl | newtparse run -t lldp_neighbors
  newtparse run -t copp_policy copp-dump.txt --json
  newtparse run -t lldp_neighbors dump.txt -q '.[] | select(.Interface == "Ethernet0")'`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tmpl, err := resolveTemplate()
		if err != nil {
			return err
		}

		text, err := readInput(args)
		if err != nil {
			return err
		}

		opts := extract.Options{FillupSatisfiesRequired: fillupRequired}
		records, err := tmpl.ParseWith(string(text), opts)
		if err != nil {
			return fmt.Errorf("parsing input: %w", err)
		}
		util.WithTemplate(tmpl.Name()).Infof("extracted %d records", len(records))
		if records == nil {
			// Empty output stays a JSON array, not null.
			records = []extract.Record{}
		}

		switch {
		case queryExpr != "":
			return runQuery(os.Stdout, queryExpr, records)
		case jsonOutput:
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(records)
		default:
			cli.RenderRecords(os.Stdout, tmpl.Fields(), records)
			return nil
		}
	},
}

func init() {
	runCmd.Flags().StringVarP(&templateName, "template", "t", "", "built-in template name (see 'newtparse templates')")
	runCmd.Flags().StringVarP(&templateFile, "template-file", "f", "", "YAML template file")
	runCmd.Flags().BoolVar(&jsonOutput, "json", false, "output records as a JSON array")
	runCmd.Flags().StringVarP(&queryExpr, "query", "q", "", "jq expression applied to the record array")
	runCmd.Flags().BoolVar(&fillupRequired, "fillup-required", false, "let fill-up values satisfy required-field checks")
}

// resolveTemplate picks the template from -t or -f; exactly one is required.
func resolveTemplate() (*extract.Template, error) {
	switch {
	case templateName != "" && templateFile != "":
		return nil, fmt.Errorf("--template and --template-file are mutually exclusive")
	case templateName != "":
		return grammar.Lookup(templateName)
	case templateFile != "":
		return extract.LoadFile(templateFile)
	default:
		return nil, fmt.Errorf("a template is required: use -t <name> or -f <file.yaml>")
	}
}

// readInput reads the file argument, or stdin when no argument is given.
func readInput(args []string) ([]byte, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("reading input %s: %w", args[0], err)
	}
	return data, nil
}
