// Newtparse - Structured Record Extraction for Device CLI Output
//
// A CLI tool for turning raw switch command output into structured records
// using declarative line-matching templates:
//   - Built-in grammars for LLDP neighbor dumps, COPP policy dumps, and
//     buffer-profile lookup tables
//   - User templates loaded from YAML files
//   - Table output by default, JSON with --json, jq filtering with --query
//
// Examples:
//
//	lldpctl | newtparse run -t lldp_neighbors
//	newtparse run -t copp_policy copp-dump.txt --json
//	newtparse run -f templates/bgp_summary.yaml show-bgp.txt -q '.[].Peer'
//	newtparse validate templates/bgp_summary.yaml
//	newtparse templates
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/newtron-network/newtparse/pkg/util"
	"github.com/newtron-network/newtparse/pkg/version"
)

var logLevel string

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:               "newtparse",
	Short:             "Structured record extraction from device CLI output",
	SilenceUsage:      true,
	SilenceErrors:     true,
	CompletionOptions: cobra.CompletionOptions{HiddenDefaultCmd: true},
	Long: `Newtparse extracts structured records from network device CLI output.

Templates declare named capture fields and per-state matching rules;
parsing emits one flat record per boundary line. Unmatched lines are
skipped, and records missing required fields are dropped.

  newtparse run -t <template> [file]     parse with a built-in grammar
  newtparse run -f <file.yaml> [file]    parse with a YAML template`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return util.SetLogLevel(logLevel)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("newtparse " + version.Info())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(templatesCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd)
}
