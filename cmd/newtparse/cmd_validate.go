package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/newtron-network/newtparse/pkg/cli"
	"github.com/newtron-network/newtparse/pkg/extract"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file.yaml>",
	Short: "Validate a YAML template file",
	Long: `Load and validate a YAML template file without parsing anything.

All definition problems (unknown states, undeclared fields, bad patterns,
illegal rule flag combinations) are reported together.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tmpl, err := extract.LoadFile(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("%s: template %s is valid (%d fields, %d states)\n",
			cli.Green("ok"), cli.Bold(tmpl.Name()), len(tmpl.Fields()), len(tmpl.States()))
		return nil
	},
}
