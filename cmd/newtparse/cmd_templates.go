package main

import (
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/newtron-network/newtparse/pkg/cli"
	"github.com/newtron-network/newtparse/pkg/grammar"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List built-in templates",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		t := cli.NewTable(os.Stdout, "NAME", "FIELDS", "REQUIRED")
		for _, name := range grammar.Names() {
			tmpl, err := grammar.Lookup(name)
			if err != nil {
				return err
			}
			var required []string
			for _, f := range tmpl.Fields() {
				if f.Required {
					required = append(required, f.Name)
				}
			}
			t.Row(name, strconv.Itoa(len(tmpl.Fields())), strings.Join(required, ","))
		}
		t.Flush()
		return nil
	},
}
