package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/example/snippet-lab/go/pkg/kata"
)

type listEntry struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// NewListCommand lists the available katas.
func NewListCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available katas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			katas := kata.Catalog()

			if opts.Format == "json" {
				entries := make([]listEntry, 0, len(katas))
				for _, k := range katas {
					entries = append(entries, listEntry{Name: k.Name, Description: k.Description})
				}
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(entries)
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			for _, k := range katas {
				fmt.Fprintf(tw, "%s\t%s\n", k.Name, k.Description)
			}
			return tw.Flush()
		},
	}
}
