package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var problemsCmd = &cobra.Command{
	Use:   "problems",
	Short: "List the (problem, variant) nodes of the reduction graph",
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := buildGraph()
		if err != nil {
			return err
		}
		for _, n := range g.Nodes() {
			v := n.Variant.String()
			if v == "" {
				fmt.Fprintln(cmd.OutOrStdout(), n.Name)
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s [%s]\n", n.Name, v)
		}
		return nil
	},
}

var reductionsCmd = &cobra.Command{
	Use:   "reductions [problem]",
	Short: "List reduction edges, optionally restricted to one source problem",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := buildGraph()
		if err != nil {
			return err
		}
		doc := g.ToJSON()
		for _, e := range doc.Edges {
			if len(args) == 1 && e.Source != args[0] {
				continue
			}
			marker := ""
			if e.Natural {
				marker = " (natural)"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s [%s] -> %s [%s]%s\n",
				e.Source, sortedVariantString(e.SourceVariant),
				e.Target, sortedVariantString(e.TargetVariant), marker)
		}
		return nil
	},
}
