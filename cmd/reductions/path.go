package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/CodingThrust/problemreductions/reduction"
)

var pathFlags struct {
	from        string
	fromVariant string
	to          string
	toVariant   string
	size        string
	cost        string
}

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Find the cheapest reduction path between two problems",
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := buildGraph()
		if err != nil {
			return err
		}
		srcVariant, err := parseVariant(pathFlags.fromVariant)
		if err != nil {
			return err
		}
		size, err := parseSize(pathFlags.size)
		if err != nil {
			return err
		}
		cost, err := parseCost(pathFlags.cost)
		if err != nil {
			return err
		}

		var found *reduction.Path
		if cmd.Flags().Changed("to-variant") {
			dstVariant, verr := parseVariant(pathFlags.toVariant)
			if verr != nil {
				return verr
			}
			found = g.FindCheapestPath(pathFlags.from, srcVariant, pathFlags.to, dstVariant, size, cost)
		} else {
			found = cheapestToName(g, pathFlags.from, srcVariant, pathFlags.to, size, cost)
		}
		if found == nil {
			fmt.Fprintf(cmd.OutOrStdout(), "no route from %s to %s\n", pathFlags.from, pathFlags.to)
			return nil
		}

		fmt.Fprintln(cmd.OutOrStdout(), found.String())
		overhead, err := g.ComposePathOverhead(found)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "composed overhead:")
		for _, field := range overhead.Fields() {
			p, _ := overhead.Get(field)
			fmt.Fprintf(cmd.OutOrStdout(), "  %s = %s\n", field, p.String())
		}
		if len(size) > 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "predicted output size: %s\n", overhead.EvaluateOutputSize(size).String())
		}
		return nil
	},
}

func init() {
	pathCmd.Flags().StringVar(&pathFlags.from, "from", "", "source problem name")
	pathCmd.Flags().StringVar(&pathFlags.fromVariant, "from-variant", "", "source variant, e.g. graph=SimpleGraph,weight=One")
	pathCmd.Flags().StringVar(&pathFlags.to, "to", "", "destination problem name")
	pathCmd.Flags().StringVar(&pathFlags.toVariant, "to-variant", "", "destination variant; all known variants tried when omitted")
	pathCmd.Flags().StringVar(&pathFlags.size, "size", "", "input size, e.g. num_vertices=10,num_edges=20")
	pathCmd.Flags().StringVar(&pathFlags.cost, "cost", "steps", "cost function: steps or field:<name>")
	_ = pathCmd.MarkFlagRequired("from")
	_ = pathCmd.MarkFlagRequired("to")
}
