package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/CodingThrust/problemreductions/problems"
	"github.com/CodingThrust/problemreductions/reduction"
	"github.com/CodingThrust/problemreductions/solver"
)

// instanceDoc is the JSON input shape of the reduce command; only the
// fields relevant to the named problem family are read.
type instanceDoc struct {
	Problem string `json:"problem"`

	// Graph problems.
	NumVertices int      `json:"num_vertices,omitempty"`
	Edges       [][2]int `json:"edges,omitempty"`
	Weights     []int    `json:"weights,omitempty"`

	// Satisfiability problems.
	NumVars int     `json:"num_vars,omitempty"`
	Clauses [][]int `json:"clauses,omitempty"`

	// Clause width for KSatisfiability, color count for Coloring.
	K int `json:"k,omitempty"`
}

// loadInstance decodes a JSON instance into a concrete problem value.
func loadInstance(path string) (any, problems.Problem, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	var doc instanceDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	graphOpts := func(onVertices bool) []problems.GraphOption {
		if doc.Weights == nil {
			return nil
		}
		if onVertices {
			return []problems.GraphOption{problems.WithVertexWeights(doc.Weights)}
		}
		return []problems.GraphOption{problems.WithEdgeWeights(doc.Weights)}
	}

	switch doc.Problem {
	case "IndependentSet", "VertexCover":
		g, err := problems.NewUndirectedGraph(doc.NumVertices, doc.Edges)
		if err != nil {
			return nil, nil, err
		}
		opts := graphOpts(true)
		if doc.Problem == "IndependentSet" {
			p, err := problems.NewIndependentSet(g, opts...)
			return p, p, err
		}
		p, err := problems.NewVertexCover(g, opts...)
		return p, p, err
	case "MaxCut", "Matching":
		g, err := problems.NewUndirectedGraph(doc.NumVertices, doc.Edges)
		if err != nil {
			return nil, nil, err
		}
		opts := graphOpts(false)
		if doc.Problem == "MaxCut" {
			p, err := problems.NewMaxCut(g, opts...)
			return p, p, err
		}
		p, err := problems.NewMatching(g, opts...)
		return p, p, err
	case "Coloring":
		g, err := problems.NewUndirectedGraph(doc.NumVertices, doc.Edges)
		if err != nil {
			return nil, nil, err
		}
		p, err := problems.NewColoring(g, doc.K)
		return p, p, err
	case "Satisfiability", "KSatisfiability":
		clauses := make([]problems.Clause, len(doc.Clauses))
		for i, c := range doc.Clauses {
			clauses[i] = problems.Clause(c)
		}
		if doc.Problem == "Satisfiability" {
			p, err := problems.NewSatisfiability(doc.NumVars, clauses)
			return p, p, err
		}
		p, err := problems.NewKSatisfiability(doc.K, doc.NumVars, clauses)
		return p, p, err
	default:
		return nil, nil, fmt.Errorf("unsupported problem family %q", doc.Problem)
	}
}

var reduceFlags struct {
	input     string
	to        string
	toVariant string
	cost      string
	solve     bool
}

var reduceCmd = &cobra.Command{
	Use:   "reduce",
	Short: "Execute a reduction chain on a JSON instance",
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := buildGraph()
		if err != nil {
			return err
		}
		instance, prob, err := loadInstance(reduceFlags.input)
		if err != nil {
			return err
		}
		cost, err := parseCost(reduceFlags.cost)
		if err != nil {
			return err
		}

		srcName, srcVariant, size := prob.Name(), prob.Variant(), prob.Size()
		var path *reduction.Path
		if cmd.Flags().Changed("to-variant") {
			dstVariant, verr := parseVariant(reduceFlags.toVariant)
			if verr != nil {
				return verr
			}
			path = g.FindCheapestPath(srcName, srcVariant, reduceFlags.to, dstVariant, size, cost)
		} else {
			path = cheapestToName(g, srcName, srcVariant, reduceFlags.to, size, cost)
		}
		if path == nil {
			return fmt.Errorf("no route from %s to %s", srcName, reduceFlags.to)
		}
		slog.Debug("executing chain", "path", path.String(), "hops", path.Len())

		chain, err := g.ReduceAlongPath(path, instance)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path.String())

		target, ok := chain.Target().(problems.Problem)
		if !ok {
			return fmt.Errorf("target instance %T is not a problem model", chain.Target())
		}
		fmt.Fprintf(cmd.OutOrStdout(), "target size: %s\n", target.Size().String())

		if !reduceFlags.solve {
			return nil
		}
		best, err := solver.NewBruteForce().FindBest(target)
		if err != nil {
			return err
		}
		extracted := chain.ExtractSolution(best.Config)
		value, valid := prob.Evaluate(extracted)
		fmt.Fprintf(cmd.OutOrStdout(), "target optimum: %v\n", best.Value)
		fmt.Fprintf(cmd.OutOrStdout(), "extracted source solution: %v (value %v, valid %v)\n",
			extracted, value, valid)
		return nil
	},
}

func init() {
	reduceCmd.Flags().StringVar(&reduceFlags.input, "input", "", "JSON instance file")
	reduceCmd.Flags().StringVar(&reduceFlags.to, "to", "", "destination problem name")
	reduceCmd.Flags().StringVar(&reduceFlags.toVariant, "to-variant", "", "destination variant; all known variants tried when omitted")
	reduceCmd.Flags().StringVar(&reduceFlags.cost, "cost", "steps", "cost function: steps or field:<name>")
	reduceCmd.Flags().BoolVar(&reduceFlags.solve, "solve", false, "brute-force the target and map the optimum back")
	_ = reduceCmd.MarkFlagRequired("input")
	_ = reduceCmd.MarkFlagRequired("to")
}
