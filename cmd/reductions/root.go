package main

import (
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/CodingThrust/problemreductions/poly"
	"github.com/CodingThrust/problemreductions/reduction"
	"github.com/CodingThrust/problemreductions/variant"

	// Populate the registry and the subtype relation.
	_ "github.com/CodingThrust/problemreductions/rules"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:           "reductions",
	Short:         "Explore and execute problem reductions",
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(problemsCmd, reductionsCmd, pathCmd, reduceCmd, exportCmd, mcpCmd)
}

// buildGraph constructs the reduction graph from the loaded registry.
func buildGraph() (*reduction.Graph, error) {
	g, err := reduction.NewGraph()
	if err != nil {
		return nil, fmt.Errorf("building reduction graph: %w", err)
	}
	slog.Debug("graph built",
		"types", g.NumTypes(),
		"nodes", g.NumVariantNodes(),
		"edges", g.NumReductions())
	return g, nil
}

// parseVariant parses "k=v,k=v" into a Variant; empty string is the
// empty variant.
func parseVariant(s string) (variant.Variant, error) {
	if s == "" {
		return variant.Variant{}, nil
	}
	m := make(map[string]string)
	for _, pair := range strings.Split(s, ",") {
		k, v, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("malformed variant dimension %q, want key=value", pair)
		}
		m[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return variant.FromLegacyMap(m), nil
}

// parseSize parses "field=int,field=int" into a ProblemSize.
func parseSize(s string) (poly.ProblemSize, error) {
	size := poly.ProblemSize{}
	if s == "" {
		return size, nil
	}
	for _, pair := range strings.Split(s, ",") {
		k, v, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("malformed size dimension %q, want field=value", pair)
		}
		var n int
		if _, err := fmt.Sscanf(strings.TrimSpace(v), "%d", &n); err != nil {
			return nil, fmt.Errorf("size dimension %q: %w", pair, err)
		}
		size[strings.TrimSpace(k)] = n
	}
	return size, nil
}

// parseCost maps a --cost flag value to a cost function: "steps" or
// "field:<name>".
func parseCost(s string) (reduction.CostFunc, error) {
	switch {
	case s == "" || s == "steps":
		return reduction.MinimizeSteps{}, nil
	case strings.HasPrefix(s, "field:"):
		field := strings.TrimPrefix(s, "field:")
		if field == "" {
			return nil, fmt.Errorf("--cost field: needs a size field name")
		}
		return reduction.Minimize(field), nil
	default:
		return nil, fmt.Errorf("unknown cost function %q, want steps or field:<name>", s)
	}
}

// cheapestToName resolves a name-only destination: one search per known
// variant of the destination name, keeping the globally cheapest result
// under the given cost function.
func cheapestToName(
	g *reduction.Graph,
	srcName string, srcVariant variant.Variant,
	dstName string,
	size poly.ProblemSize,
	cost reduction.CostFunc,
) *reduction.Path {
	var best *reduction.Path
	bestCost := 0.0
	for _, dv := range g.VariantsOf(dstName) {
		p := g.FindCheapestPath(srcName, srcVariant, dstName, dv, size, cost)
		if p == nil {
			continue
		}
		c, err := g.PathCost(p, size, cost)
		if err != nil {
			continue
		}
		if best == nil || c < bestCost {
			best, bestCost = p, c
		}
	}
	return best
}

// sortedVariantString renders a legacy map deterministically.
func sortedVariantString(m map[string]string) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "=" + m[k]
	}
	return strings.Join(parts, ",")
}
