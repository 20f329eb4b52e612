package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/CodingThrust/problemreductions/reduction"
)

const mcpServerVersion = "0.1.0"

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the reduction graph over MCP on stdio",
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := buildGraph()
		if err != nil {
			return err
		}
		return server.ServeStdio(newMCPServer(g))
	},
}

// newMCPServer exposes the reduction graph as MCP tools so agents can
// enumerate problems, plan reduction routes, and fetch the full graph.
func newMCPServer(g *reduction.Graph) *server.MCPServer {
	s := server.NewMCPServer(
		"problemreductions",
		mcpServerVersion,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)

	s.AddTool(mcp.NewTool("list_problems",
		mcp.WithDescription("List the (problem, variant) nodes of the reduction graph."),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var b strings.Builder
		for _, n := range g.Nodes() {
			b.WriteString(n.Name)
			if v := n.Variant.String(); v != "" {
				b.WriteString(" [" + v + "]")
			}
			b.WriteString("\n")
		}
		return mcp.NewToolResultText(b.String()), nil
	})

	s.AddTool(mcp.NewTool("find_path",
		mcp.WithDescription("Find the cheapest reduction path between two problems and report its composed size overhead."),
		mcp.WithString("from", mcp.Required(), mcp.Description("source problem name, e.g. IndependentSet")),
		mcp.WithString("to", mcp.Required(), mcp.Description("destination problem name, e.g. QUBO")),
		mcp.WithString("from_variant", mcp.Description("source variant as key=value pairs, e.g. graph=SimpleGraph,weight=One")),
		mcp.WithString("to_variant", mcp.Description("destination variant; all known variants are tried when omitted")),
		mcp.WithString("size", mcp.Description("input size as field=value pairs, e.g. num_vertices=10,num_edges=20")),
		mcp.WithString("cost", mcp.Description("cost function: steps (default) or field:<name>")),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		from, err := req.RequireString("from")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		to, err := req.RequireString("to")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		srcVariant, err := parseVariant(req.GetString("from_variant", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		size, err := parseSize(req.GetString("size", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		cost, err := parseCost(req.GetString("cost", "steps"))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		var found *reduction.Path
		if tv := req.GetString("to_variant", ""); tv != "" {
			dstVariant, verr := parseVariant(tv)
			if verr != nil {
				return mcp.NewToolResultError(verr.Error()), nil
			}
			found = g.FindCheapestPath(from, srcVariant, to, dstVariant, size, cost)
		} else {
			found = cheapestToName(g, from, srcVariant, to, size, cost)
		}
		if found == nil {
			return mcp.NewToolResultText(fmt.Sprintf("no route from %s to %s", from, to)), nil
		}

		var b strings.Builder
		b.WriteString(found.String() + "\n")
		overhead, err := g.ComposePathOverhead(found)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		b.WriteString("composed overhead:\n")
		for _, field := range overhead.Fields() {
			p, _ := overhead.Get(field)
			fmt.Fprintf(&b, "  %s = %s\n", field, p.String())
		}
		if len(size) > 0 {
			fmt.Fprintf(&b, "predicted output size: %s\n", overhead.EvaluateOutputSize(size).String())
		}
		return mcp.NewToolResultText(b.String()), nil
	})

	s.AddTool(mcp.NewTool("export_graph",
		mcp.WithDescription("Export the full reduction graph (nodes, edges, overheads) as JSON."),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		doc, err := g.ToJSONString()
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(doc), nil
	})

	return s
}
