// Command reductions is the command-line surface over the reduction
// graph: listing problems and edges, cheapest-path queries, chain
// execution on JSON instances, graph export, and an MCP tool server.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
