package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the reduction graph as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := buildGraph()
		if err != nil {
			return err
		}
		doc, err := g.ToJSONString()
		if err != nil {
			return err
		}
		if exportOut == "" {
			fmt.Fprintln(cmd.OutOrStdout(), doc)
			return nil
		}
		return os.WriteFile(exportOut, []byte(doc+"\n"), 0o644)
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "output", "o", "", "write JSON to a file instead of stdout")
}
