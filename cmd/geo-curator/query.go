// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/geo-curator/internal/pipeline"
)

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Print the Entrez query an update run would execute",
	Long: `Query renders the effective Entrez search expression from the active
term vocabulary and lookup window, without contacting NCBI. Useful for
checking a custom terms file before running an update.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := pipelineConfig(cmd)
		if err != nil {
			return err
		}
		fmt.Println(pipeline.Query(cfg))
		return nil
	},
}

func init() {
	queryCmd.Flags().String("terms", "", "search terms YAML file (default: built-in vocabulary)")
	queryCmd.Flags().Int("window", 0, "lookup window in days (default 30)")

	rootCmd.AddCommand(queryCmd)
}
