// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/geo-curator/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent update runs from the journal",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().String("journal", "data/history.db", "run journal database path")
	historyCmd.Flags().Int("limit", 20, "maximum number of runs to list")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	journalPath, _ := cmd.Flags().GetString("journal")
	limit, _ := cmd.Flags().GetInt("limit")

	if _, err := os.Stat(journalPath); os.IsNotExist(err) {
		fmt.Println("No journal found. Run update with --history to start one.")
		return nil
	}

	store, err := history.Open(journalPath)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.Recent(context.Background(), limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-4s  %-20s  %8s  %6s  %6s\n",
		"ID", "Started", "Fetched", "Added", "Total")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 52))
	for _, r := range runs {
		fmt.Fprintf(os.Stdout, "%-4d  %-20s  %8d  %6d  %6d\n",
			r.ID, r.StartedAt.Local().Format("2006-01-02 15:04:05"),
			r.Fetched, r.Added, r.Total)
	}
	return nil
}
