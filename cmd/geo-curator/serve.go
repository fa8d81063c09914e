// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/geo-curator/internal/webui"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the corpus directory for local preview",
	Long: `Serve runs a local static file server over the data directory so the
corpus JSON (and any viewer page placed alongside it) can be inspected
in a browser. Blocks until interrupted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")
		dir, _ := cmd.Flags().GetString("dir")
		return webui.Serve(addr, dir, os.Stdout)
	},
}

func init() {
	serveCmd.Flags().String("addr", "localhost:8000", "listen address")
	serveCmd.Flags().String("dir", "data", "directory to serve")

	rootCmd.AddCommand(serveCmd)
}
