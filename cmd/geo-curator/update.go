// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/geo-curator/internal/entrez"
	"github.com/pdiddy/geo-curator/internal/history"
	"github.com/pdiddy/geo-curator/internal/pipeline"
	"github.com/pdiddy/geo-curator/internal/search"
	"github.com/pdiddy/geo-curator/internal/summarize"
	"github.com/pdiddy/geo-curator/pkg/types"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "geo-curator/0.1"
	defaultDataFile  = "data/geo_data.json"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Fetch recent GEO series and merge new hits into the corpus",
	Long: `Update queries NCBI Entrez for GEO series modified within the lookup
window, filters candidates against the domain vocabulary, summarizes new
hits, and prepends them to the corpus file. The corpus is rewritten only
when at least one record was added, so an unchanged registry leaves the
file byte-identical.

NCBI requires a contact email: set it in a .secrets/ncbi-email file, the
GEO_CURATOR_NCBI_EMAIL environment variable, or the config file.`,
	RunE: runUpdate,
}

func init() {
	updateCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 30s)")
	updateCmd.Flags().String("data", defaultDataFile, "corpus file path")
	updateCmd.Flags().String("terms", "", "search terms YAML file (default: built-in vocabulary)")
	updateCmd.Flags().Int("retmax", 0, "maximum candidate ids per search (default 500)")
	updateCmd.Flags().Int("window", 0, "lookup window in days (default 30)")
	updateCmd.Flags().String("history", "", "run journal database path (empty: no journal)")
	updateCmd.Flags().Bool("dry-run", false, "report what would be added without writing the corpus")

	rootCmd.AddCommand(updateCmd)
}

// pipelineConfig assembles the run configuration from flags, the config
// file, and loaded secrets. Shared with the query command.
func pipelineConfig(cmd *cobra.Command) (types.PipelineConfig, error) {
	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = defaultTimeout
	}
	dataFile, _ := cmd.Flags().GetString("data")
	termsFile, _ := cmd.Flags().GetString("terms")
	retMax, _ := cmd.Flags().GetInt("retmax")
	window, _ := cmd.Flags().GetInt("window")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	terms := search.DefaultTerms()
	if termsFile != "" {
		var err error
		terms, err = search.LoadTerms(termsFile)
		if err != nil {
			return types.PipelineConfig{}, err
		}
	}

	httpCfg := types.HTTPConfig{
		Timeout:   timeout,
		UserAgent: defaultUserAgent,
	}

	return types.PipelineConfig{
		Entrez: types.EntrezConfig{
			HTTPConfig: httpCfg,
			Email:      secretDefault("ncbi-email", viper.GetString("ncbi_email")),
			APIKey:     secretDefault("ncbi-api-key", viper.GetString("ncbi_api_key")),
			RetMax:     retMax,
			WindowDays: window,
		},
		Summary: types.SummaryConfig{
			HTTPConfig: httpCfg,
			Model:      viper.GetString("summary_model"),
			APIKey:     secretDefault("minimax-api-key", viper.GetString("minimax_api_key")),
		},
		Terms:    terms,
		DataFile: dataFile,
		DryRun:   dryRun,
	}, nil
}

func runUpdate(cmd *cobra.Command, args []string) error {
	cfg, err := pipelineConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.Entrez.Email == "" {
		return fmt.Errorf("NCBI contact email required: create .secrets/ncbi-email or set GEO_CURATOR_NCBI_EMAIL")
	}

	httpClient := &http.Client{Timeout: cfg.Entrez.Timeout}

	registry := &entrez.Client{
		HTTP:   httpClient,
		Config: cfg.Entrez,
	}
	summarizer := &summarize.MiniMaxBackend{
		APIKey:   cfg.Summary.APIKey,
		Model:    cfg.Summary.Model,
		MaxChars: cfg.Summary.MaxChars,
		Client:   httpClient,
	}
	if summarizer.APIKey == "" {
		fmt.Fprintln(os.Stderr, "warning: no MiniMax API key; AI summary fields will be empty")
	}

	started := time.Now()
	summary, err := pipeline.Run(context.Background(), registry, summarizer, cfg, os.Stdout)
	if err != nil {
		return err
	}

	if historyPath, _ := cmd.Flags().GetString("history"); historyPath != "" && !cfg.DryRun {
		if jerr := recordRun(historyPath, started, pipeline.Query(cfg), summary); jerr != nil {
			fmt.Fprintf(os.Stderr, "warning: could not record run in journal: %v\n", jerr)
		}
	}

	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	if summary.Added > 0 {
		fmt.Fprintf(os.Stdout, "%s %d new record(s), corpus now %d\n", green("Done:"), summary.Added, summary.Total)
	} else {
		fmt.Fprintf(os.Stdout, "%s corpus unchanged at %d record(s)\n", green("Done:"), summary.Total)
	}
	return nil
}

func recordRun(path string, started time.Time, query string, summary pipeline.Summary) error {
	store, err := history.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()

	return store.Record(context.Background(), history.Run{
		StartedAt: started,
		Query:     query,
		Fetched:   summary.Fetched,
		Added:     summary.Added,
		Total:     summary.Total,
	})
}
