package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lucidsearch/luq/batch"
)

var (
	batchWorkers  int
	batchOutPath  string
	batchProgress bool
)

var batchCmd = &cobra.Command{
	Use:   "batch [manifest]",
	Short: "Parse every query in a manifest file and emit a JSON report",
	Long: `Parse every query in a manifest file and emit a JSON report.

The manifest is a YAML file with a "queries" list, or a plain text file
with one query per line. Per-query failures are captured in the report
instead of aborting the run.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		manifest, err := batch.LoadManifest(args[0])
		if err != nil {
			logger.Error("Failed to load manifest", zap.Error(err))
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		if len(manifest.Queries) == 0 {
			fmt.Fprintln(os.Stderr, "error: manifest contains no queries")
			os.Exit(1)
		}

		workers := batchWorkers
		if manifest.Workers > 0 && !cmd.Flags().Changed("workers") {
			workers = manifest.Workers
		}

		runner := batch.NewRunner(logger, workers, batchProgress)
		results, summary, err := runner.Run(cmd.Context(), manifest.Queries)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}

		report := struct {
			Results []batch.Result `json:"results"`
			Summary batch.Summary  `json:"summary"`
		}{results, summary}

		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			logger.Error("Failed to encode report", zap.Error(err))
			os.Exit(1)
		}
		if batchOutPath == "" {
			fmt.Println(string(data))
		} else if err := os.WriteFile(batchOutPath, data, 0o644); err != nil {
			logger.Error("Failed to write report", zap.String("path", batchOutPath), zap.Error(err))
			os.Exit(1)
		}

		fmt.Fprintf(os.Stderr, "%d queries: %d ok, %d failed (%s)\n",
			summary.Total, summary.Succeeded, summary.Failed, summary.Elapsed)
		if summary.Failed > 0 {
			os.Exit(exitSyntaxError)
		}
	},
}

func init() {
	batchCmd.Flags().IntVar(&batchWorkers, "workers", 4, "Number of concurrent workers")
	batchCmd.Flags().StringVarP(&batchOutPath, "output", "o", "", "Write the JSON report to a file instead of stdout")
	batchCmd.Flags().BoolVar(&batchProgress, "progress", true, "Show a progress bar")
}
