package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/docq-cli/internal/core/ports/driving"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Index the document corpus and report the catalogue",
	Long: `Lists the corpus and builds the metadata catalogue, reporting how
many documents were indexed, which failed and whether the ingestion
hard limit truncated the corpus.`,
	Args: cobra.NoArgs,
	RunE: runIndex,
}

func init() {
	rootCmd.AddCommand(indexCmd)
}

func runIndex(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	p, err := buildPipeline(ctx)
	if err != nil {
		return err
	}
	defer p.close()

	result, err := p.indexCorpus(ctx)
	if err != nil {
		return err
	}

	reportIndexResult(cmd, result, true)
	return nil
}

// reportIndexResult prints an indexing summary. When detailed is set,
// per-document failures are listed as well.
func reportIndexResult(cmd *cobra.Command, result *driving.IndexResult, detailed bool) {
	if detailed {
		cmd.Printf("Indexed %d documents (run %s)\n", result.Indexed, result.RunID)
	}

	if result.Truncated > 0 {
		cmd.Printf("Warning: catalogue limit reached, %d documents skipped\n", result.Truncated)
	}
	if result.Cancelled {
		cmd.Println("Warning: indexing was cancelled before completing")
	}
	if len(result.Failures) > 0 {
		cmd.Printf("Warning: %d documents could not be indexed\n", len(result.Failures))
		if detailed {
			for _, f := range result.Failures {
				cmd.Printf("  - %s: %v\n", f.Name, f.Err)
			}
		}
	}
}
