package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docq-cli/internal/core/domain"
)

var askShowSources bool

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Answer a question from the document corpus",
	Long: `Indexes the corpus, selects the documents relevant to the question
and answers it with the configured LLM provider.

Examples:
  docq ask --dir ./docs "cuánto fueron las ventas en 2023?"
  docq ask --drive-folder 1AbC... "what did the Q1 report conclude?"`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().BoolVar(&askShowSources, "sources", true, "list the source documents used")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	query := strings.TrimSpace(args[0])
	ctx := cmd.Context()

	p, err := buildPipeline(ctx)
	if err != nil {
		return err
	}
	defer p.close()

	result, err := p.indexCorpus(ctx)
	if err != nil {
		return fmt.Errorf("indexing failed: %w", err)
	}
	reportIndexResult(cmd, result, false)

	answer, err := p.ask.Ask(ctx, query)
	if err != nil {
		var answerErr *domain.AnswerError
		if errors.As(err, &answerErr) {
			return fmt.Errorf("answering failed (%s): %w", answerErr.Cause, err)
		}
		return err
	}

	if answer.NoMatches {
		cmd.Println("No relevant documents found for this question.")
		return nil
	}

	cmd.Println(answer.Text)

	if askShowSources && len(answer.Sources) > 0 {
		cmd.Println()
		cmd.Printf("Sources (%s selection):\n", answer.Method)
		for _, src := range answer.Sources {
			marker := ""
			if src.Truncated {
				marker = " (truncated)"
			}
			cmd.Printf("  - %s%s\n", src.Name, marker)
		}
	}

	return nil
}
