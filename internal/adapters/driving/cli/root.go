// Package cli implements the docq command-line interface.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/oauth2"

	"github.com/custodia-labs/docq-cli/internal/adapters/driven/ai"
	configfile "github.com/custodia-labs/docq-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/docq-cli/internal/adapters/driven/drive"
	"github.com/custodia-labs/docq-cli/internal/adapters/driven/filesystem"
	"github.com/custodia-labs/docq-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/docq-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/docq-cli/internal/core/domain"
	"github.com/custodia-labs/docq-cli/internal/core/ports/driven"
	"github.com/custodia-labs/docq-cli/internal/core/ports/driving"
	"github.com/custodia-labs/docq-cli/internal/core/services"
	"github.com/custodia-labs/docq-cli/internal/logger"
)

// driveTokenEnv carries an OAuth2 access token for the Drive connector.
// Token acquisition (consent flow, refresh) is outside docq's scope.
const driveTokenEnv = "DOCQ_DRIVE_TOKEN"

var version = "dev"

var (
	flagVerbose bool
	flagDir     string
	flagDrive   string
)

var (
	configStore driven.ConfigStore
	appSettings domain.AppSettings
)

var rootCmd = &cobra.Command{
	Use:   "docq",
	Short: "Ask questions over a document corpus",
	Long: `docq indexes a document corpus (a local folder or a Google Drive
folder), selects the documents relevant to a question and answers it
with a configured LLM provider, citing its sources.

Without an LLM provider configured, selection falls back to keyword
matching and answering is unavailable.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(flagVerbose)

		store, err := configfile.NewConfigStore("")
		if err != nil {
			return fmt.Errorf("loading configuration: %w", err)
		}
		configStore = store
		appSettings = configfile.LoadAppSettings(store)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&flagDir, "dir", "", "index a local folder instead of Google Drive")
	rootCmd.PersistentFlags().StringVar(&flagDrive, "drive-folder", "", "Google Drive folder ID to index (overrides config)")
}

// Execute runs the root command.
func Execute(v string) error {
	if v != "" {
		version = v
	}
	return rootCmd.Execute()
}

// newConnector selects the corpus connector for this invocation.
// A local directory takes precedence; otherwise Drive is used when a
// folder and token are available.
func newConnector(ctx context.Context) (driven.CorpusConnector, string, error) {
	if flagDir != "" {
		return filesystem.New(flagDir), "", nil
	}

	folder := flagDrive
	if folder == "" {
		folder = appSettings.DriveFolder
	}
	if folder != "" {
		token := os.Getenv(driveTokenEnv)
		if token == "" {
			return nil, "", fmt.Errorf("drive folder configured but %s is not set", driveTokenEnv)
		}
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		conn, err := drive.NewConnector(ctx, drive.Config{TokenSource: ts})
		if err != nil {
			return nil, "", err
		}
		return conn, folder, nil
	}

	// Default: current directory as a local corpus.
	return filesystem.New("."), "", nil
}

// newContentCache selects the content cache backend from settings.
func newContentCache() (driven.ContentCache, error) {
	if appSettings.Cache == domain.CacheBackendSQLite {
		return sqlite.NewContentCache("")
	}
	return memory.NewContentCache(), nil
}

// pipeline bundles the services built for one invocation.
type pipeline struct {
	connector driven.CorpusConnector
	folder    string
	cache     driven.ContentCache
	llm       driven.LLMService
	indexer   *services.Indexer
	ask       *services.AskService
}

// close releases the pipeline's resources.
func (p *pipeline) close() {
	if p.llm != nil {
		p.llm.Close()
	}
	if p.cache != nil {
		p.cache.Close()
	}
	if p.connector != nil {
		p.connector.Close()
	}
}

// buildPipeline wires the full ask pipeline from settings and flags.
// The LLM is optional: when unconfigured or unreachable the pipeline
// degrades to keyword-only selection.
func buildPipeline(ctx context.Context) (*pipeline, error) {
	connector, folder, err := newConnector(ctx)
	if err != nil {
		return nil, err
	}

	cache, err := newContentCache()
	if err != nil {
		connector.Close()
		return nil, err
	}

	llm, err := ai.CreateAndValidateLLMService(&appSettings.LLM)
	if err != nil {
		logger.Warn("LLM unavailable, continuing with keyword selection: %v", err)
		llm = nil
	}
	if llm != nil {
		logger.Debug("using LLM model %s", llm.ModelName())
	}

	scorer := services.NewScorer()
	indexer := services.NewIndexer(connector, appSettings.Pipeline)
	selector := services.NewSelector(scorer, llm, appSettings.Pipeline)
	loader := services.NewLoader(connector, cache)
	budgeter := services.NewBudgeter(appSettings.Pipeline)

	return &pipeline{
		connector: connector,
		folder:    folder,
		cache:     cache,
		llm:       llm,
		indexer:   indexer,
		ask:       services.NewAskService(indexer, selector, loader, budgeter, llm),
	}, nil
}

// indexCorpus lists the corpus and indexes it, logging progress.
func (p *pipeline) indexCorpus(ctx context.Context) (*driving.IndexResult, error) {
	logger.Section("Indexing corpus")

	files, err := p.connector.ListFiles(ctx, p.folder)
	if err != nil {
		return nil, fmt.Errorf("listing corpus: %w", err)
	}
	logger.Debug("found %d files", len(files))

	return p.indexer.Index(ctx, files)
}
