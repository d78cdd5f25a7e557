package cli

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docq-cli/internal/adapters/driven/ai"
	configfile "github.com/custodia-labs/docq-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/docq-cli/internal/core/domain"
)

// secretKeys are masked in config output.
var secretKeys = map[string]bool{
	configfile.KeyLLMAPIKey: true,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage docq configuration",
	Long: `Read and write the docq configuration file.

Common keys:
  llm.provider    LLM provider: ollama, openai or anthropic
  llm.model       model name (defaults per provider)
  llm.api_key     API key for cloud providers
  llm.base_url    API endpoint override
  cache.backend   content cache: memory or sqlite
  drive.folder    default Google Drive folder ID

Examples:
  docq config set llm.provider openai
  docq config set llm.api_key sk-...
  docq config get llm.provider
  docq config list`,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

var configGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Print a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigList,
}

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configListCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	if key == configfile.KeyLLMProvider {
		provider := domain.AIProvider(value)
		if !provider.IsValid() {
			names := make([]string, 0, len(domain.AllLLMProviders()))
			for _, p := range domain.AllLLMProviders() {
				names = append(names, p.String())
			}
			return fmt.Errorf("unknown provider %q (valid: %s)", value, strings.Join(names, ", "))
		}
	}
	if key == configfile.KeyCacheBackend && !domain.CacheBackend(value).IsValid() {
		return fmt.Errorf("unknown cache backend %q (valid: memory, sqlite)", value)
	}

	// Numeric pipeline keys are stored as integers.
	var stored any = value
	if strings.HasPrefix(key, "pipeline.") {
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s expects an integer value", key)
		}
		stored = n
	}

	if err := configStore.Set(key, stored); err != nil {
		return fmt.Errorf("saving configuration: %w", err)
	}

	cmd.Printf("%s = %v\n", key, displayValue(key, stored))

	// Validate LLM credentials as soon as the configuration is complete,
	// so a bad key or unreachable endpoint surfaces here instead of on
	// the first ask.
	if strings.HasPrefix(key, "llm.") {
		settings := configfile.LoadAppSettings(configStore)
		if err := ai.ValidateLLMConfig(&settings.LLM); err != nil {
			cmd.Printf("Warning: LLM configuration saved but validation failed: %v\n", err)
		}
	}
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	key := args[0]

	value, ok := configStore.Get(key)
	if !ok {
		return fmt.Errorf("key %q is not set", key)
	}

	cmd.Printf("%v\n", displayValue(key, value))
	return nil
}

func runConfigList(cmd *cobra.Command, _ []string) error {
	settings := configfile.LoadAppSettings(configStore)

	pairs := map[string]any{
		configfile.KeyLLMProvider:       settings.LLM.Provider.String(),
		configfile.KeyLLMModel:          settings.LLM.Model,
		configfile.KeyLLMBaseURL:        settings.LLM.BaseURL,
		configfile.KeyLLMAPIKey:         settings.LLM.APIKey,
		configfile.KeyPreviewLength:     settings.Pipeline.PreviewLength,
		configfile.KeyBatchSize:         settings.Pipeline.BatchSize,
		configfile.KeyMaxDocsForModel:   settings.Pipeline.MaxDocsForModelSelection,
		configfile.KeyTopRelevantDocs:   settings.Pipeline.TopRelevantDocs,
		configfile.KeyMaxDocContentLen:  settings.Pipeline.MaxDocContentLength,
		configfile.KeyTotalContextChars: settings.Pipeline.TotalContextBudget,
		configfile.KeyMaxCatalogueSize:  settings.Pipeline.MaxCatalogueSize,
		configfile.KeyCacheBackend:      string(settings.Cache),
		configfile.KeyDriveFolder:       settings.DriveFolder,
	}

	keys := make([]string, 0, len(pairs))
	for k := range pairs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		cmd.Printf("%s = %v\n", k, displayValue(k, pairs[k]))
	}
	cmd.Println()
	cmd.Printf("config file: %s\n", configStore.Path())
	return nil
}

// displayValue masks secrets for output.
func displayValue(key string, value any) any {
	if secretKeys[key] {
		if s, ok := value.(string); ok && s != "" {
			return "********"
		}
	}
	return value
}
