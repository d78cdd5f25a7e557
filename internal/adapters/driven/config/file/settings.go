package file

import (
	"github.com/custodia-labs/docq-cli/internal/core/domain"
	"github.com/custodia-labs/docq-cli/internal/core/ports/driven"
)

// Configuration keys. Stored in dot notation and rendered as TOML
// sections ([llm], [pipeline]) on disk.
const (
	KeyLLMProvider = "llm.provider"
	KeyLLMModel    = "llm.model"
	KeyLLMBaseURL  = "llm.base_url"
	KeyLLMAPIKey   = "llm.api_key"

	KeyPreviewLength     = "pipeline.preview_length"
	KeyBatchSize         = "pipeline.batch_size"
	KeyMaxDocsForModel   = "pipeline.max_docs_for_model_selection"
	KeyTopRelevantDocs   = "pipeline.top_relevant_docs"
	KeyMaxDocContentLen  = "pipeline.max_doc_content_length"
	KeyTotalContextChars = "pipeline.total_context_budget"
	KeyMaxCatalogueSize  = "pipeline.max_catalogue_size"

	KeyCacheBackend = "cache.backend"
	KeyDriveFolder  = "drive.folder"
)

// LoadAppSettings builds AppSettings from a config store. Missing keys
// fall back to defaults, so a partial (or absent) config file is valid.
func LoadAppSettings(store driven.ConfigStore) domain.AppSettings {
	settings := domain.DefaultAppSettings()

	settings.LLM = domain.LLMSettings{
		Provider: domain.AIProvider(store.GetString(KeyLLMProvider)),
		Model:    store.GetString(KeyLLMModel),
		BaseURL:  store.GetString(KeyLLMBaseURL),
		APIKey:   store.GetString(KeyLLMAPIKey),
	}
	if settings.LLM.Model == "" && settings.LLM.Provider.IsValid() {
		settings.LLM.Model = domain.DefaultLLMModels()[settings.LLM.Provider]
	}

	settings.Pipeline = domain.PipelineSettings{
		PreviewLength:            store.GetInt(KeyPreviewLength),
		BatchSize:                store.GetInt(KeyBatchSize),
		MaxDocsForModelSelection: store.GetInt(KeyMaxDocsForModel),
		TopRelevantDocs:          store.GetInt(KeyTopRelevantDocs),
		MaxDocContentLength:      store.GetInt(KeyMaxDocContentLen),
		TotalContextBudget:       store.GetInt(KeyTotalContextChars),
		MaxCatalogueSize:         store.GetInt(KeyMaxCatalogueSize),
	}.Normalise()

	if backend := domain.CacheBackend(store.GetString(KeyCacheBackend)); backend.IsValid() {
		settings.Cache = backend
	}
	settings.DriveFolder = store.GetString(KeyDriveFolder)

	return settings
}

// SaveAppSettings writes AppSettings back to a config store.
func SaveAppSettings(store driven.ConfigStore, settings domain.AppSettings) error {
	pairs := []struct {
		key   string
		value any
	}{
		{KeyLLMProvider, settings.LLM.Provider.String()},
		{KeyLLMModel, settings.LLM.Model},
		{KeyLLMBaseURL, settings.LLM.BaseURL},
		{KeyLLMAPIKey, settings.LLM.APIKey},
		{KeyPreviewLength, settings.Pipeline.PreviewLength},
		{KeyBatchSize, settings.Pipeline.BatchSize},
		{KeyMaxDocsForModel, settings.Pipeline.MaxDocsForModelSelection},
		{KeyTopRelevantDocs, settings.Pipeline.TopRelevantDocs},
		{KeyMaxDocContentLen, settings.Pipeline.MaxDocContentLength},
		{KeyTotalContextChars, settings.Pipeline.TotalContextBudget},
		{KeyMaxCatalogueSize, settings.Pipeline.MaxCatalogueSize},
		{KeyCacheBackend, string(settings.Cache)},
		{KeyDriveFolder, settings.DriveFolder},
	}

	for _, p := range pairs {
		if err := store.Set(p.key, p.value); err != nil {
			return err
		}
	}
	return nil
}
