package domain

const unknownDescription = "Unknown"

// Pipeline defaults. Overridable via config file or CLI flags.
const (
	// DefaultPreviewLength is the per-document preview cap built during indexing.
	DefaultPreviewLength = 500

	// DefaultBatchSize bounds concurrent metadata fetches per batch.
	DefaultBatchSize = 5

	// DefaultMaxDocsForModelSelection is the candidate cap for the
	// model-assisted ranking call. Larger catalogues are pre-filtered
	// lexically first.
	DefaultMaxDocsForModelSelection = 200

	// DefaultTopRelevantDocs is the maximum number of documents a
	// selection returns, regardless of path.
	DefaultTopRelevantDocs = 15

	// DefaultMaxDocContentLength is the per-document character cap
	// applied before context assembly.
	DefaultMaxDocContentLength = 100000

	// DefaultTotalContextBudget is the aggregate character cap on text
	// handed to the answering model.
	DefaultTotalContextBudget = 400000

	// DefaultMaxCatalogueSize is the ingestion hard limit on documents.
	DefaultMaxCatalogueSize = 1000
)

// PipelineSettings holds the tunables of the selection and context
// assembly pipeline.
type PipelineSettings struct {
	// PreviewLength caps each catalogue preview, in characters.
	PreviewLength int

	// BatchSize bounds concurrent fetches during indexing.
	BatchSize int

	// MaxDocsForModelSelection caps candidates sent to the ranking call.
	MaxDocsForModelSelection int

	// TopRelevantDocs caps the final selection size.
	TopRelevantDocs int

	// MaxDocContentLength caps each document's content, in characters.
	MaxDocContentLength int

	// TotalContextBudget caps aggregate context size, in characters.
	TotalContextBudget int

	// MaxCatalogueSize is the ingestion hard limit on documents.
	MaxCatalogueSize int
}

// DefaultPipelineSettings returns the standard pipeline tunables.
func DefaultPipelineSettings() PipelineSettings {
	return PipelineSettings{
		PreviewLength:            DefaultPreviewLength,
		BatchSize:                DefaultBatchSize,
		MaxDocsForModelSelection: DefaultMaxDocsForModelSelection,
		TopRelevantDocs:          DefaultTopRelevantDocs,
		MaxDocContentLength:      DefaultMaxDocContentLength,
		TotalContextBudget:       DefaultTotalContextBudget,
		MaxCatalogueSize:         DefaultMaxCatalogueSize,
	}
}

// Normalise fills zero or negative fields with defaults.
func (s PipelineSettings) Normalise() PipelineSettings {
	def := DefaultPipelineSettings()
	if s.PreviewLength <= 0 {
		s.PreviewLength = def.PreviewLength
	}
	if s.BatchSize <= 0 {
		s.BatchSize = def.BatchSize
	}
	if s.MaxDocsForModelSelection <= 0 {
		s.MaxDocsForModelSelection = def.MaxDocsForModelSelection
	}
	if s.TopRelevantDocs <= 0 {
		s.TopRelevantDocs = def.TopRelevantDocs
	}
	if s.MaxDocContentLength <= 0 {
		s.MaxDocContentLength = def.MaxDocContentLength
	}
	if s.TotalContextBudget <= 0 {
		s.TotalContextBudget = def.TotalContextBudget
	}
	if s.MaxCatalogueSize <= 0 {
		s.MaxCatalogueSize = def.MaxCatalogueSize
	}
	return s
}

// AIProvider identifies an LLM service provider.
type AIProvider string

// Available AI providers.
const (
	// AIProviderOllama is a local Ollama instance.
	AIProviderOllama AIProvider = "ollama"

	// AIProviderOpenAI is the OpenAI cloud API.
	AIProviderOpenAI AIProvider = "openai"

	// AIProviderAnthropic is the Anthropic cloud API.
	AIProviderAnthropic AIProvider = "anthropic"
)

// IsValid returns true if the AI provider is recognised.
func (p AIProvider) IsValid() bool {
	switch p {
	case AIProviderOllama, AIProviderOpenAI, AIProviderAnthropic:
		return true
	default:
		return false
	}
}

// RequiresAPIKey returns true if this provider needs an API key.
func (p AIProvider) RequiresAPIKey() bool {
	return p == AIProviderOpenAI || p == AIProviderAnthropic
}

// String returns the string representation.
func (p AIProvider) String() string {
	return string(p)
}

// Description returns a human-readable description of the provider.
func (p AIProvider) Description() string {
	switch p {
	case AIProviderOllama:
		return "Ollama (local)"
	case AIProviderOpenAI:
		return "OpenAI (cloud)"
	case AIProviderAnthropic:
		return "Anthropic (cloud)"
	default:
		return unknownDescription
	}
}

// LLMSettings holds LLM provider configuration.
type LLMSettings struct {
	// Provider is the LLM service provider.
	Provider AIProvider

	// Model is the model name. Empty uses the provider default.
	Model string

	// BaseURL is the API endpoint (for Ollama or compatible APIs).
	BaseURL string

	// APIKey is the API key (for OpenAI/Anthropic).
	APIKey string
}

// IsConfigured returns true if the LLM provider is set up.
func (l LLMSettings) IsConfigured() bool {
	if !l.Provider.IsValid() {
		return false
	}
	if l.Provider.RequiresAPIKey() && l.APIKey == "" {
		return false
	}
	return true
}

// CacheBackend selects the content cache implementation.
type CacheBackend string

// Available cache backends.
const (
	// CacheBackendMemory keeps content for the process lifetime only.
	CacheBackendMemory CacheBackend = "memory"

	// CacheBackendSQLite persists content across restarts as a simple
	// key-value store.
	CacheBackendSQLite CacheBackend = "sqlite"
)

// IsValid returns true if the cache backend is recognised.
func (b CacheBackend) IsValid() bool {
	return b == CacheBackendMemory || b == CacheBackendSQLite
}

// AppSettings holds all application settings.
type AppSettings struct {
	// Pipeline holds selection and budgeting tunables.
	Pipeline PipelineSettings

	// LLM holds LLM provider settings.
	LLM LLMSettings

	// Cache selects the content cache backend.
	Cache CacheBackend

	// DriveFolder is the default Drive folder reference for indexing.
	DriveFolder string
}

// DefaultAppSettings returns settings with sensible defaults.
// The LLM is left unconfigured; selection degrades to keyword-only
// and answering reports an actionable configuration error.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Pipeline: DefaultPipelineSettings(),
		LLM:      LLMSettings{},
		Cache:    CacheBackendMemory,
	}
}

// AllLLMProviders returns providers that support LLM operations.
func AllLLMProviders() []AIProvider {
	return []AIProvider{
		AIProviderOllama,
		AIProviderOpenAI,
		AIProviderAnthropic,
	}
}

// DefaultLLMModels returns default models for each LLM provider.
func DefaultLLMModels() map[AIProvider]string {
	return map[AIProvider]string{
		AIProviderOllama:    "llama3.2",
		AIProviderOpenAI:    "gpt-4o-mini",
		AIProviderAnthropic: "claude-3-5-sonnet-latest",
	}
}
