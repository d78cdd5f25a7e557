package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docq-cli/internal/core/domain"
)

func testStore(t *testing.T) *ConfigStore {
	t.Helper()
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store := testStore(t)

	require.NoError(t, store.Set("llm.provider", "openai"))
	require.NoError(t, store.Set("pipeline.batch_size", 10))

	assert.Equal(t, "openai", store.GetString("llm.provider"))
	assert.Equal(t, 10, store.GetInt("pipeline.batch_size"))
}

func TestConfigStore_MissingKeys(t *testing.T) {
	store := testStore(t)

	_, ok := store.Get("nope")
	assert.False(t, ok)
	assert.Empty(t, store.GetString("nope"))
	assert.Zero(t, store.GetInt("nope"))
	assert.False(t, store.GetBool("nope"))
}

func TestConfigStore_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set("llm.provider", "anthropic"))
	require.NoError(t, store.Set("llm.api_key", "sk-test"))

	reopened, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.Equal(t, "anthropic", reopened.GetString("llm.provider"))
	assert.Equal(t, "sk-test", reopened.GetString("llm.api_key"))
}

func TestConfigStore_LoadFlattensNestedTables(t *testing.T) {
	dir := t.TempDir()
	content := "[llm]\nprovider = \"ollama\"\nmodel = \"llama3.2\"\n\n[pipeline]\nbatch_size = 3\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0600))

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.Equal(t, "ollama", store.GetString("llm.provider"))
	assert.Equal(t, "llama3.2", store.GetString("llm.model"))
	assert.Equal(t, 3, store.GetInt("pipeline.batch_size"))
}

func TestConfigStore_FileHasRestrictedPermissions(t *testing.T) {
	store := testStore(t)
	require.NoError(t, store.Set("llm.api_key", "secret"))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestLoadAppSettings_Defaults(t *testing.T) {
	store := testStore(t)

	settings := LoadAppSettings(store)

	assert.Equal(t, domain.DefaultPipelineSettings(), settings.Pipeline)
	assert.Equal(t, domain.CacheBackendMemory, settings.Cache)
	assert.False(t, settings.LLM.IsConfigured())
}

func TestLoadAppSettings_FillsProviderDefaultModel(t *testing.T) {
	store := testStore(t)
	require.NoError(t, store.Set(KeyLLMProvider, "ollama"))

	settings := LoadAppSettings(store)

	assert.Equal(t, domain.AIProviderOllama, settings.LLM.Provider)
	assert.Equal(t, "llama3.2", settings.LLM.Model)
}

func TestSaveAndLoadAppSettings_RoundTrip(t *testing.T) {
	store := testStore(t)

	want := domain.DefaultAppSettings()
	want.LLM = domain.LLMSettings{
		Provider: domain.AIProviderOpenAI,
		Model:    "gpt-4o-mini",
		APIKey:   "sk-test",
	}
	want.Pipeline.BatchSize = 8
	want.Cache = domain.CacheBackendSQLite
	want.DriveFolder = "folder-123"

	require.NoError(t, SaveAppSettings(store, want))

	got := LoadAppSettings(store)
	assert.Equal(t, want, got)
}

func TestLoadAppSettings_InvalidCacheBackendFallsBack(t *testing.T) {
	store := testStore(t)
	require.NoError(t, store.Set(KeyCacheBackend, "redis"))

	settings := LoadAppSettings(store)

	assert.Equal(t, domain.CacheBackendMemory, settings.Cache)
}
