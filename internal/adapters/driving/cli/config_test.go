package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCommand executes the root command with args against a temp home.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	// Flags keep their values between Execute calls; reset them so one
	// test's flags don't leak into the next.
	flagVerbose = false
	flagDir = ""
	flagDrive = ""

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestConfigCmd_SetAndGet(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	out, err := runCommand(t, "config", "set", "llm.provider", "ollama")
	require.NoError(t, err)
	assert.Contains(t, out, "llm.provider = ollama")

	out, err = runCommand(t, "config", "get", "llm.provider")
	require.NoError(t, err)
	assert.Contains(t, out, "ollama")
}

func TestConfigCmd_SetRejectsUnknownProvider(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	_, err := runCommand(t, "config", "set", "llm.provider", "skynet")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown provider")
}

func TestConfigCmd_SetRejectsUnknownCacheBackend(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	_, err := runCommand(t, "config", "set", "cache.backend", "redis")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown cache backend")
}

func TestConfigCmd_SetPipelineKeyRequiresInteger(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	_, err := runCommand(t, "config", "set", "pipeline.batch_size", "many")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "integer")
}

func TestConfigCmd_SetValidatesLLMConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	_, err := runCommand(t, "config", "set", "llm.base_url", "http://127.0.0.1:1")
	require.NoError(t, err)

	// With the provider set the configuration is complete, so the set
	// command pings the (unreachable) endpoint and warns.
	out, err := runCommand(t, "config", "set", "llm.provider", "ollama")

	require.NoError(t, err)
	assert.Contains(t, out, "llm.provider = ollama")
	assert.Contains(t, out, "Warning")
	assert.Contains(t, out, "validation failed")
}

func TestConfigCmd_GetMissingKey(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	_, err := runCommand(t, "config", "get", "nope")

	require.Error(t, err)
}

func TestConfigCmd_ListMasksAPIKey(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	_, err := runCommand(t, "config", "set", "llm.api_key", "sk-secret")
	require.NoError(t, err)

	out, err := runCommand(t, "config", "list")
	require.NoError(t, err)

	assert.NotContains(t, out, "sk-secret")
	assert.Contains(t, out, "********")
	assert.Contains(t, out, "pipeline.batch_size = 5")
}
