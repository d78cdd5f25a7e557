package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectionMethod_String(t *testing.T) {
	assert.Equal(t, "keywords", SelectionKeywords.String())
	assert.Equal(t, "model", SelectionModel.String())
	assert.Equal(t, "model+keywords", SelectionModelKeywords.String())
	assert.Equal(t, "unknown", SelectionMethod(99).String())
}

func TestClassifyFailure(t *testing.T) {
	assert.Equal(t, FailureAuth, ClassifyFailure(fmt.Errorf("wrapped: %w", ErrAuthFailed)))
	assert.Equal(t, FailureRateLimited, ClassifyFailure(ErrRateLimited))
	assert.Equal(t, FailureNetwork, ClassifyFailure(fmt.Errorf("send: %w", ErrNetworkFailure)))
	assert.Equal(t, FailureUnknown, ClassifyFailure(errors.New("boom")))
}

func TestAnswerError_WrapsCause(t *testing.T) {
	inner := fmt.Errorf("openai: %w", ErrRateLimited)
	err := NewAnswerError(inner)

	assert.Equal(t, FailureRateLimited, err.Cause)
	assert.ErrorIs(t, err, ErrRateLimited)
	assert.Contains(t, err.Error(), "rate-limit")
}

func TestFailureCause_String(t *testing.T) {
	assert.Equal(t, "auth", FailureAuth.String())
	assert.Equal(t, "rate-limit", FailureRateLimited.String())
	assert.Equal(t, "network", FailureNetwork.String())
	assert.Equal(t, "unknown", FailureUnknown.String())
}

func TestPipelineSettings_Normalise(t *testing.T) {
	s := PipelineSettings{}.Normalise()

	require.Equal(t, DefaultPipelineSettings(), s)

	custom := PipelineSettings{BatchSize: 10}.Normalise()
	assert.Equal(t, 10, custom.BatchSize)
	assert.Equal(t, DefaultTopRelevantDocs, custom.TopRelevantDocs)
	assert.Equal(t, DefaultMaxCatalogueSize, custom.MaxCatalogueSize)
}

func TestLLMSettings_IsConfigured(t *testing.T) {
	assert.False(t, LLMSettings{}.IsConfigured())
	assert.False(t, LLMSettings{Provider: AIProviderOpenAI}.IsConfigured())
	assert.True(t, LLMSettings{Provider: AIProviderOpenAI, APIKey: "sk-test"}.IsConfigured())
	assert.True(t, LLMSettings{Provider: AIProviderOllama}.IsConfigured())
}
