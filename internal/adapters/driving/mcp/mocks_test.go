package mcp

import (
	"context"

	"github.com/custodia-labs/docq-cli/internal/core/domain"
	"github.com/custodia-labs/docq-cli/internal/core/ports/driving"
)

// mockAskService implements driving.AskService for tests.
type mockAskService struct {
	answer     *domain.Answer
	candidates []domain.ScoredCandidate
	err        error
	lastQuery  string
}

var _ driving.AskService = (*mockAskService)(nil)

func (m *mockAskService) Ask(_ context.Context, query string) (*domain.Answer, error) {
	m.lastQuery = query
	if m.err != nil {
		return nil, m.err
	}
	return m.answer, nil
}

func (m *mockAskService) Select(_ context.Context, query string) ([]domain.ScoredCandidate, error) {
	m.lastQuery = query
	if m.err != nil {
		return nil, m.err
	}
	return m.candidates, nil
}

// mockIndexService implements driving.IndexService for tests.
type mockIndexService struct {
	catalogue *domain.Catalogue
	result    *driving.IndexResult
	err       error
}

var _ driving.IndexService = (*mockIndexService)(nil)

func (m *mockIndexService) Index(_ context.Context, _ []domain.FileDescriptor) (*driving.IndexResult, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

func (m *mockIndexService) Catalogue() *domain.Catalogue {
	if m.catalogue == nil {
		return domain.NewCatalogue(0)
	}
	return m.catalogue
}
