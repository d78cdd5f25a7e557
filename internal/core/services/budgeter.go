package services

import (
	"strings"
	"unicode/utf8"

	"github.com/custodia-labs/docq-cli/internal/core/domain"
	"github.com/custodia-labs/docq-cli/internal/logger"
)

// BudgetedDocument is a document after budget enforcement.
type BudgetedDocument struct {
	domain.DocumentContent

	// Truncated is true if the content was cut, either by the
	// per-document cap or to fill the remaining aggregate budget.
	Truncated bool
}

// ContextBundle is the prompt-ready set of documents, in ranking order.
type ContextBundle struct {
	// Documents are the included documents, highest ranked first.
	Documents []BudgetedDocument

	// TotalChars is the aggregate content size in runes.
	TotalChars int

	// Omitted is the number of documents dropped after the aggregate
	// budget was exhausted.
	Omitted int
}

// Budgeter enforces the per-document and aggregate context limits.
//
// Policy: each document is first cut to the per-document cap. Documents
// are then accumulated in ranking order; the first document that would
// overflow the aggregate budget is truncated to exactly fill the
// remaining budget, and everything after it is dropped. Input order is
// never changed, so the highest-ranked document is always included.
type Budgeter struct {
	settings domain.PipelineSettings
}

// NewBudgeter creates a context budgeter.
func NewBudgeter(settings domain.PipelineSettings) *Budgeter {
	return &Budgeter{settings: settings.Normalise()}
}

// Build assembles a bundle from documents in ranking order.
func (b *Budgeter) Build(docs []domain.DocumentContent) *ContextBundle {
	bundle := &ContextBundle{}
	remaining := b.settings.TotalContextBudget

	for _, doc := range docs {
		if remaining <= 0 {
			bundle.Omitted++
			continue
		}

		content := domain.TruncateText(doc.Content, b.settings.MaxDocContentLength)
		truncated := len(content) < len(doc.Content)

		size := utf8.RuneCountInString(content)
		if size > remaining {
			content = domain.TruncateText(content, remaining)
			truncated = true
			size = remaining
		}

		doc.Content = content
		bundle.Documents = append(bundle.Documents, BudgetedDocument{
			DocumentContent: doc,
			Truncated:       truncated,
		})
		bundle.TotalChars += size
		remaining -= size
	}

	if bundle.Omitted > 0 {
		logger.Debug("Context budget exhausted: %d documents dropped", bundle.Omitted)
	}

	return bundle
}

// Render serialises the bundle for inclusion in a model prompt.
func (b *ContextBundle) Render() string {
	var sb strings.Builder
	for _, doc := range b.Documents {
		sb.WriteString("--- Document: ")
		sb.WriteString(doc.Name)
		sb.WriteString(" ---\n")
		sb.WriteString(doc.Content)
		sb.WriteString("\n\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}
