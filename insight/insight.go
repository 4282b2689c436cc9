// Package insight produces AI-written financial summaries and product copy.
// Generation failures never reach the caller as errors; fixed Portuguese
// fallback texts are returned instead.
package insight

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"connectfit-backend/models"
)

const (
	FallbackInsight = "Não foi possível gerar insights no momento. Verifique suas vendas e despesas manualmente."
	EmptyInsight    = "Nenhum insight disponível."
)

// Summarizer writes a free-text financial summary.
type Summarizer interface {
	Summarize(ctx context.Context, sales []models.Sale, expenses []models.Expense) (string, error)
}

// Service adapts a Generator to the insight and description use cases.
type Service struct {
	gen Generator
}

func NewService(gen Generator) *Service {
	return &Service{gen: gen}
}

func (s *Service) Summarize(ctx context.Context, sales []models.Sale, expenses []models.Expense) (string, error) {
	return s.gen.Generate(ctx, FinancialPrompt(sales, expenses))
}

// DescribeProduct returns marketing copy for a product, or a generic line
// when generation fails.
func (s *Service) DescribeProduct(ctx context.Context, name, category string) string {
	text, err := s.gen.Generate(ctx, DescriptionPrompt(name, category))
	if err != nil || strings.TrimSpace(text) == "" {
		if err != nil {
			zap.L().Warn("product description generation failed", zap.String("product", name), zap.Error(err))
		}
		return "Incrível " + name + " para o seu treino!"
	}
	return strings.TrimSpace(text)
}
