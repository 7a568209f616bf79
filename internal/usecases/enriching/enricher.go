// Package enriching junta as transações válidas aos metadados do catálogo de produtos
package enriching

import (
	"context"
	"strconv"
	"strings"
	"unicode"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics/internal/domain"
)

// ArtifactWriter grava o arquivo de dados enriquecidos
type ArtifactWriter interface {
	WriteEnriched(ctx context.Context, enriched []domain.EnrichedTransaction) error
}

type Service struct {
	writer ArtifactWriter
}

func NewService(writer ArtifactWriter) *Service {
	return &Service{
		writer: writer,
	}
}

// Enrich enriquece as transações e grava o resultado antes de retorná-lo.
// Uma falha na gravação é devolvida ao chamador junto com o resultado calculado.
func (s *Service) Enrich(ctx context.Context, transactions []domain.Transaction, productMap domain.ProductMap) ([]domain.EnrichedTransaction, error) {
	enriched := Enrich(transactions, productMap)

	logrus.WithFields(logrus.Fields{
		"enriched": len(enriched),
		"matched":  domain.CountMatches(enriched),
		"catalog":  len(productMap),
	}).Info("Transações enriquecidas com o catálogo de produtos")

	if err := s.writer.WriteEnriched(ctx, enriched); err != nil {
		return enriched, err
	}

	return enriched, nil
}

// Enrich retorna uma EnrichedTransaction por transação, na mesma ordem
func Enrich(transactions []domain.Transaction, productMap domain.ProductMap) []domain.EnrichedTransaction {
	enriched := make([]domain.EnrichedTransaction, 0, len(transactions))
	for _, t := range transactions {
		enriched = append(enriched, EnrichOne(t, productMap))
	}

	return enriched
}

func EnrichOne(t domain.Transaction, productMap domain.ProductMap) domain.EnrichedTransaction {
	result := domain.EnrichedTransaction{Transaction: t}

	id, ok := ExtractProductID(t.ProductID)
	if !ok {
		return result
	}

	product, found := productMap[id]
	if !found {
		return result
	}

	result.APICategory = product.Category
	result.APIBrand = product.Brand
	result.APIRating = product.Rating
	result.APIMatch = true

	return result
}

// ExtractProductID concatena os dígitos do ProductID e converte para inteiro ("P042" → 42).
// Sem dígitos, ou com um número grande demais, não há ID.
func ExtractProductID(productID string) (int, bool) {
	var digits strings.Builder
	for _, r := range productID {
		if r <= unicode.MaxASCII && unicode.IsDigit(r) {
			digits.WriteRune(r)
		}
	}

	if digits.Len() == 0 {
		return 0, false
	}

	id, err := strconv.Atoi(digits.String())
	if err != nil {
		return 0, false
	}

	return id, true
}
