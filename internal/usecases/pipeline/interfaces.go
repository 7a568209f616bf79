package pipeline

import (
	"context"

	"github.com/vfg2006/sales-analytics/internal/domain"
)

// SalesReader entrega as linhas de dados do arquivo de vendas, sem o cabeçalho
type SalesReader interface {
	ReadLines(ctx context.Context) ([]string, error)
}

// CatalogSource entrega os produtos usados no enriquecimento
type CatalogSource interface {
	FetchProducts(ctx context.Context) ([]domain.ProductMetadata, error)
}

// NoCatalog é a origem vazia: todas as transações ficam sem correspondência
type NoCatalog struct{}

func (NoCatalog) FetchProducts(context.Context) ([]domain.ProductMetadata, error) {
	return []domain.ProductMetadata{}, nil
}
