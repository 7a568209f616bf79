package catalog

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics/infrastructure/integrator/catalog/catalogclient"
	catalogdomain "github.com/vfg2006/sales-analytics/infrastructure/integrator/catalog/domain"
	"github.com/vfg2006/sales-analytics/internal/config"
	"github.com/vfg2006/sales-analytics/internal/domain"
)

type CatalogIntegrator interface {
	FetchProducts(ctx context.Context) ([]domain.ProductMetadata, error)
}

type CatalogService struct {
	cfg    config.Catalog
	Client catalogclient.Client
}

func New(cfg config.Catalog, client catalogclient.Client) CatalogIntegrator {
	return &CatalogService{
		cfg:    cfg,
		Client: client,
	}
}

// FetchProducts busca o catálogo, repetindo a chamada até cfg.Retries vezes após a primeira falha
func (s *CatalogService) FetchProducts(ctx context.Context) ([]domain.ProductMetadata, error) {
	params := catalogclient.ProductsParams{Limit: s.cfg.Limit}

	var lastErr error
	for attempt := 0; attempt <= s.cfg.Retries; attempt++ {
		if attempt > 0 {
			logrus.WithFields(logrus.Fields{
				"attempt": attempt,
				"error":   lastErr,
			}).Warn("Falha ao buscar catálogo, tentando novamente")

			if err := wait(ctx, s.cfg.RetryDelay); err != nil {
				return nil, err
			}
		}

		resp, err := s.Client.GetProducts(ctx, params)
		if err == nil {
			logrus.WithField("products", len(resp.Products)).Debug("Catálogo de produtos obtido")
			return toProductMetadata(resp.Products), nil
		}
		lastErr = err
	}

	return nil, lastErr
}

func wait(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func toProductMetadata(products []catalogdomain.Product) []domain.ProductMetadata {
	out := make([]domain.ProductMetadata, 0, len(products))
	for _, p := range products {
		out = append(out, domain.ProductMetadata{
			ID:       p.ID,
			Title:    p.Title,
			Category: p.Category,
			Brand:    p.Brand,
			Rating:   p.Rating,
		})
	}

	return out
}
