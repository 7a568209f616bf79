package filestore

import (
	"context"
	"os"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-analytics/internal/domain"
	"gopkg.in/yaml.v3"
)

// CatalogFixture lê o catálogo de produtos de um arquivo YAML local.
//
//	products:
//	  - id: 1
//	    title: Essence Mascara
//	    category: beauty
//	    brand: Essence
//	    rating: 4.94
type CatalogFixture struct {
	path string
}

type catalogDocument struct {
	Products []domain.ProductMetadata `yaml:"products"`
}

func NewCatalogFixture(path string) *CatalogFixture {
	return &CatalogFixture{path: path}
}

func (f *CatalogFixture) FetchProducts(ctx context.Context) ([]domain.ProductMetadata, error) {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler o catálogo %s", f.path)
	}

	var doc catalogDocument
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, errors.Wrapf(err, "erro ao interpretar o catálogo %s", f.path)
	}

	if doc.Products == nil {
		return []domain.ProductMetadata{}, nil
	}

	return doc.Products, nil
}
