package filestore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogFixture_FetchProducts(t *testing.T) {
	path := writeTemp(t, "catalog.yaml", []byte(`products:
  - id: 1
    title: Essence Mascara Lash Princess
    category: beauty
    brand: Essence
    rating: 4.94
  - id: 101
    title: Apple AirPods
`))

	products, err := NewCatalogFixture(path).FetchProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)

	assert.Equal(t, 1, products[0].ID)
	require.NotNil(t, products[0].Category)
	assert.Equal(t, "beauty", *products[0].Category)
	require.NotNil(t, products[0].Rating)
	assert.Equal(t, 4.94, *products[0].Rating)

	assert.Equal(t, 101, products[1].ID)
	assert.Nil(t, products[1].Category)
	assert.Nil(t, products[1].Brand)
	assert.Nil(t, products[1].Rating)
}

func TestCatalogFixture_FetchProducts_Errors(t *testing.T) {
	_, err := NewCatalogFixture(filepath.Join(t.TempDir(), "missing.yaml")).FetchProducts(context.Background())
	assert.Error(t, err)

	path := writeTemp(t, "broken.yaml", []byte("products: [unterminated"))
	_, err = NewCatalogFixture(path).FetchProducts(context.Background())
	assert.Error(t, err)
}

func TestCatalogFixture_FetchProducts_EmptyDocument(t *testing.T) {
	path := writeTemp(t, "empty.yaml", []byte(""))

	products, err := NewCatalogFixture(path).FetchProducts(context.Background())

	assert.NoError(t, err)
	assert.Empty(t, products)
}
