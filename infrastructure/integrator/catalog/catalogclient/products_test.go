package catalogclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-analytics/internal/config"
)

func TestCatalogClient_GetProducts(t *testing.T) {
	tests := []struct {
		name     string
		handler  http.HandlerFunc
		validate func(t *testing.T, resp ProductsResponse, err error)
	}{
		{
			name: "Decodifica a página de produtos",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/products", r.URL.Path)
				assert.Equal(t, "100", r.URL.Query().Get("limit"))
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"products":[
					{"id":1,"title":"Essence Mascara","category":"beauty","brand":"Essence","rating":4.94,"price":9.99},
					{"id":2,"title":"Eyeshadow Palette","category":"beauty","rating":3.28}
				],"total":194,"skip":0,"limit":100}`))
			},
			validate: func(t *testing.T, resp ProductsResponse, err error) {
				require.NoError(t, err)
				require.Len(t, resp.Products, 2)
				assert.Equal(t, 194, resp.Total)
				assert.Equal(t, "Essence Mascara", resp.Products[0].Title)
				require.NotNil(t, resp.Products[0].Brand)
				assert.Equal(t, "Essence", *resp.Products[0].Brand)
				assert.Nil(t, resp.Products[1].Brand)
				require.NotNil(t, resp.Products[1].Rating)
				assert.Equal(t, 3.28, *resp.Products[1].Rating)
			},
		},
		{
			name: "Status diferente de 200",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
			},
			validate: func(t *testing.T, resp ProductsResponse, err error) {
				assert.ErrorContains(t, err, "503")
			},
		},
		{
			name: "Corpo inválido",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"products": [`))
			},
			validate: func(t *testing.T, resp ProductsResponse, err error) {
				assert.ErrorContains(t, err, "erro ao decodificar a resposta")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			client := NewClient(config.Catalog{URL: server.URL, Timeout: time.Second})
			resp, err := client.GetProducts(context.Background(), ProductsParams{Limit: 100})
			tt.validate(t, resp, err)
		})
	}
}

func TestCatalogClient_GetProducts_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	client := NewClient(config.Catalog{URL: server.URL, Timeout: 50 * time.Millisecond})
	_, err := client.GetProducts(context.Background(), ProductsParams{})

	assert.ErrorContains(t, err, "erro ao executar a requisição")
}
