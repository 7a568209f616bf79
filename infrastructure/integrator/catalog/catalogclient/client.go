package catalogclient

import (
	"context"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/sales-analytics/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const defaultTimeout = 30 * time.Second

type Client interface {
	GetProducts(ctx context.Context, params ProductsParams) (ProductsResponse, error)
}

type CatalogClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient cria o cliente HTTP da API de catálogo
func NewClient(cfg config.Catalog) Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &CatalogClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: cfg.URL,
	}
}
