package catalogclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"strconv"

	catalogdomain "github.com/vfg2006/sales-analytics/infrastructure/integrator/catalog/domain"
)

type ProductsParams struct {
	Limit int
}

type ProductsResponse = catalogdomain.ProductsPage

func (c *CatalogClient) GetProducts(ctx context.Context, params ProductsParams) (ProductsResponse, error) {
	var response ProductsResponse

	endpoint, err := url.Parse(c.baseURL)
	if err != nil {
		return response, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, "/products")

	if params.Limit > 0 {
		query := endpoint.Query()
		query.Set("limit", strconv.Itoa(params.Limit))
		endpoint.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return response, fmt.Errorf("erro ao criar a requisição: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return response, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return response, fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return response, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return response, nil
}
