package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-analytics/infrastructure/integrator/catalog/catalogclient"
	catalogdomain "github.com/vfg2006/sales-analytics/infrastructure/integrator/catalog/domain"
	"github.com/vfg2006/sales-analytics/infrastructure/integrator/catalog/mocks"
	"github.com/vfg2006/sales-analytics/internal/config"
	"github.com/vfg2006/sales-analytics/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestCatalogService_FetchProducts(t *testing.T) {
	brand := "Apple"
	page := catalogclient.ProductsResponse{
		Products: []catalogdomain.Product{{ID: 101, Title: "AirPods", Brand: &brand}},
	}
	params := catalogclient.ProductsParams{Limit: 100}

	tests := []struct {
		name     string
		retries  int
		setup    func(client *mocks.MockClient)
		validate func(t *testing.T, products []domain.ProductMetadata, err error)
	}{
		{
			name:    "Sucesso na primeira tentativa",
			retries: 2,
			setup: func(client *mocks.MockClient) {
				client.EXPECT().GetProducts(gomock.Any(), params).Return(page, nil).Times(1)
			},
			validate: func(t *testing.T, products []domain.ProductMetadata, err error) {
				require.NoError(t, err)
				require.Len(t, products, 1)
				assert.Equal(t, 101, products[0].ID)
				assert.Equal(t, "Apple", *products[0].Brand)
				assert.Nil(t, products[0].Category)
			},
		},
		{
			name:    "Recupera após falha",
			retries: 2,
			setup: func(client *mocks.MockClient) {
				gomock.InOrder(
					client.EXPECT().GetProducts(gomock.Any(), params).Return(catalogclient.ProductsResponse{}, errors.New("timeout")),
					client.EXPECT().GetProducts(gomock.Any(), params).Return(page, nil),
				)
			},
			validate: func(t *testing.T, products []domain.ProductMetadata, err error) {
				require.NoError(t, err)
				assert.Len(t, products, 1)
			},
		},
		{
			name:    "Esgota as tentativas",
			retries: 2,
			setup: func(client *mocks.MockClient) {
				client.EXPECT().GetProducts(gomock.Any(), params).
					Return(catalogclient.ProductsResponse{}, errors.New("connection refused")).Times(3)
			},
			validate: func(t *testing.T, products []domain.ProductMetadata, err error) {
				assert.EqualError(t, err, "connection refused")
				assert.Nil(t, products)
			},
		},
		{
			name:    "Sem novas tentativas",
			retries: 0,
			setup: func(client *mocks.MockClient) {
				client.EXPECT().GetProducts(gomock.Any(), params).
					Return(catalogclient.ProductsResponse{}, errors.New("boom")).Times(1)
			},
			validate: func(t *testing.T, products []domain.ProductMetadata, err error) {
				assert.Error(t, err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := mocks.NewMockClient(ctrl)
			tt.setup(client)

			service := New(config.Catalog{Limit: 100, Retries: tt.retries}, client)
			products, err := service.FetchProducts(context.Background())
			tt.validate(t, products, err)
		})
	}
}

func TestCatalogService_FetchProducts_ContextCanceled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	client.EXPECT().GetProducts(gomock.Any(), gomock.Any()).
		Return(catalogclient.ProductsResponse{}, errors.New("timeout")).Times(1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	service := New(config.Catalog{Retries: 3, RetryDelay: time.Hour}, client)
	_, err := service.FetchProducts(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}
