package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-analytics/infrastructure/database/postgres"
	"github.com/vfg2006/sales-analytics/internal/domain"
)

const (
	productsTable = "products p"
)

// ProductRepository lê o catálogo de produtos mantido no Postgres
type ProductRepository interface {
	FetchProducts(ctx context.Context) ([]domain.ProductMetadata, error)
}

type productRepository struct {
	conn  postgres.Queryer
	limit int
}

func NewProductRepository(conn postgres.Queryer, limit int) ProductRepository {
	return &productRepository{
		conn:  conn,
		limit: limit,
	}
}

func (r *productRepository) FetchProducts(ctx context.Context) ([]domain.ProductMetadata, error) {
	query, args, err := productsQuery(r.limit)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	products := make([]domain.ProductMetadata, 0)
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear produto: %w", err)
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar produtos: %w", err)
	}

	return products, nil
}

func productsQuery(limit int) (string, []any, error) {
	builder := squirrel.
		Select("p.id, p.title, p.category, p.brand, p.rating").
		From(productsTable).
		OrderBy("p.id ASC").
		PlaceholderFormat(squirrel.Dollar)

	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	return builder.ToSql()
}

func scanProduct(rows *sql.Rows) (domain.ProductMetadata, error) {
	var (
		product  domain.ProductMetadata
		category sql.NullString
		brand    sql.NullString
		rating   sql.NullFloat64
	)

	if err := rows.Scan(&product.ID, &product.Title, &category, &brand, &rating); err != nil {
		return product, err
	}

	if category.Valid {
		product.Category = &category.String
	}
	if brand.Valid {
		product.Brand = &brand.String
	}
	if rating.Valid {
		product.Rating = &rating.Float64
	}

	return product, nil
}
