package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics/infrastructure/database/postgres"
	"github.com/vfg2006/sales-analytics/internal/domain"
)

const productsSchema = `CREATE TABLE IF NOT EXISTS products (
	id       INTEGER PRIMARY KEY,
	title    TEXT NOT NULL,
	category TEXT,
	brand    TEXT,
	rating   DOUBLE PRECISION
)`

// ProductStore grava o catálogo no Postgres
type ProductStore interface {
	EnsureSchema(ctx context.Context) error
	SaveAll(ctx context.Context, products []domain.ProductMetadata) error
}

type productStore struct {
	conn postgres.Conn
}

func NewProductStore(conn postgres.Conn) ProductStore {
	return &productStore{conn: conn}
}

func (r *productStore) EnsureSchema(ctx context.Context) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, productsSchema); err != nil {
			return fmt.Errorf("erro ao criar a tabela products: %w", err)
		}
		return nil
	})
}

// SaveAll insere ou atualiza os produtos em uma única transação
func (r *productStore) SaveAll(ctx context.Context, products []domain.ProductMetadata) error {
	if len(products) == 0 {
		return nil
	}

	query, args, err := upsertProductsQuery(products)
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("erro ao salvar produtos: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logrus.WithField("products", len(products)).Info("Catálogo de produtos salvo")

	return nil
}

func upsertProductsQuery(products []domain.ProductMetadata) (string, []any, error) {
	builder := squirrel.
		Insert("products").
		Columns("id", "title", "category", "brand", "rating").
		PlaceholderFormat(squirrel.Dollar)

	for _, p := range products {
		builder = builder.Values(p.ID, p.Title, p.Category, p.Brand, p.Rating)
	}

	builder = builder.Suffix(`ON CONFLICT (id) DO UPDATE SET
		title = EXCLUDED.title,
		category = EXCLUDED.category,
		brand = EXCLUDED.brand,
		rating = EXCLUDED.rating`)

	return builder.ToSql()
}
