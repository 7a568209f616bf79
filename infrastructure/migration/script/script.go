// Script de carga do catálogo de produtos no Postgres a partir do arquivo YAML
// usado por CATALOG_SOURCE=fixture. Depois da carga, CATALOG_SOURCE=postgres lê a mesma tabela.
package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics/infrastructure/database/postgres"
	"github.com/vfg2006/sales-analytics/infrastructure/filestore"
	"github.com/vfg2006/sales-analytics/infrastructure/repository"
	"github.com/vfg2006/sales-analytics/internal/config"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	logrus.Info("Iniciando script de carga do catálogo...")
	startTime := time.Now()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	products, err := filestore.NewCatalogFixture(cfg.Catalog.FixturePath).FetchProducts(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao ler o catálogo")
	}

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	store := repository.NewProductStore(conn)
	if err := store.EnsureSchema(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao preparar a tabela de produtos")
	}

	if err := store.SaveAll(ctx, products); err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar o catálogo")
	}

	logrus.WithFields(logrus.Fields{
		"products":    len(products),
		"path":        cfg.Catalog.FixturePath,
		"duration_ms": time.Since(startTime).Milliseconds(),
	}).Info("Carga do catálogo concluída")
}
