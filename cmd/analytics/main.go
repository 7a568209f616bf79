package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics/infrastructure/database/postgres"
	"github.com/vfg2006/sales-analytics/infrastructure/filestore"
	"github.com/vfg2006/sales-analytics/infrastructure/integrator/catalog"
	"github.com/vfg2006/sales-analytics/infrastructure/integrator/catalog/catalogclient"
	"github.com/vfg2006/sales-analytics/infrastructure/repository"
	"github.com/vfg2006/sales-analytics/internal/config"
	"github.com/vfg2006/sales-analytics/internal/scheduler"
	"github.com/vfg2006/sales-analytics/internal/usecases/pipeline"
	"github.com/vfg2006/sales-analytics/internal/usecases/reporting"
	"github.com/vfg2006/sales-analytics/internal/usecases/validating"
	"github.com/vfg2006/sales-analytics/pkg/console"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Debugf("Nível de log configurado para: %s", logLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	printer := console.New(os.Stdout)

	source, closer := catalogSource(ctx, cfg)
	if closer != nil {
		defer closer.Close()
	}

	service, err := newPipeline(cfg, source, printer)
	if err != nil {
		logrus.Fatal(err)
	}

	if !cfg.ReportSync.Enabled {
		if _, err := service.Run(ctx); err != nil {
			printer.Error("%v", err)
			stop()
			os.Exit(1)
		}
		return
	}

	reportSyncService := scheduler.NewReportSyncService(service, cfg)
	if err := reportSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao iniciar o agendador do relatório de vendas")
	}
	logrus.Info("Agendador do relatório de vendas iniciado com sucesso")

	<-ctx.Done()
	logrus.WithField("last_run_id", reportSyncService.GetStatus()["last_run_id"]).Info("Encerrando o agendador do relatório de vendas")
}

// newPipeline monta o pipeline com os arquivos configurados
func newPipeline(cfg *config.Config, source pipeline.CatalogSource, printer *console.Printer) (*pipeline.Service, error) {
	minAmount, maxAmount, err := cfg.Filters.AmountBounds()
	if err != nil {
		return nil, err
	}

	opts := pipeline.Options{
		Filters: validating.Filters{
			Region:    cfg.Filters.Region,
			MinAmount: minAmount,
			MaxAmount: maxAmount,
		},
		Report: reporting.Options{
			TopN:                  cfg.Analytics.TopN,
			LowPerformerThreshold: cfg.Analytics.LowPerformerThreshold,
			CurrencySymbol:        cfg.Analytics.CurrencySymbol,
		},
		EnrichedDataPath: cfg.Output.EnrichedDataPath,
		ReportPath:       cfg.Output.ReportPath,
	}

	return pipeline.NewService(
		filestore.NewSalesFile(cfg.Input.SalesDataPath, cfg.Input.Encodings),
		source,
		filestore.NewEnrichedFile(cfg.Output.EnrichedDataPath),
		filestore.NewReportFile(cfg.Output.ReportPath),
		printer,
		opts,
	), nil
}

// catalogSource escolhe a origem do catálogo. Sem conexão com o banco o enriquecimento segue sem catálogo.
func catalogSource(ctx context.Context, cfg *config.Config) (pipeline.CatalogSource, io.Closer) {
	switch cfg.Catalog.Source {
	case config.CatalogSourceHTTP:
		return catalog.New(cfg.Catalog, catalogclient.NewClient(cfg.Catalog)), nil
	case config.CatalogSourceFixture:
		return filestore.NewCatalogFixture(cfg.Catalog.FixturePath), nil
	case config.CatalogSourcePostgres:
		conn, err := postgres.NewConnection(ctx, cfg.Database)
		if err != nil {
			logrus.WithError(err).Error("Erro ao conectar ao PostgreSQL, seguindo sem catálogo")
			return pipeline.NoCatalog{}, nil
		}
		logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
		return repository.NewProductRepository(conn, cfg.Catalog.Limit), conn
	default:
		return pipeline.NoCatalog{}, nil
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
