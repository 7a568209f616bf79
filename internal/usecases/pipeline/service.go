// Package pipeline encadeia leitura, parse, validação, enriquecimento e relatório em uma execução
package pipeline

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-analytics/internal/domain"
	"github.com/vfg2006/sales-analytics/internal/usecases/enriching"
	"github.com/vfg2006/sales-analytics/internal/usecases/parsing"
	"github.com/vfg2006/sales-analytics/internal/usecases/reporting"
	"github.com/vfg2006/sales-analytics/internal/usecases/validating"
	"github.com/vfg2006/sales-analytics/pkg/console"
	"github.com/vfg2006/sales-analytics/pkg/log"
	"github.com/vfg2006/sales-analytics/pkg/utils"
)

const systemTitle = "SALES ANALYTICS SYSTEM"

type Options struct {
	Filters          validating.Filters
	Report           reporting.Options
	EnrichedDataPath string
	ReportPath       string
}

type Service struct {
	reader   SalesReader
	catalog  CatalogSource
	enricher *enriching.Service
	reporter *reporting.Service
	console  *console.Printer
	opts     Options
	now      func() time.Time
}

func NewService(
	reader SalesReader,
	catalog CatalogSource,
	enrichedWriter enriching.ArtifactWriter,
	reportWriter reporting.Writer,
	printer *console.Printer,
	opts Options,
) *Service {
	if catalog == nil {
		catalog = NoCatalog{}
	}
	if printer == nil {
		printer = console.Discard()
	}

	return &Service{
		reader:   reader,
		catalog:  catalog,
		enricher: enriching.NewService(enrichedWriter),
		reporter: reporting.NewService(reportWriter, opts.Report),
		console:  printer,
		opts:     opts,
		now:      time.Now,
	}
}

// WithClock substitui o relógio usado nos carimbos da execução e do relatório
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	s.reporter.WithClock(now)
	return s
}

// Run executa o pipeline completo uma vez. Falhas de leitura e do catálogo viram
// resultados vazios; só a gravação dos artefatos interrompe a execução.
func (s *Service) Run(ctx context.Context) (*domain.RunResult, error) {
	runID, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar o ID da execução")
	}

	ctx, _ = log.WithCorrelationID(ctx)
	ctx = log.WithRunID(ctx, runID)
	logger := log.ForContext(ctx)

	result := &domain.RunResult{
		RunID:            runID,
		StartedAt:        s.now(),
		EnrichedDataPath: s.opts.EnrichedDataPath,
		ReportPath:       s.opts.ReportPath,
	}

	s.console.Header(systemTitle)
	logger.Info("Iniciando execução do pipeline de vendas")

	lines, err := s.reader.ReadLines(ctx)
	if err != nil {
		logger.WithError(err).WithField("stage", "read").Warn("Falha ao ler o arquivo de vendas, seguindo com lote vazio")
		s.console.Warning("Could not read sales data: %v", err)
		lines = []string{}
	}
	result.RecordsRead = len(lines)
	s.console.Success("Read %d records", len(lines))

	transactions, malformed := parsing.Split(parsing.ParseLines(lines))
	for _, m := range malformed {
		logger.WithError(m.Err).WithField("stage", "parse").Debug("Registro descartado")
	}
	result.Parsed = len(transactions)
	result.Malformed = len(malformed)
	s.console.Success("Parsed %d records", len(transactions))

	outcome := validating.Validate(transactions, s.opts.Filters)
	result.Validation = outcome.Summary
	s.printValidation(outcome.Summary)

	productMap := s.fetchCatalog(ctx, logger)

	enriched, err := s.enricher.Enrich(ctx, outcome.Valid, productMap)
	if err != nil {
		logger.WithError(err).WithField("stage", "enrich").Error("Erro ao gravar os dados enriquecidos")
		return result, errors.Wrap(err, "erro ao gravar os dados enriquecidos")
	}
	result.Enriched = len(enriched)
	result.Matched = domain.CountMatches(enriched)
	s.console.Success("Enriched %d records (%d matched)", result.Enriched, result.Matched)
	if s.opts.EnrichedDataPath != "" {
		s.console.Success("Saved enriched data to %s", s.opts.EnrichedDataPath)
	}

	report, err := s.reporter.Generate(ctx, outcome.Valid, enriched)
	if err != nil {
		logger.WithError(err).WithField("stage", "report").Error("Erro ao gravar o relatório")
		return result, errors.Wrap(err, "erro ao gravar o relatório")
	}
	result.Analytics = report.Analytics
	if s.opts.ReportPath != "" {
		s.console.Success("Report saved to %s", s.opts.ReportPath)
	}

	result.CompletedAt = s.now()
	s.console.Success("Process complete")

	logger.WithFields(log.Fields{
		"records_read": result.RecordsRead,
		"malformed":    result.Malformed,
		"invalid":      result.Validation.Invalid,
		"valid":        result.Validation.FinalCount,
		"matched":      result.Matched,
		"duration_ms":  result.CompletedAt.Sub(result.StartedAt).Milliseconds(),
	}).Info("Execução do pipeline concluída")

	return result, nil
}

func (s *Service) fetchCatalog(ctx context.Context, logger log.Logger) domain.ProductMap {
	products, err := s.catalog.FetchProducts(ctx)
	if err != nil {
		logger.WithError(err).WithField("stage", "catalog").Warn("Catálogo indisponível, enriquecendo sem correspondências")
		s.console.Warning("Product catalog unavailable: %v", err)
		products = nil
	}

	s.console.Success("Fetched %d products", len(products))

	return domain.CreateProductMapping(products)
}

func (s *Service) printValidation(summary domain.ValidationSummary) {
	s.console.Success("Valid: %d | Invalid: %d", summary.FinalCount, summary.Invalid)
	if summary.Filtered > 0 {
		s.console.Info("Filtered out: %d", summary.Filtered)
	}

	s.console.Info("Regions: %s", strings.Join(summary.Regions, ", "))

	amountRange := summary.AmountRange
	if amountRange.Empty {
		s.console.Info("Amount Range: n/a")
		return
	}

	symbol := s.opts.Report.CurrencySymbol
	s.console.Info("Amount Range: %s - %s",
		utils.FormatMoney(symbol, amountRange.Min),
		utils.FormatMoney(symbol, amountRange.Max),
	)
}
