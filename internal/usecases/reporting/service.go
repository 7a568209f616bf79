package reporting

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics/internal/domain"
)

// Writer grava o texto do relatório
type Writer interface {
	WriteReport(ctx context.Context, content string) error
}

type Service struct {
	writer Writer
	opts   Options
	now    func() time.Time
}

func NewService(writer Writer, opts Options) *Service {
	return &Service{
		writer: writer,
		opts:   opts,
		now:    time.Now,
	}
}

// WithClock substitui o relógio usado no carimbo de geração
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Generate calcula, formata e grava o relatório
func (s *Service) Generate(ctx context.Context, valid []domain.Transaction, enriched []domain.EnrichedTransaction) (Report, error) {
	report := Build(valid, enriched, s.opts, s.now())

	if err := s.writer.WriteReport(ctx, report.String()); err != nil {
		logrus.WithError(err).Error("Erro ao gravar o relatório de vendas")
		return report, err
	}

	logrus.WithFields(logrus.Fields{
		"transactions":  report.Overview.TransactionCount,
		"total_revenue": report.Overview.TotalRevenue.StringFixed(2),
	}).Info("Relatório de vendas gerado")

	return report, nil
}
