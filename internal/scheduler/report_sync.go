// Package scheduler contém o agendamento periódico do pipeline de vendas
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics/internal/config"
	"github.com/vfg2006/sales-analytics/internal/domain"
)

// Runner executa o pipeline completo uma vez
type Runner interface {
	Run(ctx context.Context) (*domain.RunResult, error)
}

type ReportSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

type ReportSyncService struct {
	scheduler           *gocron.Scheduler
	runner              Runner
	config              ReportSyncConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastRunID           string
	lastError           string
}

func NewReportSyncService(runner Runner, cfg *config.Config) *ReportSyncService {
	syncConfig := ReportSyncConfig{
		CronSchedule: cfg.ReportSync.CronSchedule,
		SyncEnabled:  cfg.ReportSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
	}).Debug("Configuração do agendador do relatório de vendas carregada")

	return &ReportSyncService{
		scheduler: gocron.NewScheduler(time.Local),
		runner:    runner,
		config:    syncConfig,
	}
}

func (s *ReportSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron do relatório de vendas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron do relatório de vendas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RunReport(ctx); err != nil {
			logrus.WithError(err).Error("Erro na geração agendada do relatório de vendas")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar o relatório de vendas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron do relatório de vendas")
		s.scheduler.Stop()
	}()

	return nil
}

// RunReport executa o pipeline, ignorando a chamada se já houver uma execução em andamento
func (s *ReportSyncService) RunReport(ctx context.Context) error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Geração do relatório de vendas já está em execução")
		return nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	result, err := s.runner.Run(ctx)

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	s.lastError = ""
	if result != nil {
		s.lastRunID = result.RunID
	}
	if err != nil {
		s.lastError = err.Error()
		return err
	}

	return nil
}

// TriggerManualSync dispara uma execução fora do horário agendado
func (s *ReportSyncService) TriggerManualSync(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Relatório de vendas já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando geração manual do relatório de vendas")
	go func() {
		if err := s.RunReport(ctx); err != nil {
			logrus.WithError(err).Error("Erro na geração manual do relatório de vendas")
		}
	}()
}

// IsRunning indica se há uma execução em andamento
func (s *ReportSyncService) IsRunning() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	return s.syncRunning
}

// GetStatus retorna o status atual do agendador
func (s *ReportSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_run_id":            s.lastRunID,
		"last_error":             s.lastError,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
