package scheduler

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/cogs-reconciler-api/internal/config"
	"github.com/vfg2006/cogs-reconciler-api/internal/domain"
	"github.com/vfg2006/cogs-reconciler-api/internal/notifier"
	"github.com/vfg2006/cogs-reconciler-api/internal/usecases/reconciling"
	"github.com/vfg2006/cogs-reconciler-api/pkg/log"
)

// CogsSyncConfig representa a configuração do agendador da reconciliação de COGS
type CogsSyncConfig struct {
	CronSchedule string
	Frequency    string
	SyncEnabled  bool
}

// CogsSyncService gerencia o agendamento e execução da reconciliação de COGS
type CogsSyncService struct {
	scheduler           *gocron.Scheduler
	config              CogsSyncConfig
	reconciler          reconciling.Reconciler
	notifier            notifier.Notifier
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastRunStatus       domain.RunStatus
	lastJournalDocs     []string
}

// NewCogsSyncService cria uma nova instância do serviço de reconciliação de COGS
func NewCogsSyncService(
	reconciler reconciling.Reconciler,
	alerts notifier.Notifier,
	appConfig *config.Config,
) *CogsSyncService {
	syncConfig := CogsSyncConfig{
		CronSchedule: appConfig.CogsSync.CronSchedule,
		Frequency:    appConfig.CogsSync.Frequency,
		SyncEnabled:  appConfig.CogsSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"frequency":     syncConfig.Frequency,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de reconciliação de COGS carregada")

	return &CogsSyncService{
		scheduler:   scheduler,
		config:      syncConfig,
		reconciler:  reconciler,
		notifier:    alerts,
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *CogsSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Reconciliação de COGS desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador da reconciliação de COGS")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runReconciliation(context.Background())
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar reconciliação de COGS: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador da reconciliação de COGS")
		s.scheduler.Stop()
	}()

	return nil
}

// RunOnce executa uma rodada única e síncrona, usada quando o binário roda em
// modo job em vez de daemon agendado.
func (s *CogsSyncService) RunOnce(ctx context.Context) error {
	return s.runReconciliation(ctx)
}

// runReconciliation executa uma rodada completa protegida contra sobreposição.
// Um panic na rodada é recuperado, alertado por e-mail com a stack e devolvido
// como erro para o chamador.
func (s *CogsSyncService) runReconciliation(ctx context.Context) (err error) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Reconciliação de COGS já em andamento, ignorando")
		return nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	startTime := time.Now()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	defer func() {
		if r := recover(); r != nil {
			logrus.WithField("panic", r).Error("Panic durante a reconciliação de COGS")
			s.recordOutcome(domain.RunStatusFailed, nil)

			if alertErr := s.notifier.Alert(
				"An Error Occurred during COGs insertion",
				fmt.Sprintf("%v\n\n%s", r, debug.Stack()),
			); alertErr != nil {
				logrus.WithError(alertErr).Warn("Erro ao enviar alerta de panic por e-mail")
			}

			err = fmt.Errorf("panic durante a reconciliação: %v", r)
		}
	}()

	ctx, correlationID := log.WithCorrelationID(ctx)
	logrus.WithField("correlation_id", correlationID).Info("Iniciando reconciliação de COGS")

	summary, err := s.reconciler.Run(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro durante a reconciliação de COGS")
		s.recordOutcome(domain.RunStatusFailed, nil)

		if alertErr := s.notifier.Alert(
			"An Error Occurred during COGs insertion",
			err.Error(),
		); alertErr != nil {
			logrus.WithError(alertErr).Warn("Erro ao enviar alerta de falha por e-mail")
		}

		return err
	}

	s.recordOutcome(summary.Status, summary.JournalDocs)

	logrus.WithFields(logrus.Fields{
		"duration":     time.Since(startTime).String(),
		"status":       summary.Status,
		"journal_docs": summary.JournalDocs,
	}).Info("Reconciliação de COGS concluída")

	return nil
}

// recordOutcome grava o resultado da rodada sob o mutex, já que GetStatus pode
// ser consultado pelo servidor de operações no meio de uma execução.
func (s *CogsSyncService) recordOutcome(status domain.RunStatus, docs []string) {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	s.lastRunStatus = status
	s.lastJournalDocs = docs
	s.lastSyncCompletedAt = time.Now()
}

// TriggerManualSync inicia manualmente uma reconciliação de COGS
func (s *CogsSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Reconciliação de COGS já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando reconciliação manual de COGS")
	go func() {
		_ = s.runReconciliation(context.Background())
	}()
}

// GetStatus retorna o status atual do agendador
func (s *CogsSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_frequency":         s.config.Frequency,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_run_status":        s.lastRunStatus,
		"last_journal_docs":      s.lastJournalDocs,
	}
}
