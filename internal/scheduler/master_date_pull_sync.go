package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/ads-metrics-sync/internal/config"
	"github.com/vfg2006/ads-metrics-sync/internal/domain"
	"github.com/vfg2006/ads-metrics-sync/internal/usecases/syncing"
	"github.com/vfg2006/ads-metrics-sync/pkg/utils"
)

// MasterDatePullSyncConfig representa a configuração do agendador da sincronização do Google Ads
type MasterDatePullSyncConfig struct {
	CronSchedule string
	LookbackDays int
	SyncEnabled  bool
	RecordID     string
}

// MasterDatePullSyncService agenda e executa a sincronização periódica
type MasterDatePullSyncService struct {
	scheduler *gocron.Scheduler
	config    MasterDatePullSyncConfig
	puller    syncing.Puller
	now       func() time.Time

	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastRecords         int
	lastError           string
}

func NewMasterDatePullSyncService(puller syncing.Puller, appConfig *config.Config) *MasterDatePullSyncService {
	syncConfig := MasterDatePullSyncConfig{
		CronSchedule: appConfig.MasterDatePullSync.CronSchedule,
		LookbackDays: appConfig.MasterDatePullSync.LookbackDays,
		SyncEnabled:  appConfig.MasterDatePullSync.Enabled,
		RecordID:     appConfig.MasterDatePullSync.RecordID,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"lookback_days": syncConfig.LookbackDays,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de sincronização do Google Ads carregada")

	return &MasterDatePullSyncService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    syncConfig,
		puller:    puller,
		now:       time.Now,
	}
}

// Start registra a tarefa e inicia o agendador. O agendador para quando o contexto for cancelado.
func (s *MasterDatePullSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização agendada do Google Ads desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização do Google Ads")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runSync(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização do Google Ads: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização do Google Ads")
		s.scheduler.Stop()
	}()

	return nil
}

// runSync executa uma sincronização, ignorando o disparo se outra ainda estiver em andamento
func (s *MasterDatePullSyncService) runSync(ctx context.Context) {
	if !s.tryStart() {
		logrus.Info("Sincronização do Google Ads já em andamento, ignorando")
		return
	}
	s.execute(ctx)
}

func (s *MasterDatePullSyncService) tryStart() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}

	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	return true
}

func (s *MasterDatePullSyncService) execute(ctx context.Context) {
	startTime := time.Now()

	var (
		records int
		errMsg  string
	)

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = s.now()
		s.lastRecords = records
		s.lastError = errMsg
		s.syncMutex.Unlock()
	}()

	result, err := s.pull(ctx)
	if err != nil {
		errMsg = err.Error()
		logrus.WithError(err).Error("Erro na sincronização agendada do Google Ads")
		return
	}

	records = result.TotalRecords

	logrus.WithFields(logrus.Fields{
		"duration": time.Since(startTime).String(),
		"records":  records,
	}).Info("Sincronização agendada do Google Ads concluída")
}

// pull usa a janela móvel quando LookbackDays > 0; caso contrário lê as datas do registro de controle
func (s *MasterDatePullSyncService) pull(ctx context.Context) (*domain.SyncResult, error) {
	if s.config.LookbackDays <= 0 {
		return s.puller.PullAllData(ctx, s.config.RecordID)
	}

	start, end := utils.LookbackRange(s.now(), s.config.LookbackDays)

	logrus.WithFields(logrus.Fields{
		"start_date": start,
		"end_date":   end,
	}).Info("Período da sincronização agendada do Google Ads")

	return s.puller.PullWithDateRange(ctx, start, end, s.config.RecordID)
}

// TriggerManualSync dispara uma sincronização fora do horário agendado.
// Retorna false quando já existe uma execução em andamento.
func (s *MasterDatePullSyncService) TriggerManualSync(ctx context.Context) bool {
	if !s.tryStart() {
		logrus.Info("Sincronização do Google Ads já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando sincronização manual do Google Ads")
	go s.execute(context.WithoutCancel(ctx))
	return true
}

// IsRunning indica se existe uma execução em andamento
func (s *MasterDatePullSyncService) IsRunning() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	return s.syncRunning
}

// GetStatus retorna o status atual do agendador
func (s *MasterDatePullSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_lookback_days":     s.config.LookbackDays,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_records":      s.lastRecords,
		"last_sync_error":        s.lastError,
	}
}
