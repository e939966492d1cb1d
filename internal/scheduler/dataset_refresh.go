// Package scheduler contém os serviços de agendamento para atualização de dados
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/shophub-analytics/internal/config"
	"github.com/vfg2006/shophub-analytics/internal/domain"
)

// DatasetRefresher é a parte do pipeline usada pelo agendador
type DatasetRefresher interface {
	Refresh() (*domain.Snapshot, error)
}

type DatasetRefreshConfig struct {
	CronSchedule string
	Enabled      bool
}

// DatasetRefreshService regenera periodicamente o dataset corrente
type DatasetRefreshService struct {
	scheduler           *gocron.Scheduler
	refresher           DatasetRefresher
	config              DatasetRefreshConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSnapshotID      string
	lastSyncError       string
}

func NewDatasetRefreshService(refresher DatasetRefresher, cfg *config.Config) *DatasetRefreshService {
	refreshConfig := DatasetRefreshConfig{
		CronSchedule: cfg.DatasetRefresh.CronSchedule,
		Enabled:      cfg.DatasetRefresh.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": refreshConfig.CronSchedule,
		"enabled":       refreshConfig.Enabled,
	}).Info("Configuração do agendador de atualização do dataset carregada")

	return &DatasetRefreshService{
		scheduler: gocron.NewScheduler(time.Local),
		refresher: refresher,
		config:    refreshConfig,
	}
}

func (s *DatasetRefreshService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de atualização do dataset desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de atualização do dataset")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RefreshDataset(); err != nil {
			logrus.WithError(err).Error("Erro na atualização do dataset")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização do dataset: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de atualização do dataset")
		s.scheduler.Stop()
	}()

	return nil
}

// RefreshDataset gera um novo dataset; execuções simultâneas são ignoradas
func (s *DatasetRefreshService) RefreshDataset() error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Atualização do dataset já está em execução")
		return nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	snapshot, err := s.refresher.Refresh()

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()

	if err != nil {
		s.lastSyncError = err.Error()
		return err
	}

	s.lastSyncError = ""
	s.lastSnapshotID = snapshot.ID

	logrus.WithField("snapshot_id", snapshot.ID).Info("Dataset atualizado com sucesso")
	return nil
}

func (s *DatasetRefreshService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Atualização do dataset já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando atualização manual do dataset")
	go func() {
		if err := s.RefreshDataset(); err != nil {
			logrus.WithError(err).Error("Erro na atualização manual do dataset")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *DatasetRefreshService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.Enabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_snapshot_id":       s.lastSnapshotID,
		"last_sync_error":        s.lastSyncError,
	}
}
