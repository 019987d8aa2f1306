package scheduler

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/prajwalcordiero/online-hackathon-1/internal/config"
	"github.com/prajwalcordiero/online-hackathon-1/internal/domain"
	"github.com/prajwalcordiero/online-hackathon-1/internal/usecases/insighting"
	"github.com/prajwalcordiero/online-hackathon-1/internal/usecases/loading"
	"github.com/prajwalcordiero/online-hackathon-1/pkg/utils"
	"github.com/sirupsen/logrus"
)

// DatasetMonitorConfig representa a configuração do monitor do dataset de vendas
type DatasetMonitorConfig struct {
	CronSchedule string
	Enabled      bool
}

// DatasetMonitorService verifica periodicamente o dataset de vendas: carrega o
// arquivo, recalcula os insights e registra um snapshot com as contagens e a
// distribuição das ações de precificação. As páginas continuam recarregando o
// arquivo a cada requisição; o monitor existe para diagnóstico, não como cache.
type DatasetMonitorService struct {
	scheduler            *gocron.Scheduler
	config               DatasetMonitorConfig
	appConfig            *config.Config
	loader               loading.Loader
	insighter            insighting.Insighter
	checkRunning         bool
	checkMutex           sync.Mutex
	snapshotMutex        sync.RWMutex
	lastCheckStartedAt   time.Time
	lastCheckCompletedAt time.Time
	lastSnapshot         *domain.DatasetSnapshot
}

// NewDatasetMonitorService cria uma nova instância do monitor do dataset
func NewDatasetMonitorService(
	loader loading.Loader,
	insighter insighting.Insighter,
	appConfig *config.Config,
) *DatasetMonitorService {
	monitorConfig := DatasetMonitorConfig{
		CronSchedule: appConfig.DatasetMonitor.CronSchedule,
		Enabled:      appConfig.DatasetMonitor.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": monitorConfig.CronSchedule,
		"enabled":       monitorConfig.Enabled,
		"data_file":     appConfig.Data.FilePath,
	}).Info("Configuração do monitor do dataset carregada")

	return &DatasetMonitorService{
		scheduler:    scheduler,
		config:       monitorConfig,
		appConfig:    appConfig,
		loader:       loader,
		insighter:    insighter,
		checkRunning: false,
	}
}

// Start inicia o agendador
func (s *DatasetMonitorService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Monitor do dataset desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador do monitor do dataset")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.checkDataset()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar verificação do dataset: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador do monitor do dataset")
		s.scheduler.Stop()
	}()

	return nil
}

// checkDataset executa uma verificação completa do dataset de vendas
func (s *DatasetMonitorService) checkDataset() {
	s.checkMutex.Lock()
	if s.checkRunning {
		s.checkMutex.Unlock()
		logrus.Info("Verificação do dataset já em andamento, ignorando")
		return
	}
	s.checkRunning = true
	s.checkMutex.Unlock()

	startTime := time.Now()

	defer func() {
		s.checkMutex.Lock()
		s.checkRunning = false
		s.checkMutex.Unlock()
	}()

	checkID, err := utils.GenerateID()
	if err != nil {
		logrus.WithError(err).Warn("Falha ao gerar identificador da verificação do dataset")
	}

	logrus.WithFields(logrus.Fields{
		"check_id":  checkID,
		"data_file": s.appConfig.Data.FilePath,
	}).Info("Iniciando verificação do dataset de vendas")

	snapshot := &domain.DatasetSnapshot{
		CheckID:   checkID,
		CheckedAt: startTime,
	}

	if info, statErr := os.Stat(s.appConfig.Data.FilePath); statErr == nil {
		snapshot.FileSizeBytes = info.Size()
		snapshot.FileModifiedAt = info.ModTime()
	}

	sales, err := s.loader.LoadSalesData()
	if err != nil {
		snapshot.LoadError = err.Error()

		logrus.WithFields(logrus.Fields{
			"check_id": checkID,
			"error":    err.Error(),
		}).Error("Erro ao carregar o dataset durante a verificação")

		s.storeSnapshot(snapshot, startTime)
		return
	}

	insights := s.insighter.BuildRetailInsights(sales.Records)

	snapshot.RowCount = len(sales.Records)
	snapshot.InsightCount = len(insights)
	snapshot.PricingActions = pricingActionDistribution(insights)

	s.storeSnapshot(snapshot, startTime)

	logrus.Debug("Snapshot da verificação do dataset: ", utils.PrettyJson(snapshot))

	logrus.WithFields(logrus.Fields{
		"check_id": checkID,
		"duration": time.Since(startTime).String(),
		"rows":     snapshot.RowCount,
		"insights": snapshot.InsightCount,
	}).Info("Verificação do dataset concluída")
}

// pricingActionDistribution conta os insights por ação de precificação
func pricingActionDistribution(insights []*domain.RetailInsight) map[string]int {
	distribution := make(map[string]int, 3)
	for _, insight := range insights {
		distribution[insight.PricingAction]++
	}
	return distribution
}

func (s *DatasetMonitorService) storeSnapshot(snapshot *domain.DatasetSnapshot, startedAt time.Time) {
	s.snapshotMutex.Lock()
	defer s.snapshotMutex.Unlock()

	s.lastCheckStartedAt = startedAt
	s.lastCheckCompletedAt = time.Now()
	s.lastSnapshot = snapshot
}

// TriggerManualCheck inicia manualmente uma verificação do dataset
func (s *DatasetMonitorService) TriggerManualCheck() {
	s.checkMutex.Lock()
	if s.checkRunning {
		s.checkMutex.Unlock()
		logrus.Info("Verificação do dataset já em andamento, ignorando solicitação manual")
		return
	}
	s.checkMutex.Unlock()

	logrus.Info("Iniciando verificação manual do dataset")
	go s.checkDataset()
}

// LastSnapshot retorna o snapshot da última verificação concluída, ou nil
// quando nenhuma verificação rodou desde a inicialização
func (s *DatasetMonitorService) LastSnapshot() *domain.DatasetSnapshot {
	s.snapshotMutex.RLock()
	defer s.snapshotMutex.RUnlock()

	return s.lastSnapshot
}

// GetStatus retorna o status atual do agendador
func (s *DatasetMonitorService) GetStatus() map[string]any {
	s.snapshotMutex.RLock()
	defer s.snapshotMutex.RUnlock()

	return map[string]any{
		"check_enabled":           s.config.Enabled,
		"check_cron":              s.config.CronSchedule,
		"data_file":               s.appConfig.Data.FilePath,
		"last_check_started_at":   s.lastCheckStartedAt,
		"last_check_completed_at": s.lastCheckCompletedAt,
	}
}
