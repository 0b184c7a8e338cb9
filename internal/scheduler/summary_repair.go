package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/panel-billing-api/internal/config"
	"github.com/vfg2006/panel-billing-api/internal/usecases/summarizing"
	"github.com/vfg2006/panel-billing-api/pkg/utils"
)

// SummaryRepairConfig representa a configuração do agendador de reparo de resumos
type SummaryRepairConfig struct {
	CronSchedule   string
	PeriodLookBack int
	SyncEnabled    bool
}

// SummaryRepairService re-executa a cascata de resumo dos períodos recentes.
// Cascatas que falharam após um commit bem-sucedido são reparadas aqui: o
// recálculo do resumo é idempotente e barato de re-executar.
type SummaryRepairService struct {
	scheduler           *gocron.Scheduler
	config              SummaryRepairConfig
	summarizer          summarizing.Summarizer
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewSummaryRepairService cria uma nova instância do serviço de reparo de resumos
func NewSummaryRepairService(
	summarizer summarizing.Summarizer,
	appConfig *config.Config,
) *SummaryRepairService {
	repairConfig := SummaryRepairConfig{
		CronSchedule:   appConfig.SummaryRepair.CronSchedule,
		PeriodLookBack: appConfig.SummaryRepair.PeriodLookBack,
		SyncEnabled:    appConfig.SummaryRepair.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":   repairConfig.CronSchedule,
		"period_lookback": repairConfig.PeriodLookBack,
		"sync_enabled":    repairConfig.SyncEnabled,
	}).Info("Configuração do agendador de reparo de resumos carregada")

	return &SummaryRepairService{
		scheduler:   scheduler,
		config:      repairConfig,
		summarizer:  summarizer,
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *SummaryRepairService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Reparo de resumos mensais desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de reparo de resumos mensais")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.repairRecentSummaries()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar reparo de resumos mensais: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de reparo de resumos mensais")
		s.scheduler.Stop()
	}()

	return nil
}

// repairRecentSummaries recalcula os resumos do mês corrente e dos anteriores
func (s *SummaryRepairService) repairRecentSummaries() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Reparo de resumos já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	startTime := time.Now()
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	lookback := s.config.PeriodLookBack
	if lookback < 0 {
		lookback = 0
	}

	// i == 0 é o mês corrente
	for i := 0; i <= lookback; i++ {
		period := utils.MonthsAgoPeriod(time.Now(), i)

		if _, err := s.summarizer.RecomputeSummary(period); err != nil {
			logrus.WithError(err).WithField("period", period).Error("Erro ao reparar resumo mensal")
		}
	}

	duration := time.Since(startTime)
	logrus.WithField("duration", duration.String()).Info("Reparo de resumos mensais concluído")
}

// TriggerManualSync inicia manualmente um reparo de resumos
func (s *SummaryRepairService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Reparo de resumos já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando reparo manual de resumos mensais")
	go s.repairRecentSummaries()
}

// GetStatus retorna o status atual do reparo
func (s *SummaryRepairService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
