package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/panel-billing-api/internal/config"
	"github.com/vfg2006/panel-billing-api/internal/usecases/billing"
	"github.com/vfg2006/panel-billing-api/pkg/utils"
)

// BillingRegenerationConfig representa a configuração do agendador de regeneração mensal
type BillingRegenerationConfig struct {
	CronSchedule   string
	PeriodLookBack int
	SyncEnabled    bool
}

// BillingRegenerationService gerencia o agendamento e execução da regeneração
// mensal dos registros de faturamento
type BillingRegenerationService struct {
	scheduler           *gocron.Scheduler
	config              BillingRegenerationConfig
	billingService      billing.BillingService
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewBillingRegenerationService cria uma nova instância do serviço de regeneração mensal
func NewBillingRegenerationService(
	billingService billing.BillingService,
	appConfig *config.Config,
) *BillingRegenerationService {
	regenConfig := BillingRegenerationConfig{
		CronSchedule:   appConfig.BillingRegeneration.CronSchedule,
		PeriodLookBack: appConfig.BillingRegeneration.PeriodLookBack,
		SyncEnabled:    appConfig.BillingRegeneration.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":   regenConfig.CronSchedule,
		"period_lookback": regenConfig.PeriodLookBack,
		"sync_enabled":    regenConfig.SyncEnabled,
	}).Info("Configuração do agendador de regeneração mensal carregada")

	return &BillingRegenerationService{
		scheduler:      scheduler,
		config:         regenConfig,
		billingService: billingService,
		syncRunning:    false,
	}
}

// Start inicia o agendador
func (s *BillingRegenerationService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Regeneração mensal de faturamento desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de regeneração mensal de faturamento")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.regenerateRecentPeriods()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar regeneração mensal de faturamento: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de regeneração mensal de faturamento")
		s.scheduler.Stop()
	}()

	return nil
}

// regenerateRecentPeriods regenera os registros de faturamento dos últimos períodos
func (s *BillingRegenerationService) regenerateRecentPeriods() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Regeneração mensal já em andamento, ignorando")
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
	if lookback < 1 {
		lookback = 1
	}

	for i := 1; i <= lookback; i++ {
		period := utils.MonthsAgoPeriod(time.Now(), i)

		logrus.WithField("period", period).Info("Período para regeneração mensal de faturamento")

		result, err := s.billingService.RegenerateMonth(period)
		if err != nil {
			logrus.WithError(err).WithField("period", period).Error("Erro na regeneração mensal de faturamento")
			continue
		}

		logrus.WithFields(logrus.Fields{
			"period":    period,
			"succeeded": len(result.Succeeded),
			"failed":    len(result.Failed),
		}).Info("Regeneração do período concluída")

		for _, failure := range result.Failed {
			logrus.WithFields(logrus.Fields{
				"panel_id": failure.PanelID,
				"period":   period,
				"reason":   failure.Reason,
			}).Warn("Painel com falha definitiva na regeneração")
		}
	}

	duration := time.Since(startTime)
	logrus.WithField("duration", duration.String()).Info("Regeneração mensal de faturamento concluída")
}

// TriggerManualSync inicia manualmente uma regeneração mensal
func (s *BillingRegenerationService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Regeneração mensal já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando regeneração manual de faturamento")
	go s.regenerateRecentPeriods()
}

// GetStatus retorna o status atual da regeneração
func (s *BillingRegenerationService) GetStatus() map[string]any {
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
