package billing

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/panel-billing-api/infrastructure/repository"
	"github.com/vfg2006/panel-billing-api/internal/config"
	"github.com/vfg2006/panel-billing-api/internal/domain"
	"github.com/vfg2006/panel-billing-api/internal/usecases/rating"
	"github.com/vfg2006/panel-billing-api/internal/usecases/summarizing"
	"github.com/vfg2006/panel-billing-api/pkg/utils"
)

// BillingService é o ponto de entrada do recálculo mensal. Toda ação
// administrativa (criação de evento, regeneração em lote, correções) termina
// chamando RecalculateMonth para o par (painel, período) afetado.
type BillingService interface {
	RecalculateMonth(panelID, period string) (*domain.MonthlyBilling, error)
	RegenerateMonth(period string) (*domain.BulkRecalculationResult, error)
}

type Service struct {
	panelRepo   repository.PanelRepository
	eventRepo   repository.PanelEventRepository
	billingRepo repository.MonthlyBillingRepository
	rates       rating.RateResolver
	summarizer  summarizing.Summarizer
	cfg         *config.Config
	now         func() time.Time
}

func NewService(
	panelRepo repository.PanelRepository,
	eventRepo repository.PanelEventRepository,
	billingRepo repository.MonthlyBillingRepository,
	rates rating.RateResolver,
	summarizer summarizing.Summarizer,
	cfg *config.Config,
) *Service {
	return &Service{
		panelRepo:   panelRepo,
		eventRepo:   eventRepo,
		billingRepo: billingRepo,
		rates:       rates,
		summarizer:  summarizer,
		cfg:         cfg,
		now:         time.Now,
	}
}

// RecalculateMonth rederiva o registro de faturamento de um painel em um mês a
// partir do fechamento do mês anterior e do log de eventos do mês. É
// idempotente: com o mesmo conjunto de eventos, duas execuções produzem
// registros idênticos.
func (s *Service) RecalculateMonth(panelID, period string) (*domain.MonthlyBilling, error) {
	if err := utils.ValidatePeriod(period); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPeriod, err)
	}

	panel, err := s.panelRepo.GetByID(panelID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar painel %s: %w", panelID, err)
	}
	if panel == nil {
		return nil, fmt.Errorf("%w: %s", ErrPanelNotFound, panelID)
	}

	targetYear, err := utils.PeriodYear(period)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPeriod, err)
	}

	// Passo 1 — estado inicial herdado do fechamento do mês anterior
	initialStatus, initialRate, err := s.resolveInitialState(panelID, period, targetYear)
	if err != nil {
		return nil, err
	}

	// Passo 2 — eventos do mês; filtro de deleção e ordenação em memória
	events, err := s.eventRepo.ListByPanelAndPeriod(panelID, period)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar eventos de %s/%s: %w", panelID, period, err)
	}

	// Passos 3 e 4 — máquina de estados e agregação
	result := runEngine(engineInput{
		PanelID:       panelID,
		Period:        period,
		InitialStatus: initialStatus,
		InitialRate:   initialRate,
		Events:        prepareEvents(events),
	})

	rateCents := utils.CentsFromDecimal(result.AppliedRate)
	amountCents := utils.ProRataCents(rateCents, result.BillableDays) + result.AdjustmentCents

	record := &domain.MonthlyBilling{
		PanelID:       panelID,
		Period:        period,
		BillableDays:  result.BillableDays,
		Amount:        utils.DecimalFromCents(amountCents),
		ClosingStatus: result.ClosingStatus,
		AppliedRate:   result.AppliedRate,
		PanelCode:     panel.Code,
		Municipality:  panel.Municipality,
		SchemaVersion: domain.MonthlyBillingSchemaVersion,
	}

	// Passo 5 — commit atômico. O status "ao vivo" do painel só acompanha o
	// recálculo de meses corrente ou futuros: mês histórico nunca mexe no que
	// a interface mostra como status atual.
	var liveStatus *domain.PanelStatus
	if utils.IsCurrentOrFuturePeriod(period, s.now()) {
		status := result.ClosingStatus
		liveStatus = &status
	}

	if err := s.billingRepo.CommitRecalculation(record, liveStatus); err != nil {
		return nil, fmt.Errorf("erro ao gravar recálculo de %s/%s: %w", panelID, period, err)
	}

	logrus.WithFields(logrus.Fields{
		"panel_id":       panelID,
		"period":         period,
		"billable_days":  result.BillableDays,
		"amount":         record.Amount.String(),
		"closing_status": result.ClosingStatus,
	}).Info("Recálculo mensal concluído")

	// Passo 6 — cascata. Falha aqui não desfaz o commit: o registro mensal é a
	// fonte de verdade, o resumo é derivado e reparável depois.
	if _, err := s.summarizer.RecomputeSummary(period); err != nil {
		logrus.WithError(err).WithField("period", period).Error("Falha na cascata de resumo mensal")
	}

	return record, nil
}

func (s *Service) resolveInitialState(
	panelID, period string,
	targetYear int,
) (domain.PanelStatus, decimal.Decimal, error) {
	previousPeriod, err := utils.PreviousPeriod(period)
	if err != nil {
		return "", decimal.Zero, fmt.Errorf("%w: %v", ErrInvalidPeriod, err)
	}

	prior, err := s.billingRepo.GetByPanelAndPeriod(panelID, previousPeriod)
	if err != nil {
		return "", decimal.Zero, fmt.Errorf("erro ao buscar fechamento de %s/%s: %w", panelID, previousPeriod, err)
	}

	// Sem histórico: primeiro mês do painel, status ACTIVE e tarifa padrão do ano
	if prior == nil {
		rate, err := s.rates.StandardRate(targetYear)
		if err != nil {
			return "", decimal.Zero, err
		}
		return domain.PanelStatusActive, rate, nil
	}

	priorYear, err := utils.PeriodYear(prior.Period)
	if err != nil {
		return "", decimal.Zero, fmt.Errorf("fechamento anterior com período inválido %q: %w", prior.Period, err)
	}

	// Virada de ano sempre reprecifica com a tarifa padrão do ano novo,
	// sobrepondo qualquer tarifa customizada herdada. No mesmo ano a tarifa
	// aplicada é herdada tal e qual, preservando customizações manuais.
	if priorYear != targetYear {
		rate, err := s.rates.StandardRate(targetYear)
		if err != nil {
			return "", decimal.Zero, err
		}
		return prior.ClosingStatus, rate, nil
	}

	return prior.ClosingStatus, prior.AppliedRate, nil
}
