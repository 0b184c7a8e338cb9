package summarizing

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/panel-billing-api/infrastructure/repository"
	"github.com/vfg2006/panel-billing-api/internal/domain"
	"github.com/vfg2006/panel-billing-api/pkg/utils"
)

// Summarizer recalcula o resumo agregado de um mês a partir dos registros
// mensais. Sempre sobrescreve por inteiro, nunca incrementa: cascatas
// concorrentes do mesmo mês convergem para o mesmo total.
type Summarizer interface {
	RecomputeSummary(period string) (*domain.MonthlySummary, error)
}

type Service struct {
	billingRepo repository.MonthlyBillingRepository
	summaryRepo repository.MonthlySummaryRepository
}

func NewService(
	billingRepo repository.MonthlyBillingRepository,
	summaryRepo repository.MonthlySummaryRepository,
) Summarizer {
	return &Service{
		billingRepo: billingRepo,
		summaryRepo: summaryRepo,
	}
}

func (s *Service) RecomputeSummary(period string) (*domain.MonthlySummary, error) {
	if err := utils.ValidatePeriod(period); err != nil {
		return nil, err
	}

	records, err := s.billingRepo.ListByPeriod(period)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar registros mensais do período %s: %w", period, err)
	}

	var totalCents int64
	var fullyBilled, partial, zeroAmount int

	for _, record := range records {
		amountCents := utils.CentsFromDecimal(record.Amount)
		totalCents += amountCents

		switch {
		case record.BillableDays >= utils.BillableDaysPerMonth:
			fullyBilled++
		case record.BillableDays > 0:
			partial++
		}

		if amountCents <= 0 {
			zeroAmount++
		}
	}

	summary := &domain.MonthlySummary{
		Period:           period,
		TotalAmount:      utils.DecimalFromCents(totalCents),
		FullyBilledCount: fullyBilled,
		PartialCount:     partial,
		ZeroAmountCount:  zeroAmount,
	}

	if err := s.summaryRepo.SaveOrUpdate(summary); err != nil {
		return nil, fmt.Errorf("erro ao gravar resumo do período %s: %w", period, err)
	}

	logrus.WithFields(logrus.Fields{
		"period":             period,
		"records":            len(records),
		"total_amount":       summary.TotalAmount.String(),
		"fully_billed_count": fullyBilled,
		"partial_count":      partial,
	}).Info("Resumo mensal recalculado")

	return summary, nil
}
