package reporting

import (
	"github.com/pkg/errors"
	"github.com/vfg2006/panel-billing-api/infrastructure/repository"
	"github.com/vfg2006/panel-billing-api/internal/domain"
	"github.com/vfg2006/panel-billing-api/pkg/utils"
)

// Reporter monta o relatório mensal de faturamento e suas exportações
type Reporter interface {
	MonthlyReport(period string) (*domain.MonthlyReport, error)
	ExportXLSX(period string) ([]byte, error)
	GetAvailablePeriods() ([]string, error)
}

type Service struct {
	billingRepo repository.MonthlyBillingRepository
	summaryRepo repository.MonthlySummaryRepository
}

func NewService(
	billingRepo repository.MonthlyBillingRepository,
	summaryRepo repository.MonthlySummaryRepository,
) Reporter {
	return &Service{
		billingRepo: billingRepo,
		summaryRepo: summaryRepo,
	}
}

func (s *Service) MonthlyReport(period string) (*domain.MonthlyReport, error) {
	if err := utils.ValidatePeriod(period); err != nil {
		return nil, err
	}

	records, err := s.billingRepo.ListByPeriod(period)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao listar registros do período %s", period)
	}

	summary, err := s.summaryRepo.GetByPeriod(period)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao buscar resumo do período %s", period)
	}

	return &domain.MonthlyReport{
		Period:  period,
		Summary: summary,
		Records: records,
	}, nil
}

func (s *Service) GetAvailablePeriods() ([]string, error) {
	periods, err := s.billingRepo.GetAllPeriods()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar períodos disponíveis")
	}
	return periods, nil
}
