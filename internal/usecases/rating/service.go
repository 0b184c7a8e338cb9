package rating

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/panel-billing-api/infrastructure/repository"
)

// ErrRateNotConfigured indica que não existe tarifa padrão para o ano pedido.
// O faturamento nunca prossegue com uma tarifa adivinhada: é falha dura.
var ErrRateNotConfigured = errors.New("tarifa padrão não configurada para o ano")

// RateResolver resolve a tarifa mensal padrão de um ano
type RateResolver interface {
	StandardRate(year int) (decimal.Decimal, error)
}

type Service struct {
	rateRepo repository.YearlyRateRepository
}

func NewService(rateRepo repository.YearlyRateRepository) RateResolver {
	return &Service{
		rateRepo: rateRepo,
	}
}

func (s *Service) StandardRate(year int) (decimal.Decimal, error) {
	rate, err := s.rateRepo.GetByYear(year)
	if err != nil {
		return decimal.Zero, fmt.Errorf("erro ao buscar tarifa padrão do ano %d: %w", year, err)
	}

	if rate == nil {
		logrus.WithField("year", year).Error("Tarifa padrão ausente para o ano")
		return decimal.Zero, fmt.Errorf("%w: %d", ErrRateNotConfigured, year)
	}

	return rate.Amount, nil
}
