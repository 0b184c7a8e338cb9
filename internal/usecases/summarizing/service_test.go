package summarizing

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/panel-billing-api/infrastructure/repository/mocks"
	"github.com/vfg2006/panel-billing-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func billingRecord(amount string, days int) *domain.MonthlyBilling {
	return &domain.MonthlyBilling{
		PanelID:      "PNL001",
		Period:       "04-2025",
		BillableDays: days,
		Amount:       decimal.RequireFromString(amount),
	}
}

func TestRecomputeSummary(t *testing.T) {
	tests := []struct {
		name                string
		records             []*domain.MonthlyBilling
		expectedTotal       string
		expectedFullyBilled int
		expectedPartial     int
		expectedZeroAmount  int
	}{
		{
			name: "Mistura de meses completos, parciais e sem valor",
			records: []*domain.MonthlyBilling{
				billingRecord("113.10", 30),
				billingRecord("37.70", 10),
				billingRecord("0.00", 0),
			},
			expectedTotal:       "150.80",
			expectedFullyBilled: 1,
			expectedPartial:     1,
			expectedZeroAmount:  1,
		},
		{
			name:                "Período sem registros gera resumo zerado",
			records:             []*domain.MonthlyBilling{},
			expectedTotal:       "0.00",
			expectedFullyBilled: 0,
			expectedPartial:     0,
			expectedZeroAmount:  0,
		},
		{
			name: "Ajuste negativo pode zerar o valor de um mês completo",
			records: []*domain.MonthlyBilling{
				billingRecord("-5.00", 30),
				billingRecord("113.10", 30),
			},
			expectedTotal:       "108.10",
			expectedFullyBilled: 2,
			expectedPartial:     0,
			expectedZeroAmount:  1,
		},
		{
			name: "Soma em centavos não acumula erro de ponto flutuante",
			records: []*domain.MonthlyBilling{
				billingRecord("0.10", 1),
				billingRecord("0.10", 1),
				billingRecord("0.10", 1),
			},
			expectedTotal:       "0.30",
			expectedFullyBilled: 0,
			expectedPartial:     3,
			expectedZeroAmount:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			billingRepo := mocks.NewMockMonthlyBillingRepository(ctrl)
			summaryRepo := mocks.NewMockMonthlySummaryRepository(ctrl)
			service := NewService(billingRepo, summaryRepo)

			billingRepo.EXPECT().ListByPeriod("04-2025").Return(tt.records, nil)

			var saved *domain.MonthlySummary
			summaryRepo.EXPECT().
				SaveOrUpdate(gomock.Any()).
				DoAndReturn(func(summary *domain.MonthlySummary) error {
					saved = summary
					return nil
				})

			summary, err := service.RecomputeSummary("04-2025")

			assert.NoError(t, err)
			assert.Same(t, summary, saved)
			assert.Equal(t, "04-2025", summary.Period)
			assert.Equal(t, tt.expectedTotal, summary.TotalAmount.StringFixed(2))
			assert.Equal(t, tt.expectedFullyBilled, summary.FullyBilledCount)
			assert.Equal(t, tt.expectedPartial, summary.PartialCount)
			assert.Equal(t, tt.expectedZeroAmount, summary.ZeroAmountCount)
		})
	}
}

func TestRecomputeSummary_InvalidPeriod(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(
		mocks.NewMockMonthlyBillingRepository(ctrl),
		mocks.NewMockMonthlySummaryRepository(ctrl),
	)

	_, err := service.RecomputeSummary("abril")
	assert.Error(t, err)
}

func TestRecomputeSummary_ListFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	billingRepo := mocks.NewMockMonthlyBillingRepository(ctrl)
	summaryRepo := mocks.NewMockMonthlySummaryRepository(ctrl)
	service := NewService(billingRepo, summaryRepo)

	billingRepo.EXPECT().ListByPeriod("04-2025").Return(nil, errors.New("timeout"))

	_, err := service.RecomputeSummary("04-2025")
	assert.Error(t, err)
}
