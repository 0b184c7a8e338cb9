package reporting

import (
	"bytes"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/panel-billing-api/infrastructure/repository/mocks"
	"github.com/vfg2006/panel-billing-api/internal/domain"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
)

func reportRecords() []*domain.MonthlyBilling {
	return []*domain.MonthlyBilling{
		{
			PanelID:       "PNL001",
			Period:        "04-2025",
			BillableDays:  30,
			Amount:        decimal.RequireFromString("113.10"),
			ClosingStatus: domain.PanelStatusActive,
			AppliedRate:   decimal.RequireFromString("113.10"),
			PanelCode:     "PNL-0001",
			Municipality:  "Curitiba",
		},
		{
			PanelID:       "PNL002",
			Period:        "04-2025",
			BillableDays:  10,
			Amount:        decimal.RequireFromString("37.70"),
			ClosingStatus: domain.PanelStatusRemoved,
			AppliedRate:   decimal.RequireFromString("113.10"),
			PanelCode:     "PNL-0002",
			Municipality:  "Londrina",
		},
	}
}

func reportSummary() *domain.MonthlySummary {
	return &domain.MonthlySummary{
		Period:           "04-2025",
		TotalAmount:      decimal.RequireFromString("150.80"),
		FullyBilledCount: 1,
		PartialCount:     1,
		ZeroAmountCount:  0,
	}
}

func TestMonthlyReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	billingRepo := mocks.NewMockMonthlyBillingRepository(ctrl)
	summaryRepo := mocks.NewMockMonthlySummaryRepository(ctrl)
	service := NewService(billingRepo, summaryRepo)

	billingRepo.EXPECT().ListByPeriod("04-2025").Return(reportRecords(), nil)
	summaryRepo.EXPECT().GetByPeriod("04-2025").Return(reportSummary(), nil)

	report, err := service.MonthlyReport("04-2025")

	assert.NoError(t, err)
	assert.Equal(t, "04-2025", report.Period)
	assert.Len(t, report.Records, 2)
	assert.Equal(t, "150.80", report.Summary.TotalAmount.StringFixed(2))
}

func TestMonthlyReport_InvalidPeriod(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(
		mocks.NewMockMonthlyBillingRepository(ctrl),
		mocks.NewMockMonthlySummaryRepository(ctrl),
	)

	_, err := service.MonthlyReport("abril")
	assert.Error(t, err)
}

func TestGetAvailablePeriods(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	billingRepo := mocks.NewMockMonthlyBillingRepository(ctrl)
	service := NewService(billingRepo, mocks.NewMockMonthlySummaryRepository(ctrl))

	billingRepo.EXPECT().GetAllPeriods().Return([]string{"03-2025", "04-2025"}, nil)

	periods, err := service.GetAvailablePeriods()

	assert.NoError(t, err)
	assert.Equal(t, []string{"03-2025", "04-2025"}, periods)
}

func TestGetAvailablePeriods_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	billingRepo := mocks.NewMockMonthlyBillingRepository(ctrl)
	service := NewService(billingRepo, mocks.NewMockMonthlySummaryRepository(ctrl))

	billingRepo.EXPECT().GetAllPeriods().Return(nil, errors.New("timeout"))

	_, err := service.GetAvailablePeriods()
	assert.Error(t, err)
}

func TestExportXLSX(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	billingRepo := mocks.NewMockMonthlyBillingRepository(ctrl)
	summaryRepo := mocks.NewMockMonthlySummaryRepository(ctrl)
	service := NewService(billingRepo, summaryRepo)

	billingRepo.EXPECT().ListByPeriod("04-2025").Return(reportRecords(), nil)
	summaryRepo.EXPECT().GetByPeriod("04-2025").Return(reportSummary(), nil)

	content, err := service.ExportXLSX("04-2025")
	assert.NoError(t, err)
	assert.NotEmpty(t, content)

	// A planilha gerada deve ser legível de volta com as duas abas esperadas
	f, err := excelize.OpenReader(bytes.NewReader(content))
	assert.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"resumo", "registros"}, f.GetSheetList())

	periodCell, err := f.GetCellValue("resumo", "B3")
	assert.NoError(t, err)
	assert.Equal(t, "04-2025", periodCell)

	firstCode, err := f.GetCellValue("registros", "A2")
	assert.NoError(t, err)
	assert.Equal(t, "PNL-0001", firstCode)

	secondAmount, err := f.GetCellValue("registros", "D3")
	assert.NoError(t, err)
	assert.Equal(t, "37.70", secondAmount)
}
