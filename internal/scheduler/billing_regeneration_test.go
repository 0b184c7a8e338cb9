package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/panel-billing-api/internal/domain"
	billingmocks "github.com/vfg2006/panel-billing-api/internal/usecases/billing/mocks"
	"github.com/vfg2006/panel-billing-api/pkg/utils"
	"go.uber.org/mock/gomock"
)

func TestBillingRegenerationService_regenerateRecentPeriods(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBilling := billingmocks.NewMockBillingService(ctrl)

	service := &BillingRegenerationService{
		config: BillingRegenerationConfig{
			PeriodLookBack: 2,
			SyncEnabled:    true,
		},
		billingService: mockBilling,
	}

	lastMonth := utils.MonthsAgoPeriod(time.Now(), 1)
	twoMonthsAgo := utils.MonthsAgoPeriod(time.Now(), 2)

	mockBilling.EXPECT().
		RegenerateMonth(lastMonth).
		Return(&domain.BulkRecalculationResult{
			Period:    lastMonth,
			Succeeded: []string{"PNL001", "PNL002"},
			Failed:    []domain.PanelRecalculationFailure{},
		}, nil)

	mockBilling.EXPECT().
		RegenerateMonth(twoMonthsAgo).
		Return(&domain.BulkRecalculationResult{
			Period:    twoMonthsAgo,
			Succeeded: []string{"PNL001"},
			Failed: []domain.PanelRecalculationFailure{
				{PanelID: "PNL002", Reason: "painel não encontrado"},
			},
		}, nil)

	service.regenerateRecentPeriods()

	assert.False(t, service.syncRunning)
	assert.False(t, service.lastSyncStartedAt.IsZero())
	assert.False(t, service.lastSyncCompletedAt.IsZero())
}

func TestBillingRegenerationService_regenerateRecentPeriods_ErrorContinues(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBilling := billingmocks.NewMockBillingService(ctrl)

	service := &BillingRegenerationService{
		config: BillingRegenerationConfig{
			PeriodLookBack: 2,
			SyncEnabled:    true,
		},
		billingService: mockBilling,
	}

	lastMonth := utils.MonthsAgoPeriod(time.Now(), 1)
	twoMonthsAgo := utils.MonthsAgoPeriod(time.Now(), 2)

	// O erro no primeiro período não impede o processamento do seguinte
	mockBilling.EXPECT().
		RegenerateMonth(lastMonth).
		Return(nil, assert.AnError)

	mockBilling.EXPECT().
		RegenerateMonth(twoMonthsAgo).
		Return(&domain.BulkRecalculationResult{Period: twoMonthsAgo}, nil)

	service.regenerateRecentPeriods()

	assert.False(t, service.syncRunning)
}

func TestBillingRegenerationService_SkipsWhenAlreadyRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBilling := billingmocks.NewMockBillingService(ctrl)

	service := &BillingRegenerationService{
		config: BillingRegenerationConfig{
			PeriodLookBack: 1,
			SyncEnabled:    true,
		},
		billingService: mockBilling,
		syncRunning:    true,
	}

	// Nenhuma chamada esperada: a execução é ignorada
	service.regenerateRecentPeriods()
}

func TestBillingRegenerationService_GetStatus(t *testing.T) {
	service := &BillingRegenerationService{
		config: BillingRegenerationConfig{
			CronSchedule:   "0 4 1 * *",
			PeriodLookBack: 1,
			SyncEnabled:    true,
		},
	}

	status := service.GetStatus()

	assert.Equal(t, false, status["sync_running"])
	assert.Equal(t, "0 4 1 * *", status["sync_cron"])
	assert.Equal(t, true, status["sync_enabled"])
}
