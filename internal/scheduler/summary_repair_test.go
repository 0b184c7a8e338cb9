package scheduler

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/panel-billing-api/internal/domain"
	summarizingmocks "github.com/vfg2006/panel-billing-api/internal/usecases/summarizing/mocks"
	"github.com/vfg2006/panel-billing-api/pkg/utils"
	"go.uber.org/mock/gomock"
)

func TestSummaryRepairService_repairRecentSummaries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSummarizer := summarizingmocks.NewMockSummarizer(ctrl)

	service := &SummaryRepairService{
		config: SummaryRepairConfig{
			PeriodLookBack: 1,
			SyncEnabled:    true,
		},
		summarizer: mockSummarizer,
	}

	currentMonth := utils.MonthsAgoPeriod(time.Now(), 0)
	lastMonth := utils.MonthsAgoPeriod(time.Now(), 1)

	// O mês corrente também é reparado
	mockSummarizer.EXPECT().
		RecomputeSummary(currentMonth).
		Return(&domain.MonthlySummary{Period: currentMonth}, nil)

	mockSummarizer.EXPECT().
		RecomputeSummary(lastMonth).
		Return(&domain.MonthlySummary{Period: lastMonth}, nil)

	service.repairRecentSummaries()

	assert.False(t, service.syncRunning)
	assert.False(t, service.lastSyncCompletedAt.IsZero())
}

func TestSummaryRepairService_ErrorDoesNotAbortRemainingPeriods(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSummarizer := summarizingmocks.NewMockSummarizer(ctrl)

	service := &SummaryRepairService{
		config: SummaryRepairConfig{
			PeriodLookBack: 1,
			SyncEnabled:    true,
		},
		summarizer: mockSummarizer,
	}

	currentMonth := utils.MonthsAgoPeriod(time.Now(), 0)
	lastMonth := utils.MonthsAgoPeriod(time.Now(), 1)

	mockSummarizer.EXPECT().
		RecomputeSummary(currentMonth).
		Return(nil, assert.AnError)

	mockSummarizer.EXPECT().
		RecomputeSummary(lastMonth).
		Return(&domain.MonthlySummary{Period: lastMonth}, nil)

	service.repairRecentSummaries()

	assert.False(t, service.syncRunning)
}

func TestSummaryRepairService_GetStatusDuringRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSummarizer := summarizingmocks.NewMockSummarizer(ctrl)

	service := &SummaryRepairService{
		config: SummaryRepairConfig{
			PeriodLookBack: 3,
			SyncEnabled:    true,
		},
		summarizer: mockSummarizer,
	}

	mockSummarizer.EXPECT().
		RecomputeSummary(gomock.Any()).
		Return(&domain.MonthlySummary{}, nil).
		AnyTimes()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		service.repairRecentSummaries()
	}()

	// Consulta de status concorrente com a execução do reparo
	for i := 0; i < 100; i++ {
		service.GetStatus()
	}

	wg.Wait()

	status := service.GetStatus()
	assert.Equal(t, false, status["sync_running"])
	assert.False(t, service.lastSyncCompletedAt.IsZero())
}

func TestSummaryRepairService_SkipsWhenAlreadyRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSummarizer := summarizingmocks.NewMockSummarizer(ctrl)

	service := &SummaryRepairService{
		config: SummaryRepairConfig{
			PeriodLookBack: 1,
			SyncEnabled:    true,
		},
		summarizer:  mockSummarizer,
		syncRunning: true,
	}

	// Nenhuma chamada esperada
	service.repairRecentSummaries()
}
