package billing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/panel-billing-api/internal/domain"
)

func decimalPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func event(action domain.EventAction, date string, day int) *domain.PanelEvent {
	return &domain.PanelEvent{
		ID:        "EV" + date,
		PanelID:   "PNL001",
		Period:    "04-2025",
		Action:    action,
		EventDate: date,
		Day:       day,
	}
}

func TestRunEngine_PeriodConstruction(t *testing.T) {
	standardRate := decimal.RequireFromString("113.10")

	tests := []struct {
		name            string
		initialStatus   domain.PanelStatus
		events          []*domain.PanelEvent
		expectedDays    int
		expectedStatus  domain.PanelStatus
		expectedPeriods []billablePeriod
	}{
		{
			name:            "Sem eventos e ativo fatura o mês comercial inteiro",
			initialStatus:   domain.PanelStatusActive,
			events:          nil,
			expectedDays:    30,
			expectedStatus:  domain.PanelStatusActive,
			expectedPeriods: []billablePeriod{{Start: 1, End: 30}},
		},
		{
			name:            "Sem eventos e removido não fatura nada",
			initialStatus:   domain.PanelStatusRemoved,
			events:          nil,
			expectedDays:    0,
			expectedStatus:  domain.PanelStatusRemoved,
			expectedPeriods: []billablePeriod{},
		},
		{
			name:          "Remoção no dia 12 fatura até o próprio dia 12",
			initialStatus: domain.PanelStatusActive,
			events: []*domain.PanelEvent{
				event(domain.EventRemoval, "2025-04-12", 12),
			},
			expectedDays:    12,
			expectedStatus:  domain.PanelStatusRemoved,
			expectedPeriods: []billablePeriod{{Start: 1, End: 12}},
		},
		{
			name:          "Remoção dia 9 e reinstalação dia 24 geram dois períodos",
			initialStatus: domain.PanelStatusActive,
			events: []*domain.PanelEvent{
				event(domain.EventRemoval, "2025-04-09", 9),
				event(domain.EventReinstallation, "2025-04-24", 24),
			},
			expectedDays:    16,
			expectedStatus:  domain.PanelStatusActive,
			expectedPeriods: []billablePeriod{{Start: 1, End: 9}, {Start: 24, End: 30}},
		},
		{
			name:          "Reativação e remoção no mesmo dia faturam um dia",
			initialStatus: domain.PanelStatusRemoved,
			events: []*domain.PanelEvent{
				event(domain.EventReactivation, "2025-04-10", 10),
				event(domain.EventRemoval, "2025-04-10", 10),
			},
			expectedDays:    1,
			expectedStatus:  domain.PanelStatusRemoved,
			expectedPeriods: []billablePeriod{{Start: 10, End: 10}},
		},
		{
			name:          "Entrada inicial no dia 13 ignora status herdado ativo",
			initialStatus: domain.PanelStatusActive,
			events: []*domain.PanelEvent{
				event(domain.EventInitialIntake, "2025-04-13", 13),
			},
			expectedDays:    18,
			expectedStatus:  domain.PanelStatusActive,
			expectedPeriods: []billablePeriod{{Start: 13, End: 30}},
		},
		{
			name:          "Ativação redundante não altera períodos",
			initialStatus: domain.PanelStatusActive,
			events: []*domain.PanelEvent{
				event(domain.EventReactivation, "2025-04-05", 5),
			},
			expectedDays:    30,
			expectedStatus:  domain.PanelStatusActive,
			expectedPeriods: []billablePeriod{{Start: 1, End: 30}},
		},
		{
			name:          "Desativação redundante não altera períodos",
			initialStatus: domain.PanelStatusRemoved,
			events: []*domain.PanelEvent{
				event(domain.EventRemoval, "2025-04-05", 5),
			},
			expectedDays:    0,
			expectedStatus:  domain.PanelStatusRemoved,
			expectedPeriods: []billablePeriod{},
		},
		{
			name:          "Aposentadoria fecha o mês com status RETIRED",
			initialStatus: domain.PanelStatusActive,
			events: []*domain.PanelEvent{
				event(domain.EventRetirement, "2025-04-20", 20),
			},
			expectedDays:    20,
			expectedStatus:  domain.PanelStatusRetired,
			expectedPeriods: []billablePeriod{{Start: 1, End: 20}},
		},
		{
			name:          "Ação desconhecida é ignorada",
			initialStatus: domain.PanelStatusActive,
			events: []*domain.PanelEvent{
				event(domain.EventAction("PAINT_JOB"), "2025-04-07", 7),
			},
			expectedDays:    30,
			expectedStatus:  domain.PanelStatusActive,
			expectedPeriods: []billablePeriod{{Start: 1, End: 30}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := runEngine(engineInput{
				PanelID:       "PNL001",
				Period:        "04-2025",
				InitialStatus: tt.initialStatus,
				InitialRate:   standardRate,
				Events:        prepareEvents(tt.events),
			})

			assert.Equal(t, tt.expectedDays, result.BillableDays)
			assert.Equal(t, tt.expectedStatus, result.ClosingStatus)
			assert.Equal(t, tt.expectedPeriods, result.Periods)
			assert.True(t, standardRate.Equal(result.AppliedRate))
		})
	}
}

func TestRunEngine_BillableDaysNeverExceedCommercialMonth(t *testing.T) {
	// Sequências longas de ativação/desativação alternadas cobrindo o mês todo
	events := []*domain.PanelEvent{
		event(domain.EventRemoval, "2025-04-02", 2),
		event(domain.EventReactivation, "2025-04-03", 3),
		event(domain.EventRemoval, "2025-04-15", 15),
		event(domain.EventReactivation, "2025-04-16", 16),
	}

	result := runEngine(engineInput{
		PanelID:       "PNL001",
		Period:        "04-2025",
		InitialStatus: domain.PanelStatusActive,
		InitialRate:   decimal.RequireFromString("100.00"),
		Events:        prepareEvents(events),
	})

	assert.LessOrEqual(t, result.BillableDays, 30)
	assert.GreaterOrEqual(t, result.BillableDays, 0)
}

func TestRunEngine_RateChangeAppliesToWholeMonth(t *testing.T) {
	events := []*domain.PanelEvent{
		event(domain.EventRateChange, "2025-04-18", 18),
	}
	events[0].Rate = decimalPtr("95.00")

	result := runEngine(engineInput{
		PanelID:       "PNL001",
		Period:        "04-2025",
		InitialStatus: domain.PanelStatusActive,
		InitialRate:   decimal.RequireFromString("113.10"),
		Events:        prepareEvents(events),
	})

	// A mudança de tarifa não fragmenta o mês: a última tarifa vale para todos
	// os dias faturáveis
	assert.Equal(t, 30, result.BillableDays)
	assert.True(t, decimal.RequireFromString("95.00").Equal(result.AppliedRate))
}

func TestRunEngine_AdjustmentsAccumulateIndependently(t *testing.T) {
	adjustment := event(domain.EventManualAdjustment, "2025-04-05", 5)
	adjustment.Amount = decimalPtr("-15.50")

	intervention := event(domain.EventIntervention, "2025-04-20", 20)
	intervention.Amount = decimalPtr("40.00")

	result := runEngine(engineInput{
		PanelID:       "PNL001",
		Period:        "04-2025",
		InitialStatus: domain.PanelStatusRemoved,
		InitialRate:   decimal.RequireFromString("113.10"),
		Events:        prepareEvents([]*domain.PanelEvent{adjustment, intervention}),
	})

	// Painel inativo o mês inteiro: zero dias, mas os ajustes entram mesmo assim
	assert.Equal(t, 0, result.BillableDays)
	assert.Equal(t, int64(2450), result.AdjustmentCents)
}

func TestPrepareEvents(t *testing.T) {
	base := time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)

	deleted := event(domain.EventRemoval, "2025-04-05", 5)
	deleted.Deleted = true
	deleted.CreatedAt = base

	later := event(domain.EventReactivation, "2025-04-20", 20)
	later.CreatedAt = base.Add(time.Minute)

	earlier := event(domain.EventRemoval, "2025-04-10", 10)
	earlier.CreatedAt = base.Add(2 * time.Minute)

	unparseable := event(domain.EventManualAdjustment, "data-invalida", 0)
	unparseable.CreatedAt = base.Add(3 * time.Minute)

	prepared := prepareEvents([]*domain.PanelEvent{deleted, later, earlier, unparseable})

	// Deletado some, data inválida ordena primeiro, o resto fica cronológico
	assert.Len(t, prepared, 3)
	assert.Equal(t, domain.EventManualAdjustment, prepared[0].Action)
	assert.Equal(t, domain.EventRemoval, prepared[1].Action)
	assert.Equal(t, domain.EventReactivation, prepared[2].Action)
}

func TestPrepareEvents_TiesKeepCreationOrder(t *testing.T) {
	base := time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)

	first := event(domain.EventReactivation, "2025-04-10", 10)
	first.ID = "EV1"
	first.CreatedAt = base

	second := event(domain.EventRemoval, "2025-04-10", 10)
	second.ID = "EV2"
	second.CreatedAt = base.Add(time.Second)

	prepared := prepareEvents([]*domain.PanelEvent{second, first})

	assert.Equal(t, "EV1", prepared[0].ID)
	assert.Equal(t, "EV2", prepared[1].ID)
}

func TestEventDay(t *testing.T) {
	withDay := event(domain.EventRemoval, "2025-04-12", 12)
	assert.Equal(t, 12, eventDay(withDay))

	fromDate := event(domain.EventRemoval, "2025-04-09", 0)
	assert.Equal(t, 9, eventDay(fromDate))

	fallback := event(domain.EventRemoval, "sem-data", 0)
	assert.Equal(t, 1, eventDay(fallback))
}
