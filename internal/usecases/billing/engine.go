package billing

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/panel-billing-api/internal/domain"
	"github.com/vfg2006/panel-billing-api/pkg/utils"
)

// billablePeriod é um intervalo inclusivo de dias do mês em que o painel
// esteve ativo para fins de faturamento
type billablePeriod struct {
	Start int
	End   int
}

func (p billablePeriod) days() int {
	return p.End - p.Start + 1
}

type engineInput struct {
	PanelID       string
	Period        string
	InitialStatus domain.PanelStatus
	InitialRate   decimal.Decimal
	Events        []*domain.PanelEvent // não deletados, em ordem cronológica
}

type engineResult struct {
	Periods         []billablePeriod
	BillableDays    int
	ClosingStatus   domain.PanelStatus
	AppliedRate     decimal.Decimal
	AdjustmentCents int64
}

// prepareEvents descarta eventos soft-deletados e ordena os demais por data
// efetiva crescente. Entradas com data não interpretável ordenam primeiro;
// empates mantêm a ordem de criação.
func prepareEvents(events []*domain.PanelEvent) []*domain.PanelEvent {
	kept := make([]*domain.PanelEvent, 0, len(events))
	for _, ev := range events {
		if !ev.Deleted {
			kept = append(kept, ev)
		}
	}

	sort.SliceStable(kept, func(i, j int) bool {
		ti, okI := eventTime(kept[i])
		tj, okJ := eventTime(kept[j])

		if okI != okJ {
			return !okI
		}
		if !ti.Equal(tj) {
			return ti.Before(tj)
		}
		return kept[i].CreatedAt.Before(kept[j].CreatedAt)
	})

	return kept
}

func eventTime(ev *domain.PanelEvent) (time.Time, bool) {
	t, err := time.Parse(time.DateOnly, ev.EventDate)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// eventDay resolve o dia do mês de um evento, caindo para a data local quando
// o campo dedicado está ausente
func eventDay(ev *domain.PanelEvent) int {
	if ev.Day >= 1 {
		return ev.Day
	}

	if day, err := utils.DayFromDate(ev.EventDate); err == nil {
		return day
	}

	return 1
}

// runEngine é a máquina de estados de construção de períodos (Passos 3 e 4 do
// recálculo). É pura: recebe o estado herdado e os eventos ordenados do mês e
// devolve períodos faturáveis, dias, status de fechamento, tarifa aplicada e
// ajustes acumulados, sem tocar em I/O.
func runEngine(in engineInput) engineResult {
	status := in.InitialStatus
	rate := in.InitialRate
	periods := make([]billablePeriod, 0, 2)
	var adjustmentCents int64

	// Um INITIAL_INTAKE no mês significa que o painel não existia antes dele:
	// não pode ter entrado no mês faturando, qualquer que seja o status herdado.
	for _, ev := range in.Events {
		if ev.Action == domain.EventInitialIntake {
			status = domain.PanelStatusRetired
			break
		}
	}

	if len(in.Events) == 0 {
		if status.IsBillable() {
			periods = append(periods, billablePeriod{Start: 1, End: utils.BillableDaysPerMonth})
		}
		return newEngineResult(periods, status, rate, adjustmentCents)
	}

	openStart := 1

	for _, ev := range in.Events {
		day := eventDay(ev)

		switch {
		case ev.Action.IsActivation():
			if !status.IsBillable() {
				status = domain.PanelStatusActive
				openStart = day
			}
			// Já ativo: evento redundante, sem efeito sobre status ou períodos

		case ev.Action.IsDeactivation():
			if status.IsBillable() {
				// O próprio dia da desativação fatura: o painel é considerado
				// ativo até o fim daquele dia civil. O primeiro dia não
				// faturável é o seguinte, implícito por não abrirmos novo
				// período até a próxima ativação.
				if openStart <= day {
					periods = append(periods, billablePeriod{Start: openStart, End: day})
				}
				status = ev.Action.DeactivationStatus()
			} else {
				logrus.WithFields(logrus.Fields{
					"panel_id": in.PanelID,
					"period":   in.Period,
					"event_id": ev.ID,
					"action":   ev.Action,
				}).Debug("Evento de desativação redundante: status inalterado")
			}

		case ev.Action == domain.EventRateChange:
			if ev.Rate != nil {
				rate = *ev.Rate
			}

		case ev.Action == domain.EventManualAdjustment:
			if ev.Amount != nil {
				adjustmentCents += utils.CentsFromDecimal(*ev.Amount)
			}

		case ev.Action == domain.EventIntervention:
			// Intervenção em equipamento inativo é permitida (ex.: custos de
			// desmobilização), mas registrada como anomalia.
			if !status.IsBillable() {
				logrus.WithFields(logrus.Fields{
					"panel_id": in.PanelID,
					"period":   in.Period,
					"event_id": ev.ID,
					"status":   status,
				}).Warn("Intervenção em painel inativo: valor aplicado mesmo assim")
			}
			if ev.Amount != nil {
				adjustmentCents += utils.CentsFromDecimal(*ev.Amount)
			}

		default:
			logrus.WithFields(logrus.Fields{
				"panel_id": in.PanelID,
				"period":   in.Period,
				"event_id": ev.ID,
				"action":   ev.Action,
			}).Warn("Ação de evento desconhecida ignorada")
		}
	}

	// Corrida ativa restante estende até o fim do mês comercial
	if status.IsBillable() && openStart <= utils.BillableDaysPerMonth {
		periods = append(periods, billablePeriod{Start: openStart, End: utils.BillableDaysPerMonth})
	}

	return newEngineResult(periods, status, rate, adjustmentCents)
}

func newEngineResult(
	periods []billablePeriod,
	status domain.PanelStatus,
	rate decimal.Decimal,
	adjustmentCents int64,
) engineResult {
	days := 0
	for _, p := range periods {
		days += p.days()
	}

	// Clamp defensivo: entrada bem formada nunca passa de 30
	if days > utils.BillableDaysPerMonth {
		days = utils.BillableDaysPerMonth
	}
	if days < 0 {
		days = 0
	}

	return engineResult{
		Periods:         periods,
		BillableDays:    days,
		ClosingStatus:   status,
		AppliedRate:     rate,
		AdjustmentCents: adjustmentCents,
	}
}
