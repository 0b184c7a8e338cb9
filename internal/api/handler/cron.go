package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/panel-billing-api/internal/scheduler"
	"github.com/vfg2006/panel-billing-api/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeBillingRegeneration = "billing-regeneration"
	CronJobTypeSummaryRepair       = "summary-repair"
	CronJobTypeAll                 = "all"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	BillingRegenerationService *scheduler.BillingRegenerationService
	SummaryRepairService       *scheduler.SummaryRepairService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		// Obter o tipo de cron job da URL
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeBillingRegeneration:
			if services.BillingRegenerationService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de regeneração de faturamento não disponível", nil)
				return
			}
			services.BillingRegenerationService.TriggerManualSync()

		case CronJobTypeSummaryRepair:
			if services.SummaryRepairService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de reparo de resumos não disponível", nil)
				return
			}
			services.SummaryRepairService.TriggerManualSync()

		case CronJobTypeAll:
			if services.BillingRegenerationService != nil {
				services.BillingRegenerationService.TriggerManualSync()
			}
			if services.SummaryRepairService != nil {
				services.SummaryRepairService.TriggerManualSync()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: billing-regeneration, summary-repair, all", nil)
			return
		}

		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{
			"billing-regeneration": services.BillingRegenerationService.GetStatus(),
			"summary-repair":       services.SummaryRepairService.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	}
}
