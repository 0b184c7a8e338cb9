package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/panel-billing-api/internal/usecases/billing"
	"github.com/vfg2006/panel-billing-api/internal/usecases/rating"
	"github.com/vfg2006/panel-billing-api/pkg/apiErrors"
	"github.com/vfg2006/panel-billing-api/pkg/log"
)

// RecalculatePanelBilling recalcula o registro de faturamento de um painel em
// um período específico
func RecalculatePanelBilling(service billing.BillingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		params := httprouter.ParamsFromContext(r.Context())
		panelID := params.ByName("id")
		period := params.ByName("period")

		if panelID == "" || period == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "É necessário informar painel e período", nil)
			return
		}

		logger.WithFields(log.Fields{
			"panel_id": panelID,
			"period":   period,
		}).Info("billing: recálculo mensal solicitado")

		record, err := service.RecalculateMonth(panelID, period)
		if err != nil {
			logger.WithError(err).WithFields(log.Fields{
				"panel_id": panelID,
				"period":   period,
			}).Error("billing: erro no recálculo mensal")

			writeBillingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(record); err != nil {
			logger.WithError(err).Error("billing: erro ao codificar resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// RegenerateMonthBilling recalcula todos os painéis de um período em lote
func RegenerateMonthBilling(service billing.BillingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		period := httprouter.ParamsFromContext(r.Context()).ByName("period")
		if period == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "É necessário informar o período", nil)
			return
		}

		logger.WithField("period", period).Info("billing: regeneração em lote solicitada")

		result, err := service.RegenerateMonth(period)
		if err != nil {
			logger.WithError(err).WithField("period", period).Error("billing: erro na regeneração em lote")
			writeBillingError(w, err)
			return
		}

		logger.WithFields(log.Fields{
			"period":    period,
			"succeeded": len(result.Succeeded),
			"failed":    len(result.Failed),
		}).Info("billing: regeneração em lote concluída")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logger.WithError(err).Error("billing: erro ao codificar resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// writeBillingError traduz os erros do caso de uso para os códigos da API
func writeBillingError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, billing.ErrInvalidPeriod):
		apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, err.Error(), nil)
	case errors.Is(err, billing.ErrPanelNotFound):
		apiErrors.WriteError(w, apiErrors.ErrPanelNotFound, err.Error(), nil)
	case errors.Is(err, rating.ErrRateNotConfigured):
		apiErrors.WriteError(w, apiErrors.ErrRateNotConfigured, err.Error(), nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
	}
}
