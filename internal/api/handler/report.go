package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/vfg2006/panel-billing-api/internal/usecases/reporting"
	"github.com/vfg2006/panel-billing-api/pkg/log"
)

// periodFromQuery monta o período mm-yyyy a partir dos parâmetros month e year
func periodFromQuery(r *http.Request) (string, error) {
	month := r.URL.Query().Get("month")
	year := r.URL.Query().Get("year")

	if month == "" || year == "" {
		return "", fmt.Errorf("é necessário informar mês e ano nos parâmetros")
	}

	// Validar mês (entre 01 e 12)
	if len(month) != 2 || month < "01" || month > "12" {
		return "", fmt.Errorf("mês inválido. Use formato de dois dígitos (01-12)")
	}

	// Validar ano (4 dígitos)
	if len(year) != 4 {
		return "", fmt.Errorf("ano inválido. Use formato de quatro dígitos (ex: 2025)")
	}

	return fmt.Sprintf("%s-%s", month, year), nil
}

// GetMonthlyBillingReport retorna o resumo e os registros de faturamento de um período
func GetMonthlyBillingReport(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		period, err := periodFromQuery(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		logger.WithField("period", period).Info("billing-report: buscando relatório mensal")

		report, err := service.MonthlyReport(period)
		if err != nil {
			logger.WithError(err).WithField("period", period).Error("billing-report: erro ao montar relatório")
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		logger.WithFields(log.Fields{
			"period":           period,
			"records_returned": len(report.Records),
		}).Info("billing-report: relatório gerado com sucesso")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithError(err).Error("billing-report: erro ao codificar resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// ExportMonthlyBillingReport retorna o relatório mensal como planilha XLSX
func ExportMonthlyBillingReport(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		period, err := periodFromQuery(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		logger.WithField("period", period).Info("billing-export: gerando planilha do período")

		content, err := service.ExportXLSX(period)
		if err != nil {
			logger.WithError(err).WithField("period", period).Error("billing-export: erro ao gerar planilha")
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		filename := fmt.Sprintf("faturamento-%s.xlsx", period)
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

		if _, err := w.Write(content); err != nil {
			logger.WithError(err).Error("billing-export: erro ao enviar planilha")
		}
	})
}

// GetAvailablePeriods retorna os períodos com faturamento registrado
func GetAvailablePeriods(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("billing-periods: buscando períodos disponíveis")

		periods, err := service.GetAvailablePeriods()
		if err != nil {
			logger.WithError(err).Error("billing-periods: erro ao buscar períodos disponíveis")
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		logger.WithField("total_periods", len(periods)).Info("billing-periods: períodos recuperados com sucesso")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]any{"periods": periods}); err != nil {
			logger.WithError(err).Error("billing-periods: erro ao codificar resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
