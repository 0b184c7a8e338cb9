package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/panel-billing-api/internal/usecases/paneling"
	"github.com/vfg2006/panel-billing-api/pkg/apiErrors"
	"github.com/vfg2006/panel-billing-api/pkg/log"
)

// ListPanels retorna todos os painéis cadastrados
func ListPanels(service paneling.PanelService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		panels, err := service.ListPanels()
		if err != nil {
			logger.WithError(err).Error("panels: erro ao listar painéis")
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(panels); err != nil {
			logger.WithError(err).Error("panels: erro ao codificar resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// GetPanel retorna um painel pelo identificador
func GetPanel(service paneling.PanelService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		panelID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if panelID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "É necessário informar o painel", nil)
			return
		}

		panel, err := service.GetPanel(panelID)
		if err != nil {
			logger.WithError(err).WithField("panel_id", panelID).Error("panels: erro ao buscar painel")
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		if panel == nil {
			apiErrors.WriteError(w, apiErrors.ErrPanelNotFound, "Painel não encontrado", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(panel); err != nil {
			logger.WithError(err).Error("panels: erro ao codificar resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
