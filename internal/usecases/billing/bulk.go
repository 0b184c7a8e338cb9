package billing

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/panel-billing-api/internal/domain"
	"github.com/vfg2006/panel-billing-api/pkg/utils"
)

// RegenerateMonth recalcula o faturamento de todos os painéis para um período,
// com concorrência limitada. Falhas individuais não abortam o lote: são
// coletadas, recebem uma única passada de retry e voltam ao chamador em uma
// lista estruturada, para que sucesso parcial seja distinguível de falha total.
func (s *Service) RegenerateMonth(period string) (*domain.BulkRecalculationResult, error) {
	if err := utils.ValidatePeriod(period); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPeriod, err)
	}

	panels, err := s.panelRepo.ListPanels()
	if err != nil {
		return nil, fmt.Errorf("erro ao listar painéis: %w", err)
	}

	result := &domain.BulkRecalculationResult{
		Period:    period,
		Succeeded: make([]string, 0, len(panels)),
		Failed:    make([]domain.PanelRecalculationFailure, 0),
	}

	if len(panels) == 0 {
		logrus.WithField("period", period).Info("Nenhum painel encontrado para regeneração")
		return result, nil
	}

	maxJobs := s.cfg.BillingRegeneration.MaxConcurrentJobs
	if maxJobs < 1 {
		maxJobs = 1
	}

	// Semáforo limita a concorrência para não sobrecarregar o banco
	semaphore := make(chan struct{}, maxJobs)
	var wg sync.WaitGroup
	var mu sync.Mutex

	failedOnce := make([]string, 0)

	for _, panel := range panels {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(p *domain.Panel) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			if _, err := s.RecalculateMonth(p.ID, period); err != nil {
				logrus.WithError(err).WithFields(logrus.Fields{
					"panel_id": p.ID,
					"period":   period,
				}).Error("Erro ao recalcular painel no lote")

				mu.Lock()
				failedOnce = append(failedOnce, p.ID)
				mu.Unlock()
				return
			}

			mu.Lock()
			result.Succeeded = append(result.Succeeded, p.ID)
			mu.Unlock()
		}(panel)
	}

	wg.Wait()

	// Uma única passada sequencial de retry para as falhas do lote
	for _, panelID := range failedOnce {
		if _, err := s.RecalculateMonth(panelID, period); err != nil {
			result.Failed = append(result.Failed, domain.PanelRecalculationFailure{
				PanelID: panelID,
				Reason:  err.Error(),
			})
			continue
		}
		result.Succeeded = append(result.Succeeded, panelID)
	}

	logrus.WithFields(logrus.Fields{
		"period":    period,
		"panels":    len(panels),
		"succeeded": len(result.Succeeded),
		"failed":    len(result.Failed),
	}).Info("Regeneração em lote concluída")

	return result, nil
}
