package paneling

import (
	"github.com/vfg2006/panel-billing-api/infrastructure/repository"
	"github.com/vfg2006/panel-billing-api/internal/domain"
)

type PanelService interface {
	ListPanels() ([]*domain.Panel, error)
	GetPanel(id string) (*domain.Panel, error)
}

type Service struct {
	PanelRepository repository.PanelRepository
}

func NewService(panelRepository repository.PanelRepository) PanelService {
	return &Service{
		PanelRepository: panelRepository,
	}
}

func (s *Service) ListPanels() ([]*domain.Panel, error) {
	panels, err := s.PanelRepository.ListPanels()
	if err != nil {
		return nil, err
	}
	return panels, nil
}

func (s *Service) GetPanel(id string) (*domain.Panel, error) {
	panel, err := s.PanelRepository.GetByID(id)
	if err != nil {
		return nil, err
	}
	return panel, nil
}
