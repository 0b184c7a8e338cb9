package billing

import "errors"

// Erros específicos para o contexto de faturamento
var (
	ErrPanelNotFound = errors.New("painel não encontrado")
	ErrInvalidPeriod = errors.New("período inválido")
)
