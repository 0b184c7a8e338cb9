package reporting

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

const (
	summarySheet = "resumo"
	recordsSheet = "registros"
)

// ExportXLSX gera a planilha do relatório mensal: uma aba de resumo e uma aba
// com um registro de faturamento por linha
func (s *Service) ExportXLSX(period string) ([]byte, error) {
	report, err := s.MonthlyReport(period)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	f.SetSheetName("Sheet1", summarySheet)
	if _, err := f.NewSheet(recordsSheet); err != nil {
		return nil, errors.Wrap(err, "erro ao criar aba de registros")
	}

	_ = f.SetCellValue(summarySheet, "A1", "Relatório mensal de faturamento")
	_ = f.SetCellValue(summarySheet, "A3", "Período")
	_ = f.SetCellValue(summarySheet, "B3", report.Period)

	if report.Summary != nil {
		_ = f.SetCellValue(summarySheet, "A4", "Valor total")
		_ = f.SetCellValue(summarySheet, "B4", report.Summary.TotalAmount.String())
		_ = f.SetCellValue(summarySheet, "A5", "Painéis com mês completo")
		_ = f.SetCellValue(summarySheet, "B5", report.Summary.FullyBilledCount)
		_ = f.SetCellValue(summarySheet, "A6", "Painéis com mês parcial")
		_ = f.SetCellValue(summarySheet, "B6", report.Summary.PartialCount)
		_ = f.SetCellValue(summarySheet, "A7", "Painéis sem valor")
		_ = f.SetCellValue(summarySheet, "B7", report.Summary.ZeroAmountCount)
		_ = f.SetCellValue(summarySheet, "A8", "Mês bloqueado")
		_ = f.SetCellValue(summarySheet, "B8", report.Summary.IsLocked)
	}

	headers := []string{"Código", "Município", "Dias faturáveis", "Valor", "Status de fechamento", "Tarifa aplicada"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(recordsSheet, cell, header)
	}

	for i, record := range report.Records {
		row := i + 2
		_ = f.SetCellValue(recordsSheet, fmt.Sprintf("A%d", row), record.PanelCode)
		_ = f.SetCellValue(recordsSheet, fmt.Sprintf("B%d", row), record.Municipality)
		_ = f.SetCellValue(recordsSheet, fmt.Sprintf("C%d", row), record.BillableDays)
		_ = f.SetCellValue(recordsSheet, fmt.Sprintf("D%d", row), record.Amount.String())
		_ = f.SetCellValue(recordsSheet, fmt.Sprintf("E%d", row), string(record.ClosingStatus))
		_ = f.SetCellValue(recordsSheet, fmt.Sprintf("F%d", row), record.AppliedRate.String())
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, errors.Wrap(err, "erro ao serializar planilha")
	}

	return buf.Bytes(), nil
}
