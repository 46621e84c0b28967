package export

import (
	"fmt"

	"mecanica_gestao/internal/domain/entities"
	"mecanica_gestao/internal/domain/format"
	"mecanica_gestao/internal/usecase/interfaces"

	"github.com/xuri/excelize/v2"
)

const receivablesSheet = "Contas a Receber"

var receivableHeaders = []string{"Descrição", "Cliente", "Ordem de Serviço", "Vencimento", "Status", "Valor", "Valor Líquido", "Pago em"}

// ReceivablesXLSX writes one row per receivable. Money columns are numeric.
type ReceivablesXLSX struct{}

var _ interfaces.IReceivableSpreadsheet = (*ReceivablesXLSX)(nil)

func NewReceivablesXLSX() *ReceivablesXLSX { return &ReceivablesXLSX{} }

func (ReceivablesXLSX) Render(receivables []entities.Receivable) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", receivablesSheet); err != nil {
		return nil, err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}

	for i, h := range receivableHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(receivablesSheet, cell, h); err != nil {
			return nil, err
		}
	}
	last, _ := excelize.CoordinatesToCellName(len(receivableHeaders), 1)
	if err := f.SetCellStyle(receivablesSheet, "A1", last, bold); err != nil {
		return nil, err
	}

	for i, r := range receivables {
		rowNo := i + 2
		paidAt := ""
		if r.PaidAt != nil {
			paidAt = format.FormatDate(*r.PaidAt)
		}
		values := []any{
			r.Description,
			r.CustomerID,
			r.ServiceOrderID,
			format.FormatDate(r.DueDate),
			string(r.Status),
			r.Amount.InexactFloat64(),
			r.NetAmount.InexactFloat64(),
			paidAt,
		}
		for j, v := range values {
			if err := f.SetCellValue(receivablesSheet, fmt.Sprintf("%c%d", 'A'+j, rowNo), v); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: write receivables: %w", err)
	}
	return buf.Bytes(), nil
}
