package export

import (
	"bytes"
	"testing"
	"time"

	"mecanica_gestao/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestServiceOrderPDF_Render(t *testing.T) {
	o := entities.ServiceOrder{
		ID:          "os-1",
		Number:      12,
		Status:      entities.ServiceOrderStatusCanceled,
		TotalAmount: decimal.RequireFromString("350.50"),
		CreatedAt:   time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		Receivables: []entities.Receivable{{
			Description: "OS #12",
			Amount:      decimal.RequireFromString("350.50"),
			Status:      entities.ReceivableStatusPending,
			DueDate:     time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		}},
		CancelReason: "cliente desistiu",
	}

	b, err := NewServiceOrderPDF("Mecânica Gestão").Render(o, entities.Customer{Name: "Maria"})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF")), "expected a PDF document")
}

func TestReceivablesXLSX_Render(t *testing.T) {
	paid := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)
	list := []entities.Receivable{
		{Description: "OS #12", CustomerID: "c-1", ServiceOrderID: "os-1", Amount: decimal.RequireFromString("100.25"),
			NetAmount: decimal.RequireFromString("97.00"), Status: entities.ReceivableStatusPaid,
			DueDate: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), PaidAt: &paid},
		{Description: "Avulso", CustomerID: "c-2", Amount: decimal.NewFromInt(50), Status: entities.ReceivableStatusOverdue,
			DueDate: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)},
	}

	b, err := NewReceivablesXLSX().Render(list)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(receivablesSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, receivableHeaders, rows[0])
	assert.Equal(t, "OS #12", rows[1][0])
	assert.Equal(t, "Pago", rows[1][4])
	assert.Equal(t, "100.25", rows[1][5])
	assert.Equal(t, "Atrasado", rows[2][4])
}
