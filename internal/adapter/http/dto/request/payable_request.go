package request

import (
	"errors"
	"strings"
	"time"

	"mecanica_gestao/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var ErrInvalidDueDate = errors.New("due_date must be YYYY-MM-DD")

const dateLayout = "2006-01-02"

type PayableRequest struct {
	Supplier    string          `json:"supplier" binding:"required"`
	Description string          `json:"description" binding:"required"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	DueDate     string          `json:"due_date" binding:"required"`
}

func (r PayableRequest) ToEntity() (entities.Payable, error) {
	due, err := ParseDate(r.DueDate)
	if err != nil {
		return entities.Payable{}, err
	}
	return entities.Payable{
		Supplier:    strings.TrimSpace(r.Supplier),
		Description: strings.TrimSpace(r.Description),
		Category:    strings.TrimSpace(r.Category),
		Amount:      r.Amount,
		DueDate:     due,
	}, nil
}

// ParseDate reads a calendar date (YYYY-MM-DD) as UTC midnight.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, ErrInvalidDueDate
	}
	return t, nil
}
