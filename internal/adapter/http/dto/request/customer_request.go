package request

import (
	"strings"

	"mecanica_gestao/internal/domain/entities"
)

type CustomerRequest struct {
	Name     string `json:"name" binding:"required"`
	Document string `json:"document"`
	Email    string `json:"email" binding:"omitempty,email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

func (r CustomerRequest) ToEntity(id string) entities.Customer {
	return entities.Customer{
		ID:       id,
		Name:     strings.TrimSpace(r.Name),
		Document: strings.TrimSpace(r.Document),
		Email:    strings.ToLower(strings.TrimSpace(r.Email)),
		Phone:    strings.TrimSpace(r.Phone),
		Address:  strings.TrimSpace(r.Address),
	}
}

type VehicleRequest struct {
	Plate   string `json:"plate" binding:"required"`
	Brand   string `json:"brand" binding:"required"`
	Model   string `json:"model" binding:"required"`
	Year    int    `json:"year" binding:"omitempty,min=1900,max=2100"`
	Color   string `json:"color"`
	Mileage int    `json:"mileage" binding:"omitempty,min=0"`
}

func (r VehicleRequest) ToEntity(id, customerID string) entities.Vehicle {
	return entities.Vehicle{
		ID:         id,
		CustomerID: customerID,
		Plate:      r.Plate,
		Brand:      strings.TrimSpace(r.Brand),
		Model:      strings.TrimSpace(r.Model),
		Year:       r.Year,
		Color:      strings.TrimSpace(r.Color),
		Mileage:    r.Mileage,
	}
}
