package usecase

import (
	"context"
	"errors"
	"testing"

	"mecanica_gestao/internal/domain/entities"
	mock_interfaces "mecanica_gestao/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type customerMocks struct {
	repo     *mock_interfaces.MockICustomerRepository
	vehicles *mock_interfaces.MockIVehicleRepository
	audit    *mock_interfaces.MockIAuditLogger
}

func newCustomerUC(t *testing.T) (*CustomerUseCase, customerMocks) {
	ctrl := gomock.NewController(t)
	m := customerMocks{
		repo:     mock_interfaces.NewMockICustomerRepository(ctrl),
		vehicles: mock_interfaces.NewMockIVehicleRepository(ctrl),
		audit:    mock_interfaces.NewMockIAuditLogger(ctrl),
	}
	return NewCustomerUseCase(m.repo, m.vehicles, m.audit), m
}

func TestCustomerUseCase_Create(t *testing.T) {
	t.Run("blank name", func(t *testing.T) {
		uc, _ := newCustomerUC(t)
		if _, err := uc.Create(context.Background(), "actor", entities.Customer{Name: "   "}); !errors.Is(err, ErrInvalidCustomer) {
			t.Fatalf("expected ErrInvalidCustomer, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, m := newCustomerUC(t)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Customer) (entities.Customer, error) {
				if c.ID == "" || c.Name != "Maria Souza" || c.CreatedAt.IsZero() {
					t.Fatalf("unexpected customer: %+v", c)
				}
				return c, nil
			},
		)
		m.audit.EXPECT().Log("actor", "create_customer", gomock.Any())

		c, err := uc.Create(context.Background(), "actor", entities.Customer{Name: " Maria Souza "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.ID == "" {
			t.Fatalf("expected generated id")
		}
	})

	t.Run("repository error is not audited", func(t *testing.T) {
		uc, m := newCustomerUC(t)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Customer{}, errors.New("db down"))

		if _, err := uc.Create(context.Background(), "actor", entities.Customer{Name: "Ana"}); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestCustomerUseCase_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		uc, m := newCustomerUC(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Customer{}, nil)

		if err := uc.Delete(context.Background(), "actor", "c-1"); !errors.Is(err, ErrCustomerNotFound) {
			t.Fatalf("expected ErrCustomerNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, m := newCustomerUC(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Customer{ID: "c-1"}, nil)
		m.repo.EXPECT().Delete(gomock.Any(), "c-1").Return(nil)
		m.audit.EXPECT().Log("actor", "delete_customer", gomock.Any())

		if err := uc.Delete(context.Background(), "actor", "c-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestCustomerUseCase_AddVehicle(t *testing.T) {
	t.Run("missing model", func(t *testing.T) {
		uc, _ := newCustomerUC(t)
		_, err := uc.AddVehicle(context.Background(), "actor", entities.Vehicle{CustomerID: "c-1", Plate: "ABC1D23"})
		if !errors.Is(err, ErrInvalidVehicle) {
			t.Fatalf("expected ErrInvalidVehicle, got %v", err)
		}
	})

	t.Run("unknown customer", func(t *testing.T) {
		uc, m := newCustomerUC(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "c-9").Return(entities.Customer{}, nil)

		_, err := uc.AddVehicle(context.Background(), "actor", entities.Vehicle{CustomerID: "c-9", Plate: "ABC1D23", Model: "Gol"})
		if !errors.Is(err, ErrCustomerNotFound) {
			t.Fatalf("expected ErrCustomerNotFound, got %v", err)
		}
	})

	t.Run("plate is normalized", func(t *testing.T) {
		uc, m := newCustomerUC(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Customer{ID: "c-1"}, nil)
		m.vehicles.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, v entities.Vehicle) (entities.Vehicle, error) { return v, nil },
		)
		m.audit.EXPECT().Log("actor", "create_vehicle", gomock.Any())

		v, err := uc.AddVehicle(context.Background(), "actor", entities.Vehicle{CustomerID: "c-1", Plate: " abc-1d23 ", Model: "Gol"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v.Plate != "ABC1D23" {
			t.Fatalf("expected normalized plate, got %q", v.Plate)
		}
	})
}

func TestCustomerUseCase_UpdateVehicle(t *testing.T) {
	t.Run("keeps owner", func(t *testing.T) {
		uc, m := newCustomerUC(t)
		m.vehicles.EXPECT().GetByID(gomock.Any(), "v-1").Return(entities.Vehicle{ID: "v-1", CustomerID: "c-1"}, nil)
		m.vehicles.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, v entities.Vehicle) (entities.Vehicle, error) {
				if v.CustomerID != "c-1" {
					t.Fatalf("owner must not change, got %q", v.CustomerID)
				}
				return v, nil
			},
		)
		m.audit.EXPECT().Log("actor", "update_vehicle", gomock.Any())

		if _, err := uc.UpdateVehicle(context.Background(), "actor", entities.Vehicle{ID: "v-1", CustomerID: "c-2", Plate: "XYZ9A87", Model: "Uno"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, m := newCustomerUC(t)
		m.vehicles.EXPECT().GetByID(gomock.Any(), "v-9").Return(entities.Vehicle{}, nil)

		_, err := uc.UpdateVehicle(context.Background(), "actor", entities.Vehicle{ID: "v-9", Plate: "XYZ9A87", Model: "Uno"})
		if !errors.Is(err, ErrVehicleNotFound) {
			t.Fatalf("expected ErrVehicleNotFound, got %v", err)
		}
	})
}
