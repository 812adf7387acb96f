package usecase

import (
	"context"
	"errors"
	"testing"

	"furniture_warehouse/internal/domain/entities"
	"furniture_warehouse/internal/usecase/interfaces"
	mock_interfaces "furniture_warehouse/internal/usecase/interfaces/mocks"
	"furniture_warehouse/pkg"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func intPtr(v int) *int { return &v }

func uintPtr(v uint) *uint { return &v }

func TestFurnitureUseCase_Create(t *testing.T) {
	validation := []struct {
		name string
		in   FurnitureInput
		want error
	}{
		{name: "missing name", in: FurnitureInput{Type: "chair", Price: decPtr("10")}, want: ErrFurnitureFieldsRequired},
		{name: "missing type", in: FurnitureInput{Name: "Chair", Price: decPtr("10")}, want: ErrFurnitureFieldsRequired},
		{name: "missing price", in: FurnitureInput{Name: "Chair", Type: "chair"}, want: ErrFurnitureFieldsRequired},
		{name: "negative price", in: FurnitureInput{Name: "Chair", Type: "chair", Price: decPtr("-1")}, want: ErrFurnitureNegativePrice},
		{name: "negative quantity", in: FurnitureInput{Name: "Chair", Type: "chair", Price: decPtr("1"), Quantity: intPtr(-2)}, want: ErrFurnitureNegativeQuantity},
	}
	for _, tc := range validation {
		t.Run(tc.name, func(t *testing.T) {
			uc := NewFurnitureUseCase(nil, nil)
			_, err := uc.Create(context.Background(), tc.in)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	t.Run("defaults quantity and rounds price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIFurnitureRepository(ctrl)
		uc := NewFurnitureUseCase(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Furniture{})).DoAndReturn(
			func(_ context.Context, f entities.Furniture) (entities.Furniture, error) {
				if f.Quantity != 0 || f.SupplierID != nil {
					t.Fatalf("unexpected furniture: %+v", f)
				}
				if !f.Price.Equal(decimal.RequireFromString("199.99")) {
					t.Fatalf("expected rounded price, got %s", f.Price)
				}
				f.ID = 4
				return f, nil
			},
		)

		res, err := uc.Create(context.Background(), FurnitureInput{Name: "Desk", Type: "table", Price: decPtr("199.989"), SupplierID: uintPtr(0)})
		if err != nil || res.ID != 4 {
			t.Fatalf("unexpected result %+v err=%v", res, err)
		}
	})

	t.Run("zero price is accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIFurnitureRepository(ctrl)
		uc := NewFurnitureUseCase(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Furniture{ID: 1}, nil)

		if _, err := uc.Create(context.Background(), FurnitureInput{Name: "Sample", Type: "chair", Price: decPtr("0")}); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	})

	t.Run("unknown supplier", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIFurnitureRepository(ctrl)
		uc := NewFurnitureUseCase(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Furniture{}, interfaces.ErrMissingSupplier)

		_, err := uc.Create(context.Background(), FurnitureInput{Name: "Desk", Type: "table", Price: decPtr("1"), SupplierID: uintPtr(42)})
		if !errors.Is(err, ErrFurnitureSupplierMissing) {
			t.Fatalf("expected ErrFurnitureSupplierMissing, got %v", err)
		}
	})

	t.Run("empty read back is an internal error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIFurnitureRepository(ctrl)
		uc := NewFurnitureUseCase(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Furniture{}, nil)

		_, err := uc.Create(context.Background(), FurnitureInput{Name: "Desk", Type: "table", Price: decPtr("1")})
		if !errors.Is(err, ErrFurnitureReadBack) || !errors.Is(err, pkg.ErrInternal) {
			t.Fatalf("expected ErrFurnitureReadBack, got %v", err)
		}
	})
}

func TestFurnitureUseCase_Update(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIFurnitureRepository(ctrl)
		uc := NewFurnitureUseCase(repo, nil)

		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.Furniture{}, nil)

		_, err := uc.Update(context.Background(), 9, FurnitureInput{Name: "Desk", Type: "table", Price: decPtr("1"), Quantity: intPtr(1)})
		if !errors.Is(err, ErrFurnitureNotFound) {
			t.Fatalf("expected ErrFurnitureNotFound, got %v", err)
		}
	})

	t.Run("quantity is required", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIFurnitureRepository(ctrl)
		uc := NewFurnitureUseCase(repo, nil)

		_, err := uc.Update(context.Background(), 9, FurnitureInput{Name: "Desk", Type: "table", Price: decPtr("1")})
		if !errors.Is(err, ErrFurnitureQuantityRequired) {
			t.Fatalf("expected ErrFurnitureQuantityRequired, got %v", err)
		}
	})

	t.Run("passes the stated quantity through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIFurnitureRepository(ctrl)
		uc := NewFurnitureUseCase(repo, nil)

		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Furniture{})).DoAndReturn(
			func(_ context.Context, f entities.Furniture) (entities.Furniture, error) {
				if f.ID != 9 || f.Quantity != 12 {
					t.Fatalf("unexpected furniture: %+v", f)
				}
				return f, nil
			},
		)

		res, err := uc.Update(context.Background(), 9, FurnitureInput{Name: "Desk", Type: "table", Price: decPtr("1"), Quantity: intPtr(12)})
		if err != nil || res.Quantity != 12 {
			t.Fatalf("unexpected result %+v err=%v", res, err)
		}
	})
}

func TestFurnitureUseCase_UpdateQuantity(t *testing.T) {
	t.Run("missing quantity", func(t *testing.T) {
		uc := NewFurnitureUseCase(nil, nil)
		if err := uc.UpdateQuantity(context.Background(), 1, nil); !errors.Is(err, ErrFurnitureNegativeQuantity) {
			t.Fatalf("expected ErrFurnitureNegativeQuantity, got %v", err)
		}
	})

	t.Run("negative quantity", func(t *testing.T) {
		uc := NewFurnitureUseCase(nil, nil)
		if err := uc.UpdateQuantity(context.Background(), 1, intPtr(-1)); !errors.Is(err, ErrFurnitureNegativeQuantity) {
			t.Fatalf("expected ErrFurnitureNegativeQuantity, got %v", err)
		}
	})

	t.Run("not found skips audit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIFurnitureRepository(ctrl)
		audit := mock_interfaces.NewMockIAuditLogRepository(ctrl)
		uc := NewFurnitureUseCase(repo, audit)

		repo.EXPECT().UpdateQuantity(gomock.Any(), uint(3), 0).Return(false, nil)

		if err := uc.UpdateQuantity(context.Background(), 3, intPtr(0)); !errors.Is(err, ErrFurnitureNotFound) {
			t.Fatalf("expected ErrFurnitureNotFound, got %v", err)
		}
	})

	t.Run("success records audit with actor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIFurnitureRepository(ctrl)
		audit := mock_interfaces.NewMockIAuditLogRepository(ctrl)
		uc := NewFurnitureUseCase(repo, audit)

		repo.EXPECT().UpdateQuantity(gomock.Any(), uint(3), 12).Return(true, nil)
		audit.EXPECT().Record(gomock.Any(), gomock.AssignableToTypeOf(entities.AuditEvent{})).DoAndReturn(
			func(_ context.Context, e entities.AuditEvent) error {
				if e.ID == "" || e.Entity != "furniture" || e.EntityID != 3 || e.Action != entities.AuditActionQuantityChange {
					t.Fatalf("unexpected event: %+v", e)
				}
				if e.Actor != "alice" || e.Detail != "quantity=12" {
					t.Fatalf("unexpected actor/detail: %+v", e)
				}
				return nil
			},
		)

		ctx := WithActor(context.Background(), "alice")
		if err := uc.UpdateQuantity(ctx, 3, intPtr(12)); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	})

	t.Run("audit failure does not fail the update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIFurnitureRepository(ctrl)
		audit := mock_interfaces.NewMockIAuditLogRepository(ctrl)
		uc := NewFurnitureUseCase(repo, audit)

		repo.EXPECT().UpdateQuantity(gomock.Any(), uint(3), 1).Return(true, nil)
		audit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(errors.New("dynamo down"))

		if err := uc.UpdateQuantity(context.Background(), 3, intPtr(1)); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	})
}

func TestFurnitureUseCase_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIFurnitureRepository(ctrl)
	uc := NewFurnitureUseCase(repo, nil)

	repo.EXPECT().Delete(gomock.Any(), uint(8)).Return(false, nil)

	if err := uc.Delete(context.Background(), 8); !errors.Is(err, ErrFurnitureNotFound) {
		t.Fatalf("expected ErrFurnitureNotFound, got %v", err)
	}
}
