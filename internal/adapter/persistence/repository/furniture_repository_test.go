package repository

import (
	"context"
	"testing"

	"furniture_warehouse/internal/domain/entities"
	"furniture_warehouse/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestFurnitureRepository_SupplierJoin(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	supplier, err := NewSupplierRepository(db).Create(ctx, entities.Supplier{Name: "Oak Works"})
	require.NoError(t, err)
	repo := NewFurnitureRepository(db)

	withSupplier, err := repo.Create(ctx, entities.Furniture{
		Name:       "Table",
		Type:       "table",
		Price:      decimal.RequireFromString("250.75"),
		Quantity:   4,
		SupplierID: &supplier.ID,
	})
	require.NoError(t, err)
	require.Equal(t, "Oak Works", withSupplier.SupplierName)
	require.Equal(t, "250.75", withSupplier.Price.StringFixed(2))

	plain := mustFurniture(t, db, "Stool", "15", 0)
	require.Empty(t, plain.SupplierName)
	require.Nil(t, plain.SupplierID)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, plain.ID, list[0].ID)
	require.Equal(t, "Oak Works", list[1].SupplierName)
}

func TestFurnitureRepository_UnknownSupplier(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewFurnitureRepository(db)
	ghost := uint(77)

	_, err := repo.Create(ctx, entities.Furniture{Name: "Desk", Type: "table", Price: decimal.NewFromInt(1), SupplierID: &ghost})
	require.ErrorIs(t, err, interfaces.ErrMissingSupplier)
	require.Zero(t, countRows(t, db, &furnitureRow{}))

	f := mustFurniture(t, db, "Desk", "1", 1)
	_, err = repo.Update(ctx, entities.Furniture{ID: f.ID, Name: "Desk", Type: "table", Price: decimal.NewFromInt(1), SupplierID: &ghost})
	require.ErrorIs(t, err, interfaces.ErrMissingSupplier)
}

func TestFurnitureRepository_Update(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewFurnitureRepository(db)
	f := mustFurniture(t, db, "Chair", "100", 10)

	updated, err := repo.Update(ctx, entities.Furniture{ID: f.ID, Name: "Armchair", Type: "chair", Price: decimal.RequireFromString("120.5"), Quantity: 2})
	require.NoError(t, err)
	require.Equal(t, "Armchair", updated.Name)
	require.Equal(t, 2, updated.Quantity)
	require.True(t, updated.Price.Equal(decimal.RequireFromString("120.5")))

	missing, err := repo.Update(ctx, entities.Furniture{ID: 999, Name: "x", Type: "y", Price: decimal.Zero})
	require.NoError(t, err)
	require.Zero(t, missing.ID)
}

func TestFurnitureRepository_UpdateQuantity(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewFurnitureRepository(db)
	f := mustFurniture(t, db, "Chair", "100", 10)

	found, err := repo.UpdateQuantity(ctx, f.ID, 0)
	require.NoError(t, err)
	require.True(t, found)

	got, err := repo.GetByID(ctx, f.ID)
	require.NoError(t, err)
	require.Equal(t, 0, got.Quantity)

	found, err = repo.UpdateQuantity(ctx, 999, 3)
	require.NoError(t, err)
	require.False(t, found)
}

func TestFurnitureRepository_DeleteOrphansLineItems(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	client := mustClient(t, db, "Alice")
	chair := mustFurniture(t, db, "Chair", "100", 10)
	orders := NewOrderRepository(db)

	o, err := orders.CreateWithItems(ctx, entities.Order{
		ClientID: client.ID,
		Date:     mustDate(t, "2024-05-01"),
		Status:   entities.OrderStatusPending,
		Items:    []entities.LineItem{{FurnitureID: chair.ID, Quantity: 1, Price: decimal.NewFromInt(100)}},
	})
	require.NoError(t, err)

	found, err := NewFurnitureRepository(db).Delete(ctx, chair.ID)
	require.NoError(t, err)
	require.True(t, found)

	got, err := orders.GetByID(ctx, o.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	require.Empty(t, got.Items[0].FurnitureName)
	require.Equal(t, "100.00", got.TotalAmount.StringFixed(2))
}

func TestFurnitureRepository_GetByIDReadsEveryColumn(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	supplier, err := NewSupplierRepository(db).Create(ctx, entities.Supplier{Name: "Pine Co"})
	require.NoError(t, err)
	repo := NewFurnitureRepository(db)

	created, err := repo.Create(ctx, entities.Furniture{
		Name:       "Wardrobe",
		Type:       "storage",
		Price:      decimal.RequireFromString("899.90"),
		Quantity:   7,
		SupplierID: &supplier.ID,
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created.ID, got.ID)
	require.Equal(t, "Wardrobe", got.Name)
	require.Equal(t, "storage", got.Type)
	require.Equal(t, "899.90", got.Price.StringFixed(2))
	require.Equal(t, 7, got.Quantity)
	require.NotNil(t, got.SupplierID)
	require.Equal(t, supplier.ID, *got.SupplierID)
	require.Equal(t, "Pine Co", got.SupplierName)
	require.False(t, got.CreatedAt.IsZero())

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, got.ID, list[0].ID)
	require.Equal(t, 7, list[0].Quantity)
	require.Equal(t, "Pine Co", list[0].SupplierName)
}
