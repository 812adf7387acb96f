package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"furniture_warehouse/internal/domain/entities"
	"furniture_warehouse/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(entities.OrderDateLayout, s)
	require.NoError(t, err)
	return d
}

func TestOrderRepository_CreateScenario(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	alice := mustClient(t, db, "Alice")
	chair := mustFurniture(t, db, "Chair", "100", 10)
	repo := NewOrderRepository(db)

	o, err := repo.CreateWithItems(ctx, entities.Order{
		ClientID: alice.ID,
		Date:     mustDate(t, "2024-05-01"),
		Status:   entities.OrderStatusPending,
		Items:    []entities.LineItem{{FurnitureID: chair.ID, Quantity: 3, Price: decimal.NewFromInt(100)}},
	})
	require.NoError(t, err)
	require.Equal(t, "300.00", o.TotalAmount.StringFixed(2))

	got, err := repo.GetByID(ctx, o.ID)
	require.NoError(t, err)
	require.Equal(t, "Alice", got.ClientName)
	require.Equal(t, "2024-05-01", got.Date.Format(entities.OrderDateLayout))
	require.Len(t, got.Items, 1)
	require.Equal(t, "Chair", got.Items[0].FurnitureName)
	require.Equal(t, "chair", got.Items[0].FurnitureType)

	// Stock is managed separately from orders.
	f, err := NewFurnitureRepository(db).GetByID(ctx, chair.ID)
	require.NoError(t, err)
	require.Equal(t, 10, f.Quantity)
}

func TestOrderRepository_TotalIsExactSum(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	client := mustClient(t, db, "Bob")
	repo := NewOrderRepository(db)

	prices := []string{"19.99", "0.10", "0.20", "1234.56", "0"}
	items := make([]entities.LineItem, 0, len(prices))
	want := decimal.Zero
	for i, p := range prices {
		f := mustFurniture(t, db, "item", p, 1)
		li := entities.LineItem{FurnitureID: f.ID, Quantity: i + 1, Price: decimal.RequireFromString(p)}
		want = want.Add(li.Subtotal())
		items = append(items, li)
	}

	o, err := repo.CreateWithItems(ctx, entities.Order{ClientID: client.ID, Date: mustDate(t, "2024-05-02"), Status: entities.OrderStatusPending, Items: items})
	require.NoError(t, err)
	require.Equal(t, want.StringFixed(2), o.TotalAmount.StringFixed(2))
	require.Len(t, o.Items, len(prices))
	require.EqualValues(t, len(prices), countRows(t, db, &lineItemRow{}))
}

func TestOrderRepository_CreateIsAllOrNothing(t *testing.T) {
	ctx := context.Background()

	t.Run("missing furniture after valid items", func(t *testing.T) {
		db := newTestDB(t)
		client := mustClient(t, db, "Carol")
		chair := mustFurniture(t, db, "Chair", "100", 10)
		repo := NewOrderRepository(db)

		_, err := repo.CreateWithItems(ctx, entities.Order{
			ClientID: client.ID,
			Date:     mustDate(t, "2024-05-03"),
			Status:   entities.OrderStatusPending,
			Items: []entities.LineItem{
				{FurnitureID: chair.ID, Quantity: 1, Price: decimal.NewFromInt(100)},
				{FurnitureID: 9999, Quantity: 1, Price: decimal.NewFromInt(5)},
			},
		})
		require.ErrorIs(t, err, interfaces.ErrMissingFurniture)
		require.Zero(t, countRows(t, db, &orderRow{}))
		require.Zero(t, countRows(t, db, &lineItemRow{}))
	})

	t.Run("missing client", func(t *testing.T) {
		db := newTestDB(t)
		chair := mustFurniture(t, db, "Chair", "100", 10)
		repo := NewOrderRepository(db)

		_, err := repo.CreateWithItems(ctx, entities.Order{
			ClientID: 4242,
			Date:     mustDate(t, "2024-05-03"),
			Status:   entities.OrderStatusPending,
			Items:    []entities.LineItem{{FurnitureID: chair.ID, Quantity: 1, Price: decimal.NewFromInt(100)}},
		})
		require.ErrorIs(t, err, interfaces.ErrMissingClient)
		require.Zero(t, countRows(t, db, &orderRow{}))
		require.Zero(t, countRows(t, db, &lineItemRow{}))
	})
}

func TestOrderRepository_PriceSnapshot(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	client := mustClient(t, db, "Dan")
	chair := mustFurniture(t, db, "Chair", "100", 10)
	repo := NewOrderRepository(db)

	o, err := repo.CreateWithItems(ctx, entities.Order{
		ClientID: client.ID,
		Date:     mustDate(t, "2024-05-04"),
		Status:   entities.OrderStatusPending,
		Items:    []entities.LineItem{{FurnitureID: chair.ID, Quantity: 2, Price: decimal.NewFromInt(100)}},
	})
	require.NoError(t, err)

	_, err = NewFurnitureRepository(db).Update(ctx, entities.Furniture{ID: chair.ID, Name: "Chair", Type: "chair", Price: decimal.NewFromInt(150), Quantity: 10})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, o.ID)
	require.NoError(t, err)
	require.Equal(t, "200.00", got.TotalAmount.StringFixed(2))
	require.Equal(t, "100.00", got.Items[0].Price.StringFixed(2))
}

func TestOrderRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	client := mustClient(t, db, "Eve")
	chair := mustFurniture(t, db, "Chair", "10", 1)
	repo := NewOrderRepository(db)

	o, err := repo.CreateWithItems(ctx, entities.Order{
		ClientID: client.ID,
		Date:     mustDate(t, "2024-05-05"),
		Status:   entities.OrderStatusCancelled,
		Items:    []entities.LineItem{{FurnitureID: chair.ID, Quantity: 1, Price: decimal.NewFromInt(10)}},
	})
	require.NoError(t, err)

	found, err := repo.UpdateStatus(ctx, o.ID, entities.OrderStatusPending)
	require.NoError(t, err)
	require.True(t, found)

	got, err := repo.GetByID(ctx, o.ID)
	require.NoError(t, err)
	require.Equal(t, entities.OrderStatusPending, got.Status)
	require.Equal(t, "10.00", got.TotalAmount.StringFixed(2))

	found, err = repo.UpdateStatus(ctx, 999, entities.OrderStatusCompleted)
	require.NoError(t, err)
	require.False(t, found)
}

func TestOrderRepository_DeleteWithItems(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	client := mustClient(t, db, "Frank")
	chair := mustFurniture(t, db, "Chair", "10", 1)
	repo := NewOrderRepository(db)

	newOrder := func() entities.Order {
		o, err := repo.CreateWithItems(ctx, entities.Order{
			ClientID: client.ID,
			Date:     mustDate(t, "2024-05-06"),
			Status:   entities.OrderStatusPending,
			Items: []entities.LineItem{
				{FurnitureID: chair.ID, Quantity: 1, Price: decimal.NewFromInt(10)},
				{FurnitureID: chair.ID, Quantity: 2, Price: decimal.NewFromInt(10)},
			},
		})
		require.NoError(t, err)
		return o
	}
	kept := newOrder()
	doomed := newOrder()

	t.Run("missing order leaves store unchanged", func(t *testing.T) {
		found, err := repo.DeleteWithItems(ctx, 9999)
		require.NoError(t, err)
		require.False(t, found)
		require.EqualValues(t, 2, countRows(t, db, &orderRow{}))
		require.EqualValues(t, 4, countRows(t, db, &lineItemRow{}))
	})

	t.Run("removes order and its items", func(t *testing.T) {
		found, err := repo.DeleteWithItems(ctx, doomed.ID)
		require.NoError(t, err)
		require.True(t, found)

		var orphans int64
		require.NoError(t, db.Model(&lineItemRow{}).Where("order_id = ?", doomed.ID).Count(&orphans).Error)
		require.Zero(t, orphans)

		got, err := repo.GetByID(ctx, doomed.ID)
		require.NoError(t, err)
		require.Zero(t, got.ID)

		still, err := repo.GetByID(ctx, kept.ID)
		require.NoError(t, err)
		require.Len(t, still.Items, 2)
	})
}

func TestOrderRepository_ListNewestFirst(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	client := mustClient(t, db, "Gina")
	chair := mustFurniture(t, db, "Chair", "10", 1)
	repo := NewOrderRepository(db)

	var ids []uint
	for i := 0; i < 3; i++ {
		o, err := repo.CreateWithItems(ctx, entities.Order{
			ClientID: client.ID,
			Date:     mustDate(t, "2024-05-07"),
			Status:   entities.OrderStatusPending,
			Items:    []entities.LineItem{{FurnitureID: chair.ID, Quantity: 1, Price: decimal.NewFromInt(10)}},
		})
		require.NoError(t, err)
		ids = append(ids, o.ID)
	}

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	require.Equal(t, ids[2], list[0].ID)
	require.Equal(t, "Gina", list[0].ClientName)
	require.Empty(t, list[0].Items)
}

func TestOrderRepository_ConcurrentCreates(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	client := mustClient(t, db, "Hank")
	chair := mustFurniture(t, db, "Chair", "12.5", 100)
	repo := NewOrderRepository(db)

	const workers = 8
	date := mustDate(t, "2024-05-08")
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 1; i <= workers; i++ {
		wg.Add(1)
		go func(qty int) {
			defer wg.Done()
			o, err := repo.CreateWithItems(ctx, entities.Order{
				ClientID: client.ID,
				Date:     date,
				Status:   entities.OrderStatusPending,
				Items:    []entities.LineItem{{FurnitureID: chair.ID, Quantity: qty, Price: decimal.RequireFromString("12.5")}},
			})
			if err != nil {
				errs <- err
				return
			}
			want := decimal.RequireFromString("12.5").Mul(decimal.NewFromInt(int64(qty)))
			if !o.TotalAmount.Equal(want) {
				errs <- &totalMismatch{got: o.TotalAmount, want: want}
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatal(err)
	}
	require.EqualValues(t, workers, countRows(t, db, &orderRow{}))
	require.EqualValues(t, workers, countRows(t, db, &lineItemRow{}))
}

type totalMismatch struct{ got, want decimal.Decimal }

func (e *totalMismatch) Error() string {
	return "total " + e.got.String() + " want " + e.want.String()
}

func TestOrderRepository_GetByIDReadsEveryColumn(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	alice := mustClient(t, db, "Alice")
	chair := mustFurniture(t, db, "Chair", "100", 10)
	lamp := mustFurniture(t, db, "Lamp", "12.50", 3)
	repo := NewOrderRepository(db)

	o, err := repo.CreateWithItems(ctx, entities.Order{
		ClientID: alice.ID,
		Date:     mustDate(t, "2024-06-15"),
		Status:   entities.OrderStatusPending,
		Items: []entities.LineItem{
			{FurnitureID: chair.ID, Quantity: 2, Price: decimal.NewFromInt(100)},
			{FurnitureID: lamp.ID, Quantity: 1, Price: decimal.RequireFromString("12.50")},
		},
	})
	require.NoError(t, err)
	require.NotZero(t, o.ID)

	got, err := repo.GetByID(ctx, o.ID)
	require.NoError(t, err)
	require.Equal(t, o.ID, got.ID)
	require.Equal(t, alice.ID, got.ClientID)
	require.Equal(t, "2024-06-15", got.Date.Format(entities.OrderDateLayout))
	require.Equal(t, entities.OrderStatusPending, got.Status)
	require.Equal(t, "212.50", got.TotalAmount.StringFixed(2))
	require.False(t, got.CreatedAt.IsZero())
	require.Equal(t, "Alice", got.ClientName)
	require.Equal(t, "555-0101", got.ClientPhone)
	require.Equal(t, "1 Main St", got.ClientAddress)

	require.Len(t, got.Items, 2)
	for i, want := range []struct {
		furnitureID uint
		name        string
		quantity    int
		price       string
	}{
		{chair.ID, "Chair", 2, "100.00"},
		{lamp.ID, "Lamp", 1, "12.50"},
	} {
		it := got.Items[i]
		require.NotZero(t, it.ID)
		require.Equal(t, o.ID, it.OrderID)
		require.Equal(t, want.furnitureID, it.FurnitureID)
		require.Equal(t, want.name, it.FurnitureName)
		require.Equal(t, want.quantity, it.Quantity)
		require.Equal(t, want.price, it.Price.StringFixed(2))
	}

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, o.ID, list[0].ID)
	require.Equal(t, "212.50", list[0].TotalAmount.StringFixed(2))
	require.Equal(t, "Alice", list[0].ClientName)
}
