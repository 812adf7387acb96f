package usecase

import (
	"context"
	"errors"
	"testing"

	"furniture_warehouse/internal/domain/entities"
	mock_interfaces "furniture_warehouse/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestDashboardUseCase_Stats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	suppliers := mock_interfaces.NewMockISupplierRepository(ctrl)
	clients := mock_interfaces.NewMockIClientRepository(ctrl)
	furniture := mock_interfaces.NewMockIFurnitureRepository(ctrl)
	orders := mock_interfaces.NewMockIOrderRepository(ctrl)
	uc := NewDashboardUseCase(suppliers, clients, furniture, orders)

	suppliers.EXPECT().List(gomock.Any()).Return([]entities.Supplier{{ID: 1}, {ID: 2}}, nil)
	clients.EXPECT().List(gomock.Any()).Return([]entities.Client{{ID: 1, Name: "Ana"}, {ID: 2, Name: "Bruno"}, {ID: 3, Name: "Caio"}}, nil)
	furniture.EXPECT().List(gomock.Any()).Return([]entities.Furniture{
		{ID: 1, Price: decimal.RequireFromString("10.50"), Quantity: 10},
		{ID: 2, Price: decimal.RequireFromString("100"), Quantity: 3},
		{ID: 3, Price: decimal.RequireFromString("999"), Quantity: 0},
	}, nil)
	orders.EXPECT().List(gomock.Any()).Return([]entities.Order{
		{ID: 3, ClientID: 2, Status: entities.OrderStatusPending, TotalAmount: decimal.RequireFromString("40")},
		{ID: 2, ClientID: 1, Status: entities.OrderStatusCompleted, TotalAmount: decimal.RequireFromString("15.25")},
		{ID: 1, ClientID: 2, Status: entities.OrderStatusCancelled, TotalAmount: decimal.RequireFromString("5")},
	}, nil)

	s, err := uc.Stats(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if s.Suppliers != 2 || s.Clients != 3 || s.Furniture != 3 || s.Orders != 3 {
		t.Fatalf("unexpected counts %+v", s)
	}
	if s.InventoryValue.StringFixed(2) != "405.00" {
		t.Fatalf("unexpected inventory value %s", s.InventoryValue)
	}
	if s.TotalOrderValue.StringFixed(2) != "60.25" {
		t.Fatalf("unexpected order value %s", s.TotalOrderValue)
	}
	if s.PendingOrders != 1 || s.CompletedOrders != 1 || s.CancelledOrders != 1 {
		t.Fatalf("unexpected status counts %+v", s)
	}
	if s.LowStockItems != 1 || s.OutOfStockItems != 1 {
		t.Fatalf("unexpected stock counts low=%d out=%d", s.LowStockItems, s.OutOfStockItems)
	}
	if len(s.TopClients) != 3 || s.TopClients[0].ClientName != "Bruno" || s.TopClients[2].ClientName != "Caio" {
		t.Fatalf("unexpected top clients %+v", s.TopClients)
	}
	if !s.TopClients[2].TotalSpent.IsZero() {
		t.Fatalf("client without orders must have spent zero")
	}
	if len(s.RecentOrders) != 3 || s.RecentOrders[0].ID != 3 {
		t.Fatalf("unexpected recent orders %+v", s.RecentOrders)
	}
}

func TestDashboardUseCase_StatsError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	suppliers := mock_interfaces.NewMockISupplierRepository(ctrl)
	uc := NewDashboardUseCase(suppliers, nil, nil, nil)

	suppliers.EXPECT().List(gomock.Any()).Return(nil, errors.New("db"))

	if _, err := uc.Stats(context.Background()); err == nil {
		t.Fatalf("expected error")
	}
}
