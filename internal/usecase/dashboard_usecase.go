package usecase

import (
	"context"
	"furniture_warehouse/internal/domain/entities"
	"furniture_warehouse/internal/usecase/interfaces"
	"sort"

	"github.com/shopspring/decimal"
)

const (
	dashboardTopClients   = 5
	dashboardRecentOrders = 5
)

// IDashboardUseCase aggregates warehouse statistics.
type IDashboardUseCase interface {
	Stats(ctx context.Context) (entities.DashboardStats, error)
}

type DashboardUseCase struct {
	suppliers interfaces.ISupplierRepository
	clients   interfaces.IClientRepository
	furniture interfaces.IFurnitureRepository
	orders    interfaces.IOrderRepository
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(
	suppliers interfaces.ISupplierRepository,
	clients interfaces.IClientRepository,
	furniture interfaces.IFurnitureRepository,
	orders interfaces.IOrderRepository,
) *DashboardUseCase {
	return &DashboardUseCase{suppliers: suppliers, clients: clients, furniture: furniture, orders: orders}
}

// Stats reads every list once and derives the figures from the stored values;
// order totals are the persisted snapshots.
func (u *DashboardUseCase) Stats(ctx context.Context) (entities.DashboardStats, error) {
	suppliers, err := u.suppliers.List(ctx)
	if err != nil {
		return entities.DashboardStats{}, err
	}
	clients, err := u.clients.List(ctx)
	if err != nil {
		return entities.DashboardStats{}, err
	}
	items, err := u.furniture.List(ctx)
	if err != nil {
		return entities.DashboardStats{}, err
	}
	orders, err := u.orders.List(ctx)
	if err != nil {
		return entities.DashboardStats{}, err
	}

	stats := entities.DashboardStats{
		Suppliers:       int64(len(suppliers)),
		Clients:         int64(len(clients)),
		Furniture:       int64(len(items)),
		Orders:          int64(len(orders)),
		InventoryValue:  decimal.Zero,
		TotalOrderValue: decimal.Zero,
	}

	for _, f := range items {
		stats.InventoryValue = stats.InventoryValue.Add(f.StockValue())
		switch {
		case f.IsOutOfStock():
			stats.OutOfStockItems++
		case f.IsLowStock():
			stats.LowStockItems++
		}
	}

	spent := make(map[uint]decimal.Decimal, len(clients))
	for _, o := range orders {
		stats.TotalOrderValue = stats.TotalOrderValue.Add(o.TotalAmount)
		spent[o.ClientID] = spent[o.ClientID].Add(o.TotalAmount)
		switch o.Status {
		case entities.OrderStatusPending:
			stats.PendingOrders++
		case entities.OrderStatusCompleted:
			stats.CompletedOrders++
		case entities.OrderStatusCancelled:
			stats.CancelledOrders++
		}
	}

	top := make([]entities.ClientSpending, 0, len(clients))
	for _, c := range clients {
		top = append(top, entities.ClientSpending{ClientID: c.ID, ClientName: c.Name, TotalSpent: spent[c.ID]})
	}
	sort.SliceStable(top, func(i, j int) bool { return top[i].TotalSpent.GreaterThan(top[j].TotalSpent) })
	if len(top) > dashboardTopClients {
		top = top[:dashboardTopClients]
	}
	stats.TopClients = top

	// Orders are listed newest first.
	recent := orders
	if len(recent) > dashboardRecentOrders {
		recent = recent[:dashboardRecentOrders]
	}
	stats.RecentOrders = recent

	return stats, nil
}
