package usecase

import (
	"context"

	"vendio/internal/domain/entity"
	"vendio/internal/domain/repository"
)

// DashboardUseCase shapes the vendor overview: headline stat cards, the
// weekly revenue/orders series and the top of the notification feed. The
// figures are the demo dataset; a full system would aggregate orders.
type DashboardUseCase struct {
	storeRepo        repository.StoreRepository
	notificationRepo repository.NotificationRepository
}

func NewDashboardUseCase(storeRepo repository.StoreRepository, notificationRepo repository.NotificationRepository) *DashboardUseCase {
	return &DashboardUseCase{
		storeRepo:        storeRepo,
		notificationRepo: notificationRepo,
	}
}

type StatCard struct {
	Label  string `json:"label"`
	Value  string `json:"value"`
	Change string `json:"change"`
	Trend  string `json:"trend"` // "up" or "down"
}

type RevenuePoint struct {
	Name    string  `json:"name"`
	Revenue float64 `json:"revenue"`
	Orders  int     `json:"orders"`
}

type DashboardData struct {
	Store         *entity.Store          `json:"store"`
	Stats         []StatCard             `json:"stats"`
	Revenue       []RevenuePoint         `json:"revenue"`
	Notifications []*entity.Notification `json:"notifications"`
}

const dashboardFeedLimit = 5

func (uc *DashboardUseCase) GetDashboard(ctx context.Context, vendorID string) (*DashboardData, error) {
	store, err := uc.storeRepo.GetByVendorID(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	notifications, err := uc.notificationRepo.List(ctx, vendorID, dashboardFeedLimit)
	if err != nil {
		return nil, err
	}

	return &DashboardData{
		Store: store,
		Stats: []StatCard{
			{Label: "Total Revenue", Value: "$12,845.00", Change: "+12.5%", Trend: "up"},
			{Label: "Active Customers", Value: "1,240", Change: "+3.2%", Trend: "up"},
			{Label: "Orders", Value: "184", Change: "-2.1%", Trend: "down"},
			{Label: "Store Views", Value: "45.2k", Change: "+18.4%", Trend: "up"},
		},
		Revenue: []RevenuePoint{
			{Name: "Mon", Revenue: 400, Orders: 24},
			{Name: "Tue", Revenue: 300, Orders: 13},
			{Name: "Wed", Revenue: 900, Orders: 48},
			{Name: "Thu", Revenue: 200, Orders: 19},
			{Name: "Fri", Revenue: 800, Orders: 38},
			{Name: "Sat", Revenue: 1100, Orders: 52},
			{Name: "Sun", Revenue: 1300, Orders: 61},
		},
		Notifications: notifications,
	}, nil
}
