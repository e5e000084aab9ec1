package repository

import (
	"time"

	"vendio/internal/domain/entity"
)

// Demo data the platform boots with. Everything here lives only as long
// as the process; a restart resets the whole world.

func SeedStores() []*entity.Store {
	return []*entity.Store{
		{
			ID:             "s1",
			VendorID:       "u1",
			Name:           "Riverside Gear",
			Slug:           "riverside",
			Description:    "Handcrafted outdoor gear for the modern explorer.",
			Status:         entity.StoreStatusActive,
			CommissionRate: 0.05,
			Theme: entity.StoreTheme{
				PrimaryColor: "#6366f1",
				FontFamily:   "Inter",
				BorderRadius: "0.5rem",
			},
		},
		{
			ID:             "s2",
			VendorID:       "v-jane",
			Name:           "Artisan Breads",
			Slug:           "artisan-breads",
			Description:    "Small-batch sourdough and pastries.",
			Status:         entity.StoreStatusActive,
			CommissionRate: 0.05,
			Theme:          defaultTheme(),
		},
		{
			ID:             "s3",
			VendorID:       "v-mark",
			Name:           "Yoga with Mark",
			Slug:           "yoga-with-mark",
			Description:    "Private and group yoga sessions.",
			Status:         entity.StoreStatusPendingApproval,
			CommissionRate: 0.05,
			Theme:          defaultTheme(),
		},
		{
			ID:             "s4",
			VendorID:       "v-sarah",
			Name:           "Digital Planners",
			Slug:           "digital-planners",
			Description:    "Printable and digital planning templates.",
			Status:         entity.StoreStatusActive,
			CommissionRate: 0.05,
			Theme:          defaultTheme(),
		},
		{
			ID:             "s5",
			VendorID:       "v-tom",
			Name:           "Crafty Creations",
			Slug:           "crafty-creations",
			Description:    "Handmade crafts and gifts.",
			Status:         entity.StoreStatusSuspended,
			CommissionRate: 0.05,
			Theme:          defaultTheme(),
		},
	}
}

func defaultTheme() entity.StoreTheme {
	return entity.StoreTheme{
		PrimaryColor: "#6366f1",
		FontFamily:   "Inter",
		BorderRadius: "0.5rem",
	}
}

func SeedProducts() []*entity.Product {
	tentStock := 12
	cooksetStock := 24
	return []*entity.Product{
		{
			ID:          "p1",
			StoreID:     "s1",
			Name:        "Lightweight Mountain Tent",
			Description: "The perfect companion for solo adventurers. Wind resistant and waterproof.",
			Price:       245.00,
			Type:        entity.ProductTypePhysical,
			ImageURL:    "https://picsum.photos/seed/tent/400/400",
			Stock:       &tentStock,
		},
		{
			ID:          "p2",
			StoreID:     "s1",
			Name:        "Titanium Camping Cookset",
			Description: "Full nested set for two people. Weighs only 350g total.",
			Price:       68.00,
			Type:        entity.ProductTypePhysical,
			ImageURL:    "https://picsum.photos/seed/pot/400/400",
			Stock:       &cooksetStock,
		},
		{
			ID:          "p3",
			StoreID:     "s1",
			Name:        "Outdoor Survival Masterclass",
			Description: "1-hour video consultation on wilderness survival basics.",
			Price:       45.00,
			Type:        entity.ProductTypeBooking,
			ImageURL:    "https://picsum.photos/seed/survival/400/400",
		},
	}
}

func SeedBookingSlots() []*entity.BookingSlot {
	return []*entity.BookingSlot{
		{ID: "slot-1", ProductID: "p3", StartTime: "2025-06-12T09:00:00", EndTime: "2025-06-12T10:00:00", IsBooked: false},
		{ID: "slot-2", ProductID: "p3", StartTime: "2025-06-12T11:00:00", EndTime: "2025-06-12T12:00:00", IsBooked: false},
		{ID: "slot-3", ProductID: "p3", StartTime: "2025-06-13T14:00:00", EndTime: "2025-06-13T15:00:00", IsBooked: false},
	}
}

func SeedOrders() []*entity.Order {
	return []*entity.Order{
		{
			ID:            "ORD-8291",
			StoreID:       "s1",
			CustomerID:    "c1",
			CustomerName:  "James Wilson",
			CustomerEmail: "james.w@example.com",
			Items:         []entity.OrderItem{{ProductID: "p1", Quantity: 1, PriceAtPurchase: 245}},
			TotalAmount:   245,
			Status:        entity.OrderStatusPaid,
			CreatedAt:     time.Date(2025, 5, 12, 14, 30, 0, 0, time.UTC),
		},
		{
			ID:            "ORD-8292",
			StoreID:       "s1",
			CustomerID:    "c2",
			CustomerName:  "Elena Rodriguez",
			CustomerEmail: "elena.ro@gmail.com",
			Items:         []entity.OrderItem{{ProductID: "p2", Quantity: 1, PriceAtPurchase: 68}},
			TotalAmount:   68,
			Status:        entity.OrderStatusShipped,
			CreatedAt:     time.Date(2025, 5, 12, 16, 45, 0, 0, time.UTC),
		},
		{
			ID:            "ORD-8293",
			StoreID:       "s1",
			CustomerID:    "c3",
			CustomerName:  "Marcus Chen",
			CustomerEmail: "marcus@startup.io",
			Items:         []entity.OrderItem{{ProductID: "p3", Quantity: 2, PriceAtPurchase: 45}},
			TotalAmount:   90,
			Status:        entity.OrderStatusPending,
			CreatedAt:     time.Date(2025, 5, 13, 9, 15, 0, 0, time.UTC),
		},
	}
}

func SeedCustomers() []*entity.Customer {
	return []*entity.Customer{
		{ID: "c1", Name: "James Wilson", Email: "james.w@example.com", TotalOrders: 12, TotalSpent: 842.50, LastOrderAt: "2025-05-10"},
		{ID: "c2", Name: "Elena Rodriguez", Email: "elena.ro@gmail.com", TotalOrders: 3, TotalSpent: 125.00, LastOrderAt: "2025-05-12"},
		{ID: "c3", Name: "Marcus Chen", Email: "marcus@startup.io", TotalOrders: 1, TotalSpent: 45.00, LastOrderAt: "2025-04-20"},
		{ID: "c4", Name: "Sophie Laurent", Email: "sophie.l@outlook.com", TotalOrders: 8, TotalSpent: 512.20, LastOrderAt: "2025-05-08"},
	}
}

func SeedNotifications() map[string][]*entity.Notification {
	return map[string][]*entity.Notification{
		"u1": {
			{ID: "n1", VendorID: "u1", Title: "New Order #184", Description: "Sarah Jenkins bought Mountain Tent", TimeLabel: "12m ago", Kind: entity.NotificationOrder},
			{ID: "n2", VendorID: "u1", Title: "Inventory Alert", Description: "Sleeping Bag is low on stock (2 left)", TimeLabel: "2h ago", Kind: entity.NotificationWarning},
			{ID: "n3", VendorID: "u1", Title: "Store Updated", Description: "Logo and branding changes saved", TimeLabel: "5h ago", Kind: entity.NotificationUpdate},
			{ID: "n4", VendorID: "u1", Title: "Payment Processed", Description: "Payout of $2,450 sent to Stripe", TimeLabel: "Yesterday", Kind: entity.NotificationPayout},
		},
	}
}

func SeedDisputes() []*entity.Dispute {
	return []*entity.Dispute{
		{ID: "DISP-101", StoreName: "Artisan Breads", Amount: "$45.00", Reason: "Item not as described", Status: entity.DisputeStatusInReview},
		{ID: "DISP-102", StoreName: "Tech Haven", Amount: "$1,240.00", Reason: "Fraudulent activity suspected", Status: entity.DisputeStatusUrgent},
		{ID: "DISP-103", StoreName: "Riverside Gear", Amount: "$89.99", Reason: "Refund requested, merchant unresponsive", Status: entity.DisputeStatusPending},
	}
}
