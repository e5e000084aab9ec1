package handler

import (
	"vendio/internal/usecase"
)

var (
	authHandler         *AuthHandler
	storeHandler        *StoreHandler
	productHandler      *ProductHandler
	bookingHandler      *BookingHandler
	orderHandler        *OrderHandler
	customerHandler     *CustomerHandler
	notificationHandler *NotificationHandler
	dashboardHandler    *DashboardHandler
	settingsHandler     *SettingsHandler
	adminHandler        *AdminHandler
	healthHandler       *HealthHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	storeUseCase *usecase.StoreUseCase,
	catalogUseCase *usecase.CatalogUseCase,
	bookingUseCase *usecase.BookingUseCase,
	orderUseCase *usecase.OrderUseCase,
	customerUseCase *usecase.CustomerUseCase,
	notificationUseCase *usecase.NotificationUseCase,
	dashboardUseCase *usecase.DashboardUseCase,
	settingsUseCase *usecase.SettingsUseCase,
	adminUseCase *usecase.AdminUseCase,
) {
	authHandler = NewAuthHandler(authUseCase)
	storeHandler = NewStoreHandler(storeUseCase)
	productHandler = NewProductHandler(catalogUseCase)
	bookingHandler = NewBookingHandler(bookingUseCase)
	orderHandler = NewOrderHandler(orderUseCase)
	customerHandler = NewCustomerHandler(customerUseCase)
	notificationHandler = NewNotificationHandler(notificationUseCase)
	dashboardHandler = NewDashboardHandler(dashboardUseCase)
	settingsHandler = NewSettingsHandler(settingsUseCase)
	adminHandler = NewAdminHandler(adminUseCase)
	healthHandler = NewHealthHandler()
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetStoreHandler() *StoreHandler {
	return storeHandler
}

func GetProductHandler() *ProductHandler {
	return productHandler
}

func GetBookingHandler() *BookingHandler {
	return bookingHandler
}

func GetOrderHandler() *OrderHandler {
	return orderHandler
}

func GetCustomerHandler() *CustomerHandler {
	return customerHandler
}

func GetNotificationHandler() *NotificationHandler {
	return notificationHandler
}

func GetDashboardHandler() *DashboardHandler {
	return dashboardHandler
}

func GetSettingsHandler() *SettingsHandler {
	return settingsHandler
}

func GetAdminHandler() *AdminHandler {
	return adminHandler
}

func GetHealthHandler() *HealthHandler {
	return healthHandler
}
