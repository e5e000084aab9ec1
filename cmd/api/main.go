package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"vendio/internal/adapter/api"
	"vendio/internal/adapter/api/handler"
	apimiddleware "vendio/internal/adapter/api/middleware"
	"vendio/internal/adapter/api/router"
	"vendio/internal/adapter/repository"
	"vendio/internal/domain/service"
	"vendio/internal/infrastructure/auth"
	"vendio/internal/infrastructure/ratelimit"
	"vendio/internal/infrastructure/websocket"
	"vendio/internal/usecase"
	"vendio/pkg/config"
	"vendio/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	storeRepo := repository.NewMemoryStoreRepository(repository.SeedStores())
	productRepo := repository.NewMemoryProductRepository(repository.SeedProducts())
	slotRepo := repository.NewMemoryBookingSlotRepository(repository.SeedBookingSlots())
	orderRepo := repository.NewMemoryOrderRepository(repository.SeedOrders())
	customerRepo := repository.NewMemoryCustomerRepository(repository.SeedCustomers())
	notificationRepo := repository.NewMemoryNotificationRepository(repository.SeedNotifications())
	disputeRepo := repository.NewMemoryDisputeRepository(repository.SeedDisputes())

	jwtClient := auth.NewJWTClient(cfg.JWTSecret, cfg.JWTExpiry)

	wsManager := websocket.NewManager()
	wsManager.Start(ctx)

	limiter := ratelimit.NewRateLimiter()
	go func() {
		ticker := time.NewTicker(10 * time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			limiter.Cleanup(30 * time.Minute)
		}
	}()

	var describer service.DescriptionService
	if cfg.GeminiAPIKey != "" {
		describer = service.NewGeminiDescriptionService(cfg.GeminiAPIKey)
	} else {
		logger.Warn("GEMINI_API_KEY not set, product descriptions will not be generated")
		describer = service.NewNoopDescriptionService()
	}

	sessions := usecase.NewSessionRegistry()

	authUseCase := usecase.NewAuthUseCase(sessions, storeRepo, jwtClient)
	storeUseCase := usecase.NewStoreUseCase(storeRepo, productRepo, slotRepo, sessions)
	catalogUseCase := usecase.NewCatalogUseCase(productRepo, slotRepo, describer)
	notificationUseCase := usecase.NewNotificationUseCase(notificationRepo, wsManager)
	bookingUseCase := usecase.NewBookingUseCase(productRepo, slotRepo, storeRepo, notificationUseCase, limiter, cfg.BookingConfirmDelay)
	orderUseCase := usecase.NewOrderUseCase(orderRepo)
	customerUseCase := usecase.NewCustomerUseCase(customerRepo)
	dashboardUseCase := usecase.NewDashboardUseCase(storeRepo, notificationRepo)
	settingsUseCase := usecase.NewSettingsUseCase(sessions)
	adminUseCase := usecase.NewAdminUseCase(storeRepo, disputeRepo)

	handler.Setup(
		authUseCase,
		storeUseCase,
		catalogUseCase,
		bookingUseCase,
		orderUseCase,
		customerUseCase,
		notificationUseCase,
		dashboardUseCase,
		settingsUseCase,
		adminUseCase,
	)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(jwtClient, sessions)
	adminMiddleware := apimiddleware.NewAdminMiddleware(sessions)
	vendorMiddleware := apimiddleware.NewVendorMiddleware(sessions)
	rateLimitMiddleware := apimiddleware.NewRateLimitMiddleware(limiter)

	wsHandler := handler.NewWebSocketHandler(wsManager, authMiddleware)

	router.Setup(e, authMiddleware, adminMiddleware, vendorMiddleware, rateLimitMiddleware, wsHandler)

	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
