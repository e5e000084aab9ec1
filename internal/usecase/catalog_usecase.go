package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"vendio/internal/domain/entity"
	"vendio/internal/domain/repository"
	"vendio/internal/domain/service"
	"vendio/pkg/errors"
	"vendio/pkg/logger"
)

const fallbackProductName = "Untitled Product"

type CatalogUseCase struct {
	productRepo repository.ProductRepository
	slotRepo    repository.BookingSlotRepository
	describer   service.DescriptionService
}

func NewCatalogUseCase(
	productRepo repository.ProductRepository,
	slotRepo repository.BookingSlotRepository,
	describer service.DescriptionService,
) *CatalogUseCase {
	return &CatalogUseCase{
		productRepo: productRepo,
		slotRepo:    slotRepo,
		describer:   describer,
	}
}

type AddProductInput struct {
	Name        string
	Description string
	Price       float64
	Type        entity.ProductType
	Stock       *int
	DigitalLink string
	// When set and Description is empty, ask the description provider
	// for a draft. Provider failures leave the description empty.
	GenerateDescription bool
}

// AddProduct creates a product from a partial draft. An empty name falls
// back to a placeholder, the image reference is derived from the draft
// name as entered, and the product lands at the top of the store's list.
func (uc *CatalogUseCase) AddProduct(ctx context.Context, storeID string, input AddProductInput) (*entity.Product, error) {
	description := input.Description
	if description == "" && input.GenerateDescription {
		generated, err := uc.describer.GenerateDescription(ctx, input.Name)
		if err != nil {
			// Silent contract: a failed draft never fails the create.
			logger.Debug("Description generation failed for %q: %v", input.Name, err)
		} else {
			description = generated
		}
	}

	name := input.Name
	if name == "" {
		name = fallbackProductName
	}

	product := &entity.Product{
		ID:          uuid.NewString(),
		StoreID:     storeID,
		Name:        name,
		Description: description,
		Price:       input.Price,
		Type:        input.Type,
		ImageURL:    fmt.Sprintf("https://picsum.photos/seed/%s/200/200", input.Name),
		Stock:       input.Stock,
		DigitalLink: input.DigitalLink,
	}

	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (uc *CatalogUseCase) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	return uc.productRepo.GetByID(ctx, id)
}

// ListProducts returns the store's catalog, newest first, optionally
// filtered by a case-insensitive name search.
func (uc *CatalogUseCase) ListProducts(ctx context.Context, storeID, query string) ([]*entity.Product, error) {
	if query != "" {
		return uc.productRepo.SearchByName(ctx, storeID, query)
	}
	return uc.productRepo.ListByStoreID(ctx, storeID)
}

// AddBookingSlot schedules an availability window on a booking product.
// When date, start or end is missing the operation is a deliberate
// silent no-op: the schedule is left untouched and no slot is returned.
func (uc *CatalogUseCase) AddBookingSlot(ctx context.Context, productID, date, startTime, endTime string) (*entity.BookingSlot, error) {
	if productID == "" || date == "" || startTime == "" || endTime == "" {
		return nil, nil
	}

	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product.Type != entity.ProductTypeBooking {
		return nil, errors.BadRequest("Slots can only be added to booking products", nil)
	}

	slot := &entity.BookingSlot{
		ID:        uuid.NewString(),
		ProductID: product.ID,
		StartTime: date + "T" + startTime,
		EndTime:   date + "T" + endTime,
		IsBooked:  false,
	}

	if err := uc.slotRepo.Create(ctx, slot); err != nil {
		return nil, err
	}
	return slot, nil
}

// RemoveBookingSlot deletes a slot. Unknown ids are a no-op and the
// order of the remaining slots is unchanged either way.
func (uc *CatalogUseCase) RemoveBookingSlot(ctx context.Context, id string) error {
	return uc.slotRepo.Delete(ctx, id)
}

// ListBookingSlots returns a product's schedule in ascending start-time
// order.
func (uc *CatalogUseCase) ListBookingSlots(ctx context.Context, productID string) ([]*entity.BookingSlot, error) {
	if _, err := uc.productRepo.GetByID(ctx, productID); err != nil {
		return nil, err
	}
	return uc.slotRepo.ListByProductID(ctx, productID)
}
