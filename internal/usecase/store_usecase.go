package usecase

import (
	"context"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"vendio/internal/domain/entity"
	"vendio/internal/domain/repository"
	"vendio/pkg/errors"
	"vendio/pkg/logger"
)

var slugSeparator = regexp.MustCompile(`\s+`)

type StoreUseCase struct {
	storeRepo   repository.StoreRepository
	productRepo repository.ProductRepository
	slotRepo    repository.BookingSlotRepository
	sessions    *SessionRegistry
}

func NewStoreUseCase(
	storeRepo repository.StoreRepository,
	productRepo repository.ProductRepository,
	slotRepo repository.BookingSlotRepository,
	sessions *SessionRegistry,
) *StoreUseCase {
	return &StoreUseCase{
		storeRepo:   storeRepo,
		productRepo: productRepo,
		slotRepo:    slotRepo,
		sessions:    sessions,
	}
}

func (uc *StoreUseCase) GetVendorStore(ctx context.Context, vendorID string) (*entity.Store, error) {
	return uc.storeRepo.GetByVendorID(ctx, vendorID)
}

type UpdateThemeInput struct {
	PrimaryColor string
	FontFamily   string
	BorderRadius string
}

// UpdateTheme is the store editor's save: only branding changes, the
// rest of the store record stays as-is.
func (uc *StoreUseCase) UpdateTheme(ctx context.Context, vendorID string, input UpdateThemeInput) (*entity.Store, error) {
	store, err := uc.storeRepo.GetByVendorID(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	if input.PrimaryColor != "" {
		store.Theme.PrimaryColor = input.PrimaryColor
	}
	if input.FontFamily != "" {
		store.Theme.FontFamily = input.FontFamily
	}
	if input.BorderRadius != "" {
		store.Theme.BorderRadius = input.BorderRadius
	}

	if err := uc.storeRepo.Update(ctx, store); err != nil {
		return nil, err
	}

	uc.sessions.SetActiveStore(vendorID, store)
	return store, nil
}

type OnboardingInput struct {
	Name         string
	Slug         string
	Description  string
	PrimaryColor string
}

// CompleteOnboarding creates the vendor's store awaiting platform
// approval and makes it the session's active store. The slug falls back
// to the lowercased name with whitespace runs replaced by hyphens.
func (uc *StoreUseCase) CompleteOnboarding(ctx context.Context, vendorID string, input OnboardingInput) (*entity.Store, error) {
	if _, err := uc.storeRepo.GetByVendorID(ctx, vendorID); err == nil {
		return nil, errors.Conflict("Vendor already has a store")
	}

	slug := input.Slug
	if slug == "" {
		slug = slugSeparator.ReplaceAllString(strings.ToLower(input.Name), "-")
	}

	primaryColor := input.PrimaryColor
	if primaryColor == "" {
		primaryColor = "#6366f1"
	}

	store := &entity.Store{
		ID:             uuid.NewString(),
		VendorID:       vendorID,
		Name:           input.Name,
		Slug:           slug,
		Description:    input.Description,
		Status:         entity.StoreStatusPendingApproval,
		CommissionRate: 0.05,
		Theme: entity.StoreTheme{
			PrimaryColor: primaryColor,
			FontFamily:   "Inter",
			BorderRadius: "1rem",
		},
	}

	if err := uc.storeRepo.Create(ctx, store); err != nil {
		return nil, err
	}

	uc.sessions.SetActiveStore(vendorID, store)
	logger.Info("Store onboarded: id=%s vendor=%s slug=%s", store.ID, vendorID, store.Slug)
	return store, nil
}

type Storefront struct {
	Store    *entity.Store     `json:"store"`
	Products []*entity.Product `json:"products"`
}

// GetStorefront is the public view of a store: branding plus catalog.
func (uc *StoreUseCase) GetStorefront(ctx context.Context, slug string) (*Storefront, error) {
	store, err := uc.storeRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	products, err := uc.productRepo.ListByStoreID(ctx, store.ID)
	if err != nil {
		return nil, err
	}

	return &Storefront{Store: store, Products: products}, nil
}
