package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vendio/internal/adapter/repository"
	"vendio/internal/domain/entity"
	"vendio/pkg/errors"
)

func newStoreUseCaseForTest() (*StoreUseCase, *SessionRegistry) {
	sessions := NewSessionRegistry()
	storeRepo := repository.NewMemoryStoreRepository(repository.SeedStores())
	productRepo := repository.NewMemoryProductRepository(repository.SeedProducts())
	slotRepo := repository.NewMemoryBookingSlotRepository(repository.SeedBookingSlots())
	return NewStoreUseCase(storeRepo, productRepo, slotRepo, sessions), sessions
}

func TestCompleteOnboardingDerivesSlug(t *testing.T) {
	uc, sessions := newStoreUseCaseForTest()
	sessions.Put("vendor-9", &Session{User: &entity.User{ID: "vendor-9", Role: entity.RoleVendor}})

	store, err := uc.CompleteOnboarding(context.Background(), "vendor-9", OnboardingInput{
		Name: "My   Cool Store",
	})
	require.NoError(t, err)

	assert.Equal(t, "my-cool-store", store.Slug)
	assert.Equal(t, entity.StoreStatusPendingApproval, store.Status)
	assert.Equal(t, 0.05, store.CommissionRate)
	assert.Equal(t, "#6366f1", store.Theme.PrimaryColor)
	assert.Equal(t, "Inter", store.Theme.FontFamily)
	assert.Equal(t, "1rem", store.Theme.BorderRadius)

	session, ok := sessions.Get("vendor-9")
	require.True(t, ok)
	require.NotNil(t, session.ActiveStore)
	assert.Equal(t, store.ID, session.ActiveStore.ID)
}

func TestCompleteOnboardingKeepsExplicitValues(t *testing.T) {
	uc, sessions := newStoreUseCaseForTest()
	sessions.Put("vendor-9", &Session{User: &entity.User{ID: "vendor-9", Role: entity.RoleVendor}})

	store, err := uc.CompleteOnboarding(context.Background(), "vendor-9", OnboardingInput{
		Name:         "Pottery Corner",
		Slug:         "pots",
		PrimaryColor: "#22c55e",
	})
	require.NoError(t, err)

	assert.Equal(t, "pots", store.Slug)
	assert.Equal(t, "#22c55e", store.Theme.PrimaryColor)
}

func TestCompleteOnboardingRejectsSecondStore(t *testing.T) {
	uc, _ := newStoreUseCaseForTest()

	_, err := uc.CompleteOnboarding(context.Background(), "u1", OnboardingInput{Name: "Another"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, "CONFLICT"))
}

func TestUpdateThemeAppliesNonEmptyFields(t *testing.T) {
	uc, sessions := newStoreUseCaseForTest()
	ctx := context.Background()

	base, err := uc.GetVendorStore(ctx, "u1")
	require.NoError(t, err)
	sessions.Put("u1", &Session{User: &entity.User{ID: "u1", Role: entity.RoleVendor}, ActiveStore: base})

	updated, err := uc.UpdateTheme(ctx, "u1", UpdateThemeInput{PrimaryColor: "#ef4444"})
	require.NoError(t, err)

	assert.Equal(t, "#ef4444", updated.Theme.PrimaryColor)
	assert.Equal(t, base.Theme.FontFamily, updated.Theme.FontFamily)
	assert.Equal(t, base.Theme.BorderRadius, updated.Theme.BorderRadius)

	session, _ := sessions.Get("u1")
	assert.Equal(t, "#ef4444", session.ActiveStore.Theme.PrimaryColor)
}

func TestGetStorefront(t *testing.T) {
	uc, _ := newStoreUseCaseForTest()

	storefront, err := uc.GetStorefront(context.Background(), "riverside")
	require.NoError(t, err)

	assert.Equal(t, "Riverside Gear", storefront.Store.Name)
	assert.Len(t, storefront.Products, 3)
}

func TestGetStorefrontUnknownSlug(t *testing.T) {
	uc, _ := newStoreUseCaseForTest()

	_, err := uc.GetStorefront(context.Background(), "nope")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}
