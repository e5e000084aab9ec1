package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vendio/internal/adapter/repository"
	"vendio/internal/domain/entity"
)

type stubDescriber struct {
	description string
	err         error
	calls       int
}

func (s *stubDescriber) GenerateDescription(ctx context.Context, productName string) (string, error) {
	s.calls++
	return s.description, s.err
}

func newCatalogUseCaseForTest(describer *stubDescriber) *CatalogUseCase {
	productRepo := repository.NewMemoryProductRepository(repository.SeedProducts())
	slotRepo := repository.NewMemoryBookingSlotRepository(repository.SeedBookingSlots())
	return NewCatalogUseCase(productRepo, slotRepo, describer)
}

func TestAddProductFallsBackToPlaceholderName(t *testing.T) {
	uc := newCatalogUseCaseForTest(&stubDescriber{})

	product, err := uc.AddProduct(context.Background(), "s1", AddProductInput{
		Name: "",
		Type: entity.ProductTypePhysical,
	})
	require.NoError(t, err)
	assert.Equal(t, "Untitled Product", product.Name)
	// The image seed comes from the name as entered, not the fallback.
	assert.Equal(t, "https://picsum.photos/seed//200/200", product.ImageURL)
}

func TestAddProductImageSeedUsesRawName(t *testing.T) {
	uc := newCatalogUseCaseForTest(&stubDescriber{})

	product, err := uc.AddProduct(context.Background(), "s1", AddProductInput{
		Name: "Camping Tent",
		Type: entity.ProductTypePhysical,
	})
	require.NoError(t, err)
	assert.Equal(t, "https://picsum.photos/seed/Camping Tent/200/200", product.ImageURL)
}

func TestAddProductPrependsToCatalog(t *testing.T) {
	uc := newCatalogUseCaseForTest(&stubDescriber{})
	ctx := context.Background()

	product, err := uc.AddProduct(ctx, "s1", AddProductInput{
		Name: "Headlamp",
		Type: entity.ProductTypePhysical,
	})
	require.NoError(t, err)

	products, err := uc.ListProducts(ctx, "s1", "")
	require.NoError(t, err)
	require.NotEmpty(t, products)
	assert.Equal(t, product.ID, products[0].ID)
}

func TestAddProductGeneratedDescription(t *testing.T) {
	describer := &stubDescriber{description: "A tent you can trust."}
	uc := newCatalogUseCaseForTest(describer)

	product, err := uc.AddProduct(context.Background(), "s1", AddProductInput{
		Name:                "Camping Tent",
		Type:                entity.ProductTypePhysical,
		GenerateDescription: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "A tent you can trust.", product.Description)
	assert.Equal(t, 1, describer.calls)
}

func TestAddProductDescriptionFailureIsSilent(t *testing.T) {
	describer := &stubDescriber{err: fmt.Errorf("upstream unavailable")}
	uc := newCatalogUseCaseForTest(describer)

	product, err := uc.AddProduct(context.Background(), "s1", AddProductInput{
		Name:                "Camping Tent",
		Type:                entity.ProductTypePhysical,
		GenerateDescription: true,
	})
	require.NoError(t, err)
	assert.Empty(t, product.Description)
}

func TestAddProductExplicitDescriptionSkipsGeneration(t *testing.T) {
	describer := &stubDescriber{description: "generated"}
	uc := newCatalogUseCaseForTest(describer)

	product, err := uc.AddProduct(context.Background(), "s1", AddProductInput{
		Name:                "Camping Tent",
		Description:         "Hand written",
		Type:                entity.ProductTypePhysical,
		GenerateDescription: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "Hand written", product.Description)
	assert.Zero(t, describer.calls)
}

func TestListProductsSearch(t *testing.T) {
	uc := newCatalogUseCaseForTest(&stubDescriber{})

	products, err := uc.ListProducts(context.Background(), "s1", "tent")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "p1", products[0].ID)
}

func TestAddBookingSlotIgnoresIncompleteInput(t *testing.T) {
	uc := newCatalogUseCaseForTest(&stubDescriber{})
	ctx := context.Background()

	before, err := uc.ListBookingSlots(ctx, "p3")
	require.NoError(t, err)

	for _, in := range []struct{ date, start, end string }{
		{"", "09:00", "10:00"},
		{"2025-07-01", "", "10:00"},
		{"2025-07-01", "09:00", ""},
	} {
		slot, err := uc.AddBookingSlot(ctx, "p3", in.date, in.start, in.end)
		assert.NoError(t, err)
		assert.Nil(t, slot)
	}

	after, err := uc.ListBookingSlots(ctx, "p3")
	require.NoError(t, err)
	assert.Equal(t, len(before), len(after))
}

func TestAddBookingSlotRejectsNonBookingProduct(t *testing.T) {
	uc := newCatalogUseCaseForTest(&stubDescriber{})

	_, err := uc.AddBookingSlot(context.Background(), "p1", "2025-07-01", "09:00", "10:00")
	require.Error(t, err)
}

func TestAddBookingSlotKeepsScheduleSorted(t *testing.T) {
	uc := newCatalogUseCaseForTest(&stubDescriber{})
	ctx := context.Background()

	slot, err := uc.AddBookingSlot(ctx, "p3", "2025-06-12", "08:00", "09:00")
	require.NoError(t, err)
	require.NotNil(t, slot)
	assert.Equal(t, "2025-06-12T08:00", slot.StartTime)

	slots, err := uc.ListBookingSlots(ctx, "p3")
	require.NoError(t, err)
	require.NotEmpty(t, slots)
	assert.Equal(t, slot.ID, slots[0].ID)
	for i := 1; i < len(slots); i++ {
		assert.LessOrEqual(t, slots[i-1].StartTime, slots[i].StartTime)
	}
}

func TestRemoveBookingSlot(t *testing.T) {
	uc := newCatalogUseCaseForTest(&stubDescriber{})
	ctx := context.Background()

	before, err := uc.ListBookingSlots(ctx, "p3")
	require.NoError(t, err)

	require.NoError(t, uc.RemoveBookingSlot(ctx, "slot-2"))

	after, err := uc.ListBookingSlots(ctx, "p3")
	require.NoError(t, err)
	require.Len(t, after, len(before)-1)

	// The surviving slots keep their relative order.
	survivors := make([]string, 0, len(before)-1)
	for _, s := range before {
		if s.ID != "slot-2" {
			survivors = append(survivors, s.ID)
		}
	}
	for i, s := range after {
		assert.Equal(t, survivors[i], s.ID)
	}
}

func TestRemoveBookingSlotUnknownIDIsNoOp(t *testing.T) {
	uc := newCatalogUseCaseForTest(&stubDescriber{})
	ctx := context.Background()

	before, err := uc.ListBookingSlots(ctx, "p3")
	require.NoError(t, err)

	require.NoError(t, uc.RemoveBookingSlot(ctx, "slot-999"))

	after, err := uc.ListBookingSlots(ctx, "p3")
	require.NoError(t, err)
	require.Len(t, after, len(before))
	for i, s := range after {
		assert.Equal(t, before[i].ID, s.ID)
	}
}
