package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vendio/internal/adapter/repository"
)

func newAdminUseCaseForTest() *AdminUseCase {
	storeRepo := repository.NewMemoryStoreRepository(repository.SeedStores())
	disputeRepo := repository.NewMemoryDisputeRepository(repository.SeedDisputes())
	return NewAdminUseCase(storeRepo, disputeRepo)
}

func TestListStoresCarriesMetrics(t *testing.T) {
	uc := newAdminUseCaseForTest()

	summaries, err := uc.ListStores(context.Background())
	require.NoError(t, err)
	require.Len(t, summaries, 5)

	byName := make(map[string]*StoreSummary)
	for _, s := range summaries {
		byName[s.Name] = s
	}

	riverside := byName["Riverside Gear"]
	require.NotNil(t, riverside)
	assert.Equal(t, "Alex Rivera", riverside.Owner)
	assert.Equal(t, "$12,845", riverside.Volume)
	assert.Equal(t, "$642", riverside.Commission)
}

func TestGetPlatformStats(t *testing.T) {
	uc := newAdminUseCaseForTest()

	stats, err := uc.GetPlatformStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 5, stats.TotalStores)
	assert.Equal(t, 3, stats.ActiveStores)
	assert.Equal(t, 1, stats.PendingStores)
	assert.Equal(t, 1, stats.SuspendedStores)
	assert.Equal(t, 3, stats.OpenDisputes)
}

func TestListDisputes(t *testing.T) {
	uc := newAdminUseCaseForTest()

	disputes, err := uc.ListDisputes(context.Background())
	require.NoError(t, err)
	assert.Len(t, disputes, 3)
}
