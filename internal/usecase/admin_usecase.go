package usecase

import (
	"context"

	"vendio/internal/domain/entity"
	"vendio/internal/domain/repository"
)

// AdminUseCase backs the platform admin hub. Everything here is
// display-only: in particular there is deliberately no approve/reject
// transition for pending stores (see DESIGN.md).
type AdminUseCase struct {
	storeRepo   repository.StoreRepository
	disputeRepo repository.DisputeRepository
}

func NewAdminUseCase(storeRepo repository.StoreRepository, disputeRepo repository.DisputeRepository) *AdminUseCase {
	return &AdminUseCase{
		storeRepo:   storeRepo,
		disputeRepo: disputeRepo,
	}
}

// StoreSummary is one row of the admin vendor table.
type StoreSummary struct {
	ID         string             `json:"id"`
	Name       string             `json:"name"`
	Owner      string             `json:"owner"`
	Status     entity.StoreStatus `json:"status"`
	Volume     string             `json:"volume"`
	Commission string             `json:"commission"`
}

// Demo platform metrics keyed by store slug; a real implementation would
// aggregate settled transactions.
var storeMetrics = map[string]struct {
	owner      string
	volume     string
	commission string
}{
	"riverside":       {owner: "Alex Rivera", volume: "$12,845", commission: "$642"},
	"artisan-breads":  {owner: "Jane Doe", volume: "$12,400", commission: "$620"},
	"yoga-with-mark":  {owner: "Mark Smith", volume: "$0", commission: "$0"},
	"digital-planners": {owner: "Sarah Chen", volume: "$45,200", commission: "$2,260"},
	"crafty-creations": {owner: "Tom Hardy", volume: "$1,200", commission: "$60"},
}

func (uc *AdminUseCase) ListStores(ctx context.Context) ([]*StoreSummary, error) {
	stores, err := uc.storeRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]*StoreSummary, 0, len(stores))
	for _, store := range stores {
		summary := &StoreSummary{
			ID:     store.ID,
			Name:   store.Name,
			Status: store.Status,
		}
		if metrics, ok := storeMetrics[store.Slug]; ok {
			summary.Owner = metrics.owner
			summary.Volume = metrics.volume
			summary.Commission = metrics.commission
		} else {
			summary.Volume = "$0"
			summary.Commission = "$0"
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func (uc *AdminUseCase) ListDisputes(ctx context.Context) ([]*entity.Dispute, error) {
	return uc.disputeRepo.List(ctx)
}

// PlatformStats is the admin overview header.
type PlatformStats struct {
	TotalStores     int `json:"total_stores"`
	ActiveStores    int `json:"active_stores"`
	PendingStores   int `json:"pending_stores"`
	SuspendedStores int `json:"suspended_stores"`
	OpenDisputes    int `json:"open_disputes"`
}

func (uc *AdminUseCase) GetPlatformStats(ctx context.Context) (*PlatformStats, error) {
	stores, err := uc.storeRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	disputes, err := uc.disputeRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	stats := &PlatformStats{
		TotalStores:  len(stores),
		OpenDisputes: len(disputes),
	}
	for _, store := range stores {
		switch store.Status {
		case entity.StoreStatusActive:
			stats.ActiveStores++
		case entity.StoreStatusPendingApproval:
			stats.PendingStores++
		case entity.StoreStatusSuspended:
			stats.SuspendedStores++
		}
	}
	return stats, nil
}
