package services

import (
	"context"
	"time"

	"github.com/THORzero9/FWR-sub000/repository"
)

// expiringSoonWindow is how close to expiry an item counts as "expiring soon".
const expiringSoonWindow = 3 * 24 * time.Hour

// WasteStats is the aggregate shown on the statistics page. The weight and
// money figures are sample estimates derived from item counts, not measured
// values.
type WasteStats struct {
	TotalItems      int `json:"total_items"`
	ExpiringSoon    int `json:"expiring_soon"`
	Expired         int `json:"expired"`
	ItemsSaved      int `json:"items_saved"`
	WasteSavedGrams int `json:"waste_saved_grams"`
	MoneySavedCents int `json:"money_saved_cents"`
}

// StatsService derives per-user waste-reduction numbers from the caller's
// inventory.
type StatsService struct {
	items repository.FoodItemRepository
}

func NewStatsService(items repository.FoodItemRepository) *StatsService {
	return &StatsService{items: items}
}

func (s *StatsService) ForUser(ctx context.Context, ownerID uint) (*WasteStats, error) {
	items, err := s.items.List(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	stats := &WasteStats{TotalItems: len(items)}
	for _, item := range items {
		switch {
		case item.ExpiryDate.Before(now):
			stats.Expired++
		case item.ExpiryDate.Before(now.Add(expiringSoonWindow)):
			stats.ExpiringSoon++
		}
	}
	stats.ItemsSaved = stats.TotalItems - stats.Expired
	// Sample estimates: 250g and $1.20 of food saved per non-expired item.
	stats.WasteSavedGrams = stats.ItemsSaved * 250
	stats.MoneySavedCents = stats.ItemsSaved * 120
	return stats, nil
}
