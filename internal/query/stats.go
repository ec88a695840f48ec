package query

import "github.com/abertrand/vitrine/internal/models"

// UserStats aggregates a user's listings.
type UserStats struct {
	TotalCount    int
	ActiveCount   int
	InactiveCount int
	// AveragePrice is 0 when the user has no listings.
	AveragePrice float64
	// TotalValue is the sum of prices across the user's listings.
	TotalValue float64
	// Categories are the distinct categories represented, in first-seen order.
	Categories []string
}

// ComputeStats aggregates the products owned by u (see OwnedBy).
func ComputeStats(products []models.Product, u *models.SessionUser) UserStats {
	var stats UserStats
	seen := make(map[string]struct{})

	for _, p := range products {
		if !OwnedBy(p, u) {
			continue
		}

		stats.TotalCount++
		if p.IsActive {
			stats.ActiveCount++
		} else {
			stats.InactiveCount++
		}
		stats.TotalValue += p.Price

		if _, ok := seen[p.Category]; !ok {
			seen[p.Category] = struct{}{}
			stats.Categories = append(stats.Categories, p.Category)
		}
	}

	if stats.TotalCount > 0 {
		stats.AveragePrice = stats.TotalValue / float64(stats.TotalCount)
	}
	return stats
}
