// Package view holds the pure functions computed over a product collection
// for display: totals, category facets, filtering, stock classification and
// export rendering. Nothing here touches the store.
package view

import "go-inventory-tracker/internal/model"

func ComputeStats(products []model.Product) model.Stats {
	var stats model.Stats
	for _, p := range products {
		stats.TotalItems += p.Quantity
		stats.TotalValue += p.Total()
		if Classify(p.Quantity) == model.StockLow {
			stats.LowStockCount++
		}
	}
	return stats
}

// Classify maps a quantity to exactly one of the three stock states.
func Classify(quantity int) model.StockStatus {
	switch {
	case quantity <= 0:
		return model.StockOut
	case quantity < model.LowStockThreshold:
		return model.StockLow
	default:
		return model.StockNormal
	}
}

// Categories returns the facet list: the catch-all first, then each distinct
// category in the order it first appears.
func Categories(products []model.Product) []string {
	seen := make(map[string]struct{}, len(products))
	out := []string{model.AllCategories}
	for _, p := range products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}
