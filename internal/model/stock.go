package model

// LowStockThreshold is the exclusive upper bound of the low stock band.
const LowStockThreshold = 10

// AllCategories is the category facet that disables category filtering.
const AllCategories = "Todas"

type StockStatus string

const (
	StockOut    StockStatus = "out_of_stock"
	StockLow    StockStatus = "low_stock"
	StockNormal StockStatus = "normal"
)

// Stats holds the totals shown above the inventory listing.
type Stats struct {
	TotalItems    int     `json:"totalItems"`
	TotalValue    float64 `json:"totalValue"`
	LowStockCount int     `json:"lowStockCount"`
}
