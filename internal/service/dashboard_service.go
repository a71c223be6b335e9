package service

import (
	"context"

	"go-inventory-tracker/internal/model"
	"go-inventory-tracker/internal/view"
)

// ProductView is a product as shown in the inventory listing.
type ProductView struct {
	model.Product
	Status model.StockStatus `json:"status"`
	Total  float64           `json:"total"`
}

// InventoryView is everything the inventory screen renders in one read.
type InventoryView struct {
	Stats      model.Stats   `json:"stats"`
	Categories []string      `json:"categories"`
	Filter     view.Filter   `json:"filter"`
	Products   []ProductView `json:"products"`
}

type DashboardService interface {
	GetStats(ctx context.Context) (model.Stats, error)
	GetCategories(ctx context.Context) ([]string, error)
	GetInventory(ctx context.Context, filter view.Filter) (*InventoryView, error)
}

type dashboardService struct {
	inventory InventoryService
	sorter    view.Sorter
}

func NewDashboardService(inventory InventoryService, sorter view.Sorter) DashboardService {
	return &dashboardService{inventory: inventory, sorter: sorter}
}

func (s *dashboardService) GetStats(ctx context.Context) (model.Stats, error) {
	products, err := s.inventory.List(ctx)
	if err != nil {
		return model.Stats{}, err
	}
	return view.ComputeStats(products), nil
}

func (s *dashboardService) GetCategories(ctx context.Context) ([]string, error) {
	products, err := s.inventory.List(ctx)
	if err != nil {
		return nil, err
	}
	return view.Categories(products), nil
}

// GetInventory computes stats and facets over the full collection and the
// listing over the filtered one, from a single load.
func (s *dashboardService) GetInventory(ctx context.Context, filter view.Filter) (*InventoryView, error) {
	products, err := s.inventory.List(ctx)
	if err != nil {
		return nil, err
	}
	if filter.Category == "" {
		filter.Category = model.AllCategories
	}

	filtered := view.FilterAndSort(products, filter, s.sorter)
	rows := make([]ProductView, 0, len(filtered))
	for _, p := range filtered {
		rows = append(rows, ProductView{Product: p, Status: view.Classify(p.Quantity), Total: p.Total()})
	}

	return &InventoryView{
		Stats:      view.ComputeStats(products),
		Categories: view.Categories(products),
		Filter:     filter,
		Products:   rows,
	}, nil
}
