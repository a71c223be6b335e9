package service

import (
	"context"
	"errors"
	"testing"

	"go-inventory-tracker/internal/model"
	"go-inventory-tracker/internal/repository"
	"go-inventory-tracker/internal/view"

	"golang.org/x/text/language"
)

func seededDashboard(t *testing.T) (DashboardService, *repository.MemoryRepo) {
	t.Helper()
	repo := repository.NewMemoryRepo()
	inv := NewInventoryService(repo, nil)
	ctx := context.Background()
	for _, d := range []*model.ProductDraft{
		draft("Teclado X", "Teclados", 3, 150.5),
		draft("Mouse Y", "Periféricos", 0, 20),
		draft("Monitor Z", "Periféricos", 40, 900),
	} {
		if _, err := inv.Add(ctx, d); err != nil {
			t.Fatalf("Add returned error: %v", err)
		}
	}
	return NewDashboardService(inv, view.NewSorter(language.BrazilianPortuguese)), repo
}

func TestDashboardStats(t *testing.T) {
	svc, _ := seededDashboard(t)

	stats, err := svc.GetStats(context.Background())
	if err != nil {
		t.Fatalf("GetStats returned error: %v", err)
	}
	want := model.Stats{TotalItems: 43, TotalValue: 451.5 + 36000, LowStockCount: 1}
	if stats != want {
		t.Errorf("got %+v, want %+v", stats, want)
	}
}

func TestDashboardCategories(t *testing.T) {
	svc, _ := seededDashboard(t)

	cats, err := svc.GetCategories(context.Background())
	if err != nil {
		t.Fatalf("GetCategories returned error: %v", err)
	}
	// Newest first in the store, so Periféricos is seen first.
	want := []string{model.AllCategories, "Periféricos", "Teclados"}
	if len(cats) != len(want) {
		t.Fatalf("got %v, want %v", cats, want)
	}
	for i := range want {
		if cats[i] != want[i] {
			t.Errorf("got %v, want %v", cats, want)
			break
		}
	}
}

func TestDashboardInventory(t *testing.T) {
	svc, _ := seededDashboard(t)

	inv, err := svc.GetInventory(context.Background(), view.Filter{Category: "Periféricos"})
	if err != nil {
		t.Fatalf("GetInventory returned error: %v", err)
	}
	if inv.Stats.TotalItems != 43 {
		t.Errorf("stats must cover the whole collection, got %+v", inv.Stats)
	}
	if len(inv.Categories) != 3 {
		t.Errorf("categories must cover the whole collection, got %v", inv.Categories)
	}
	if len(inv.Products) != 2 {
		t.Fatalf("expected 2 products, got %+v", inv.Products)
	}
	if inv.Products[0].Name != "Monitor Z" || inv.Products[1].Name != "Mouse Y" {
		t.Errorf("expected name order, got %s, %s", inv.Products[0].Name, inv.Products[1].Name)
	}
	if inv.Products[1].Status != model.StockOut || inv.Products[0].Status != model.StockNormal {
		t.Errorf("unexpected statuses %s, %s", inv.Products[0].Status, inv.Products[1].Status)
	}
	if inv.Products[0].Total != 36000 {
		t.Errorf("unexpected total %v", inv.Products[0].Total)
	}
}

func TestDashboardInventoryDefaultsToAllCategories(t *testing.T) {
	svc, _ := seededDashboard(t)

	inv, err := svc.GetInventory(context.Background(), view.Filter{Search: "TEC"})
	if err != nil {
		t.Fatalf("GetInventory returned error: %v", err)
	}
	if inv.Filter.Category != model.AllCategories {
		t.Errorf("expected %q, got %q", model.AllCategories, inv.Filter.Category)
	}
	if len(inv.Products) != 1 || inv.Products[0].Name != "Teclado X" {
		t.Errorf("unexpected products %+v", inv.Products)
	}
}

func TestDashboardStoreFailure(t *testing.T) {
	svc, repo := seededDashboard(t)
	repo.FailWith(errors.New("down"))

	if _, err := svc.GetInventory(context.Background(), view.Filter{}); !errors.Is(err, repository.ErrStoreUnavailable) {
		t.Errorf("expected ErrStoreUnavailable, got %v", err)
	}
}
