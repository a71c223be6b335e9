package model

import "time"

// Product is the only persisted entity. JSON names are the persisted field names.
type Product struct {
	ID           string    `json:"id" validate:"required"`
	Name         string    `json:"name" validate:"required"`
	Category     string    `json:"category" validate:"required"`
	Quantity     int       `json:"quantity" validate:"gte=0"`
	UnitPrice    float64   `json:"unitPrice" validate:"gte=0"`
	CreatedAt    time.Time `json:"createdAt"`
	LastMovement time.Time `json:"lastMovement"`
}

// ProductDraft is the payload of the registration form.
// Quantity and UnitPrice are pointers so a missing value is told apart from zero.
type ProductDraft struct {
	Name      string   `json:"name" validate:"required"`
	Category  string   `json:"category" validate:"required"`
	Quantity  *int     `json:"quantity" validate:"required,gte=0"`
	UnitPrice *float64 `json:"unitPrice" validate:"required,gte=0"`
}

// Total returns quantity * unit price.
func (p Product) Total() float64 {
	return float64(p.Quantity) * p.UnitPrice
}

// WithStockDelta returns a copy with the quantity moved by delta, never below zero,
// and LastMovement set to at.
func (p Product) WithStockDelta(delta int, at time.Time) Product {
	p.Quantity += delta
	if p.Quantity < 0 {
		p.Quantity = 0
	}
	p.LastMovement = at
	return p
}
