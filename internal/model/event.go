package model

// Change actions broadcast after a successful mutation.
const (
	ActionProductCreated = "product_created"
	ActionProductUpdated = "product_updated"
	ActionProductDeleted = "product_deleted"
	ActionStockAdjusted  = "stock_adjusted"
)

// ChangeEvent tells listening clients that the collection changed and
// should be read again.
type ChangeEvent struct {
	Type    string   `json:"type"`
	Action  string   `json:"action"`
	Product *Product `json:"product,omitempty"`
}

func NewChangeEvent(action string, p *Product) ChangeEvent {
	return ChangeEvent{Type: "stock_update", Action: action, Product: p}
}
