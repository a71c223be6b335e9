package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go-inventory-tracker/internal/model"
	"go-inventory-tracker/internal/repository"
	"go-inventory-tracker/pkg/validator"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultRecentLimit is the size of the "recently added" list.
const DefaultRecentLimit = 5

const maxIDAttempts = 3

var (
	ErrInvalidProduct = errors.New("invalid product")
	ErrIDExhausted    = errors.New("could not generate a unique product id")
)

// ValidationError lists the fields that failed validation. It matches
// ErrInvalidProduct with errors.Is.
type ValidationError struct {
	Fields []*validator.ErrorResponse
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "Validation failed"
	}
	first := e.Fields[0]
	return fmt.Sprintf("Validation failed: Field '%s' failed on tag '%s'", first.FailedField, first.Tag)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidProduct
}

func validate(data interface{}) error {
	if errs := validator.ValidateStruct(data); len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	return nil
}

// EventPublisher receives a change event after every successful mutation.
type EventPublisher interface {
	Publish(event model.ChangeEvent)
}

type InventoryService interface {
	List(ctx context.Context) ([]model.Product, error)
	Add(ctx context.Context, draft *model.ProductDraft) (*model.Product, error)
	Update(ctx context.Context, product model.Product) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	Recent(ctx context.Context, limit int) ([]model.Product, error)
	AdjustStock(ctx context.Context, id string, delta int) (*model.Product, bool, error)
}

type inventoryService struct {
	store  repository.ProductStore
	events EventPublisher
	now    func() time.Time
	newID  func() string

	// Serializes the load-modify-save cycle of mutations.
	mu sync.Mutex
}

type Option func(*inventoryService)

func WithClock(now func() time.Time) Option {
	return func(s *inventoryService) { s.now = now }
}

func WithIDGenerator(newID func() string) Option {
	return func(s *inventoryService) { s.newID = newID }
}

// NewInventoryService wires the service to its store. events may be nil.
func NewInventoryService(store repository.ProductStore, events EventPublisher, opts ...Option) InventoryService {
	s := &inventoryService{
		store:  store,
		events: events,
		now:    func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *inventoryService) List(ctx context.Context) ([]model.Product, error) {
	products, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

func (s *inventoryService) Recent(ctx context.Context, limit int) ([]model.Product, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	products, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(products) > limit {
		products = products[:limit]
	}
	return products, nil
}

func (s *inventoryService) Add(ctx context.Context, draft *model.ProductDraft) (*model.Product, error) {
	if draft == nil {
		return nil, fmt.Errorf("%w: missing product data", ErrInvalidProduct)
	}
	d := *draft
	d.Name = strings.TrimSpace(d.Name)
	d.Category = strings.TrimSpace(d.Category)
	if err := validate(&d); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("add product: %w", err)
	}

	id, err := s.uniqueID(products)
	if err != nil {
		return nil, err
	}
	now := s.now()
	product := model.Product{
		ID:           id,
		Name:         d.Name,
		Category:     d.Category,
		Quantity:     *d.Quantity,
		UnitPrice:    *d.UnitPrice,
		CreatedAt:    now,
		LastMovement: now,
	}

	// Newest first.
	next := make([]model.Product, 0, len(products)+1)
	next = append(next, product)
	next = append(next, products...)
	if err := s.store.Save(ctx, next); err != nil {
		return nil, fmt.Errorf("add product: %w", err)
	}

	zap.L().Info("product created", zap.String("id", product.ID), zap.String("name", product.Name))
	s.publish(model.ActionProductCreated, &product)
	return &product, nil
}

// Update replaces the stored record with the same id. An unknown id is not an
// error: nothing is validated or written and false is returned. CreatedAt
// always comes from the stored record; a zero LastMovement keeps the stored
// value.
func (s *inventoryService) Update(ctx context.Context, product model.Product) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.store.Load(ctx)
	if err != nil {
		return false, fmt.Errorf("update product: %w", err)
	}
	idx := indexOf(products, product.ID)
	if product.ID == "" || idx < 0 {
		zap.L().Debug("update of unknown product ignored", zap.String("id", product.ID))
		return false, nil
	}

	product.Name = strings.TrimSpace(product.Name)
	product.Category = strings.TrimSpace(product.Category)
	if err := validate(&product); err != nil {
		return false, err
	}

	stored := products[idx]
	product.CreatedAt = stored.CreatedAt
	if product.LastMovement.IsZero() {
		product.LastMovement = stored.LastMovement
	}
	products[idx] = product

	if err := s.store.Save(ctx, products); err != nil {
		return false, fmt.Errorf("update product: %w", err)
	}

	zap.L().Info("product updated", zap.String("id", product.ID))
	s.publish(model.ActionProductUpdated, &product)
	return true, nil
}

// AdjustStock moves the quantity by delta, clamped at zero, and stamps
// LastMovement.
func (s *inventoryService) AdjustStock(ctx context.Context, id string, delta int) (*model.Product, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.store.Load(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("adjust stock: %w", err)
	}
	idx := indexOf(products, id)
	if idx < 0 {
		return nil, false, nil
	}

	old := products[idx].Quantity
	product := products[idx].WithStockDelta(delta, s.now())
	products[idx] = product

	if err := s.store.Save(ctx, products); err != nil {
		return nil, false, fmt.Errorf("adjust stock: %w", err)
	}

	zap.L().Info("stock adjusted",
		zap.String("id", id),
		zap.Int("delta", delta),
		zap.Int("old_quantity", old),
		zap.Int("new_quantity", product.Quantity))
	s.publish(model.ActionStockAdjusted, &product)
	return &product, true, nil
}

// Delete removes the record with id. Removing an unknown id returns false and
// writes nothing.
func (s *inventoryService) Delete(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.store.Load(ctx)
	if err != nil {
		return false, fmt.Errorf("delete product: %w", err)
	}
	idx := indexOf(products, id)
	if idx < 0 {
		return false, nil
	}

	removed := products[idx]
	next := make([]model.Product, 0, len(products)-1)
	next = append(next, products[:idx]...)
	next = append(next, products[idx+1:]...)
	if err := s.store.Save(ctx, next); err != nil {
		return false, fmt.Errorf("delete product: %w", err)
	}

	zap.L().Info("product deleted", zap.String("id", id), zap.String("name", removed.Name))
	s.publish(model.ActionProductDeleted, &removed)
	return true, nil
}

func (s *inventoryService) uniqueID(products []model.Product) (string, error) {
	for i := 0; i < maxIDAttempts; i++ {
		id := s.newID()
		if id != "" && indexOf(products, id) < 0 {
			return id, nil
		}
	}
	return "", ErrIDExhausted
}

func (s *inventoryService) publish(action string, p *model.Product) {
	if s.events == nil {
		return
	}
	s.events.Publish(model.NewChangeEvent(action, p))
}

func indexOf(products []model.Product, id string) int {
	for i := range products {
		if products[i].ID == id {
			return i
		}
	}
	return -1
}
