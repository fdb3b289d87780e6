package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sync"

	"ayushyaa-be/internal/kvstore"
	"ayushyaa-be/internal/logger"
	"ayushyaa-be/internal/product"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Ledger is the ordered list of cart lines for one client. Every mutation
// writes the whole ledger to the local store before observers are told.
type Ledger struct {
	mu       sync.Mutex
	store    kvstore.Store
	clientID string
	items    []Item

	observers  []registration
	nextHandle int
}

type registration struct {
	handle int
	fn     Observer
}

// Load rehydrates the ledger for clientID; a missing entry is an empty cart.
func Load(ctx context.Context, store kvstore.Store, clientID string) (*Ledger, error) {
	if clientID == "" {
		return nil, ErrMissingClientID
	}

	l := &Ledger{store: store, clientID: clientID, items: []Item{}}

	raw, err := store.Get(ctx, kvstore.NamespaceCart, clientID)
	if errors.Is(err, kvstore.ErrNotFound) {
		return l, nil
	}
	if err != nil {
		logger.FromCtx(ctx).Error("cart load failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrFailedLoadCart, err)
	}

	if err := json.Unmarshal(raw, &l.items); err != nil {
		logger.FromCtx(ctx).Error("cart decode failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrFailedLoadCart, err)
	}
	if l.items == nil {
		l.items = []Item{}
	}
	return l, nil
}

// Add merges qty into an existing (product, variant) line or appends a new one.
func (l *Ledger) Add(ctx context.Context, p product.Product, v product.Variant, qty int) error {
	if qty < 1 {
		return ErrInvalidQuantity
	}
	if p.ID == "" || v.ID == "" {
		return ErrInvalidItem
	}

	return l.mutate(ctx, "Add", func(items []Item) ([]Item, error) {
		_, idx, found := lo.FindIndexOf(items, func(i Item) bool {
			return i.matches(p.ID, v.ID)
		})
		if found {
			items[idx].Quantity += qty
			return items, nil
		}
		return append(items, Item{Product: p, Variant: v, Quantity: qty}), nil
	})
}

// UpdateQuantity sets the quantity of a line; qty <= 0 removes it.
func (l *Ledger) UpdateQuantity(ctx context.Context, productID, variantID string, qty int) error {
	if qty <= 0 {
		return l.Remove(ctx, productID, variantID)
	}

	return l.mutate(ctx, "UpdateQuantity", func(items []Item) ([]Item, error) {
		_, idx, found := lo.FindIndexOf(items, func(i Item) bool {
			return i.matches(productID, variantID)
		})
		if !found {
			return nil, ErrCartItemNotFound
		}
		items[idx].Quantity = qty
		return items, nil
	})
}

func (l *Ledger) Remove(ctx context.Context, productID, variantID string) error {
	return l.mutate(ctx, "Remove", func(items []Item) ([]Item, error) {
		return lo.Reject(items, func(i Item, _ int) bool {
			return i.matches(productID, variantID)
		}), nil
	})
}

func (l *Ledger) Clear(ctx context.Context) error {
	return l.mutate(ctx, "Clear", func([]Item) ([]Item, error) {
		return []Item{}, nil
	})
}

// Count is the sum of quantities across all lines.
func (l *Ledger) Count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return count(l.items)
}

// Total is the sum of variant price times quantity, rounded to 2 places.
func (l *Ledger) Total() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return total(l.items)
}

// Items returns a copy of the lines in insertion order.
func (l *Ledger) Items() []Item {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.items)
}

func (l *Ledger) Snapshot() Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	return snapshot(l.items)
}

// Subscribe registers fn for change notifications and returns its cancel func.
func (l *Ledger) Subscribe(fn Observer) func() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.nextHandle++
	handle := l.nextHandle
	l.observers = append(l.observers, registration{handle: handle, fn: fn})

	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		l.observers = lo.Reject(l.observers, func(r registration, _ int) bool {
			return r.handle == handle
		})
	}
}

// mutate applies change to a copy, persists it, then swaps it in and notifies.
// On any error the in-memory ledger is untouched.
func (l *Ledger) mutate(ctx context.Context, method string, change func([]Item) ([]Item, error)) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "cart"),
		zap.String("method", method),
	)

	l.mu.Lock()
	next, err := change(slices.Clone(l.items))
	if err != nil {
		l.mu.Unlock()
		return err
	}

	raw, err := json.Marshal(next)
	if err != nil {
		l.mu.Unlock()
		return fmt.Errorf("%w: %v", ErrFailedPersistCart, err)
	}
	if err := l.store.Put(ctx, kvstore.NamespaceCart, l.clientID, raw); err != nil {
		l.mu.Unlock()
		log.Error("cart persist failed", zap.Error(err))
		return fmt.Errorf("%w: %v", ErrFailedPersistCart, err)
	}

	l.items = next
	snap := snapshot(next)
	observers := slices.Clone(l.observers)
	l.mu.Unlock()

	log.Debug("cart updated", zap.Int("count", snap.Count), zap.Float64("total", snap.Total))
	for _, o := range observers {
		o.fn(snap)
	}
	return nil
}

func snapshot(items []Item) Snapshot {
	return Snapshot{
		Items: slices.Clone(items),
		Count: count(items),
		Total: total(items),
	}
}

func count(items []Item) int {
	return lo.SumBy(items, func(i Item) int { return i.Quantity })
}

func total(items []Item) float64 {
	sum := decimal.Zero
	for _, i := range items {
		sum = sum.Add(LineTotal(i))
	}
	return sum.Round(2).InexactFloat64()
}

// LineTotal is price * quantity for one line, exact in decimal.
func LineTotal(i Item) decimal.Decimal {
	return decimal.NewFromFloat(i.Variant.Price).Mul(decimal.NewFromInt(int64(i.Quantity)))
}
