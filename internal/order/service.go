package order

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ayushyaa-be/internal/cart"
	"ayushyaa-be/internal/logger"
	"ayushyaa-be/internal/utils"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Ledger is the part of a cart ledger checkout needs.
type Ledger interface {
	Items() []cart.Item
	Clear(ctx context.Context) error
}

type Service interface {
	// Checkout turns the ledger into a pending order and empties the ledger.
	Checkout(ctx context.Context, ledger Ledger, c Customer) (*Order, error)
}

type service struct {
	now func() time.Time
}

func NewService() Service {
	return &service{now: time.Now}
}

func (s *service) Checkout(ctx context.Context, ledger Ledger, c Customer) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Checkout"),
	)
	log.Info("started")

	c = Customer{
		Name:            strings.TrimSpace(c.Name),
		Phone:           strings.TrimSpace(c.Phone),
		Email:           strings.TrimSpace(c.Email),
		ShippingAddress: strings.TrimSpace(c.ShippingAddress),
	}
	if c.Name == "" || c.Phone == "" || c.ShippingAddress == "" {
		return nil, ErrInvalidCustomer
	}

	items := ledger.Items()
	if len(items) == 0 {
		return nil, ErrCartEmpty
	}

	now := s.now().UTC()
	o := build(items, c, now)

	if err := ledger.Clear(ctx); err != nil {
		log.Error("failed to clear cart", zap.String("order_number", o.OrderNumber), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrClearCart, err)
	}

	log.Info("success",
		zap.String("order_number", o.OrderNumber),
		zap.Int("items", len(o.Items)),
		zap.Float64("total", o.TotalAmount),
	)
	return o, nil
}

func build(items []cart.Item, c Customer, now time.Time) *Order {
	total := decimal.Zero
	lines := lo.Map(items, func(i cart.Item, _ int) OrderItem {
		sub := cart.LineTotal(i)
		total = total.Add(sub)
		return OrderItem{
			ProductID: i.Product.ID,
			VariantID: i.Variant.ID,
			Quantity:  i.Quantity,
			UnitPrice: i.Variant.Price,
			Subtotal:  sub.Round(2).InexactFloat64(),
		}
	})

	return &Order{
		OrderNumber:     utils.GenerateOrderNumber(now),
		CustomerName:    c.Name,
		CustomerPhone:   c.Phone,
		CustomerEmail:   c.Email,
		ShippingAddress: c.ShippingAddress,
		TotalAmount:     total.Round(2).InexactFloat64(),
		Status:          StatusPending,
		PaymentStatus:   PaymentStatusPending,
		Items:           lines,
		CreatedAt:       now,
	}
}
