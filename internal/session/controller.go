// Package session holds the cart and checkout stage of a single storefront session.
//
// All state changes go through the Controller. It is driven by one user action at
// a time and is not safe for concurrent use.
package session

import (
	"errors"

	"github.com/google/uuid"
	"github.com/nikolayk812/storefront-demo/internal/domain"
	"github.com/rs/zerolog"
)

var (
	ErrEmptyCart         = errors.New("cart is empty")
	ErrInvalidTransition = errors.New("invalid stage transition")
)

type Controller struct {
	catalog domain.Catalog
	cart    *domain.Cart
	stage   domain.Stage

	log     zerolog.Logger
	orderID func() uuid.UUID
}

type Option func(*Controller)

func WithLogger(log zerolog.Logger) Option {
	return func(c *Controller) {
		c.log = log
	}
}

// WithOrderIDs replaces the receipt order ID generator.
func WithOrderIDs(fn func() uuid.UUID) Option {
	return func(c *Controller) {
		c.orderID = fn
	}
}

func New(catalog domain.Catalog, opts ...Option) *Controller {
	c := &Controller{
		catalog: catalog,
		cart:    domain.NewCart(),
		stage:   domain.StageCatalog,
		log:     zerolog.Nop(),
		orderID: uuid.New,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Increment adds one unit of the product. Unknown products are ignored.
func (c *Controller) Increment(productID int) bool {
	if !c.catalog.Contains(productID) {
		c.log.Warn().Int("product_id", productID).Msg("increment: unknown product")
		return false
	}

	qty := c.cart.Add(productID)
	c.log.Debug().Int("product_id", productID).Int("quantity", qty).Msg("cart incremented")

	return true
}

// Decrement removes one unit of the product, dropping the entry at zero.
// It is a no-op for products not in the cart. Emptying the cart on the delivery
// or payment screen returns the session to the catalog.
func (c *Controller) Decrement(productID int) bool {
	if !c.cart.Remove(productID) {
		return false
	}

	c.log.Debug().Int("product_id", productID).Int("quantity", c.cart.Quantity(productID)).Msg("cart decremented")

	if c.cart.IsEmpty() && c.stage != domain.StageCatalog {
		c.moveTo(domain.StageCatalog)
	}

	return true
}

// Total is the cart total with exactly two decimals, "0.00" for an empty cart.
func (c *Controller) Total() string {
	return c.TotalAmount().Fixed()
}

func (c *Controller) TotalAmount() domain.Money {
	return c.cart.Total(c.catalog)
}

func (c *Controller) GoToDelivery() error {
	if c.stage != domain.StageCatalog {
		return ErrInvalidTransition
	}
	if c.cart.IsEmpty() {
		return ErrEmptyCart
	}

	c.moveTo(domain.StageDelivery)
	return nil
}

func (c *Controller) GoToPayment() error {
	if c.stage != domain.StageDelivery {
		return ErrInvalidTransition
	}

	c.moveTo(domain.StagePayment)
	return nil
}

func (c *Controller) BackToShop() error {
	if c.stage != domain.StageDelivery {
		return ErrInvalidTransition
	}

	c.moveTo(domain.StageCatalog)
	return nil
}

func (c *Controller) BackFromPayment() error {
	if c.stage != domain.StagePayment {
		return ErrInvalidTransition
	}

	c.moveTo(domain.StageDelivery)
	return nil
}

// CompleteOrder returns the receipt for the current cart and resets the session
// to an empty cart on the catalog screen. Calling it again is harmless.
func (c *Controller) CompleteOrder() domain.Receipt {
	receipt := domain.Receipt{
		OrderID:   c.orderID(),
		Lines:     c.cart.Lines(c.catalog),
		Total:     c.cart.Total(c.catalog),
		ItemCount: c.cart.ItemCount(),
		Notice:    domain.OrderNotice,
	}

	c.cart = domain.NewCart()
	c.stage = domain.StageCatalog

	c.log.Info().
		Stringer("order_id", receipt.OrderID).
		Int("items", receipt.ItemCount).
		Str("total", receipt.Total.Fixed()).
		Msg("order completed")

	return receipt
}

func (c *Controller) moveTo(stage domain.Stage) {
	c.log.Debug().Stringer("from", c.stage).Stringer("to", stage).Msg("stage changed")
	c.stage = stage
}

func (c *Controller) Stage() domain.Stage {
	return c.stage
}

func (c *Controller) Quantity(productID int) int {
	return c.cart.Quantity(productID)
}

// Cart returns a copy of the product ID to quantity mapping.
func (c *Controller) Cart() map[int]int {
	return c.cart.Items()
}

func (c *Controller) Lines() []domain.CartLine {
	return c.cart.Lines(c.catalog)
}

// ItemCount is the number of units in the cart, shown as the cart badge.
func (c *Controller) ItemCount() int {
	return c.cart.ItemCount()
}

func (c *Controller) Products() []domain.Product {
	return c.catalog.Products()
}

func (c *Controller) Catalog() domain.Catalog {
	return c.catalog
}
