package domain

import (
	"slices"

	"github.com/google/uuid"
)

// Cart maps product ID to a quantity of at least one.
// A product that is not in the cart has quantity zero and is never stored.
type Cart struct {
	items map[int]int
	order []int // product IDs by first add
}

func NewCart() *Cart {
	return &Cart{items: make(map[int]int)}
}

func (c *Cart) Add(productID int) int {
	if _, ok := c.items[productID]; !ok {
		c.order = append(c.order, productID)
	}
	c.items[productID]++
	return c.items[productID]
}

// Remove decrements the quantity and deletes the entry when it reaches zero.
// It reports false when the product was not in the cart.
func (c *Cart) Remove(productID int) bool {
	qty, ok := c.items[productID]
	if !ok {
		return false
	}

	if qty > 1 {
		c.items[productID] = qty - 1
	} else {
		delete(c.items, productID)
		c.order = slices.DeleteFunc(c.order, func(id int) bool { return id == productID })
	}

	return true
}

func (c *Cart) Quantity(productID int) int {
	return c.items[productID]
}

func (c *Cart) Len() int {
	return len(c.items)
}

func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// ItemCount is the sum of all quantities.
func (c *Cart) ItemCount() int {
	var n int
	for _, qty := range c.items {
		n += qty
	}
	return n
}

func (c *Cart) Items() map[int]int {
	out := make(map[int]int, len(c.items))
	for id, qty := range c.items {
		out[id] = qty
	}
	return out
}

type CartLine struct {
	Product  Product
	Quantity int
	Subtotal Money
}

// Lines prices the cart against the catalog, in the order products were first
// added. Entries without a catalog product are skipped.
func (c *Cart) Lines(catalog Catalog) []CartLine {
	var lines []CartLine

	for _, id := range c.order {
		p, ok := catalog.Product(id)
		if !ok {
			continue
		}

		qty := c.items[id]

		lines = append(lines, CartLine{
			Product:  p,
			Quantity: qty,
			Subtotal: p.Price.Times(qty),
		})
	}

	return lines
}

// Total sums the line subtotals in decimal arithmetic.
func (c *Cart) Total(catalog Catalog) Money {
	total := catalog.Zero()
	for _, line := range c.Lines(catalog) {
		total = total.Plus(line.Subtotal)
	}
	return total
}

const OrderNotice = "Thank you for your purchase!"

type Receipt struct {
	OrderID   uuid.UUID
	Lines     []CartLine
	Total     Money
	ItemCount int
	Notice    string
}
