package domain

import (
	"fmt"
)

type Product struct {
	ID          int
	Name        string
	Price       Money
	ImageRef    string
	Description string
}

// Catalog is the ordered, read-only product list of a session.
type Catalog struct {
	products []Product
	index    map[int]int
}

func NewCatalog(products []Product) (Catalog, error) {
	if len(products) == 0 {
		return Catalog{}, fmt.Errorf("products are empty")
	}

	c := Catalog{
		products: make([]Product, 0, len(products)),
		index:    make(map[int]int, len(products)),
	}

	unit := products[0].Price.Currency

	for _, p := range products {
		if p.ID <= 0 {
			return Catalog{}, fmt.Errorf("product[%d] id is not positive", p.ID)
		}
		if _, ok := c.index[p.ID]; ok {
			return Catalog{}, fmt.Errorf("product[%d] is duplicated", p.ID)
		}
		if p.Name == "" {
			return Catalog{}, fmt.Errorf("product[%d] name is empty", p.ID)
		}
		if p.Price.Amount.IsNegative() {
			return Catalog{}, fmt.Errorf("product[%d] price is negative", p.ID)
		}
		if p.Price.Currency != unit {
			return Catalog{}, fmt.Errorf("product[%d] currency[%s] differs from catalog currency[%s]",
				p.ID, p.Price.Currency, unit)
		}

		c.index[p.ID] = len(c.products)
		c.products = append(c.products, p)
	}

	return c, nil
}

func (c Catalog) Product(id int) (Product, bool) {
	i, ok := c.index[id]
	if !ok {
		return Product{}, false
	}
	return c.products[i], true
}

func (c Catalog) Contains(id int) bool {
	_, ok := c.index[id]
	return ok
}

// Products returns a copy in seed order.
func (c Catalog) Products() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c Catalog) Len() int {
	return len(c.products)
}

// Zero is a zero amount in the catalog currency.
func (c Catalog) Zero() Money {
	if len(c.products) == 0 {
		return Money{}
	}
	return ZeroMoney(c.products[0].Price.Currency)
}
