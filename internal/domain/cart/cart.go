// Package cart implements the shopping cart aggregate and the registry that
// keeps one cart per customer.
package cart

import (
	"math"
	"slices"
	"strings"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/xenking/kart-ticket/internal/domain/product"
)

var (
	// ErrInvalidArgument is returned by constructors and AddItem on missing or
	// out-of-range input. It is the same value as product.ErrInvalidArgument.
	ErrInvalidArgument = product.ErrInvalidArgument
	// ErrEmptyRegistry is returned by AverageTicket when no carts are registered.
	ErrEmptyRegistry = errors.New("no carts registered")
)

// Cart is a customer's ordered list of items with at most one item per product.
//
// Cart is not safe for concurrent use.
type Cart struct {
	id    string
	items []Item
}

// New creates an empty cart identified by id.
func New(id string) (*Cart, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errors.Wrap(ErrInvalidArgument, "cart id is required")
	}
	return &Cart{id: id}, nil
}

// ID returns the cart identifier.
func (c *Cart) ID() string { return c.id }

// Len returns the number of distinct items in the cart.
func (c *Cart) Len() int { return len(c.items) }

// AddItem adds quantity units of p to the cart.
//
// If p is already in the cart the quantities are summed and unitPrice replaces
// the stored price when the two differ. The item keeps its position.
//
// quantity must be positive in both cases, so AddItem never lowers the
// quantity of an existing item; use RemoveItem for that. On error the cart is
// left unchanged.
func (c *Cart) AddItem(p product.Product, unitPrice decimal.Decimal, quantity int) error {
	if quantity <= 0 {
		return errors.Wrapf(ErrInvalidArgument, "quantity must be greater than 0 for product %d", p.Code())
	}

	i := c.indexOf(p)
	if i < 0 {
		item, err := NewItem(p, unitPrice, quantity)
		if err != nil {
			return errors.Wrap(err, "new item")
		}
		c.items = append(c.items, item)
		return nil
	}

	existing := c.items[i]
	if quantity > math.MaxInt-existing.quantity {
		return errors.Wrapf(ErrInvalidArgument, "quantity overflow for product %d", p.Code())
	}

	price := existing.unitPrice
	if !unitPrice.Equal(price) {
		price = unitPrice
	}

	merged, err := NewItem(existing.product, price, existing.quantity+quantity)
	if err != nil {
		return errors.Wrap(err, "merge item")
	}
	c.items[i] = merged
	return nil
}

// RemoveItem removes the item for p and reports whether it was present.
func (c *Cart) RemoveItem(p product.Product) bool {
	i := c.indexOf(p)
	if i < 0 {
		return false
	}
	c.items = slices.Delete(c.items, i, i+1)
	return true
}

// RemoveItemAt removes the item at the zero-based insertion position and
// reports whether the position existed.
func (c *Cart) RemoveItemAt(position int) bool {
	if position < 0 || position >= len(c.items) {
		return false
	}
	c.items = slices.Delete(c.items, position, position+1)
	return true
}

// Total returns the sum of all item totals; zero for an empty cart.
func (c *Cart) Total() decimal.Decimal {
	sum := decimal.Zero
	for _, item := range c.items {
		sum = sum.Add(item.Total())
	}
	return sum
}

// Items returns a copy of the cart items in insertion order. The result is
// never nil.
func (c *Cart) Items() []Item {
	items := make([]Item, len(c.items))
	copy(items, c.items)
	return items
}

func (c *Cart) indexOf(p product.Product) int {
	return slices.IndexFunc(c.items, func(item Item) bool {
		return item.product.Equal(p)
	})
}
