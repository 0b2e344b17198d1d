package cart

import (
	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/xenking/kart-ticket/internal/domain/product"
)

// Item is a single cart line. Items are immutable; the cart replaces an Item
// instead of changing it.
type Item struct {
	product   product.Product
	unitPrice decimal.Decimal
	quantity  int
}

// NewItem validates and creates an Item.
func NewItem(p product.Product, unitPrice decimal.Decimal, quantity int) (Item, error) {
	if p.IsZero() {
		return Item{}, errors.Wrap(ErrInvalidArgument, "product is required")
	}
	if unitPrice.IsNegative() {
		return Item{}, errors.Wrapf(ErrInvalidArgument, "unit price %s is negative", unitPrice)
	}
	if quantity <= 0 {
		return Item{}, errors.Wrapf(ErrInvalidArgument, "quantity must be greater than 0 for product %d", p.Code())
	}
	return Item{
		product:   p,
		unitPrice: unitPrice,
		quantity:  quantity,
	}, nil
}

// Product returns the product of the line.
func (i Item) Product() product.Product { return i.product }

// UnitPrice returns the price of a single unit.
func (i Item) UnitPrice() decimal.Decimal { return i.unitPrice }

// Quantity returns the number of units.
func (i Item) Quantity() int { return i.quantity }

// Total returns unit price * quantity.
func (i Item) Total() decimal.Decimal {
	return i.unitPrice.Mul(decimal.NewFromInt(int64(i.quantity)))
}
