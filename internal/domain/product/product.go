package product

import (
	"github.com/go-faster/errors"
)

// ErrInvalidArgument is returned when a domain value is constructed from
// missing or out-of-range input.
var ErrInvalidArgument = errors.New("invalid argument")

// Product is a catalog entry that can be added to a cart. Two products are
// the same product when their codes match.
type Product struct {
	code        int64
	description string
}

// New creates a Product. Zero is reserved as the absent code.
func New(code int64, description string) (Product, error) {
	if code == 0 {
		return Product{}, errors.Wrap(ErrInvalidArgument, "product code is required")
	}
	return Product{code: code, description: description}, nil
}

// Code returns the product code.
func (p Product) Code() int64 { return p.code }

// Description returns the informational product description.
func (p Product) Description() string { return p.description }

// IsZero reports whether p is the zero Product, i.e. no product at all.
func (p Product) IsZero() bool { return p.code == 0 }

// Equal compares products by code only.
func (p Product) Equal(other Product) bool {
	return p.code == other.code
}
