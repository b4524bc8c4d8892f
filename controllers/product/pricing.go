package productController

import (
	"errors"

	"github.com/shopspring/decimal"
)

var validBoxSizes = map[int]bool{6: true, 12: true, 24: true}

var ErrInvalidBoxSize = errors.New("invalid box size, allowed sizes are 6, 12 and 24")

// finalPrice returns the stored price for a product: the unit price as-is,
// or unit price multiplied by the box size when one is supplied.
func finalPrice(unit decimal.Decimal, boxSize *int) (decimal.Decimal, error) {
	if boxSize == nil {
		return unit, nil
	}
	if !validBoxSizes[*boxSize] {
		return decimal.Decimal{}, ErrInvalidBoxSize
	}
	return unit.Mul(decimal.NewFromInt(int64(*boxSize))), nil
}
