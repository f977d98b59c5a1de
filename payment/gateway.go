package payment

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

var ErrInvalidAmount = errors.New("payment amount must be positive")

// Gateway creates a payment intent on the processor and returns the secret
// the browser needs to complete it.
type Gateway interface {
	CreateIntent(ctx context.Context, amountMinor int64) (string, error)
}

// ToMinorUnits converts a price in major units to cents (or satang),
// dropping anything below one minor unit.
func ToMinorUnits(price float64) int64 {
	return decimal.NewFromFloat(price).Shift(2).Truncate(0).IntPart()
}
