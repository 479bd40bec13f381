package service_interfaces

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// ConversionClient is the external currency-conversion collaborator.
type ConversionClient interface {
	Convert(ctx context.Context, fromCode string, toCode string, amount decimal.Decimal, date time.Time) (decimal.Decimal, error)
}

// ConversionService validates that both currency codes exist before
// delegating to the external converter.
type ConversionService interface {
	Convert(ctx context.Context, fromCode string, toCode string, amount decimal.Decimal, date time.Time) (decimal.Decimal, error)
}
