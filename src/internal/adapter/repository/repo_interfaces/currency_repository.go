package repo_interfaces

import (
	"context"

	"github.com/api-sage/payment-orchestrator/src/internal/domain"
)

type CurrencyRepository interface {
	GetByCode(ctx context.Context, code string) (domain.Currency, error)
}
