package service_interfaces

import (
	"context"

	"github.com/api-sage/payment-orchestrator/src/internal/adapter/http/models"
	"github.com/api-sage/payment-orchestrator/src/internal/domain"
)

// LookupService resolves payer and payee identities from validated payment
// fields. Failures are commons.APIError values from the lookup taxonomy
// (106-109) or a storage fault (401).
type LookupService interface {
	ResolvePayee(ctx context.Context, accountNumber string, sortCode string, accountName string) (domain.BusinessAccount, error)
	ResolvePayer(ctx context.Context, cmd models.PaymentCommand) (domain.PersonalAccount, error)
}
