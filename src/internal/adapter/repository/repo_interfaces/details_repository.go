package repo_interfaces

import (
	"context"
	"time"

	"github.com/api-sage/payment-orchestrator/src/internal/domain"
)

// Details records are written only through AccountRepository provisioning;
// these repositories serve payment-time lookups.

type PaymentDetailsRepository interface {
	// GetByCard matches on card number and expiry date; the security code is
	// compared against the stored hash by the caller.
	GetByCard(ctx context.Context, cardNumber string, expiryDate time.Time) (domain.PaymentDetails, error)
}

type BankDetailsRepository interface {
	GetByDetails(ctx context.Context, accountNumber string, sortCode string, accountName string) (domain.BankDetails, error)
}
