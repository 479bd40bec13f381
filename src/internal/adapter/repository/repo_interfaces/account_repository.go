package repo_interfaces

import (
	"context"

	"github.com/api-sage/payment-orchestrator/src/internal/domain"
)

type AccountRepository interface {
	// CreatePersonalWithDetails inserts the account and its payment details
	// in one transaction so a duplicate card leaves no orphaned account row.
	CreatePersonalWithDetails(ctx context.Context, account domain.PersonalAccount, details domain.PaymentDetails) (domain.PersonalAccount, error)
	// CreateBusinessWithDetails inserts the account and its bank details in
	// one transaction.
	CreateBusinessWithDetails(ctx context.Context, account domain.BusinessAccount, details domain.BankDetails) (domain.BusinessAccount, error)
	GetBusinessByAccountNumber(ctx context.Context, accountNumber string) (domain.BusinessAccount, error)
	GetPersonalByPaymentID(ctx context.Context, paymentID string, holderName string, email string) (domain.PersonalAccount, error)
}
