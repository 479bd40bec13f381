package service_interfaces

import (
	"context"

	"github.com/api-sage/payment-orchestrator/src/internal/adapter/http/models"
	"github.com/shopspring/decimal"
)

// NetworkClient is the Payment Network Service collaborator that actually
// settles money.
type NetworkClient interface {
	SubmitPayment(ctx context.Context, cmd models.PaymentCommand, amount decimal.Decimal, currencyCode string) error
	SubmitRefund(ctx context.Context, transactionID int64, amount decimal.Decimal, currencyCode string) error
}
