package service_interfaces

import (
	"context"

	"github.com/api-sage/payment-orchestrator/src/internal/adapter/http/models"
)

type TransactionService interface {
	InitiatePayment(ctx context.Context, req models.PaymentRequest) (models.PaymentResponse, error)
	InitiateRefund(ctx context.Context, req models.RefundRequest) (models.RefundResponse, error)
	InitiateCancellation(ctx context.Context, req models.CancellationRequest) (models.CancellationResponse, error)
}
