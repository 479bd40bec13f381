package service_interfaces

import (
	"context"

	"github.com/api-sage/payment-orchestrator/src/internal/adapter/http/models"
)

type AccountService interface {
	RegisterPersonalAccount(ctx context.Context, req models.RegisterPersonalAccountRequest) (models.RegisterAccountResponse, error)
	RegisterBusinessAccount(ctx context.Context, req models.RegisterBusinessAccountRequest) (models.RegisterAccountResponse, error)
}
