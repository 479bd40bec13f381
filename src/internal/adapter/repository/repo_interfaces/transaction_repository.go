package repo_interfaces

import (
	"context"

	"github.com/api-sage/payment-orchestrator/src/internal/domain"
)

type TransactionRepository interface {
	Create(ctx context.Context, transaction domain.Transaction) (domain.Transaction, error)
	GetByID(ctx context.Context, id int64) (domain.Transaction, error)
	// FinalizeRefund flips the original row to Refunded and inserts the
	// refund ledger entry atomically. Returns domain.ErrTransactionFinalized
	// when another writer already finalized the row.
	FinalizeRefund(ctx context.Context, transactionID int64, refund domain.Transaction) (domain.Transaction, error)
	// Cancel flips the row to Cancelled under the same status guard.
	Cancel(ctx context.Context, transactionID int64) error
}
