package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/api-sage/payment-orchestrator/src/internal/domain"
	"github.com/api-sage/payment-orchestrator/src/internal/logger"
)

// activeStatuses guards every finalizing UPDATE: a row may only leave this
// set once, so concurrent refund/cancel attempts on the same id serialize on
// the database and the loser observes zero affected rows.
const activeStatuses = `('Initiated', 'Completed')`

type TransactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Create(ctx context.Context, transaction domain.Transaction) (domain.Transaction, error) {
	logger.Info("transaction repository create", logger.Fields{
		"payerAccountNumber": transaction.PayerAccountNumber,
		"payeeAccountNumber": transaction.PayeeAccountNumber,
		"currencyCode":       transaction.CurrencyCode,
		"status":             transaction.Status,
	})

	const query = `
INSERT INTO transactions (
	payer_account_number,
	payee_account_number,
	amount,
	currency_code,
	transaction_date,
	status
) VALUES (
	$1, $2, $3, $4, $5, $6
)
RETURNING id, created_at, updated_at`

	if err := r.db.QueryRowContext(
		ctx,
		query,
		transaction.PayerAccountNumber,
		transaction.PayeeAccountNumber,
		transaction.Amount,
		transaction.CurrencyCode,
		transaction.TransactionDate,
		transaction.Status,
	).Scan(&transaction.ID, &transaction.CreatedAt, &transaction.UpdatedAt); err != nil {
		logger.Error("transaction repository create failed", err, logger.Fields{
			"payerAccountNumber": transaction.PayerAccountNumber,
		})
		return domain.Transaction{}, fmt.Errorf("create transaction: %w", err)
	}

	logger.Info("transaction repository create success", logger.Fields{
		"transactionId": transaction.ID,
		"status":        transaction.Status,
	})

	return transaction, nil
}

func (r *TransactionRepository) GetByID(ctx context.Context, id int64) (domain.Transaction, error) {
	const query = `
SELECT id, payer_account_number, payee_account_number, amount, currency_code, transaction_date, status, created_at, updated_at
FROM transactions
WHERE id = $1`

	var transaction domain.Transaction
	if err := r.db.QueryRowContext(ctx, query, id).Scan(
		&transaction.ID,
		&transaction.PayerAccountNumber,
		&transaction.PayeeAccountNumber,
		&transaction.Amount,
		&transaction.CurrencyCode,
		&transaction.TransactionDate,
		&transaction.Status,
		&transaction.CreatedAt,
		&transaction.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Transaction{}, domain.ErrRecordNotFound
		}
		logger.Error("transaction repository get failed", err, logger.Fields{
			"transactionId": id,
		})
		return domain.Transaction{}, fmt.Errorf("get transaction %d: %w", id, err)
	}

	return transaction, nil
}

func (r *TransactionRepository) FinalizeRefund(ctx context.Context, transactionID int64, refund domain.Transaction) (domain.Transaction, error) {
	logger.Info("transaction repository finalize refund", logger.Fields{
		"transactionId": transactionID,
	})

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("begin refund tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	flipped, err := flipStatus(ctx, tx, transactionID, domain.TransactionStatusRefunded)
	if err != nil {
		return domain.Transaction{}, err
	}
	if !flipped {
		return domain.Transaction{}, r.classifyLostRace(ctx, transactionID)
	}

	const insert = `
INSERT INTO transactions (
	payer_account_number,
	payee_account_number,
	amount,
	currency_code,
	transaction_date,
	status
) VALUES (
	$1, $2, $3, $4, $5, $6
)
RETURNING id, created_at, updated_at`

	if err := tx.QueryRowContext(
		ctx,
		insert,
		refund.PayerAccountNumber,
		refund.PayeeAccountNumber,
		refund.Amount,
		refund.CurrencyCode,
		refund.TransactionDate,
		domain.TransactionStatusRefundTransaction,
	).Scan(&refund.ID, &refund.CreatedAt, &refund.UpdatedAt); err != nil {
		logger.Error("transaction repository insert refund ledger entry failed", err, logger.Fields{
			"transactionId": transactionID,
		})
		return domain.Transaction{}, fmt.Errorf("insert refund ledger entry: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return domain.Transaction{}, fmt.Errorf("commit refund tx: %w", err)
	}

	refund.Status = domain.TransactionStatusRefundTransaction

	logger.Info("transaction repository finalize refund success", logger.Fields{
		"transactionId":       transactionID,
		"refundTransactionId": refund.ID,
	})

	return refund, nil
}

func (r *TransactionRepository) Cancel(ctx context.Context, transactionID int64) error {
	logger.Info("transaction repository cancel", logger.Fields{
		"transactionId": transactionID,
	})

	flipped, err := flipStatus(ctx, r.db, transactionID, domain.TransactionStatusCancelled)
	if err != nil {
		return err
	}
	if !flipped {
		return r.classifyLostRace(ctx, transactionID)
	}

	return nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func flipStatus(ctx context.Context, db execer, transactionID int64, status domain.TransactionStatus) (bool, error) {
	const update = `
UPDATE transactions
SET status = $2,
    updated_at = NOW()
WHERE id = $1 AND status IN ` + activeStatuses

	result, err := db.ExecContext(ctx, update, transactionID, status)
	if err != nil {
		logger.Error("transaction repository status update failed", err, logger.Fields{
			"transactionId": transactionID,
			"status":        status,
		})
		return false, fmt.Errorf("update transaction %d status: %w", transactionID, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update transaction %d status: %w", transactionID, err)
	}

	return affected == 1, nil
}

// classifyLostRace distinguishes a row that never existed from one that was
// finalized by a concurrent writer between the caller's read and its write.
func (r *TransactionRepository) classifyLostRace(ctx context.Context, transactionID int64) error {
	var status domain.TransactionStatus
	err := r.db.QueryRowContext(ctx, `SELECT status FROM transactions WHERE id = $1`, transactionID).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrRecordNotFound
	}
	if err != nil {
		return fmt.Errorf("check transaction %d status: %w", transactionID, err)
	}

	return domain.ErrTransactionFinalized
}
