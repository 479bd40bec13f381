package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/api-sage/payment-orchestrator/src/internal/domain"
	"github.com/api-sage/payment-orchestrator/src/internal/logger"
)

// Details rows are inserted by the AccountRepository provisioning
// transactions; these repositories only serve payment-time lookups.

type PaymentDetailsRepository struct {
	db *sql.DB
}

func NewPaymentDetailsRepository(db *sql.DB) *PaymentDetailsRepository {
	return &PaymentDetailsRepository{db: db}
}

func (r *PaymentDetailsRepository) GetByCard(ctx context.Context, cardNumber string, expiryDate time.Time) (domain.PaymentDetails, error) {
	const query = `
SELECT payment_id, card_number, security_code_hash, expiry_date, created_at
FROM payment_details
WHERE card_number = $1 AND expiry_date = $2`

	var details domain.PaymentDetails
	if err := r.db.QueryRowContext(ctx, query, cardNumber, expiryDate).Scan(
		&details.PaymentID,
		&details.CardNumber,
		&details.SecurityCodeHash,
		&details.ExpiryDate,
		&details.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.PaymentDetails{}, domain.ErrRecordNotFound
		}
		logger.Error("payment details repository get failed", err, nil)
		return domain.PaymentDetails{}, fmt.Errorf("get payment details: %w", err)
	}

	return details, nil
}

type BankDetailsRepository struct {
	db *sql.DB
}

func NewBankDetailsRepository(db *sql.DB) *BankDetailsRepository {
	return &BankDetailsRepository{db: db}
}

func (r *BankDetailsRepository) GetByDetails(ctx context.Context, accountNumber string, sortCode string, accountName string) (domain.BankDetails, error) {
	const query = `
SELECT account_number, sort_code, account_name, created_at
FROM bank_details
WHERE account_number = $1 AND sort_code = $2 AND account_name = $3`

	var details domain.BankDetails
	if err := r.db.QueryRowContext(ctx, query, accountNumber, sortCode, accountName).Scan(
		&details.AccountNumber,
		&details.SortCode,
		&details.AccountName,
		&details.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.BankDetails{}, domain.ErrRecordNotFound
		}
		logger.Error("bank details repository get failed", err, logger.Fields{
			"accountNumber": accountNumber,
		})
		return domain.BankDetails{}, fmt.Errorf("get bank details: %w", err)
	}

	return details, nil
}
