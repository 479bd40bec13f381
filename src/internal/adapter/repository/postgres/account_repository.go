package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/api-sage/payment-orchestrator/src/internal/domain"
	"github.com/api-sage/payment-orchestrator/src/internal/logger"
	"github.com/lib/pq"
)

type AccountRepository struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) CreatePersonalWithDetails(ctx context.Context, account domain.PersonalAccount, details domain.PaymentDetails) (domain.PersonalAccount, error) {
	logger.Info("account repository create personal account", logger.Fields{
		"accountNumber": account.AccountNumber,
	})

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.PersonalAccount{}, fmt.Errorf("begin provisioning tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	const insertAccount = `
INSERT INTO personal_accounts (account_number, holder_name, email, billing_address)
VALUES ($1, $2, $3, $4)
RETURNING created_at`

	if err := tx.QueryRowContext(
		ctx,
		insertAccount,
		account.AccountNumber,
		account.HolderName,
		account.Email,
		account.BillingAddress,
	).Scan(&account.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return domain.PersonalAccount{}, domain.ErrDuplicateRecord
		}
		logger.Error("account repository create personal account failed", err, logger.Fields{
			"accountNumber": account.AccountNumber,
		})
		return domain.PersonalAccount{}, fmt.Errorf("create personal account: %w", err)
	}

	const insertDetails = `
INSERT INTO payment_details (payment_id, card_number, security_code_hash, expiry_date)
VALUES ($1, $2, $3, $4)`

	if _, err := tx.ExecContext(
		ctx,
		insertDetails,
		details.PaymentID,
		details.CardNumber,
		details.SecurityCodeHash,
		details.ExpiryDate,
	); err != nil {
		if isUniqueViolation(err) {
			return domain.PersonalAccount{}, domain.ErrDuplicateRecord
		}
		logger.Error("account repository create payment details failed", err, logger.Fields{
			"accountNumber": account.AccountNumber,
		})
		return domain.PersonalAccount{}, fmt.Errorf("create payment details: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return domain.PersonalAccount{}, fmt.Errorf("commit provisioning tx: %w", err)
	}

	return account, nil
}

func (r *AccountRepository) CreateBusinessWithDetails(ctx context.Context, account domain.BusinessAccount, details domain.BankDetails) (domain.BusinessAccount, error) {
	logger.Info("account repository create business account", logger.Fields{
		"accountNumber": account.AccountNumber,
	})

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.BusinessAccount{}, fmt.Errorf("begin provisioning tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	const insertAccount = `
INSERT INTO business_accounts (account_number, business_name)
VALUES ($1, $2)
RETURNING created_at`

	if err := tx.QueryRowContext(
		ctx,
		insertAccount,
		account.AccountNumber,
		account.BusinessName,
	).Scan(&account.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return domain.BusinessAccount{}, domain.ErrDuplicateRecord
		}
		logger.Error("account repository create business account failed", err, logger.Fields{
			"accountNumber": account.AccountNumber,
		})
		return domain.BusinessAccount{}, fmt.Errorf("create business account: %w", err)
	}

	const insertDetails = `
INSERT INTO bank_details (account_number, sort_code, account_name)
VALUES ($1, $2, $3)`

	if _, err := tx.ExecContext(
		ctx,
		insertDetails,
		details.AccountNumber,
		details.SortCode,
		details.AccountName,
	); err != nil {
		if isUniqueViolation(err) {
			return domain.BusinessAccount{}, domain.ErrDuplicateRecord
		}
		logger.Error("account repository create bank details failed", err, logger.Fields{
			"accountNumber": account.AccountNumber,
		})
		return domain.BusinessAccount{}, fmt.Errorf("create bank details: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return domain.BusinessAccount{}, fmt.Errorf("commit provisioning tx: %w", err)
	}

	return account, nil
}

func (r *AccountRepository) GetBusinessByAccountNumber(ctx context.Context, accountNumber string) (domain.BusinessAccount, error) {
	const query = `
SELECT account_number, business_name, created_at
FROM business_accounts
WHERE account_number = $1`

	var account domain.BusinessAccount
	if err := r.db.QueryRowContext(ctx, query, accountNumber).Scan(
		&account.AccountNumber,
		&account.BusinessName,
		&account.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.BusinessAccount{}, domain.ErrRecordNotFound
		}
		logger.Error("account repository get business account failed", err, logger.Fields{
			"accountNumber": accountNumber,
		})
		return domain.BusinessAccount{}, fmt.Errorf("get business account: %w", err)
	}

	return account, nil
}

func (r *AccountRepository) GetPersonalByPaymentID(ctx context.Context, paymentID string, holderName string, email string) (domain.PersonalAccount, error) {
	const query = `
SELECT account_number, holder_name, email, billing_address, created_at
FROM personal_accounts
WHERE account_number = $1 AND holder_name = $2 AND email = $3`

	var account domain.PersonalAccount
	if err := r.db.QueryRowContext(ctx, query, paymentID, holderName, email).Scan(
		&account.AccountNumber,
		&account.HolderName,
		&account.Email,
		&account.BillingAddress,
		&account.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.PersonalAccount{}, domain.ErrRecordNotFound
		}
		logger.Error("account repository get personal account failed", err, logger.Fields{
			"paymentId": paymentID,
		})
		return domain.PersonalAccount{}, fmt.Errorf("get personal account: %w", err)
	}

	return account, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == "23505"
	}
	return false
}
