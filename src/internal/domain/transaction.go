package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionStatus string

const (
	TransactionStatusInitiated TransactionStatus = "Initiated"
	TransactionStatusCompleted TransactionStatus = "Completed"
	TransactionStatusRefunded  TransactionStatus = "Refunded"
	TransactionStatusCancelled TransactionStatus = "Cancelled"
	// TransactionStatusRefundTransaction marks a ledger-only entry recording
	// an issued refund. Its amount is the negated refunded amount and it can
	// never be refunded or cancelled itself.
	TransactionStatusRefundTransaction TransactionStatus = "RefundTransaction"
)

// Terminal reports whether the status permits no further refund or
// cancellation of the record.
func (s TransactionStatus) Terminal() bool {
	return s == TransactionStatusRefunded || s == TransactionStatusCancelled
}

type Transaction struct {
	ID                 int64
	PayerAccountNumber string
	PayeeAccountNumber string
	Amount             decimal.Decimal
	CurrencyCode       string
	TransactionDate    time.Time
	Status             TransactionStatus
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
