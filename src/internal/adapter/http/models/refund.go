package models

import (
	"strings"

	"github.com/api-sage/payment-orchestrator/src/internal/commons"
	"github.com/shopspring/decimal"
)

// RefundRequest carries the raw refund body. TransactionUUID and Amount are
// typed loosely so a wrong JSON type reports an invalid-type failure rather
// than a generic parse failure.
type RefundRequest struct {
	TransactionUUID any     `json:"TransactionUUID"`
	Amount          any     `json:"Amount"`
	CurrencyCode    *string `json:"CurrencyCode"`
}

type RefundCommand struct {
	TransactionID int64
	Amount        decimal.Decimal
	CurrencyCode  string
}

func (r RefundRequest) Validate() (RefundCommand, *commons.APIError) {
	presence := []validationRule{
		requirePresent("TransactionUUID", r.TransactionUUID),
		requirePresent("Amount", r.Amount),
		requireString("CurrencyCode", r.CurrencyCode),
	}
	if err := runValidation(presence); err != nil {
		return RefundCommand{}, err
	}

	var cmd RefundCommand

	format := []validationRule{
		{field: "CurrencyCode", check: func() *commons.APIError {
			code := strings.TrimSpace(*r.CurrencyCode)
			if !isDigits(code, 3) {
				return commons.InvalidField("Error. CurrencyCode must be a 3 digit numeric code")
			}
			cmd.CurrencyCode = code
			return nil
		}},
		{field: "Amount", check: func() *commons.APIError {
			amount, ok := decodeAmount(r.Amount)
			if !ok || amount.LessThanOrEqual(decimal.Zero) {
				return commons.InvalidField("Error. Amount must be a float value larger than 0")
			}
			cmd.Amount = amount
			return nil
		}},
		{field: "TransactionUUID", check: func() *commons.APIError {
			id, ok := decodeTransactionID(r.TransactionUUID)
			if !ok {
				return commons.InvalidTransactionID()
			}
			cmd.TransactionID = id
			return nil
		}},
	}
	if err := runValidation(format); err != nil {
		return RefundCommand{}, err
	}

	return cmd, nil
}
