package models

import (
	"net/mail"
	"strings"
	"time"

	"github.com/api-sage/payment-orchestrator/src/internal/commons"
	"github.com/shopspring/decimal"
)

// PaymentRequest carries the raw payment body. Pointer fields mark every
// field as required; a nil pointer is an absent field, which is a different
// failure from a malformed value.
type PaymentRequest struct {
	CardNumber        *string `json:"CardNumber"`
	CVV               *string `json:"CVV"`
	PayerCurrencyCode *string `json:"PayerCurrencyCode"`
	PayeeCurrencyCode *string `json:"PayeeCurrencyCode"`
	Amount            any     `json:"Amount"`
	Expiry            *string `json:"Expiry"`
	PayeeBankAccNum   *string `json:"PayeeBankAccNum"`
	PayeeBankSortCode *string `json:"PayeeBankSortCode"`
	CardHolderName    *string `json:"CardHolderName"`
	CardHolderAddress *string `json:"CardHolderAddress"`
	Email             *string `json:"Email"`
	RecipientName     *string `json:"RecipientName"`
}

// PaymentCommand is the validated, typed form of a payment request.
type PaymentCommand struct {
	CardNumber        string
	CVV               string
	PayerCurrencyCode string
	PayeeCurrencyCode string
	Amount            decimal.Decimal
	Expiry            time.Time
	PayeeBankAccNum   string
	PayeeBankSortCode string
	CardHolderName    string
	CardHolderAddress string
	Email             string
	RecipientName     string
}

// Validate runs presence checks, then format checks, each in a fixed field
// order, short-circuiting at the first failure.
func (r PaymentRequest) Validate() (PaymentCommand, *commons.APIError) {
	presence := []validationRule{
		requireString("CardNumber", r.CardNumber),
		requireString("CVV", r.CVV),
		requireString("PayerCurrencyCode", r.PayerCurrencyCode),
		requireString("PayeeCurrencyCode", r.PayeeCurrencyCode),
		requirePresent("Amount", r.Amount),
		requireString("Expiry", r.Expiry),
		requireString("PayeeBankAccNum", r.PayeeBankAccNum),
		requireString("PayeeBankSortCode", r.PayeeBankSortCode),
		requireString("CardHolderName", r.CardHolderName),
		requireString("CardHolderAddress", r.CardHolderAddress),
		requireString("Email", r.Email),
		requireString("RecipientName", r.RecipientName),
	}
	if err := runValidation(presence); err != nil {
		return PaymentCommand{}, err
	}

	var cmd PaymentCommand

	format := []validationRule{
		{field: "CardNumber", check: func() *commons.APIError {
			cleaned := stripSeparators(*r.CardNumber)
			if !isDigits(cleaned, 16) {
				return commons.InvalidField("Error. CardNumber must be exactly 16 digits")
			}
			cmd.CardNumber = cleaned
			return nil
		}},
		{field: "CVV", check: func() *commons.APIError {
			cvv := strings.TrimSpace(*r.CVV)
			if !isDigits(cvv, 3) {
				return commons.InvalidField("Error. CVV must be exactly 3 digits")
			}
			cmd.CVV = cvv
			return nil
		}},
		{field: "PayerCurrencyCode", check: func() *commons.APIError {
			code := strings.TrimSpace(*r.PayerCurrencyCode)
			if !isDigits(code, 3) {
				return commons.InvalidField("Error. PayerCurrencyCode must be a 3 digit numeric code")
			}
			cmd.PayerCurrencyCode = code
			return nil
		}},
		{field: "PayeeCurrencyCode", check: func() *commons.APIError {
			code := strings.TrimSpace(*r.PayeeCurrencyCode)
			if !isDigits(code, 3) {
				return commons.InvalidField("Error. PayeeCurrencyCode must be a 3 digit numeric code")
			}
			cmd.PayeeCurrencyCode = code
			return nil
		}},
		{field: "PayeeBankAccNum", check: func() *commons.APIError {
			accNum := strings.TrimSpace(*r.PayeeBankAccNum)
			if len(accNum) < 1 || len(accNum) > 8 || !digitsOnly(accNum) {
				return commons.InvalidField("Error. PayeeBankAccNum must be between 1 and 8 digits")
			}
			cmd.PayeeBankAccNum = accNum
			return nil
		}},
		{field: "PayeeBankSortCode", check: func() *commons.APIError {
			sortCode := stripSeparators(*r.PayeeBankSortCode)
			if !isDigits(sortCode, 6) {
				return commons.InvalidField("Error. PayeeBankSortCode must be exactly 6 digits")
			}
			cmd.PayeeBankSortCode = sortCode
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
		{field: "Expiry", check: func() *commons.APIError {
			expiry, err := time.Parse("2006-01-02", strings.TrimSpace(*r.Expiry))
			if err != nil {
				return commons.InvalidField("Error. Date is not in YYYY-MM-DD Format")
			}
			today := time.Now().UTC().Truncate(24 * time.Hour)
			if !expiry.After(today) {
				return commons.InvalidField("Error. Card has expired.")
			}
			cmd.Expiry = expiry
			return nil
		}},
		{field: "Email", check: func() *commons.APIError {
			email := strings.TrimSpace(*r.Email)
			if _, err := mail.ParseAddress(email); err != nil {
				return commons.InvalidField("Error. Email provided is not in the correct format.")
			}
			cmd.Email = email
			return nil
		}},
	}
	if err := runValidation(format); err != nil {
		return PaymentCommand{}, err
	}

	cmd.CardHolderName = strings.TrimSpace(*r.CardHolderName)
	cmd.CardHolderAddress = strings.TrimSpace(*r.CardHolderAddress)
	cmd.RecipientName = strings.TrimSpace(*r.RecipientName)

	return cmd, nil
}
