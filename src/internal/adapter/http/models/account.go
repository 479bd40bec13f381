package models

import (
	"net/mail"
	"strings"
	"time"

	"github.com/api-sage/payment-orchestrator/src/internal/commons"
)

// Provisioning requests for the payer/payee records that payments resolve
// against. Field rules mirror the payment request so a registered record is
// always reachable by a valid payment.

type RegisterPersonalAccountRequest struct {
	CardNumber        *string `json:"CardNumber"`
	CVV               *string `json:"CVV"`
	Expiry            *string `json:"Expiry"`
	CardHolderName    *string `json:"CardHolderName"`
	CardHolderAddress *string `json:"CardHolderAddress"`
	Email             *string `json:"Email"`
}

type RegisterPersonalAccountCommand struct {
	CardNumber        string
	CVV               string
	Expiry            time.Time
	CardHolderName    string
	CardHolderAddress string
	Email             string
}

func (r RegisterPersonalAccountRequest) Validate() (RegisterPersonalAccountCommand, *commons.APIError) {
	presence := []validationRule{
		requireString("CardNumber", r.CardNumber),
		requireString("CVV", r.CVV),
		requireString("Expiry", r.Expiry),
		requireString("CardHolderName", r.CardHolderName),
		requireString("CardHolderAddress", r.CardHolderAddress),
		requireString("Email", r.Email),
	}
	if err := runValidation(presence); err != nil {
		return RegisterPersonalAccountCommand{}, err
	}

	var cmd RegisterPersonalAccountCommand

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
		return RegisterPersonalAccountCommand{}, err
	}

	cmd.CardHolderName = strings.TrimSpace(*r.CardHolderName)
	cmd.CardHolderAddress = strings.TrimSpace(*r.CardHolderAddress)

	return cmd, nil
}

type RegisterBusinessAccountRequest struct {
	BusinessName      *string `json:"BusinessName"`
	PayeeBankAccNum   *string `json:"PayeeBankAccNum"`
	PayeeBankSortCode *string `json:"PayeeBankSortCode"`
	AccountHolderName *string `json:"AccountHolderName"`
}

type RegisterBusinessAccountCommand struct {
	BusinessName      string
	PayeeBankAccNum   string
	PayeeBankSortCode string
	AccountHolderName string
}

func (r RegisterBusinessAccountRequest) Validate() (RegisterBusinessAccountCommand, *commons.APIError) {
	presence := []validationRule{
		requireString("BusinessName", r.BusinessName),
		requireString("PayeeBankAccNum", r.PayeeBankAccNum),
		requireString("PayeeBankSortCode", r.PayeeBankSortCode),
		requireString("AccountHolderName", r.AccountHolderName),
	}
	if err := runValidation(presence); err != nil {
		return RegisterBusinessAccountCommand{}, err
	}

	var cmd RegisterBusinessAccountCommand

	format := []validationRule{
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
	}
	if err := runValidation(format); err != nil {
		return RegisterBusinessAccountCommand{}, err
	}

	cmd.BusinessName = strings.TrimSpace(*r.BusinessName)
	cmd.AccountHolderName = strings.TrimSpace(*r.AccountHolderName)

	return cmd, nil
}
