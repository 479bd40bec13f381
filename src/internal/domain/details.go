package domain

import "time"

// PaymentDetails is a registered card. PaymentID is the account number of
// the owning PersonalAccount. The security code is stored only as a bcrypt
// hash and compared at lookup time.
type PaymentDetails struct {
	PaymentID        string
	CardNumber       string
	SecurityCodeHash string
	ExpiryDate       time.Time
	CreatedAt        time.Time
}

// BankDetails is a registered payee bank account. AccountNumber links to the
// owning BusinessAccount.
type BankDetails struct {
	AccountNumber string
	SortCode      string
	AccountName   string
	CreatedAt     time.Time
}
