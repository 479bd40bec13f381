package domain

import "time"

// PersonalAccount is the payer side of a transaction. It exclusively owns
// the PaymentDetails registered against it.
type PersonalAccount struct {
	AccountNumber  string
	HolderName     string
	Email          string
	BillingAddress string
	CreatedAt      time.Time
}

// BusinessAccount is the payee side of a transaction. Its account number is
// the account number of the BankDetails it owns.
type BusinessAccount struct {
	AccountNumber string
	BusinessName  string
	CreatedAt     time.Time
}
