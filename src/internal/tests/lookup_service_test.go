package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/api-sage/payment-orchestrator/src/internal/adapter/http/models"
	"github.com/api-sage/payment-orchestrator/src/internal/commons"
	"github.com/api-sage/payment-orchestrator/src/internal/domain"
	"github.com/api-sage/payment-orchestrator/src/internal/usecase/services"
	"golang.org/x/crypto/bcrypt"
)

type lookupFixture struct {
	accounts *fakeAccountRepo
	cards    *fakePaymentDetailsRepo
	banks    *fakeBankDetailsRepo
	service  *services.LookupService
	expiry   time.Time
}

func newLookupFixture(t *testing.T) *lookupFixture {
	t.Helper()

	cards := newFakePaymentDetailsRepo()
	banks := newFakeBankDetailsRepo()
	accounts := newFakeAccountRepo(cards, banks)

	hash, err := bcrypt.GenerateFromPassword([]byte("123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash security code: %v", err)
	}

	expiry, err := time.Parse("2006-01-02", "2030-01-01")
	if err != nil {
		t.Fatalf("parse expiry: %v", err)
	}

	accounts.personal["1000000001"] = domain.PersonalAccount{
		AccountNumber:  "1000000001",
		HolderName:     "Alice Smith",
		Email:          "alice@example.com",
		BillingAddress: "1 High Street, London",
	}
	cards.details[cardKey("4111111111111111", expiry)] = domain.PaymentDetails{
		PaymentID:        "1000000001",
		CardNumber:       "4111111111111111",
		SecurityCodeHash: string(hash),
		ExpiryDate:       expiry,
	}
	accounts.business["12345678"] = domain.BusinessAccount{
		AccountNumber: "12345678",
		BusinessName:  "Acme Supplies Ltd",
	}
	banks.details["12345678"] = domain.BankDetails{
		AccountNumber: "12345678",
		SortCode:      "123456",
		AccountName:   "Acme Supplies Ltd",
	}

	return &lookupFixture{
		accounts: accounts,
		cards:    cards,
		banks:    banks,
		service:  services.NewLookupService(cards, banks, accounts),
		expiry:   expiry,
	}
}

func (f *lookupFixture) payerCommand() models.PaymentCommand {
	return models.PaymentCommand{
		CardNumber:     "4111111111111111",
		CVV:            "123",
		Expiry:         f.expiry,
		CardHolderName: "Alice Smith",
		Email:          "alice@example.com",
	}
}

func TestResolvePayer(t *testing.T) {
	f := newLookupFixture(t)

	account, err := f.service.ResolvePayer(context.Background(), f.payerCommand())
	if err != nil {
		t.Fatalf("resolve payer: %v", err)
	}
	if account.AccountNumber != "1000000001" {
		t.Fatalf("expected account 1000000001, got %s", account.AccountNumber)
	}
}

func TestResolvePayerWrongSecurityCode(t *testing.T) {
	f := newLookupFixture(t)

	cmd := f.payerCommand()
	cmd.CVV = "999"

	_, err := f.service.ResolvePayer(context.Background(), cmd)
	assertAPIError(t, err, commons.CodePayerCardNotFound)
}

func TestResolvePayerUnknownCard(t *testing.T) {
	f := newLookupFixture(t)

	cmd := f.payerCommand()
	cmd.CardNumber = "4999999999999999"

	_, err := f.service.ResolvePayer(context.Background(), cmd)
	assertAPIError(t, err, commons.CodePayerCardNotFound)
}

func TestResolvePayerHolderMismatch(t *testing.T) {
	f := newLookupFixture(t)

	cmd := f.payerCommand()
	cmd.CardHolderName = "Mallory Smith"

	_, err := f.service.ResolvePayer(context.Background(), cmd)
	assertAPIError(t, err, commons.CodePayerAccountNotFound)
}

func TestResolvePayerEmailMismatch(t *testing.T) {
	f := newLookupFixture(t)

	cmd := f.payerCommand()
	cmd.Email = "mallory@example.com"

	_, err := f.service.ResolvePayer(context.Background(), cmd)
	assertAPIError(t, err, commons.CodePayerAccountNotFound)
}

func TestResolvePayee(t *testing.T) {
	f := newLookupFixture(t)

	business, err := f.service.ResolvePayee(context.Background(), "12345678", "123456", "Acme Supplies Ltd")
	if err != nil {
		t.Fatalf("resolve payee: %v", err)
	}
	if business.BusinessName != "Acme Supplies Ltd" {
		t.Fatalf("expected Acme Supplies Ltd, got %s", business.BusinessName)
	}
}

func TestResolvePayeeUnknownBankDetails(t *testing.T) {
	f := newLookupFixture(t)

	_, err := f.service.ResolvePayee(context.Background(), "12345678", "654321", "Acme Supplies Ltd")
	assertAPIError(t, err, commons.CodePayeeBankNotFound)
}

func TestResolvePayeeWithoutBusinessAccount(t *testing.T) {
	f := newLookupFixture(t)

	// Bank details exist but no business account owns them.
	f.banks.details["87654321"] = domain.BankDetails{
		AccountNumber: "87654321",
		SortCode:      "654321",
		AccountName:   "Orphan Traders",
	}

	_, err := f.service.ResolvePayee(context.Background(), "87654321", "654321", "Orphan Traders")
	assertAPIError(t, err, commons.CodePayeeBusinessAccountNotFound)
}
