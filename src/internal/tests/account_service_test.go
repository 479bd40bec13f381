package services_test

import (
	"context"
	"testing"

	"github.com/api-sage/payment-orchestrator/src/internal/adapter/http/models"
	"github.com/api-sage/payment-orchestrator/src/internal/commons"
	"github.com/api-sage/payment-orchestrator/src/internal/usecase/services"
	"golang.org/x/crypto/bcrypt"
)

type accountFixture struct {
	accounts *fakeAccountRepo
	cards    *fakePaymentDetailsRepo
	banks    *fakeBankDetailsRepo
	service  *services.AccountService
	lookup   *services.LookupService
}

func newAccountFixture() *accountFixture {
	cards := newFakePaymentDetailsRepo()
	banks := newFakeBankDetailsRepo()
	accounts := newFakeAccountRepo(cards, banks)

	return &accountFixture{
		accounts: accounts,
		cards:    cards,
		banks:    banks,
		service:  services.NewAccountService(accounts),
		lookup:   services.NewLookupService(cards, banks, accounts),
	}
}

func personalAccountRequest() models.RegisterPersonalAccountRequest {
	return models.RegisterPersonalAccountRequest{
		CardNumber:        strPtr("4111111111111111"),
		CVV:               strPtr("123"),
		Expiry:            strPtr("2030-01-01"),
		CardHolderName:    strPtr("Alice Smith"),
		CardHolderAddress: strPtr("1 High Street, London"),
		Email:             strPtr("alice@example.com"),
	}
}

func businessAccountRequest() models.RegisterBusinessAccountRequest {
	return models.RegisterBusinessAccountRequest{
		BusinessName:      strPtr("Acme Supplies Ltd"),
		PayeeBankAccNum:   strPtr("12345678"),
		PayeeBankSortCode: strPtr("12-34-56"),
		AccountHolderName: strPtr("Acme Supplies Ltd"),
	}
}

func TestRegisterPersonalAccount(t *testing.T) {
	f := newAccountFixture()

	resp, err := f.service.RegisterPersonalAccount(context.Background(), personalAccountRequest())
	if err != nil {
		t.Fatalf("register personal account: %v", err)
	}
	if resp.ErrorCode != nil {
		t.Fatalf("expected success, got error code %d", *resp.ErrorCode)
	}
	if resp.AccountNumber == "" {
		t.Fatal("expected an account number in the response")
	}

	// The stored record must be resolvable the way a payment resolves it.
	account, ok := f.accounts.personal[resp.AccountNumber]
	if !ok {
		t.Fatalf("personal account %s was not stored", resp.AccountNumber)
	}
	if account.HolderName != "Alice Smith" || account.Email != "alice@example.com" {
		t.Fatalf("unexpected stored account %+v", account)
	}

	var hash string
	for _, d := range f.cards.details {
		if d.PaymentID == resp.AccountNumber {
			hash = d.SecurityCodeHash
		}
	}
	if hash == "" {
		t.Fatal("payment details were not stored for the new account")
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte("123")) != nil {
		t.Fatal("stored security code hash does not match the registered code")
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte("999")) == nil {
		t.Fatal("stored security code hash matched a wrong code")
	}
}

func TestRegisterPersonalAccountDuplicateCard(t *testing.T) {
	f := newAccountFixture()

	if _, err := f.service.RegisterPersonalAccount(context.Background(), personalAccountRequest()); err != nil {
		t.Fatalf("first registration: %v", err)
	}

	_, err := f.service.RegisterPersonalAccount(context.Background(), personalAccountRequest())
	apiErr := assertAPIError(t, err, commons.CodeInvalidField)
	if apiErr.Comment != "Error. Card is already registered" {
		t.Fatalf("unexpected comment %q", apiErr.Comment)
	}

	// The failed registration must not leave a partial account behind.
	if len(f.accounts.personal) != 1 {
		t.Fatalf("expected one personal account after a duplicate card, got %d", len(f.accounts.personal))
	}
	if len(f.cards.details) != 1 {
		t.Fatalf("expected one payment details record after a duplicate card, got %d", len(f.cards.details))
	}
}

func TestRegisterPersonalAccountRejectsExpiredCard(t *testing.T) {
	f := newAccountFixture()

	req := personalAccountRequest()
	req.Expiry = strPtr("2020-01-01")

	_, err := f.service.RegisterPersonalAccount(context.Background(), req)
	apiErr := assertAPIError(t, err, commons.CodeInvalidField)
	if apiErr.Comment != "Error. Card has expired." {
		t.Fatalf("unexpected comment %q", apiErr.Comment)
	}
}

func TestRegisterBusinessAccount(t *testing.T) {
	f := newAccountFixture()

	resp, err := f.service.RegisterBusinessAccount(context.Background(), businessAccountRequest())
	if err != nil {
		t.Fatalf("register business account: %v", err)
	}
	if resp.AccountNumber != "12345678" {
		t.Fatalf("expected the bank account number back, got %s", resp.AccountNumber)
	}

	// Payee resolution must walk from the registered bank details to the
	// business account.
	business, err := f.lookup.ResolvePayee(context.Background(), "12345678", "123456", "Acme Supplies Ltd")
	if err != nil {
		t.Fatalf("resolve freshly registered payee: %v", err)
	}
	if business.BusinessName != "Acme Supplies Ltd" {
		t.Fatalf("expected Acme Supplies Ltd, got %s", business.BusinessName)
	}
}

func TestRegisterBusinessAccountDuplicate(t *testing.T) {
	f := newAccountFixture()

	if _, err := f.service.RegisterBusinessAccount(context.Background(), businessAccountRequest()); err != nil {
		t.Fatalf("first registration: %v", err)
	}

	_, err := f.service.RegisterBusinessAccount(context.Background(), businessAccountRequest())
	apiErr := assertAPIError(t, err, commons.CodeInvalidField)
	if apiErr.Comment != "Error. Business account is already registered" {
		t.Fatalf("unexpected comment %q", apiErr.Comment)
	}

	if len(f.accounts.business) != 1 || len(f.banks.details) != 1 {
		t.Fatalf("expected one business account and one bank details record, got %d and %d",
			len(f.accounts.business), len(f.banks.details))
	}
}
