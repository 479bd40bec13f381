package services_test

import (
	"context"
	"sync"
	"time"

	"github.com/api-sage/payment-orchestrator/src/internal/adapter/http/models"
	"github.com/api-sage/payment-orchestrator/src/internal/domain"
	"github.com/shopspring/decimal"
)

type fakeTransactionRepo struct {
	mu          sync.Mutex
	nextID      int64
	records     map[int64]domain.Transaction
	createErr   error
	finalizeErr error
	cancelErr   error
	creates     int
}

func newFakeTransactionRepo() *fakeTransactionRepo {
	return &fakeTransactionRepo{records: map[int64]domain.Transaction{}}
}

func (f *fakeTransactionRepo) Create(_ context.Context, transaction domain.Transaction) (domain.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.createErr != nil {
		return domain.Transaction{}, f.createErr
	}

	f.nextID++
	transaction.ID = f.nextID
	f.records[transaction.ID] = transaction
	f.creates++
	return transaction, nil
}

func (f *fakeTransactionRepo) GetByID(_ context.Context, id int64) (domain.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	transaction, ok := f.records[id]
	if !ok {
		return domain.Transaction{}, domain.ErrRecordNotFound
	}
	return transaction, nil
}

func (f *fakeTransactionRepo) FinalizeRefund(_ context.Context, transactionID int64, refund domain.Transaction) (domain.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.finalizeErr != nil {
		return domain.Transaction{}, f.finalizeErr
	}

	original, ok := f.records[transactionID]
	if !ok {
		return domain.Transaction{}, domain.ErrRecordNotFound
	}
	if original.Status != domain.TransactionStatusInitiated && original.Status != domain.TransactionStatusCompleted {
		return domain.Transaction{}, domain.ErrTransactionFinalized
	}

	original.Status = domain.TransactionStatusRefunded
	f.records[transactionID] = original

	f.nextID++
	refund.ID = f.nextID
	refund.Status = domain.TransactionStatusRefundTransaction
	f.records[refund.ID] = refund

	return refund, nil
}

func (f *fakeTransactionRepo) Cancel(_ context.Context, transactionID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.cancelErr != nil {
		return f.cancelErr
	}

	original, ok := f.records[transactionID]
	if !ok {
		return domain.ErrRecordNotFound
	}
	if original.Status != domain.TransactionStatusInitiated && original.Status != domain.TransactionStatusCompleted {
		return domain.ErrTransactionFinalized
	}

	original.Status = domain.TransactionStatusCancelled
	f.records[transactionID] = original
	return nil
}

type fakeAccountRepo struct {
	personal map[string]domain.PersonalAccount
	business map[string]domain.BusinessAccount
	cards    *fakePaymentDetailsRepo
	banks    *fakeBankDetailsRepo
}

func newFakeAccountRepo(cards *fakePaymentDetailsRepo, banks *fakeBankDetailsRepo) *fakeAccountRepo {
	return &fakeAccountRepo{
		personal: map[string]domain.PersonalAccount{},
		business: map[string]domain.BusinessAccount{},
		cards:    cards,
		banks:    banks,
	}
}

func (f *fakeAccountRepo) CreatePersonalWithDetails(_ context.Context, account domain.PersonalAccount, details domain.PaymentDetails) (domain.PersonalAccount, error) {
	// Both inserts succeed or neither is stored.
	if _, ok := f.personal[account.AccountNumber]; ok {
		return domain.PersonalAccount{}, domain.ErrDuplicateRecord
	}
	key := cardKey(details.CardNumber, details.ExpiryDate)
	if _, ok := f.cards.details[key]; ok {
		return domain.PersonalAccount{}, domain.ErrDuplicateRecord
	}
	f.personal[account.AccountNumber] = account
	f.cards.details[key] = details
	return account, nil
}

func (f *fakeAccountRepo) CreateBusinessWithDetails(_ context.Context, account domain.BusinessAccount, details domain.BankDetails) (domain.BusinessAccount, error) {
	if _, ok := f.business[account.AccountNumber]; ok {
		return domain.BusinessAccount{}, domain.ErrDuplicateRecord
	}
	if _, ok := f.banks.details[details.AccountNumber]; ok {
		return domain.BusinessAccount{}, domain.ErrDuplicateRecord
	}
	f.business[account.AccountNumber] = account
	f.banks.details[details.AccountNumber] = details
	return account, nil
}

func (f *fakeAccountRepo) GetBusinessByAccountNumber(_ context.Context, accountNumber string) (domain.BusinessAccount, error) {
	account, ok := f.business[accountNumber]
	if !ok {
		return domain.BusinessAccount{}, domain.ErrRecordNotFound
	}
	return account, nil
}

func (f *fakeAccountRepo) GetPersonalByPaymentID(_ context.Context, paymentID string, holderName string, email string) (domain.PersonalAccount, error) {
	account, ok := f.personal[paymentID]
	if !ok || account.HolderName != holderName || account.Email != email {
		return domain.PersonalAccount{}, domain.ErrRecordNotFound
	}
	return account, nil
}

type fakePaymentDetailsRepo struct {
	details map[string]domain.PaymentDetails
}

func newFakePaymentDetailsRepo() *fakePaymentDetailsRepo {
	return &fakePaymentDetailsRepo{details: map[string]domain.PaymentDetails{}}
}

func cardKey(cardNumber string, expiryDate time.Time) string {
	return cardNumber + "|" + expiryDate.Format("2006-01-02")
}

func (f *fakePaymentDetailsRepo) GetByCard(_ context.Context, cardNumber string, expiryDate time.Time) (domain.PaymentDetails, error) {
	details, ok := f.details[cardKey(cardNumber, expiryDate)]
	if !ok {
		return domain.PaymentDetails{}, domain.ErrRecordNotFound
	}
	return details, nil
}

type fakeBankDetailsRepo struct {
	details map[string]domain.BankDetails
}

func newFakeBankDetailsRepo() *fakeBankDetailsRepo {
	return &fakeBankDetailsRepo{details: map[string]domain.BankDetails{}}
}

func (f *fakeBankDetailsRepo) GetByDetails(_ context.Context, accountNumber string, sortCode string, accountName string) (domain.BankDetails, error) {
	details, ok := f.details[accountNumber]
	if !ok || details.SortCode != sortCode || details.AccountName != accountName {
		return domain.BankDetails{}, domain.ErrRecordNotFound
	}
	return details, nil
}

type fakeConversionClient struct {
	result decimal.Decimal
	err    error
	calls  int
}

func (f *fakeConversionClient) Convert(_ context.Context, _ string, _ string, _ decimal.Decimal, _ time.Time) (decimal.Decimal, error) {
	f.calls++
	if f.err != nil {
		return decimal.Decimal{}, f.err
	}
	return f.result, nil
}

type fakeNetworkClient struct {
	paymentErr   error
	refundErr    error
	paymentCalls int
	refundCalls  int
}

func (f *fakeNetworkClient) SubmitPayment(_ context.Context, _ models.PaymentCommand, _ decimal.Decimal, _ string) error {
	f.paymentCalls++
	return f.paymentErr
}

func (f *fakeNetworkClient) SubmitRefund(_ context.Context, _ int64, _ decimal.Decimal, _ string) error {
	f.refundCalls++
	return f.refundErr
}
