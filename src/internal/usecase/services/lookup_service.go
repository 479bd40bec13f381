package services

import (
	"context"
	"errors"

	"github.com/api-sage/payment-orchestrator/src/internal/adapter/http/models"
	"github.com/api-sage/payment-orchestrator/src/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/payment-orchestrator/src/internal/commons"
	"github.com/api-sage/payment-orchestrator/src/internal/domain"
	"github.com/api-sage/payment-orchestrator/src/internal/logger"
	"github.com/api-sage/payment-orchestrator/src/internal/usecase/service_interfaces"
	"golang.org/x/crypto/bcrypt"
)

var _ service_interfaces.LookupService = (*LookupService)(nil)

type LookupService struct {
	paymentDetailsRepo repo_interfaces.PaymentDetailsRepository
	bankDetailsRepo    repo_interfaces.BankDetailsRepository
	accountRepo        repo_interfaces.AccountRepository
}

func NewLookupService(
	paymentDetailsRepo repo_interfaces.PaymentDetailsRepository,
	bankDetailsRepo repo_interfaces.BankDetailsRepository,
	accountRepo repo_interfaces.AccountRepository,
) *LookupService {
	return &LookupService{
		paymentDetailsRepo: paymentDetailsRepo,
		bankDetailsRepo:    bankDetailsRepo,
		accountRepo:        accountRepo,
	}
}

// ResolvePayee finds the bank details record, then the business account it
// belongs to. A bank record without a linked business account is a distinct
// failure from a missing bank record.
func (s *LookupService) ResolvePayee(ctx context.Context, accountNumber string, sortCode string, accountName string) (domain.BusinessAccount, error) {
	bank, err := s.bankDetailsRepo.GetByDetails(ctx, accountNumber, sortCode, accountName)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return domain.BusinessAccount{}, commons.PayeeBankNotFound()
		}
		logger.Error("lookup service payee bank lookup failed", err, logger.Fields{
			"accountNumber": accountNumber,
		})
		return domain.BusinessAccount{}, commons.StorageUnavailable()
	}

	business, err := s.accountRepo.GetBusinessByAccountNumber(ctx, bank.AccountNumber)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return domain.BusinessAccount{}, commons.PayeeBusinessAccountNotFound()
		}
		logger.Error("lookup service payee business account lookup failed", err, logger.Fields{
			"accountNumber": bank.AccountNumber,
		})
		return domain.BusinessAccount{}, commons.StorageUnavailable()
	}

	return business, nil
}

// ResolvePayer finds the card record by number and expiry, verifies the
// security code against the stored hash, then resolves the owning personal
// account by holder name and email.
func (s *LookupService) ResolvePayer(ctx context.Context, cmd models.PaymentCommand) (domain.PersonalAccount, error) {
	details, err := s.paymentDetailsRepo.GetByCard(ctx, cmd.CardNumber, cmd.Expiry)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return domain.PersonalAccount{}, commons.PayerCardNotFound()
		}
		logger.Error("lookup service payer card lookup failed", err, nil)
		return domain.PersonalAccount{}, commons.StorageUnavailable()
	}

	if err := bcrypt.CompareHashAndPassword([]byte(details.SecurityCodeHash), []byte(cmd.CVV)); err != nil {
		// A wrong security code is indistinguishable from an unknown card.
		return domain.PersonalAccount{}, commons.PayerCardNotFound()
	}

	account, err := s.accountRepo.GetPersonalByPaymentID(ctx, details.PaymentID, cmd.CardHolderName, cmd.Email)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return domain.PersonalAccount{}, commons.PayerAccountNotFound()
		}
		logger.Error("lookup service payer account lookup failed", err, logger.Fields{
			"paymentId": details.PaymentID,
		})
		return domain.PersonalAccount{}, commons.StorageUnavailable()
	}

	return account, nil
}
