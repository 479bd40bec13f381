package services

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/api-sage/payment-orchestrator/src/internal/adapter/http/models"
	"github.com/api-sage/payment-orchestrator/src/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/payment-orchestrator/src/internal/commons"
	"github.com/api-sage/payment-orchestrator/src/internal/domain"
	"github.com/api-sage/payment-orchestrator/src/internal/logger"
	"github.com/api-sage/payment-orchestrator/src/internal/usecase/service_interfaces"
	"golang.org/x/crypto/bcrypt"
)

var _ service_interfaces.AccountService = (*AccountService)(nil)

// AccountService provisions the payer and payee records that payments
// resolve against. Each registration is a single repository transaction so
// a failed insert leaves no partial record behind.
type AccountService struct {
	accountRepo repo_interfaces.AccountRepository
}

func NewAccountService(accountRepo repo_interfaces.AccountRepository) *AccountService {
	return &AccountService{accountRepo: accountRepo}
}

var accountNumberCounter uint32

func (s *AccountService) RegisterPersonalAccount(ctx context.Context, req models.RegisterPersonalAccountRequest) (models.RegisterAccountResponse, error) {
	logger.Info("account service register personal account request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	cmd, apiErr := req.Validate()
	if apiErr != nil {
		logger.Error("account service register personal account validation failed", apiErr, nil)
		return registrationFailure(apiErr), apiErr
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.CVV), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("account service hash security code failed", err, nil)
		apiErr := commons.StorageUnavailable()
		return registrationFailure(apiErr), apiErr
	}

	account := domain.PersonalAccount{
		AccountNumber:  generateAccountNumber(),
		HolderName:     cmd.CardHolderName,
		Email:          cmd.Email,
		BillingAddress: cmd.CardHolderAddress,
	}

	details := domain.PaymentDetails{
		PaymentID:        account.AccountNumber,
		CardNumber:       cmd.CardNumber,
		SecurityCodeHash: string(hash),
		ExpiryDate:       cmd.Expiry,
	}

	created, err := s.accountRepo.CreatePersonalWithDetails(ctx, account, details)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateRecord) {
			apiErr := commons.InvalidField("Error. Card is already registered")
			return registrationFailure(apiErr), apiErr
		}
		logger.Error("account service create personal account failed", err, logger.Fields{
			"accountNumber": account.AccountNumber,
		})
		apiErr := commons.StorageUnavailable()
		return registrationFailure(apiErr), apiErr
	}

	logger.Info("account service register personal account success", logger.Fields{
		"accountNumber": created.AccountNumber,
	})

	return models.RegisterAccountResponse{
		APIResponse:   models.OK("Personal Account Successfully Registered"),
		AccountNumber: created.AccountNumber,
	}, nil
}

func (s *AccountService) RegisterBusinessAccount(ctx context.Context, req models.RegisterBusinessAccountRequest) (models.RegisterAccountResponse, error) {
	logger.Info("account service register business account request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	cmd, apiErr := req.Validate()
	if apiErr != nil {
		logger.Error("account service register business account validation failed", apiErr, nil)
		return registrationFailure(apiErr), apiErr
	}

	// The business account is keyed by its bank account number so payee
	// resolution can walk from bank details to the owning account.
	account := domain.BusinessAccount{
		AccountNumber: cmd.PayeeBankAccNum,
		BusinessName:  cmd.BusinessName,
	}

	details := domain.BankDetails{
		AccountNumber: cmd.PayeeBankAccNum,
		SortCode:      cmd.PayeeBankSortCode,
		AccountName:   cmd.AccountHolderName,
	}

	created, err := s.accountRepo.CreateBusinessWithDetails(ctx, account, details)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateRecord) {
			apiErr := commons.InvalidField("Error. Business account is already registered")
			return registrationFailure(apiErr), apiErr
		}
		logger.Error("account service create business account failed", err, logger.Fields{
			"accountNumber": account.AccountNumber,
		})
		apiErr := commons.StorageUnavailable()
		return registrationFailure(apiErr), apiErr
	}

	logger.Info("account service register business account success", logger.Fields{
		"accountNumber": created.AccountNumber,
	})

	return models.RegisterAccountResponse{
		APIResponse:   models.OK("Business Account Successfully Registered"),
		AccountNumber: created.AccountNumber,
	}, nil
}

func generateAccountNumber() string {
	now := time.Now().UTC()
	counter := atomic.AddUint32(&accountNumberCounter, 1) % 1000
	return fmt.Sprintf("%07d%03d", now.Unix()%10000000, counter)
}

func registrationFailure(err *commons.APIError) models.RegisterAccountResponse {
	return models.RegisterAccountResponse{APIResponse: models.Failure(err)}
}
