package services

import (
	"context"
	"errors"
	"time"

	"github.com/api-sage/payment-orchestrator/src/internal/adapter/http/models"
	"github.com/api-sage/payment-orchestrator/src/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/payment-orchestrator/src/internal/commons"
	"github.com/api-sage/payment-orchestrator/src/internal/domain"
	"github.com/api-sage/payment-orchestrator/src/internal/logger"
	"github.com/api-sage/payment-orchestrator/src/internal/usecase/service_interfaces"
)

var _ service_interfaces.TransactionService = (*TransactionService)(nil)

// TransactionService drives the transaction lifecycle: validation, payer and
// payee resolution, currency conversion, network submission, and the final
// state transition. Nothing is persisted until the network has accepted the
// operation.
type TransactionService struct {
	transactionRepo repo_interfaces.TransactionRepository
	lookupService   service_interfaces.LookupService
	conversion      service_interfaces.ConversionService
	network         service_interfaces.NetworkClient
}

func NewTransactionService(
	transactionRepo repo_interfaces.TransactionRepository,
	lookupService service_interfaces.LookupService,
	conversion service_interfaces.ConversionService,
	network service_interfaces.NetworkClient,
) *TransactionService {
	return &TransactionService{
		transactionRepo: transactionRepo,
		lookupService:   lookupService,
		conversion:      conversion,
		network:         network,
	}
}

func (s *TransactionService) InitiatePayment(ctx context.Context, req models.PaymentRequest) (models.PaymentResponse, error) {
	logger.Info("transaction service initiate payment request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	cmd, apiErr := req.Validate()
	if apiErr != nil {
		logger.Error("transaction service initiate payment validation failed", apiErr, nil)
		return paymentFailure(apiErr), apiErr
	}

	payee, err := s.lookupService.ResolvePayee(ctx, cmd.PayeeBankAccNum, cmd.PayeeBankSortCode, cmd.RecipientName)
	if err != nil {
		apiErr := commons.Wire(err)
		return paymentFailure(apiErr), apiErr
	}

	payer, err := s.lookupService.ResolvePayer(ctx, cmd)
	if err != nil {
		apiErr := commons.Wire(err)
		return paymentFailure(apiErr), apiErr
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)

	amount := cmd.Amount
	if cmd.PayerCurrencyCode != cmd.PayeeCurrencyCode {
		converted, err := s.conversion.Convert(ctx, cmd.PayerCurrencyCode, cmd.PayeeCurrencyCode, cmd.Amount, today)
		if err != nil {
			apiErr := commons.Wire(err)
			return paymentFailure(apiErr), apiErr
		}
		amount = converted
	}

	record := domain.Transaction{
		PayerAccountNumber: payer.AccountNumber,
		PayeeAccountNumber: payee.AccountNumber,
		Amount:             amount,
		CurrencyCode:       cmd.PayeeCurrencyCode,
		TransactionDate:    today,
		Status:             domain.TransactionStatusInitiated,
	}

	// The network settles first; a transaction is only recorded once the
	// money has actually moved.
	if err := s.network.SubmitPayment(ctx, cmd, amount, cmd.PayeeCurrencyCode); err != nil {
		apiErr := commons.Wire(err)
		return paymentFailure(apiErr), apiErr
	}

	record.Status = domain.TransactionStatusCompleted
	created, err := s.transactionRepo.Create(ctx, record)
	if err != nil {
		logger.Error("transaction service persist payment failed", err, logger.Fields{
			"payerAccountNumber": record.PayerAccountNumber,
		})
		apiErr := commons.StorageUnavailable()
		return paymentFailure(apiErr), apiErr
	}

	logger.Info("transaction service initiate payment success", logger.Fields{
		"transactionId": created.ID,
		"currencyCode":  created.CurrencyCode,
	})

	return models.PaymentResponse{
		APIResponse:     models.OK("Payment Successfully Completed"),
		TransactionUUID: &created.ID,
	}, nil
}

func (s *TransactionService) InitiateRefund(ctx context.Context, req models.RefundRequest) (models.RefundResponse, error) {
	logger.Info("transaction service initiate refund request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	cmd, apiErr := req.Validate()
	if apiErr != nil {
		logger.Error("transaction service initiate refund validation failed", apiErr, nil)
		return refundFailure(apiErr), apiErr
	}

	transaction, err := s.transactionRepo.GetByID(ctx, cmd.TransactionID)
	if err != nil {
		apiErr := transactionLoadFailure(err)
		return refundFailure(apiErr), apiErr
	}

	if apiErr := refundableCheck(transaction); apiErr != nil {
		return refundFailure(apiErr), apiErr
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)

	refundAmount := cmd.Amount
	if cmd.CurrencyCode != transaction.CurrencyCode {
		converted, err := s.conversion.Convert(ctx, cmd.CurrencyCode, transaction.CurrencyCode, cmd.Amount, today)
		if err != nil {
			apiErr := commons.Wire(err)
			return refundFailure(apiErr), apiErr
		}
		refundAmount = converted
	}

	if refundAmount.GreaterThan(transaction.Amount) {
		apiErr := commons.RefundNotCompleted("Error. Refund amount exceeds the original transaction amount")
		return refundFailure(apiErr), apiErr
	}

	if err := s.network.SubmitRefund(ctx, transaction.ID, refundAmount, transaction.CurrencyCode); err != nil {
		apiErr := commons.Wire(err)
		return refundFailure(apiErr), apiErr
	}

	ledgerEntry := domain.Transaction{
		PayerAccountNumber: transaction.PayerAccountNumber,
		PayeeAccountNumber: transaction.PayeeAccountNumber,
		Amount:             refundAmount.Neg(),
		CurrencyCode:       transaction.CurrencyCode,
		TransactionDate:    today,
		Status:             domain.TransactionStatusRefundTransaction,
	}

	created, err := s.transactionRepo.FinalizeRefund(ctx, transaction.ID, ledgerEntry)
	if err != nil {
		apiErr := finalizeFailure(err)
		return refundFailure(apiErr), apiErr
	}

	logger.Info("transaction service initiate refund success", logger.Fields{
		"transactionId":       transaction.ID,
		"refundTransactionId": created.ID,
	})

	return models.RefundResponse{
		APIResponse:           models.OK("Refund Successfully Completed"),
		RefundTransactionUUID: &created.ID,
	}, nil
}

func (s *TransactionService) InitiateCancellation(ctx context.Context, req models.CancellationRequest) (models.CancellationResponse, error) {
	logger.Info("transaction service initiate cancellation request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	cmd, apiErr := req.Validate()
	if apiErr != nil {
		logger.Error("transaction service initiate cancellation validation failed", apiErr, nil)
		return cancellationFailure(apiErr), apiErr
	}

	transaction, err := s.transactionRepo.GetByID(ctx, cmd.TransactionID)
	if err != nil {
		apiErr := transactionLoadFailure(err)
		return cancellationFailure(apiErr), apiErr
	}

	if apiErr := refundableCheck(transaction); apiErr != nil {
		return cancellationFailure(apiErr), apiErr
	}

	if err := s.transactionRepo.Cancel(ctx, transaction.ID); err != nil {
		apiErr := finalizeFailure(err)
		return cancellationFailure(apiErr), apiErr
	}

	logger.Info("transaction service initiate cancellation success", logger.Fields{
		"transactionId": transaction.ID,
	})

	return models.CancellationResponse{
		APIResponse: models.OK("Cancellation Successful"),
	}, nil
}

// refundableCheck enforces the terminal-state rules shared by refund and
// cancellation: finalized transactions and refund ledger entries admit no
// further lifecycle operations.
func refundableCheck(transaction domain.Transaction) *commons.APIError {
	if transaction.Status.Terminal() {
		return commons.TransactionFinalized()
	}
	if transaction.Status == domain.TransactionStatusRefundTransaction {
		return commons.RefundLedgerEntry()
	}
	return nil
}

func transactionLoadFailure(err error) *commons.APIError {
	if errors.Is(err, domain.ErrRecordNotFound) {
		return commons.TransactionNotFound()
	}
	return commons.StorageUnavailable()
}

// finalizeFailure maps the repository's outcome of a status flip: a lost
// race against a concurrent refund/cancel surfaces exactly like a
// transaction that was already finalized.
func finalizeFailure(err error) *commons.APIError {
	if errors.Is(err, domain.ErrTransactionFinalized) {
		return commons.TransactionFinalized()
	}
	if errors.Is(err, domain.ErrRecordNotFound) {
		return commons.TransactionNotFound()
	}
	return commons.StorageUnavailable()
}

func paymentFailure(err *commons.APIError) models.PaymentResponse {
	return models.PaymentResponse{APIResponse: models.Failure(err)}
}

func refundFailure(err *commons.APIError) models.RefundResponse {
	return models.RefundResponse{APIResponse: models.Failure(err)}
}

func cancellationFailure(err *commons.APIError) models.CancellationResponse {
	return models.CancellationResponse{APIResponse: models.Failure(err)}
}
