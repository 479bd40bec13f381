package models

import "github.com/api-sage/payment-orchestrator/src/internal/commons"

// APIResponse is the envelope every endpoint returns. A nil ErrorCode means
// success; failures carry a code from the commons taxonomy.
type APIResponse struct {
	ErrorCode *int   `json:"ErrorCode"`
	Comment   string `json:"Comment"`
}

func OK(comment string) APIResponse {
	return APIResponse{Comment: comment}
}

func Failure(err *commons.APIError) APIResponse {
	code := err.Code
	return APIResponse{ErrorCode: &code, Comment: err.Comment}
}

type PaymentResponse struct {
	APIResponse
	TransactionUUID *int64 `json:"TransactionUUID,omitempty"`
}

type RefundResponse struct {
	APIResponse
	RefundTransactionUUID *int64 `json:"RefundTransactionUUID,omitempty"`
}

type CancellationResponse struct {
	APIResponse
}

type RegisterAccountResponse struct {
	APIResponse
	AccountNumber string `json:"AccountNumber,omitempty"`
}
