package commons

import (
	"errors"
	"fmt"
)

// Wire-level error codes. The integer values are a published contract and
// must never be renumbered.
const (
	CodeEmptyBody                    = 100
	CodeMalformedBody                = 101
	CodeMissingField                 = 102
	CodeInvalidType                  = 103
	CodeInvalidField                 = 104
	CodeMethodNotAllowed             = 105
	CodePayerCardNotFound            = 106
	CodePayeeBankNotFound            = 107
	CodePayerAccountNotFound         = 108
	CodePayeeBusinessAccountNotFound = 109
	CodeCurrencyConversionFailed     = 201
	CodePNSFailed                    = 301
	CodeStorageUnavailable           = 401
	CodeTransactionNotFound          = 402
	CodeRefundNotCompleted           = 403
	CodeTransactionFinalized         = 404
)

// APIError pairs a wire-level code with the comment returned to the caller.
type APIError struct {
	Code    int
	Comment string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Code, e.Comment)
}

func New(code int, comment string) *APIError {
	return &APIError{Code: code, Comment: comment}
}

// Wire converts err into its wire-level form. Anything that is not already
// an APIError is treated as a storage fault.
func Wire(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return StorageUnavailable()
}

func EmptyBody() *APIError {
	return New(CodeEmptyBody, "Error. Body of the request is empty")
}

func MalformedBody() *APIError {
	return New(CodeMalformedBody, "Error. Request is not in JSON format")
}

func MissingField(field string) *APIError {
	return New(CodeMissingField, fmt.Sprintf("Could not find field %q.", field))
}

func InvalidTransactionID() *APIError {
	return New(CodeInvalidType, "Error. Transaction ID needs to be a positive integer")
}

func InvalidField(comment string) *APIError {
	return New(CodeInvalidField, comment)
}

func MethodNotAllowed() *APIError {
	return New(CodeMethodNotAllowed, "Error. Only the POST method is accepted")
}

func PayerCardNotFound() *APIError {
	return New(CodePayerCardNotFound, "Error. Payer card details could not be located.")
}

func PayeeBankNotFound() *APIError {
	return New(CodePayeeBankNotFound, "Error. Payee bank details could not be located.")
}

func PayerAccountNotFound() *APIError {
	return New(CodePayerAccountNotFound, "Error. Payer account could not be located.")
}

func PayeeBusinessAccountNotFound() *APIError {
	return New(CodePayeeBusinessAccountNotFound, "Error. Payee business account could not be located.")
}

func CurrencyConversionFailed(upstream string) *APIError {
	return New(CodeCurrencyConversionFailed, appendUpstream("An error occurred with currency conversion.", upstream))
}

func PNSFailed(upstream string) *APIError {
	return New(CodePNSFailed, appendUpstream("An error occurred with contacting the Payment Network Service.", upstream))
}

func StorageUnavailable() *APIError {
	return New(CodeStorageUnavailable, "Error. The record store is currently unavailable.")
}

func TransactionNotFound() *APIError {
	return New(CodeTransactionNotFound, "Transaction with the parameters provided could not be located.")
}

func RefundNotCompleted(comment string) *APIError {
	return New(CodeRefundNotCompleted, comment)
}

func TransactionFinalized() *APIError {
	return New(CodeTransactionFinalized, "Error. Transaction has already been refunded or cancelled.")
}

func RefundLedgerEntry() *APIError {
	return New(CodeTransactionFinalized, "Error. A refund transaction cannot be refunded or cancelled.")
}

func appendUpstream(base, upstream string) string {
	if upstream == "" {
		return base
	}
	return base + " " + upstream
}
