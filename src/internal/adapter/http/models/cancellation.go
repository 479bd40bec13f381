package models

import "github.com/api-sage/payment-orchestrator/src/internal/commons"

type CancellationRequest struct {
	TransactionUUID any `json:"TransactionUUID"`
}

type CancellationCommand struct {
	TransactionID int64
}

func (r CancellationRequest) Validate() (CancellationCommand, *commons.APIError) {
	if r.TransactionUUID == nil {
		return CancellationCommand{}, commons.MissingField("TransactionUUID")
	}

	id, ok := decodeTransactionID(r.TransactionUUID)
	if !ok {
		return CancellationCommand{}, commons.InvalidTransactionID()
	}

	return CancellationCommand{TransactionID: id}, nil
}
