package models

import (
	"encoding/json"
	"strings"

	"github.com/api-sage/payment-orchestrator/src/internal/commons"
	"github.com/shopspring/decimal"
)

// validationRule is one step of an ordered validation chain. Rules run in
// declaration order and the chain stops at the first failure, so the
// reported error is deterministic for any given request.
type validationRule struct {
	field string
	check func() *commons.APIError
}

func runValidation(rules []validationRule) *commons.APIError {
	for _, rule := range rules {
		if err := rule.check(); err != nil {
			return err
		}
	}
	return nil
}

func requireString(field string, value *string) validationRule {
	return validationRule{field: field, check: func() *commons.APIError {
		if value == nil {
			return commons.MissingField(field)
		}
		return nil
	}}
}

func requirePresent(field string, value any) validationRule {
	return validationRule{field: field, check: func() *commons.APIError {
		if value == nil {
			return commons.MissingField(field)
		}
		return nil
	}}
}

// stripSeparators removes the whitespace and hyphens commonly typed into
// card numbers and sort codes.
func stripSeparators(value string) string {
	cleaned := strings.ReplaceAll(value, " ", "")
	cleaned = strings.ReplaceAll(cleaned, "-", "")
	return strings.TrimSpace(cleaned)
}

func digitsOnly(value string) bool {
	if value == "" {
		return false
	}
	for _, ch := range value {
		if ch < '0' || ch > '9' {
			return false
		}
	}
	return true
}

func isDigits(value string, length int) bool {
	return len(value) == length && digitsOnly(value)
}

// decodeAmount accepts the numeric forms a JSON body can carry an amount
// in: json.Number when the decoder ran with UseNumber, float64 otherwise.
func decodeAmount(value any) (decimal.Decimal, bool) {
	switch typed := value.(type) {
	case json.Number:
		amount, err := decimal.NewFromString(typed.String())
		if err != nil {
			return decimal.Decimal{}, false
		}
		return amount, true
	case float64:
		return decimal.NewFromFloat(typed), true
	default:
		return decimal.Decimal{}, false
	}
}

// decodeTransactionID accepts only non-negative integers.
func decodeTransactionID(value any) (int64, bool) {
	switch typed := value.(type) {
	case json.Number:
		id, err := typed.Int64()
		if err != nil || id < 0 {
			return 0, false
		}
		return id, true
	case float64:
		id := int64(typed)
		if float64(id) != typed || id < 0 {
			return 0, false
		}
		return id, true
	default:
		return 0, false
	}
}
