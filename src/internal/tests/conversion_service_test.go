package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/api-sage/payment-orchestrator/src/internal/adapter/repository/memory"
	"github.com/api-sage/payment-orchestrator/src/internal/commons"
	"github.com/api-sage/payment-orchestrator/src/internal/usecase/services"
	"github.com/shopspring/decimal"
)

func TestConvertDelegatesToClient(t *testing.T) {
	client := &fakeConversionClient{result: decimal.RequireFromString("79.21")}
	service := services.NewConversionService(memory.NewCurrencyRepository(), client)

	converted, err := service.Convert(context.Background(), "826", "840", decimal.RequireFromString("62.50"), time.Now().UTC())
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if !converted.Equal(decimal.RequireFromString("79.21")) {
		t.Fatalf("expected 79.21, got %s", converted)
	}
	if client.calls != 1 {
		t.Fatalf("expected one client call, got %d", client.calls)
	}
}

func TestConvertRejectsUnknownCurrency(t *testing.T) {
	client := &fakeConversionClient{}
	service := services.NewConversionService(memory.NewCurrencyRepository(), client)

	_, err := service.Convert(context.Background(), "840", "000", decimal.RequireFromString("10.00"), time.Now().UTC())
	apiErr := assertAPIError(t, err, commons.CodeInvalidField)
	if apiErr.Comment != "Error. One or more currencies provided does not exist" {
		t.Fatalf("unexpected comment %q", apiErr.Comment)
	}
	if client.calls != 0 {
		t.Fatal("client must not be called for an unknown currency")
	}
}

func TestConvertPropagatesClientFailure(t *testing.T) {
	client := &fakeConversionClient{err: commons.CurrencyConversionFailed("rate source unavailable")}
	service := services.NewConversionService(memory.NewCurrencyRepository(), client)

	_, err := service.Convert(context.Background(), "826", "840", decimal.RequireFromString("10.00"), time.Now().UTC())
	assertAPIError(t, err, commons.CodeCurrencyConversionFailed)
}
