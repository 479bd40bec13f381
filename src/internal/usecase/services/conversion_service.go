package services

import (
	"context"
	"errors"
	"time"

	"github.com/api-sage/payment-orchestrator/src/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/payment-orchestrator/src/internal/commons"
	"github.com/api-sage/payment-orchestrator/src/internal/domain"
	"github.com/api-sage/payment-orchestrator/src/internal/logger"
	"github.com/api-sage/payment-orchestrator/src/internal/usecase/service_interfaces"
	"github.com/shopspring/decimal"
)

var _ service_interfaces.ConversionService = (*ConversionService)(nil)

type ConversionService struct {
	currencyRepo repo_interfaces.CurrencyRepository
	client       service_interfaces.ConversionClient
}

func NewConversionService(currencyRepo repo_interfaces.CurrencyRepository, client service_interfaces.ConversionClient) *ConversionService {
	return &ConversionService{
		currencyRepo: currencyRepo,
		client:       client,
	}
}

// Convert checks both currency codes against the reference set, then
// delegates to the external converter.
func (s *ConversionService) Convert(ctx context.Context, fromCode string, toCode string, amount decimal.Decimal, date time.Time) (decimal.Decimal, error) {
	for _, code := range []string{fromCode, toCode} {
		if _, err := s.currencyRepo.GetByCode(ctx, code); err != nil {
			if errors.Is(err, domain.ErrRecordNotFound) {
				return decimal.Decimal{}, commons.InvalidField("Error. One or more currencies provided does not exist")
			}
			logger.Error("conversion service currency lookup failed", err, logger.Fields{
				"currencyCode": code,
			})
			return decimal.Decimal{}, commons.StorageUnavailable()
		}
	}

	converted, err := s.client.Convert(ctx, fromCode, toCode, amount, date)
	if err != nil {
		return decimal.Decimal{}, err
	}

	logger.Info("conversion service convert success", logger.Fields{
		"currencyFrom": fromCode,
		"currencyTo":   toCode,
	})

	return converted, nil
}
