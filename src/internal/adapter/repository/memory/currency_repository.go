package memory

import (
	"context"

	"github.com/api-sage/payment-orchestrator/src/internal/domain"
)

// CurrencyRepository serves the static ISO 4217 reference set supported by
// the currency converter.
type CurrencyRepository struct {
	currencies map[string]domain.Currency
}

func NewCurrencyRepository() *CurrencyRepository {
	seed := []domain.Currency{
		{Code: "036", Name: "Australian Dollar"},
		{Code: "124", Name: "Canadian Dollar"},
		{Code: "156", Name: "Yuan Renminbi"},
		{Code: "356", Name: "Indian Rupee"},
		{Code: "392", Name: "Yen"},
		{Code: "566", Name: "Naira"},
		{Code: "578", Name: "Norwegian Krone"},
		{Code: "710", Name: "Rand"},
		{Code: "756", Name: "Swiss Franc"},
		{Code: "826", Name: "Pound Sterling"},
		{Code: "840", Name: "US Dollar"},
		{Code: "936", Name: "Ghana Cedi"},
		{Code: "978", Name: "Euro"},
	}

	currencies := make(map[string]domain.Currency, len(seed))
	for _, currency := range seed {
		currencies[currency.Code] = currency
	}

	return &CurrencyRepository{currencies: currencies}
}

func (r *CurrencyRepository) GetByCode(_ context.Context, code string) (domain.Currency, error) {
	currency, ok := r.currencies[code]
	if !ok {
		return domain.Currency{}, domain.ErrRecordNotFound
	}

	return currency, nil
}
