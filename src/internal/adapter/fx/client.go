package fx

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/api-sage/payment-orchestrator/src/internal/commons"
	"github.com/api-sage/payment-orchestrator/src/internal/logger"
	"github.com/shopspring/decimal"
)

// Client talks to the external currency-conversion service. Any failure,
// transport-level or reported by the upstream, surfaces as a
// CodeCurrencyConversionFailed APIError carrying the upstream message.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

func NewClient(endpoint string) *Client {
	return &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type conversionRequest struct {
	CurrencyFrom string          `json:"CurrencyFrom"`
	CurrencyTo   string          `json:"CurrencyTo"`
	Date         string          `json:"Date"`
	Amount       decimal.Decimal `json:"Amount"`
}

type conversionResponse struct {
	StatusCode int             `json:"StatusCode"`
	Comment    string          `json:"Comment"`
	Amount     decimal.Decimal `json:"Amount"`
}

func (c *Client) Convert(ctx context.Context, fromCode string, toCode string, amount decimal.Decimal, date time.Time) (decimal.Decimal, error) {
	payload := conversionRequest{
		CurrencyFrom: fromCode,
		CurrencyTo:   toCode,
		Date:         date.Format("2006-01-02"),
		Amount:       amount,
	}

	logger.Info("fx client convert request", logger.Fields{
		"currencyFrom": fromCode,
		"currencyTo":   toCode,
		"date":         payload.Date,
	})

	body, err := json.Marshal(payload)
	if err != nil {
		return decimal.Decimal{}, commons.CurrencyConversionFailed(err.Error())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return decimal.Decimal{}, commons.CurrencyConversionFailed(err.Error())
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error("fx client convert transport failure", err, nil)
		return decimal.Decimal{}, commons.CurrencyConversionFailed(err.Error())
	}
	defer resp.Body.Close()

	var converted conversionResponse
	if err := json.NewDecoder(resp.Body).Decode(&converted); err != nil {
		logger.Error("fx client convert decode failure", err, nil)
		return decimal.Decimal{}, commons.CurrencyConversionFailed(err.Error())
	}

	if converted.StatusCode != http.StatusOK {
		logger.Error("fx client convert rejected", nil, logger.Fields{
			"statusCode": converted.StatusCode,
			"comment":    converted.Comment,
		})
		return decimal.Decimal{}, commons.CurrencyConversionFailed(converted.Comment)
	}

	logger.Info("fx client convert success", logger.Fields{
		"currencyFrom": fromCode,
		"currencyTo":   toCode,
	})

	return converted.Amount, nil
}
