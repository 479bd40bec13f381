package pns

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/api-sage/payment-orchestrator/src/internal/adapter/http/models"
	"github.com/api-sage/payment-orchestrator/src/internal/commons"
	"github.com/api-sage/payment-orchestrator/src/internal/logger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Client submits payments and refunds to the Payment Network Service. Any
// failure surfaces as a CodePNSFailed APIError carrying the upstream message.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// paymentSubmission is the network's schema. Payer-identifying fields the
// network does not need (payer currency code, recipient name, email) are
// never sent.
type paymentSubmission struct {
	Reference      string          `json:"Reference"`
	CardNumber     string          `json:"CardNumber"`
	Expiry         string          `json:"Expiry"`
	CVV            string          `json:"CVV"`
	HolderName     string          `json:"HolderName"`
	BillingAddress string          `json:"BillingAddress"`
	Amount         decimal.Decimal `json:"Amount"`
	CurrencyCode   string          `json:"CurrencyCode"`
	AccountNumber  string          `json:"AccountNumber"`
	SortCode       string          `json:"Sort-Code"`
}

type refundSubmission struct {
	Reference       string          `json:"Reference"`
	TransactionUUID int64           `json:"TransactionUUID"`
	Amount          decimal.Decimal `json:"Amount"`
	CurrencyCode    string          `json:"CurrencyCode"`
}

type networkResponse struct {
	StatusCode int    `json:"StatusCode"`
	Comment    string `json:"Comment"`
}

func (c *Client) SubmitPayment(ctx context.Context, cmd models.PaymentCommand, amount decimal.Decimal, currencyCode string) error {
	submission := paymentSubmission{
		Reference:      uuid.NewString(),
		CardNumber:     cmd.CardNumber,
		Expiry:         cmd.Expiry.Format("2006-01-02"),
		CVV:            cmd.CVV,
		HolderName:     cmd.CardHolderName,
		BillingAddress: cmd.CardHolderAddress,
		Amount:         amount,
		CurrencyCode:   currencyCode,
		AccountNumber:  cmd.PayeeBankAccNum,
		SortCode:       cmd.PayeeBankSortCode,
	}

	return c.submit(ctx, c.baseURL+"/payment", submission.Reference, submission)
}

func (c *Client) SubmitRefund(ctx context.Context, transactionID int64, amount decimal.Decimal, currencyCode string) error {
	submission := refundSubmission{
		Reference:       uuid.NewString(),
		TransactionUUID: transactionID,
		Amount:          amount,
		CurrencyCode:    currencyCode,
	}

	return c.submit(ctx, c.baseURL+"/refund", submission.Reference, submission)
}

func (c *Client) submit(ctx context.Context, url string, reference string, payload any) error {
	logger.Info("pns client submit", logger.Fields{
		"url":       url,
		"reference": reference,
	})

	body, err := json.Marshal(payload)
	if err != nil {
		return commons.PNSFailed(err.Error())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return commons.PNSFailed(err.Error())
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error("pns client transport failure", err, logger.Fields{
			"reference": reference,
		})
		return commons.PNSFailed(err.Error())
	}
	defer resp.Body.Close()

	var network networkResponse
	if err := json.NewDecoder(resp.Body).Decode(&network); err != nil {
		logger.Error("pns client decode failure", err, logger.Fields{
			"reference": reference,
		})
		return commons.PNSFailed(err.Error())
	}

	if network.StatusCode != http.StatusOK {
		logger.Error("pns client submission rejected", nil, logger.Fields{
			"reference":  reference,
			"statusCode": network.StatusCode,
			"comment":    network.Comment,
		})
		return commons.PNSFailed(network.Comment)
	}

	logger.Info("pns client submit success", logger.Fields{
		"reference": reference,
	})

	return nil
}
