package controller

import (
	"net/http"
	"time"

	"github.com/api-sage/payment-orchestrator/src/internal/adapter/http/models"
	"github.com/api-sage/payment-orchestrator/src/internal/logger"
	"github.com/api-sage/payment-orchestrator/src/internal/usecase/service_interfaces"
)

type TransactionController struct {
	service service_interfaces.TransactionService
}

func NewTransactionController(service service_interfaces.TransactionService) *TransactionController {
	return &TransactionController{service: service}
}

func (c *TransactionController) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/initiate-payment", c.initiatePayment)
	mux.HandleFunc("/initiate-refund", c.initiateRefund)
	mux.HandleFunc("/initiate-cancellation", c.initiateCancellation)
}

func (c *TransactionController) initiatePayment(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	var req models.PaymentRequest
	if apiErr := decodeRequest(r, &req); apiErr != nil {
		logError(r, apiErr, nil)
		writeFailure(w, apiErr)
		logResponse(r, http.StatusBadRequest, models.Failure(apiErr), start)
		return
	}
	logRequest(r, req)

	response, err := c.service.InitiatePayment(r.Context(), req)
	if err != nil {
		logError(r, err, logger.Fields{"comment": response.Comment})
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, response, start)
		return
	}

	writeJSON(w, http.StatusOK, response)
	logResponse(r, http.StatusOK, response, start)
}

func (c *TransactionController) initiateRefund(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	var req models.RefundRequest
	if apiErr := decodeRequest(r, &req); apiErr != nil {
		logError(r, apiErr, nil)
		writeFailure(w, apiErr)
		logResponse(r, http.StatusBadRequest, models.Failure(apiErr), start)
		return
	}
	logRequest(r, req)

	response, err := c.service.InitiateRefund(r.Context(), req)
	if err != nil {
		logError(r, err, logger.Fields{"comment": response.Comment})
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, response, start)
		return
	}

	writeJSON(w, http.StatusOK, response)
	logResponse(r, http.StatusOK, response, start)
}

func (c *TransactionController) initiateCancellation(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	var req models.CancellationRequest
	if apiErr := decodeRequest(r, &req); apiErr != nil {
		logError(r, apiErr, nil)
		writeFailure(w, apiErr)
		logResponse(r, http.StatusBadRequest, models.Failure(apiErr), start)
		return
	}
	logRequest(r, req)

	response, err := c.service.InitiateCancellation(r.Context(), req)
	if err != nil {
		logError(r, err, logger.Fields{"comment": response.Comment})
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, response, start)
		return
	}

	writeJSON(w, http.StatusOK, response)
	logResponse(r, http.StatusOK, response, start)
}
