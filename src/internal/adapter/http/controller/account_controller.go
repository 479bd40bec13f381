package controller

import (
	"net/http"
	"time"

	"github.com/api-sage/payment-orchestrator/src/internal/adapter/http/models"
	"github.com/api-sage/payment-orchestrator/src/internal/logger"
	"github.com/api-sage/payment-orchestrator/src/internal/usecase/service_interfaces"
)

type AccountController struct {
	service service_interfaces.AccountService
}

func NewAccountController(service service_interfaces.AccountService) *AccountController {
	return &AccountController{service: service}
}

func (c *AccountController) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/register-personal-account", c.registerPersonalAccount)
	mux.HandleFunc("/register-business-account", c.registerBusinessAccount)
}

func (c *AccountController) registerPersonalAccount(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	var req models.RegisterPersonalAccountRequest
	if apiErr := decodeRequest(r, &req); apiErr != nil {
		logError(r, apiErr, nil)
		writeFailure(w, apiErr)
		logResponse(r, http.StatusBadRequest, models.Failure(apiErr), start)
		return
	}
	logRequest(r, req)

	response, err := c.service.RegisterPersonalAccount(r.Context(), req)
	if err != nil {
		logError(r, err, logger.Fields{"comment": response.Comment})
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, response, start)
		return
	}

	writeJSON(w, http.StatusOK, response)
	logResponse(r, http.StatusOK, response, start)
}

func (c *AccountController) registerBusinessAccount(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	var req models.RegisterBusinessAccountRequest
	if apiErr := decodeRequest(r, &req); apiErr != nil {
		logError(r, apiErr, nil)
		writeFailure(w, apiErr)
		logResponse(r, http.StatusBadRequest, models.Failure(apiErr), start)
		return
	}
	logRequest(r, req)

	response, err := c.service.RegisterBusinessAccount(r.Context(), req)
	if err != nil {
		logError(r, err, logger.Fields{"comment": response.Comment})
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, response, start)
		return
	}

	writeJSON(w, http.StatusOK, response)
	logResponse(r, http.StatusOK, response, start)
}
