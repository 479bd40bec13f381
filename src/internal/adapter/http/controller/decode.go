package controller

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/api-sage/payment-orchestrator/src/internal/adapter/http/models"
	"github.com/api-sage/payment-orchestrator/src/internal/commons"
)

// decodeRequest runs the request-shape checks in their contractual order:
// empty body, malformed body, then HTTP method. The method check runs after
// the body checks so an empty-body GET reports code 100, not 105.
func decodeRequest(r *http.Request, dst any) *commons.APIError {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return commons.MalformedBody()
	}
	if len(body) == 0 {
		return commons.EmptyBody()
	}

	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()
	if err := decoder.Decode(dst); err != nil {
		return commons.MalformedBody()
	}

	if r.Method != http.MethodPost {
		return commons.MethodNotAllowed()
	}

	return nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeFailure(w http.ResponseWriter, err *commons.APIError) {
	writeJSON(w, http.StatusBadRequest, models.Failure(err))
}
