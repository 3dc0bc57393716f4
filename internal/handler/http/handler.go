// Package handler exposes the backoffice HTTP surface. Responses mirror the
// upstream's envelope convention: failures are ordinary payloads with
// success=false, never bare HTTP error text.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopnobd/backoffice/internal/logger"
	"github.com/shopnobd/backoffice/internal/models"
	"go.uber.org/zap"
)

// maximum in-memory size for multipart uploads before spilling to disk
const maxUploadMemory = 32 << 20

type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("write response", zap.Error(err))
	}
}

func writeMessage(w http.ResponseWriter, status int, success bool, msg string) {
	writeJSON(w, status, envelope{Success: success, Message: msg})
}

// writeError maps the error taxonomy to responses: validation failures
// become 400s, upstream business failures keep the 200 + success=false
// contract, everything else is a 502 carrying the transport error message.
func writeError(w http.ResponseWriter, err error) {
	var verr *models.ValidationError
	if errors.As(err, &verr) {
		writeMessage(w, http.StatusBadRequest, false, verr.Reason)
		return
	}
	var uerr *models.UpstreamError
	if errors.As(err, &uerr) {
		writeMessage(w, http.StatusOK, false, uerr.Message)
		return
	}
	writeMessage(w, http.StatusBadGateway, false, err.Error())
}

func decodeBody(r *http.Request, v any) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return &models.ValidationError{Reason: "invalid request body"}
	}
	return nil
}
