package handler

import (
	"bytes"
	"encoding/json"
	"net/http"

	"scholarledger/internal/ledger"
)

const oopsErr = "Oops! Something went wrong. Please try again later."

// Response is the envelope of every ledger API reply.
type Response struct {
	Message string `json:"message,omitempty"` // short message for humans
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

var txNotFound = Response{
	Message: "Transaction not found",
	Error:   ledger.ErrNotFound.Error(),
}

// submitted acknowledges a transaction that was accepted as pending.
func submitted(msg, hash string) Response {
	return Response{Message: msg, Data: map[string]string{"hash": hash}}
}

// respond encodes resp fully before the header is written.
func (h *LedgerHandler) respond(w http.ResponseWriter, resp Response, code int, requestId string) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(resp); err != nil {
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(Response{Error: oopsErr})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(buf.Bytes()); err != nil {
		h.logs.Debugw("failed to write response",
			"error", err,
			"request_id", requestId)
	}
}
