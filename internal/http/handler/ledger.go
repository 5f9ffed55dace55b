package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"scholarledger/internal/core"
	"scholarledger/internal/ethereum"
	"scholarledger/internal/http/handler/middleware"
	"scholarledger/internal/http/payload"
	"scholarledger/internal/ledger"

	"go.uber.org/zap"
)

var (
	SubmitDonation    = "POST /ledger/donations"
	SubmitScholarship = "POST /ledger/scholarships"
	SubmitProof       = "POST /ledger/proofs"
	MintNFT           = "POST /ledger/nfts"
	GetTransaction    = "GET /ledger/tx/{hash}"
	WaitTransaction   = "GET /ledger/tx/{hash}/wait"
	GetReceipt        = "GET /ledger/tx/{hash}/receipt"
	GetBatchRLP       = "GET /ledger/batch/{rlpHex}"
	GetAccount        = "GET /ledger/accounts/{address}"
	ListNFTs          = "GET /ledger/nfts"
	NewCID            = "GET /ledger/cid"
	GetStats          = "GET /ledger/stats"
)

const defaultWaitTimeout = 30 * time.Second

type LedgerHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	ledger           LedgerService
}

func NewLedgerHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, ledgerService LedgerService) *LedgerHandler {
	return &LedgerHandler{
		logs:             logger,
		requestValidator: requestValidator,
		ledger:           ledgerService,
	}
}

// Register mounts every ledger route on mux.
func (h *LedgerHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc(SubmitDonation, h.HandleSubmitDonation)
	mux.HandleFunc(SubmitScholarship, h.HandleSubmitScholarship)
	mux.HandleFunc(SubmitProof, h.HandleSubmitProof)
	mux.HandleFunc(MintNFT, h.HandleMintNFT)
	mux.HandleFunc(GetTransaction, h.HandleGetTransaction)
	mux.HandleFunc(WaitTransaction, h.HandleWaitTransaction)
	mux.HandleFunc(GetReceipt, h.HandleGetReceipt)
	mux.HandleFunc(GetBatchRLP, h.HandleGetBatchRLP)
	mux.HandleFunc(GetAccount, h.HandleGetAccount)
	mux.HandleFunc(ListNFTs, h.HandleListNFTs)
	mux.HandleFunc(NewCID, h.HandleNewCID)
	mux.HandleFunc(GetStats, h.HandleGetStats)
}

func (h *LedgerHandler) HandleSubmitDonation(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestID(r.Context())

	var req payload.DonationRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.badRequest(w, "Could not submit donation", err, SubmitDonation, requestId)
		return
	}

	hash, err := h.ledger.SimulateDonation(r.Context(), req.ScholarshipID, req.Amount, req.From)
	if err != nil {
		h.fail(w, "Could not submit donation", err, SubmitDonation, requestId)
		return
	}

	h.logs.Infow("donation submitted",
		"hash", hash,
		"scholarship_id", req.ScholarshipID,
		"handler", SubmitDonation,
		"request_id", requestId)

	h.respond(w, submitted("Donation submitted", hash), http.StatusAccepted, requestId)
}

func (h *LedgerHandler) HandleSubmitScholarship(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestID(r.Context())

	var req payload.ScholarshipRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.badRequest(w, "Could not create scholarship", err, SubmitScholarship, requestId)
		return
	}

	hash, err := h.ledger.SimulateScholarshipCreation(r.Context(), req.StudentAddress, req.Goal)
	if err != nil {
		h.fail(w, "Could not create scholarship", err, SubmitScholarship, requestId)
		return
	}

	h.respond(w, submitted("Scholarship creation submitted", hash), http.StatusAccepted, requestId)
}

func (h *LedgerHandler) HandleSubmitProof(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestID(r.Context())

	var req payload.ProofRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.badRequest(w, "Could not submit proof", err, SubmitProof, requestId)
		return
	}

	hash, err := h.ledger.SimulateProofSubmission(r.Context(), req.ScholarshipID, req.MilestoneIndex, req.StudentAddress)
	if err != nil {
		h.fail(w, "Could not submit proof", err, SubmitProof, requestId)
		return
	}

	h.respond(w, submitted("Proof submitted", hash), http.StatusAccepted, requestId)
}

func (h *LedgerHandler) HandleMintNFT(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestID(r.Context())

	var req payload.MintRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.badRequest(w, "Could not mint NFT", err, MintNFT, requestId)
		return
	}

	rec, err := h.ledger.SimulateNFTMint(r.Context(), req.ToCore())
	if err != nil {
		h.fail(w, "Could not mint NFT", err, MintNFT, requestId)
		return
	}

	h.logs.Infow("nft minted",
		"token_id", rec.TokenID,
		"handler", MintNFT,
		"request_id", requestId)

	h.respond(w, Response{Message: "NFT minted", Data: rec}, http.StatusCreated, requestId)
}

func (h *LedgerHandler) HandleGetTransaction(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestID(r.Context())

	hashReq := payload.HashRequest{Hash: r.PathValue("hash")}
	if err := hashReq.Validate(); err != nil {
		h.badRequest(w, "Request failed", err, GetTransaction, requestId)
		return
	}

	tx, ok := h.ledger.GetTransactionStatus(hashReq.Hash)
	if !ok {
		h.respond(w, txNotFound, http.StatusNotFound, requestId)
		return
	}

	h.respond(w, Response{Data: tx}, http.StatusOK, requestId)
}

func (h *LedgerHandler) HandleWaitTransaction(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestID(r.Context())

	hashReq := payload.HashRequest{Hash: r.PathValue("hash")}
	if err := hashReq.Validate(); err != nil {
		h.badRequest(w, "Request failed", err, WaitTransaction, requestId)
		return
	}

	timeout, err := payload.ParseTimeout(r.URL.Query().Get("timeoutMs"), defaultWaitTimeout)
	if err != nil {
		h.badRequest(w, "Request failed", err, WaitTransaction, requestId)
		return
	}

	tx, err := h.ledger.WaitForConfirmation(r.Context(), hashReq.Hash, timeout)
	if err != nil {
		h.fail(w, "Transaction not confirmed", err, WaitTransaction, requestId)
		return
	}

	h.respond(w, Response{Message: "Transaction confirmed", Data: tx}, http.StatusOK, requestId)
}

// HandleGetReceipt serves the node-style receipt of a finalized transaction.
func (h *LedgerHandler) HandleGetReceipt(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestID(r.Context())

	hashReq := payload.HashRequest{Hash: r.PathValue("hash")}
	if err := hashReq.Validate(); err != nil {
		h.badRequest(w, "Request failed", err, GetReceipt, requestId)
		return
	}

	tx, ok := h.ledger.GetTransactionStatus(hashReq.Hash)
	if !ok {
		h.respond(w, txNotFound, http.StatusNotFound, requestId)
		return
	}

	view, err := ethereum.NewView(tx)
	if err != nil {
		h.fail(w, "Receipt not available", err, GetReceipt, requestId)
		return
	}

	h.respond(w, Response{Data: view}, http.StatusOK, requestId)
}

func (h *LedgerHandler) HandleGetBatchRLP(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestID(r.Context())

	rlpReq := payload.RLPRequest{RLP: r.PathValue("rlpHex")}
	if err := rlpReq.Validate(); err != nil {
		h.badRequest(w, "Request failed", err, GetBatchRLP, requestId)
		return
	}

	statuses, err := h.ledger.GetTransactionsRLP(r.Context(), rlpReq.RLP)
	if err != nil {
		h.badRequest(w, "Request failed", fmt.Errorf("parse RLP parameter: %w", err), GetBatchRLP, requestId)
		return
	}

	h.logs.Infow("batch status lookup",
		"count", len(statuses),
		"handler", GetBatchRLP,
		"request_id", requestId)

	h.respond(w, Response{Data: map[string][]core.TransactionStatus{"transactions": statuses}}, http.StatusOK, requestId)
}

type accountView struct {
	Address       string               `json:"address"`
	Balance       float64              `json:"balance"`
	NativeBalance string               `json:"nativeBalance"`
	Transactions  []ledger.Transaction `json:"transactions"`
}

func (h *LedgerHandler) HandleGetAccount(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestID(r.Context())
	address := r.PathValue("address")

	h.respond(w, Response{Data: accountView{
		Address:       address,
		Balance:       h.ledger.GetBalance(address),
		NativeBalance: h.ledger.GetNativeBalance(address).String(),
		Transactions:  h.ledger.GetTransactions(address),
	}}, http.StatusOK, requestId)
}

func (h *LedgerHandler) HandleListNFTs(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestID(r.Context())

	var records []ledger.NFTRecord
	if address := r.URL.Query().Get("address"); address != "" {
		records = h.ledger.GetNFTsForAddress(address)
	} else {
		records = h.ledger.GetNFTs()
	}

	h.respond(w, Response{Data: map[string][]ledger.NFTRecord{"nfts": records}}, http.StatusOK, requestId)
}

func (h *LedgerHandler) HandleNewCID(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestID(r.Context())
	h.respond(w, Response{Data: map[string]string{"cid": h.ledger.GenerateCID()}}, http.StatusOK, requestId)
}

func (h *LedgerHandler) HandleGetStats(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestID(r.Context())
	h.respond(w, Response{Data: h.ledger.Stats()}, http.StatusOK, requestId)
}

func (h *LedgerHandler) badRequest(w http.ResponseWriter, msg string, err error, route, requestId string) {
	h.respond(w, Response{
		Message: msg,
		Error:   fmt.Errorf("invalid request: %w", err).Error(),
	}, http.StatusBadRequest, requestId)
	h.logs.Errorw("failed to decode and validate request",
		"error", err,
		"handler", route,
		"request_id", requestId)
}

// fail maps engine errors to status codes. Unexpected errors are not echoed.
func (h *LedgerHandler) fail(w http.ResponseWriter, msg string, err error, route, requestId string) {
	resp := Response{Message: msg, Error: err.Error()}

	var code int
	switch {
	case errors.Is(err, core.ErrValidation):
		code = http.StatusBadRequest
	case errors.Is(err, ledger.ErrNotFound), errors.Is(err, ethereum.ErrNoReceipt):
		code = http.StatusNotFound
	case errors.Is(err, core.ErrTimeout):
		code = http.StatusRequestTimeout
	case errors.Is(err, core.ErrTransactionFailed):
		code = http.StatusConflict
	default:
		code = http.StatusInternalServerError
		resp.Error = "unexpected error occurred"
	}

	h.respond(w, resp, code, requestId)
	h.logs.Errorw("ledger request failed",
		"error", err,
		"status", code,
		"handler", route,
		"request_id", requestId)
}
