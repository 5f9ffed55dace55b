package handler_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"scholarledger/internal/core"
	"scholarledger/internal/ethereum"
	"scholarledger/internal/http/handler"
	"scholarledger/internal/http/handler/fake"
	"scholarledger/internal/http/payload"
	"scholarledger/internal/ledger"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

type envelope struct {
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

var _ = Describe("LedgerHandler", func() {
	var (
		mux         *http.ServeMux
		fakeService *fake.LedgerService
		w           *httptest.ResponseRecorder
		req         *http.Request
		resp        envelope
		txHash      string
		fakeErr     error
	)

	BeforeEach(func() {
		fakeErr = errors.New("fake-error")
		txHash = "0x" + strings.Repeat("ab", 32)
		fakeService = new(fake.LedgerService)
		w = httptest.NewRecorder()
		resp = envelope{}

		mux = http.NewServeMux()
		handler.NewLedgerHandler(zap.NewNop().Sugar(), payload.Decoder{}, fakeService).Register(mux)
	})

	JustBeforeEach(func() {
		mux.ServeHTTP(w, req)
		Expect(w.Header().Get("Content-Type")).To(Equal("application/json"))
		Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
	})

	Describe("POST /ledger/donations", func() {
		BeforeEach(func() {
			req = httptest.NewRequest(http.MethodPost, "/ledger/donations",
				strings.NewReader(`{"scholarshipId":"S1","amount":5000,"from":"0xa"}`))
			fakeService.SimulateDonationReturns(txHash, nil)
		})

		When("the donation is accepted", func() {
			It("should return the hash", func() {
				Expect(w.Code).To(Equal(http.StatusAccepted))
				Expect(resp.Data).To(MatchJSON(fmt.Sprintf(`{"hash":%q}`, txHash)))

				Expect(fakeService.SimulateDonationCallCount()).To(Equal(1))
				_, id, amount, from := fakeService.SimulateDonationArgsForCall(0)
				Expect(id).To(Equal("S1"))
				Expect(amount).To(Equal(5000.0))
				Expect(from).To(Equal("0xa"))
			})
		})

		When("the payload is invalid", func() {
			BeforeEach(func() {
				req = httptest.NewRequest(http.MethodPost, "/ledger/donations",
					strings.NewReader(`{"scholarshipId":"S1","amount":-1,"from":"0xa"}`))
			})

			It("should return 400 without calling the ledger", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(resp.Error).To(ContainSubstring("amount"))
				Expect(fakeService.SimulateDonationCallCount()).To(BeZero())
			})
		})

		When("the ledger rejects the donation", func() {
			BeforeEach(func() {
				fakeService.SimulateDonationReturns("", fmt.Errorf("donation: %w", core.ErrValidation))
			})

			It("should return 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
			})
		})

		When("the ledger fails unexpectedly", func() {
			BeforeEach(func() {
				fakeService.SimulateDonationReturns("", fakeErr)
			})

			It("should return 500 without leaking the cause", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(resp.Error).NotTo(ContainSubstring(fakeErr.Error()))
			})
		})
	})

	Describe("POST /ledger/scholarships", func() {
		BeforeEach(func() {
			req = httptest.NewRequest(http.MethodPost, "/ledger/scholarships",
				strings.NewReader(`{"studentAddress":"0xs","goal":100000}`))
			fakeService.SimulateScholarshipCreationReturns(txHash, nil)
		})

		It("should return the hash", func() {
			Expect(w.Code).To(Equal(http.StatusAccepted))
			_, student, goal := fakeService.SimulateScholarshipCreationArgsForCall(0)
			Expect(student).To(Equal("0xs"))
			Expect(goal).To(Equal(100000.0))
		})
	})

	Describe("POST /ledger/proofs", func() {
		BeforeEach(func() {
			req = httptest.NewRequest(http.MethodPost, "/ledger/proofs",
				strings.NewReader(`{"scholarshipId":"S1","milestoneIndex":2,"studentAddress":"0xs"}`))
			fakeService.SimulateProofSubmissionReturns(txHash, nil)
		})

		It("should return the hash", func() {
			Expect(w.Code).To(Equal(http.StatusAccepted))
			_, id, index, student := fakeService.SimulateProofSubmissionArgsForCall(0)
			Expect(id).To(Equal("S1"))
			Expect(index).To(Equal(2))
			Expect(student).To(Equal("0xs"))
		})
	})

	Describe("POST /ledger/nfts", func() {
		BeforeEach(func() {
			req = httptest.NewRequest(http.MethodPost, "/ledger/nfts", strings.NewReader(
				`{"donorAddress":"0xd","studentAddress":"0xs","studentName":"Ada","amount":50,"nftType":"donation"}`))
			fakeService.SimulateNFTMintReturns(ledger.NFTRecord{TokenID: 1, TransactionHash: txHash}, nil)
		})

		It("should return the minted record", func() {
			Expect(w.Code).To(Equal(http.StatusCreated))

			var rec ledger.NFTRecord
			Expect(json.Unmarshal(resp.Data, &rec)).To(Succeed())
			Expect(rec.TokenID).To(Equal(uint64(1)))

			_, mint := fakeService.SimulateNFTMintArgsForCall(0)
			Expect(mint.Kind).To(Equal(ledger.NFTKindDonation))
			Expect(mint.StudentName).To(Equal("Ada"))
		})
	})

	Describe("GET /ledger/tx/{hash}", func() {
		BeforeEach(func() {
			req = httptest.NewRequest(http.MethodGet, "/ledger/tx/"+txHash, nil)
		})

		When("the transaction exists", func() {
			BeforeEach(func() {
				fakeService.GetTransactionStatusReturns(ledger.Transaction{Hash: txHash, Status: ledger.StatusPending}, true)
			})

			It("should return it", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				var tx ledger.Transaction
				Expect(json.Unmarshal(resp.Data, &tx)).To(Succeed())
				Expect(tx.Status).To(Equal(ledger.StatusPending))
				Expect(fakeService.GetTransactionStatusArgsForCall(0)).To(Equal(txHash))
			})
		})

		When("the transaction is unknown", func() {
			It("should return 404", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})

		When("the hash is malformed", func() {
			BeforeEach(func() {
				req = httptest.NewRequest(http.MethodGet, "/ledger/tx/nothex", nil)
			})

			It("should return 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.GetTransactionStatusCallCount()).To(BeZero())
			})
		})
	})

	Describe("GET /ledger/tx/{hash}/wait", func() {
		BeforeEach(func() {
			req = httptest.NewRequest(http.MethodGet, "/ledger/tx/"+txHash+"/wait?timeoutMs=1500", nil)
			fakeService.WaitForConfirmationReturns(ledger.Transaction{Hash: txHash, Status: ledger.StatusConfirmed}, nil)
		})

		It("should pass the timeout through", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			_, hash, timeout := fakeService.WaitForConfirmationArgsForCall(0)
			Expect(hash).To(Equal(txHash))
			Expect(timeout).To(Equal(1500 * time.Millisecond))
		})

		DescribeTable("mapping wait errors",
			func(err error, code int) {
				fakeService.WaitForConfirmationReturns(ledger.Transaction{}, err)
				w = httptest.NewRecorder()
				mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ledger/tx/"+txHash+"/wait", nil))
				Expect(w.Code).To(Equal(code))
			},
			Entry("timeout", fmt.Errorf("wait: %w", core.ErrTimeout), http.StatusRequestTimeout),
			Entry("failed", fmt.Errorf("wait: %w", core.ErrTransactionFailed), http.StatusConflict),
			Entry("unknown", fmt.Errorf("wait: %w", ledger.ErrNotFound), http.StatusNotFound),
		)

		When("the timeout is malformed", func() {
			BeforeEach(func() {
				req = httptest.NewRequest(http.MethodGet, "/ledger/tx/"+txHash+"/wait?timeoutMs=later", nil)
			})

			It("should return 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.WaitForConfirmationCallCount()).To(BeZero())
			})
		})
	})

	Describe("GET /ledger/tx/{hash}/receipt", func() {
		BeforeEach(func() {
			req = httptest.NewRequest(http.MethodGet, "/ledger/tx/"+txHash+"/receipt", nil)
		})

		When("the transaction is confirmed", func() {
			BeforeEach(func() {
				block, gas := uint64(3), uint64(21000)
				fakeService.GetTransactionStatusReturns(ledger.Transaction{
					Hash:        txHash,
					From:        "0xa",
					Value:       big.NewInt(1),
					Status:      ledger.StatusConfirmed,
					BlockNumber: &block,
					GasUsed:     &gas,
					GasPrice:    big.NewInt(20_000_000_000),
					Kind:        ledger.KindDonation,
				}, true)
			})

			It("should return a successful receipt", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				var view map[string]any
				Expect(json.Unmarshal(resp.Data, &view)).To(Succeed())
				Expect(view).To(HaveKeyWithValue("status", 1.0))
				Expect(view).To(HaveKeyWithValue("blockNumber", 3.0))
			})
		})

		When("the transaction is still pending", func() {
			BeforeEach(func() {
				fakeService.GetTransactionStatusReturns(ledger.Transaction{Hash: txHash, Status: ledger.StatusPending}, true)
			})

			It("should return 404", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
				Expect(resp.Error).To(ContainSubstring(ethereum.ErrNoReceipt.Error()))
			})
		})
	})

	Describe("GET /ledger/batch/{rlpHex}", func() {
		BeforeEach(func() {
			req = httptest.NewRequest(http.MethodGet, "/ledger/batch/c0", nil)
			fakeService.GetTransactionsRLPReturns([]core.TransactionStatus{{Hash: txHash}}, nil)
		})

		It("should return the statuses", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(resp.Data).To(MatchJSON(fmt.Sprintf(`{"transactions":[{"hash":%q,"found":false}]}`, txHash)))
		})

		When("decoding fails", func() {
			BeforeEach(func() {
				fakeService.GetTransactionsRLPReturns(nil, fakeErr)
			})

			It("should return 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
			})
		})
	})

	Describe("GET /ledger/accounts/{address}", func() {
		BeforeEach(func() {
			req = httptest.NewRequest(http.MethodGet, "/ledger/accounts/0xa", nil)
			fakeService.GetBalanceReturns(5000)
			fakeService.GetNativeBalanceReturns(big.NewInt(25_000_000_000_000_000))
			fakeService.GetTransactionsReturns([]ledger.Transaction{})
		})

		It("should return balances and history", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(resp.Data).To(MatchJSON(`{"address":"0xa","balance":5000,"nativeBalance":"25000000000000000","transactions":[]}`))
		})
	})

	Describe("GET /ledger/nfts", func() {
		BeforeEach(func() {
			fakeService.GetNFTsReturns([]ledger.NFTRecord{{TokenID: 1}, {TokenID: 2}})
			fakeService.GetNFTsForAddressReturns([]ledger.NFTRecord{{TokenID: 2}})
		})

		When("no address is given", func() {
			BeforeEach(func() {
				req = httptest.NewRequest(http.MethodGet, "/ledger/nfts", nil)
			})

			It("should list every record", func() {
				Expect(fakeService.GetNFTsCallCount()).To(Equal(1))
				Expect(fakeService.GetNFTsForAddressCallCount()).To(BeZero())
			})
		})

		When("an address is given", func() {
			BeforeEach(func() {
				req = httptest.NewRequest(http.MethodGet, "/ledger/nfts?address=0xs", nil)
			})

			It("should filter by it", func() {
				Expect(fakeService.GetNFTsForAddressArgsForCall(0)).To(Equal("0xs"))
				Expect(fakeService.GetNFTsCallCount()).To(BeZero())
			})
		})
	})

	Describe("GET /ledger/cid", func() {
		BeforeEach(func() {
			req = httptest.NewRequest(http.MethodGet, "/ledger/cid", nil)
			fakeService.GenerateCIDReturns("QmTest")
		})

		It("should return a fresh identifier", func() {
			Expect(resp.Data).To(MatchJSON(`{"cid":"QmTest"}`))
		})
	})

	Describe("GET /ledger/stats", func() {
		BeforeEach(func() {
			req = httptest.NewRequest(http.MethodGet, "/ledger/stats", nil)
			fakeService.StatsReturns(core.Stats{Transactions: 3, ByStatus: map[string]int{"pending": 3}, BlockHeight: 0})
		})

		It("should return the summary", func() {
			Expect(resp.Data).To(MatchJSON(`{"transactions":3,"byStatus":{"pending":3},"blockHeight":0,"nfts":0}`))
		})
	})

	When("the request body cannot be decoded", func() {
		var fakeValidator *fake.RequestValidator

		BeforeEach(func() {
			fakeValidator = new(fake.RequestValidator)
			fakeValidator.DecodeJSONPayloadReturns(fakeErr)

			mux = http.NewServeMux()
			handler.NewLedgerHandler(zap.NewNop().Sugar(), fakeValidator, fakeService).Register(mux)
			req = httptest.NewRequest(http.MethodPost, "/ledger/nfts", strings.NewReader(`{}`))
		})

		It("should return 400 with the decoder error", func() {
			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(resp.Error).To(ContainSubstring(fakeErr.Error()))
			Expect(fakeValidator.DecodeJSONPayloadCallCount()).To(Equal(1))
			argReq, _ := fakeValidator.DecodeJSONPayloadArgsForCall(0)
			Expect(argReq.URL.Path).To(Equal("/ledger/nfts"))
			Expect(fakeService.SimulateNFTMintCallCount()).To(BeZero())
		})
	})
})
