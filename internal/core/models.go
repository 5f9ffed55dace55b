package core

import (
	"errors"
	"math"
	"math/big"

	"scholarledger/internal/ledger"

	"github.com/ethereum/go-ethereum/params"
	"github.com/jellydator/validation"
)

var (
	ErrValidation        error = errors.New("validation failed")
	ErrTransactionFailed error = errors.New("transaction failed")
	ErrTimeout           error = errors.New("timed out waiting for confirmation")
)

// Finite rejects NaN and infinite amounts.
var Finite = validation.By(func(value any) error {
	var f float64
	switch v := value.(type) {
	case float64:
		f = v
	case *float64:
		if v == nil {
			return nil
		}
		f = *v
	default:
		return nil
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return validation.NewError("validation_not_finite", "must be a finite number")
	}
	return nil
})

// Gas charged per transaction kind. The values only need to look plausible.
var gasByKind = map[ledger.Kind]uint64{
	ledger.KindDonation:            params.TxGas,
	ledger.KindScholarshipCreation: 250_000,
	ledger.KindProofSubmission:     90_000,
	ledger.KindNFTMint:             150_000,
}

// GasPrice is the fixed price attached to every confirmed transaction.
var GasPrice = new(big.Int).Mul(big.NewInt(20), big.NewInt(params.GWei))

func GasFor(kind ledger.Kind) uint64 {
	return gasByKind[kind]
}

type MintRequest struct {
	DonorAddress   string         `json:"donorAddress"`
	StudentAddress string         `json:"studentAddress"`
	StudentName    string         `json:"studentName"`
	Amount         float64        `json:"amount"`
	Kind           ledger.NFTKind `json:"nftType"`
	MilestoneID    *string        `json:"milestoneId,omitempty"`
	MilestoneTitle *string        `json:"milestoneTitle,omitempty"`
}

// Stats summarizes the ledger for dashboards.
type Stats struct {
	Transactions int            `json:"transactions"`
	ByStatus     map[string]int `json:"byStatus"`
	BlockHeight  uint64         `json:"blockHeight"` // highest assigned block, 0 when none
	NFTs         int            `json:"nfts"`
}

// TransactionStatus is one entry of a batch status lookup.
type TransactionStatus struct {
	Hash        string              `json:"hash"`
	Found       bool                `json:"found"`
	Transaction *ledger.Transaction `json:"transaction,omitempty"`
}
