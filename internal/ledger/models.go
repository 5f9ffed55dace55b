package ledger

import (
	"math/big"
	"strings"
	"time"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusFailed    Status = "failed"
)

// IsTerminal reports whether the engine will never change s again.
func (s Status) IsTerminal() bool {
	return s == StatusConfirmed || s == StatusFailed
}

type Kind string

const (
	KindDonation            Kind = "donation"
	KindScholarshipCreation Kind = "scholarship_creation"
	KindProofSubmission     Kind = "proof_submission"
	KindNFTMint             Kind = "nft_mint"
)

type NFTKind string

const (
	NFTKindDonation    NFTKind = "donation"
	NFTKindAchievement NFTKind = "achievement"
)

type Transaction struct {
	Hash        string            `json:"hash"`
	From        string            `json:"from"`
	To          *string           `json:"to,omitempty"`
	Value       *big.Int          `json:"value"` // wei
	Status      Status            `json:"status"`
	Timestamp   time.Time         `json:"timestamp"`
	BlockNumber *uint64           `json:"blockNumber,omitempty"`
	GasUsed     *uint64           `json:"gasUsed,omitempty"`
	GasPrice    *big.Int          `json:"gasPrice,omitempty"`
	Kind        Kind              `json:"type"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// Involves reports whether address is the sender or the recipient of tx.
func (tx Transaction) Involves(address string) bool {
	if sameAddress(tx.From, address) {
		return true
	}
	return tx.To != nil && sameAddress(*tx.To, address)
}

func (tx Transaction) clone() Transaction {
	c := tx
	if tx.To != nil {
		to := *tx.To
		c.To = &to
	}
	if tx.Value != nil {
		c.Value = new(big.Int).Set(tx.Value)
	}
	if tx.BlockNumber != nil {
		bn := *tx.BlockNumber
		c.BlockNumber = &bn
	}
	if tx.GasUsed != nil {
		gu := *tx.GasUsed
		c.GasUsed = &gu
	}
	if tx.GasPrice != nil {
		c.GasPrice = new(big.Int).Set(tx.GasPrice)
	}
	if tx.Metadata != nil {
		c.Metadata = make(map[string]string, len(tx.Metadata))
		for k, v := range tx.Metadata {
			c.Metadata[k] = v
		}
	}
	return c
}

type NFTRecord struct {
	TokenID         uint64    `json:"tokenId"`
	DonorAddress    string    `json:"donorAddress"`
	StudentAddress  string    `json:"studentAddress"`
	StudentName     string    `json:"studentName"`
	Amount          float64   `json:"amount"`
	MilestoneID     *string   `json:"milestoneId,omitempty"`
	MilestoneTitle  *string   `json:"milestoneTitle,omitempty"`
	Kind            NFTKind   `json:"nftType"`
	ImageRef        string    `json:"imageUrl"`
	Description     string    `json:"description"`
	MintedAt        time.Time `json:"mintedAt"`
	TransactionHash string    `json:"transactionHash"`
}

// State is the persisted ledger aggregate.
type State struct {
	Transactions []Transaction       `json:"transactions"`
	Balances     map[string]*big.Int `json:"balances"`
	BlockCounter uint64              `json:"blockNumber"` // next block number to assign
	NFTCounter   uint64              `json:"nftCounter"`  // next token id to assign
}

func NewState() State {
	return State{
		Transactions: []Transaction{},
		Balances:     map[string]*big.Int{},
		BlockCounter: 1,
		NFTCounter:   1,
	}
}

func (s State) clone() State {
	c := State{
		Transactions: make([]Transaction, len(s.Transactions)),
		Balances:     make(map[string]*big.Int, len(s.Balances)),
		BlockCounter: s.BlockCounter,
		NFTCounter:   s.NFTCounter,
	}
	for i, tx := range s.Transactions {
		c.Transactions[i] = tx.clone()
	}
	for addr, bal := range s.Balances {
		c.Balances[addr] = new(big.Int).Set(bal)
	}
	return c
}

// normalize repairs a decoded aggregate so the invariants hold even for
// records written by older versions.
func (s *State) normalize() {
	if s.Transactions == nil {
		s.Transactions = []Transaction{}
	}
	if s.Balances == nil {
		s.Balances = map[string]*big.Int{}
	}
	if s.BlockCounter == 0 {
		s.BlockCounter = 1
	}
	if s.NFTCounter == 0 {
		s.NFTCounter = 1
	}
}

func addressKey(address string) string {
	return strings.ToLower(address)
}

func sameAddress(a, b string) bool {
	return strings.EqualFold(a, b)
}
