package payload

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"scholarledger/internal/core"
	"scholarledger/internal/ledger"

	"github.com/jellydator/validation"
)

const maxWaitTimeout = 60 * time.Second

var (
	hashPattern  = regexp.MustCompile(`^0x[a-f0-9]{64}$`)
	rlpPattern   = regexp.MustCompile(`^(0x)?[a-fA-F0-9]+$`)
	errMalformed = errors.New("malformed parameter")
)

type DonationRequest struct {
	ScholarshipID string  `json:"scholarshipId"`
	Amount        float64 `json:"amount"`
	From          string  `json:"from"`
}

func (d DonationRequest) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.ScholarshipID, validation.Required),
		validation.Field(&d.Amount, validation.Required, core.Finite, validation.Min(0.0).Exclusive()),
		validation.Field(&d.From, validation.Required),
	)
}

type ScholarshipRequest struct {
	StudentAddress string  `json:"studentAddress"`
	Goal           float64 `json:"goal"`
}

func (s ScholarshipRequest) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.StudentAddress, validation.Required),
		validation.Field(&s.Goal, validation.Required, core.Finite, validation.Min(0.0).Exclusive()),
	)
}

type ProofRequest struct {
	ScholarshipID  string `json:"scholarshipId"`
	MilestoneIndex int    `json:"milestoneIndex"`
	StudentAddress string `json:"studentAddress"`
}

func (p ProofRequest) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.ScholarshipID, validation.Required),
		validation.Field(&p.MilestoneIndex, validation.Min(0)),
		validation.Field(&p.StudentAddress, validation.Required),
	)
}

type MintRequest struct {
	DonorAddress   string  `json:"donorAddress"`
	StudentAddress string  `json:"studentAddress"`
	StudentName    string  `json:"studentName"`
	Amount         float64 `json:"amount"`
	NFTType        string  `json:"nftType"`
	MilestoneID    *string `json:"milestoneId,omitempty"`
	MilestoneTitle *string `json:"milestoneTitle,omitempty"`
}

func (m MintRequest) Validate() error {
	return m.ToCore().Validate()
}

func (m MintRequest) ToCore() core.MintRequest {
	return core.MintRequest{
		DonorAddress:   m.DonorAddress,
		StudentAddress: m.StudentAddress,
		StudentName:    m.StudentName,
		Amount:         m.Amount,
		Kind:           ledger.NFTKind(m.NFTType),
		MilestoneID:    m.MilestoneID,
		MilestoneTitle: m.MilestoneTitle,
	}
}

// HashRequest validates a transaction hash taken from the path.
type HashRequest struct {
	Hash string
}

func (h HashRequest) Validate() error {
	return validation.ValidateStruct(&h,
		validation.Field(&h.Hash, validation.Required, validation.Match(hashPattern)),
	)
}

type RLPRequest struct {
	RLP string
}

func (r RLPRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.RLP, validation.Required, validation.Match(rlpPattern)),
	)
}

// ParseTimeout reads a timeoutMs query value, falling back to def when empty.
func ParseTimeout(raw string, def time.Duration) (time.Duration, error) {
	if raw == "" {
		return def, nil
	}

	ms, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: timeoutMs: %w", errMalformed, err)
	}

	if ms <= 0 || ms > maxWaitTimeout.Milliseconds() {
		return 0, fmt.Errorf("%w: timeoutMs must be within (0, %d]", errMalformed, maxWaitTimeout.Milliseconds())
	}
	return time.Duration(ms) * time.Millisecond, nil
}
