package units

import (
	"errors"
	"fmt"
	"math"
	"math/big"

	"github.com/ethereum/go-ethereum/params"
	"github.com/shopspring/decimal"
)

var ErrInvalidRate error = errors.New("exchange rate must be positive and finite")

// weiExp is the number of decimal places of one native coin.
const weiExp = 18

// Converter translates between a fiat display unit and wei using a fixed
// fiat-per-coin rate.
type Converter struct {
	rate decimal.Decimal
	wei  decimal.Decimal
}

func NewConverter(fiatPerCoin float64) (*Converter, error) {
	if !(fiatPerCoin > 0) || math.IsInf(fiatPerCoin, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRate, fiatPerCoin)
	}

	return &Converter{
		rate: decimal.NewFromFloat(fiatPerCoin),
		wei:  decimal.NewFromBigInt(big.NewInt(params.Ether), 0),
	}, nil
}

// ToNative converts a fiat amount to wei. Sub-wei remainders are truncated and
// non-finite amounts convert to zero.
func (c *Converter) ToNative(fiat float64) *big.Int {
	if math.IsNaN(fiat) || math.IsInf(fiat, 0) {
		return new(big.Int)
	}
	return decimal.NewFromFloat(fiat).
		Mul(c.wei).
		DivRound(c.rate, weiExp).
		Truncate(0).
		BigInt()
}

// ToFiat converts wei to a fiat amount. Precision below float64 is lost.
func (c *Converter) ToFiat(native *big.Int) float64 {
	if native == nil {
		return 0
	}
	return decimal.NewFromBigInt(native, -weiExp).Mul(c.rate).InexactFloat64()
}

// Rate returns the configured fiat-per-coin rate.
func (c *Converter) Rate() float64 {
	return c.rate.InexactFloat64()
}
