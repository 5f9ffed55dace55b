package ident

import (
	crand "crypto/rand"
	"io"
	"math/rand"
	"strings"
	"sync"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/ethereum/go-ethereum/crypto"
)

const (
	cidPrefix   = "Qm"
	cidBodySize = 44
	alphabet    = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"
)

// Generator produces opaque handles for transactions and content.
type Generator interface {
	TxHash() string
	CID() string
}

type generator struct {
	mu  sync.Mutex
	src io.Reader
}

// NewRandom returns a Generator backed by crypto/rand.
func NewRandom() Generator {
	return &generator{src: crand.Reader}
}

// NewSeeded returns a deterministic Generator. Two generators created with the
// same seed emit the same sequence of handles.
func NewSeeded(seed int64) Generator {
	return &generator{src: rand.New(rand.NewSource(seed))}
}

// TxHash returns a 0x-prefixed, 32-byte hex string.
func (g *generator) TxHash() string {
	return crypto.Keccak256Hash(g.read(32)).Hex()
}

// CID returns a Qm-prefixed base58 string of 46 characters.
func (g *generator) CID() string {
	body := base58.Encode(g.read(34))
	if len(body) > cidBodySize {
		body = body[:cidBodySize]
	}

	var sb strings.Builder
	sb.Grow(len(cidPrefix) + cidBodySize)
	sb.WriteString(cidPrefix)
	sb.WriteString(body)
	if pad := cidBodySize - len(body); pad > 0 {
		for _, b := range g.read(pad) {
			sb.WriteByte(alphabet[int(b)%len(alphabet)])
		}
	}

	return sb.String()
}

func (g *generator) read(n int) []byte {
	g.mu.Lock()
	defer g.mu.Unlock()

	buf := make([]byte, n)
	if _, err := io.ReadFull(g.src, buf); err != nil {
		// crypto/rand and math/rand never return short reads
		panic("ident: read random bytes: " + err.Error())
	}
	return buf
}
