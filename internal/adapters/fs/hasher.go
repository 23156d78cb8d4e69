// Package fs implements digests over loaded requirement sequences.
package fs

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/whencanirun/internal/core/domain"
	"go.trai.ch/whencanirun/internal/core/ports"
)

var _ ports.Fingerprinter = (*Hasher)(nil)

// Hasher computes XXHash fingerprints of requirement sequences.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// Fingerprint hashes every requirement verbatim, in order, each followed by a
// zero byte so that adjacent entries cannot run together.
func (h *Hasher) Fingerprint(reqs domain.Requirements) string {
	hasher := xxhash.New()

	for _, req := range reqs {
		_, _ = hasher.WriteString(req.String())
		_, _ = hasher.Write([]byte{0})
	}

	return fmt.Sprintf("%016x", hasher.Sum64())
}
