package fs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/whencanirun/internal/adapters/fs"
	"go.trai.ch/whencanirun/internal/core/domain"
)

func TestHasher_Fingerprint(t *testing.T) {
	h := fs.NewHasher()

	t.Run("empty sequence", func(t *testing.T) {
		// XXH64 of no input.
		assert.Equal(t, "ef46db3751d8e999", h.Fingerprint(domain.Requirements{}))
		assert.Equal(t, h.Fingerprint(nil), h.Fingerprint(domain.Requirements{}))
	})

	t.Run("deterministic", func(t *testing.T) {
		reqs := domain.Requirements{"requests>=2.0\n", "flask==1.1\n"}
		assert.Equal(t, h.Fingerprint(reqs), h.Fingerprint(domain.Requirements{"requests>=2.0\n", "flask==1.1\n"}))
		assert.Len(t, h.Fingerprint(reqs), 16)
	})

	t.Run("order matters", func(t *testing.T) {
		a := h.Fingerprint(domain.Requirements{"a\n", "b\n"})
		b := h.Fingerprint(domain.Requirements{"b\n", "a\n"})
		assert.NotEqual(t, a, b)
	})

	t.Run("entries do not run together", func(t *testing.T) {
		a := h.Fingerprint(domain.Requirements{"ab", "c"})
		b := h.Fingerprint(domain.Requirements{"a", "bc"})
		assert.NotEqual(t, a, b)
	})

	t.Run("trailing newline is significant", func(t *testing.T) {
		assert.NotEqual(t, h.Fingerprint(domain.Requirements{"flask"}), h.Fingerprint(domain.Requirements{"flask\n"}))
	})
}
