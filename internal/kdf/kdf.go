// Package kdf implements the IKEv2 prf+ key derivation function as a
// thin wrapper around HKDF in expand-only mode.
package kdf

import (
	"fmt"
	"hash"
	"io"

	"golang.org/x/crypto/hkdf"
)

// PRFPlus derives keying material from a pseudo-random key using the
// prf+ construction from RFC 7296, which matches HKDF-Expand (RFC
// 5869) over the configured hash. The salt plays the role of the HKDF
// info field.
type PRFPlus struct {
	hash func() hash.Hash
	key  []byte
	salt []byte
}

// New creates a prf+ instance over the given hash constructor, e.g.
// sha256.New.
func New(h func() hash.Hash) *PRFPlus {
	return &PRFPlus{hash: h}
}

// SetKey sets the pseudo-random key. The slice is copied; the previous
// key is wiped.
func (p *PRFPlus) SetKey(key []byte) {
	wipe(p.key)
	p.key = append([]byte(nil), key...)
}

// SetSalt sets the salt mixed into every derivation. The slice is
// copied.
func (p *PRFPlus) SetSalt(salt []byte) {
	wipe(p.salt)
	p.salt = append([]byte(nil), salt...)
}

// GetBytes fills out with derived key material. Fails when the
// requested amount exceeds what the construction can produce (255
// hash lengths).
func (p *PRFPlus) GetBytes(out []byte) error {
	r := hkdf.Expand(p.hash, p.key, p.salt)
	if _, err := io.ReadFull(r, out); err != nil {
		return fmt.Errorf("prf+ expansion failed: %w", err)
	}
	return nil
}

// AllocateBytes derives n bytes of key material into a fresh buffer.
func (p *PRFPlus) AllocateBytes(n int) ([]byte, error) {
	out := make([]byte, n)
	if err := p.GetBytes(out); err != nil {
		return nil, err
	}
	return out, nil
}

// Destroy wipes the stored key material.
func (p *PRFPlus) Destroy() {
	wipe(p.key)
	wipe(p.salt)
	p.key = nil
	p.salt = nil
}

func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
