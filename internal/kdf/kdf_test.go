package kdf

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

func fromHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

// Expand-only vectors from RFC 5869 (PRK and info stage).
func TestPRFPlusVectors(t *testing.T) {
	tests := []struct {
		name string
		prk  string
		salt string
		okm  string
	}{
		{
			name: "rfc5869 case 1",
			prk:  "077709362c2e32df0ddc3f0dc47bba6390b6c73bb50f9c3122ec844ad7c2b3e5",
			salt: "f0f1f2f3f4f5f6f7f8f9",
			okm: "3cb25f25faacd57a90434f64d0362f2a" +
				"2d2d0a90cf1a5a4c5db02d56ecc4c5bf" +
				"34007208d5b887185865",
		},
		{
			name: "rfc5869 case 3, empty info",
			prk:  "19ef24a32c717b167f33a91d6f648bdf96596776afdb6377ac434c1c293ccb04",
			salt: "",
			okm: "8da4e775a563c18f715f802a063c5a31" +
				"b8a11f5c5ee1879ec3454e5f3c738d2d" +
				"9d201395faa4b61a96c8",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(sha256.New)
			p.SetKey(fromHex(t, tt.prk))
			p.SetSalt(fromHex(t, tt.salt))

			want := fromHex(t, tt.okm)
			got, err := p.AllocateBytes(len(want))
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(got, want) {
				t.Errorf("okm = %x, want %x", got, want)
			}

			// GetBytes into a caller buffer must agree.
			buf := make([]byte, len(want))
			if err := p.GetBytes(buf); err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(buf, want) {
				t.Errorf("GetBytes = %x, want %x", buf, want)
			}
		})
	}
}

func TestPRFPlusOutputLimit(t *testing.T) {
	p := New(sha256.New)
	p.SetKey(make([]byte, 32))

	// HKDF-Expand caps output at 255 hash lengths.
	if _, err := p.AllocateBytes(255*sha256.Size + 1); err == nil {
		t.Error("expected error beyond the expansion limit")
	}
	if _, err := p.AllocateBytes(255 * sha256.Size); err != nil {
		t.Errorf("maximum size should succeed: %v", err)
	}
}

func TestPRFPlusDestroyWipes(t *testing.T) {
	p := New(sha256.New)
	key := []byte{1, 2, 3, 4}
	p.SetKey(key)

	stored := p.key
	p.Destroy()
	for i, b := range stored {
		if b != 0 {
			t.Fatalf("key byte %d not wiped", i)
		}
	}
	if p.key != nil {
		t.Error("key should be nil after Destroy")
	}
}
