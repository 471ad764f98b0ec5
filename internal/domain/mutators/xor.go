package mutators

import (
	"encoding/hex"

	m "github.com/fogbyte/vbafog/internal/model"
)

// DefaultXorHelper is the VBA function expected to reverse the encoding at
// runtime. Emitting the helper into the output module is the caller's
// responsibility; this strategy only produces the call sites.
const DefaultXorHelper = "DeobfuscateString"

// Xor encodes literal values at rest: the inner value is XOR-ed with a
// repeating key, hex-encoded, and wrapped in a call to the decode helper.
type Xor struct {
	key    []byte
	helper string
}

// NewXor returns the strategy for the given key and helper function name; an
// empty helper falls back to DefaultXorHelper.
func NewXor(key, helper string) *Xor {
	if helper == "" {
		helper = DefaultXorHelper
	}

	return &Xor{key: []byte(key), helper: helper}
}

// Name implements StringMutator.
func (x *Xor) Name() string { return "xor" }

// Mutate replaces the literal with `<helper>("<hex>")`. Empty literals and
// an empty key are left alone.
func (x *Xor) Mutate(lit *m.StringLiteral) (string, bool) {
	value := lit.Inner()
	if value == "" || len(x.key) == 0 {
		return "", false
	}

	encoded := make([]byte, len(value))
	for i := 0; i < len(value); i++ {
		encoded[i] = value[i] ^ x.key[i%len(x.key)]
	}

	return x.helper + `("` + hex.EncodeToString(encoded) + `")`, true
}

// Decode reverses the encoding. The emitted VBA helper must implement the
// same transformation; tests use Decode to check the round trip.
func (x *Xor) Decode(hexStr string) (string, error) {
	raw, err := hex.DecodeString(hexStr)
	if err != nil {
		return "", err
	}

	for i := range raw {
		raw[i] ^= x.key[i%len(x.key)]
	}

	return string(raw), nil
}
