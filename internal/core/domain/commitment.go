package domain

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Commitment is a fixed-size SHA-256 hash standing in for a value the ledger
// never stores in cleartext. The ledger only ever compares and republishes
// commitments; it never interprets the committed bytes.
type Commitment [32]byte

// NewCommitment computes the commitment of externally-encrypted payload bytes.
func NewCommitment(data []byte) Commitment {
	return sha256.Sum256(data)
}

// LabelCommitment computes the commitment of a free-text category label.
func LabelCommitment(label string) Commitment {
	return sha256.Sum256([]byte(label))
}

// InitialChainCommitment is the transaction chain seed: H(counter=0).
func InitialChainCommitment() Commitment {
	var buf [8]byte
	return sha256.Sum256(buf[:])
}

// ChainCommitment advances a hash chain: H(prev || counter). The result
// depends on the full update history, so an external verifier can confirm
// count and order of updates without ever seeing a balance.
func ChainCommitment(prev Commitment, counter uint64) Commitment {
	h := sha256.New()
	h.Write(prev[:])
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], counter)
	h.Write(buf[:])
	var out Commitment
	copy(out[:], h.Sum(nil))
	return out
}

// NoDiscrepancy is the canonical "no discrepancy found" sentinel commitment
// every audit record starts with.
func NoDiscrepancy() Commitment {
	return sha256.Sum256([]byte("NO_DISCREPANCY"))
}

// IsZero reports whether the commitment is the all-zero value.
func (c Commitment) IsZero() bool {
	return c == Commitment{}
}

// Hex returns the lowercase hex encoding of the commitment.
func (c Commitment) Hex() string {
	return hex.EncodeToString(c[:])
}

func (c Commitment) String() string {
	return c.Hex()
}

// ParseCommitment decodes a 64-character hex string into a Commitment.
func ParseCommitment(s string) (Commitment, error) {
	var c Commitment
	raw, err := hex.DecodeString(s)
	if err != nil {
		return c, fmt.Errorf("decoding commitment: %w", err)
	}
	if len(raw) != len(c) {
		return c, fmt.Errorf("commitment must be %d bytes, got %d", len(c), len(raw))
	}
	copy(c[:], raw)
	return c, nil
}

// MarshalJSON encodes the commitment as a hex string.
func (c Commitment) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Hex())
}

// UnmarshalJSON decodes a hex string commitment.
func (c *Commitment) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseCommitment(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
