package tokenid

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// Pool id field layout within the low 64 bits of a position id.
const (
	poolIDBits = 64

	patternBytes = 5

	vegoidShift = 40
	vegoidMod   = 256

	tickSpacingShift = 48
	tickSpacingMod   = 65536
)

// PoolID is the 64-bit pool reference occupying the low bits of a
// position id: a 5-byte pool address pattern, the vegoid, and the
// pool's tick spacing.
type PoolID uint64

// PoolIDFromAddress builds a PoolID from a 20-byte pool address.
// The first 5 address bytes are packed at bits [0,40) in reversed byte
// order. Vegoid and tickSpacing are reduced modulo 256 and 65536;
// out-of-range values wrap silently, matching the contract, and are
// never rejected.
func PoolIDFromAddress(pool common.Address, tickSpacing uint64, opts ...PoolIDOption) PoolID {
	return packPoolID(pool[:patternBytes], tickSpacing, opts)
}

// PoolIDFromKeyHash builds a PoolID from a 32-byte pool key hash, the
// alternate pool addressing scheme. The 5-byte pattern comes from the
// last 5 bytes of the hash; packing is otherwise identical to
// PoolIDFromAddress.
func PoolIDFromKeyHash(poolKey common.Hash, tickSpacing uint64, opts ...PoolIDOption) PoolID {
	return packPoolID(poolKey[common.HashLength-patternBytes:], tickSpacing, opts)
}

// packPoolID assembles the 64-bit pool reference. Reversed byte order
// means source byte i lands at bits [8i, 8i+8), so the pattern reads
// back-to-front relative to its big-endian display form.
func packPoolID(pattern []byte, tickSpacing uint64, opts []PoolIDOption) PoolID {
	cfg := defaultPoolIDConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	var id uint64
	for i := 0; i < patternBytes; i++ {
		id |= uint64(pattern[i]) << (8 * i)
	}
	id |= (cfg.vegoid % vegoidMod) << vegoidShift
	id |= (tickSpacing % tickSpacingMod) << tickSpacingShift
	return PoolID(id)
}

// PoolIDOf masks a full 256-bit position id down to its pool reference
// in the low 64 bits. A value that is already a bare pool id passes
// through unchanged.
func PoolIDOf(id *uint256.Int) PoolID {
	return PoolID(id.Uint64())
}

// Vegoid extracts the vegoid field.
func (id PoolID) Vegoid() uint8 {
	return uint8(uint64(id) >> vegoidShift)
}

// TickSpacing extracts the tick spacing field.
func (id PoolID) TickSpacing() uint16 {
	return uint16(uint64(id) >> tickSpacingShift)
}

// Hex renders the pool id as a fixed 16-digit, zero-left-padded,
// 0x-prefixed string, the form consumed by queries and call builders.
func (id PoolID) Hex() string {
	return MustPadHex(fmt.Sprintf("0x%x", uint64(id)), 18)
}

// Vegoid returns the vegoid of a bare pool id or a full position id.
func Vegoid(id *uint256.Int) uint8 {
	return PoolIDOf(id).Vegoid()
}

// TickSpacing returns the tick spacing of a bare pool id or a full
// position id.
func TickSpacing(id *uint256.Int) uint16 {
	return PoolIDOf(id).TickSpacing()
}
