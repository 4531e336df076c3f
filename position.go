package tokenid

import "github.com/holiman/uint256"

// Position pairs a pool id with its leg slots. Legs[i] occupies wire
// slot i; nil marks the slot empty. The fixed-size array makes the
// one-leg-per-slot obligation structural at this level.
type Position struct {
	Pool PoolID
	Legs [MaxLegs]*Leg
}

// Encode serializes the position into its 256-bit id.
func (p Position) Encode() *uint256.Int {
	return Encode(p.Pool, p.Legs)
}

// Encode assembles a position id: the pool id occupies the low 64 bits
// and each present leg's shifted word is added into the accumulator.
// Addition order does not matter because the slots are disjoint.
func Encode(pool PoolID, legs [MaxLegs]*Leg) *uint256.Int {
	id := uint256.NewInt(uint64(pool))
	for slot, leg := range legs {
		if leg == nil {
			continue
		}
		id.Add(id, EncodeLeg(leg, slot))
	}
	return id
}

// DecodedPosition is the disassembled form of a position id. Legs are
// re-indexed sequentially: empty slots are dropped and the survivors
// keep their original slot order, so an id with legs at slots 0 and 2
// decodes to Legs[0] and Legs[1]. The original slot indices are not
// part of the decoded form, which is why this is a distinct type from
// Position.
type DecodedPosition struct {
	Pool    PoolID
	PoolHex string // fixed 16-digit rendering of Pool
	Legs    []Leg
}

// Decode disassembles a position id. It is a total function: every
// 256-bit value decodes to something, and only legs whose optionRatio
// is non-zero survive.
func Decode(id *uint256.Int) DecodedPosition {
	pool := PoolIDOf(id)

	legs := make([]Leg, 0, MaxLegs)
	word := new(uint256.Int)
	for slot := 0; slot < MaxLegs; slot++ {
		word.Rsh(id, uint(poolIDBits+legBits*slot))
		leg := DecodeLeg(word.Uint64() & legWordMask)
		if leg.OptionRatio > 0 {
			legs = append(legs, leg)
		}
	}

	return DecodedPosition{
		Pool:    pool,
		PoolHex: pool.Hex(),
		Legs:    legs,
	}
}
