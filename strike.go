package tokenid

// Tick domain of the referenced liquidity pool. Strikes outside this
// range never occur in legitimate positions.
const (
	MinTick = -887272
	MaxTick = 887272
)

const (
	strikeBias = 1 << 24 // added to negative strikes before packing
	strikeMid  = 1 << 23 // decode pivot
)

// encodeStrike maps a signed tick onto the unsigned 24-bit wire field.
func encodeStrike(strike int32) uint64 {
	if strike < 0 {
		return uint64(int64(strike) + strikeBias)
	}
	return uint64(strike)
}

// decodeStrike inverts encodeStrike.
//
// The pivot comparison is strictly greater-than: the boundary word
// 0x800000 decodes as +8388608, not as a negative tick. That breaks
// two's-complement symmetry for exactly one value, but the consuming
// contract behaves the same way and the value lies outside the valid
// tick domain, so it is preserved rather than normalized.
func decodeStrike(encoded uint64) int32 {
	if encoded > strikeMid {
		return int32(int64(encoded) - strikeBias)
	}
	return int32(encoded)
}
