// Package tokenid encodes and decodes options-position identifiers
// for on-chain option markets.
//
// A position identifier packs a pool reference and up to four strategy
// legs into a single 256-bit unsigned integer, bit-for-bit compatible
// with the consuming contract's storage representation. The codec is a
// pure data-layout transform: no I/O, no state, no chain access.
//
// # Basic Usage
//
// Build a pool id, attach legs, and encode:
//
//	pool := tokenid.PoolIDFromAddress(poolAddr, 60)
//
//	long, err := tokenid.NewLeg(tokenid.Leg{
//	    OptionRatio: 1,
//	    Strike:      100,
//	    Width:       10,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	id := tokenid.Encode(pool, [tokenid.MaxLegs]*tokenid.Leg{0: long})
//
//	// And back again:
//	pos := tokenid.Decode(id)
//
// # Wire Format
//
// Bit 0 is the least significant bit of the 256-bit identifier:
//
//	bit   0..39   pool address pattern (5 bytes, byte order reversed)
//	bit  40..47   vegoid       (unsigned 8-bit)
//	bit  48..63   tickSpacing  (unsigned 16-bit)
//	bit  64..111  leg slot 0   (48-bit leg word)
//	bit 112..159  leg slot 1
//	bit 160..207  leg slot 2
//	bit 208..255  leg slot 3
//
// Within a 48-bit leg word:
//
//	0       asset        (1 bit)
//	1..7    optionRatio  (7 bits; 0 marks the slot empty)
//	8       isLong       (1 bit)
//	9       tokenType    (1 bit)
//	10..11  riskPartner  (2 bits)
//	12..35  strike       (24 bits, bias-encoded signed tick)
//	36..47  width        (12 bits)
//
// Packing uses shifted addition, matching the contract: a field value
// wider than its declared width overflows into the neighbouring field
// rather than wrapping in place. The checked NewLeg constructor catches
// that before it reaches the wire; the raw arithmetic never does.
//
// # Value Types
//
// Identifiers are *uint256.Int (github.com/holiman/uint256). Anything
// narrower than 256 exact bits - floats, native machine words - cannot
// represent the high leg slots and is incorrect by construction.
//
// # Collaborators
//
// Two thin collaborators ride along: a Contract call-data builder that
// serializes position ids into ABI call data, and a keccak256 Merkle
// proof builder for reward claims. Both hand finished values onward and
// delegate all bit-exactness to the codec.
package tokenid
