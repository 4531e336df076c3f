package tokenid

import "github.com/holiman/uint256"

// Leg word field layout (bit offsets within the 48-bit word).
const (
	legBits     = 48
	legWordMask = 1<<legBits - 1

	ratioShift       = 1
	isLongShift      = 8
	tokenTypeShift   = 9
	riskPartnerShift = 10
	strikeShift      = 12
	widthShift       = 36

	assetMask       = 0x1
	ratioMask       = 0x7f
	flagMask        = 0x1
	riskPartnerMask = 0x3
	strikeMask      = 0xffffff
	widthMask       = 0xfff
)

// MaxLegs is the number of leg slots in a position id.
const MaxLegs = 4

// Leg is one strategy leg. A leg whose OptionRatio is 0 is not a leg
// at all - that value marks an empty slot on the wire - so build legs
// through NewLeg, which enforces every field's declared width.
type Leg struct {
	Asset       uint8  // 1 bit; which pool token the position is denominated in
	OptionRatio uint8  // 7 bits; contracts per position unit, never 0 in a valid leg
	IsLong      uint8  // 1 bit
	TokenType   uint8  // 1 bit
	RiskPartner uint8  // 2 bits; slot index of the partnered leg
	Strike      int32  // signed tick in [MinTick, MaxTick]
	Width       uint16 // 12 bits
}

// NewLeg validates every field against its wire width and returns the
// leg. The pack arithmetic itself never validates: a field wider than
// its declared width overflows additively into the neighbouring field,
// exactly as the contract would read it, so this constructor is the
// place programmer error gets caught.
func NewLeg(leg Leg) (*Leg, error) {
	switch {
	case leg.Asset > assetMask:
		return nil, &FieldRangeError{Field: "asset", Value: int64(leg.Asset), Bits: 1}
	case leg.OptionRatio == 0:
		return nil, ErrEmptyRatio
	case leg.OptionRatio > ratioMask:
		return nil, &FieldRangeError{Field: "optionRatio", Value: int64(leg.OptionRatio), Bits: 7}
	case leg.IsLong > flagMask:
		return nil, &FieldRangeError{Field: "isLong", Value: int64(leg.IsLong), Bits: 1}
	case leg.TokenType > flagMask:
		return nil, &FieldRangeError{Field: "tokenType", Value: int64(leg.TokenType), Bits: 1}
	case leg.RiskPartner > riskPartnerMask:
		return nil, &FieldRangeError{Field: "riskPartner", Value: int64(leg.RiskPartner), Bits: 2}
	case leg.Strike < MinTick || leg.Strike > MaxTick:
		return nil, ErrStrikeOutOfRange
	case leg.Width > widthMask:
		return nil, &FieldRangeError{Field: "width", Value: int64(leg.Width), Bits: 12}
	}
	return &leg, nil
}

// MustNewLeg is like NewLeg but panics on error.
// Use only with compile-time constant fields.
func MustNewLeg(leg Leg) *Leg {
	l, err := NewLeg(leg)
	if err != nil {
		panic(err)
	}
	return l
}

// EncodeLeg packs a leg into its 48-bit word, shifted to the absolute
// offset of the given slot (64 + 48·slot). Width and biased strike are
// combined by shifted addition, then the OR-combined low fields are
// added in, reproducing the contract's construction order. Callers must
// keep fields within their declared widths and must not encode two legs
// into the same slot; both produce corrupted ids, not errors.
func EncodeLeg(leg *Leg, slot int) *uint256.Int {
	word := uint64(leg.Width) << widthShift
	word += encodeStrike(leg.Strike) << strikeShift

	low := uint64(leg.Asset)
	low |= uint64(leg.OptionRatio) << ratioShift
	low |= uint64(leg.IsLong) << isLongShift
	low |= uint64(leg.TokenType) << tokenTypeShift
	low |= uint64(leg.RiskPartner) << riskPartnerShift
	word += low

	enc := uint256.NewInt(word)
	return enc.Lsh(enc, uint(poolIDBits+legBits*slot))
}

// DecodeLeg unpacks a 48-bit leg word. It is total: a word whose
// optionRatio field is 0 decodes to the empty-slot sentinel value, and
// nothing is ever rejected.
func DecodeLeg(word uint64) Leg {
	return Leg{
		Asset:       uint8(word & assetMask),
		OptionRatio: uint8(word >> ratioShift & ratioMask),
		IsLong:      uint8(word >> isLongShift & flagMask),
		TokenType:   uint8(word >> tokenTypeShift & flagMask),
		RiskPartner: uint8(word >> riskPartnerShift & riskPartnerMask),
		Strike:      decodeStrike(word >> strikeShift & strikeMask),
		Width:       uint16(word >> widthShift & widthMask),
	}
}
