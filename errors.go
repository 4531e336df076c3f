package tokenid

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// Sentinel errors for common failure conditions.
var (
	// ErrMissingHexPrefix indicates a hex string lacks the required 0x prefix.
	ErrMissingHexPrefix = errors.New("tokenid: hex string missing 0x prefix")

	// ErrStrikeOutOfRange indicates a strike tick outside [MinTick, MaxTick].
	ErrStrikeOutOfRange = errors.New("tokenid: strike outside valid tick range")

	// ErrEmptyRatio indicates an attempt to construct a leg with optionRatio 0,
	// which is reserved as the empty-slot sentinel on the wire.
	ErrEmptyRatio = errors.New("tokenid: optionRatio 0 is the empty-slot sentinel")

	// ErrInvalidHexDigits indicates a hex string with non-hex characters
	// after its prefix.
	ErrInvalidHexDigits = errors.New("tokenid: invalid hex digits")

	// ErrArgumentCount indicates a call with the wrong number of arguments
	// for the method.
	ErrArgumentCount = errors.New("tokenid: wrong number of arguments")

	// ErrLeafNotFound indicates a digest is not a leaf of the Merkle tree.
	ErrLeafNotFound = errors.New("tokenid: digest is not a leaf of this tree")

	// ErrEmptyTree indicates a Merkle tree was built from zero leaves.
	ErrEmptyTree = errors.New("tokenid: cannot build a Merkle tree from no leaves")
)

// FormatError indicates a malformed string input, such as a hex string
// without its prefix.
type FormatError struct {
	Input string
	Err   error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("tokenid: malformed input %q: %v", e.Input, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// FieldRangeError indicates a leg field value that does not fit its
// declared bit width. Only the checked constructors raise it; the raw
// pack arithmetic accepts anything, matching the contract.
type FieldRangeError struct {
	Field string
	Value int64
	Bits  uint
}

func (e *FieldRangeError) Error() string {
	return fmt.Sprintf("tokenid: field %s value %d does not fit in %d bits", e.Field, e.Value, e.Bits)
}

// MethodNotFoundError indicates the contract doesn't have the requested method.
type MethodNotFoundError struct {
	Contract common.Address
	Method   string
}

func (e *MethodNotFoundError) Error() string {
	return fmt.Sprintf("tokenid: method %q not found in contract %s", e.Method, e.Contract.Hex())
}

// ArgumentError indicates an issue with a call-data argument.
type ArgumentError struct {
	Method string
	Index  int
	Err    error
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("tokenid: argument %d for method %q: %v", e.Index, e.Method, e.Err)
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}
