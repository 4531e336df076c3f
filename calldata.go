package tokenid

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// OptionMarketABI is the fragment of the option market ABI the call
// builder needs: minting and burning against position-id lists.
const OptionMarketABI = `[
	{"name":"mintOptions","type":"function","stateMutability":"nonpayable","inputs":[{"name":"positionIdList","type":"uint256[]"},{"name":"positionSize","type":"uint128"},{"name":"effectiveLiquidityLimit","type":"uint64"}],"outputs":[]},
	{"name":"burnOptions","type":"function","stateMutability":"nonpayable","inputs":[{"name":"tokenId","type":"uint256"},{"name":"newPositionIdList","type":"uint256[]"},{"name":"tickLimitLow","type":"int24"},{"name":"tickLimitHigh","type":"int24"}],"outputs":[]}
]`

// Contract wraps a deployed contract for call-data construction.
// The builder serializes finished codec values - position ids, pool id
// hex strings, plain integers - into ABI call data and consumes nothing
// back from the chain.
type Contract struct {
	address common.Address
	abi     abi.ABI
}

// NewContract creates a Contract wrapper around an address and its ABI.
func NewContract(address common.Address, contractABI abi.ABI) *Contract {
	return &Contract{
		address: address,
		abi:     contractABI,
	}
}

// Address returns the contract address.
func (c *Contract) Address() common.Address {
	return c.address
}

// ABI returns the contract ABI.
func (c *Contract) ABI() abi.ABI {
	return c.abi
}

// HasMethod returns true if the contract has a method with the given name.
func (c *Contract) HasMethod(methodName string) bool {
	_, ok := c.abi.Methods[methodName]
	return ok
}

// MethodNames returns all method names in the contract ABI.
func (c *Contract) MethodNames() []string {
	names := make([]string, 0, len(c.abi.Methods))
	for name := range c.abi.Methods {
		names = append(names, name)
	}
	return names
}

// Calldata packs a method call into ABI call data, selector included.
// Arguments may be codec values (*uint256.Int, []*uint256.Int, PoolID,
// 0x-prefixed hex strings) or plain Go values matching the method's
// input types.
func (c *Contract) Calldata(methodName string, args ...any) ([]byte, error) {
	method, ok := c.abi.Methods[methodName]
	if !ok {
		return nil, &MethodNotFoundError{Contract: c.address, Method: methodName}
	}
	if len(args) != len(method.Inputs) {
		return nil, &ArgumentError{
			Method: methodName,
			Index:  len(args),
			Err:    ErrArgumentCount,
		}
	}

	converted := make([]any, len(args))
	for i, arg := range args {
		val, err := toABIValue(arg, method.Inputs[i].Type)
		if err != nil {
			return nil, &ArgumentError{Method: methodName, Index: i, Err: err}
		}
		converted[i] = val
	}

	return c.abi.Pack(methodName, converted...)
}

// MustCalldata is like Calldata but panics on error.
func (c *Contract) MustCalldata(methodName string, args ...any) []byte {
	data, err := c.Calldata(methodName, args...)
	if err != nil {
		panic(err)
	}
	return data
}

// ParseABI parses a JSON ABI string into an abi.ABI.
func ParseABI(abiJSON string) (abi.ABI, error) {
	return abi.JSON(strings.NewReader(abiJSON))
}

// MustParseABI is like ParseABI but panics on error.
func MustParseABI(abiJSON string) abi.ABI {
	parsed, err := ParseABI(abiJSON)
	if err != nil {
		panic(err)
	}
	return parsed
}

// toABIValue converts codec outputs into the representations the ABI
// packer accepts for the expected type.
func toABIValue(value any, abiType abi.Type) (any, error) {
	switch v := value.(type) {
	case *uint256.Int:
		value = v.ToBig()
	case []*uint256.Int:
		ids := make([]*big.Int, len(v))
		for i, id := range v {
			ids[i] = id.ToBig()
		}
		value = ids
	case PoolID:
		value = new(big.Int).SetUint64(uint64(v))
	case string:
		n, err := parseHexQuantity(v)
		if err != nil {
			return nil, err
		}
		value = n
	case int:
		value = big.NewInt(int64(v))
	case int64:
		value = big.NewInt(v)
	}

	// The packer wants native words for 8/16/32/64-bit integer types
	// and *big.Int for every other width.
	if b, ok := value.(*big.Int); ok {
		switch abiType.T {
		case abi.UintTy:
			switch abiType.Size {
			case 8:
				return uint8(b.Uint64()), nil
			case 16:
				return uint16(b.Uint64()), nil
			case 32:
				return uint32(b.Uint64()), nil
			case 64:
				return b.Uint64(), nil
			}
		case abi.IntTy:
			switch abiType.Size {
			case 8:
				return int8(b.Int64()), nil
			case 16:
				return int16(b.Int64()), nil
			case 32:
				return int32(b.Int64()), nil
			case 64:
				return b.Int64(), nil
			}
		}
	}

	return value, nil
}

// parseHexQuantity parses a 0x-prefixed hex string, such as a PoolID
// rendering, into a *big.Int.
func parseHexQuantity(s string) (*big.Int, error) {
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return nil, &FormatError{Input: s, Err: ErrMissingHexPrefix}
	}
	n, ok := new(big.Int).SetString(s[2:], 16)
	if !ok {
		return nil, &FormatError{Input: s, Err: ErrInvalidHexDigits}
	}
	return n, nil
}
