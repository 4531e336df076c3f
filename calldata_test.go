package tokenid

import (
	"bytes"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

var testMarketAddress = common.HexToAddress("0x0000000000000000000000000000000000000f01")

func testMarket(t *testing.T) *Contract {
	t.Helper()
	return NewContract(testMarketAddress, MustParseABI(OptionMarketABI))
}

func TestContractBasics(t *testing.T) {
	market := testMarket(t)

	if market.Address() != testMarketAddress {
		t.Errorf("Address() = %s", market.Address().Hex())
	}
	if !market.HasMethod("mintOptions") || !market.HasMethod("burnOptions") {
		t.Error("option market ABI missing expected methods")
	}
	if market.HasMethod("transfer") {
		t.Error("HasMethod returned true for an absent method")
	}
	if got := len(market.MethodNames()); got != 2 {
		t.Errorf("MethodNames() returned %d names, want 2", got)
	}
}

func TestCalldataMint(t *testing.T) {
	market := testMarket(t)

	pool, legs := twoLegStrangle()
	id := Encode(pool, legs)

	data, err := market.Calldata("mintOptions",
		[]*uint256.Int{id},
		big.NewInt(1_000_000),
		uint64(0),
	)
	if err != nil {
		t.Fatalf("Calldata: %v", err)
	}

	method := market.ABI().Methods["mintOptions"]
	if !bytes.Equal(data[:4], method.ID) {
		t.Errorf("selector = %x, want %x", data[:4], method.ID)
	}

	// The position id travels bit-exact inside the call data.
	args, err := method.Inputs.Unpack(data[4:])
	if err != nil {
		t.Fatalf("Unpack: %v", err)
	}
	ids := args[0].([]*big.Int)
	if len(ids) != 1 || ids[0].Cmp(id.ToBig()) != 0 {
		t.Errorf("unpacked position id list %v, want [%s]", ids, id.Hex())
	}
}

func TestCalldataBurnAcceptsCodecValues(t *testing.T) {
	market := testMarket(t)

	pool, legs := twoLegStrangle()
	id := Encode(pool, legs)

	data, err := market.Calldata("burnOptions",
		id,
		[]*uint256.Int{},
		MinTick,
		MaxTick,
	)
	if err != nil {
		t.Fatalf("Calldata: %v", err)
	}

	method := market.ABI().Methods["burnOptions"]
	args, err := method.Inputs.Unpack(data[4:])
	if err != nil {
		t.Fatalf("Unpack: %v", err)
	}
	if got := args[0].(*big.Int); got.Cmp(id.ToBig()) != 0 {
		t.Errorf("tokenId = %s, want %s", got, id.ToBig())
	}
	if got := args[2].(*big.Int); got.Int64() != MinTick {
		t.Errorf("tickLimitLow = %s, want %d", got, MinTick)
	}
	if got := args[3].(*big.Int); got.Int64() != MaxTick {
		t.Errorf("tickLimitHigh = %s, want %d", got, MaxTick)
	}
}

func TestCalldataPoolIDAndHexArguments(t *testing.T) {
	// A PoolID or its fixed-width hex rendering both serialize to the
	// same uint256 argument.
	abiJSON := `[{"name":"poke","type":"function","stateMutability":"nonpayable","inputs":[{"name":"poolId","type":"uint256"}],"outputs":[]}]`
	c := NewContract(testMarketAddress, MustParseABI(abiJSON))

	pool := PoolIDFromAddress(testPoolAddress, 60)

	fromID, err := c.Calldata("poke", pool)
	if err != nil {
		t.Fatalf("Calldata(PoolID): %v", err)
	}
	fromHex, err := c.Calldata("poke", pool.Hex())
	if err != nil {
		t.Fatalf("Calldata(hex): %v", err)
	}
	if !bytes.Equal(fromID, fromHex) {
		t.Error("PoolID and hex rendering produced different call data")
	}
}

func TestCalldataErrors(t *testing.T) {
	market := testMarket(t)

	t.Run("unknown method", func(t *testing.T) {
		_, err := market.Calldata("transfer")
		var notFound *MethodNotFoundError
		if !errors.As(err, &notFound) {
			t.Fatalf("expected *MethodNotFoundError, got %v", err)
		}
		if notFound.Method != "transfer" {
			t.Errorf("Method = %q", notFound.Method)
		}
	})

	t.Run("wrong argument count", func(t *testing.T) {
		_, err := market.Calldata("mintOptions", []*uint256.Int{})
		var argErr *ArgumentError
		if !errors.As(err, &argErr) {
			t.Fatalf("expected *ArgumentError, got %v", err)
		}
		if !errors.Is(err, ErrArgumentCount) {
			t.Error("error should unwrap to ErrArgumentCount")
		}
	})

	t.Run("malformed hex argument", func(t *testing.T) {
		_, err := market.Calldata("burnOptions", "1234", []*uint256.Int{}, 0, 0)
		if !errors.Is(err, ErrMissingHexPrefix) {
			t.Errorf("expected ErrMissingHexPrefix, got %v", err)
		}

		_, err = market.Calldata("burnOptions", "0xzz", []*uint256.Int{}, 0, 0)
		if !errors.Is(err, ErrInvalidHexDigits) {
			t.Errorf("expected ErrInvalidHexDigits, got %v", err)
		}
	})
}

func TestMustCalldataPanics(t *testing.T) {
	market := testMarket(t)

	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	market.MustCalldata("transfer")
}
