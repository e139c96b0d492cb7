package serde

import (
	"fmt"
	"math/big"
)

/*
128-bit integer values, stored as a high/low pair. The wire layout is the
little-endian concatenation of the two halves, least significant first.
*/

////////////////////////////////////////////////////////////////////////////////

type Uint128 struct {
	High uint64
	Low  uint64
}

type Int128 struct {
	High int64
	Low  uint64
}

func (v Uint128) BigInt() *big.Int {
	result := new(big.Int).SetUint64(v.High)
	result.Lsh(result, 64)
	return result.Add(result, new(big.Int).SetUint64(v.Low))
}

func (v Int128) BigInt() *big.Int {
	result := big.NewInt(v.High)
	result.Lsh(result, 64)
	return result.Add(result, new(big.Int).SetUint64(v.Low))
}

func (v Uint128) String() string {
	return v.BigInt().String()
}

func (v Int128) String() string {
	return v.BigInt().String()
}

// FromBig converts a big integer in [0, 2^128) to a Uint128.
func FromBig(value *big.Int) (Uint128, error) {
	if value.Sign() < 0 || value.BitLen() > 128 {
		return Uint128{}, fmt.Errorf("value %s does not fit in a u128", value)
	}
	low := new(big.Int).And(value, maxU64)
	high := new(big.Int).Rsh(value, 64)
	return Uint128{High: high.Uint64(), Low: low.Uint64()}, nil
}

var maxU64 = new(big.Int).SetUint64(^uint64(0)) // nolint:gochecknoglobals
