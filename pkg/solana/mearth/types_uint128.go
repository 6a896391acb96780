package mearth

import "math/big"

// Uint128 is a little-endian u128 split into two u64 halves, as stored by
// the program for share accounting.
type Uint128 struct {
	Lo uint64
	Hi uint64
}

func NewUint128(lo, hi uint64) Uint128 {
	return Uint128{Lo: lo, Hi: hi}
}

func (v Uint128) IsZero() bool {
	return v.Lo == 0 && v.Hi == 0
}

func (v Uint128) BigInt() *big.Int {
	result := new(big.Int).SetUint64(v.Hi)
	result.Lsh(result, 64)
	return result.Add(result, new(big.Int).SetUint64(v.Lo))
}

func (v Uint128) String() string {
	return v.BigInt().String()
}
