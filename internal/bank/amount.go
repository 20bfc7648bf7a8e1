package bank

import (
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

// 金額運算一律以 decimal 計算後再夾限至 int64 / uint64 範圍，不允許溢位繞回。
var (
	hundred   = decimal.NewFromInt(100)
	maxInt64  = decimal.NewFromInt(math.MaxInt64)
	maxUint64 = fromUint64(math.MaxUint64)
)

func fromUint64(v uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(v), 0)
}

// clampInt64 將 d 夾限於 int64 上限；呼叫端保證 d >= MinInt64。
func clampInt64(d decimal.Decimal) int64 {
	if d.GreaterThan(maxInt64) {
		return math.MaxInt64
	}
	return d.IntPart()
}

// clampUint64 將非負的 d 夾限於 uint64 上限。
func clampUint64(d decimal.Decimal) uint64 {
	if d.GreaterThan(maxUint64) {
		return math.MaxUint64
	}
	return d.BigInt().Uint64()
}
