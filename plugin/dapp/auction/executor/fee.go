package executor

import (
	"math"

	at "github.com/hey-its-slowly/fee-governance-hub/plugin/dapp/auction/types"
	"github.com/hey-its-slowly/fee-governance-hub/types"
)

// CalcFee 按创建者的手续费策略计算成交手续费.
// none 和未知类型都是 0; percentage 饱和乘后整除 100;
// flat 与成交额无关, 按支付资产的精度缩放.
func CalcFee(feeType int32, feeAmount, amount int64, decimals int32) int64 {
	switch feeType {
	case at.FeeTypePercentage:
		return saturatingMul(amount, feeAmount) / 100
	case at.FeeTypeFlat:
		return saturatingMul(feeAmount, pow10(decimals)) / at.FeeDenominator
	}
	return 0
}

func pow10(n int32) int64 {
	result := int64(1)
	for i := int32(0); i < n; i++ {
		result = saturatingMul(result, 10)
	}
	return result
}

func saturatingMul(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	product := a * b
	if product/a != b {
		return math.MaxInt64
	}
	return product
}

func checkedMul(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	product := a * b
	if product/a != b {
		return 0, types.ErrOverflow
	}
	return product, nil
}

func checkedAdd(a, b int64) (int64, error) {
	sum := a + b
	if b > 0 && sum < a {
		return 0, types.ErrOverflow
	}
	return sum, nil
}

func checkedSub(a, b int64) (int64, error) {
	if b > a {
		return 0, types.ErrOverflow
	}
	return a - b, nil
}
