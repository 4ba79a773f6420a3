package executor

import (
	"math"
	"testing"

	at "github.com/hey-its-slowly/fee-governance-hub/plugin/dapp/auction/types"
	"github.com/stretchr/testify/assert"
)

func TestCalcFee(t *testing.T) {
	//百分比: 10% of 1000
	assert.Equal(t, int64(100), CalcFee(at.FeeTypePercentage, 10, 1000, 0))
	//整除截断, 不做四舍五入
	assert.Equal(t, int64(0), CalcFee(at.FeeTypePercentage, 1, 99, 0))
	//固定: 与成交额无关, 按精度缩放
	assert.Equal(t, int64(5*1000000/1000), CalcFee(at.FeeTypeFlat, 5, 999999, 6))
	assert.Equal(t, int64(5*1000000/1000), CalcFee(at.FeeTypeFlat, 5, 1, 6))
	//none 和未知类型
	assert.Equal(t, int64(0), CalcFee(at.FeeTypeNone, 10, 1000, 6))
	assert.Equal(t, int64(0), CalcFee(99, 10, 1000, 6))
}

func TestCalcFeeSaturating(t *testing.T) {
	//乘法溢出时饱和而不是回绕
	fee := CalcFee(at.FeeTypePercentage, 10, math.MaxInt64, 0)
	assert.Equal(t, int64(math.MaxInt64/100), fee)
}

func TestCheckedArithmetic(t *testing.T) {
	_, err := checkedMul(math.MaxInt64, 2)
	assert.Error(t, err)

	_, err = checkedAdd(math.MaxInt64, 1)
	assert.Error(t, err)

	_, err = checkedSub(1, 2)
	assert.Error(t, err)

	sum, err := checkedAdd(1, 2)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), sum)
}
