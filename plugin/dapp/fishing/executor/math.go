package executor

import (
	"github.com/hey-its-slowly/fee-governance-hub/types"
)

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
