package utils

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// YuanToFen 金额元转分
// 入参为元为单位的十进制字符串，十进制精确换算，出现不足一分的尾数视为非法金额。
func YuanToFen(amount string) (int64, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	if d.IsNegative() {
		return 0, fmt.Errorf("negative amount %q", amount)
	}
	fen := d.Shift(2)
	if !fen.IsInteger() {
		return 0, fmt.Errorf("amount %q has sub-cent precision", amount)
	}
	return fen.IntPart(), nil
}

// AmountEqual 比较两个元为单位的金额字符串是否相等（十进制值比较，"10" == "10.00"）
func AmountEqual(a, b string) bool {
	da, err := decimal.NewFromString(a)
	if err != nil {
		return false
	}
	db, err := decimal.NewFromString(b)
	if err != nil {
		return false
	}
	return da.Equal(db)
}
