// Package wadmath 提供确定性的 WAD（1e18）定点整数运算。
// 所有运算遵循 int256 语义：乘积在重标定前做溢出检测，除法向零截断，
// 任意平台上对相同输入产生逐位一致的结果。
package wadmath

import (
	"errors"
	"math/big"

	ethmath "github.com/ethereum/go-ethereum/common/math"
)

var (
	// ErrArithmeticOverflow 中间乘积超出 int256 可表示范围
	ErrArithmeticOverflow = errors.New("wadmath: product exceeds int256 range")
	// ErrMinValueUnrepresentable int256 最小值的绝对值无法在同宽度内表示
	ErrMinValueUnrepresentable = errors.New("wadmath: absolute value of min int256 is unrepresentable")
	// ErrDivisionByZero 除数为零
	ErrDivisionByZero = errors.New("wadmath: division by zero")
)

var (
	// WAD 定点比例因子 1e18
	WAD = big.NewInt(1e18)

	maxInt256 = new(big.Int).Sub(ethmath.BigPow(2, 255), big.NewInt(1))
	minInt256 = new(big.Int).Neg(ethmath.BigPow(2, 255))
)

// MaxInt256 返回 int256 的最大值（副本）。
func MaxInt256() *big.Int { return new(big.Int).Set(maxInt256) }

// MinInt256 返回 int256 的最小值（副本）。
func MinInt256() *big.Int { return new(big.Int).Set(minInt256) }

func fitsInt256(v *big.Int) bool {
	return v.Cmp(minInt256) >= 0 && v.Cmp(maxInt256) <= 0
}

// Mul 计算 x·y，乘积必须可在 int256 内精确表示。
func Mul(x, y *big.Int) (*big.Int, error) {
	p := new(big.Int).Mul(x, y)
	if !fitsInt256(p) {
		return nil, ErrArithmeticOverflow
	}
	return p, nil
}

// MulWad 计算 ⌊x·y/WAD⌋。先做全宽乘法并检测溢出，再按 WAD 重标定，
// 除法向零截断（与 EVM sdiv 一致）。
func MulWad(x, y *big.Int) (*big.Int, error) {
	p, err := Mul(x, y)
	if err != nil {
		return nil, err
	}
	return p.Quo(p, WAD), nil
}

// DivWad 计算 ⌊x·WAD/y⌋。
func DivWad(x, y *big.Int) (*big.Int, error) {
	return MulDiv(x, WAD, y)
}

// MulDiv 计算 ⌊x·y/d⌋，乘积须可在 int256 内精确表示，除法向零截断。
func MulDiv(x, y, d *big.Int) (*big.Int, error) {
	if d.Sign() == 0 {
		return nil, ErrDivisionByZero
	}
	p, err := Mul(x, y)
	if err != nil {
		return nil, err
	}
	return p.Quo(p, d), nil
}

// Abs 返回 x 的非负幅值。x 为 int256 最小值时其幅值超出同宽度有符号范围，
// 返回 ErrMinValueUnrepresentable。
func Abs(x *big.Int) (*big.Int, error) {
	if x.Cmp(minInt256) == 0 {
		return nil, ErrMinValueUnrepresentable
	}
	return new(big.Int).Abs(x), nil
}

func mustBig(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("wadmath: invalid constant " + s)
	}
	return v
}
