package wadmath

import (
	"errors"
	"math/big"
	"testing"
)

func wadFromInt(v int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(v), WAD)
}

func TestMulWadBasic(t *testing.T) {
	// 2.5 × 4 = 10
	got, err := MulWad(big.NewInt(2_500_000_000_000_000_000), wadFromInt(4))
	if err != nil {
		t.Fatalf("MulWad error: %v", err)
	}
	if got.Cmp(wadFromInt(10)) != 0 {
		t.Fatalf("MulWad got=%s want=%s", got, wadFromInt(10))
	}
}

func TestMulWadTruncatesTowardZero(t *testing.T) {
	// 1e-18 × 0.5 = 5e-37 → 截断为 0
	got, err := MulWad(big.NewInt(1), big.NewInt(5e17))
	if err != nil {
		t.Fatalf("MulWad error: %v", err)
	}
	if got.Sign() != 0 {
		t.Fatalf("MulWad got=%s want=0", got)
	}

	// 负数同样向零截断（非向负无穷）：−1e-18 × 0.5 → 0
	got, err = MulWad(big.NewInt(-1), big.NewInt(5e17))
	if err != nil {
		t.Fatalf("MulWad error: %v", err)
	}
	if got.Sign() != 0 {
		t.Fatalf("MulWad negative got=%s want=0", got)
	}

	// −3×1e-18 × 0.5 = −1.5e-18 → −1（向零）
	got, err = MulWad(big.NewInt(-3), big.NewInt(5e17))
	if err != nil {
		t.Fatalf("MulWad error: %v", err)
	}
	if got.Cmp(big.NewInt(-1)) != 0 {
		t.Fatalf("MulWad got=%s want=-1", got)
	}
}

func TestMulWadOverflow(t *testing.T) {
	max := MaxInt256()
	if _, err := MulWad(max, big.NewInt(2)); !errors.Is(err, ErrArithmeticOverflow) {
		t.Fatalf("expected ErrArithmeticOverflow, got %v", err)
	}
	// 边界内的乘积不应报错
	if _, err := MulWad(max, big.NewInt(1)); err != nil {
		t.Fatalf("MulWad at max error: %v", err)
	}
	min := MinInt256()
	if _, err := MulWad(min, big.NewInt(2)); !errors.Is(err, ErrArithmeticOverflow) {
		t.Fatalf("expected ErrArithmeticOverflow, got %v", err)
	}
}

func TestDivWad(t *testing.T) {
	// 1 / 3 = 0.333...（截断）
	got, err := DivWad(wadFromInt(1), wadFromInt(3))
	if err != nil {
		t.Fatalf("DivWad error: %v", err)
	}
	want := big.NewInt(333_333_333_333_333_333)
	if got.Cmp(want) != 0 {
		t.Fatalf("DivWad got=%s want=%s", got, want)
	}

	// −1 / 3 向零截断
	got, err = DivWad(wadFromInt(-1), wadFromInt(3))
	if err != nil {
		t.Fatalf("DivWad error: %v", err)
	}
	if got.Cmp(new(big.Int).Neg(want)) != 0 {
		t.Fatalf("DivWad got=%s want=-%s", got, want)
	}
}

func TestMulDivByZero(t *testing.T) {
	if _, err := MulDiv(wadFromInt(1), wadFromInt(1), big.NewInt(0)); !errors.Is(err, ErrDivisionByZero) {
		t.Fatalf("expected ErrDivisionByZero, got %v", err)
	}
}

func TestAbs(t *testing.T) {
	got, err := Abs(big.NewInt(-5))
	if err != nil {
		t.Fatalf("Abs error: %v", err)
	}
	if got.Cmp(big.NewInt(5)) != 0 {
		t.Fatalf("Abs got=%s want=5", got)
	}

	got, err = Abs(big.NewInt(7))
	if err != nil {
		t.Fatalf("Abs error: %v", err)
	}
	if got.Cmp(big.NewInt(7)) != 0 {
		t.Fatalf("Abs got=%s want=7", got)
	}

	if _, err := Abs(MinInt256()); !errors.Is(err, ErrMinValueUnrepresentable) {
		t.Fatalf("expected ErrMinValueUnrepresentable, got %v", err)
	}

	// 最小值加一可以取绝对值
	nearMin := new(big.Int).Add(MinInt256(), big.NewInt(1))
	got, err = Abs(nearMin)
	if err != nil {
		t.Fatalf("Abs near min error: %v", err)
	}
	if got.Cmp(MaxInt256()) != 0 {
		t.Fatalf("Abs near min got=%s want=%s", got, MaxInt256())
	}
}
