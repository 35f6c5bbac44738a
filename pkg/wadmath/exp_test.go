package wadmath

import (
	"errors"
	"math/big"
	"testing"
)

// 与参考定点实现的已知值比对，容差 2 wad（末位舍入差异）
func assertExpNear(t *testing.T, input, want string) {
	t.Helper()
	x := mustBig(input)
	got, err := ExpWad(x)
	if err != nil {
		t.Fatalf("ExpWad(%s) error: %v", input, err)
	}
	w := mustBig(want)
	diff := new(big.Int).Sub(got, w)
	diff.Abs(diff)
	if diff.Cmp(big.NewInt(2)) > 0 {
		t.Fatalf("ExpWad(%s) got=%s want=%s (diff=%s)", input, got, w, diff)
	}
}

func TestExpWadKnownValues(t *testing.T) {
	// e^0 = 1
	assertExpNear(t, "0", "1000000000000000000")
	// e^1
	assertExpNear(t, "1000000000000000000", "2718281828459045235")
	// e^2
	assertExpNear(t, "2000000000000000000", "7389056098930650227")
	// e^-1
	assertExpNear(t, "-1000000000000000000", "367879441171442321")
	// e^0.5
	assertExpNear(t, "500000000000000000", "1648721270700128146")
}

func TestExpWadTinyResult(t *testing.T) {
	// e^-36 ≈ 2.3195e-16，WAD 标度下约 232（erfc 路径上 k 的极小值区域）
	got, err := ExpWad(mustBig("-36000000000000000000"))
	if err != nil {
		t.Fatalf("ExpWad error: %v", err)
	}
	if got.Cmp(big.NewInt(200)) < 0 || got.Cmp(big.NewInt(260)) > 0 {
		t.Fatalf("ExpWad(-36) got=%s, want ~232", got)
	}
}

func TestExpWadSaturatesLow(t *testing.T) {
	// 下界处及更低直接返回 0
	for _, in := range []string{
		"-42139678854452767551",
		"-42139678854452767552",
		"-100000000000000000000",
	} {
		got, err := ExpWad(mustBig(in))
		if err != nil {
			t.Fatalf("ExpWad(%s) error: %v", in, err)
		}
		if got.Sign() != 0 {
			t.Fatalf("ExpWad(%s) got=%s want=0", in, got)
		}
	}
	// 下界上方一个单位应为正
	got, err := ExpWad(mustBig("-42139678854452767550"))
	if err != nil {
		t.Fatalf("ExpWad error: %v", err)
	}
	if got.Sign() < 0 {
		t.Fatalf("ExpWad near lower bound got=%s, want >= 0", got)
	}
}

func TestExpWadOverflow(t *testing.T) {
	for _, in := range []string{
		"135305999368893231589",
		"135305999368893231590",
		"200000000000000000000",
	} {
		if _, err := ExpWad(mustBig(in)); !errors.Is(err, ErrArithmeticOverflow) {
			t.Fatalf("ExpWad(%s) expected ErrArithmeticOverflow, got %v", in, err)
		}
	}
	// 上界下方一个单位应可计算
	if _, err := ExpWad(mustBig("135305999368893231588")); err != nil {
		t.Fatalf("ExpWad below upper bound error: %v", err)
	}
}

func TestExpWadMonotonic(t *testing.T) {
	// 单调性抽查：x1 < x2 ⇒ e^x1 ≤ e^x2
	inputs := []string{
		"-42000000000000000000",
		"-10000000000000000000",
		"-1000000000000000000",
		"0",
		"1000000000000000000",
		"10000000000000000000",
		"100000000000000000000",
	}
	prev := new(big.Int).SetInt64(-1)
	for _, in := range inputs {
		got, err := ExpWad(mustBig(in))
		if err != nil {
			t.Fatalf("ExpWad(%s) error: %v", in, err)
		}
		if got.Cmp(prev) < 0 {
			t.Fatalf("ExpWad not monotonic at %s: %s < %s", in, got, prev)
		}
		prev = got
	}
}
