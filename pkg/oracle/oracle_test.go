package oracle

import (
	"math/big"
	"testing"
)

func TestNormCdfReferenceValues(t *testing.T) {
	// 均值处 ≈ 0.5（NR 逼近公式在 0 处自带约 1.5e-8 的偏差）
	got := NormCdf(0, 0, 1)
	if got < 0.5-1e-7 || got > 0.5+1e-7 {
		t.Fatalf("NormCdf(0,0,1)=%v, want ~0.5", got)
	}

	// 已知场景
	got = NormCdf(94.79555522025787, 94.45009839254658, 0.3360716302603173)
	want := 0.8480077154950457
	if diff := got - want; diff > 1e-8 || diff < -1e-8 {
		t.Fatalf("NormCdf known scenario got=%v want=%v", got, want)
	}

	// 对称性
	if d := NormCdf(1, 0, 1) + NormCdf(-1, 0, 1) - 1; d > 1e-9 || d < -1e-9 {
		t.Fatalf("NormCdf 对称性破坏: 偏差 %v", d)
	}
}

func TestErfcMonotonic(t *testing.T) {
	prev := 3.0
	for x := -6.0; x <= 6.0; x += 0.25 {
		v := Erfc(x)
		if v > prev {
			t.Fatalf("Erfc 非单调: Erfc(%v)=%v > %v", x, v, prev)
		}
		if v < 0 || v > 2 {
			t.Fatalf("Erfc(%v)=%v 超出 [0,2]", x, v)
		}
		prev = v
	}
}

func TestToWad(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{1, "1000000000000000000"},
		{0.5, "500000000000000000"},
		{-2.5, "-2500000000000000000"},
		{100000, "100000000000000000000000"},
	}
	for _, tc := range cases {
		want, _ := new(big.Int).SetString(tc.want, 10)
		if got := ToWad(tc.in); got.Cmp(want) != 0 {
			t.Fatalf("ToWad(%v) got=%s want=%s", tc.in, got, want)
		}
	}
}

func TestSamplerDeterministic(t *testing.T) {
	a := NewSampler(42).Generate(100)
	b := NewSampler(42).Generate(100)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("相同 seed 第 %d 组样本不一致: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestSamplerDomain(t *testing.T) {
	s := NewSampler(7)
	for i := 0; i < 1000; i++ {
		sm := s.Next()
		if sm.Sigma < sigmaFloor || sm.Sigma >= sigmaLimit {
			t.Fatalf("sigma 超出采样域: %v", sm.Sigma)
		}
		if sm.Mu < -muLimit || sm.Mu > muLimit {
			t.Fatalf("mu 超出采样域: %v", sm.Mu)
		}
		if sm.X < -xLimit || sm.X > xLimit {
			t.Fatalf("x 超出采样域: %v", sm.X)
		}
		// x 落在 μ±10σ 内（或被域边界截断）
		lo, hi := sm.Mu-10*sm.Sigma, sm.Mu+10*sm.Sigma
		if lo < -xLimit {
			lo = -xLimit
		}
		if hi > xLimit {
			hi = xLimit
		}
		if sm.X < lo || sm.X > hi {
			t.Fatalf("x 偏离 μ±10σ: %+v", sm)
		}
	}
}
