// Package oracle 提供差分测试所需的浮点参考实现与随机向量采样。
// 本包是差分测试的"另一边"：允许使用 float64，但绝不进入定点核心路径。
// 参考公式与定点核心同源（Abramowitz–Stegun 7.1.26 / NR erfcc），
// 因此两边的偏差仅来自定点截断与 float64 舍入，约 1e-13 量级。
package oracle

import (
	"math"
	"math/big"
	"math/rand"

	"github.com/shopspring/decimal"
)

// 采样域（实数域），与定点核心的 X/MU/SIGMA 边界一致。
// sigma 下限 0.01：再小则 WAD 输入量化（1e-18）经 1/σ 放大后的偏差
// 会吃掉 1e-13 的差分预算，采样域刻意避开（域校验的极小 sigma 另有单测覆盖）。
const (
	xLimit     = 100000.0
	muLimit    = 100.0
	sigmaLimit = 10.0
	sigmaFloor = 0.01
)

// Erfc 浮点参考互补误差函数（NR erfcc，与定点核心同一逼近公式）。
func Erfc(x float64) float64 {
	z := math.Abs(x)
	t := 1 / (1 + z/2)
	r := t * math.Exp(-z*z-1.26551223+t*(1.00002368+t*(0.37409196+t*(0.09678418+
		t*(-0.18628806+t*(0.27886807+t*(-1.13520398+t*(1.48851587+
		t*(-0.82215223+t*0.17087277)))))))))
	if x >= 0 {
		return r
	}
	return 2 - r
}

// NormCdf 浮点参考高斯 CDF：Φ(x) = ½·erfc(−(x−μ)/(σ√2))。
func NormCdf(x, mu, sigma float64) float64 {
	return 0.5 * Erfc(-(x-mu)/(sigma*math.Sqrt2))
}

// Sample 一组浮点域的 (x, mu, sigma)。
type Sample struct {
	X     float64
	Mu    float64
	Sigma float64
}

// Wad 将样本转换为 WAD 标度的定点整数。
func (s Sample) Wad() (x, mu, sigma *big.Int) {
	return ToWad(s.X), ToWad(s.Mu), ToWad(s.Sigma)
}

// ExpectedCdfWad 返回浮点参考 CDF 的 WAD 标度期望值。
func (s Sample) ExpectedCdfWad() *big.Int {
	return ToWad(NormCdf(s.X, s.Mu, s.Sigma))
}

// ToWad 将 float64 转为 WAD 整数。取浮点数的精确二进制值并量化到 18 位小数，
// 保证定点侧与浮点侧评估的是同一组输入（仅差 1e-18 量化）。
func ToWad(v float64) *big.Int {
	return decimal.NewFromFloatWithExponent(v, -18).Shift(18).BigInt()
}

// Sampler 确定性随机采样器：sigma ∈ [0.01, 10)，mu ∈ (−100, 100)，
// x 落在 μ±10σ 内并截断到 ±1e5。固定 seed 时产出序列可复现。
type Sampler struct {
	rng *rand.Rand
}

// NewSampler 创建采样器，相同 seed 产出相同序列。
func NewSampler(seed int64) *Sampler {
	return &Sampler{rng: rand.New(rand.NewSource(seed))}
}

// Next 产出下一组样本。
func (s *Sampler) Next() Sample {
	sigma := sigmaFloor + s.rng.Float64()*(sigmaLimit-sigmaFloor)
	mu := (s.rng.Float64()*2 - 1) * muLimit
	x := mu + (s.rng.Float64()*2-1)*10*sigma
	if x > xLimit {
		x = xLimit
	}
	if x < -xLimit {
		x = -xLimit
	}
	return Sample{X: x, Mu: mu, Sigma: sigma}
}

// Generate 产出 n 组样本。
func (s *Sampler) Generate(n int) []Sample {
	out := make([]Sample, n)
	for i := range out {
		out[i] = s.Next()
	}
	return out
}
