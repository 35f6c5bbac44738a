package wadmath

import "math/big"

// 定点 e^x：先把输入从 1e18 标度换到 2^96 二进制基，按 ln2 做区间归约
// （exp(x) = exp(x′)·2^k），再对 x′ 用 (6,7) 阶有理逼近求值。
// 算法与链上定点数学库一致，中间量全部落在 int256 内，结果逐位可复现。
var (
	// x ≤ ln(0.5e-18)·1e18 时结果向下舍入为 0
	expInputLower = mustBig("-42139678854452767551")
	// x ≥ ln((2^255−1)/1e18)·1e18 时结果无法以 int256 表示
	expInputUpper = mustBig("135305999368893231589")

	// 5^18：乘 2^78 再除以它等价于乘 2^96/1e18
	expPow5To18 = big.NewInt(3814697265625)
	// ln2 · 2^96
	expLn2Basis96 = mustBig("54916777467707473351141471128")
	// 回标因子：有理逼近的比例系数 s 与 1e18/2^96 的合并乘数
	expScale = mustBig("3822833074963236453042738258902158003155416615667")

	expTwoPow95 = new(big.Int).Lsh(big.NewInt(1), 95)

	expC1 = mustBig("1346386616545796478920950773328")
	expC2 = mustBig("57155421227552351082224309758442")
	expC3 = mustBig("94201549194550492254356042504812")
	expC4 = mustBig("28719021644029726153956944680412240")
	expC5 = mustBig("4385272521454847904659076985693276")

	expD1 = mustBig("2855989394907223263936484059900")
	expD2 = mustBig("50020603652535783019961831881945")
	expD3 = mustBig("533845033583426703283633433725380")
	expD4 = mustBig("3604857256930695427073651918091429")
	expD5 = mustBig("14423608567350463180887372962807573")
	expD6 = mustBig("26449188498355588339934803723976023")
)

// ExpWad 计算 e^x（WAD 标度）。x ≤ −42.139e18 时返回 0；
// x ≥ 135.306e18 时返回 ErrArithmeticOverflow。
func ExpWad(x *big.Int) (*big.Int, error) {
	if x.Cmp(expInputLower) <= 0 {
		return new(big.Int), nil
	}
	if x.Cmp(expInputUpper) >= 0 {
		return nil, ErrArithmeticOverflow
	}

	// 基转换：1e18 → 2^96（乘 2^78 除 5^18，向零截断）
	v := new(big.Int).Lsh(x, 78)
	v.Quo(v, expPow5To18)

	// 区间归约：k = round(v/ln2)，v′ = v − k·ln2，v′ ∈ (−½ln2, ½ln2)·2^96
	k := new(big.Int).Lsh(v, 96)
	k.Quo(k, expLn2Basis96)
	k.Add(k, expTwoPow95)
	k.Rsh(k, 96) // 算术右移，k ∈ [−61, 195]
	v.Sub(v, new(big.Int).Mul(k, expLn2Basis96))

	// (6,7) 阶有理逼近。分子 p 保持在 2^192 基，省去除法前的回标。
	y := new(big.Int).Add(v, expC1)
	y.Mul(y, v)
	y.Rsh(y, 96)
	y.Add(y, expC2)

	p := new(big.Int).Add(y, v)
	p.Sub(p, expC3)
	p.Mul(p, y)
	p.Rsh(p, 96)
	p.Add(p, expC4)
	p.Mul(p, v)
	p.Add(p, new(big.Int).Lsh(expC5, 96))

	q := new(big.Int).Sub(v, expD1)
	q.Mul(q, v)
	q.Rsh(q, 96)
	q.Add(q, expD2)
	q.Mul(q, v)
	q.Rsh(q, 96)
	q.Sub(q, expD3)
	q.Mul(q, v)
	q.Rsh(q, 96)
	q.Add(q, expD4)
	q.Mul(q, v)
	q.Rsh(q, 96)
	q.Sub(q, expD5)
	q.Mul(q, v)
	q.Rsh(q, 96)
	q.Add(q, expD6)

	r := new(big.Int).Quo(p, q)

	// 一次性乘回比例系数、区间归约的 2^k 与基转换因子
	r.Mul(r, expScale)
	r.Rsh(r, uint(195-k.Int64()))
	return r, nil
}
