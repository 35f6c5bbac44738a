// Package vectors 读写差分测试向量文件。
//
// 文件格式与标准合约调用参数编码一致：每个 int256 编码为 32 字节
// 大端二补数字，input 文件为 N 组连续的 (x, mu, sigma) 三元组（每组 96 字节），
// output 文件为 N 个 CDF 期望值（每个 32 字节），第 i 个输出对应第 i 组输入。
package vectors

import (
	"math/big"
	"os"

	"github.com/ethereum/go-ethereum/accounts/abi"
	ethmath "github.com/ethereum/go-ethereum/common/math"
	"github.com/pkg/errors"
)

const (
	wordSize   = 32
	tripleSize = 3 * wordSize
)

// Triple 一组 WAD 标度的 (x, mu, sigma) 输入。
type Triple struct {
	X     *big.Int
	Mu    *big.Int
	Sigma *big.Int
}

var (
	int256Type = mustType("int256")

	tripleArgs = abi.Arguments{
		{Name: "x", Type: int256Type},
		{Name: "mu", Type: int256Type},
		{Name: "sigma", Type: int256Type},
	}
	wordArgs = abi.Arguments{
		{Name: "value", Type: int256Type},
	}

	maxInt256 = new(big.Int).Sub(ethmath.BigPow(2, 255), big.NewInt(1))
	minInt256 = new(big.Int).Neg(ethmath.BigPow(2, 255))
)

func mustType(t string) abi.Type {
	typ, err := abi.NewType(t, "", nil)
	if err != nil {
		panic("vectors: abi type " + t + ": " + err.Error())
	}
	return typ
}

func checkInt256(name string, v *big.Int) error {
	if v == nil {
		return errors.Errorf("%s is nil", name)
	}
	if v.Cmp(minInt256) < 0 || v.Cmp(maxInt256) > 0 {
		return errors.Errorf("%s out of int256 range: %s", name, v.String())
	}
	return nil
}

// EncodeInput 将三元组序列编码为连续的 ABI 字节流。
func EncodeInput(triples []Triple) ([]byte, error) {
	buf := make([]byte, 0, len(triples)*tripleSize)
	for i, tr := range triples {
		if err := checkInt256("x", tr.X); err != nil {
			return nil, errors.Wrapf(err, "triple %d", i)
		}
		if err := checkInt256("mu", tr.Mu); err != nil {
			return nil, errors.Wrapf(err, "triple %d", i)
		}
		if err := checkInt256("sigma", tr.Sigma); err != nil {
			return nil, errors.Wrapf(err, "triple %d", i)
		}
		packed, err := tripleArgs.Pack(tr.X, tr.Mu, tr.Sigma)
		if err != nil {
			return nil, errors.Wrapf(err, "pack triple %d", i)
		}
		buf = append(buf, packed...)
	}
	return buf, nil
}

// DecodeInput 解析三元组字节流，长度必须是 96 的整数倍。
func DecodeInput(data []byte) ([]Triple, error) {
	if len(data)%tripleSize != 0 {
		return nil, errors.Errorf("input length %d is not a multiple of %d", len(data), tripleSize)
	}
	triples := make([]Triple, 0, len(data)/tripleSize)
	for off := 0; off < len(data); off += tripleSize {
		vals, err := tripleArgs.Unpack(data[off : off+tripleSize])
		if err != nil {
			return nil, errors.Wrapf(err, "unpack triple at offset %d", off)
		}
		triples = append(triples, Triple{
			X:     vals[0].(*big.Int),
			Mu:    vals[1].(*big.Int),
			Sigma: vals[2].(*big.Int),
		})
	}
	return triples, nil
}

// EncodeOutput 将 CDF 期望值序列编码为连续的 ABI 字节流。
func EncodeOutput(values []*big.Int) ([]byte, error) {
	buf := make([]byte, 0, len(values)*wordSize)
	for i, v := range values {
		if err := checkInt256("value", v); err != nil {
			return nil, errors.Wrapf(err, "element %d", i)
		}
		packed, err := wordArgs.Pack(v)
		if err != nil {
			return nil, errors.Wrapf(err, "pack element %d", i)
		}
		buf = append(buf, packed...)
	}
	return buf, nil
}

// DecodeOutput 解析 CDF 期望值字节流，长度必须是 32 的整数倍。
func DecodeOutput(data []byte) ([]*big.Int, error) {
	if len(data)%wordSize != 0 {
		return nil, errors.Errorf("output length %d is not a multiple of %d", len(data), wordSize)
	}
	values := make([]*big.Int, 0, len(data)/wordSize)
	for off := 0; off < len(data); off += wordSize {
		vals, err := wordArgs.Unpack(data[off : off+wordSize])
		if err != nil {
			return nil, errors.Wrapf(err, "unpack element at offset %d", off)
		}
		values = append(values, vals[0].(*big.Int))
	}
	return values, nil
}

// WriteInput 编码并写入 input 文件。
func WriteInput(path string, triples []Triple) error {
	data, err := EncodeInput(triples)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "write input file %s", path)
	}
	return nil
}

// ReadInput 读取并解析 input 文件。
func ReadInput(path string) ([]Triple, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read input file %s", path)
	}
	return DecodeInput(data)
}

// WriteOutput 编码并写入 output 文件。
func WriteOutput(path string, values []*big.Int) error {
	data, err := EncodeOutput(values)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "write output file %s", path)
	}
	return nil
}

// ReadOutput 读取并解析 output 文件。
func ReadOutput(path string) ([]*big.Int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read output file %s", path)
	}
	return DecodeOutput(data)
}
