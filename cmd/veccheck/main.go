// veccheck 差分测试工具：读取 ABI 编码的 input/output 向量文件，
// 逐组调用定点 Cdf 并与浮点参考期望值比对，任一偏差超过预算即失败退出。
package main

import (
	"flag"
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/betbot/gausscdf/pkg/gaussian"
	"github.com/betbot/gausscdf/pkg/logger"
	"github.com/betbot/gausscdf/pkg/vectors"
)

func main() {
	_ = godotenv.Load()

	var (
		inputPath  = flag.String("input", getenv("GAUSSCDF_INPUT_FILE", "testdata/input"), "input 向量文件路径")
		outputPath = flag.String("output", getenv("GAUSSCDF_OUTPUT_FILE", "testdata/output"), "output 期望值文件路径")
		// 1e-13（CDF 单位）对应 WAD 标度下 1e5
		maxDevWad = flag.Int64("max-dev-wad", 100000, "允许的最大绝对偏差（WAD 标度）")
		logLevel  = flag.String("log-level", getenv("GAUSSCDF_LOG_LEVEL", "info"), "日志级别")
	)
	flag.Parse()

	if err := logger.Init(logger.Config{Level: *logLevel}); err != nil {
		fatal(err)
	}
	log := logger.Logger

	triples, err := vectors.ReadInput(*inputPath)
	if err != nil {
		fatal(err)
	}
	expected, err := vectors.ReadOutput(*outputPath)
	if err != nil {
		fatal(err)
	}
	if len(triples) != len(expected) {
		fatal(fmt.Errorf("input/output 数量不一致: %d vs %d", len(triples), len(expected)))
	}
	log.Infof("开始差分比对: %d 组向量，偏差预算 %d wad", len(triples), *maxDevWad)

	budget := big.NewInt(*maxDevWad)
	maxDev := new(big.Int)
	maxDevIdx := -1
	failures := 0
	for i, tr := range triples {
		got, err := gaussian.Cdf(tr.X, tr.Mu, tr.Sigma)
		if err != nil {
			log.Errorf("第 %d 组计算失败: %v (x=%s mu=%s sigma=%s)", i, err, tr.X, tr.Mu, tr.Sigma)
			failures++
			continue
		}
		dev := new(big.Int).Sub(got, expected[i])
		dev.Abs(dev)
		if dev.Cmp(maxDev) > 0 {
			maxDev.Set(dev)
			maxDevIdx = i
		}
		if dev.Cmp(budget) > 0 {
			log.Errorf("第 %d 组偏差超出预算: |%s − %s| = %s wad",
				i, got, expected[i], dev)
			failures++
		}
	}

	log.Infof("最大偏差 %s wad（约 %s，第 %d 组）",
		maxDev, decimal.NewFromBigInt(maxDev, -18).String(), maxDevIdx)
	if failures > 0 {
		log.Errorf("差分比对失败: %d 组超出预算", failures)
		os.Exit(1)
	}
	log.Infof("差分比对通过: %d 组向量全部在预算内", len(triples))
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "error:", err.Error())
	os.Exit(1)
}
