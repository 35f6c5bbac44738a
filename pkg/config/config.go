// Package config 加载差分测试向量生成任务的配置。
// 查找顺序：yaml 配置文件 → GAUSSCDF_* 环境变量覆盖 → 内置默认值。
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Campaign 一次向量生成任务的配置
type Campaign struct {
	Count      int    `yaml:"count"`       // 向量数量（源仓库使用 100000）
	Seed       int64  `yaml:"seed"`        // 采样器种子，固定种子产出可复现
	InputFile  string `yaml:"input_file"`  // input 文件路径
	OutputFile string `yaml:"output_file"` // output 文件路径
	LogLevel   string `yaml:"log_level"`   // 日志级别
	LogFile    string `yaml:"log_file"`    // 日志文件（可选）
}

// Default 内置默认配置。
func Default() Campaign {
	return Campaign{
		Count:      100000,
		Seed:       20260830,
		InputFile:  "testdata/input",
		OutputFile: "testdata/output",
		LogLevel:   "info",
	}
}

// Load 读取 yaml 配置文件并套用环境变量覆盖。path 为空时只用默认值与环境变量。
func Load(path string) (Campaign, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("读取配置文件失败: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("解析配置文件失败: %w", err)
		}
	}
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate 校验配置。
func (c Campaign) Validate() error {
	if c.Count <= 0 {
		return fmt.Errorf("count 必须为正数: %d", c.Count)
	}
	if strings.TrimSpace(c.InputFile) == "" {
		return fmt.Errorf("input_file 不能为空")
	}
	if strings.TrimSpace(c.OutputFile) == "" {
		return fmt.Errorf("output_file 不能为空")
	}
	return nil
}

func (c *Campaign) applyEnv() {
	if v := os.Getenv("GAUSSCDF_VECTOR_COUNT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Count = n
		}
	}
	if v := os.Getenv("GAUSSCDF_SEED"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = n
		}
	}
	if v := os.Getenv("GAUSSCDF_INPUT_FILE"); v != "" {
		c.InputFile = v
	}
	if v := os.Getenv("GAUSSCDF_OUTPUT_FILE"); v != "" {
		c.OutputFile = v
	}
	if v := os.Getenv("GAUSSCDF_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("GAUSSCDF_LOG_FILE"); v != "" {
		c.LogFile = v
	}
}
