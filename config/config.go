package config

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath 默认配置文件名
const DefaultPath = "oneko.yaml"

// Config 结构体：对应 oneko.yaml 的内容 (启动参数，改了要重启)
type Config struct {
	TPS         int     `yaml:"tps"`          // 走路时的更新频率
	IdleTPS     int     `yaml:"idle_tps"`     // 待机时的更新频率
	StressedTPS int     `yaml:"stressed_tps"` // 待机且系统繁忙时的更新频率
	Scale       float64 `yaml:"scale"`        // 窗口放大倍数
	PowerSaver  bool    `yaml:"power_saver"`  // 是否根据 CPU 占用降频
	StressCPU   float64 `yaml:"stress_cpu"`   // CPU 超过多少算繁忙 (0-100)
	Namespace   string  `yaml:"namespace"`    // 设置存储的命名空间
}

// NewDefault 生成一份默认配置
// 当找不到配置文件，或者读取失败时，用这个"保底"
func NewDefault() *Config {
	return &Config{
		TPS:         60,
		IdleTPS:     30,
		StressedTPS: 10,
		Scale:       1,
		PowerSaver:  true,
		StressCPU:   80,
		Namespace:   "OnekoSmart",
	}
}

// Load 从硬盘读取配置
func Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		// 如果文件不存在，直接返回默认配置，不算报错
		if errors.Is(err, os.ErrNotExist) {
			return NewDefault(), nil
		}
		return nil, err
	}

	// 没写的字段保持默认值
	cfg := NewDefault()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		// 如果格式坏了，也返回默认配置
		return NewDefault(), nil
	}
	cfg.normalize()
	return cfg, nil
}

// Save 把当前配置写入硬盘
func Save(cfg *Config, filename string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0o644)
}

// normalize 把不合理的值改回默认
func (c *Config) normalize() {
	def := NewDefault()
	if c.TPS <= 0 {
		c.TPS = def.TPS
	}
	if c.IdleTPS <= 0 {
		c.IdleTPS = def.IdleTPS
	}
	if c.StressedTPS <= 0 {
		c.StressedTPS = def.StressedTPS
	}
	if c.Scale <= 0 {
		c.Scale = def.Scale
	}
	if c.StressCPU <= 0 || c.StressCPU > 100 {
		c.StressCPU = def.StressCPU
	}
	if c.Namespace == "" {
		c.Namespace = def.Namespace
	}
}
