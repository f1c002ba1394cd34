package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config 应用配置
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Redis    RedisConfig    `yaml:"redis"`
	Wasender WasenderConfig `yaml:"wasender"`
	Bot      BotConfig      `yaml:"bot"`
	Admin    AdminConfig    `yaml:"admin"`
	Log      LogConfig      `yaml:"log"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Port int    `yaml:"port"`
	Name string `yaml:"name"`
}

// RedisConfig Redis 配置
type RedisConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// WasenderConfig Wasender 发送通道配置
type WasenderConfig struct {
	BaseURL    string `yaml:"baseUrl"`
	Token      string `yaml:"token"`
	OwnerPhone string `yaml:"ownerPhone"`
	BotName    string `yaml:"botName"`
}

// BotConfig 机器人核心参数
type BotConfig struct {
	ConfidenceThreshold float64 `yaml:"confidenceThreshold"` // 分类置信度阈值，低于则走关键词规则
	MinSendGapMs        int     `yaml:"minSendGapMs"`        // 同一收件人两次发送的最小间隔
	RetryMinMs          int     `yaml:"retryMinMs"`          // 限流重试退避下限
	RetryMaxMs          int     `yaml:"retryMaxMs"`          // 限流重试退避上限
	DedupCapacity       int     `yaml:"dedupCapacity"`       // 去重缓存容量
}

// AdminConfig 管理接口配置
type AdminConfig struct {
	Secret string `yaml:"secret"`
}

// LogConfig 日志配置
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// LoadConfig 加载配置文件
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	// 支持 ${VAR} 形式的环境变量引用（密钥不落盘）
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// applyDefaults 填充缺省参数
func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.Name == "" {
		c.Server.Name = "noabot"
	}
	if c.Wasender.BotName == "" {
		c.Wasender.BotName = "Noa Asistente"
	}
	if c.Bot.ConfidenceThreshold == 0 {
		c.Bot.ConfidenceThreshold = 0.55
	}
	if c.Bot.MinSendGapMs == 0 {
		c.Bot.MinSendGapMs = 1500
	}
	if c.Bot.RetryMinMs == 0 {
		c.Bot.RetryMinMs = 1000
	}
	if c.Bot.RetryMaxMs == 0 {
		c.Bot.RetryMaxMs = 15000
	}
	if c.Bot.DedupCapacity == 0 {
		c.Bot.DedupCapacity = 1000
	}
}
