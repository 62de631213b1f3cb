package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// APIKeyEnv 文本和图片模型共用的凭证环境变量
const APIKeyEnv = "OPENAI_API_KEY"

// ErrMissingAPIKey 未配置模型凭证，启动即失败
var ErrMissingAPIKey = errors.New("Missing OPENAI_API_KEY. Set it in your environment and restart.")

// Config 项目配置结构体
type Config struct {
	LLM         LLMConfig         `yaml:"llm"`
	Image       ImageConfig       `yaml:"image"`
	Log         LogConfig         `yaml:"log"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	DB          DBConfig          `yaml:"db"`
	Output      OutputConfig      `yaml:"output"`
}

// LLMConfig 文本模型配置，BaseURL 和 APIKey 同时用于图片模型
type LLMConfig struct {
	BaseURL string `yaml:"base_url"`
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`
}

// ImageConfig 图片模型配置
type ImageConfig struct {
	Model string `yaml:"model"`
}

// LogConfig 日志相关配置
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// ConcurrencyConfig 调用外部模型的限流配置
type ConcurrencyConfig struct {
	QPS int `yaml:"qps"`
	RPM int `yaml:"rpm"`
}

// DBConfig 数据库相关配置，Host 为空时不记录生成历史
type DBConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
}

// OutputConfig 生成文件的输出目录
type OutputConfig struct {
	Dir string `yaml:"dir"`
}

// LoadConfig 从指定路径加载配置；文件不存在时只使用默认值和环境变量
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, err
	}

	cfg.ApplyDefaults()
	cfg.ApplyEnv()
	return &cfg, nil
}

// ApplyDefaults 填充未配置的字段
func (c *Config) ApplyDefaults() {
	if c.LLM.BaseURL == "" {
		c.LLM.BaseURL = "https://api.openai.com/v1"
	}
	if c.LLM.Model == "" {
		c.LLM.Model = "gpt-5-mini"
	}
	if c.Image.Model == "" {
		c.Image.Model = "gpt-image-1"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Concurrency.QPS <= 0 {
		c.Concurrency.QPS = 1
	}
	if c.Concurrency.RPM <= 0 {
		c.Concurrency.RPM = 60
	}
	if c.DB.Port == 0 {
		c.DB.Port = 5432
	}
	if c.Output.Dir == "" {
		c.Output.Dir = "output"
	}
}

// ApplyEnv 加载 .env（如果存在），环境变量中的凭证优先于配置文件
func (c *Config) ApplyEnv() {
	_ = godotenv.Load()
	if key := os.Getenv(APIKeyEnv); key != "" {
		c.LLM.APIKey = key
	}
}

// Validate 校验必填项
func (c *Config) Validate() error {
	if c.LLM.APIKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}
