package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v2"
)

// Config 应用程序配置结构
type Config struct {
	App     App     `yaml:"app"`
	Scraper Scraper `yaml:"scraper"`
	AI      AI      `yaml:"ai"`
}

// App 应用程序配置
type App struct {
	LogLevel        string        `yaml:"log_level"`
	DataDir         string        `yaml:"data_dir"`
	PollingInterval time.Duration `yaml:"polling_interval"`
	CacheTTL        time.Duration `yaml:"cache_ttl"`
	DefaultWindow   int           `yaml:"default_window"`
	RecentDataCount int           `yaml:"recent_data_count"`
}

// Source 单个玩法的数据来源
type Source struct {
	URL        string `yaml:"url"`
	FilePrefix string `yaml:"file_prefix"`
	GBK        bool   `yaml:"gbk"` // 来源页面是否为GBK/GB2312编码
}

// Scraper 采集配置
type Scraper struct {
	Timeout      time.Duration     `yaml:"timeout"`
	RetryCount   int               `yaml:"retry_count"`
	HistoryLimit int               `yaml:"history_limit"`
	Sources      map[string]Source `yaml:"sources"`
}

// AI 外部分析服务配置
type AI struct {
	Provider    string        `yaml:"provider"`
	APIKey      string        `yaml:"api_key"`
	APIURL      string        `yaml:"api_url"`
	Model       string        `yaml:"model"`
	Timeout     time.Duration `yaml:"timeout"`
	Temperature float64       `yaml:"temperature"`
	MaxTokens   int           `yaml:"max_tokens"`
}

// LoadConfig 加载配置文件
func LoadConfig(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %v", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %v", err)
	}
	config.applyDefaults()

	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.App.LogLevel == "" {
		c.App.LogLevel = "info"
	}
	if c.App.DataDir == "" {
		c.App.DataDir = "lottery_data"
	}
	if c.App.PollingInterval == 0 {
		c.App.PollingInterval = time.Hour
	}
	if c.App.CacheTTL == 0 {
		c.App.CacheTTL = time.Hour
	}
	if c.App.DefaultWindow == 0 {
		c.App.DefaultWindow = 100
	}
	if c.App.RecentDataCount == 0 {
		c.App.RecentDataCount = 20
	}
	if c.Scraper.Timeout == 0 {
		c.Scraper.Timeout = 30 * time.Second
	}
	if c.Scraper.HistoryLimit == 0 {
		c.Scraper.HistoryLimit = 100
	}
	if c.AI.Timeout == 0 {
		c.AI.Timeout = 30 * time.Second
	}
	if c.AI.MaxTokens == 0 {
		c.AI.MaxTokens = 1000
	}
}
