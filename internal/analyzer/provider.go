package analyzer

import (
	"context"
	"errors"
	"fmt"

	"lottery-master/internal/config"
	"lottery-master/internal/logger"
	"lottery-master/internal/lottery"
)

// ErrInvalidResponse 提供方返回缺少必要字段的响应
var ErrInvalidResponse = errors.New("invalid response structure from AI service")

// Request 发给分析提供方的请求
type Request struct {
	Records      []lottery.DrawRecord
	Game         lottery.Game
	SystemPrompt string
	UserPrompt   string
}

// Response 提供方的原始响应
type Response struct {
	RawContent string
	Provider   string
	Model      string
}

// Provider 外部分析提供方接口。网络、鉴权与具体厂商协议
// 都藏在实现里，编排逻辑对提供方身份保持多态。
type Provider interface {
	Name() string
	Ready() bool
	Analyze(ctx context.Context, req Request) (Response, error)
}

// NewProvider 按配置选择提供方实现。
// qwen与deepseek共用OpenAI兼容协议，未知值回退到qwen。
func NewProvider(cfg *config.AI) (Provider, error) {
	var provider Provider
	switch cfg.Provider {
	case "qwen", "deepseek", "":
		provider = newOpenAIProvider(cfg)
	case "claude":
		provider = newClaudeProvider(cfg)
	default:
		logger.Errorf("Unknown AI provider: %s, falling back to qwen", cfg.Provider)
		provider = newOpenAIProvider(cfg)
	}

	if !provider.Ready() {
		return nil, fmt.Errorf("AI provider %s is not properly configured", provider.Name())
	}

	logger.Infof("AI provider %s initialized", provider.Name())
	return provider, nil
}
