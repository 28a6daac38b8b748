// Package analyzer 把最近的开奖记录交给外部分析提供方，
// 并对返回内容做防御性解析。提供方可按配置替换，
// 编排逻辑不感知具体厂商。
package analyzer

import (
	"context"
	"fmt"

	"lottery-master/internal/cache"
	"lottery-master/internal/config"
	"lottery-master/internal/logger"
	"lottery-master/internal/lottery"
)

// Analyzer 分析编排器
type Analyzer struct {
	provider Provider
	cache    *cache.Cache
	recent   int
}

// New 创建分析编排器，结果缓存与统计侧共用
func New(cfg *config.AI, resultCache *cache.Cache, recentCount int) (*Analyzer, error) {
	provider, err := NewProvider(cfg)
	if err != nil {
		return nil, err
	}
	return &Analyzer{provider: provider, cache: resultCache, recent: recentCount}, nil
}

// NewWithProvider 测试或自定义提供方时使用
func NewWithProvider(provider Provider, resultCache *cache.Cache, recentCount int) *Analyzer {
	return &Analyzer{provider: provider, cache: resultCache, recent: recentCount}
}

// Analyze 对一个玩法的记录做结构化分析。
// cacheKey 由调用方保证稳定（通常取数据集文件标识），
// TTL窗口内同键的结果直接复用，并发未命中合并为一次请求。
// 传输/鉴权/限流错误向上传播，响应解析问题就地用默认结构兜底。
func (a *Analyzer) Analyze(ctx context.Context, game lottery.Game, records []lottery.DrawRecord, cacheKey string) (*AnalysisResult, error) {
	if _, err := lottery.ProfileFor(game); err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("no records to analyze for game %s", game)
	}

	value, err := a.cache.GetOrCompute(cacheKey, func() (interface{}, error) {
		return a.analyze(ctx, game, records)
	})
	if err != nil {
		return nil, err
	}

	result, ok := value.(*AnalysisResult)
	if !ok {
		return nil, fmt.Errorf("unexpected cached value type for key %s", cacheKey)
	}
	return result, nil
}

func (a *Analyzer) analyze(ctx context.Context, game lottery.Game, records []lottery.DrawRecord) (*AnalysisResult, error) {
	systemPrompt, userPrompt, err := BuildPrompts(game, records, a.recent)
	if err != nil {
		return nil, fmt.Errorf("failed to build analysis prompt: %v", err)
	}

	resp, err := a.provider.Analyze(ctx, Request{
		Records:      records,
		Game:         game,
		SystemPrompt: systemPrompt,
		UserPrompt:   userPrompt,
	})
	if err != nil {
		return nil, err
	}

	logger.Infof("Received analysis from %s (%s)", resp.Provider, resp.Model)
	return &AnalysisResult{
		Structured: ParseStructured(resp.RawContent, game),
		Provider:   resp.Provider,
		Model:      resp.Model,
	}, nil
}
