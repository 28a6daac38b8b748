package analyzer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"lottery-master/internal/cache"
	"lottery-master/internal/lottery"
)

// stubProvider 可编程的提供方替身
type stubProvider struct {
	calls   int
	lastReq Request
	raw     string
	err     error
}

func (p *stubProvider) Name() string { return "Stub" }
func (p *stubProvider) Ready() bool  { return true }

func (p *stubProvider) Analyze(_ context.Context, req Request) (Response, error) {
	p.calls++
	p.lastReq = req
	if p.err != nil {
		return Response{}, p.err
	}
	return Response{RawContent: p.raw, Provider: "Stub", Model: "stub-1"}, nil
}

func ssqRecords() []lottery.DrawRecord {
	return []lottery.DrawRecord{
		{Date: "2024001", Primary: []int{1, 2, 3, 4, 5, 6}, Secondary: []int{7}},
		{Date: "2024002", Primary: []int{2, 9, 15, 21, 28, 31}, Secondary: []int{12}},
	}
}

func TestAnalyzeReturnsStructuredResult(t *testing.T) {
	stub := &stubProvider{raw: "```json\n{\"riskWarnings\": [\"谨慎投注\"]}\n```"}
	a := NewWithProvider(stub, cache.New(time.Hour), 20)

	result, err := a.Analyze(context.Background(), lottery.SSQ, ssqRecords(), "analysis:test")
	require.NoError(t, err)
	require.Equal(t, "Stub", result.Provider)
	require.Equal(t, "stub-1", result.Model)

	standard, ok := result.Structured.(*StandardAnalysis)
	require.True(t, ok)
	require.Equal(t, []string{"谨慎投注"}, standard.RiskWarnings)

	// 提示词由编排器构造后传给提供方
	require.Contains(t, stub.lastReq.SystemPrompt, "双色球")
	require.Contains(t, stub.lastReq.UserPrompt, "2024001")
}

func TestAnalyzeMemoizesByCacheKey(t *testing.T) {
	stub := &stubProvider{raw: "```json\n{}\n```"}
	a := NewWithProvider(stub, cache.New(time.Hour), 20)

	first, err := a.Analyze(context.Background(), lottery.SSQ, ssqRecords(), "analysis:file-a")
	require.NoError(t, err)

	second, err := a.Analyze(context.Background(), lottery.SSQ, ssqRecords(), "analysis:file-a")
	require.NoError(t, err)
	require.Same(t, first, second)
	require.Equal(t, 1, stub.calls)

	// 不同键各自计算
	_, err = a.Analyze(context.Background(), lottery.SSQ, ssqRecords(), "analysis:file-b")
	require.NoError(t, err)
	require.Equal(t, 2, stub.calls)
}

func TestAnalyzeProviderErrorsPropagate(t *testing.T) {
	boom := errors.New("Qwen API rate limit exceeded, try again later")
	stub := &stubProvider{err: boom}
	a := NewWithProvider(stub, cache.New(time.Hour), 20)

	_, err := a.Analyze(context.Background(), lottery.SSQ, ssqRecords(), "analysis:test")
	require.ErrorIs(t, err, boom)

	// 失败不落缓存，恢复后重新请求
	stub.err = nil
	stub.raw = "```json\n{}\n```"
	result, err := a.Analyze(context.Background(), lottery.SSQ, ssqRecords(), "analysis:test")
	require.NoError(t, err)
	require.NotNil(t, result)
	require.Equal(t, 2, stub.calls)
}

func TestAnalyzeUnparsableContentFallsBackLocally(t *testing.T) {
	stub := &stubProvider{raw: "今天状态不错，直接告诉你结论吧。"}
	a := NewWithProvider(stub, cache.New(time.Hour), 20)

	result, err := a.Analyze(context.Background(), lottery.SSQ, ssqRecords(), "analysis:test")
	require.NoError(t, err)
	require.Equal(t, DefaultStandardResult(), result.Structured)
}

func TestAnalyzeInputValidation(t *testing.T) {
	stub := &stubProvider{raw: "```json\n{}\n```"}
	a := NewWithProvider(stub, cache.New(time.Hour), 20)

	_, err := a.Analyze(context.Background(), lottery.Game("pk10"), ssqRecords(), "k")
	require.ErrorIs(t, err, lottery.ErrUnknownGame)

	_, err = a.Analyze(context.Background(), lottery.SSQ, nil, "k")
	require.Error(t, err)
	require.Contains(t, err.Error(), "no records to analyze")
	require.Zero(t, stub.calls)
}
