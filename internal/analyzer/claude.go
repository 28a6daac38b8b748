package analyzer

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"

	"lottery-master/internal/config"
	"lottery-master/internal/logger"
)

// claudeProvider Anthropic消息协议的提供方
type claudeProvider struct {
	client      *resty.Client
	apiKey      string
	apiURL      string
	model       string
	temperature float64
	maxTokens   int
}

func newClaudeProvider(cfg *config.AI) *claudeProvider {
	return &claudeProvider{
		client:      resty.New().SetTimeout(cfg.Timeout),
		apiKey:      cfg.APIKey,
		apiURL:      cfg.APIURL,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
	}
}

func (p *claudeProvider) Name() string {
	return "Claude"
}

func (p *claudeProvider) Ready() bool {
	return p.apiKey != "" && p.apiURL != "" && p.model != ""
}

func (p *claudeProvider) Analyze(ctx context.Context, req Request) (Response, error) {
	logger.Infof("Sending analysis request to Claude API for %s", req.Game)

	body := map[string]interface{}{
		"model":       p.model,
		"max_tokens":  p.maxTokens,
		"temperature": p.temperature,
		"system":      req.SystemPrompt,
		"messages": []chatMessage{
			{Role: "user", Content: req.UserPrompt},
		},
	}

	resp, err := p.client.R().
		SetContext(ctx).
		SetHeader("x-api-key", p.apiKey).
		SetHeader("anthropic-version", "2023-06-01").
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(p.apiURL)
	if err != nil {
		return Response{}, fmt.Errorf("Claude API request failed: %v", err)
	}

	switch resp.StatusCode() {
	case 200:
	case 401:
		return Response{}, fmt.Errorf("Claude API authentication failed, check the API key")
	case 429:
		return Response{}, fmt.Errorf("Claude API rate limit exceeded, try again later")
	default:
		return Response{}, fmt.Errorf("Claude API returned HTTP %d", resp.StatusCode())
	}

	// 响应正文是content块数组，拼接其中的文本块
	var parts []string
	gjson.GetBytes(resp.Body(), "content").ForEach(func(_, block gjson.Result) bool {
		if block.Get("type").String() == "text" {
			parts = append(parts, block.Get("text").String())
		}
		return true
	})
	if len(parts) == 0 {
		logger.Errorf("Invalid Claude API response: %s", truncate(string(resp.Body()), 200))
		return Response{}, ErrInvalidResponse
	}

	return Response{
		RawContent: strings.Join(parts, "\n"),
		Provider:   "Claude",
		Model:      p.model,
	}, nil
}
