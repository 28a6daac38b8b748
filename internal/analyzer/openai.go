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

// openAIProvider OpenAI兼容协议的提供方（通义千问/DeepSeek）
type openAIProvider struct {
	client      *resty.Client
	name        string
	apiKey      string
	apiURL      string
	model       string
	temperature float64
	maxTokens   int
}

func newOpenAIProvider(cfg *config.AI) *openAIProvider {
	name := "Qwen"
	if strings.Contains(cfg.Model, "deepseek") {
		name = "DeepSeek"
	}
	return &openAIProvider{
		client:      resty.New().SetTimeout(cfg.Timeout),
		name:        name,
		apiKey:      cfg.APIKey,
		apiURL:      cfg.APIURL,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
	}
}

func (p *openAIProvider) Name() string {
	return p.name
}

func (p *openAIProvider) Ready() bool {
	return p.apiKey != "" && p.apiURL != "" && p.model != ""
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

func (p *openAIProvider) Analyze(ctx context.Context, req Request) (Response, error) {
	logger.Infof("Sending analysis request to %s API for %s", p.name, req.Game)

	body := map[string]interface{}{
		"model": p.model,
		"messages": []chatMessage{
			{Role: "system", Content: req.SystemPrompt},
			{Role: "user", Content: req.UserPrompt},
		},
		"max_tokens": p.maxTokens,
	}
	// deepseek-r1系列不接受采样参数
	if !strings.Contains(p.model, "deepseek-r1") {
		body["temperature"] = p.temperature
	}

	resp, err := p.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+p.apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(p.apiURL)
	if err != nil {
		return Response{}, fmt.Errorf("%s API request failed: %v", p.name, err)
	}

	switch resp.StatusCode() {
	case 200:
	case 401:
		return Response{}, fmt.Errorf("%s API authentication failed, check the API key", p.name)
	case 429:
		return Response{}, fmt.Errorf("%s API rate limit exceeded, try again later", p.name)
	default:
		return Response{}, fmt.Errorf("%s API returned HTTP %d", p.name, resp.StatusCode())
	}

	content := gjson.GetBytes(resp.Body(), "choices.0.message.content")
	if !content.Exists() || content.String() == "" {
		logger.Errorf("Invalid %s API response: %s", p.name, truncate(string(resp.Body()), 200))
		return Response{}, ErrInvalidResponse
	}

	logger.Debugf("Raw content from %s: %s", p.name, truncate(content.String(), 100))
	return Response{
		RawContent: content.String(),
		Provider:   p.name,
		Model:      p.model,
	}, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
