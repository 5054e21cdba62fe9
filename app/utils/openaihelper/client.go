// Package openaihelper 封装 OpenAI 兼容接口的文本生成客户端
package openaihelper

import (
	"context"
	"fmt"
	"strings"
	"time"

	"social-upload/app/config"

	"github.com/patrickmn/go-cache"
	"resty.dev/v3"
)

const defaultBaseURL = "https://api.openai.com/v1"

const translatePrompt = `
<instruction>
作为一个翻译助手，你的任务是将英文翻译成中文。
请按照以下步骤完成任务：
1.将英文翻译成合适的中文
2.只输出翻译后的内容
</instruction>
<example>
输入：Rock Pop Backing Track F Major 70 BPM
输出：摇滚流行伴奏曲 F大调 70 BPM
</example>`

const describePrompt = `
<instruction>
作为一个视频介绍撰写助手，你的任务是根据视频名称编写简短的介绍。
请按照以下步骤完成任务：
1.根据视频名称编写简短的介绍
2.根据视频名称编写合适的话题关键词
3.不要输出其他无关的任何内容
</instruction>
<example>
输入：摇滚流行伴奏曲 F大调 70 BPM
输出：摇滚流行伴奏曲 F大调 70 BPM
#电吉他即兴伴奏 #电吉他伴奏 #摇滚流行伴奏 #F大调伴奏
</example>`

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Client 是 OpenAI 文本服务客户端
type Client struct {
	client *resty.Client
	model  string
	// 同一批次中重复出现的文本不再重复请求翻译
	translations *cache.Cache
}

// New 从配置构造客户端
func New(cfg *config.Config) *Client {
	baseURL := strings.TrimSpace(cfg.OpenAIAPIBase)
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	client := resty.New()
	client.SetBaseURL(strings.TrimRight(baseURL, "/"))
	client.SetAuthToken(cfg.OpenAIAPIKey)
	client.SetTimeout(60 * time.Second)

	return &Client{
		client:       client,
		model:        cfg.OpenAIModel,
		translations: cache.New(30*time.Minute, 10*time.Minute),
	}
}

// chat 发送一次对话补全请求并返回首个回复文本
func (c *Client) chat(ctx context.Context, systemPrompt, userContent string) (string, error) {
	var response chatResponse

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(chatRequest{
			Model: c.model,
			Messages: []chatMessage{
				{Role: "system", Content: systemPrompt},
				{Role: "user", Content: userContent},
			},
		}).
		SetResult(&response).
		Post("/chat/completions")

	if err != nil {
		return "", fmt.Errorf("请求文本服务失败: %w", err)
	}
	if resp.StatusCode() != 200 {
		return "", fmt.Errorf("文本服务返回错误，状态码: %d, 响应: %s", resp.StatusCode(), resp.String())
	}
	if len(response.Choices) == 0 {
		return "", fmt.Errorf("文本服务响应为空")
	}

	return strings.TrimSpace(response.Choices[0].Message.Content), nil
}

// Translate 将英文文本翻译为中文
func (c *Client) Translate(ctx context.Context, text string) (string, error) {
	if cached, ok := c.translations.Get(text); ok {
		return cached.(string), nil
	}

	translated, err := c.chat(ctx, translatePrompt, text)
	if err != nil {
		return "", err
	}

	c.translations.Set(text, translated, cache.DefaultExpiration)
	return translated, nil
}

// Describe 根据视频名称生成介绍和话题关键词
func (c *Client) Describe(ctx context.Context, videoName string) (string, error) {
	return c.chat(ctx, describePrompt, videoName)
}

// Close 释放底层连接
func (c *Client) Close() error {
	return c.client.Close()
}
