package openai

import (
	"context"
	"fmt"
	"log"
	"strings"

	"backend/internal/config"
	"backend/internal/port/llm"

	"github.com/sashabaranov/go-openai"
)

const (
	maxOutputTokens = 2048
	temperature     = 0.4
)

/**
 * OpenAI へ会話リクエストを送るのに必要な最小限の操作をまとめた窓口。
 */
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

/**
 * OpenAI と会話してプロンプトへの応答テキストを取得する本体。
 */
type Generator struct {
	client ChatClient
	model  string
}

/**
 * API キーやモデル名を点検してから OpenAI との橋渡し役を組み立てる。
 */
func NewGenerator(apiKey, model, baseURL string) (*Generator, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("openai generator: API キーが設定されていません")
	}
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	client := openai.NewClientWithConfig(cfg)
	if model == "" {
		model = config.DefaultOpenAIModel
	}
	return &Generator{
		client: client,
		model:  model,
	}, nil
}

/**
 * OpenAI クライアントは後片付け不要なので互換性のためだけに戻り値を返す。
 */
func (g *Generator) Close() error {
	return nil
}

/**
 * プロンプトを OpenAI に渡し、最初の応答テキストをそのまま返す。
 * 応答の中身の解釈は呼び出し側に任せる。
 */
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", llm.ErrEmptyResponse
	}
	if ctx == nil {
		ctx = context.Background()
	}

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       g.model,
		Temperature: temperature,
		MaxTokens:   maxOutputTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", llm.ErrGeneratorUnavailable, err)
	}

	text, err := extractFirstText(resp)
	if err != nil {
		return "", err
	}

	log.Printf("[openai] generated model=%s len=%d", g.model, len(text))
	return text, nil
}

/**
 * OpenAI の返答から最初に意味を持つテキストを拾い、余白を取り除いて返す。
 */
func extractFirstText(resp openai.ChatCompletionResponse) (string, error) {
	if len(resp.Choices) == 0 {
		return "", llm.ErrEmptyResponse
	}
	// 最初に意味のある文を拾えたらそこで返す
	for _, choice := range resp.Choices {
		trimmed := strings.TrimSpace(choice.Message.Content)
		if trimmed != "" {
			return trimmed, nil
		}
	}
	return "", llm.ErrEmptyResponse
}
