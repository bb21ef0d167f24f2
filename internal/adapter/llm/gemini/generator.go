package gemini

import (
	"context"
	"fmt"
	"strings"

	"backend/internal/port/llm"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const defaultModelName = "gemini-2.5-flash"

var newGeminiClient = genai.NewClient

// Gemini の生成モデルをテスト用に差し替えやすくしたインターフェース。
type contentGenerator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// Gemini を用いたテキスト生成処理をまとめたもの。
type Generator struct {
	generator contentGenerator
	closeFn   func() error
	modelName string
}

/**
 * API キーなどの設定から Gemini への窓口を構築し、生成器を返す。
 * 必須情報が欠けていたり、接続ができないときはその旨を伝えて終了する。
 */
func NewGenerator(ctx context.Context, apiKey, modelName string, extraOpts ...option.ClientOption) (*Generator, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, fmt.Errorf("gemini generator: API キーが設定されていません")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	opts := append([]option.ClientOption{option.WithAPIKey(apiKey)}, extraOpts...)
	client, err := newGeminiClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", llm.ErrGeneratorUnavailable, err)
	}

	resolvedModel := resolveModelName(modelName)
	model := client.GenerativeModel(resolvedModel)
	configured := configureModel(model)

	return &Generator{
		generator: configured,
		closeFn:   makeCloseFn(client),
		modelName: resolvedModel,
	}, nil
}

/**
 * 内部で保持している接続を後片付けする。
 * そもそも接続していない場合は何もせずに戻る。
 */
func (g *Generator) Close() error {
	if g == nil || g.closeFn == nil {
		return nil
	}
	return g.closeFn()
}

/**
 * プロンプトを Gemini に渡し、最初の応答テキストをそのまま返す。
 * 依頼が空だったり応答が壊れている場合は、理由を添えて失敗を知らせる。
 */
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", llm.ErrEmptyResponse
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if g.generator == nil {
		return "", fmt.Errorf("%w: gemini generator: 生成器が初期化されていません", llm.ErrGeneratorUnavailable)
	}

	resp, err := g.generator.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("%w: %v", llm.ErrGeneratorUnavailable, err)
	}

	return extractFirstText(resp)
}

/**
 * モデル名の指定が空だった場合、既定の名前へ置き換える。
 */
func resolveModelName(name string) string {
	if strings.TrimSpace(name) == "" {
		return defaultModelName
	}
	return name
}

/**
 * Gemini の応答候補から先頭の文章を取り出す。
 * 何も得られない場合は空応答として扱う。
 */
func extractFirstText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", llm.ErrEmptyResponse
	}
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil {
				continue
			}
			if text, ok := part.(genai.Text); ok {
				trimmed := strings.TrimSpace(string(text))
				if trimmed != "" {
					return trimmed, nil
				}
			}
		}
	}
	return "", llm.ErrEmptyResponse
}

/**
 * 候補数・文字数上限・温度などの設定を行い、生成器として扱えるようにする。
 */
func configureModel(model *genai.GenerativeModel) contentGenerator {
	if model == nil {
		return nil
	}
	model.SetCandidateCount(1)
	model.SetMaxOutputTokens(2048)
	model.SetTemperature(0.4)
	return model
}

/**
 * クライアントが存在する場合だけ後片付け用の関数を返す。
 * 無い場合は nil を返し、余計な Close を避ける。
 */
func makeCloseFn(client *genai.Client) func() error {
	if client == nil {
		return nil
	}
	return client.Close
}
