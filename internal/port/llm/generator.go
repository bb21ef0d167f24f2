package llm

import (
	"context"
	"errors"
)

var (
	ErrGeneratorUnavailable = errors.New("llm: 生成サービスに接続できません")
	ErrEmptyResponse        = errors.New("llm: 応答からテキストを取得できませんでした")
)

/**
 * テキスト生成器の契約
 * Generate: プロンプトを渡し、モデルの生テキスト応答をそのまま返す
 * 応答の解釈（JSON 抽出など）は呼び出し側の責務とし、ここでは行わない
 */
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
