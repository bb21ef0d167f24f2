package generate

import (
	"context"
	"errors"
	"log"

	"backend/internal/domain/content"
	"backend/internal/domain/extract"
	"backend/internal/domain/platform"
	"backend/internal/domain/transcript"
	"backend/internal/domain/validation"
	"backend/internal/port/llm"
)

var (
	// ErrNilInput はユースケースに nil 入力が渡された際に返される。
	ErrNilInput = errors.New("generate: input is nil")
)

// コンテンツ生成の入力値
type Input struct {
	Transcript *transcript.Transcript
	Platform   string
	Options    Options
}

// コンテンツ生成後に呼び出し側へ返す値
type Output struct {
	Content *content.Content
	Result  validation.Result
}

/**
 * コンテンツ生成のユースケース
 * generator: テキスト生成器（OpenAI / Gemini）
 * 生成器の失敗は文字起こしベースのフォールバックで吸収するため、
 * 失敗として返るのは入力不備と未知プラットフォームだけ。
 */
type Usecase struct {
	generator llm.Generator
}

/**
 * ユースケース毎に初期化
 */
func NewUsecase(generator llm.Generator) *Usecase {
	return &Usecase{generator: generator}
}

/**
 * コンテンツ生成の実行
 * プロンプト → 生成器 → 抽出 → 組み立て → 検証・採点の順で流す。
 */
func (u *Usecase) Execute(ctx context.Context, in *Input) (*Output, error) {
	if in == nil || in.Transcript == nil {
		return nil, ErrNilInput
	}

	p, err := platform.Parse(in.Platform)
	if err != nil {
		return nil, err
	}
	rules, err := platform.RulesFor(p)
	if err != nil {
		return nil, err
	}

	c := u.generateContent(ctx, in, p, rules)

	result := validation.Evaluate(c, rules)
	validation.Apply(c, result)

	return &Output{Content: c, Result: result}, nil
}

/**
 * 生成器が使えない・失敗した場合は文字起こしベースの代替に切り替える。
 */
func (u *Usecase) generateContent(ctx context.Context, in *Input, p platform.Platform, rules platform.Rules) *content.Content {
	if u.generator == nil {
		return content.Fallback(p, rules, in.Transcript)
	}

	prompt := BuildPrompt(in.Transcript, rules, in.Options)
	raw, err := u.generator.Generate(ctx, prompt)
	if err != nil {
		log.Printf("[generate] generator failed platform=%s err=%v", p, err)
		return content.Fallback(p, rules, in.Transcript)
	}

	fields := extract.Extract(raw, rules)
	return content.Assemble(fields, p)
}
