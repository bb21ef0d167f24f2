package validate

import (
	"context"
	"errors"

	"backend/internal/domain/content"
	"backend/internal/domain/platform"
	"backend/internal/domain/validation"
)

var (
	// ErrNilInput はユースケースに nil 入力が渡された際に返される。
	ErrNilInput = errors.New("validate: input is nil")
)

// 検証の入力値
type Input struct {
	Content *content.Content
}

// 検証後に呼び出し側へ返す値
type Output struct {
	Result validation.Result
}

/**
 * 既存コンテンツ検証のユースケース
 * 生成を介さず、持ち込まれた投稿をルールに照らして検証・採点する。
 */
type Usecase struct{}

/**
 * ユースケース毎に初期化
 */
func NewUsecase() *Usecase {
	return &Usecase{}
}

/**
 * 検証の実行
 */
func (u *Usecase) Execute(_ context.Context, in *Input) (*Output, error) {
	if in == nil || in.Content == nil {
		return nil, ErrNilInput
	}

	rules, err := platform.RulesFor(in.Content.Platform)
	if err != nil {
		return nil, err
	}

	result := validation.Evaluate(in.Content, rules)
	validation.Apply(in.Content, result)

	return &Output{Result: result}, nil
}
