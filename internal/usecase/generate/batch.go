package generate

import (
	"context"
	"errors"
	"sync"
	"time"

	"backend/internal/domain/transcript"

	"github.com/oklog/ulid/v2"
)

var (
	// ErrNoPlatforms はプラットフォーム指定が空の際に返される。
	ErrNoPlatforms = errors.New("generate: no platforms requested")
)

// 一括生成の入力値
type BatchInput struct {
	Transcript *transcript.Transcript
	Platforms  []string
	Options    Options
}

// 一括生成のプラットフォーム別結果。失敗した場合は Error に理由が入る。
type BatchItem struct {
	Platform string
	Output   *Output
	Error    string
}

// 一括生成後に呼び出し側へ返す値
type BatchOutput struct {
	RequestID      string
	Items          []BatchItem
	SuccessCount   int
	ErrorCount     int
	ProcessingTime time.Duration
}

/**
 * 一括生成のユースケース
 * 単体生成のユースケースをプラットフォーム毎に並行実行する。
 */
type BatchUsecase struct {
	usecase *Usecase
}

/**
 * ユースケース毎に初期化
 */
func NewBatchUsecase(usecase *Usecase) *BatchUsecase {
	return &BatchUsecase{usecase: usecase}
}

/**
 * 一括生成の実行
 * 重複指定は除去した上で、プラットフォーム毎に goroutine で生成する。
 * 1 プラットフォームの失敗は他に波及させず、結果に理由を残す。
 */
func (u *BatchUsecase) Execute(ctx context.Context, in *BatchInput) (*BatchOutput, error) {
	if in == nil || in.Transcript == nil {
		return nil, ErrNilInput
	}

	platforms := dedupe(in.Platforms)
	if len(platforms) == 0 {
		return nil, ErrNoPlatforms
	}

	start := time.Now()
	items := make([]BatchItem, len(platforms))

	var wg sync.WaitGroup
	for i, name := range platforms {
		wg.Add(1)
		go func(slot int, platformName string) {
			defer wg.Done()

			out, err := u.usecase.Execute(ctx, &Input{
				Transcript: in.Transcript,
				Platform:   platformName,
				Options:    in.Options,
			})
			item := BatchItem{Platform: platformName, Output: out}
			if err != nil {
				item.Error = err.Error()
			}
			items[slot] = item
		}(i, name)
	}
	wg.Wait()

	out := &BatchOutput{
		RequestID:      ulid.Make().String(),
		Items:          items,
		ProcessingTime: time.Since(start),
	}
	for _, item := range items {
		if item.Error == "" {
			out.SuccessCount++
		} else {
			out.ErrorCount++
		}
	}
	return out, nil
}

// 指定順を保ったまま重複を取り除く。
func dedupe(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	var unique []string
	for _, name := range names {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		unique = append(unique, name)
	}
	return unique
}
