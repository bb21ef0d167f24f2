package transcript

import (
	"errors"
	"strings"
	"unicode/utf8"
)

const (
	minContentLength = 10
	maxContentLength = 50000
)

var (
	// ErrContentTooShort は文字起こしが短すぎる場合に返される。
	ErrContentTooShort = errors.New("transcript: content too short")
	// ErrContentTooLong は文字起こしが長すぎる場合に返される。
	ErrContentTooLong = errors.New("transcript: content too long")
	// ErrInvalidLanguage は言語コードの形式が不正な場合に返される。
	ErrInvalidLanguage = errors.New("transcript: invalid language code")
)

// Transcript は生成の入力となる動画の文字起こし。
type Transcript struct {
	content         string
	title           string
	durationSeconds int
	language        string
	category        string
}

// New creates a Transcript after validating content length and language code.
// The language defaults to "en" when empty; "en" and "en-US" style codes are
// accepted.
func New(content, title string, durationSeconds int, language, category string) (*Transcript, error) {
	content = strings.TrimSpace(content)
	if utf8.RuneCountInString(content) < minContentLength {
		return nil, ErrContentTooShort
	}
	if utf8.RuneCountInString(content) > maxContentLength {
		return nil, ErrContentTooLong
	}

	language = strings.ToLower(strings.TrimSpace(language))
	if language == "" {
		language = "en"
	}
	if len(language) != 2 && len(language) != 5 {
		return nil, ErrInvalidLanguage
	}

	return &Transcript{
		content:         content,
		title:           strings.TrimSpace(title),
		durationSeconds: durationSeconds,
		language:        language,
		category:        strings.TrimSpace(category),
	}, nil
}

// Content は文字起こし本文を返す。
func (t *Transcript) Content() string {
	return t.content
}

// Title は元動画のタイトルを返す。無い場合は空文字。
func (t *Transcript) Title() string {
	return t.title
}

// DurationSeconds は動画の長さ（秒）を返す。不明なら 0。
func (t *Transcript) DurationSeconds() int {
	return t.durationSeconds
}

// Language は ISO 639-1 形式の言語コードを返す。
func (t *Transcript) Language() string {
	return t.language
}

// Category は動画カテゴリを返す。無い場合は空文字。
func (t *Transcript) Category() string {
	return t.category
}
