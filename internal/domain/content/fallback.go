package content

import (
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"backend/internal/domain/extract"
	"backend/internal/domain/platform"
	"backend/internal/domain/transcript"
)

// タグが足りない時に補充する汎用タグ。
var genericTags = []string{extract.DefaultTag, "#video", "#social", "#media", "#digital"}

var stopwords = map[string]struct{}{
	"the": {}, "and": {}, "that": {}, "with": {}, "this": {},
	"for": {}, "from": {}, "have": {}, "your": {}, "about": {},
	"what": {}, "will": {}, "they": {}, "there": {}, "when": {},
}

/**
 * Fallback は生成器の呼び出しが失敗した際の代替 Content を組み立てる。
 * 文字起こしから機械的にタイトルとタグを作り、信頼度は 0.3 に固定する。
 * tr が nil でもルールに適合する最小限の投稿を返す。
 */
func Fallback(p platform.Platform, rules platform.Rules, tr *transcript.Transcript) *Content {
	title := p.DisplayName() + " Post"
	if tr != nil && tr.Title() != "" {
		title = tr.Title()
	}
	title = truncateAtWord(title, rules.TitleMaxLength)

	var tags []string
	if tr != nil {
		tags = keywordTags(tr.Content(), rules.TagMaxCount)
	}
	tags = padTags(tags, rules.TagMinCount, rules.TagMaxCount)

	return &Content{
		Platform:        p,
		Title:           title,
		Tags:            tags,
		ConfidenceScore: confidenceFallback,
		GeneratedAt:     time.Now().UTC(),
	}
}

// 長すぎるタイトルは語の区切りで切り詰めて "..." を付ける。
func truncateAtWord(title string, max int) string {
	if max <= 0 || utf8.RuneCountInString(title) <= max {
		return title
	}

	budget := max - 3
	var b strings.Builder
	for _, word := range strings.Fields(title) {
		candidate := word
		if b.Len() > 0 {
			candidate = " " + word
		}
		if utf8.RuneCountInString(b.String())+utf8.RuneCountInString(candidate) > budget {
			break
		}
		b.WriteString(candidate)
	}
	if b.Len() == 0 {
		runes := []rune(title)
		return string(runes[:budget]) + "..."
	}
	return b.String() + "..."
}

// 文字起こしから出現順にキーワードを拾ってタグ化する。
func keywordTags(text string, max int) []string {
	seen := make(map[string]struct{})
	var tags []string

	for _, word := range strings.Fields(strings.ToLower(text)) {
		word = strings.Trim(word, ".,!?:;\"'()")
		if len(word) <= 3 {
			continue
		}
		if _, stop := stopwords[word]; stop {
			continue
		}
		if _, dup := seen[word]; dup {
			continue
		}
		seen[word] = struct{}{}
		tags = append(tags, "#"+word)
		if len(tags) >= max {
			break
		}
	}
	return extract.NormalizeTags(tags)
}

// 最小本数まで汎用タグで埋め、最大本数で切る。
func padTags(tags []string, min, max int) []string {
	have := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		have[tag] = struct{}{}
	}

	for _, generic := range genericTags {
		if len(tags) >= min {
			break
		}
		if _, ok := have[generic]; ok {
			continue
		}
		tags = append(tags, generic)
		have[generic] = struct{}{}
	}
	// 汎用タグでも足りない場合は連番で満たす
	for i := 1; len(tags) < min; i++ {
		tag := "#tag" + strconv.Itoa(i)
		if _, ok := have[tag]; ok {
			continue
		}
		tags = append(tags, tag)
		have[tag] = struct{}{}
	}

	if len(tags) > max {
		tags = tags[:max]
	}
	return tags
}
