package generate

import (
	"fmt"
	"strings"

	"backend/internal/domain/platform"
	"backend/internal/domain/transcript"
)

// Options は生成時の文体指定。ゼロ値でも動く。
type Options struct {
	Tone              string
	IncludeEmojis     bool
	TargetAudience    string
	ExtraInstructions string
}

const defaultTone = "neutral"

/**
 * BuildPrompt は文字起こしとプラットフォームルールから生成器へ渡す
 * プロンプトを組み立てる。応答は JSON で返すよう契約を明記し、
 * 抽出側がフィールド名で拾えるようにする。
 */
func BuildPrompt(tr *transcript.Transcript, rules platform.Rules, opts Options) string {
	var b strings.Builder

	p := rules.Platform
	fmt.Fprintf(&b, "You are a %s content optimization expert.\n", p.DisplayName())
	fmt.Fprintf(&b, "Content style: %s.\n\n", rules.ContentStyle)

	fmt.Fprintf(&b, "Create %s-optimized content for this video transcript.\n\n", p.DisplayName())
	fmt.Fprintf(&b, "TRANSCRIPT: %q\n", tr.Content())
	fmt.Fprintf(&b, "ORIGINAL TITLE: %s\n", orDefault(tr.Title(), "Not provided"))
	fmt.Fprintf(&b, "CATEGORY: %s\n", orDefault(tr.Category(), "General"))
	fmt.Fprintf(&b, "TONE: %s\n", orDefault(opts.Tone, defaultTone))
	fmt.Fprintf(&b, "EMOJIS: %s\n", emojiInstruction(opts.IncludeEmojis))
	if opts.TargetAudience != "" {
		fmt.Fprintf(&b, "TARGET AUDIENCE: %s\n", opts.TargetAudience)
	}

	b.WriteString("\nRequirements:\n")
	fmt.Fprintf(&b, "- title: maximum %d characters\n", rules.TitleMaxLength)
	fmt.Fprintf(&b, "- tags: exactly %d-%d hashtags\n", rules.TagMinCount, rules.TagMaxCount)
	for _, limit := range rules.FieldLimits() {
		if limit.Field == platform.FieldComments {
			continue
		}
		fmt.Fprintf(&b, "- %s: maximum %d characters\n", limit.Field, limit.Max)
	}
	for _, guideline := range rules.StyleGuidelines {
		fmt.Fprintf(&b, "- %s\n", guideline)
	}
	for _, requirement := range rules.SpecialRequirements {
		fmt.Fprintf(&b, "- %s\n", requirement)
	}
	if opts.ExtraInstructions != "" {
		fmt.Fprintf(&b, "- %s\n", opts.ExtraInstructions)
	}

	b.WriteString("\nRespond with JSON only:\n")
	b.WriteString(responseContract(rules))

	return b.String()
}

// 応答 JSON の雛形。プラットフォームに存在するフィールドだけを載せる。
func responseContract(rules platform.Rules) string {
	var b strings.Builder
	b.WriteString("{\n")
	b.WriteString(`    "title": "your optimized title",` + "\n")
	b.WriteString(`    "tags": ["#tag1", "#tag2"],` + "\n")
	for _, field := range rules.RelevantFields() {
		if field == platform.FieldTitle || field == platform.FieldTags {
			continue
		}
		fmt.Fprintf(&b, "    %q: \"...\",\n", field)
	}
	b.WriteString(`    "confidence": 0.9` + "\n")
	b.WriteString("}")
	return b.String()
}

func emojiInstruction(include bool) string {
	if include {
		return "Include 1-2 relevant emojis"
	}
	return "No emojis"
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
