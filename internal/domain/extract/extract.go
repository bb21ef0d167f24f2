package extract

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"backend/internal/domain/platform"
)

// 抽出に使った戦略の名前。デバッグやログで参照する。
const (
	StrategyFencedJSON = "fenced_json"
	StrategyBareJSON   = "bare_json"
	StrategyRegex      = "regex"
	StrategyDefaults   = "defaults"
)

// 生成結果に confidence が含まれなかった場合の既定値。
const defaultConfidence = 0.7

/**
 * Fields は生成テキストから取り出したフィールド一式。
 * Extended はプラットフォームに存在するフィールドだけに絞られる。
 * TitleExtracted / TagsExtracted は既定値補完ではなく実際に
 * 抽出できたかどうかを表し、信頼度の算出に使う。
 */
type Fields struct {
	Title      string
	Tags       []string
	Confidence float64
	Extended   map[string]string

	TitleExtracted bool
	TagsExtracted  bool
	Strategy       string
}

type strategy struct {
	name string
	run  func(raw string, fieldNames []string) (map[string]any, bool)
}

// 上から順に試し、最初に成功した戦略の結果を使う。
var strategies = []strategy{
	{StrategyFencedJSON, parseFencedJSON},
	{StrategyBareJSON, parseBareJSON},
	{StrategyRegex, parseWithRegex},
}

var (
	fencedBlockPattern = regexp.MustCompile("(?s)```(?:json)?\\s*(\\{.*?\\})\\s*```")
	confidencePattern  = regexp.MustCompile(`"?confidence"?\s*:\s*([0-9.]+)`)
	tagListPattern     = regexp.MustCompile(`"?tags"?\s*:\s*\[([^\]]*)\]`)
)

/**
 * Extract は生成器の生テキストからフィールドを取り出す。決して失敗しない。
 * JSON フェンス → 裸の JSON → 正規表現の順で試し、どれにも掛からなかった
 * フィールドは安全な既定値（"<Platform> Post" / ["#content"]）で埋める。
 */
func Extract(raw string, rules platform.Rules) Fields {
	fields := Fields{
		Confidence: defaultConfidence,
		Extended:   make(map[string]string),
		Strategy:   StrategyDefaults,
	}

	fieldNames := rules.RelevantFields()
	for _, s := range strategies {
		payload, ok := s.run(raw, fieldNames)
		if !ok {
			continue
		}
		fields.Strategy = s.name
		populate(&fields, payload, fieldNames)
		break
	}

	if fields.Title == "" {
		fields.Title = rules.Platform.DisplayName() + " Post"
	}
	if len(fields.Tags) == 0 {
		fields.Tags = []string{DefaultTag}
	}
	return fields
}

func populate(fields *Fields, payload map[string]any, fieldNames []string) {
	if title := stringValue(payload[platform.FieldTitle]); title != "" {
		fields.Title = title
		fields.TitleExtracted = true
	}

	if inputs := tagInputs(payload[platform.FieldTags]); len(inputs) > 0 {
		fields.Tags = NormalizeTags(inputs)
		fields.TagsExtracted = true
	}

	if conf, ok := confidenceValue(payload["confidence"]); ok {
		fields.Confidence = clamp01(conf)
	}

	for _, name := range fieldNames {
		if name == platform.FieldTitle || name == platform.FieldTags {
			continue
		}
		if value := stringValue(payload[name]); value != "" {
			fields.Extended[name] = value
		}
	}
}

/**
 * ```json フェンスで囲まれた最初のブロックを厳密に JSON として読む。
 */
func parseFencedJSON(raw string, _ []string) (map[string]any, bool) {
	m := fencedBlockPattern.FindStringSubmatch(raw)
	if len(m) < 2 {
		return nil, false
	}
	var payload map[string]any
	if err := json.Unmarshal([]byte(m[1]), &payload); err != nil {
		return nil, false
	}
	return payload, true
}

/**
 * テキスト中のどこかにある最初の { から始まる JSON オブジェクトを読む。
 * 後続のゴミは無視する。
 */
func parseBareJSON(raw string, _ []string) (map[string]any, bool) {
	for offset := 0; offset < len(raw); {
		idx := strings.Index(raw[offset:], "{")
		if idx < 0 {
			return nil, false
		}
		start := offset + idx

		var payload map[string]any
		dec := json.NewDecoder(strings.NewReader(raw[start:]))
		if err := dec.Decode(&payload); err == nil {
			return payload, true
		}
		offset = start + 1
	}
	return nil, false
}

/**
 * JSON として読めない場合の最後のフォールバック。
 * フィールド毎に "name": "value" 形のトークンを探す。
 */
func parseWithRegex(raw string, fieldNames []string) (map[string]any, bool) {
	payload := make(map[string]any)

	for _, name := range fieldNames {
		if name == platform.FieldTags {
			continue
		}
		pattern := regexp.MustCompile(`"?` + regexp.QuoteMeta(name) + `"?\s*:\s*"([^"]*)"`)
		if m := pattern.FindStringSubmatch(raw); len(m) >= 2 && strings.TrimSpace(m[1]) != "" {
			payload[name] = strings.TrimSpace(m[1])
		}
	}

	if m := tagListPattern.FindStringSubmatch(raw); len(m) >= 2 {
		var tags []any
		for _, part := range strings.Split(m[1], ",") {
			part = strings.Trim(strings.TrimSpace(part), `"`)
			if part != "" {
				tags = append(tags, part)
			}
		}
		if len(tags) > 0 {
			payload[platform.FieldTags] = tags
		}
	}

	if m := confidencePattern.FindStringSubmatch(raw); len(m) >= 2 {
		if conf, err := strconv.ParseFloat(m[1], 64); err == nil {
			payload["confidence"] = conf
		}
	}

	if len(payload) == 0 {
		return nil, false
	}
	return payload, true
}

func stringValue(v any) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

// tags はリストでも 1 本の文字列でも受け付ける。
func tagInputs(v any) []string {
	switch value := v.(type) {
	case string:
		if strings.TrimSpace(value) == "" {
			return nil
		}
		return []string{value}
	case []any:
		var inputs []string
		for _, item := range value {
			if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
				inputs = append(inputs, s)
			}
		}
		return inputs
	}
	return nil
}

func confidenceValue(v any) (float64, bool) {
	switch value := v.(type) {
	case float64:
		return value, true
	case string:
		conf, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return 0, false
		}
		return conf, true
	}
	return 0, false
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
