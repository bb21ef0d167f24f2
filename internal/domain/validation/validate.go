package validation

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"backend/internal/domain/content"
	"backend/internal/domain/platform"
)

// ハードリミットの 9 割を超えたら「上限間近」の警告を出す。
const nearLimitRatio = 0.9

// 主文がこれより短いと内容が薄いと判断する。
const minSubstantialLength = 50

/**
 * Validate は Content をプラットフォームルールに照らして検査し、
 * 見つかった指摘を順序付きで返す。純粋関数で、入力を書き換えない。
 * すべての検査は独立しており、前段の失敗に関わらず全件実行される。
 */
func Validate(c *content.Content, rules platform.Rules) []Issue {
	var issues []Issue

	issues = append(issues, checkHardLimits(c, rules)...)
	issues = append(issues, checkTagCount(c, rules)...)
	issues = append(issues, checkTotalBudget(c, rules)...)
	issues = append(issues, checkOptimalLengths(c, rules)...)
	issues = append(issues, checkHeuristics(c, rules)...)

	return issues
}

/**
 * タイトルと、上限が設定されている各拡張フィールドの文字数を検査する。
 * 超過は ERROR、上限の 9 割超は WARNING。両方は出さない。
 */
func checkHardLimits(c *content.Content, rules platform.Rules) []Issue {
	checks := []platform.FieldLimit{{Field: platform.FieldTitle, Max: rules.TitleMaxLength}}
	checks = append(checks, rules.FieldLimits()...)

	var issues []Issue
	for _, limit := range checks {
		length := c.FieldLength(limit.Field)
		if limit.Field != platform.FieldTitle && length == 0 {
			continue
		}

		switch {
		case length > limit.Max:
			issues = append(issues, Issue{
				Field:         limit.Field,
				Severity:      SeverityError,
				Message:       fmt.Sprintf("%s exceeds maximum length", limit.Field),
				Suggestion:    fmt.Sprintf("Reduce %s to %d characters or less", limit.Field, limit.Max),
				CurrentValue:  strconv.Itoa(length),
				ExpectedValue: strconv.Itoa(limit.Max),
				Category:      CategoryLimit,
			})
		case float64(length) > float64(limit.Max)*nearLimitRatio:
			issues = append(issues, Issue{
				Field:         limit.Field,
				Severity:      SeverityWarning,
				Message:       fmt.Sprintf("%s is very close to the character limit", limit.Field),
				Suggestion:    "Consider shortening for safer display",
				CurrentValue:  strconv.Itoa(length),
				ExpectedValue: strconv.Itoa(limit.Max),
				Category:      CategoryLimit,
			})
		}
	}
	return issues
}

func checkTagCount(c *content.Content, rules platform.Rules) []Issue {
	count := c.TagCount()
	window := fmt.Sprintf("%d-%d", rules.TagMinCount, rules.TagMaxCount)

	switch {
	case count < rules.TagMinCount:
		return []Issue{{
			Field:         platform.FieldTags,
			Severity:      SeverityError,
			Message:       "Too few tags",
			Suggestion:    fmt.Sprintf("Add %d more relevant tags", rules.TagMinCount-count),
			CurrentValue:  strconv.Itoa(count),
			ExpectedValue: window,
			Category:      CategoryTags,
		}}
	case count > rules.TagMaxCount:
		return []Issue{{
			Field:         platform.FieldTags,
			Severity:      SeverityError,
			Message:       "Too many tags",
			Suggestion:    fmt.Sprintf("Remove %d tags", count-rules.TagMaxCount),
			CurrentValue:  strconv.Itoa(count),
			ExpectedValue: window,
			Category:      CategoryTags,
		}}
	}
	return nil
}

/**
 * X (Twitter) だけは本文とハッシュタグを合わせた総文字数が上限に収まる
 * 必要がある。タグ 1 本につき区切りのスペース 1 文字を加算する。
 */
func checkTotalBudget(c *content.Content, rules platform.Rules) []Issue {
	if rules.Platform != platform.XTwitter || rules.PostMaxLength == 0 {
		return nil
	}

	total := utf8.RuneCountInString(c.PrimaryText())
	for _, tag := range c.Tags {
		total += utf8.RuneCountInString(tag) + 1
	}

	if total <= rules.PostMaxLength {
		return nil
	}
	return []Issue{{
		Field:         FieldTotalContent,
		Severity:      SeverityError,
		Message:       "Total content (text + hashtags) exceeds character limit",
		Suggestion:    "Reduce text length or number of hashtags",
		CurrentValue:  strconv.Itoa(total),
		ExpectedValue: strconv.Itoa(rules.PostMaxLength),
		Category:      CategoryLimit,
	}}
}

// 推奨文字数の助言。プラットフォーム毎の切り詰め挙動を文言に含める。
type optimalAdvisory struct {
	field      string
	severity   Severity
	message    string
	suggestion string
}

var optimalAdvisories = map[platform.Platform][]optimalAdvisory{
	platform.YouTube: {
		{platform.FieldTitle, SeverityWarning,
			"Title is truncated after %d chars in search results",
			"Front-load the key message within the optimal length"},
		{platform.FieldDescription, SeverityInfo,
			"Only the first %d chars of the description show in previews",
			"Put the hook and main keywords at the start"},
	},
	platform.Instagram: {
		{platform.FieldCaption, SeverityInfo,
			"Caption folds behind the 'more' button after %d chars",
			"Lead with the most engaging line"},
	},
	platform.Facebook: {
		{platform.FieldPostBody, SeverityInfo,
			"Posts around %d chars see higher engagement in the feed",
			"Consider a shorter, punchier post"},
	},
	platform.XTwitter: {
		{platform.FieldPostBody, SeverityInfo,
			"Posts under %d chars see noticeably higher engagement",
			"Tighten the wording"},
	},
	platform.LinkedIn: {
		{platform.FieldPostBody, SeverityWarning,
			"Posts are folded at roughly %d chars behind 'See more'",
			"Make the opening lines carry the message"},
	},
}

// 推奨値超過の助言を出す。ERROR には決してしない。
func checkOptimalLengths(c *content.Content, rules platform.Rules) []Issue {
	var issues []Issue
	for _, advisory := range optimalAdvisories[rules.Platform] {
		optimal := rules.OptimalLengthFor(advisory.field)
		if optimal == 0 {
			continue
		}
		length := c.FieldLength(advisory.field)
		if length == 0 || length <= optimal {
			continue
		}
		issues = append(issues, Issue{
			Field:         advisory.field,
			Severity:      advisory.severity,
			Message:       fmt.Sprintf(advisory.message, optimal),
			Suggestion:    advisory.suggestion,
			CurrentValue:  strconv.Itoa(length),
			ExpectedValue: strconv.Itoa(optimal),
			Category:      CategoryOptimal,
		})
	}
	return issues
}

// プラットフォーム固有のヒューリスティック。1 関数 1 検査で、
// 問題なしの場合は nil を返す。
type heuristic func(c *content.Content, rules platform.Rules) *Issue

var platformHeuristics = map[platform.Platform][]heuristic{
	platform.YouTube:   {checkTitleKeywords, checkDescriptionSEO},
	platform.Instagram: {checkEmojiPresence, checkHashtagVolume},
	platform.Facebook:  {checkInteractionPrompt},
	platform.TikTok:    {checkTrendTags},
	platform.XTwitter:  {checkTimeliness},
	platform.LinkedIn:  {checkProfessionalTone, checkHeadlineFormat},
	platform.Twitch:    {checkCategoryAlignment},
}

func checkHeuristics(c *content.Content, rules platform.Rules) []Issue {
	var issues []Issue
	if issue := checkSubstantiality(c, rules); issue != nil {
		issues = append(issues, *issue)
	}
	for _, check := range platformHeuristics[rules.Platform] {
		if issue := check(c, rules); issue != nil {
			issues = append(issues, *issue)
		}
	}
	return issues
}

// プラットフォーム毎の主文フィールド。
var primaryContentField = map[platform.Platform]string{
	platform.YouTube:   platform.FieldDescription,
	platform.Instagram: platform.FieldCaption,
	platform.Facebook:  platform.FieldPostBody,
	platform.TikTok:    platform.FieldCaption,
	platform.XTwitter:  platform.FieldPostBody,
	platform.LinkedIn:  platform.FieldPostBody,
	platform.Twitch:    platform.FieldTitle,
}

// 主文があるのに短すぎる場合は内容不足とみなす。
func checkSubstantiality(c *content.Content, rules platform.Rules) *Issue {
	field := primaryContentField[rules.Platform]
	length := c.FieldLength(field)
	if length == 0 || length >= minSubstantialLength {
		return nil
	}
	return &Issue{
		Field:         field,
		Severity:      SeverityWarning,
		Message:       fmt.Sprintf("%s is too short to be informative", field),
		Suggestion:    fmt.Sprintf("Write at least %d characters of substantive content", minSubstantialLength),
		CurrentValue:  strconv.Itoa(length),
		ExpectedValue: fmt.Sprintf("%d+", minSubstantialLength),
		Category:      CategoryPlatform,
	}
}

var casualWords = []string{"hey", "guys", "lol", "omg", "awesome", "epic"}

// LinkedIn 向け。くだけた言い回しが混ざっていないかを見る。
func checkProfessionalTone(c *content.Content, _ platform.Rules) *Issue {
	text := strings.ToLower(c.Title + " " + c.PostBody + " " + c.Headline)

	var found []string
	for _, word := range casualWords {
		if containsWord(text, word) {
			found = append(found, word)
		}
	}
	if len(found) == 0 {
		return nil
	}
	return &Issue{
		Field:        FieldTone,
		Severity:     SeverityWarning,
		Message:      "Content may be too casual for a professional audience",
		Suggestion:   "Use more professional language",
		CurrentValue: strings.Join(found, ", "),
		Category:     CategoryEngagement,
	}
}

func checkHeadlineFormat(c *content.Content, _ platform.Rules) *Issue {
	if c.Headline == "" || strings.ContainsAny(c.Headline, "|-•") {
		return nil
	}
	return &Issue{
		Field:      platform.FieldHeadline,
		Severity:   SeverityInfo,
		Message:    "Headline lacks a conventional separator",
		Suggestion: "Structure the headline like 'Role | Specialty'",
		Category:   CategoryPlatform,
	}
}

var trendTags = []string{"#fyp", "#viral", "#trending"}

func checkTrendTags(c *content.Content, _ platform.Rules) *Issue {
	for _, tag := range c.Tags {
		for _, trend := range trendTags {
			if strings.EqualFold(tag, trend) {
				return nil
			}
		}
	}
	return &Issue{
		Field:      platform.FieldTags,
		Severity:   SeverityInfo,
		Message:    "No trending hashtags present",
		Suggestion: "Add #fyp, #viral or #trending for better reach",
		Category:   CategoryTags,
	}
}

// Instagram でリーチが伸びやすいタグ本数の目安。ハード下限とは別物。
const betterReachTagCount = 25

func checkHashtagVolume(c *content.Content, rules platform.Rules) *Issue {
	if c.TagCount() >= betterReachTagCount || c.TagCount() < rules.TagMinCount {
		return nil
	}
	return &Issue{
		Field:         platform.FieldTags,
		Severity:      SeverityInfo,
		Message:       "Hashtag count is below the better-reach range",
		Suggestion:    fmt.Sprintf("Use %d or more hashtags for wider reach", betterReachTagCount),
		CurrentValue:  strconv.Itoa(c.TagCount()),
		ExpectedValue: fmt.Sprintf("%d+", betterReachTagCount),
		Category:      CategoryTags,
	}
}

func checkEmojiPresence(c *content.Content, _ platform.Rules) *Issue {
	text := c.Caption
	if text == "" {
		text = c.Title
	}
	if containsEmoji(text) {
		return nil
	}
	return &Issue{
		Field:      FieldVisualAppeal,
		Severity:   SeverityInfo,
		Message:    "No emojis found in the caption",
		Suggestion: "Add relevant emojis to increase visual appeal",
		Category:   CategoryEngagement,
	}
}

func checkTitleKeywords(c *content.Content, _ platform.Rules) *Issue {
	if len(strings.Fields(c.Title)) >= 3 {
		return nil
	}
	return &Issue{
		Field:      platform.FieldTitle,
		Severity:   SeverityInfo,
		Message:    "Title has few searchable keywords",
		Suggestion: "Use a more descriptive, keyword-rich title",
		Category:   CategoryPlatform,
	}
}

// 検索経由の流入を考えると説明文は必須級。短い・無いは警告。
func checkDescriptionSEO(c *content.Content, _ platform.Rules) *Issue {
	if c.FieldLength(platform.FieldDescription) >= minSubstantialLength {
		return nil
	}
	if c.Description != "" {
		// 短すぎる場合は substantiality 検査が既に警告している
		return nil
	}
	return &Issue{
		Field:      platform.FieldDescription,
		Severity:   SeverityWarning,
		Message:    "Description is missing",
		Suggestion: "Add a keyword-rich description for search discoverability",
		Category:   CategoryPlatform,
	}
}

var interactionPhrases = []string{"what do you think", "share your", "let us know", "tell us", "do you"}

func checkInteractionPrompt(c *content.Content, _ platform.Rules) *Issue {
	text := strings.ToLower(c.PrimaryText())
	if strings.Contains(text, "?") {
		return nil
	}
	for _, phrase := range interactionPhrases {
		if strings.Contains(text, phrase) {
			return nil
		}
	}
	return &Issue{
		Field:      platform.FieldPostBody,
		Severity:   SeverityInfo,
		Message:    "Post does not invite interaction",
		Suggestion: "Ask a question or invite readers to share their view",
		Category:   CategoryEngagement,
	}
}

var urgencyWords = []string{"today", "now", "breaking", "just", "live", "new"}

func checkTimeliness(c *content.Content, _ platform.Rules) *Issue {
	text := strings.ToLower(c.PrimaryText())
	for _, word := range urgencyWords {
		if containsWord(text, word) {
			return nil
		}
	}
	return &Issue{
		Field:      FieldTiming,
		Severity:   SeverityInfo,
		Message:    "Post lacks timely or urgent language",
		Suggestion: "Tie the post to something happening now",
		Category:   CategoryEngagement,
	}
}

// 配信カテゴリとタイトルが全く噛み合っていない場合に警告する。
func checkCategoryAlignment(c *content.Content, _ platform.Rules) *Issue {
	if c.StreamCategory == "" {
		return nil
	}

	titleTokens := make(map[string]struct{})
	for _, token := range strings.Fields(strings.ToLower(c.Title)) {
		titleTokens[strings.Trim(token, ".,!?:;")] = struct{}{}
	}
	for _, token := range strings.Fields(strings.ToLower(c.StreamCategory)) {
		if _, ok := titleTokens[token]; ok {
			return nil
		}
	}
	return &Issue{
		Field:        platform.FieldStreamCategory,
		Severity:     SeverityWarning,
		Message:      "Stream category shares no words with the title",
		Suggestion:   "Align the title with the selected category",
		CurrentValue: c.StreamCategory,
		Category:     CategoryPlatform,
	}
}

// 単語境界を意識した包含判定。"nowhere" に "now" を誤検出しない。
func containsWord(text, word string) bool {
	for _, token := range strings.FieldsFunc(text, func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9')
	}) {
		if token == word {
			return true
		}
	}
	return false
}

func containsEmoji(text string) bool {
	for _, r := range text {
		if (r >= 0x1F300 && r <= 0x1FAFF) ||
			(r >= 0x2600 && r <= 0x27BF) ||
			(r >= 0x1F000 && r <= 0x1F2FF) ||
			r == 0x2B50 || r == 0x2728 {
			return true
		}
	}
	return false
}
