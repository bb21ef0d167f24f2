package validation

import (
	"backend/internal/domain/content"
	"backend/internal/domain/platform"
)

// 深刻度ごとの減点幅。
const (
	deductionError   = 30.0
	deductionWarning = 15.0
	deductionInfo    = 8.0
)

// 各ディメンションの重み。合計 1.0。
const (
	weightCharacterLimits      = 0.25
	weightTagOptimization      = 0.20
	weightContentCompleteness  = 0.20
	weightPlatformOptimization = 0.15
	weightEngagementPotential  = 0.10
	weightOptimalLengths       = 0.10
)

// 加点の条件と幅。
const (
	bonusTagSweetSpot     = 10.0
	bonusTitleUtilization = 5.0
	bonusPlatformFit      = 10.0

	bonusConfidenceHigh   = 15.0
	bonusConfidenceMedium = 10.0
	bonusConfidenceLow    = 5.0

	titleUtilizationLow  = 0.7
	titleUtilizationHigh = 0.9
)

/**
 * Score は Content を 0〜100 で採点する。6 つのディメンションを個別に
 * 採点して加重平均し、信頼度とプラットフォーム適合の加点を乗せる。
 * ERROR を含む場合でもスコアは算出される（無効 ≠ 0 点）。
 */
func Score(c *content.Content, rules platform.Rules, issues []Issue) float64 {
	limits := dimensionScore(issues, CategoryLimit)
	tags := dimensionScore(issues, CategoryTags)
	optimal := dimensionScore(issues, CategoryOptimal)
	platformFit := dimensionScore(issues, CategoryPlatform)
	engagement := dimensionScore(issues, CategoryEngagement)
	completeness := completenessScore(c, rules)

	if inTagSweetSpot(c.TagCount(), rules) {
		tags = clampScore(tags + bonusTagSweetSpot)
	}
	if inTitleSweetSpot(c, rules) {
		limits = clampScore(limits + bonusTitleUtilization)
	}
	if meetsPlatformBonus(c, rules) {
		platformFit = clampScore(platformFit + bonusPlatformFit)
	}
	engagement = clampScore(engagement + confidenceBonus(c.ConfidenceScore))

	score := limits*weightCharacterLimits +
		tags*weightTagOptimization +
		completeness*weightContentCompleteness +
		platformFit*weightPlatformOptimization +
		engagement*weightEngagementPotential +
		optimal*weightOptimalLengths

	return clampScore(score)
}

/**
 * Evaluate は検証と採点をまとめて実行し Result を返す。
 */
func Evaluate(c *content.Content, rules platform.Rules) Result {
	issues := Validate(c, rules)
	return Result{
		Platform: rules.Platform,
		IsValid:  IsValid(issues),
		Score:    Score(c, rules, issues),
		Issues:   issues,
	}
}

/**
 * Apply は検証結果を Content 側のフィールドへ反映する。
 */
func Apply(c *content.Content, result Result) {
	c.MeetsRequirements = result.IsValid

	notes := make([]string, 0, len(result.Issues))
	for _, issue := range result.Issues {
		notes = append(notes, string(issue.Severity)+": "+issue.Message)
	}
	c.ValidationNotes = notes
}

// 100 点から該当カテゴリの issue を深刻度に応じて減点する。
func dimensionScore(issues []Issue, category string) float64 {
	score := 100.0
	for _, issue := range issues {
		if issue.Category != category {
			continue
		}
		switch issue.Severity {
		case SeverityError:
			score -= deductionError
		case SeverityWarning:
			score -= deductionWarning
		case SeverityInfo:
			score -= deductionInfo
		}
	}
	return clampScore(score)
}

// 完全性は issue ではなく、対象フィールドのうち何割が埋まっているかで決める。
// 最低 50 点を保証し、全フィールドが埋まれば 100 点になる。
func completenessScore(c *content.Content, rules platform.Rules) float64 {
	relevant := rules.RelevantFields()
	if len(relevant) == 0 {
		return 100
	}

	populated := 0
	for _, field := range relevant {
		if field == platform.FieldTags {
			if c.TagCount() > 0 {
				populated++
			}
			continue
		}
		if c.FieldLength(field) > 0 {
			populated++
		}
	}
	return 50 + 50*float64(populated)/float64(len(relevant))
}

// タグ本数が「最小+レンジの 7 割」近辺に収まっているか。
// 許容ウィンドウの外（そもそも ERROR になる本数）には加点しない。
func inTagSweetSpot(count int, rules platform.Rules) bool {
	if count < rules.TagMinCount || count > rules.TagMaxCount {
		return false
	}
	ideal := rules.TagMinCount + int(0.7*float64(rules.TagMaxCount-rules.TagMinCount))
	return count >= ideal-2 && count <= ideal+2
}

// タイトルが上限の 70〜90% を使っていれば加点する。
func inTitleSweetSpot(c *content.Content, rules platform.Rules) bool {
	if rules.TitleMaxLength == 0 {
		return false
	}
	ratio := float64(c.FieldLength(platform.FieldTitle)) / float64(rules.TitleMaxLength)
	return ratio >= titleUtilizationLow && ratio <= titleUtilizationHigh
}

func confidenceBonus(confidence float64) float64 {
	switch {
	case confidence >= 0.9:
		return bonusConfidenceHigh
	case confidence >= 0.8:
		return bonusConfidenceMedium
	case confidence >= 0.7:
		return bonusConfidenceLow
	default:
		return 0
	}
}

// プラットフォームの勘所を押さえた投稿への加点条件。
func meetsPlatformBonus(c *content.Content, rules platform.Rules) bool {
	switch rules.Platform {
	case platform.Instagram:
		return c.TagCount() >= 15
	case platform.LinkedIn:
		return c.Headline != ""
	case platform.YouTube:
		return c.FieldLength(platform.FieldDescription) >= 100
	default:
		return false
	}
}

func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
