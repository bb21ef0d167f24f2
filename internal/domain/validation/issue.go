package validation

import "backend/internal/domain/platform"

// Severity は検証結果の深刻度。ERROR のみが is_valid を落とす。
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// フィールド名に紐づかない横断的な issue のタグ。
const (
	FieldTone         = "tone"
	FieldTiming       = "timing"
	FieldVisualAppeal = "visual_appeal"
	FieldTotalContent = "total_content"
)

// 採点時に issue を減点先ディメンションへ振り分けるための分類。
const (
	CategoryLimit      = "limit"
	CategoryOptimal    = "optimal"
	CategoryTags       = "tags"
	CategoryEngagement = "engagement"
	CategoryPlatform   = "platform"
)

/**
 * Issue は検証で見つかった指摘 1 件。例外ではなくデータとして扱い、
 * 呼び出し側へそのまま返す。
 */
type Issue struct {
	Field         string   `json:"field"`
	Severity      Severity `json:"severity"`
	Message       string   `json:"message"`
	Suggestion    string   `json:"suggestion,omitempty"`
	CurrentValue  string   `json:"current_value,omitempty"`
	ExpectedValue string   `json:"expected_value,omitempty"`
	Category      string   `json:"category,omitempty"`
}

// Result は検証と採点をまとめた最終結果。
type Result struct {
	Platform platform.Platform `json:"platform"`
	IsValid  bool              `json:"is_valid"`
	Score    float64           `json:"score"`
	Issues   []Issue           `json:"issues"`
}

// IsValid は ERROR が 1 件も無いかどうかを返す。
func IsValid(issues []Issue) bool {
	for _, issue := range issues {
		if issue.Severity == SeverityError {
			return false
		}
	}
	return true
}
