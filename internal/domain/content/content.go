package content

import (
	"time"
	"unicode/utf8"

	"backend/internal/domain/platform"
)

/**
 * Content は 1 プラットフォーム向けに生成された投稿一式。
 * 拡張フィールドは未設定なら空文字のままにし、空文字のプレースホルダーを
 * 出力しないよう omitempty を付ける。
 * MeetsRequirements / ValidationNotes は直近の検証結果の写しで、
 * 正式な判定は validation.Result が持つ。
 */
type Content struct {
	Platform platform.Platform `json:"platform"`
	Title    string            `json:"title"`
	Tags     []string          `json:"tags"`

	Description       string `json:"description,omitempty"`
	Caption           string `json:"caption,omitempty"`
	PostBody          string `json:"post_body,omitempty"`
	Bio               string `json:"bio,omitempty"`
	Username          string `json:"username,omitempty"`
	ProfileName       string `json:"profile_name,omitempty"`
	Headline          string `json:"headline,omitempty"`
	AboutSection      string `json:"about_section,omitempty"`
	ConnectionMessage string `json:"connection_message,omitempty"`
	StreamCategory    string `json:"stream_category,omitempty"`

	ConfidenceScore   float64   `json:"confidence_score"`
	GeneratedAt       time.Time `json:"generated_at"`
	MeetsRequirements bool      `json:"meets_requirements"`
	ValidationNotes   []string  `json:"validation_notes,omitempty"`
}

// CharacterCount はタイトルの文字数（ルーン数）を返す。
func (c *Content) CharacterCount() int {
	return utf8.RuneCountInString(c.Title)
}

// TagCount はタグの本数を返す。
func (c *Content) TagCount() int {
	return len(c.Tags)
}

// FieldLength は指定フィールドの文字数を返す。未設定なら 0。
func (c *Content) FieldLength(field string) int {
	return utf8.RuneCountInString(c.FieldValue(field))
}

// FieldValue はフィールド名から値を引く。comments は生成対象外なので常に空。
func (c *Content) FieldValue(field string) string {
	switch field {
	case platform.FieldTitle:
		return c.Title
	case platform.FieldDescription:
		return c.Description
	case platform.FieldCaption:
		return c.Caption
	case platform.FieldPostBody:
		return c.PostBody
	case platform.FieldBio:
		return c.Bio
	case platform.FieldUsername:
		return c.Username
	case platform.FieldProfileName:
		return c.ProfileName
	case platform.FieldHeadline:
		return c.Headline
	case platform.FieldAboutSection:
		return c.AboutSection
	case platform.FieldConnectionMessage:
		return c.ConnectionMessage
	case platform.FieldStreamCategory:
		return c.StreamCategory
	}
	return ""
}

// SetField はフィールド名を指定して値を設定する。未知の名前は無視する。
func (c *Content) SetField(field, value string) {
	switch field {
	case platform.FieldTitle:
		c.Title = value
	case platform.FieldDescription:
		c.Description = value
	case platform.FieldCaption:
		c.Caption = value
	case platform.FieldPostBody:
		c.PostBody = value
	case platform.FieldBio:
		c.Bio = value
	case platform.FieldUsername:
		c.Username = value
	case platform.FieldProfileName:
		c.ProfileName = value
	case platform.FieldHeadline:
		c.Headline = value
	case platform.FieldAboutSection:
		c.AboutSection = value
	case platform.FieldConnectionMessage:
		c.ConnectionMessage = value
	case platform.FieldStreamCategory:
		c.StreamCategory = value
	}
}

// PrimaryText は投稿の主文を返す。本文があれば本文、無ければタイトル。
func (c *Content) PrimaryText() string {
	if c.PostBody != "" {
		return c.PostBody
	}
	return c.Title
}
