package platform

// 各テキスト欄のフィールド名。抽出・検証・採点で共通のキーとして使う。
const (
	FieldTitle             = "title"
	FieldTags              = "tags"
	FieldDescription       = "description"
	FieldCaption           = "caption"
	FieldPostBody          = "post_body"
	FieldBio               = "bio"
	FieldUsername          = "username"
	FieldProfileName       = "profile_name"
	FieldHeadline          = "headline"
	FieldAboutSection      = "about_section"
	FieldConnectionMessage = "connection_message"
	FieldStreamCategory    = "stream_category"
	FieldComments          = "comments"
)

// FieldLimit は 1 フィールド分の文字数上限。
type FieldLimit struct {
	Field string
	Max   int
}

/**
 * Rules はプラットフォームごとの投稿ルール一式。
 * 上限値 0 はそのプラットフォームに該当フィールドが存在しないことを表す。
 * Optimal 系はエンゲージメント上の推奨値で、超過してもエラーにはしない。
 */
type Rules struct {
	Platform       Platform
	TitleMaxLength int
	TagMinCount    int
	TagMaxCount    int

	DescriptionMaxLength       int
	CaptionMaxLength           int
	PostMaxLength              int
	BioMaxLength               int
	UsernameMaxLength          int
	ProfileNameMaxLength       int
	HeadlineMaxLength          int
	AboutMaxLength             int
	ConnectionMessageMaxLength int
	StreamCategoryMaxLength    int
	CommentsMaxLength          int

	TitleOptimalLength       int
	DescriptionOptimalLength int
	CaptionOptimalLength     int
	PostOptimalLength        int

	ContentStyle        ContentStyle
	StyleGuidelines     []string
	SpecialRequirements []string
}

// 調査済みの上限値・推奨値。docs/platform_text_rules.md が一次情報で、
// テストが両者の食い違いを検出する。
var rulesTable = map[Platform]Rules{
	YouTube: {
		Platform:                 YouTube,
		TitleMaxLength:           100,
		TitleOptimalLength:       70,
		DescriptionMaxLength:     5000,
		DescriptionOptimalLength: 157,
		BioMaxLength:             1000,
		CommentsMaxLength:        10000,
		TagMinCount:              10,
		TagMaxCount:              15,
		ContentStyle:             StyleEducationalEntertainment,
		StyleGuidelines: []string{
			"Engaging and SEO-friendly titles",
			"Balance educational and entertainment value",
			"Use trending keywords for discoverability",
			"Clear, descriptive content that matches video topic",
		},
		SpecialRequirements: []string{
			"Focus on trending keywords",
			"Optimize for YouTube search algorithm",
			"Title truncated after 70 chars in search results",
			"Description preview shows first 157 chars",
		},
	},
	Instagram: {
		Platform:             Instagram,
		TitleMaxLength:       150,
		CaptionMaxLength:     2200,
		CaptionOptimalLength: 125,
		BioMaxLength:         150,
		UsernameMaxLength:    30,
		ProfileNameMaxLength: 30,
		CommentsMaxLength:    2200,
		TagMinCount:          20,
		TagMaxCount:          30,
		ContentStyle:         StyleVisualLifestyle,
		StyleGuidelines: []string{
			"Visually appealing and lifestyle-focused",
			"Use mix of popular and niche hashtags",
			"Encourage engagement and interaction",
		},
		SpecialRequirements: []string{
			"Hashtag-heavy approach (20-30 tags)",
			"Caption truncated after 125 chars with 'more' button",
			"Max 30 hashtags per post",
		},
	},
	Facebook: {
		Platform:          Facebook,
		TitleMaxLength:    255,
		PostMaxLength:     63206,
		PostOptimalLength: 80,
		BioMaxLength:      255,
		HeadlineMaxLength: 40,
		TagMinCount:       3,
		TagMaxCount:       5,
		ContentStyle:      StyleCommunityBuilding,
		StyleGuidelines: []string{
			"Engagement-focused and shareable",
			"Community-building approach",
			"Moderate hashtag usage",
		},
		SpecialRequirements: []string{
			"Not hashtag-heavy (3-5 only)",
			"Posts around 80 chars get higher engagement",
			"Encourage comments and shares",
		},
	},
	TikTok: {
		Platform:          TikTok,
		TitleMaxLength:    150,
		CaptionMaxLength:  2200,
		BioMaxLength:      80,
		UsernameMaxLength: 24,
		CommentsMaxLength: 150,
		TagMinCount:       3,
		TagMaxCount:       5,
		ContentStyle:      StyleTrendFocused,
		StyleGuidelines: []string{
			"Trend-aware and catchy",
			"Gen-Z friendly language",
			"Viral potential focus",
		},
		SpecialRequirements: []string{
			"Use trending hashtags",
			"Optimal 3-5 hashtags for engagement",
		},
	},
	XTwitter: {
		Platform:             XTwitter,
		TitleMaxLength:       280,
		PostMaxLength:        280,
		PostOptimalLength:    100,
		BioMaxLength:         160,
		UsernameMaxLength:    15,
		ProfileNameMaxLength: 50,
		TagMinCount:          2,
		TagMaxCount:          3,
		ContentStyle:         StyleConciseTimely,
		StyleGuidelines: []string{
			"Concise and timely",
			"Conversation-starting",
			"Hashtags integrated into text",
		},
		SpecialRequirements: []string{
			"280 character total limit (including hashtags)",
			"Posts under 100 chars see higher engagement",
		},
	},
	LinkedIn: {
		Platform:                   LinkedIn,
		TitleMaxLength:             210,
		PostMaxLength:              3000,
		PostOptimalLength:          200,
		HeadlineMaxLength:          220,
		AboutMaxLength:             2600,
		CommentsMaxLength:          1250,
		ConnectionMessageMaxLength: 300,
		TagMinCount:                3,
		TagMaxCount:                5,
		ContentStyle:               StyleProfessional,
		StyleGuidelines: []string{
			"Professional and thought-leadership focused",
			"Industry-relevant content",
			"Value-driven messaging",
		},
		SpecialRequirements: []string{
			"Professional tone mandatory",
			"Posts truncated at ~200 chars with 'See more'",
			"Professional keywords important for search",
		},
	},
	Twitch: {
		Platform:                Twitch,
		TitleMaxLength:          140,
		BioMaxLength:            300,
		StreamCategoryMaxLength: 50,
		TagMinCount:             3,
		TagMaxCount:             8,
		ContentStyle:            StyleGamingCommunity,
		StyleGuidelines: []string{
			"Gaming and streaming focused",
			"Community-oriented",
			"Interactive content emphasis",
		},
		SpecialRequirements: []string{
			"Stream title should be descriptive of content",
			"Category selection affects discoverability",
		},
	},
}

// RulesFor は指定プラットフォームのルールを返す。登録時以降の変更は無い。
func RulesFor(p Platform) (Rules, error) {
	rules, ok := rulesTable[p]
	if !ok {
		return Rules{}, ErrUnknownPlatform
	}
	return rules, nil
}

// FieldLimits は上限が設定されている拡張フィールドを定義順で返す。
func (r Rules) FieldLimits() []FieldLimit {
	candidates := []FieldLimit{
		{FieldDescription, r.DescriptionMaxLength},
		{FieldCaption, r.CaptionMaxLength},
		{FieldPostBody, r.PostMaxLength},
		{FieldBio, r.BioMaxLength},
		{FieldUsername, r.UsernameMaxLength},
		{FieldProfileName, r.ProfileNameMaxLength},
		{FieldHeadline, r.HeadlineMaxLength},
		{FieldAboutSection, r.AboutMaxLength},
		{FieldConnectionMessage, r.ConnectionMessageMaxLength},
		{FieldStreamCategory, r.StreamCategoryMaxLength},
		{FieldComments, r.CommentsMaxLength},
	}

	limits := make([]FieldLimit, 0, len(candidates))
	for _, c := range candidates {
		if c.Max > 0 {
			limits = append(limits, c)
		}
	}
	return limits
}

// RelevantFields は生成対象となるフィールド名を返す。title と tags は常に含む。
// comments は読者の返信欄であり生成対象ではないため除外する。
func (r Rules) RelevantFields() []string {
	fields := []string{FieldTitle, FieldTags}
	for _, limit := range r.FieldLimits() {
		if limit.Field == FieldComments {
			continue
		}
		fields = append(fields, limit.Field)
	}
	return fields
}

// OptimalLengthFor は該当フィールドの推奨文字数を返す。未設定なら 0。
func (r Rules) OptimalLengthFor(field string) int {
	switch field {
	case FieldTitle:
		return r.TitleOptimalLength
	case FieldDescription:
		return r.DescriptionOptimalLength
	case FieldCaption:
		return r.CaptionOptimalLength
	case FieldPostBody:
		return r.PostOptimalLength
	}
	return 0
}

// MaxLengthFor はフィールド名から上限値を引く。未設定なら 0。
func (r Rules) MaxLengthFor(field string) int {
	if field == FieldTitle {
		return r.TitleMaxLength
	}
	for _, limit := range r.FieldLimits() {
		if limit.Field == field {
			return limit.Max
		}
	}
	return 0
}
