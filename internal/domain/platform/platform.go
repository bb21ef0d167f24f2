package platform

import "errors"

var (
	// ErrUnknownPlatform は未対応のプラットフォームが指定された際に返される。
	ErrUnknownPlatform = errors.New("platform: unknown platform")
)

// Platform は対応する投稿先プラットフォームを表す。
type Platform string

const (
	YouTube   Platform = "youtube"
	Instagram Platform = "instagram"
	Facebook  Platform = "facebook"
	TikTok    Platform = "tiktok"
	XTwitter  Platform = "x_twitter"
	LinkedIn  Platform = "linkedin"
	Twitch    Platform = "twitch"
)

// ContentStyle はプラットフォームごとの投稿スタイル分類。
type ContentStyle string

const (
	StyleEducationalEntertainment ContentStyle = "educational_entertainment"
	StyleVisualLifestyle          ContentStyle = "visual_lifestyle"
	StyleCommunityBuilding        ContentStyle = "community_building"
	StyleTrendFocused             ContentStyle = "trend_focused"
	StyleProfessional             ContentStyle = "professional"
	StyleGamingCommunity          ContentStyle = "gaming_community"
	StyleConciseTimely            ContentStyle = "concise_timely"
)

var all = []Platform{
	YouTube,
	Instagram,
	Facebook,
	TikTok,
	XTwitter,
	LinkedIn,
	Twitch,
}

var displayNames = map[Platform]string{
	YouTube:   "YouTube",
	Instagram: "Instagram",
	Facebook:  "Facebook",
	TikTok:    "TikTok",
	XTwitter:  "X (Twitter)",
	LinkedIn:  "LinkedIn",
	Twitch:    "Twitch",
}

// Parse は文字列を Platform へ変換する。未対応の値は ErrUnknownPlatform。
func Parse(s string) (Platform, error) {
	p := Platform(s)
	if !p.isValid() {
		return "", ErrUnknownPlatform
	}
	return p, nil
}

// All は対応プラットフォームを定義順で返す。
func All() []Platform {
	out := make([]Platform, len(all))
	copy(out, all)
	return out
}

// DisplayName は表示用の名称を返す。
func (p Platform) DisplayName() string {
	if name, ok := displayNames[p]; ok {
		return name
	}
	return string(p)
}

func (p Platform) isValid() bool {
	_, ok := displayNames[p]
	return ok
}
