package validation

import (
	"strings"
	"testing"

	"backend/internal/domain/content"
	"backend/internal/domain/platform"
)

func mustRules(t *testing.T, p platform.Platform) platform.Rules {
	t.Helper()
	rules, err := platform.RulesFor(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return rules
}

func findIssue(issues []Issue, field string, severity Severity) *Issue {
	for i := range issues {
		if issues[i].Field == field && issues[i].Severity == severity {
			return &issues[i]
		}
	}
	return nil
}

func hasError(issues []Issue, field string) bool {
	return findIssue(issues, field, SeverityError) != nil
}

func TestValidate_TitleBoundary(t *testing.T) {
	t.Parallel()

	rules := mustRules(t, platform.YouTube)

	atLimit := &content.Content{
		Platform: platform.YouTube,
		Title:    strings.Repeat("x", rules.TitleMaxLength),
	}
	if hasError(Validate(atLimit, rules), platform.FieldTitle) {
		t.Fatalf("title at exactly the limit must not be an error")
	}
	// 上限ちょうどは 9 割を超えているので警告にはなる
	if findIssue(Validate(atLimit, rules), platform.FieldTitle, SeverityWarning) == nil {
		t.Fatalf("title at the limit should warn about being near it")
	}

	overLimit := &content.Content{
		Platform: platform.YouTube,
		Title:    strings.Repeat("x", rules.TitleMaxLength+1),
	}
	issue := findIssue(Validate(overLimit, rules), platform.FieldTitle, SeverityError)
	if issue == nil {
		t.Fatalf("title one over the limit must be an error")
	}
	if issue.ExpectedValue != "100" || issue.CurrentValue != "101" {
		t.Fatalf("unexpected issue values: %+v", issue)
	}
}

func TestValidate_TitleCountsRunes(t *testing.T) {
	t.Parallel()

	rules := mustRules(t, platform.Twitch)
	// 140 ルーン（マルチバイト文字）はバイト数では大幅超過だがルーン数では上限内
	c := &content.Content{
		Platform: platform.Twitch,
		Title:    strings.Repeat("あ", rules.TitleMaxLength),
		Tags:     []string{"#game", "#live", "#jp"},
	}
	if hasError(Validate(c, rules), platform.FieldTitle) {
		t.Fatalf("character limits must be measured in runes, not bytes")
	}
}

func TestValidate_TagWindow(t *testing.T) {
	t.Parallel()

	rules := mustRules(t, platform.Facebook)

	cases := []struct {
		name    string
		count   int
		wantErr bool
	}{
		{"below minimum", rules.TagMinCount - 1, true},
		{"at minimum", rules.TagMinCount, false},
		{"at maximum", rules.TagMaxCount, false},
		{"above maximum", rules.TagMaxCount + 1, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tags := make([]string, tc.count)
			for i := range tags {
				tags[i] = "#tag" + strings.Repeat("x", i+1)
			}
			c := &content.Content{Platform: platform.Facebook, Title: "Community Update Post", Tags: tags}
			got := hasError(Validate(c, rules), platform.FieldTags)
			if got != tc.wantErr {
				t.Fatalf("count=%d: error=%v, want %v", tc.count, got, tc.wantErr)
			}
		})
	}
}

func TestValidate_XTotalBudget(t *testing.T) {
	t.Parallel()

	rules := mustRules(t, platform.XTwitter)

	// 250 文字の本文 + 5 文字タグ 2 本（区切り込み 12 文字）= 262 文字で上限内
	c := &content.Content{
		Platform: platform.XTwitter,
		Title:    "Breaking news thread",
		PostBody: strings.Repeat("x", 250),
		Tags:     []string{"#tech", "#news"},
	}
	issues := Validate(c, rules)

	if hasError(issues, FieldTotalContent) {
		t.Fatalf("262 total chars must fit the 280 budget: %+v", issues)
	}
	if !IsValid(issues) {
		t.Fatalf("content within all limits must be valid: %+v", issues)
	}
	// 本文 250 文字は推奨値 100 を超えているので助言は出る
	if findIssue(issues, platform.FieldPostBody, SeverityInfo) == nil {
		t.Fatalf("expected an optimal-length advisory for a 250 char post")
	}

	// タグを伸ばして合計を 280 超にすると total_content エラーになる
	c.Tags = []string{"#" + strings.Repeat("a", 20), "#" + strings.Repeat("b", 20)}
	issues = Validate(c, rules)
	issue := findIssue(issues, FieldTotalContent, SeverityError)
	if issue == nil {
		t.Fatalf("expected total budget error, got %+v", issues)
	}
	if issue.CurrentValue != "294" {
		t.Fatalf("unexpected total count: %+v", issue)
	}
}

func TestValidate_TotalBudgetOnlyOnX(t *testing.T) {
	t.Parallel()

	rules := mustRules(t, platform.LinkedIn)
	c := &content.Content{
		Platform: platform.LinkedIn,
		Title:    "Quarterly Review",
		PostBody: strings.Repeat("x", 2990),
		Tags:     []string{"#business", "#strategy", "#growth"},
	}
	if hasError(Validate(c, rules), FieldTotalContent) {
		t.Fatalf("combined budget applies to X only")
	}
}

func TestValidate_LinkedInTone(t *testing.T) {
	t.Parallel()

	rules := mustRules(t, platform.LinkedIn)
	c := &content.Content{
		Platform: platform.LinkedIn,
		Title:    "Hey guys, check out this awesome quarterly report",
		PostBody: "lol this is going to be epic, omg you will not believe the numbers we hit this quarter",
		Tags:     []string{"#business", "#finance", "#reports"},
	}

	issue := findIssue(Validate(c, rules), FieldTone, SeverityWarning)
	if issue == nil {
		t.Fatalf("casual wording on LinkedIn must produce a tone warning")
	}
	for _, word := range []string{"hey", "lol", "omg"} {
		if !strings.Contains(issue.CurrentValue, word) {
			t.Fatalf("expected %q to be reported: %+v", word, issue)
		}
	}
}

func TestValidate_LinkedInCleanTone(t *testing.T) {
	t.Parallel()

	rules := mustRules(t, platform.LinkedIn)
	c := &content.Content{
		Platform: platform.LinkedIn,
		Title:    "Lessons From Scaling a Platform Team",
		PostBody: strings.Repeat("Our platform team doubled deployment frequency this year. ", 2),
		Headline: "Engineering Lead | Platform Infrastructure",
		Tags:     []string{"#engineering", "#leadership", "#platform"},
	}

	issues := Validate(c, rules)
	if findIssue(issues, FieldTone, SeverityWarning) != nil {
		t.Fatalf("professional wording must not trigger the tone warning: %+v", issues)
	}
	if !IsValid(issues) {
		t.Fatalf("expected valid content, got %+v", issues)
	}
}

func TestValidate_WordBoundary(t *testing.T) {
	t.Parallel()

	rules := mustRules(t, platform.XTwitter)
	// "nowhere" や "justice" は時事ワード ("now", "just") と誤認しない
	c := &content.Content{
		Platform: platform.XTwitter,
		Title:    "Thread",
		PostBody: "The road led nowhere and justice prevailed regardless of the outcome in the end.",
		Tags:     []string{"#story", "#writing"},
	}
	if findIssue(Validate(c, rules), FieldTiming, SeverityInfo) == nil {
		t.Fatalf("embedded substrings must not count as urgency words")
	}
}

func TestValidate_YouTubeDescription(t *testing.T) {
	t.Parallel()

	rules := mustRules(t, platform.YouTube)
	tags := []string{
		"#golang", "#tutorial", "#programming", "#coding", "#dev",
		"#software", "#backend", "#learning", "#tech", "#code",
	}

	missing := &content.Content{
		Platform: platform.YouTube,
		Title:    "Go Concurrency Patterns Explained",
		Tags:     tags,
	}
	if findIssue(Validate(missing, rules), platform.FieldDescription, SeverityWarning) == nil {
		t.Fatalf("missing description must warn")
	}

	short := &content.Content{
		Platform:    platform.YouTube,
		Title:       "Go Concurrency Patterns Explained",
		Description: "Short video.",
		Tags:        tags,
	}
	if findIssue(Validate(short, rules), platform.FieldDescription, SeverityWarning) == nil {
		t.Fatalf("too short a description must warn")
	}

	full := &content.Content{
		Platform:    platform.YouTube,
		Title:       "Go Concurrency Patterns Explained",
		Description: strings.Repeat("Learn channels, goroutines and worker pools step by step. ", 3),
		Tags:        tags,
	}
	if findIssue(Validate(full, rules), platform.FieldDescription, SeverityWarning) != nil {
		t.Fatalf("substantial description must not warn")
	}
}

func TestValidate_TikTokTrendTags(t *testing.T) {
	t.Parallel()

	rules := mustRules(t, platform.TikTok)

	without := &content.Content{
		Platform: platform.TikTok,
		Title:    "Quick pasta recipe",
		Caption:  strings.Repeat("Making carbonara in under a minute with three ingredients. ", 2),
		Tags:     []string{"#cooking", "#pasta", "#recipe"},
	}
	if findIssue(Validate(without, rules), platform.FieldTags, SeverityInfo) == nil {
		t.Fatalf("missing trend tags should produce an info issue")
	}

	with := &content.Content{
		Platform: platform.TikTok,
		Title:    "Quick pasta recipe",
		Caption:  strings.Repeat("Making carbonara in under a minute with three ingredients. ", 2),
		Tags:     []string{"#cooking", "#FYP", "#recipe"},
	}
	if findIssue(Validate(with, rules), platform.FieldTags, SeverityInfo) != nil {
		t.Fatalf("trend tag present, no info issue expected (case-insensitive match)")
	}
}

func TestValidate_TwitchCategoryAlignment(t *testing.T) {
	t.Parallel()

	rules := mustRules(t, platform.Twitch)

	misaligned := &content.Content{
		Platform:       platform.Twitch,
		Title:          "Cooking dinner and chatting with everyone in the kitchen tonight",
		StreamCategory: "Apex Legends",
		Tags:           []string{"#cooking", "#chat", "#live"},
	}
	if findIssue(Validate(misaligned, rules), platform.FieldStreamCategory, SeverityWarning) == nil {
		t.Fatalf("category sharing no words with the title must warn")
	}

	aligned := &content.Content{
		Platform:       platform.Twitch,
		Title:          "Ranked grind in Apex Legends, the road to Predator starts now!",
		StreamCategory: "Apex Legends",
		Tags:           []string{"#apex", "#ranked", "#fps"},
	}
	if findIssue(Validate(aligned, rules), platform.FieldStreamCategory, SeverityWarning) != nil {
		t.Fatalf("aligned title and category must not warn")
	}
}

func TestValidate_InstagramHeuristics(t *testing.T) {
	t.Parallel()

	rules := mustRules(t, platform.Instagram)
	tags := make([]string, 20)
	for i := range tags {
		tags[i] = "#tag" + strings.Repeat("a", i+1)
	}

	plain := &content.Content{
		Platform: platform.Instagram,
		Title:    "Morning routine",
		Caption:  "Starting the day with yoga, coffee and a long walk by the sea before work.",
		Tags:     tags,
	}
	issues := Validate(plain, rules)
	if findIssue(issues, FieldVisualAppeal, SeverityInfo) == nil {
		t.Fatalf("caption without emojis should get a visual appeal hint")
	}
	if findIssue(issues, platform.FieldTags, SeverityInfo) == nil {
		t.Fatalf("20 tags is below the better-reach range, expected a hint")
	}

	withEmoji := &content.Content{
		Platform: platform.Instagram,
		Title:    "Morning routine",
		Caption:  "Starting the day with yoga, coffee and a long walk by the sea ✨ feeling grateful!",
		Tags:     tags,
	}
	if findIssue(Validate(withEmoji, rules), FieldVisualAppeal, SeverityInfo) != nil {
		t.Fatalf("emoji present, no visual appeal hint expected")
	}
}

func TestValidate_IssuesNeverPanicOnEmptyContent(t *testing.T) {
	t.Parallel()

	for _, p := range platform.All() {
		rules := mustRules(t, p)
		c := &content.Content{Platform: p}
		issues := Validate(c, rules)
		// 空コンテンツはタグ不足で必ず無効になる
		if IsValid(issues) {
			t.Fatalf("%s: empty content must be invalid", p)
		}
	}
}
