package platform

import (
	"errors"
	"testing"
)

func TestRulesFor_Unknown(t *testing.T) {
	t.Parallel()

	if _, err := RulesFor(Platform("vine")); !errors.Is(err, ErrUnknownPlatform) {
		t.Fatalf("expected ErrUnknownPlatform but got %v", err)
	}
}

// 調査済みの定数と食い違っていないかを押さえるテーブル。
func TestRulesFor_DocumentedValues(t *testing.T) {
	t.Parallel()

	cases := []struct {
		platform      Platform
		titleMax      int
		tagMin        int
		tagMax        int
		extendedField string
		extendedMax   int
	}{
		{YouTube, 100, 10, 15, FieldDescription, 5000},
		{Instagram, 150, 20, 30, FieldCaption, 2200},
		{Facebook, 255, 3, 5, FieldPostBody, 63206},
		{TikTok, 150, 3, 5, FieldCaption, 2200},
		{XTwitter, 280, 2, 3, FieldPostBody, 280},
		{LinkedIn, 210, 3, 5, FieldPostBody, 3000},
		{Twitch, 140, 3, 8, FieldStreamCategory, 50},
	}

	for _, tc := range cases {
		t.Run(string(tc.platform), func(t *testing.T) {
			rules, err := RulesFor(tc.platform)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if rules.TitleMaxLength != tc.titleMax {
				t.Fatalf("title max: expected %d but got %d", tc.titleMax, rules.TitleMaxLength)
			}
			if rules.TagMinCount != tc.tagMin || rules.TagMaxCount != tc.tagMax {
				t.Fatalf("tag window: expected %d-%d but got %d-%d",
					tc.tagMin, tc.tagMax, rules.TagMinCount, rules.TagMaxCount)
			}
			if got := rules.MaxLengthFor(tc.extendedField); got != tc.extendedMax {
				t.Fatalf("%s max: expected %d but got %d", tc.extendedField, tc.extendedMax, got)
			}
		})
	}
}

func TestRules_Invariants(t *testing.T) {
	t.Parallel()

	for _, p := range All() {
		rules, err := RulesFor(p)
		if err != nil {
			t.Fatalf("unexpected error for %s: %v", p, err)
		}
		if rules.TagMinCount > rules.TagMaxCount {
			t.Fatalf("%s: tag min %d exceeds max %d", p, rules.TagMinCount, rules.TagMaxCount)
		}
		if rules.TitleMaxLength <= 0 {
			t.Fatalf("%s: title max must be positive", p)
		}
		for _, limit := range rules.FieldLimits() {
			if limit.Max <= 0 {
				t.Fatalf("%s: %s limit must be positive, got %d", p, limit.Field, limit.Max)
			}
		}
	}
}

func TestRules_OptimalBelowMax(t *testing.T) {
	t.Parallel()

	for _, p := range All() {
		rules, _ := RulesFor(p)
		for _, field := range []string{FieldTitle, FieldDescription, FieldCaption, FieldPostBody} {
			opt := rules.OptimalLengthFor(field)
			if opt == 0 {
				continue
			}
			max := rules.MaxLengthFor(field)
			if max == 0 || opt > max {
				t.Fatalf("%s: optimal %d for %s exceeds max %d", p, opt, field, max)
			}
		}
	}
}

func TestRules_RelevantFields(t *testing.T) {
	t.Parallel()

	rules, _ := RulesFor(LinkedIn)
	fields := rules.RelevantFields()

	if fields[0] != FieldTitle || fields[1] != FieldTags {
		t.Fatalf("relevant fields must start with title and tags: %v", fields)
	}
	for _, f := range fields {
		if f == FieldComments {
			t.Fatalf("comments must not be a generation target: %v", fields)
		}
	}

	found := false
	for _, f := range fields {
		if f == FieldConnectionMessage {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected connection_message in LinkedIn relevant fields: %v", fields)
	}
}
