package generate

import (
	"context"
	"errors"
	"strings"
	"testing"

	"backend/internal/domain/platform"
	"backend/internal/domain/transcript"
)

type stubGenerator struct {
	resp   string
	err    error
	prompt string
	calls  int
}

func (s *stubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	s.prompt = prompt
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.resp, nil
}

func testTranscript(t *testing.T) *transcript.Transcript {
	t.Helper()
	tr, err := transcript.New(
		"learning golang concurrency patterns with channels and goroutines explained simply",
		"Golang Concurrency Patterns", 300, "en", "programming")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return tr
}

func TestUsecaseExecuteSuccess(t *testing.T) {
	gen := &stubGenerator{
		resp: "```json\n" + `{
			"title": "Scaling Go Services With Worker Pools",
			"tags": ["#golang", "#concurrency", "#backend", "#engineering"],
			"post_body": "We doubled throughput by restructuring our worker pools. Here is how the pipeline changed and what we measured along the way.",
			"headline": "Backend Engineer | Go",
			"confidence": 0.9
		}` + "\n```",
	}
	u := NewUsecase(gen)

	out, err := u.Execute(context.Background(), &Input{
		Transcript: testTranscript(t),
		Platform:   "linkedin",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Content.Title != "Scaling Go Services With Worker Pools" {
		t.Fatalf("unexpected title: %q", out.Content.Title)
	}
	if out.Content.Platform != platform.LinkedIn {
		t.Fatalf("unexpected platform: %s", out.Content.Platform)
	}
	if out.Content.ConfidenceScore != 0.9 {
		t.Fatalf("unexpected confidence: %f", out.Content.ConfidenceScore)
	}
	if !out.Result.IsValid {
		t.Fatalf("expected valid content: %+v", out.Result.Issues)
	}
	if out.Content.MeetsRequirements != out.Result.IsValid {
		t.Fatalf("validation result must be applied to the content")
	}
	if gen.calls != 1 {
		t.Fatalf("expected one generator call, got %d", gen.calls)
	}
	if !strings.Contains(gen.prompt, "LinkedIn") {
		t.Fatalf("prompt should name the platform")
	}
}

func TestUsecaseExecuteGeneratorFailure(t *testing.T) {
	gen := &stubGenerator{err: errors.New("quota exceeded")}
	u := NewUsecase(gen)

	out, err := u.Execute(context.Background(), &Input{
		Transcript: testTranscript(t),
		Platform:   "youtube",
	})
	if err != nil {
		t.Fatalf("generator failure must not surface: %v", err)
	}
	if out.Content.ConfidenceScore != 0.3 {
		t.Fatalf("fallback confidence must be 0.3, got %f", out.Content.ConfidenceScore)
	}
	if out.Content.Title == "" {
		t.Fatalf("fallback must still produce a title")
	}
	if len(out.Content.Tags) == 0 {
		t.Fatalf("fallback must still produce tags")
	}
}

func TestUsecaseExecuteNilGenerator(t *testing.T) {
	u := NewUsecase(nil)

	out, err := u.Execute(context.Background(), &Input{
		Transcript: testTranscript(t),
		Platform:   "tiktok",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Content.ConfidenceScore != 0.3 {
		t.Fatalf("expected fallback content, got confidence %f", out.Content.ConfidenceScore)
	}
}

func TestUsecaseExecuteUnknownPlatform(t *testing.T) {
	u := NewUsecase(&stubGenerator{})

	_, err := u.Execute(context.Background(), &Input{
		Transcript: testTranscript(t),
		Platform:   "myspace",
	})
	if !errors.Is(err, platform.ErrUnknownPlatform) {
		t.Fatalf("expected unknown platform error, got %v", err)
	}
}

func TestUsecaseExecuteNilInput(t *testing.T) {
	u := NewUsecase(&stubGenerator{})

	if _, err := u.Execute(context.Background(), nil); !errors.Is(err, ErrNilInput) {
		t.Fatalf("expected nil input error, got %v", err)
	}
	if _, err := u.Execute(context.Background(), &Input{Platform: "youtube"}); !errors.Is(err, ErrNilInput) {
		t.Fatalf("expected nil input error for missing transcript, got %v", err)
	}
}

func TestUsecaseExecuteGarbageResponse(t *testing.T) {
	gen := &stubGenerator{resp: "I could not produce the requested output, sorry!"}
	u := NewUsecase(gen)

	out, err := u.Execute(context.Background(), &Input{
		Transcript: testTranscript(t),
		Platform:   "x_twitter",
	})
	if err != nil {
		t.Fatalf("garbage output must not surface as an error: %v", err)
	}
	if out.Content.Title == "" || len(out.Content.Tags) == 0 {
		t.Fatalf("defaults must fill title and tags: %+v", out.Content)
	}
}

func TestBuildPrompt(t *testing.T) {
	rules, _ := platform.RulesFor(platform.Instagram)
	tr := testTranscript(t)

	prompt := BuildPrompt(tr, rules, Options{Tone: "playful", IncludeEmojis: true})

	for _, want := range []string{
		tr.Content(),
		"Golang Concurrency Patterns",
		"TONE: playful",
		"Include 1-2 relevant emojis",
		"exactly 20-30 hashtags",
		"caption",
		"Respond with JSON",
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt is missing %q:\n%s", want, prompt)
		}
	}
}

func TestBuildPromptDefaults(t *testing.T) {
	rules, _ := platform.RulesFor(platform.YouTube)
	tr, err := transcript.New("a transcript without a title or category here", "", 0, "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	prompt := BuildPrompt(tr, rules, Options{})

	for _, want := range []string{"Not provided", "CATEGORY: General", "TONE: neutral", "No emojis"} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt is missing %q", want)
		}
	}
	// 返信欄はプラットフォーム上の制限であって生成対象ではない
	if strings.Contains(prompt, "comments") {
		t.Fatalf("comments must not appear as a generation target")
	}
}
