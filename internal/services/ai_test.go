package services

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// fakeProvider returns canned text or a canned error.
type fakeProvider struct {
	reply      string
	err        error
	lastSystem string
	lastUser   string
}

func (f *fakeProvider) Generate(_ context.Context, systemPrompt, userPrompt string) (string, error) {
	f.lastSystem = systemPrompt
	f.lastUser = userPrompt
	return f.reply, f.err
}

func TestProviderFor(t *testing.T) {
	svc := NewAIService()

	tests := []struct {
		name     string
		apiKey   string
		provider string
		wantErr  interface{}
	}{
		{"gemini", "key", "gemini", nil},
		{"openai", "key", "openai", nil},
		{"case insensitive", "key", "Gemini", nil},
		{"missing key", "", "gemini", &UnauthorizedError{}},
		{"unknown provider", "key", "claude", &ValidationError{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, err := svc.ProviderFor(tc.apiKey, tc.provider)
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if p == nil {
					t.Fatal("expected a provider")
				}
				return
			}
			if err == nil {
				t.Fatal("expected an error")
			}
			switch tc.wantErr.(type) {
			case *UnauthorizedError:
				if _, ok := err.(*UnauthorizedError); !ok {
					t.Errorf("expected *UnauthorizedError, got %T", err)
				}
			case *ValidationError:
				if _, ok := err.(*ValidationError); !ok {
					t.Errorf("expected *ValidationError, got %T", err)
				}
			}
		})
	}
}

func TestGenerateSummary_FormatsOutput(t *testing.T) {
	svc := NewAIService()
	fake := &fakeProvider{reply: "**Key** points below\n- first point\n- second point"}

	out, err := svc.GenerateSummary(context.Background(), fake, "some lecture text", "general")
	if err != nil {
		t.Fatalf("GenerateSummary: %v", err)
	}

	if strings.Contains(out, "**") {
		t.Errorf("markup must be stripped from output: %q", out)
	}
	if !strings.Contains(out, "🔑 Key points below") {
		t.Errorf("heading line must gain the key marker: %q", out)
	}
	if !strings.Contains(out, "    first point") {
		t.Errorf("bullets must be indented with markers stripped: %q", out)
	}
}

func TestGenerateSummary_TruncatesContent(t *testing.T) {
	svc := NewAIService()
	fake := &fakeProvider{reply: "ok"}

	long := strings.Repeat("a", maxPromptContent+500)
	if _, err := svc.GenerateSummary(context.Background(), fake, long, "general"); err != nil {
		t.Fatalf("GenerateSummary: %v", err)
	}

	if strings.Contains(fake.lastUser, strings.Repeat("a", maxPromptContent+1)) {
		t.Error("prompt content must be capped")
	}
}

func TestGenerateMCQ_DefaultQuestionCount(t *testing.T) {
	svc := NewAIService()
	fake := &fakeProvider{reply: "Q: ok?"}

	if _, err := svc.GenerateMCQ(context.Background(), fake, "content", 0); err != nil {
		t.Fatalf("GenerateMCQ: %v", err)
	}
	if !strings.Contains(fake.lastUser, "Create 5 fun multiple-choice questions") {
		t.Errorf("zero question count must default to 5, prompt was %q", fake.lastUser)
	}
}

func TestGenerateFlashcards_FormatsOutput(t *testing.T) {
	svc := NewAIService()
	fake := &fakeProvider{reply: "Q: Capital of France?\nA: Paris"}

	out, err := svc.GenerateFlashcards(context.Background(), fake, "content")
	if err != nil {
		t.Fatalf("GenerateFlashcards: %v", err)
	}
	if !strings.Contains(out, "🃏 Card 1:") || !strings.Contains(out, "    ✅ Paris") {
		t.Errorf("flashcard layout missing: %q", out)
	}
}

func TestGeneration_ProviderFailure(t *testing.T) {
	svc := NewAIService()
	fake := &fakeProvider{err: errors.New("quota exceeded")}

	_, err := svc.GenerateSummary(context.Background(), fake, "content", "general")
	if err == nil {
		t.Fatal("expected an error")
	}
	var pe *ProviderError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ProviderError, got %T", err)
	}
	if !strings.Contains(pe.Message, "quota exceeded") {
		t.Errorf("provider message must be preserved, got %q", pe.Message)
	}
}

func TestChat_ReturnsRawReply(t *testing.T) {
	svc := NewAIService()
	fake := &fakeProvider{reply: "Happy to help! 📚"}

	out, err := svc.Chat(context.Background(), fake, "explain osmosis")
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}
	if out != "Happy to help! 📚" {
		t.Errorf("chat replies are not reformatted, got %q", out)
	}
	if fake.lastUser != "explain osmosis" {
		t.Errorf("user message must pass through, got %q", fake.lastUser)
	}
}
