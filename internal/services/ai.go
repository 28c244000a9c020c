package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/shrusti-bit/AI-Study-Hub/internal/format"
)

// Provider is a single-call text generation backend.
type Provider interface {
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// maxPromptContent caps how much source content is embedded in a
// prompt, matching the provider context budget.
const maxPromptContent = 3000

// plainTextRules is appended to every system prompt so the model does
// not emit markdown the formatter would have to strip anyway.
const plainTextRules = `IMPORTANT: Use ONLY plain text. Do NOT use any formatting characters like asterisks (*) for bold or italic, hashtags (#) for headers, dashes (---) for lines, underscores (_) for emphasis, or any markdown formatting. Write in simple, clean text with proper spacing and line breaks only.`

// AIService builds a generation provider from per-user credentials and
// runs the study-hub prompt flows over it.
type AIService struct{}

func NewAIService() *AIService {
	return &AIService{}
}

// ProviderFor returns the generation backend for the user's stored
// credentials.
func (s *AIService) ProviderFor(apiKey, providerName string) (Provider, error) {
	if apiKey == "" {
		return nil, &UnauthorizedError{Message: "No API key configured. Log in first."}
	}
	switch strings.ToLower(providerName) {
	case "gemini":
		return newGeminiProvider(apiKey), nil
	case "openai":
		return newOpenAIProvider(apiKey), nil
	default:
		return nil, &ValidationError{Fields: map[string]string{"provider": "must be gemini or openai"}}
	}
}

// ValidateCredentials checks that the key/provider pair can construct
// a client. The key itself is only proven on first generation call.
func (s *AIService) ValidateCredentials(apiKey, providerName string) error {
	_, err := s.ProviderFor(apiKey, providerName)
	return err
}

func (s *AIService) GenerateSummary(ctx context.Context, p Provider, content, contentType string) (string, error) {
	system := "You are a helpful academic tutor. Create a well-structured summary with emojis and clear organization. Make it fun to read! " + plainTextRules
	user := fmt.Sprintf("Please summarize this %s content in an organized way with emojis and clear sections:\n\n%s",
		contentType, truncate(content, maxPromptContent))

	text, err := p.Generate(ctx, system, user)
	if err != nil {
		return "", &ProviderError{Message: err.Error()}
	}
	return format.Format(text, format.KindSummary), nil
}

func (s *AIService) GenerateMCQ(ctx context.Context, p Provider, content string, numQuestions int) (string, error) {
	if numQuestions <= 0 {
		numQuestions = 5
	}
	system := "You are a fun quiz creator! Make engaging MCQs with clear explanations and emojis. Make learning enjoyable! " + plainTextRules
	user := fmt.Sprintf("Create %d fun multiple-choice questions with 4 options each from this content. Include explanations and emojis:\n\n%s",
		numQuestions, truncate(content, maxPromptContent))

	text, err := p.Generate(ctx, system, user)
	if err != nil {
		return "", &ProviderError{Message: err.Error()}
	}
	return format.Format(text, format.KindMCQ), nil
}

func (s *AIService) GenerateFlashcards(ctx context.Context, p Provider, content string) (string, error) {
	system := "You are a study helper! Create flashcards with clear questions and answers. Make learning fun! " + plainTextRules
	user := fmt.Sprintf("Create flashcards from this content. Make them engaging and educational:\n\n%s",
		truncate(content, maxPromptContent))

	text, err := p.Generate(ctx, system, user)
	if err != nil {
		return "", &ProviderError{Message: err.Error()}
	}
	return format.Format(text, format.KindFlashcards), nil
}

func (s *AIService) Chat(ctx context.Context, p Provider, message string) (string, error) {
	system := "You are a friendly AI study companion. Be encouraging and helpful with academic topics. Use emojis and make learning fun! " + plainTextRules

	text, err := p.Generate(ctx, system, message)
	if err != nil {
		return "", &ProviderError{Message: err.Error()}
	}
	return text, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
