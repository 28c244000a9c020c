package format

import (
	"strings"
	"testing"
)

// ─── Clean ───

func TestClean(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"whitespace only", "  \n\t  ", ""},
		{"collapses whitespace runs", "hello   world\n\nagain", "hello world again"},
		{"strips disallowed characters", "cost: $5 & 10% [sale]", "cost: 5 10 sale"},
		{"keeps allowed punctuation", `Wait, really?! "Yes"; (see: notes) - ok.`, `Wait, really?! "Yes"; (see: notes) - ok.`},
		{"keeps accented letters", "café and naïve readers", "café and naïve readers"},
		{"keeps CJK text", "光合作用 converts light.", "光合作用 converts light."},
		{"keeps non-latin digits and letters", "résumé §2026 año", "résumé 2026 año"},
		{"collapses period runs", "end....", "end."},
		{"collapses spaced period runs", "end. . .", "end."},
		{"drops space before stop", "done !", "done!"},
		{"spaces sentences apart", "First.Second", "First. Second"},
		{"trims result", "  padded  ", "padded"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := Clean(tc.input)
			if result != tc.expected {
				t.Errorf("Clean(%q) = %q, want %q", tc.input, result, tc.expected)
			}
		})
	}
}

func TestClean_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"plain sentence.",
		"lots   of\n\nwhitespace\teverywhere",
		"trailing dots......",
		"mixed ?! punctuation .One.Two.Three",
		"symbols @#$%^&* in the middle",
		". . . leading dots",
		"café   光合作用 . . . naïve",
	}

	for _, input := range inputs {
		once := Clean(input)
		twice := Clean(once)
		if once != twice {
			t.Errorf("Clean not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}

// ─── StripMarkup ───

func TestStripMarkup(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"bold and headers", "**bold** and ## header", "bold and  header"},
		{"single markers", "*em* _u_ `code` ~s~", "em u code s"},
		{"long before short", "---rule-- __x__ ~~y~~ ```z```", "rule x y z"},
		{"pipes and angles", "|a| >>b<< >c<", "a b c"},
		{"untouched text", "no markers here.", "no markers here."},
		{"empty", "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := StripMarkup(tc.input)
			if result != tc.expected {
				t.Errorf("StripMarkup(%q) = %q, want %q", tc.input, result, tc.expected)
			}
		})
	}
}

// ─── Format: summary ───

func TestFormatSummary_Bullets(t *testing.T) {
	result := Format("- item one\n- item two", KindSummary)
	expected := "    item one\n    item two"
	if result != expected {
		t.Errorf("got %q, want %q", result, expected)
	}
}

func TestFormatSummary_OrdinalMarkers(t *testing.T) {
	result := Format("1. first\n2. second", KindSummary)
	expected := "    first\n    second"
	if result != expected {
		t.Errorf("got %q, want %q", result, expected)
	}
}

func TestFormatSummary_KeyHeadings(t *testing.T) {
	result := Format("Key takeaways below", KindSummary)
	expected := "\n🔑 Key takeaways below"
	if result != expected {
		t.Errorf("got %q, want %q", result, expected)
	}
}

func TestFormatSummary_PassthroughAndBlankLines(t *testing.T) {
	result := Format("intro text\n\n\nmore text", KindSummary)
	expected := "intro text\nmore text"
	if result != expected {
		t.Errorf("blank input lines must be dropped: got %q, want %q", result, expected)
	}
}

func TestFormatSummary_StripsMarkupFirst(t *testing.T) {
	result := Format("**Key** point", KindSummary)
	if !strings.HasPrefix(result, "\n🔑 Key point") {
		t.Errorf("markup should be stripped before classification, got %q", result)
	}
}

// ─── Format: mcq ───

func TestFormatMCQ(t *testing.T) {
	input := "Q: What is 2+2?\nA) 3\nB) 4\nAnswer: B"
	expected := strings.Join([]string{
		"",
		"❓ Question 1:",
		"    What is 2+2?",
		"        A) 3",
		"        B) 4",
		"    ✅ Answer: B",
	}, "\n")

	result := Format(input, KindMCQ)
	if result != expected {
		t.Errorf("got %q, want %q", result, expected)
	}
}

func TestFormatMCQ_CounterIncrements(t *testing.T) {
	input := "Q: First?\nA) x\nQ: Second?\nA) y\nQ: Third?"
	result := Format(input, KindMCQ)

	for _, header := range []string{"❓ Question 1:", "❓ Question 2:", "❓ Question 3:"} {
		if !strings.Contains(result, header) {
			t.Errorf("expected %q in output, got %q", header, result)
		}
	}
	if strings.Contains(result, "❓ Question 4:") {
		t.Errorf("counter overran the question count: %q", result)
	}
}

func TestFormatMCQ_CounterResetsPerCall(t *testing.T) {
	Format("Q: warm up?", KindMCQ)
	result := Format("Q: fresh start?", KindMCQ)
	if !strings.Contains(result, "❓ Question 1:") {
		t.Errorf("counter must reset per invocation, got %q", result)
	}
}

func TestFormatMCQ_QuestionMarkAnywhere(t *testing.T) {
	result := Format("The capital is where?", KindMCQ)
	if !strings.Contains(result, "❓ Question 1:") {
		t.Errorf("a line containing ? must classify as a question, got %q", result)
	}
}

func TestFormatMCQ_ExplanationLines(t *testing.T) {
	result := Format("Explanation: because math", KindMCQ)
	expected := "    ✅ Explanation: because math"
	if result != expected {
		t.Errorf("got %q, want %q", result, expected)
	}
}

func TestFormatMCQ_UnrecognizedLineIndented(t *testing.T) {
	result := Format("just some context", KindMCQ)
	expected := "    just some context"
	if result != expected {
		t.Errorf("got %q, want %q", result, expected)
	}
}

// ─── Format: flashcards ───

func TestFormatFlashcards(t *testing.T) {
	input := "Q: Capital of France?\nA: Paris"
	expected := strings.Join([]string{
		"",
		"🃏 Card 1:",
		"    ❓ Capital of France?",
		"    ✅ Paris",
	}, "\n")

	result := Format(input, KindFlashcards)
	if result != expected {
		t.Errorf("got %q, want %q", result, expected)
	}
}

func TestFormatFlashcards_FrontBackPrefixes(t *testing.T) {
	input := "Front: Define osmosis\nBack: Diffusion of water"
	result := Format(input, KindFlashcards)

	if !strings.Contains(result, "🃏 Card 1:") {
		t.Errorf("Front: must open a card, got %q", result)
	}
	if !strings.Contains(result, "    ❓ Define osmosis") {
		t.Errorf("Front: prefix must be stripped, got %q", result)
	}
	if !strings.Contains(result, "    ✅ Diffusion of water") {
		t.Errorf("Back: prefix must be stripped, got %q", result)
	}
}

func TestFormatFlashcards_CardNumbering(t *testing.T) {
	input := "Q: One?\nA: 1\nQ: Two?\nA: 2"
	result := Format(input, KindFlashcards)

	if !strings.Contains(result, "🃏 Card 1:") || !strings.Contains(result, "🃏 Card 2:") {
		t.Errorf("cards must number sequentially, got %q", result)
	}
}

// ─── Format: general and empty ───

func TestFormatGeneral_Unmodified(t *testing.T) {
	input := "**raw** text\n\nwith markup"
	if result := Format(input, KindGeneral); result != input {
		t.Errorf("general kind must pass through unmodified, got %q", result)
	}
}

func TestFormat_EmptyInput(t *testing.T) {
	for _, kind := range []ContentKind{KindSummary, KindMCQ, KindFlashcards, KindGeneral} {
		if result := Format("", kind); result != "" {
			t.Errorf("Format(\"\", %s) = %q, want empty string", kind, result)
		}
	}
}
