// Package format renders raw scraped, extracted, or AI-generated text
// into the line-oriented display layouts used by the study hub.
package format

import (
	"fmt"
	"regexp"
	"strings"
)

// ContentKind selects which formatting ruleset applies.
type ContentKind string

const (
	KindSummary    ContentKind = "summary"
	KindMCQ        ContentKind = "mcq"
	KindFlashcards ContentKind = "flashcards"
	KindGeneral    ContentKind = "general"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	// \p{L}\p{N} rather than \w: scraped pages and PDFs carry accented
	// and CJK text, which must survive cleaning.
	disallowedChars = regexp.MustCompile(`[^\p{L}\p{N}_\s.,!?;:\-()"']`)
	periodRun       = regexp.MustCompile(`\.(\s*\.)+`)
	spaceBeforeStop = regexp.MustCompile(`\s+([.!?])`)
	sentenceSpacing = regexp.MustCompile(`([.!?])\s*([A-Z])`)
)

// Clean normalizes whitespace and punctuation in extracted text.
// Order matters: whitespace collapse must run before punctuation
// stripping, which must run before the period-run fix. Clean is
// idempotent and total over all inputs.
func Clean(text string) string {
	if text == "" {
		return ""
	}
	text = whitespaceRun.ReplaceAllString(strings.TrimSpace(text), " ")
	text = disallowedChars.ReplaceAllString(text, "")
	text = periodRun.ReplaceAllString(text, ".")
	text = spaceBeforeStop.ReplaceAllString(text, "$1")
	text = sentenceSpacing.ReplaceAllString(text, "$1 $2")
	// Character stripping can leave doubled spaces behind; collapse
	// once more so Clean is idempotent.
	text = whitespaceRun.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// markupReplacer deletes literal markdown-style markers. Longer
// patterns are listed before their single-character substrings so a
// "**" is never half-consumed by the "*" rule.
var markupReplacer = strings.NewReplacer(
	"**", "", "*", "",
	"##", "", "#", "",
	"---", "", "--", "",
	"__", "", "_", "",
	"~~", "", "~", "",
	"```", "", "`", "",
	"||", "", "|", "",
	">>", "", ">", "",
	"<<", "", "<", "",
)

// StripMarkup removes stray markdown emphasis and structure characters
// so line classification never sees them.
func StripMarkup(text string) string {
	return markupReplacer.Replace(text)
}

// Format renders text for the given content kind. It never fails:
// input without recognizable structure falls through to the
// passthrough or indentation-only paths.
func Format(text string, kind ContentKind) string {
	switch kind {
	case KindSummary:
		return formatSummary(text)
	case KindMCQ:
		return formatMCQ(text)
	case KindFlashcards:
		return formatFlashcards(text)
	default:
		return text
	}
}

var summaryBullets = []string{"•", "-", "*", "1.", "2.", "3.", "4.", "5."}
var summaryHeadings = []string{"Key", "Main", "Important", "Summary", "🔑"}

func formatSummary(content string) string {
	content = StripMarkup(content)

	var out []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		switch {
		case hasAnyPrefix(line, summaryBullets...):
			out = append(out, "    "+stripOnePrefix(line, summaryBullets...))
		case hasAnyPrefix(line, summaryHeadings...):
			out = append(out, "", "🔑 "+line)
		default:
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}

func formatMCQ(content string) string {
	content = StripMarkup(content)

	var out []string
	questionNum := 1
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		switch {
		case hasAnyPrefix(line, "Q:", "Question:", "?") || strings.Contains(line, "?"):
			out = append(out, "", fmt.Sprintf("❓ Question %d:", questionNum))
			out = append(out, "    "+stripOnePrefix(line, "Q:", "Question:"))
			questionNum++
		case hasAnyPrefix(line, "A)", "B)", "C)", "D)"):
			out = append(out, "        "+line)
		case hasAnyPrefix(line, "Answer:", "Correct:", "Explanation:"):
			out = append(out, "    ✅ "+line)
		default:
			out = append(out, "    "+line)
		}
	}
	return strings.Join(out, "\n")
}

func formatFlashcards(content string) string {
	content = StripMarkup(content)

	var out []string
	cardNum := 1
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		switch {
		case hasAnyPrefix(line, "Q:", "Question:", "Front:") || strings.Contains(line, "?"):
			out = append(out, "", fmt.Sprintf("🃏 Card %d:", cardNum))
			out = append(out, "    ❓ "+stripOnePrefix(line, "Q:", "Question:", "Front:"))
			cardNum++
		case hasAnyPrefix(line, "A:", "Answer:", "Back:"):
			out = append(out, "    ✅ "+stripOnePrefix(line, "A:", "Answer:", "Back:"))
		default:
			out = append(out, "    "+line)
		}
	}
	return strings.Join(out, "\n")
}

func hasAnyPrefix(s string, prefixes ...string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

func stripOnePrefix(s string, prefixes ...string) string {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return strings.TrimSpace(s[len(p):])
		}
	}
	return s
}
