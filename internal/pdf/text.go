package pdf

import (
	"regexp"
	"strings"

	"github.com/kpauljoseph/cardflip/pkg/models"
)

const (
	QuestionKeyword   = "QUESTION"
	AnswerKeyword     = "ANSWER"
	DifficultyKeyword = "DIFFICULTY"
)

var (
	flashcardPattern  = regexp.MustCompile(`(?ms)^[ \t]*` + QuestionKeyword + `[ \t]*:?(.*?)^[ \t]*` + AnswerKeyword + `[ \t]*:?(.*)`)
	difficultyPattern = regexp.MustCompile(`(?m)^[ \t]*` + DifficultyKeyword + `\b[ \t]*:?(.*)$`)
	spacePattern      = regexp.MustCompile(`\s+`)
)

// ParsedText is the content of one flashcard page.
type ParsedText struct {
	Question   string
	Answer     string
	Difficulty models.Tier
}

// ContainsFlashcardMarkers reports whether text has a line starting with
// QUESTION followed by a line starting with ANSWER. Markers are upper case.
func ContainsFlashcardMarkers(text string) bool {
	return flashcardPattern.MatchString(text)
}

// ParseFlashcardText pulls the question and answer out of a page laid out as
//
//	QUESTION: ...
//	ANSWER: ...
//	DIFFICULTY: HARD
//
// Markers only count at the start of a line, so the words inside a question
// are left alone. Every DIFFICULTY line is dropped from the text; the first
// one sets the tier, and defaultTier is used when it is missing or unreadable.
func ParseFlashcardText(text string, defaultTier models.Tier) (ParsedText, bool) {
	parsed := ParsedText{Difficulty: defaultTier}

	if m := difficultyPattern.FindStringSubmatch(text); m != nil {
		if tier, err := models.ParseTier(m[1]); err == nil {
			parsed.Difficulty = tier
		}
		text = difficultyPattern.ReplaceAllString(text, "")
	}

	m := flashcardPattern.FindStringSubmatch(text)
	if m == nil {
		return ParsedText{}, false
	}

	parsed.Question = normalizeSpace(m[1])
	parsed.Answer = normalizeSpace(m[2])
	if parsed.Question == "" && parsed.Answer == "" {
		return ParsedText{}, false
	}
	return parsed, true
}

func normalizeSpace(s string) string {
	return strings.TrimSpace(spacePattern.ReplaceAllString(s, " "))
}
