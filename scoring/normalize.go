package scoring

import (
	"log"
	"strings"
)

// InvalidAnswerIndex marks a question whose correct answer could not be
// resolved. It can never match a submitted option index, so the question is
// still scored but is always wrong.
const InvalidAnswerIndex = -1

// StoredQuestion is the raw question shape kept on a quiz's JSON column.
// Historically the correct answer was stored either as a letter ("A"-"D")
// or as a zero-based index; some rows carry both.
type StoredQuestion struct {
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	Answer       string   `json:"answer,omitempty"`
	CorrectIndex *int     `json:"correct_index,omitempty"`
}

// CanonicalQuestion is a question after normalization. CorrectIndex is
// either a valid index into Options or InvalidAnswerIndex, and Answer is the
// matching letter (empty when unresolved).
type CanonicalQuestion struct {
	Question     string
	Options      []string
	Answer       string
	CorrectIndex int
}

// Normalize resolves the two historical answer encodings into one canonical
// record. correct_index is authoritative when present and in range; a letter
// that disagrees with it only produces a warning. Malformed questions fall
// back to InvalidAnswerIndex instead of failing the whole quiz.
func Normalize(q StoredQuestion) CanonicalQuestion {
	idx := InvalidAnswerIndex

	if q.CorrectIndex != nil && *q.CorrectIndex >= 0 && *q.CorrectIndex < len(q.Options) {
		idx = *q.CorrectIndex
		if letter, ok := letterToIndex(q.Answer, len(q.Options)); ok && letter != idx {
			log.Printf("Warning: question %q has answer=%q but correct_index=%d, keeping correct_index", q.Question, q.Answer, idx)
		}
	} else if letter, ok := letterToIndex(q.Answer, len(q.Options)); ok {
		idx = letter
	}

	return CanonicalQuestion{
		Question:     q.Question,
		Options:      q.Options,
		Answer:       indexToLetter(idx),
		CorrectIndex: idx,
	}
}

// NormalizeAll normalizes a quiz's stored question set, preserving order.
func NormalizeAll(questions []StoredQuestion) []CanonicalQuestion {
	canonical := make([]CanonicalQuestion, 0, len(questions))
	for _, q := range questions {
		canonical = append(canonical, Normalize(q))
	}
	return canonical
}

// letterToIndex converts an answer letter to its zero-based option index
// (A=0, B=1, ...). The letter must be a single character and resolve to an
// index within the option count.
func letterToIndex(answer string, optionCount int) (int, bool) {
	letter := strings.ToUpper(strings.TrimSpace(answer))
	if len(letter) != 1 {
		return InvalidAnswerIndex, false
	}
	idx := int(letter[0]) - 'A'
	if idx < 0 || idx >= optionCount {
		return InvalidAnswerIndex, false
	}
	return idx, true
}

func indexToLetter(idx int) string {
	if idx < 0 {
		return ""
	}
	return string(rune('A' + idx))
}
