package scoring

// UnknownAnswer is recorded in a response detail when the selected index is
// out of range or the question has no resolvable answer text.
const UnknownAnswer = "Unknown"

// ResponseDetail is the per-question audit record captured at submission
// time. It is stored with the submission and never re-derived, so later quiz
// edits cannot change how a historical score reads.
type ResponseDetail struct {
	Question       string `json:"question"`
	SelectedAnswer string `json:"selected_answer"`
	CorrectAnswer  string `json:"correct_answer"`
	IsCorrect      bool   `json:"is_correct"`
}

// Result is the outcome of scoring one submission.
type Result struct {
	Score   int // floor percentage, 0-100
	Correct int
	Details []ResponseDetail
}

// Score grades an ordered answer list against a canonical question set.
// Answers beyond the question count are ignored; questions beyond the answer
// count are unanswered and count as wrong. A zero-question quiz scores 0.
func Score(questions []CanonicalQuestion, answers []int) Result {
	correct := 0
	details := make([]ResponseDetail, 0, len(questions))

	for i, q := range questions {
		selected := UnknownAnswer
		isCorrect := false

		if i < len(answers) {
			a := answers[i]
			if a >= 0 && a < len(q.Options) {
				selected = q.Options[a]
			}
			if q.CorrectIndex != InvalidAnswerIndex && a == q.CorrectIndex {
				correct++
				isCorrect = true
			}
		}

		correctText := UnknownAnswer
		if q.CorrectIndex >= 0 && q.CorrectIndex < len(q.Options) {
			correctText = q.Options[q.CorrectIndex]
		}

		details = append(details, ResponseDetail{
			Question:       q.Question,
			SelectedAnswer: selected,
			CorrectAnswer:  correctText,
			IsCorrect:      isCorrect,
		})
	}

	percentage := 0
	if len(questions) > 0 {
		percentage = correct * 100 / len(questions)
	}

	return Result{
		Score:   percentage,
		Correct: correct,
		Details: details,
	}
}
