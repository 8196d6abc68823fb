package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func canonicalQuiz(correctIndexes ...int) []CanonicalQuestion {
	questions := make([]CanonicalQuestion, 0, len(correctIndexes))
	for _, idx := range correctIndexes {
		questions = append(questions, CanonicalQuestion{
			Question:     "question",
			Options:      fourOptions(),
			Answer:       indexToLetter(idx),
			CorrectIndex: idx,
		})
	}
	return questions
}

func TestScoreAllCorrect(t *testing.T) {
	result := Score(canonicalQuiz(0, 1, 2, 3), []int{0, 1, 2, 3})

	assert.Equal(t, 100, result.Score)
	assert.Equal(t, 4, result.Correct)
	assert.Len(t, result.Details, 4)
	for _, d := range result.Details {
		assert.True(t, d.IsCorrect)
	}
}

func TestScoreAllWrong(t *testing.T) {
	result := Score(canonicalQuiz(0, 0, 0), []int{1, 1, 1})

	assert.Equal(t, 0, result.Score)
	assert.Equal(t, 0, result.Correct)
}

func TestScoreEmptyQuiz(t *testing.T) {
	result := Score(nil, []int{0, 1, 2})

	assert.Equal(t, 0, result.Score)
	assert.Equal(t, 0, result.Correct)
	assert.Empty(t, result.Details)
}

func TestScoreFloorsPercentage(t *testing.T) {
	// 1 of 3 correct is 33.33..., floored to 33
	result := Score(canonicalQuiz(0, 1, 2), []int{0, 0, 0})

	assert.Equal(t, 33, result.Score)
	assert.Equal(t, 1, result.Correct)

	// 2 of 3 is 66.66..., floored to 66
	result = Score(canonicalQuiz(0, 1, 2), []int{0, 1, 0})
	assert.Equal(t, 66, result.Score)
}

func TestScoreOutOfRangeSelection(t *testing.T) {
	result := Score(canonicalQuiz(0, 1, 2, 3), []int{0, 1, 9, 3})

	assert.Equal(t, 75, result.Score)
	assert.Equal(t, 3, result.Correct)

	detail := result.Details[2]
	assert.Equal(t, UnknownAnswer, detail.SelectedAnswer)
	assert.False(t, detail.IsCorrect)
	assert.Equal(t, "Option C", detail.CorrectAnswer)
}

func TestScoreLetterOnlyQuiz(t *testing.T) {
	stored := []StoredQuestion{
		{Question: "first", Options: fourOptions(), Answer: "B"},
		{Question: "second", Options: fourOptions(), Answer: "A"},
	}

	result := Score(NormalizeAll(stored), []int{1, 0})

	assert.Equal(t, 100, result.Score)
	assert.Equal(t, 2, result.Correct)
}

func TestScoreShortAnswerList(t *testing.T) {
	result := Score(canonicalQuiz(0, 1, 2, 3), []int{0, 1})

	assert.Equal(t, 50, result.Score)
	assert.Equal(t, 2, result.Correct)
	assert.Len(t, result.Details, 4)

	// Unanswered questions are recorded as unknown and wrong
	assert.Equal(t, UnknownAnswer, result.Details[2].SelectedAnswer)
	assert.False(t, result.Details[2].IsCorrect)
	assert.Equal(t, UnknownAnswer, result.Details[3].SelectedAnswer)
	assert.False(t, result.Details[3].IsCorrect)
}

func TestScoreExtraAnswersIgnored(t *testing.T) {
	result := Score(canonicalQuiz(0), []int{0, 3, 2, 1})

	assert.Equal(t, 100, result.Score)
	assert.Equal(t, 1, result.Correct)
	assert.Len(t, result.Details, 1)
}

func TestScoreUnresolvableQuestionNeverCorrect(t *testing.T) {
	questions := NormalizeAll([]StoredQuestion{
		{Question: "broken", Options: fourOptions(), Answer: "Z"},
	})

	// Not even a matching sentinel value can score the question correct
	for _, answer := range []int{-1, 0, 1, 2, 3} {
		result := Score(questions, []int{answer})
		assert.Equal(t, 0, result.Score, "answer %d", answer)
		assert.False(t, result.Details[0].IsCorrect)
	}
}

func TestScoreBounds(t *testing.T) {
	questions := canonicalQuiz(0, 1, 2, 3, 0)
	answerLists := [][]int{
		nil,
		{},
		{0},
		{0, 1, 2, 3, 0},
		{4, 4, 4, 4, 4},
		{-1, -5, 100, 2, 3},
	}

	for _, answers := range answerLists {
		result := Score(questions, answers)
		assert.GreaterOrEqual(t, result.Score, 0)
		assert.LessOrEqual(t, result.Score, 100)
		assert.Equal(t, result.Correct*100/len(questions), result.Score)
	}
}
