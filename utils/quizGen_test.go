package utils

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncateToRuneBoundary(t *testing.T) {
	tests := []struct {
		name string
		text string
		max  int
		want string
	}{
		{name: "shorter than max untouched", text: "hello", max: 10, want: "hello"},
		{name: "ascii cut exactly at max", text: "hello world", max: 5, want: "hello"},
		{name: "multi-byte rune not split", text: "abécd", max: 3, want: "ab"},
		{name: "cut lands after full rune", text: "abécd", max: 4, want: "abé"},
		{name: "three-byte rune at boundary", text: "a€", max: 2, want: "a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncateToRuneBoundary(tt.text, tt.max)
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
			assert.LessOrEqual(t, len(got), tt.max)
		})
	}
}

func TestTruncateToRuneBoundaryKeepsLongTextValid(t *testing.T) {
	text := strings.Repeat("é", maxSourceChars) // 2 bytes each

	got := truncateToRuneBoundary(text, maxSourceChars)
	assert.True(t, utf8.ValidString(got))
	assert.LessOrEqual(t, len(got), maxSourceChars)
}

func TestParseGeneratedQuestions(t *testing.T) {
	raw := "```json\n[{\"question\": \"What is Go?\", \"options\": [\"a\", \"b\", \"c\", \"d\"], \"answer\": \"A\"}]\n```"

	questions, err := parseGeneratedQuestions(raw)
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, "What is Go?", questions[0].Question)
	assert.Equal(t, "A", questions[0].Answer)
}

func TestParseGeneratedQuestionsDropsBrokenEntries(t *testing.T) {
	raw := `[
		{"question": "kept", "options": ["a", "b", "c", "d"], "answer": "B"},
		{"question": "", "options": ["a", "b", "c", "d"], "answer": "A"},
		{"question": "three options", "options": ["a", "b", "c"], "answer": "A"}
	]`

	questions, err := parseGeneratedQuestions(raw)
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, "kept", questions[0].Question)
}

func TestParseGeneratedQuestionsAllBroken(t *testing.T) {
	_, err := parseGeneratedQuestions(`[{"question": "", "options": []}]`)
	assert.Error(t, err)

	_, err = parseGeneratedQuestions("not json at all")
	assert.Error(t, err)
}
