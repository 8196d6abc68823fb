package utils

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"unicode/utf8"

	"learntrack/config"
	"learntrack/scoring"

	"github.com/go-resty/resty/v2"
)

const maxSourceChars = 30000

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// GenerateQuizQuestions asks the Gemini API for multiple-choice questions
// built from the given source text. The model answers with letter-encoded
// questions; they are stored as-is and normalized at scoring time like any
// other question set.
func GenerateQuizQuestions(text string, numQuestions int) ([]scoring.StoredQuestion, error) {
	cfg := config.AppConfig
	if cfg.GeminiApiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not configured")
	}

	if len(text) > maxSourceChars {
		log.Printf("Quiz source text too long (%d chars), truncating to %d", len(text), maxSourceChars)
		text = truncateToRuneBoundary(text, maxSourceChars)
	}

	prompt := buildQuizPrompt(text, numQuestions)

	client := resty.New()
	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetQueryParam("key", cfg.GeminiApiKey).
		SetBody(geminiRequest{
			Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
		}).
		Post(cfg.GeminiApiURL)
	if err != nil {
		return nil, fmt.Errorf("gemini request failed: %w", err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("gemini request failed with status %d: %s", resp.StatusCode(), resp.String())
	}

	var parsed geminiResponse
	if err := json.Unmarshal(resp.Body(), &parsed); err != nil {
		return nil, fmt.Errorf("invalid gemini response: %w", err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("gemini returned no candidates")
	}

	questions, err := parseGeneratedQuestions(parsed.Candidates[0].Content.Parts[0].Text)
	if err != nil {
		return nil, err
	}

	if len(questions) > numQuestions {
		questions = questions[:numQuestions]
	}
	if len(questions) < numQuestions {
		log.Printf("Generated only %d questions instead of %d", len(questions), numQuestions)
	}

	return questions, nil
}

// truncateToRuneBoundary cuts text to at most max bytes without splitting a
// multi-byte UTF-8 character at the cut point.
func truncateToRuneBoundary(text string, max int) string {
	if len(text) <= max {
		return text
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut]
}

func buildQuizPrompt(text string, numQuestions int) string {
	return fmt.Sprintf(`Based on this text, generate exactly %d multiple-choice questions in JSON format.

TEXT:
%s

REQUIREMENTS:
1. Each question must have exactly 4 options
2. Only ONE option is correct
3. The "answer" field must contain only the letter (A, B, C, or D)

OUTPUT FORMAT (pure JSON array, no markdown, no code blocks):
[{"question": "...", "options": ["...", "...", "...", "..."], "answer": "A"}]`, numQuestions, text)
}

// parseGeneratedQuestions decodes the model output, tolerating markdown code
// fences around the JSON array. Structurally broken questions are dropped;
// semantically broken answers are left to the scoring normalizer.
func parseGeneratedQuestions(raw string) ([]scoring.StoredQuestion, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var questions []scoring.StoredQuestion
	if err := json.Unmarshal([]byte(cleaned), &questions); err != nil {
		return nil, fmt.Errorf("could not parse generated questions: %w", err)
	}

	valid := questions[:0]
	for _, q := range questions {
		if strings.TrimSpace(q.Question) == "" || len(q.Options) != 4 {
			continue
		}
		valid = append(valid, q)
	}

	if len(valid) == 0 {
		return nil, fmt.Errorf("no usable questions in generated output")
	}
	return valid, nil
}
