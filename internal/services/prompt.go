package services

import (
	"fmt"
	"slices"
	"strings"

	"transcript-ai/internal/models"
)

const summaryPromptFormat = "You are a YouTube video summarizer. Please summarize the following transcript into key bullet points within %d words. The summary should be in %s.\n\n%s"

// BuildPrompt renders the summarization instruction followed by the raw
// transcript. The transcript is appended as-is, without escaping.
func BuildPrompt(transcript string, wordLimit int, language string) string {
	return fmt.Sprintf(summaryPromptFormat, wordLimit, language, transcript)
}

// ValidateOptions checks word limit and language against the recognized options.
func ValidateOptions(wordLimit int, language string) error {
	fields := map[string]string{}

	if !slices.Contains(models.WordLimits, wordLimit) {
		limits := make([]string, len(models.WordLimits))
		for i, l := range models.WordLimits {
			limits[i] = fmt.Sprint(l)
		}
		fields["word_limit"] = "must be one of " + strings.Join(limits, ", ")
	}
	if !slices.Contains(models.Languages, language) {
		fields["language"] = "must be one of " + strings.Join(models.Languages, ", ")
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
