package services

import (
	"errors"
	"fmt"
)

// Failure signals of the transcript collaborator.
var (
	ErrTranscriptsDisabled = errors.New("transcripts are disabled for this video")
	ErrNoTranscriptFound   = errors.New("no transcript found for this video")
)

// ErrEmptyResponse is returned when the model answers without any text.
var ErrEmptyResponse = errors.New("gemini returned an empty response")

// TranscriptUnavailableMessage is the single user-facing message for both
// transcript failure signals.
const TranscriptUnavailableMessage = "Transcript not available for this video."

type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string { return "Validation error" }

// InvalidReferenceError means no video identifier could be found in the input.
type InvalidReferenceError struct{ Reference string }

func (e *InvalidReferenceError) Error() string {
	return fmt.Sprintf("no YouTube video ID found in %q", e.Reference)
}

// TranscriptUnavailableError collapses "disabled" and "not found" into one outcome.
type TranscriptUnavailableError struct {
	VideoID string
	Err     error
}

func (e *TranscriptUnavailableError) Error() string { return TranscriptUnavailableMessage }

func (e *TranscriptUnavailableError) Unwrap() error { return e.Err }
