package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"transcript-ai/internal/models"
)

// TranscriptSource fetches the caption text for a video ID.
type TranscriptSource interface {
	GetTranscript(ctx context.Context, videoID string) (string, error)
}

// TextGenerator turns a prompt into response text.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Summarizer runs extract -> fetch transcript -> build prompt -> generate.
// It holds no per-request state and can be shared.
type Summarizer struct {
	transcripts TranscriptSource
	generator   TextGenerator
}

func NewSummarizer(transcripts TranscriptSource, generator TextGenerator) *Summarizer {
	return &Summarizer{
		transcripts: transcripts,
		generator:   generator,
	}
}

// FetchTranscript resolves the reference to a video ID and loads its transcript.
// Both transcript failure signals, and an empty transcript, come back as a
// *TranscriptUnavailableError.
func (s *Summarizer) FetchTranscript(ctx context.Context, reference string) (string, string, error) {
	videoID, ok := ExtractVideoID(reference)
	if !ok {
		return "", "", &InvalidReferenceError{Reference: reference}
	}

	transcript, err := s.transcripts.GetTranscript(ctx, videoID)
	if err != nil {
		if errors.Is(err, ErrTranscriptsDisabled) || errors.Is(err, ErrNoTranscriptFound) {
			log.Printf("Transcript unavailable for %s: %v", videoID, err)
			return videoID, "", &TranscriptUnavailableError{VideoID: videoID, Err: err}
		}
		return videoID, "", err
	}
	if transcript == "" {
		return videoID, "", &TranscriptUnavailableError{VideoID: videoID}
	}

	return videoID, transcript, nil
}

// Summarize produces a bullet-point summary for the video behind req.URL.
// The word limit is passed to the model as an instruction only.
func (s *Summarizer) Summarize(ctx context.Context, req models.SummaryRequest) (*models.SummaryResult, error) {
	if err := ValidateOptions(req.WordLimit, req.Language); err != nil {
		return nil, err
	}

	videoID, transcript, err := s.FetchTranscript(ctx, req.URL)
	if err != nil {
		return nil, err
	}

	prompt := BuildPrompt(transcript, req.WordLimit, req.Language)

	summary, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("summary generation failed for %s: %w", videoID, err)
	}

	log.Printf("Summary generated for %s (%d words requested, %s)", videoID, req.WordLimit, req.Language)

	return &models.SummaryResult{
		VideoID:      videoID,
		ThumbnailURL: ThumbnailURL(videoID),
		WordLimit:    req.WordLimit,
		Language:     req.Language,
		Summary:      summary,
	}, nil
}
