package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"

	ytapi "github.com/hightemp/youtube-transcript-api-go/api"
	yterrors "github.com/hightemp/youtube-transcript-api-go/errors"
	yt "github.com/kkdai/youtube/v2"

	"transcript-ai/internal/models"
)

// videoIDPattern matches "v=" or "/" followed by an 11 character video ID.
// It is deliberately permissive: any path segment of 11 valid characters matches.
var videoIDPattern = regexp.MustCompile(`(?:v=|/)([0-9A-Za-z_-]{11})`)

// ExtractVideoID returns the first video ID found in reference.
func ExtractVideoID(reference string) (string, bool) {
	m := videoIDPattern.FindStringSubmatch(reference)
	if len(m) < 2 {
		return "", false
	}
	return m[1], true
}

func ThumbnailURL(videoID string) string {
	return fmt.Sprintf("http://img.youtube.com/vi/%s/0.jpg", videoID)
}

type fetchFunc func(videoID string, languages []string) ([]string, error)

type YouTubeService struct {
	languages []string
	fetch     fetchFunc
	ytClient  *yt.Client
}

func NewYouTubeService(languages []string) *YouTubeService {
	transcriptAPI := ytapi.NewYouTubeTranscriptApi()
	return &YouTubeService{
		languages: languages,
		fetch: func(videoID string, languages []string) ([]string, error) {
			transcript, err := transcriptAPI.GetTranscript(videoID, languages)
			if err != nil {
				return nil, err
			}
			texts := make([]string, 0, len(transcript.Entries))
			for _, entry := range transcript.Entries {
				texts = append(texts, entry.Text)
			}
			return texts, nil
		},
		ytClient: &yt.Client{},
	}
}

// GetTranscript fetches the caption track for a video and joins the fragment
// texts with single spaces, in the order returned. The transcript library takes
// no context, so ctx is only checked before the fetch starts.
func (s *YouTubeService) GetTranscript(ctx context.Context, videoID string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	fragments, err := s.fetch(videoID, s.languages)
	if err != nil {
		return "", classifyTranscriptError(videoID, err)
	}

	log.Printf("Transcript for %s: %d caption fragments", videoID, len(fragments))
	return strings.Join(fragments, " "), nil
}

const (
	transcriptsDisabledMessage = "Transcripts are disabled for this video"
	noTranscriptFoundPrefix    = "No transcript found"
)

// classifyTranscriptError maps the transcript library's failures onto the two
// recognized signals. Only the error message is inspected, never the video ID.
// "No transcripts available" is not one of them and propagates like any other
// failure.
func classifyTranscriptError(videoID string, err error) error {
	var transcriptErr *yterrors.TranscriptError
	if errors.As(err, &transcriptErr) {
		switch {
		case transcriptErr.Message == transcriptsDisabledMessage:
			return fmt.Errorf("%w: %s: %v", ErrTranscriptsDisabled, videoID, err)
		case strings.HasPrefix(transcriptErr.Message, noTranscriptFoundPrefix):
			return fmt.Errorf("%w: %s: %v", ErrNoTranscriptFound, videoID, err)
		}
	}
	return fmt.Errorf("failed to fetch transcript for %s: %w", videoID, err)
}

// GetVideoMetadata loads title, author and duration for the preview card.
func (s *YouTubeService) GetVideoMetadata(ctx context.Context, videoID string) (*models.VideoPreview, error) {
	preview := &models.VideoPreview{
		VideoID:      videoID,
		ThumbnailURL: ThumbnailURL(videoID),
	}

	video, err := s.ytClient.GetVideoContext(ctx, videoID)
	if err != nil {
		return preview, fmt.Errorf("failed to fetch YouTube video metadata: %w", err)
	}

	preview.Title = video.Title
	preview.Author = video.Author
	preview.DurationSeconds = int(video.Duration.Seconds())
	return preview, nil
}
