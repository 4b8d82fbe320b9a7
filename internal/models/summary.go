package models

const (
	DefaultWordLimit = 250
	DefaultLanguage  = "English"

	// SummaryFileName is the name offered when the summary is exported.
	SummaryFileName = "video_summary.txt"
)

// WordLimits and Languages are the recognized summary options, in display order.
var (
	WordLimits = []int{100, 250, 500}
	Languages  = []string{"English", "Hindi", "Spanish", "French", "German"}
)

type SummaryOptions struct {
	WordLimit int    `json:"word_limit"`
	Language  string `json:"language"`
}

func DefaultSummaryOptions() SummaryOptions {
	return SummaryOptions{WordLimit: DefaultWordLimit, Language: DefaultLanguage}
}

type SummaryRequest struct {
	URL string `json:"url"`
	SummaryOptions
}

type SummaryResult struct {
	VideoID      string `json:"video_id"`
	ThumbnailURL string `json:"thumbnail_url"`
	WordLimit    int    `json:"word_limit"`
	Language     string `json:"language"`
	Summary      string `json:"summary"`
}

type DownloadRequest struct {
	Summary string `json:"summary"`
}

type OptionsResponse struct {
	WordLimits       []int    `json:"word_limits"`
	Languages        []string `json:"languages"`
	DefaultWordLimit int      `json:"default_word_limit"`
	DefaultLanguage  string   `json:"default_language"`
}
