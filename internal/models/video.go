package models

// VideoPreview is what the page shows before a summary is generated.
// Metadata fields are best effort and may be empty.
type VideoPreview struct {
	VideoID         string `json:"video_id"`
	ThumbnailURL    string `json:"thumbnail_url"`
	Title           string `json:"title,omitempty"`
	Author          string `json:"author,omitempty"`
	DurationSeconds int    `json:"duration_seconds,omitempty"`
}
