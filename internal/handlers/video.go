package handlers

import (
	"context"
	"log"
	"net/http"

	"transcript-ai/internal/models"
	"transcript-ai/internal/services"
)

type VideoHandler struct {
	metadata videoMetadata
}

type videoMetadata interface {
	GetVideoMetadata(ctx context.Context, videoID string) (*models.VideoPreview, error)
}

func NewVideoHandler(metadata videoMetadata) *VideoHandler {
	return &VideoHandler{metadata: metadata}
}

// Preview resolves the video ID and thumbnail for a URL. Title and author are
// added when the metadata lookup succeeds.
func (h *VideoHandler) Preview(w http.ResponseWriter, r *http.Request) {
	url := r.URL.Query().Get("url")

	videoID, ok := services.ExtractVideoID(url)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResp("INVALID_VIDEO_URL", "Could not find a YouTube video ID in the URL", r))
		return
	}

	preview := &models.VideoPreview{
		VideoID:      videoID,
		ThumbnailURL: services.ThumbnailURL(videoID),
	}

	if h.metadata != nil {
		meta, err := h.metadata.GetVideoMetadata(r.Context(), videoID)
		if err != nil {
			log.Printf("preview metadata for %s unavailable: %v", videoID, err)
		} else if meta != nil {
			preview = meta
		}
	}

	writeJSON(w, http.StatusOK, preview)
}
