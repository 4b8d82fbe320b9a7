package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"transcript-ai/internal/models"
)

type SummaryHandler struct {
	summarizer summarizer
	timeout    time.Duration
}

type summarizer interface {
	Summarize(ctx context.Context, req models.SummaryRequest) (*models.SummaryResult, error)
}

// NewSummaryHandler builds the summary endpoints. A zero timeout leaves the
// request bounded only by the collaborators themselves.
func NewSummaryHandler(s summarizer, timeout time.Duration) *SummaryHandler {
	return &SummaryHandler{summarizer: s, timeout: timeout}
}

// generateRequest distinguishes an omitted option from an explicit zero value.
type generateRequest struct {
	URL       string  `json:"url"`
	WordLimit *int    `json:"word_limit"`
	Language  *string `json:"language"`
}

// toSummaryRequest applies the defaults to omitted options only. Explicit
// values are passed through and validated by the summarizer.
func (g generateRequest) toSummaryRequest() models.SummaryRequest {
	req := models.SummaryRequest{URL: g.URL, SummaryOptions: models.DefaultSummaryOptions()}
	if g.WordLimit != nil {
		req.WordLimit = *g.WordLimit
	}
	if g.Language != nil {
		req.Language = *g.Language
	}
	return req
}

func (h *SummaryHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var body generateRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}
	req := body.toSummaryRequest()

	ctx := r.Context()
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	result, err := h.summarizer.Summarize(ctx, req)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Download returns the (possibly edited) summary as a plain-text attachment.
func (h *SummaryHandler) Download(w http.ResponseWriter, r *http.Request) {
	var req models.DownloadRequest
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid form body", r))
			return
		}
		req.Summary = r.FormValue("summary")
	}

	if strings.TrimSpace(req.Summary) == "" {
		writeJSON(w, http.StatusBadRequest, errorRespWithFields("VALIDATION_ERROR", "Validation failed",
			map[string]string{"summary": "is required"}, r))
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, models.SummaryFileName))
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(req.Summary))
}
