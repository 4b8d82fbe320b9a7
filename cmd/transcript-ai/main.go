package main

import (
	"context"
	"fmt"
	"os"

	"transcript-ai/internal/cli"
	"transcript-ai/internal/config"
	"transcript-ai/internal/services"
)

func main() {
	if err := cli.NewRootCommand(newSummarizer).Execute(); err != nil {
		os.Exit(1)
	}
}

// newSummarizer wires the real collaborators. The Gemini client is only
// created when a command needs it, so `transcript` works without an API key.
func newSummarizer(needGenerator bool) (cli.Summarizer, func(), error) {
	if !needGenerator {
		youtubeService := services.NewYouTubeService(config.TranscriptLanguagesFromEnv())
		return services.NewSummarizer(youtubeService, nil), nil, nil
	}

	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	geminiService, err := services.NewGeminiService(context.Background(), cfg.GoogleAPIKey, cfg.GeminiModel)
	if err != nil {
		return nil, nil, err
	}

	youtubeService := services.NewYouTubeService(cfg.TranscriptLanguages)
	return services.NewSummarizer(youtubeService, geminiService), geminiService.Close, nil
}

// loadConfig turns the startup panic for a missing variable into an error.
func loadConfig() (cfg *config.Config, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	return config.Load(), nil
}
