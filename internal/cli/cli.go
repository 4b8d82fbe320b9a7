package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"transcript-ai/internal/models"
	"transcript-ai/internal/services"
)

// Summarizer is the part of services.Summarizer the commands use.
type Summarizer interface {
	FetchTranscript(ctx context.Context, reference string) (string, string, error)
	Summarize(ctx context.Context, req models.SummaryRequest) (*models.SummaryResult, error)
}

// Factory builds the summarizer on demand so that help and the options
// listing never need credentials. needGenerator is false for transcript-only
// commands. The returned cleanup func may be nil.
type Factory func(needGenerator bool) (Summarizer, func(), error)

var (
	successColor = color.New(color.FgGreen)
	errorColor   = color.New(color.FgRed)
)

func NewRootCommand(factory Factory) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "transcript-ai",
		Short:         "Summarize YouTube videos from their transcripts",
		Long:          "Fetches the caption transcript of a YouTube video and asks Gemini for a bullet-point summary.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newSummarizeCommand(factory))
	rootCmd.AddCommand(newTranscriptCommand(factory))
	rootCmd.AddCommand(newOptionsCommand())

	return rootCmd
}

func newSummarizeCommand(factory Factory) *cobra.Command {
	var (
		words    int
		language string
		outFile  string
	)

	cmd := &cobra.Command{
		Use:   "summarize <youtube-url>",
		Short: "Fetch the transcript and summarize a YouTube video",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, cleanup, err := factory(true)
			if err != nil {
				return reportError(cmd.ErrOrStderr(), err)
			}
			if cleanup != nil {
				defer cleanup()
			}

			req := models.SummaryRequest{
				URL:            args[0],
				SummaryOptions: models.SummaryOptions{WordLimit: words, Language: language},
			}

			result, err := s.Summarize(cmd.Context(), req)
			if err != nil {
				return reportError(cmd.ErrOrStderr(), err)
			}

			successColor.Fprintln(cmd.ErrOrStderr(), "✅ Summary generated!")
			fmt.Fprintln(cmd.OutOrStdout(), result.Summary)

			if outFile != "" {
				if err := writeSummaryFile(outFile, result.Summary); err != nil {
					return reportError(cmd.ErrOrStderr(), err)
				}
				successColor.Fprintf(cmd.ErrOrStderr(), "📥 Summary saved to %s\n", outFile)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&words, "words", "w", models.DefaultWordLimit, "Summary length in words ("+joinInts(models.WordLimits)+")")
	cmd.Flags().StringVarP(&language, "lang", "l", models.DefaultLanguage, "Summary language ("+strings.Join(models.Languages, ", ")+")")
	cmd.Flags().StringVarP(&outFile, "out", "o", "", "Also write the summary to this file (e.g. "+models.SummaryFileName+")")

	return cmd
}

func newTranscriptCommand(factory Factory) *cobra.Command {
	return &cobra.Command{
		Use:   "transcript <youtube-url>",
		Short: "Fetch and print the transcript only",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, cleanup, err := factory(false)
			if err != nil {
				return reportError(cmd.ErrOrStderr(), err)
			}
			if cleanup != nil {
				defer cleanup()
			}

			_, transcript, err := s.FetchTranscript(cmd.Context(), args[0])
			if err != nil {
				return reportError(cmd.ErrOrStderr(), err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), transcript)
			return nil
		},
	}
}

func newOptionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "options",
		Short: "List the supported summary lengths and languages",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Summary lengths: %s (default %d)\n", joinInts(models.WordLimits), models.DefaultWordLimit)
			fmt.Fprintf(out, "Languages:       %s (default %s)\n", strings.Join(models.Languages, ", "), models.DefaultLanguage)
		},
	}
}

// reportError prints the user-facing message for recognized failures and
// returns the error so the process exits non-zero.
func reportError(w io.Writer, err error) error {
	var (
		validationErr  *services.ValidationError
		referenceErr   *services.InvalidReferenceError
		unavailableErr *services.TranscriptUnavailableError
	)

	switch {
	case errors.As(err, &validationErr):
		for field, msg := range validationErr.Fields {
			errorColor.Fprintf(w, "⚠️ %s %s\n", field, msg)
		}
	case errors.As(err, &referenceErr):
		errorColor.Fprintln(w, "⚠️ Could not find a YouTube video ID in the URL.")
	case errors.As(err, &unavailableErr):
		errorColor.Fprintln(w, "⚠️ "+services.TranscriptUnavailableMessage)
	default:
		errorColor.Fprintf(w, "⚠️ %v\n", err)
	}
	return err
}

func writeSummaryFile(path, summary string) error {
	if err := os.WriteFile(path, []byte(summary), 0o644); err != nil {
		return fmt.Errorf("failed to write summary file: %w", err)
	}
	return nil
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, ", ")
}
