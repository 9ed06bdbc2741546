package cmd

import (
	"fmt"
	"strings"

	"github.com/saulo-duarte/adaptive-tutor/internal/adaptive"
	"github.com/saulo-duarte/adaptive-tutor/internal/container"
	"github.com/saulo-duarte/adaptive-tutor/internal/content"
	"github.com/saulo-duarte/adaptive-tutor/internal/ingest"
	"github.com/spf13/cobra"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest <pdf-directory> [topic]",
	Short: "Embed and store every PDF in a directory",
	Example: `  tutorctl ingest ./pdfs/math "Quadratic Equations"
  tutorctl ingest ./pdfs/chemistry Chemistry --difficulty easy`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := ingestOptions(cmd, args)
		if err != nil {
			return err
		}

		c, err := container.New(cmd.Context(), settings(cmd))
		if err != nil {
			return err
		}

		summary, err := c.Ingest.IngestDirectory(cmd.Context(), args[0], opts)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Summary:")
		fmt.Fprintf(out, "- Documents processed: %d\n", summary.Documents)
		if len(summary.FailedFiles) > 0 {
			fmt.Fprintf(out, "- Documents failed: %v\n", summary.FailedFiles)
		}
		fmt.Fprintf(out, "- Chunks stored: %d (skipped %d, failed %d)\n", summary.Stored, summary.Skipped, summary.Failed)
		fmt.Fprintf(out, "- Content items for %q: %d\n", opts.Topic, summary.TopicTotal)
		return nil
	},
}

func ingestOptions(cmd *cobra.Command, args []string) (ingest.Options, error) {
	opts := ingest.Options{Topic: "General"}
	if len(args) == 2 {
		opts.Topic = args[1]
	}

	typ, _ := cmd.Flags().GetString("type")
	opts.Type = content.Type(strings.ToLower(strings.TrimSpace(typ)))
	if !opts.Type.IsValid() {
		return opts, fmt.Errorf("invalid --type %q: want explanation, question or misconception", typ)
	}

	diff, _ := cmd.Flags().GetString("difficulty")
	d, ok := adaptive.ParseDifficulty(diff)
	if !ok {
		return opts, fmt.Errorf("invalid --difficulty %q: want easy, medium or hard", diff)
	}
	opts.Difficulty = d
	return opts, nil
}

func init() {
	ingestCmd.Flags().String("type", string(content.TypeExplanation), "Content type: explanation, question or misconception")
	ingestCmd.Flags().String("difficulty", string(adaptive.Medium), "Difficulty: easy, medium or hard")
}
