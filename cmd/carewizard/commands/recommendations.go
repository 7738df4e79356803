package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mrsinham/carewizard/internal/recommend"
	"github.com/mrsinham/carewizard/internal/reports"
)

// Recommendations returns the command printing the wellness recommendations.
func Recommendations() *cobra.Command {
	var symptoms []string

	cmd := &cobra.Command{
		Use:   "recommendations",
		Short: "Show general wellness recommendations",
		Long: `Show the wellness recommendations and when to seek professional help.

With --symptom, only the recommendations relevant to those symptoms are shown.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			recs := recommend.Catalog
			if len(symptoms) > 0 {
				recs = recommend.ForSymptoms(symptoms)
			}
			return writeRecommendations(cmd.OutOrStdout(), recs)
		},
	}

	cmd.Flags().StringSliceVarP(&symptoms, "symptom", "s", nil, "Filter by symptom (repeatable), e.g. --symptom Headache")

	return cmd
}

func writeRecommendations(w io.Writer, recs []recommend.Recommendation) error {
	var sb strings.Builder

	sb.WriteString("Recommendations\n")
	sb.WriteString("Personalized wellness suggestions\n\n")
	for _, r := range recs {
		fmt.Fprintf(&sb, "%s [%s]\n  %s\n\n", r.Title, r.Category, r.Description)
	}

	sb.WriteString("When to seek professional help\n")
	for _, s := range recommend.WhenToSeekHelp {
		fmt.Fprintf(&sb, "  - %s\n", s)
	}
	fmt.Fprintf(&sb, "\n%s\n", reports.Disclaimer)

	_, err := io.WriteString(w, sb.String())
	return err
}
