package commands

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mrsinham/carewizard/internal/reports"
)

// Export formats.
const (
	formatYAML = "yaml"
	formatPNG  = "png"
)

// Reports returns the command group for saved health summaries.
func Reports(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reports",
		Short: "List, show and export your health summaries",
	}

	cmd.AddCommand(reportsList(a))
	cmd.AddCommand(reportsShow(a))
	cmd.AddCommand(reportsExport(a))
	cmd.AddCommand(reportsSeed(a))

	return cmd
}

func reportsList(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List health summaries, newest first",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, _ []string) error {
			store, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			list, err := store.List(cmd.Context())
			if err != nil {
				return err
			}
			return writeReportList(cmd.OutOrStdout(), list)
		}),
	}
}

func reportsShow(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show one health summary",
		Args:  cobra.ExactArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			r, err := store.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return writeReport(cmd.OutOrStdout(), r)
		}),
	}
}

func reportsExport(a *app) *cobra.Command {
	var format string
	var out string

	cmd := &cobra.Command{
		Use:   "export ID",
		Short: "Export a health summary as YAML or as a PNG card",
		Args:  cobra.ExactArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			format = strings.ToLower(format)
			if format != formatYAML && format != formatPNG {
				return fmt.Errorf("unsupported format %q (use %s or %s)", format, formatYAML, formatPNG)
			}

			store, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			r, err := store.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if out == "" {
				out = r.ID + "." + format
			}
			if err := exportReport(r, format, out); err != nil {
				return err
			}

			a.logger.Info("report exported", zap.String("report", r.ID), zap.String("format", format), zap.String("path", out))
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %s to %s\n", r.ID, out)
			return nil
		}),
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatYAML, "Export format: yaml or png")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default: ID.format)")

	return cmd
}

func exportReport(r reports.Report, format, path string) error {
	if format == formatYAML {
		return reports.SaveToYAML(r, path)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if err := reports.RenderPNG(f, r); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func reportsSeed(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Store the sample health summaries",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, _ []string) error {
			store, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			if err := reports.Seed(cmd.Context(), store); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Stored %d sample reports\n", len(reports.SampleReports()))
			return nil
		}),
	}
}

func writeReportList(w io.Writer, list []reports.Report) error {
	if len(list) == 0 {
		_, err := fmt.Fprintln(w, "No reports yet. Run 'carewizard checkup' to create one.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDATE\tSYMPTOMS\tRECOMMENDATIONS")
	for _, r := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", r.ID, r.DisplayDate(), strings.Join(r.Symptoms, ", "), len(r.Recommendations))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "\n%s\n", reports.Disclaimer)
	return err
}

func writeReport(w io.Writer, r reports.Report) error {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Health Summary - %s (%s)\n\n", r.DisplayDate(), r.ID)
	if r.Name != "" {
		fmt.Fprintf(&sb, "Name:            %s\n", r.Name)
	}
	fmt.Fprintf(&sb, "Symptoms:        %s\n", strings.Join(r.Symptoms, ", "))
	if r.OtherSymptoms != "" {
		fmt.Fprintf(&sb, "Other symptoms:  %s\n", r.OtherSymptoms)
	}
	if r.Willingness != "" {
		fmt.Fprintf(&sb, "Willingness:     %s\n", r.Willingness)
	}
	if r.CurePreference != "" {
		fmt.Fprintf(&sb, "Cure preference: %s\n", r.CurePreference)
	}

	sb.WriteString("\nRecommendations:\n")
	for _, rec := range r.Recommendations {
		fmt.Fprintf(&sb, "  - %s\n", rec)
	}
	fmt.Fprintf(&sb, "\n%s\n", reports.Disclaimer)

	_, err := io.WriteString(w, sb.String())
	return err
}
