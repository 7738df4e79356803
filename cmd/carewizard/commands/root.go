// Package commands defines the carewizard command tree.
package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mrsinham/carewizard/cmd/carewizard/wizard/components"
	"github.com/mrsinham/carewizard/internal/reports"
)

// Root returns the root command for the carewizard CLI.
//
// Without a subcommand it prints the home screen.
func Root() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:           "carewizard",
		Short:         "Wellness checkup, advisor and health summaries in your terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		RunE: a.run(func(cmd *cobra.Command, _ []string) error {
			return writeHome(cmd.OutOrStdout())
		}),
	}

	cmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Path to configuration file (default: carewizard.yaml)")
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(Checkup(a))
	cmd.AddCommand(Advisor(a))
	cmd.AddCommand(Reports(a))
	cmd.AddCommand(Recommendations())
	cmd.AddCommand(Version())

	return cmd
}

type quickAction struct {
	title       string
	description string
	command     string
}

var quickActions = []quickAction{
	{"Start Checkup", "Tell us about your symptoms", "carewizard checkup"},
	{"Talk to Advisor", "Chat with the wellness advisor", "carewizard advisor"},
	{"View Reports", "See your health summaries", "carewizard reports list"},
}

// writeHome prints the welcome, the quick actions and the disclaimer.
func writeHome(w io.Writer) error {
	var sb strings.Builder

	sb.WriteString(components.TitleStyle.Render("Welcome to CareWizard"))
	sb.WriteString("\n")
	sb.WriteString("Your personal wellness companion. Get insights about your health, receive\n")
	sb.WriteString("personalized recommendations, and track your wellness journey.\n\n")

	sb.WriteString(components.TitleStyle.Render("Quick actions"))
	sb.WriteString("\n")
	for _, qa := range quickActions {
		fmt.Fprintf(&sb, "  %-16s %-32s %s\n", qa.title, qa.description, components.HintStyle.Render(qa.command))
	}
	sb.WriteString("\n")
	sb.WriteString(components.DisclaimerStyle.Render(reports.Disclaimer))
	sb.WriteString("\n")

	_, err := io.WriteString(w, sb.String())
	return err
}
