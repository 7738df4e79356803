package commands

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mrsinham/carewizard/cmd/carewizard/wizard"
	"github.com/mrsinham/carewizard/internal/advisor"
	"github.com/mrsinham/carewizard/internal/onboarding"
	"github.com/mrsinham/carewizard/internal/reports"
)

// Checkup returns the command running the interactive health checkup.
func Checkup(a *app) *cobra.Command {
	var skipAdvisor bool

	cmd := &cobra.Command{
		Use:   "checkup",
		Short: "Answer the four-step health checkup",
		Long: `Walk through the checkup: basic info, symptoms, history and willingness.

On submit a health summary is saved to your reports. The advisor chat then
opens with your answers as context, unless --no-advisor is set.`,
		Annotations: map[string]string{interactiveAnnotation: "true"},
		RunE: a.run(func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			store, err := a.openStore(ctx)
			if err != nil {
				return err
			}

			recorder := reports.NewRecorder(store, a.logger)
			defer recorder.Close()

			session := onboarding.New(recorder)
			a.logger.Info("checkup started", zap.String("session", session.ID()))

			opts := wizard.Options{
				Session: session,
				Results: recorder.Results(),
				Logger:  a.logger,
			}
			if !skipAdvisor {
				responder, err := a.responder(ctx)
				if err != nil {
					return err
				}
				conv := advisor.NewConversation(responder, a.logger)
				// replies still in flight are cancelled, then drained
				defer conv.Wait()
				defer cancel()
				opts.Conversation = conv
			}

			return wizard.Run(ctx, opts)
		}),
	}

	cmd.Flags().BoolVar(&skipAdvisor, "no-advisor", false, "Exit after the summary instead of opening the advisor")

	return cmd
}
