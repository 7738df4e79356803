package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mrsinham/carewizard/cmd/carewizard/wizard"
	"github.com/mrsinham/carewizard/internal/advisor"
)

// Advisor returns the command opening the advisor chat.
func Advisor(a *app) *cobra.Command {
	return &cobra.Command{
		Use:         "advisor",
		Short:       "Chat with the wellness advisor",
		Annotations: map[string]string{interactiveAnnotation: "true"},
		RunE: a.run(func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := context.WithCancel(cmd.Context())

			responder, err := a.responder(ctx)
			if err != nil {
				cancel()
				return err
			}

			conv := advisor.NewConversation(responder, a.logger)
			defer conv.Wait()
			defer cancel()

			return wizard.RunAdvisor(ctx, conv, a.logger)
		}),
	}
}
