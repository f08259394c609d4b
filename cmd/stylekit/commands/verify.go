package commands

import "github.com/spf13/cobra"

func (c *CLI) newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Lint the fixture and fail if the linter reports errors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Verify(cmd.Context(), runOptions(cmd))
		},
	}
}
