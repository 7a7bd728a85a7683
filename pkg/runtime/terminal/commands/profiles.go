package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// ProfileLister returns the names of the configured API profiles.
type ProfileLister func(ctx context.Context) ([]string, error)

func NewProfilesCmd(list ProfileLister) *cobra.Command {
	return &cobra.Command{
		Use:   "profiles",
		Short: "List configured API profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			profiles, err := list(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list profiles: %w", err)
			}
			if len(profiles) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No profiles configured")
				return nil
			}
			for _, p := range profiles {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}
}
