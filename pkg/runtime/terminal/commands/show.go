package commands

import (
	"context"
	"fmt"

	"github.com/fsms/report-atlas/pkg/runtime/terminal/export"
	"github.com/fsms/report-atlas/pkg/services/dashboard"
	"github.com/spf13/cobra"
)

type ShowCmd struct {
	start string
	end   string
	open  Opener
}

func NewShowCmd(open Opener) *cobra.Command {
	sc := &ShowCmd{open: open}
	cmd := &cobra.Command{
		Use:   "show [overview|sales|inventory|financial]",
		Short: "Print the dashboard, or a single tab of it",
		Args:  cobra.MaximumNArgs(1),
		RunE:  sc.run,
	}

	cmd.Flags().StringVar(&sc.start, "start", "", "Period start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&sc.end, "end", "", "Period end date (YYYY-MM-DD)")

	return cmd
}

func (sc *ShowCmd) run(cmd *cobra.Command, args []string) error {
	period, err := parsePeriod(sc.start, sc.end)
	if err != nil {
		return err
	}
	var tab dashboard.Tab
	if len(args) == 1 {
		if tab, err = dashboard.ParseTab(args[0]); err != nil {
			return err
		}
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
	defer cancel()

	session, err := sc.open(ctx)
	if err != nil {
		return err
	}
	defer session.close()

	var state dashboard.State
	if tab == "" {
		state, err = session.Dashboard.LoadAll(ctx, period)
	} else {
		state, err = session.Dashboard.LoadTab(ctx, string(tab), period)
	}
	if err != nil {
		return fmt.Errorf("failed to load dashboard: %w", err)
	}

	return export.NewReporter(cmd.OutOrStdout()).WithCurrency(session.Currency).Tab(tab, state)
}
