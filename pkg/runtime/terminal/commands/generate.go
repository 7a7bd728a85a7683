package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

type GenerateCmd struct {
	format string
	start  string
	end    string
	out    string
	open   Opener
}

func NewGenerateCmd(open Opener) *cobra.Command {
	gc := &GenerateCmd{open: open}
	cmd := &cobra.Command{
		Use:   "generate <report-type>",
		Short: "Generate a report file (Daily Sales, Inventory, P&L Statement)",
		Args:  cobra.ExactArgs(1),
		RunE:  gc.run,
	}

	cmd.Flags().StringVar(&gc.format, "format", "pdf", "Output format: pdf, excel or csv")
	cmd.Flags().StringVar(&gc.start, "start", "", "Period start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&gc.end, "end", "", "Period end date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&gc.out, "out", ".", "Directory to write the report into")

	return cmd
}

func (gc *GenerateCmd) run(cmd *cobra.Command, args []string) error {
	period, err := parsePeriod(gc.start, gc.end)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
	defer cancel()

	session, err := gc.open(ctx)
	if err != nil {
		return err
	}
	defer session.close()

	res, err := session.Generator.Generate(ctx, args[0], gc.format, period)
	if err != nil {
		return fmt.Errorf("failed to generate %s: %w", args[0], err)
	}
	return saveResult(cmd.OutOrStdout(), gc.out, res)
}
