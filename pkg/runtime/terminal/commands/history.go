package commands

import (
	"context"
	"fmt"

	"github.com/fsms/report-atlas/pkg/models/store"
	"github.com/fsms/report-atlas/pkg/runtime/terminal/export"
	"github.com/spf13/cobra"
)

type HistoryCmd struct {
	reportType string
	limit      int
	open       Opener
}

func NewHistoryCmd(open Opener) *cobra.Command {
	hc := &HistoryCmd{open: open}
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List previously generated exports",
		Args:  cobra.NoArgs,
		RunE:  hc.run,
	}

	cmd.Flags().StringVar(&hc.reportType, "report-type", "", "Only show exports of this report type")
	cmd.Flags().IntVar(&hc.limit, "limit", 20, "Maximum number of exports to show")

	return cmd
}

func (hc *HistoryCmd) run(cmd *cobra.Command, _ []string) error {
	if hc.limit <= 0 {
		return fmt.Errorf("--limit must be positive, got %d", hc.limit)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
	defer cancel()

	session, err := hc.open(ctx)
	if err != nil {
		return err
	}
	defer session.close()

	records, err := session.History.List(ctx, store.ExportFilter{ReportType: hc.reportType, Limit: hc.limit})
	if err != nil {
		return fmt.Errorf("failed to list export history: %w", err)
	}
	return export.NewReporter(cmd.OutOrStdout()).History(records)
}
