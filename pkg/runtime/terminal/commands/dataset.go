package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/fsms/report-atlas/pkg/services/report"
	"github.com/spf13/cobra"
)

type DatasetCmd struct {
	format string
	out    string
	open   Opener
}

func NewDatasetCmd(open Opener) *cobra.Command {
	dc := &DatasetCmd{open: open}
	cmd := &cobra.Command{
		Use:   "dataset <name>",
		Short: "Export a raw dataset (" + strings.Join(report.Datasets(), ", ") + ")",
		Args:  cobra.ExactArgs(1),
		RunE:  dc.run,
	}

	cmd.Flags().StringVar(&dc.format, "format", "excel", "Output format: excel or csv")
	cmd.Flags().StringVar(&dc.out, "out", ".", "Directory to write the dataset into")

	return cmd
}

func (dc *DatasetCmd) run(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
	defer cancel()

	session, err := dc.open(ctx)
	if err != nil {
		return err
	}
	defer session.close()

	res, err := session.Generator.ExportDataset(ctx, args[0], dc.format)
	if err != nil {
		return fmt.Errorf("failed to export dataset %s: %w", args[0], err)
	}
	return saveResult(cmd.OutOrStdout(), dc.out, res)
}
