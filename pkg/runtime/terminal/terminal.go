package terminal

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fsms/report-atlas/pkg/runtime/app"
	"github.com/fsms/report-atlas/pkg/runtime/terminal/commands"
	"github.com/fsms/report-atlas/pkg/services/config"
	"github.com/spf13/cobra"
)

// OpenFunc builds a session from the global flags.
type OpenFunc func(ctx context.Context, cfg app.Config) (*commands.Session, error)

// CLI represents the command-line interface
type CLI struct {
	config  app.Config
	open    OpenFunc
	output  io.Writer
	rootCmd *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Output io.Writer
	Open   OpenFunc
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Open == nil {
		opts.Open = OpenApp
	}

	cli := &CLI{
		open:   opts.Open,
		output: opts.Output,
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute(ctx context.Context) error {
	return cli.rootCmd.ExecuteContext(ctx)
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "fsms-reports",
		Short:         "Fuel station reports and exports",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(cli.output)

	cmd.PersistentFlags().StringVar(&cli.config.ProfilesPath, "config", "", "Path to the API profiles file (default ~/.fsmscfg)")
	cmd.PersistentFlags().StringVar(&cli.config.Profile, "profile", "", "API profile to use")
	cmd.PersistentFlags().StringVar(&cli.config.SettingsPath, "settings", "", "Path to the settings file")

	opener := func(ctx context.Context) (*commands.Session, error) {
		return cli.open(ctx, cli.config)
	}

	cmd.AddCommand(commands.NewGenerateCmd(opener))
	cmd.AddCommand(commands.NewDatasetCmd(opener))
	cmd.AddCommand(commands.NewShowCmd(opener))
	cmd.AddCommand(commands.NewHistoryCmd(opener))
	cmd.AddCommand(commands.NewProfilesCmd(cli.listProfiles))

	return cmd
}

func (cli *CLI) listProfiles(ctx context.Context) ([]string, error) {
	path := cli.config.ProfilesPath
	if path == "" {
		p, err := config.DefaultProfilesPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	registry, err := config.NewRegistry(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create config registry: %w", err)
	}
	return registry.GetProfiles(ctx)
}

// OpenApp wires the full report pipeline.
func OpenApp(ctx context.Context, cfg app.Config) (*commands.Session, error) {
	a, err := app.New(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &commands.Session{
		Generator: a.Generator,
		Dashboard: a.Dashboard,
		History:   a.History,
		Currency:  a.Settings.Export.Currency,
		Close:     a.Close,
	}, nil
}
