package main

import (
	"fmt"
	"net"
	"os"

	"github.com/fsms/report-atlas/pkg/runtime/app"
	"github.com/fsms/report-atlas/pkg/server"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	cfg     app.Config
	preload bool
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for fuel station reports",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfg.ProfilesPath, "config", "c", "",
		"Path to the API profiles file (default is $HOME/.fsmscfg)")
	rootCmd.Flags().StringVar(&cfg.Profile, "profile", "", "API profile to use")
	rootCmd.Flags().StringVar(&cfg.SettingsPath, "settings", "", "Path to the settings file")
	rootCmd.Flags().BoolVar(&preload, "preload", true, "Load every dashboard tab before serving")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	a, err := app.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			logger.Error().Err(err).Msg("failed to close report pipeline")
		}
	}()

	if preload {
		if _, err := a.Dashboard.LoadAll(ctx, nil); err != nil {
			logger.Warn().Err(err).Msg("initial dashboard load failed")
		}
	}

	host := os.Getenv("SERVER_HOST")
	port := os.Getenv("SERVER_PORT")

	if host == "" || port == "" {
		return fmt.Errorf("missing SERVER_HOST or SERVER_PORT configuration")
	}

	api := server.NewWebAPI(server.Config{
		Addr:            net.JoinHostPort(host, port),
		ShutdownTimeout: a.Settings.Server.ShutdownTimeout,
		Dependencies: server.Dependencies{
			Dashboard: a.Dashboard,
			Generator: a.Generator,
			Downloads: a.Downloads,
			History:   a.History,
			Logger:    logger,
		},
	})
	return api.Start()
}
