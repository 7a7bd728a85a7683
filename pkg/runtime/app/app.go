package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/fsms/report-atlas/pkg/export"
	"github.com/fsms/report-atlas/pkg/models/domain"
	"github.com/fsms/report-atlas/pkg/services/config"
	"github.com/fsms/report-atlas/pkg/services/dashboard"
	"github.com/fsms/report-atlas/pkg/services/fetcher"
	"github.com/fsms/report-atlas/pkg/services/report"
	"github.com/fsms/report-atlas/pkg/store/artifact"
	"github.com/fsms/report-atlas/pkg/store/client"
	"github.com/fsms/report-atlas/pkg/store/downloads"
	"github.com/fsms/report-atlas/pkg/store/history"
	"github.com/fsms/report-atlas/pkg/store/sqlite"
	"github.com/rs/zerolog"
)

const DefaultProfile = "default"

type Config struct {
	ProfilesPath string
	Profile      string
	SettingsPath string
	Now          func() time.Time
}

// App is the wired pipeline shared by the terminal and web entry points.
type App struct {
	Settings  *config.Settings
	Profile   domain.APIProfile
	Fetcher   *fetcher.Fetcher
	Exporter  *export.Exporter
	Generator *report.Generator
	Dashboard *dashboard.Service
	History   history.Store
	Downloads *downloads.Store

	db *sql.DB
}

func New(ctx context.Context, cfg Config) (*App, error) {
	logger := zerolog.Ctx(ctx)

	settings, err := config.LoadSettings(cfg.SettingsPath)
	if err != nil {
		return nil, err
	}

	profile, err := resolveProfile(ctx, cfg)
	if err != nil {
		return nil, err
	}
	reportsClient, err := client.NewReportsClient(profile)
	if err != nil {
		return nil, fmt.Errorf("failed to create reports client: %w", err)
	}

	sink, err := artifact.NewSink(ctx, settings.Sink)
	if err != nil {
		return nil, fmt.Errorf("failed to create artifact sink: %w", err)
	}

	db, err := sqlite.NewDB(ctx, sqlite.Settings{DbPath: settings.History.DBPath})
	if err != nil {
		return nil, fmt.Errorf("failed to open export history: %w", err)
	}
	historyStore, err := history.NewStore(db)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create history store: %w", err)
	}

	f := fetcher.New(reportsClient, fetcher.Options{
		Estimates:      settings.Estimates,
		MaxConcurrency: settings.Fetch.MaxConcurrency,
		Now:            cfg.Now,
	})
	exporter := export.New(export.Options{
		Now:       cfg.Now,
		Currency:  settings.Export.Currency,
		SheetName: settings.Export.SheetName,
	})

	logger.Info().
		Str("profile", profile.Name).
		Str("base_url", profile.BaseURL).
		Str("sink", settings.Sink.Type).
		Str("history_db", settings.History.DBPath).
		Msg("report pipeline configured")

	return &App{
		Settings: settings,
		Profile:  profile,
		Fetcher:  f,
		Exporter: exporter,
		Generator: report.NewGenerator(f, exporter, sink, historyStore, report.Options{
			DailyWindow:   settings.Fetch.DailyWindow,
			MonthlyWindow: settings.Fetch.MonthlyWindow,
			YearlyWindow:  settings.Fetch.YearlyWindow,
			RangeDays:     settings.Fetch.RangeDays,
		}),
		Dashboard: dashboard.NewService(f, dashboard.Options{
			DailyWindow:   settings.Fetch.DailyWindow,
			MonthlyWindow: settings.Fetch.MonthlyWindow,
			YearlyWindow:  settings.Fetch.YearlyWindow,
			RangeDays:     settings.Fetch.RangeDays,
		}),
		History:   historyStore,
		Downloads: downloads.NewStore(settings.Downloads.TTL),
		db:        db,
	}, nil
}

// Close cancels in-flight dashboard loads and closes the history database.
func (a *App) Close() error {
	a.Dashboard.Close()
	return a.db.Close()
}

// resolveProfile picks the requested profile, or the only one defined, or
// DefaultProfile.
func resolveProfile(ctx context.Context, cfg Config) (domain.APIProfile, error) {
	path := cfg.ProfilesPath
	if path == "" {
		p, err := config.DefaultProfilesPath()
		if err != nil {
			return domain.APIProfile{}, err
		}
		path = p
	}

	registry, err := config.NewRegistry(path)
	if err != nil {
		return domain.APIProfile{}, fmt.Errorf("failed to create config registry: %w", err)
	}

	name := cfg.Profile
	if name == "" {
		profiles, err := registry.GetProfiles(ctx)
		if err != nil {
			return domain.APIProfile{}, err
		}
		switch {
		case len(profiles) == 1:
			name = profiles[0]
		case slices.Contains(profiles, DefaultProfile):
			name = DefaultProfile
		default:
			return domain.APIProfile{}, errors.New("several profiles defined, choose one with --profile")
		}
	}
	return registry.GetConfig(ctx, name)
}
