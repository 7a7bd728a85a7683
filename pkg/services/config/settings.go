package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fsms/report-atlas/pkg/models/domain"
	"github.com/spf13/viper"
)

const envPrefix = "FSMS"

// Sink types.
const (
	SinkNone = "none"
	SinkFS   = "fs"
	SinkS3   = "s3"
)

type Settings struct {
	Estimates domain.Estimates
	Fetch     FetchSettings
	Export    ExportSettings
	Sink      SinkSettings
	History   HistorySettings
	Downloads DownloadSettings
	Server    ServerSettings
}

type FetchSettings struct {
	MaxConcurrency int

	// DailyWindow is the number of days in the sales window, today included.
	DailyWindow   int
	MonthlyWindow int
	YearlyWindow  int

	// RangeDays is the default report range, ending today.
	RangeDays int
}

type ExportSettings struct {
	Currency  string
	SheetName string
}

type SinkSettings struct {
	Type   string
	Dir    string
	Bucket string
	Prefix string
	Region string

	// Profile is the shared AWS config profile used by the s3 sink.
	Profile string
}

type HistorySettings struct {
	DBPath string
}

type DownloadSettings struct {
	TTL time.Duration
}

type ServerSettings struct {
	ShutdownTimeout time.Duration
}

func setDefaults(v *viper.Viper) {
	est := domain.DefaultEstimates()
	v.SetDefault("estimates.gross_margin_ratio", est.GrossMarginRatio)
	v.SetDefault("estimates.trend_profit_ratio", est.TrendProfitRatio)
	v.SetDefault("estimates.price_per_liter", est.PricePerLiter)
	v.SetDefault("estimates.average_ticket", est.AverageTicket)
	v.SetDefault("estimates.default_cost_per_liter", est.DefaultCostPerLiter)

	v.SetDefault("fetch.max_concurrency", 8)
	v.SetDefault("fetch.daily_window", 7)
	v.SetDefault("fetch.monthly_window", 12)
	v.SetDefault("fetch.yearly_window", 2)
	v.SetDefault("fetch.range_days", 7)

	v.SetDefault("export.currency", "GHS")
	v.SetDefault("export.sheet_name", "Sheet1")

	v.SetDefault("sink.type", SinkNone)
	v.SetDefault("sink.dir", "exports")
	v.SetDefault("sink.bucket", "")
	v.SetDefault("sink.prefix", "reports/")
	v.SetDefault("sink.region", "")
	v.SetDefault("sink.profile", "")

	v.SetDefault("history.db_path", "fsms-exports.db")
	v.SetDefault("downloads.ttl", 15*time.Minute)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
}

// LoadSettings reads settings from path, when given, on top of the built-in
// defaults. FSMS_ environment variables override both, e.g.
// FSMS_FETCH_MAX_CONCURRENCY.
func LoadSettings(path string) (*Settings, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	s := &Settings{
		Estimates: domain.Estimates{
			GrossMarginRatio:    v.GetFloat64("estimates.gross_margin_ratio"),
			TrendProfitRatio:    v.GetFloat64("estimates.trend_profit_ratio"),
			PricePerLiter:       v.GetFloat64("estimates.price_per_liter"),
			AverageTicket:       v.GetFloat64("estimates.average_ticket"),
			DefaultCostPerLiter: v.GetFloat64("estimates.default_cost_per_liter"),
		},
		Fetch: FetchSettings{
			MaxConcurrency: v.GetInt("fetch.max_concurrency"),
			DailyWindow:    v.GetInt("fetch.daily_window"),
			MonthlyWindow:  v.GetInt("fetch.monthly_window"),
			YearlyWindow:   v.GetInt("fetch.yearly_window"),
			RangeDays:      v.GetInt("fetch.range_days"),
		},
		Export: ExportSettings{
			Currency:  v.GetString("export.currency"),
			SheetName: v.GetString("export.sheet_name"),
		},
		Sink: SinkSettings{
			Type:    strings.ToLower(v.GetString("sink.type")),
			Dir:     v.GetString("sink.dir"),
			Bucket:  v.GetString("sink.bucket"),
			Prefix:  v.GetString("sink.prefix"),
			Region:  v.GetString("sink.region"),
			Profile: v.GetString("sink.profile"),
		},
		History: HistorySettings{
			DBPath: v.GetString("history.db_path"),
		},
		Downloads: DownloadSettings{
			TTL: v.GetDuration("downloads.ttl"),
		},
		Server: ServerSettings{
			ShutdownTimeout: v.GetDuration("server.shutdown_timeout"),
		},
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return s, nil
}

func (s *Settings) Validate() error {
	var errs []error
	if s.Estimates.PricePerLiter <= 0 {
		errs = append(errs, errors.New("estimates.price_per_liter must be positive"))
	}
	if s.Estimates.AverageTicket <= 0 {
		errs = append(errs, errors.New("estimates.average_ticket must be positive"))
	}
	if s.Estimates.GrossMarginRatio < 0 || s.Estimates.GrossMarginRatio > 1 {
		errs = append(errs, errors.New("estimates.gross_margin_ratio must be between 0 and 1"))
	}
	if s.Fetch.MaxConcurrency <= 0 {
		errs = append(errs, errors.New("fetch.max_concurrency must be positive"))
	}
	if s.Fetch.DailyWindow <= 0 || s.Fetch.MonthlyWindow <= 0 || s.Fetch.YearlyWindow <= 0 {
		errs = append(errs, errors.New("fetch windows must be positive"))
	}
	switch s.Sink.Type {
	case SinkNone, SinkFS:
	case SinkS3:
		if s.Sink.Bucket == "" {
			errs = append(errs, errors.New("sink.bucket is required for the s3 sink"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown sink.type %q", s.Sink.Type))
	}
	return errors.Join(errs...)
}
