package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsms/report-atlas/pkg/models/domain"
	"gopkg.in/ini.v1"
)

const profilesFileName = ".fsmscfg"

// Registry lists reporting API profiles.
type Registry interface {
	GetProfiles(ctx context.Context) ([]string, error)
	GetConfig(ctx context.Context, profile string) (domain.APIProfile, error)
}

type cfgRegistry struct {
	cfg *ini.File
}

// DefaultProfilesPath is $HOME/.fsmscfg.
func DefaultProfilesPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, profilesFileName), nil
}

func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load profiles from %s: %w", path, err)
	}
	return &cfgRegistry{cfg: cfg}, nil
}

func (cr *cfgRegistry) GetProfiles(_ context.Context) ([]string, error) {
	var profiles []string
	for _, section := range cr.cfg.Sections() {
		if len(section.Keys()) > 0 {
			profiles = append(profiles, section.Name())
		}
	}
	return profiles, nil
}

func (cr *cfgRegistry) GetConfig(_ context.Context, profile string) (domain.APIProfile, error) {
	section, err := cr.cfg.GetSection(profile)
	if err != nil || len(section.Keys()) == 0 {
		return domain.APIProfile{}, fmt.Errorf("profile %s not found", profile)
	}

	timeout, err := section.Key("timeout").Duration()
	if err != nil && section.Key("timeout").String() != "" {
		return domain.APIProfile{}, fmt.Errorf("invalid timeout for profile %s: %w", profile, err)
	}

	return domain.APIProfile{
		Name:    profile,
		BaseURL: section.Key("base_url").String(),
		Token:   section.Key("token").String(),
		Timeout: timeout,
	}, nil
}
