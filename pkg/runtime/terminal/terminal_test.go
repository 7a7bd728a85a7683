package terminal

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fsms/report-atlas/pkg/runtime/app"
	"github.com/fsms/report-atlas/pkg/runtime/terminal/commands"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCLI_PassesGlobalFlagsToOpener(t *testing.T) {
	// Given
	var got app.Config
	var buf bytes.Buffer
	cli := NewCLI(Options{
		Output: &buf,
		Open: func(_ context.Context, cfg app.Config) (*commands.Session, error) {
			got = cfg
			return nil, assert.AnError
		},
	})
	cli.rootCmd.SetArgs([]string{
		"--config", "/etc/fsms/profiles", "--profile", "station", "--settings", "settings.yaml",
		"history",
	})

	// When
	err := cli.Execute(context.Background())

	// Then
	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, app.Config{
		ProfilesPath: "/etc/fsms/profiles",
		Profile:      "station",
		SettingsPath: "settings.yaml",
	}, got)
}

func TestCLI_ListsProfiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".fsmscfg")
	require.NoError(t, os.WriteFile(path, []byte("[main]\nbase_url = http://a\n\n[backup]\nbase_url = http://b\n"), 0o644))
	var buf bytes.Buffer
	cli := NewCLI(Options{Output: &buf})
	cli.rootCmd.SetArgs([]string{"profiles", "--config", path})

	err := cli.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "main\nbackup\n", buf.String())
}
