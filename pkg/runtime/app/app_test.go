package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProfiles(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".fsmscfg")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestResolveProfile(t *testing.T) {
	testCases := []struct {
		name     string
		content  string
		profile  string
		expected string
		err      string
	}{
		{
			name:     "single profile is implicit",
			content:  "[station]\nbase_url = http://localhost:4000\n",
			expected: "station",
		},
		{
			name:     "default among several",
			content:  "[backup]\nbase_url = http://b\n\n[default]\nbase_url = http://d\n",
			expected: "default",
		},
		{
			name:    "ambiguous",
			content: "[a]\nbase_url = http://a\n\n[b]\nbase_url = http://b\n",
			err:     "several profiles defined, choose one with --profile",
		},
		{
			name:     "explicit",
			content:  "[a]\nbase_url = http://a\n\n[b]\nbase_url = http://b\n",
			profile:  "b",
			expected: "b",
		},
		{
			name:    "explicit but missing",
			content: "[a]\nbase_url = http://a\n",
			profile: "z",
			err:     "profile z not found",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Config{ProfilesPath: writeProfiles(t, tc.content), Profile: tc.profile}

			got, err := resolveProfile(context.Background(), cfg)

			if tc.err != "" {
				assert.EqualError(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got.Name)
		})
	}
}
