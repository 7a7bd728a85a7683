package artifact

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsms/report-atlas/pkg/models/domain"
)

type FSSink struct {
	dir string
}

func NewFSSink(dir string) (*FSSink, error) {
	if dir == "" {
		return nil, fmt.Errorf("sink directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create sink directory: %w", err)
	}
	return &FSSink{dir: dir}, nil
}

// Put writes the artifact under its file name, replacing an existing file
// atomically.
func (s *FSSink) Put(_ context.Context, a *domain.Artifact) (string, error) {
	name := filepath.Base(a.Name)
	if name == "." || name == string(filepath.Separator) {
		return "", fmt.Errorf("invalid artifact name %q", a.Name)
	}

	tmp, err := os.CreateTemp(s.dir, ".tmp-"+name+"-*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(a.Data); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("write artifact: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close artifact: %w", err)
	}

	dest := filepath.Join(s.dir, name)
	if err := os.Rename(tmp.Name(), dest); err != nil {
		return "", fmt.Errorf("move artifact into place: %w", err)
	}
	return dest, nil
}
