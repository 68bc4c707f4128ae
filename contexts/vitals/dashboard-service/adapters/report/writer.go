package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Writer stores exported reports under a single directory. Write is
// atomic so a half-written report is never served.
type Writer struct {
	Dir string
}

func (w Writer) Write(_ context.Context, name string, content []byte) (string, error) {
	name = filepath.Base(name)
	if name == "." || name == "/" || name == "" {
		return "", fmt.Errorf("invalid report name %q", name)
	}
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}

	path := filepath.Join(w.Dir, name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, content, 0o644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return "", fmt.Errorf("store report: %w", err)
	}
	return name, nil
}
