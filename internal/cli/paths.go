package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rkohler/quadsheet/pkg/config"
	"github.com/rkohler/quadsheet/pkg/errors"
)

// downloadsDir returns the folder input files are resolved against: the
// configured downloads_dir if set, otherwise ~/Downloads.
func downloadsDir(cfg config.Config) string {
	if cfg.DownloadsDir != "" {
		return expandHome(cfg.DownloadsDir)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, "Downloads")
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// resolveFilePath resolves a user-supplied file argument. Absolute paths
// that exist win; an absolute path that does not exist falls back to the
// downloads folder by basename (the file is usually there even when the
// typed prefix is wrong). Relative paths try the downloads folder first,
// then the working directory. The error lists every location checked.
func resolveFilePath(file, downloads string) (string, error) {
	file = expandHome(strings.TrimSpace(file))

	var checked []string
	if filepath.IsAbs(file) {
		if fileExists(file) {
			return file, nil
		}
		checked = append(checked, file)

		fallback := filepath.Join(downloads, filepath.Base(file))
		if fileExists(fallback) {
			return fallback, nil
		}
		checked = append(checked, fallback)
	} else {
		inDownloads := filepath.Join(downloads, file)
		if fileExists(inDownloads) {
			return inDownloads, nil
		}
		checked = append(checked, inDownloads)

		if abs, err := filepath.Abs(file); err == nil {
			if fileExists(abs) {
				return abs, nil
			}
			checked = append(checked, abs)
		}
	}

	return "", errors.New(errors.ErrCodeFileNotFound,
		"file not found: %s (checked: %s)", file, strings.Join(checked, ", "))
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
