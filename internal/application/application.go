package application

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
)

const (
	// AppName is the application name used for directories and identification
	AppName = "tuislider"

	// ConfigFileName is the per-project configuration file looked up in the repository root
	ConfigFileName = ".tuislider.yaml"

	// JournalFileName is the release journal database inside the application directory
	JournalFileName = "journal.bolt"
)

var (
	once   sync.Once
	appDir string
	errDir error
)

// GetApplicationDirectory returns the tuislider data directory path, creating it if needed.
// Linux: ~/.config/tuislider (via os.UserConfigDir)
// Windows: C:\Users\{username}\AppData\Local\tuislider (via os.UserCacheDir)
func GetApplicationDirectory() (string, error) {
	once.Do(lazyLoad)

	if errDir != nil {
		return "", errDir
	}

	return appDir, nil
}

// JournalPath returns the default location of the release journal.
func JournalPath() (string, error) {
	dir, err := GetApplicationDirectory()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, JournalFileName), nil
}

func lazyLoad() {
	var (
		baseDir string
		err     error
	)

	switch runtime.GOOS {
	case "windows":
		baseDir, err = os.UserCacheDir()
	default:
		baseDir, err = os.UserConfigDir()
	}

	if err != nil {
		errDir = fmt.Errorf("failed to get config directory: %w", err)
		return
	}

	appDir = filepath.Join(baseDir, AppName)

	if err := os.MkdirAll(appDir, 0o755); err != nil {
		errDir = fmt.Errorf("failed to create application directory: %w", err)
	}
}
