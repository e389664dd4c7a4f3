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
	AppName = "afscreen"

	// ConfigFileName is the configuration file inside the application directory
	ConfigFileName = "config.ini"

	// HistoryFileName is the run-history database inside the application directory
	HistoryFileName = "history"
)

var (
	once   sync.Once
	appDir string
	errDir error
)

// GetApplicationDirectory returns the afscreen configuration directory path.
// Linux: ~/.config/afscreen (via os.UserConfigDir)
// Windows: C:\Users\{username}\AppData\Local\afscreen (via os.UserCacheDir)
func GetApplicationDirectory() (string, error) {
	once.Do(lazyLoad)

	return appDir, errDir
}

// Path joins name onto the application directory.
func Path(name string) (string, error) {
	dir, err := GetApplicationDirectory()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, name), nil
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
}
