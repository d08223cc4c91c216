// Package appdirs resolves where medshelf keeps its files: the TOML config
// and community locale overrides under the platform config root, remembered
// remote answers under the platform state root. Both trees are created with
// owner-only permissions because the state file can carry shopper queries.
package appdirs

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

const AppName = "medshelf"

// rootSpec names the environment overrides and home-relative fallbacks for
// one platform tree.
type rootSpec struct {
	xdgVar          string
	windowsVar      string
	windowsFallback []string
	unixFallback    []string
}

var (
	configRoot = rootSpec{
		xdgVar:          "XDG_CONFIG_HOME",
		windowsVar:      "APPDATA",
		windowsFallback: []string{"AppData", "Roaming"},
		unixFallback:    []string{".config"},
	}
	stateRoot = rootSpec{
		xdgVar:          "XDG_STATE_HOME",
		windowsVar:      "LOCALAPPDATA",
		windowsFallback: []string{"AppData", "Local"},
		unixFallback:    []string{".local", "state"},
	}
)

// resolve picks the platform root. On linux the XDG variable wins when set;
// darwin and windows ignore XDG entirely.
func (r rootSpec) resolve() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not resolve home directory: %w", err)
	}

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support"), nil
	case "windows":
		if dir := os.Getenv(r.windowsVar); dir != "" {
			return dir, nil
		}
		return filepath.Join(append([]string{home}, r.windowsFallback...)...), nil
	default:
		if xdg := os.Getenv(r.xdgVar); xdg != "" {
			return xdg, nil
		}
		return filepath.Join(append([]string{home}, r.unixFallback...)...), nil
	}
}

func ConfigDir() (string, error) {
	base, err := configRoot.resolve()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, AppName), nil
}

func ConfigFilePath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// LocalesDir is where shoppers drop community locale files like hi.json.
func LocalesDir() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "locales"), nil
}

func StateDir() (string, error) {
	base, err := stateRoot.resolve()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, AppName, "state"), nil
}

func StateFilePath(name string) (string, error) {
	dir, err := StateDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}

func EnsureConfigDir() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return ensurePrivateDir(dir, "config")
}

func EnsureStateDir() (string, error) {
	dir, err := StateDir()
	if err != nil {
		return "", err
	}
	return ensurePrivateDir(dir, "state")
}

func ensurePrivateDir(dir, label string) (string, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("could not create %s dir: %w", label, err)
	}
	if err := os.Chmod(dir, 0o700); err != nil {
		return "", fmt.Errorf("could not secure %s dir permissions: %w", label, err)
	}
	return dir, nil
}
