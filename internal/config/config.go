// Package config loads the gb configuration from
// ~/.config/gb/config.toml. A missing file yields the defaults; an
// invalid file is an error. The loaded Config is passed explicitly to
// commands and the picker; there is no process-wide state.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// KeyConfig holds the picker action key bindings. Keys use the
// "ctrl+<letter>" form.
type KeyConfig struct {
	Pull  string `toml:"pull"`
	Push  string `toml:"push"`
	Fetch string `toml:"fetch"`
	Copy  string `toml:"copy"`
}

// Config holds the gb configuration.
type Config struct {
	Remote      string    `toml:"remote"`       // remote for pull/push/fetch
	ShowRemotes bool      `toml:"show_remotes"` // include remote branches in the picker
	Keys        KeyConfig `toml:"keys"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Remote:      "origin",
		ShowRemotes: true,
		Keys: KeyConfig{
			Pull:  "ctrl+p",
			Push:  "ctrl+o",
			Fetch: "ctrl+f",
			Copy:  "ctrl+y",
		},
	}
}

// Path returns the path to the config file.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "gb", "config.toml"), nil
}

// rawConfig mirrors Config with pointers so absent fields can fall back
// to defaults instead of zero values.
type rawConfig struct {
	Remote      string     `toml:"remote"`
	ShowRemotes *bool      `toml:"show_remotes"`
	Keys        *KeyConfig `toml:"keys"`
}

// Load reads config from ~/.config/gb/config.toml.
// Returns Default() if the file doesn't exist (no error).
// Returns an error only if the file exists but is invalid.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}

	var raw rawConfig
	if err := toml.Unmarshal(data, &raw); err != nil {
		return Default(), fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg := Default()
	if raw.Remote != "" {
		cfg.Remote = raw.Remote
	}
	if raw.ShowRemotes != nil {
		cfg.ShowRemotes = *raw.ShowRemotes
	}
	if raw.Keys != nil {
		if raw.Keys.Pull != "" {
			cfg.Keys.Pull = raw.Keys.Pull
		}
		if raw.Keys.Push != "" {
			cfg.Keys.Push = raw.Keys.Push
		}
		if raw.Keys.Fetch != "" {
			cfg.Keys.Fetch = raw.Keys.Fetch
		}
		if raw.Keys.Copy != "" {
			cfg.Keys.Copy = raw.Keys.Copy
		}
	}

	if err := validate(cfg); err != nil {
		return Default(), err
	}

	return cfg, nil
}

// reservedKeys are bound by the picker itself and cannot be remapped.
var reservedKeys = map[string]bool{
	"enter":  true,
	"esc":    true,
	"up":     true,
	"down":   true,
	"home":   true,
	"end":    true,
	"ctrl+c": true,
}

func validate(cfg Config) error {
	if strings.ContainsAny(cfg.Remote, " \t") {
		return fmt.Errorf("invalid remote %q: must not contain whitespace", cfg.Remote)
	}

	bindings := map[string]string{
		"keys.pull":  cfg.Keys.Pull,
		"keys.push":  cfg.Keys.Push,
		"keys.fetch": cfg.Keys.Fetch,
		"keys.copy":  cfg.Keys.Copy,
	}

	seen := make(map[string]string)
	for field, key := range bindings {
		if err := validateKey(key); err != nil {
			return fmt.Errorf("invalid %s: %w", field, err)
		}
		if other, ok := seen[key]; ok {
			return fmt.Errorf("%s and %s are both bound to %q", other, field, key)
		}
		seen[key] = field
	}
	return nil
}

// validateKey accepts "ctrl+<letter>" bindings that don't collide with
// the picker's built-in keys.
func validateKey(key string) error {
	if reservedKeys[key] {
		return fmt.Errorf("%q is reserved by the picker", key)
	}
	rest, ok := strings.CutPrefix(key, "ctrl+")
	if !ok || len(rest) != 1 || rest[0] < 'a' || rest[0] > 'z' {
		return fmt.Errorf("%q: must be \"ctrl+<letter>\"", key)
	}
	return nil
}

const defaultConfig = `# gb configuration

# Remote used by pull, push and fetch.
# remote = "origin"

# Include remote-tracking branches in the picker. Remote branches always
# rank below local ones.
# show_remotes = true

# Picker action keys. Each runs the operation on the selected branch
# without leaving the picker flow. Bindings use the "ctrl+<letter>" form;
# enter, esc, up, down, home, end and ctrl+c are reserved.
#
# [keys]
# pull = "ctrl+p"
# push = "ctrl+o"
# fetch = "ctrl+f"
# copy = "ctrl+y"
`

// Init creates a default config file at ~/.config/gb/config.toml.
// If force is true, overwrites an existing file.
// Returns the path to the created file.
func Init(force bool) (string, error) {
	path, err := Path()
	if err != nil {
		return "", err
	}

	if !force {
		if _, err := os.Stat(path); err == nil {
			return "", errors.New("config file already exists: " + path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}

	if err := os.WriteFile(path, []byte(defaultConfig), 0644); err != nil {
		return "", err
	}

	return path, nil
}
