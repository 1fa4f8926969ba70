// Package config handles configuration loading and saving.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"gopkg.in/yaml.v3"
)

// DefaultFeedURL is polled when no URL is given on the command line or
// in the config file.
const DefaultFeedURL = "https://feeds.bbci.co.uk/news/rss.xml"

// KeyMapConfig defines the configuration for keybindings.
type KeyMapConfig struct {
	Up     string `yaml:"up" kong:"help='Scroll up key',default='up,k'"`
	Down   string `yaml:"down" kong:"help='Scroll down key',default='down,j'"`
	Top    string `yaml:"top" kong:"help='Jump to top key',default='home,g'"`
	Bottom string `yaml:"bottom" kong:"help='Jump to bottom key',default='end,G'"`
	Quit   string `yaml:"quit" kong:"help='Quit key',default='q,esc'"`
}

// ThemeConfig defines the color theme configuration.
type ThemeConfig struct {
	Date      string `yaml:"date" kong:"help='Item date color',default='240'"`
	Source    string `yaml:"source" kong:"help='Source label color',default='6'"`
	Status    string `yaml:"status" kong:"help='Status message color',default='3'"`
	Count     string `yaml:"count" kong:"help='Item count color',default='2'"`
	Highlight string `yaml:"highlight" kong:"help='Highlighted row background',default='238'"`
}

// Config represents the application configuration.
type Config struct {
	URL      string       `yaml:"url" kong:"arg,optional,help='Feed URL to poll.'"`
	Label    string       `yaml:"label" kong:"help='Source label shown next to items',default='RSS'"`
	Interval int          `yaml:"interval" kong:"help='Poll interval in seconds',default='60'"`
	Timeout  int          `yaml:"timeout" kong:"help='Per-fetch timeout in seconds',default='10'"`
	LogFile  string       `yaml:"log_file" kong:"help='Debug log file path (disabled when empty)'"`
	KeyMap   KeyMapConfig `yaml:"keymap" kong:"embed,prefix='keymap.'"`
	Theme    ThemeConfig  `yaml:"theme" kong:"embed,prefix='theme.'"`

	// ConfigPath is consumed before kong parsing; see Load.
	ConfigPath string `yaml:"-" kong:"name='config',help='Config file path'"`

	// Internal
	configPath string `yaml:"-" kong:"-"`
}

// Load parses command-line arguments merged over the YAML config file at
// the given path (or the default location when empty). A missing config
// file is created with defaults on first run.
func Load(args []string, customPath string) (*Config, error) {
	configPath := customPath
	if configPath == "" {
		configPath = configPathFromArgs(args)
	}
	if configPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configPath = filepath.Join(home, ".config", "livescroll", "config.yaml")
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0750); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	var cfg Config
	cfg.configPath = configPath

	options := []kong.Option{
		kong.Name("livescroll"),
		kong.Description("A live-updating RSS feed reader for the terminal."),
	}

	// Only add configuration loader if file exists
	if _, err := os.Stat(configPath); err == nil {
		options = append(options, kong.Configuration(yamlKongLoader, configPath))
	}

	parser, err := kong.New(&cfg, options...)
	if err != nil {
		return nil, err
	}

	if _, err := parser.Parse(args); err != nil {
		return nil, err
	}

	// Save defaults if new file
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := cfg.Save(); err != nil {
			return nil, fmt.Errorf("failed to save default config: %w", err)
		}
	}

	if strings.TrimSpace(cfg.URL) == "" {
		cfg.URL = DefaultFeedURL
	}

	return &cfg, nil
}

// configPathFromArgs pre-scans the arguments for --config so the file
// can be loaded before kong parsing begins.
func configPathFromArgs(args []string) string {
	for i, arg := range args {
		if arg == "--config" && i+1 < len(args) {
			return args[i+1]
		}
		if strings.HasPrefix(arg, "--config=") {
			return strings.TrimPrefix(arg, "--config=")
		}
	}
	return ""
}

func yamlKongLoader(r io.Reader) (kong.Resolver, error) {
	values := map[string]interface{}{}
	if err := yaml.NewDecoder(r).Decode(&values); err != nil {
		if err == io.EOF {
			return nil, nil // Return nil resolver (no op)
		}
		return nil, err
	}

	var f kong.ResolverFunc = func(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (interface{}, error) {
		// Try various naming conventions
		names := []string{flag.Name, strings.ReplaceAll(flag.Name, "-", "_")}
		for _, name := range names {
			// Check direct match
			if v, ok := values[name]; ok {
				return v, nil
			}

			// Check nested dot-notation
			parts := strings.Split(name, ".")
			if len(parts) > 1 {
				curr := values
				for i, part := range parts {
					if i == len(parts)-1 {
						if v, ok := curr[part]; ok {
							return v, nil
						}
					} else {
						if nextMap, ok := curr[part].(map[string]interface{}); ok {
							curr = nextMap
						} else {
							break
						}
					}
				}
			}
		}
		return nil, nil
	}
	return f, nil
}

// PollInterval returns the poll interval as a duration.
func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.Interval) * time.Second
}

// FetchTimeout returns the per-fetch timeout as a duration.
func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}

// Save writes the current configuration to the config file.
func (c *Config) Save() error {
	f, err := os.Create(c.configPath)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	return yaml.NewEncoder(f).Encode(c)
}
