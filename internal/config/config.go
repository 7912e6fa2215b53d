// Package config loads the per-project .tuislider.yaml file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/inovacc/tuislider/internal/application"
	"github.com/inovacc/tuislider/internal/hosting"
	"github.com/inovacc/tuislider/internal/release"
	"github.com/inovacc/tuislider/internal/tasks"
)

// EnvPrefix prefixes environment overrides, e.g. TUISLIDER_PROJECT_BRANCH
const EnvPrefix = "TUISLIDER"

type Project struct {
	Name     string `mapstructure:"name" yaml:"name"`
	Manifest string `mapstructure:"manifest" yaml:"manifest"`
	Branch   string `mapstructure:"branch" yaml:"branch"`
}

type GitHubRemote struct {
	Host  string `mapstructure:"host" yaml:"host"`
	Owner string `mapstructure:"owner" yaml:"owner"`
	Repo  string `mapstructure:"repo" yaml:"repo"`
}

type GiteaRemote struct {
	Host  string `mapstructure:"host" yaml:"host"`
	Owner string `mapstructure:"owner" yaml:"owner"`
	Repo  string `mapstructure:"repo" yaml:"repo"`
	Port  int    `mapstructure:"port" yaml:"port"`
}

type Remotes struct {
	GitHub GitHubRemote `mapstructure:"github" yaml:"github"`
	Gitea  GiteaRemote  `mapstructure:"gitea" yaml:"gitea"`
}

type Changelog struct {
	Tool string `mapstructure:"tool" yaml:"tool"`
	File string `mapstructure:"file" yaml:"file"`
}

type Demo struct {
	Dir    string `mapstructure:"dir" yaml:"dir"`
	Output string `mapstructure:"output" yaml:"output"`
	Theme  string `mapstructure:"theme" yaml:"theme"`
}

type Tasks struct {
	File string `mapstructure:"file" yaml:"file"`
}

// Config is the project configuration
type Config struct {
	Project   Project   `mapstructure:"project" yaml:"project"`
	Remotes   Remotes   `mapstructure:"remotes" yaml:"remotes"`
	Changelog Changelog `mapstructure:"changelog" yaml:"changelog"`
	Demo      Demo      `mapstructure:"demo" yaml:"demo"`
	Tasks     Tasks     `mapstructure:"tasks" yaml:"tasks"`
	Checks    []string  `mapstructure:"checks" yaml:"checks"`

	// File is the config file that was read, empty when none was found
	File string `mapstructure:"-" yaml:"-"`
}

// DefaultChecks mirror the check-all task
var DefaultChecks = []string{
	"cargo fmt --all -- --check",
	"cargo clippy --all-targets --all-features -- -D warnings",
	"cargo test --all-features",
	"cargo build --all-targets",
}

func setDefaults(v *viper.Viper, dir string) {
	v.SetDefault("project.name", filepath.Base(dir))
	v.SetDefault("project.manifest", "")
	v.SetDefault("project.branch", "main")
	v.SetDefault("remotes.github.host", "github.com")
	v.SetDefault("remotes.github.owner", "")
	v.SetDefault("remotes.github.repo", "")
	v.SetDefault("remotes.gitea.host", "")
	v.SetDefault("remotes.gitea.owner", "")
	v.SetDefault("remotes.gitea.repo", "")
	v.SetDefault("remotes.gitea.port", 0)
	v.SetDefault("changelog.tool", release.ToolAuto)
	v.SetDefault("changelog.file", release.DefaultChangelogFile)
	v.SetDefault("demo.dir", filepath.Join("examples", "vhs"))
	v.SetDefault("demo.output", filepath.Join("examples", "vhs", "output"))
	v.SetDefault("demo.theme", "Catppuccin Mocha")
	v.SetDefault("tasks.file", tasks.DefaultFile)
	v.SetDefault("checks", DefaultChecks)
}

// Default returns the built-in configuration for a project in dir, ignoring
// any config file and environment
func Default(dir string) *Config {
	v := viper.New()
	setDefaults(v, dir)

	cfg, err := decode(v)
	if err != nil {
		// defaults always decode
		panic(err)
	}

	return cfg
}

// Load reads .tuislider.yaml from dir, or path when set, and applies
// TUISLIDER_* environment overrides. A missing file in dir is not an error;
// a missing explicit path is.
func Load(dir, path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, dir)

	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(strings.TrimSuffix(application.ConfigFileName, filepath.Ext(application.ConfigFileName)))
		v.AddConfigPath(dir)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg, err := decode(v)
	if err != nil {
		return nil, err
	}

	cfg.File = v.ConfigFileUsed()

	return cfg, nil
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if cfg.Remotes.Gitea.Owner == "" {
		cfg.Remotes.Gitea.Owner = cfg.Remotes.GitHub.Owner
	}

	if cfg.Remotes.Gitea.Repo == "" {
		cfg.Remotes.Gitea.Repo = cfg.Remotes.GitHub.Repo
	}

	return &cfg, nil
}

// GitHubRemote returns the origin remote
func (c *Config) GitHubRemote() hosting.Remote {
	return hosting.Remote{
		Name:  hosting.RemoteGitHub,
		Host:  c.Remotes.GitHub.Host,
		Owner: c.Remotes.GitHub.Owner,
		Repo:  c.Remotes.GitHub.Repo,
	}
}

// GiteaRemote returns the gitea remote and whether it is configured
func (c *Config) GiteaRemote() (hosting.Remote, bool) {
	r := hosting.Remote{
		Name:  hosting.RemoteGitea,
		Host:  c.Remotes.Gitea.Host,
		Owner: c.Remotes.Gitea.Owner,
		Repo:  c.Remotes.Gitea.Repo,
		Port:  c.Remotes.Gitea.Port,
	}

	return r, r.Host != ""
}

// HostingRemotes lists the configured remotes, GitHub first
func (c *Config) HostingRemotes() []hosting.Remote {
	remotes := []hosting.Remote{c.GitHubRemote()}

	if gitea, ok := c.GiteaRemote(); ok {
		remotes = append(remotes, gitea)
	}

	return remotes
}

// RemoteNames lists the git remote names in push order
func (c *Config) RemoteNames() []string {
	remotes := c.HostingRemotes()

	names := make([]string, len(remotes))
	for i, r := range remotes {
		names[i] = r.Name
	}

	return names
}

// Resolve joins a configured relative path onto dir
func Resolve(dir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}

	return filepath.Join(dir, path)
}

// Marshal renders cfg as YAML
func Marshal(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(cfg); err != nil {
		return nil, err
	}

	if err := enc.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Write saves cfg to path, refusing to overwrite unless force is set
func Write(path string, cfg *Config, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	data, err := Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}
