package git

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/ini.v1"
)

// RemoteSection is a `[remote "name"]` block of .git/config
type RemoteSection struct {
	URL     string `ini:"url"`
	PushURL string `ini:"pushurl"`
	Fetch   string `ini:"fetch"`
}

// BranchSection is a `[branch "name"]` block of .git/config
type BranchSection struct {
	Remote string `ini:"remote"`
	Merge  string `ini:"merge"`
}

// RepoConfig is the subset of .git/config needed to reason about remotes
type RepoConfig struct {
	Remote map[string]RemoteSection
	Branch map[string]BranchSection
}

// ReadConfig parses <repoDir>/.git/config without spawning git
func ReadConfig(repoDir string) (*RepoConfig, error) {
	path := filepath.Join(repoDir, ".git", "config")

	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read git config: %w", err)
	}

	rc := &RepoConfig{
		Remote: make(map[string]RemoteSection),
		Branch: make(map[string]BranchSection),
	}

	for _, sec := range cfg.Sections() {
		name := sec.Name()

		switch {
		case strings.HasPrefix(name, `remote "`) && sec.HasKey("url"):
			var remote RemoteSection
			if err := sec.MapTo(&remote); err != nil {
				return nil, err
			}

			rc.Remote[subsection(name)] = remote
		case strings.HasPrefix(name, `branch "`) && sec.HasKey("merge"):
			var branch BranchSection
			if err := sec.MapTo(&branch); err != nil {
				return nil, err
			}

			rc.Branch[subsection(name)] = branch
		}
	}

	return rc, nil
}

// RemoteNames returns configured remote names sorted
func (rc *RepoConfig) RemoteNames() []string {
	names := make([]string, 0, len(rc.Remote))
	for name := range rc.Remote {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// subsection extracts `origin` from `remote "origin"`
func subsection(name string) string {
	start := strings.IndexByte(name, '"')
	end := strings.LastIndexByte(name, '"')

	if start < 0 || end <= start {
		return name
	}

	return name[start+1 : end]
}
