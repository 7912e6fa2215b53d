package hosting

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/cli/go-gh/v2/pkg/auth"
)

// TokenSource indicates where a token was found
type TokenSource string

const (
	TokenSourceEnvGitHub TokenSource = "GITHUB_TOKEN"
	TokenSourceEnvGH     TokenSource = "GH_TOKEN"
	TokenSourceGHCLI     TokenSource = "gh-cli"
	TokenSourceNone      TokenSource = "none"
)

// Credentials for the release APIs. Secrets come from the environment only.
type Credentials struct {
	GitHubToken string `env:"GITHUB_TOKEN"`
	GHToken     string `env:"GH_TOKEN"`
	GiteaToken  string `env:"GITEA_TOKEN"`
	GiteaURL    string `env:"GITEA_URL"`

	GitHubSource TokenSource
}

// LoadCredentials reads tokens from the environment. When neither GitHub
// variable is set the gh CLI login for githubHost is used.
func LoadCredentials(githubHost string) (*Credentials, error) {
	return loadCredentials(env.Options{}, githubHost, auth.TokenForHost)
}

func loadCredentials(opts env.Options, githubHost string, ghToken func(string) (string, string)) (*Credentials, error) {
	var c Credentials
	if err := env.ParseWithOptions(&c, opts); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	switch {
	case c.GitHubToken != "":
		c.GitHubSource = TokenSourceEnvGitHub
	case c.GHToken != "":
		c.GitHubToken = c.GHToken
		c.GitHubSource = TokenSourceEnvGH
	default:
		c.GitHubSource = TokenSourceNone

		if githubHost == "" {
			githubHost = "github.com"
		}

		if token, _ := ghToken(githubHost); token != "" {
			c.GitHubToken = token
			c.GitHubSource = TokenSourceGHCLI
		}
	}

	return &c, nil
}
