package hosting

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v82/github"
	"golang.org/x/oauth2"
	"resty.dev/v3"
)

// ReleaseRequest describes a release to create on a hosting service
type ReleaseRequest struct {
	Tag        string
	Name       string
	Body       string
	Target     string
	Draft      bool
	Prerelease bool
}

func (r ReleaseRequest) name() string {
	if r.Name != "" {
		return r.Name
	}

	return r.Tag
}

// PublishedRelease is a created release
type PublishedRelease struct {
	Host string
	ID   int64
	URL  string
}

// Publisher creates releases on one hosting service
type Publisher interface {
	Host() string
	Publish(ctx context.Context, req ReleaseRequest) (*PublishedRelease, error)
}

// GitHubPublisher creates releases through the GitHub REST API
type GitHubPublisher struct {
	Token  string
	Owner  string
	Repo   string
	APIURL string // Overrides https://api.github.com/ (enterprise, tests)
	Logger *slog.Logger
}

func (p *GitHubPublisher) Host() string { return "github" }

func (p *GitHubPublisher) client(ctx context.Context) (*github.Client, error) {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: p.Token})
	client := github.NewClient(oauth2.NewClient(ctx, ts))

	if p.APIURL != "" {
		base := p.APIURL
		if !strings.HasSuffix(base, "/") {
			base += "/"
		}

		u, err := url.Parse(base)
		if err != nil {
			return nil, fmt.Errorf("invalid GitHub API URL: %w", err)
		}

		client.BaseURL = u
	}

	return client, nil
}

func (p *GitHubPublisher) Publish(ctx context.Context, req ReleaseRequest) (*PublishedRelease, error) {
	logger := p.Logger
	if logger == nil {
		logger = slog.Default()
	}

	if p.Token == "" {
		return nil, fmt.Errorf("github: no token (set GITHUB_TOKEN or run gh auth login)")
	}

	if req.Tag == "" {
		return nil, fmt.Errorf("tag name is required")
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	client, err := p.client(ctx)
	if err != nil {
		return nil, err
	}

	release := &github.RepositoryRelease{
		TagName:    github.Ptr(req.Tag),
		Name:       github.Ptr(req.name()),
		Draft:      github.Ptr(req.Draft),
		Prerelease: github.Ptr(req.Prerelease),
	}

	if req.Body != "" {
		release.Body = github.Ptr(req.Body)
	}

	if req.Target != "" {
		release.TargetCommitish = github.Ptr(req.Target)
	}

	logger.Debug("creating release",
		slog.String("host", p.Host()),
		slog.String("owner", p.Owner),
		slog.String("repo", p.Repo),
		slog.String("tag", req.Tag),
	)

	created, _, err := client.Repositories.CreateRelease(ctx, p.Owner, p.Repo, release)
	if err != nil {
		return nil, fmt.Errorf("failed to create release: %w", err)
	}

	return &PublishedRelease{Host: p.Host(), ID: created.GetID(), URL: created.GetHTMLURL()}, nil
}

// GiteaPublisher creates releases through the Gitea REST API
type GiteaPublisher struct {
	BaseURL string // e.g. https://gitea.example.com
	Token   string
	Owner   string
	Repo    string
	Logger  *slog.Logger
}

type giteaReleaseRequest struct {
	TagName         string `json:"tag_name"`
	Name            string `json:"name"`
	Body            string `json:"body"`
	TargetCommitish string `json:"target_commitish,omitempty"`
	Draft           bool   `json:"draft"`
	Prerelease      bool   `json:"prerelease"`
}

type giteaRelease struct {
	ID      int64  `json:"id"`
	HTMLURL string `json:"html_url"`
}

func (p *GiteaPublisher) Host() string { return "gitea" }

func (p *GiteaPublisher) Publish(ctx context.Context, req ReleaseRequest) (*PublishedRelease, error) {
	logger := p.Logger
	if logger == nil {
		logger = slog.Default()
	}

	if p.BaseURL == "" {
		return nil, fmt.Errorf("gitea: no base URL (set GITEA_URL)")
	}

	if p.Token == "" {
		return nil, fmt.Errorf("gitea: no token (set GITEA_TOKEN)")
	}

	if req.Tag == "" {
		return nil, fmt.Errorf("tag name is required")
	}

	client := resty.New().
		SetBaseURL(strings.TrimRight(p.BaseURL, "/")).
		SetHeader("Authorization", "token "+p.Token).
		SetHeader("Accept", "application/json").
		SetTimeout(time.Minute)
	defer client.Close()

	endpoint := fmt.Sprintf("/api/v1/repos/%s/%s/releases", url.PathEscape(p.Owner), url.PathEscape(p.Repo))

	logger.Debug("creating release",
		slog.String("host", p.Host()),
		slog.String("endpoint", endpoint),
		slog.String("tag", req.Tag),
	)

	var created giteaRelease

	resp, err := client.R().
		SetContext(ctx).
		SetBody(giteaReleaseRequest{
			TagName:         req.Tag,
			Name:            req.name(),
			Body:            req.Body,
			TargetCommitish: req.Target,
			Draft:           req.Draft,
			Prerelease:      req.Prerelease,
		}).
		SetResult(&created).
		Post(endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to create release: %w", err)
	}

	if resp.IsError() {
		return nil, fmt.Errorf("failed to create release: gitea returned %d: %s", resp.StatusCode(), strings.TrimSpace(resp.String()))
	}

	return &PublishedRelease{Host: p.Host(), ID: created.ID, URL: created.HTMLURL}, nil
}
