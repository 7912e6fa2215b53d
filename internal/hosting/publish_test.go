package hosting

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGiteaPublisher(t *testing.T) {
	var got giteaReleaseRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/repos/me/tui-slider/releases", r.URL.Path)
		assert.Equal(t, "token secret", r.Header.Get("Authorization"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id": 7, "html_url": "https://git.example.com/me/tui-slider/releases/tag/v0.2.0"}`))
	}))
	defer srv.Close()

	p := &GiteaPublisher{BaseURL: srv.URL + "/", Token: "secret", Owner: "me", Repo: "tui-slider"}

	rel, err := p.Publish(context.Background(), ReleaseRequest{Tag: "v0.2.0", Body: "notes"})
	require.NoError(t, err)

	assert.Equal(t, int64(7), rel.ID)
	assert.Equal(t, "gitea", rel.Host)
	assert.Contains(t, rel.URL, "v0.2.0")
	assert.Equal(t, "v0.2.0", got.TagName)
	assert.Equal(t, "v0.2.0", got.Name)
	assert.Equal(t, "notes", got.Body)
}

func TestGiteaPublisher_Errors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message":"release already exists"}`))
	}))
	defer srv.Close()

	p := &GiteaPublisher{BaseURL: srv.URL, Token: "secret", Owner: "me", Repo: "r"}

	_, err := p.Publish(context.Background(), ReleaseRequest{Tag: "v1.0.0"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "409")

	_, err = (&GiteaPublisher{Token: "x"}).Publish(context.Background(), ReleaseRequest{Tag: "v1"})
	assert.ErrorContains(t, err, "GITEA_URL")

	_, err = (&GiteaPublisher{BaseURL: srv.URL}).Publish(context.Background(), ReleaseRequest{Tag: "v1"})
	assert.ErrorContains(t, err, "GITEA_TOKEN")
}

func TestGitHubPublisher(t *testing.T) {
	var got map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/me/tui-slider/releases", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id": 42, "html_url": "https://github.com/me/tui-slider/releases/tag/v0.2.0"}`))
	}))
	defer srv.Close()

	p := &GitHubPublisher{Token: "secret", Owner: "me", Repo: "tui-slider", APIURL: srv.URL}

	rel, err := p.Publish(context.Background(), ReleaseRequest{Tag: "v0.2.0", Name: "tui-slider v0.2.0", Prerelease: true})
	require.NoError(t, err)

	assert.Equal(t, int64(42), rel.ID)
	assert.Equal(t, "v0.2.0", got["tag_name"])
	assert.Equal(t, "tui-slider v0.2.0", got["name"])
	assert.Equal(t, true, got["prerelease"])

	_, err = (&GitHubPublisher{}).Publish(context.Background(), ReleaseRequest{Tag: "v1"})
	assert.Error(t, err)
}

func TestPublishersImplementInterface(t *testing.T) {
	var _ Publisher = (*GitHubPublisher)(nil)
	var _ Publisher = (*GiteaPublisher)(nil)
}
