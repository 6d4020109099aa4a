package github

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/google/go-github/github"
	"golang.org/x/oauth2"
)

// NotFoundError represents a resource not found condition.
// Used by the mock client and checked by IsNotFound.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// IsNotFound returns true if the error represents a GitHub 404 Not Found response.
// It checks for both the real go-github ErrorResponse and the mock NotFoundError.
func IsNotFound(err error) bool {
	var ghErr *github.ErrorResponse
	if errors.As(err, &ghErr) {
		return ghErr.Response != nil && ghErr.Response.StatusCode == http.StatusNotFound
	}
	var nfe *NotFoundError
	return errors.As(err, &nfe)
}

// ClientInterface defines the GitHub client contract
type ClientInterface interface {
	GetRelease(ctx context.Context, owner, repo, tag string) (*github.RepositoryRelease, error)
	CreateRelease(ctx context.Context, owner, repo string, release *github.RepositoryRelease) (*github.RepositoryRelease, error)
	UploadReleaseAsset(ctx context.Context, owner, repo string, releaseID int64, asset Asset) (*github.ReleaseAsset, error)
}

// Asset is a release asset upload. ContentType is sent as the request's
// Content-Type and becomes the asset's content type on GitHub.
type Asset struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.Reader
}

// Ensure Client implements ClientInterface
var _ ClientInterface = (*Client)(nil)

// Client wraps the GitHub client with convenience methods
type Client struct {
	client *github.Client
}

// NewClient creates a new GitHub client with the provided token for authentication.
// If token is empty, an error is returned since GitHub operations require authentication.
func NewClient(token string) (*Client, error) {
	if token == "" {
		return nil, fmt.Errorf("GitHub token is required")
	}

	// Configure HTTP client with timeouts to prevent hanging
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	httpClient := oauth2.NewClient(context.Background(), ts)
	// oauth2.NewClient returns a client without timeout, so we set it explicitly
	httpClient.Timeout = 5 * time.Minute

	return &Client{
		client: github.NewClient(httpClient),
	}, nil
}

// NewEnterpriseClient creates a client for a GitHub Enterprise (or test) server.
// baseURL and uploadURL must be absolute; a trailing slash is added when missing.
func NewEnterpriseClient(httpClient *http.Client, baseURL, uploadURL string) (*Client, error) {
	base, err := parseEndpoint(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid GitHub API URL: %w", err)
	}
	upload, err := parseEndpoint(uploadURL)
	if err != nil {
		return nil, fmt.Errorf("invalid GitHub upload URL: %w", err)
	}

	client := github.NewClient(httpClient)
	client.BaseURL = base
	client.UploadURL = upload
	return &Client{client: client}, nil
}

func parseEndpoint(raw string) (*url.URL, error) {
	if !strings.HasSuffix(raw, "/") {
		raw += "/"
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}
	if !u.IsAbs() {
		return nil, fmt.Errorf("%q is not an absolute URL", raw)
	}
	return u, nil
}

// GetGitHubToken retrieves GitHub token from environment
func GetGitHubToken() string {
	return os.Getenv("GITHUB_TOKEN")
}

// GetRelease fetches a specific release
func (c *Client) GetRelease(ctx context.Context, owner, repo, tag string) (*github.RepositoryRelease, error) {
	release, _, err := c.client.Repositories.GetReleaseByTag(ctx, owner, repo, tag)
	if err != nil {
		return nil, fmt.Errorf("failed to get release %s/%s@%s: %w", owner, repo, tag, err)
	}
	return release, nil
}

// CreateRelease creates a new release
func (c *Client) CreateRelease(ctx context.Context, owner, repo string, release *github.RepositoryRelease) (*github.RepositoryRelease, error) {
	newRelease, _, err := c.client.Repositories.CreateRelease(ctx, owner, repo, release)
	if err != nil {
		return nil, fmt.Errorf("failed to create release %s/%s: %w", owner, repo, err)
	}
	return newRelease, nil
}

// UploadReleaseAsset uploads an asset to a release with an explicit content type.
// Repositories.UploadReleaseAsset derives the type from the file name, so the
// upload request is built directly.
func (c *Client) UploadReleaseAsset(ctx context.Context, owner, repo string, releaseID int64, asset Asset) (*github.ReleaseAsset, error) {
	if asset.Name == "" {
		return nil, fmt.Errorf("asset name is required")
	}
	if asset.Body == nil {
		return nil, fmt.Errorf("asset %s has no content", asset.Name)
	}

	contentType := asset.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	u := fmt.Sprintf("repos/%s/%s/releases/%d/assets?name=%s", owner, repo, releaseID, url.QueryEscape(asset.Name))
	req, err := c.client.NewUploadRequest(u, asset.Body, asset.Size, contentType)
	if err != nil {
		return nil, fmt.Errorf("failed to build upload request for %s: %w", asset.Name, err)
	}

	uploaded := new(github.ReleaseAsset)
	if _, err := c.client.Do(ctx, req, uploaded); err != nil {
		return nil, fmt.Errorf("failed to upload asset to release %d: %w", releaseID, err)
	}

	return uploaded, nil
}
