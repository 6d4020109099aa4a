package github

import (
	"context"
	"fmt"
	"io"

	"github.com/google/go-github/github"
)

// Ensure MockClient implements ClientInterface
var _ ClientInterface = (*MockClient)(nil)

// UploadedAsset records one call to MockClient.UploadReleaseAsset
type UploadedAsset struct {
	ReleaseID   int64
	Name        string
	ContentType string
	Size        int64
	Content     []byte
}

// MockClient is a mock implementation of the GitHub client for testing
type MockClient struct {
	Releases       map[string][]*github.RepositoryRelease // key: "owner/repo"
	UploadedAssets []UploadedAsset
	ErrorToReturn  error
	UploadError    error // if non-nil, returned by UploadReleaseAsset instead of ErrorToReturn
}

// NewMockClient creates a new mock GitHub client
func NewMockClient() *MockClient {
	return &MockClient{
		Releases: make(map[string][]*github.RepositoryRelease),
	}
}

// GetRelease fetches a specific release from mock data.
// A missing release returns a *NotFoundError.
func (m *MockClient) GetRelease(ctx context.Context, owner, repo, tag string) (*github.RepositoryRelease, error) {
	if m.ErrorToReturn != nil {
		return nil, m.ErrorToReturn
	}

	key := fmt.Sprintf("%s/%s", owner, repo)
	for _, release := range m.Releases[key] {
		if release.GetTagName() == tag {
			return release, nil
		}
	}

	return nil, &NotFoundError{Message: fmt.Sprintf("release %s not found in %s", tag, key)}
}

// CreateRelease creates a new release in mock data
func (m *MockClient) CreateRelease(ctx context.Context, owner, repo string, release *github.RepositoryRelease) (*github.RepositoryRelease, error) {
	if m.ErrorToReturn != nil {
		return nil, m.ErrorToReturn
	}

	key := fmt.Sprintf("%s/%s", owner, repo)

	// Assign synthetic ID and URL for testing
	id := int64(len(m.Releases[key]) + 1)
	release.ID = &id
	htmlURL := fmt.Sprintf("https://github.com/%s/releases/tag/%s", key, release.GetTagName())
	release.HTMLURL = &htmlURL

	m.Releases[key] = append(m.Releases[key], release)
	return release, nil
}

// UploadReleaseAsset records the asset and reads its body.
// If UploadError is set, it is returned instead of ErrorToReturn.
func (m *MockClient) UploadReleaseAsset(ctx context.Context, owner, repo string, releaseID int64, asset Asset) (*github.ReleaseAsset, error) {
	if m.UploadError != nil {
		return nil, m.UploadError
	}
	if m.ErrorToReturn != nil {
		return nil, m.ErrorToReturn
	}

	content, err := io.ReadAll(asset.Body)
	if err != nil {
		return nil, err
	}

	m.UploadedAssets = append(m.UploadedAssets, UploadedAsset{
		ReleaseID:   releaseID,
		Name:        asset.Name,
		ContentType: asset.ContentType,
		Size:        asset.Size,
		Content:     content,
	})

	name := asset.Name
	contentType := asset.ContentType
	downloadURL := fmt.Sprintf("https://github.com/%s/%s/releases/download/%d/%s", owner, repo, releaseID, name)
	return &github.ReleaseAsset{
		Name:               &name,
		ContentType:        &contentType,
		BrowserDownloadURL: &downloadURL,
	}, nil
}

// SetError sets an error to be returned by all mock operations
func (m *MockClient) SetError(err error) {
	m.ErrorToReturn = err
}

// AddRelease adds a release to mock data
func (m *MockClient) AddRelease(owner, repo string, release *github.RepositoryRelease) {
	key := fmt.Sprintf("%s/%s", owner, repo)
	m.Releases[key] = append(m.Releases[key], release)
}
