package release

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/mimeset/mimeset/pkg/config"
	mimeCtx "github.com/mimeset/mimeset/pkg/context"
	"github.com/sirupsen/logrus"
)

func stubLatestTag(t *testing.T, tag string, err error) {
	t.Helper()
	original := latestTag
	latestTag = func(context.Context, string) (string, error) { return tag, err }
	t.Cleanup(func() { latestTag = original })
}

func TestCheckPipe(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "")
	stubLatestTag(t, "", errors.New("no git tags found"))

	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)

	valid := config.GitHubConfig{Owner: "testuser", Repo: "testrepo", Tag: "v1.0.0", Token: "secret"}

	tests := []struct {
		name     string
		github   func(c *config.GitHubConfig)
		wantErr  bool
		wantSkip bool
		errMsg   string
	}{
		{
			name:    "valid configuration",
			github:  func(c *config.GitHubConfig) {},
			wantErr: false,
		},
		{
			name:    "valid configuration with draft",
			github:  func(c *config.GitHubConfig) { c.Draft = true },
			wantErr: false,
		},
		{
			name:     "no owner skips",
			github:   func(c *config.GitHubConfig) { c.Owner = "" },
			wantErr:  true,
			wantSkip: true,
			errMsg:   "no GitHub release configured",
		},
		{
			name:    "missing repo",
			github:  func(c *config.GitHubConfig) { c.Repo = "" },
			wantErr: true,
			errMsg:  "release.github.repo is required",
		},
		{
			name:    "missing tag without git tags",
			github:  func(c *config.GitHubConfig) { c.Tag = "" },
			wantErr: true,
			errMsg:  "release.github.tag is empty and no git tag is available: no git tags found",
		},
		{
			name:    "missing token",
			github:  func(c *config.GitHubConfig) { c.Token = "" },
			wantErr: true,
			errMsg:  "release.github.token is required",
		},
		{
			name:    "unresolved tag",
			github:  func(c *config.GitHubConfig) { c.Tag = "env(RELEASE_TAG)" },
			wantErr: true,
			errMsg:  "release.github.tag: environment variable RELEASE_TAG is not set",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gh := valid
			tt.github(&gh)
			cfg := &config.Config{Release: config.ReleaseConfig{GitHub: gh}}
			ctx := mimeCtx.NewContext(context.Background(), cfg, logger)
			err := CheckPipe{}.Run(ctx)

			if (err != nil) != tt.wantErr {
				t.Errorf("Run() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr {
				return
			}

			var s interface{ IsSkip() bool }
			if isSkip := errors.As(err, &s) && s.IsSkip(); isSkip != tt.wantSkip {
				t.Errorf("Run() skip = %v, want %v", isSkip, tt.wantSkip)
			}
			if tt.errMsg != "" && !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("Run() error = %v, want error containing %q", err, tt.errMsg)
			}
		})
	}
}

func TestCheckPipeTokenFromEnvironment(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "from-env")

	logger := logrus.New()
	cfg := &config.Config{Release: config.ReleaseConfig{GitHub: config.GitHubConfig{
		Owner: "testuser", Repo: "testrepo", Tag: "v1.0.0",
	}}}
	ctx := mimeCtx.NewContext(context.Background(), cfg, logger)

	if err := (CheckPipe{}).Run(ctx); err != nil {
		t.Errorf("Run() unexpected error: %v", err)
	}
}

func TestCheckPipeTagFromGit(t *testing.T) {
	stubLatestTag(t, "v3.1.0", nil)

	cfg := &config.Config{Release: config.ReleaseConfig{GitHub: config.GitHubConfig{
		Owner: "testuser", Repo: "testrepo", Token: "secret",
	}}}
	ctx := mimeCtx.NewContext(context.Background(), cfg, logrus.New())

	if err := (CheckPipe{}).Run(ctx); err != nil {
		t.Errorf("Run() unexpected error: %v", err)
	}
}

func TestCheckPipeString(t *testing.T) {
	p := CheckPipe{}
	expected := "validating release configuration"
	if got := p.String(); got != expected {
		t.Errorf("String() = %q, want %q", got, expected)
	}
}
