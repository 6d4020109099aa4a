package release

import (
	"fmt"

	"github.com/mimeset/mimeset/pkg/context"
	"github.com/mimeset/mimeset/pkg/env"
	"github.com/mimeset/mimeset/pkg/git"
	"github.com/mimeset/mimeset/pkg/github"
	"github.com/mimeset/mimeset/pkg/validate"
)

// skipError signals an intentional skip. It satisfies the pipe.IsSkip interface
// checked by the pipeline runner, without importing pkg/pipe (which would cause
// an import cycle through pkg/pipe/registry.go).
type skipError string

func (e skipError) Error() string { return string(e) }
func (e skipError) IsSkip() bool  { return true }

// CheckPipe validates release configuration
type CheckPipe struct{}

func (CheckPipe) String() string { return "validating release configuration" }

func (CheckPipe) Run(ctx *context.Context) error {
	cfg := ctx.Config.Release.GitHub

	if cfg.Owner == "" {
		return skipError("no GitHub release configured")
	}

	if err := env.CheckResolved(cfg.Owner, "release.github.owner"); err != nil {
		return err
	}
	if err := env.CheckResolved(cfg.Repo, "release.github.repo"); err != nil {
		return err
	}
	if err := env.CheckResolved(cfg.Tag, "release.github.tag"); err != nil {
		return err
	}
	if err := env.CheckResolved(cfg.Token, "release.github.token"); err != nil {
		return err
	}

	if err := validate.RequiredString(cfg.Repo, "release.github.repo"); err != nil {
		return err
	}

	if _, err := releaseTag(ctx); err != nil {
		return err
	}

	if token(ctx) == "" {
		return fmt.Errorf("release.github.token is required (or set GITHUB_TOKEN)")
	}

	ctx.Logger.Debug("Release configuration validated successfully")
	return nil
}

// latestTag is swapped out in tests
var latestTag = git.LatestTag

// releaseTag returns the configured tag, falling back to the latest git tag
func releaseTag(ctx *context.Context) (string, error) {
	if tag := ctx.Config.Release.GitHub.Tag; tag != "" {
		return tag, nil
	}
	tag, err := latestTag(ctx.StdCtx, "")
	if err != nil {
		return "", fmt.Errorf("release.github.tag is empty and no git tag is available: %w", err)
	}
	return tag, nil
}

// token returns the configured token, falling back to GITHUB_TOKEN
func token(ctx *context.Context) string {
	if t := ctx.Config.Release.GitHub.Token; t != "" {
		return t
	}
	return github.GetGitHubToken()
}
