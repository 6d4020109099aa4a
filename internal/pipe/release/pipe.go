package release

import (
	"fmt"

	gogithub "github.com/google/go-github/github"
	"github.com/mimeset/mimeset/pkg/context"
	"github.com/mimeset/mimeset/pkg/github"
	"github.com/mimeset/mimeset/pkg/upload"
)

// Pipe attaches every input file to a GitHub release as an asset carrying
// its resolved content type. The release is created when the tag has none.
type Pipe struct{}

func (Pipe) String() string { return "publishing GitHub release assets" }

func (Pipe) Run(ctx *context.Context) error {
	if ctx.SkipPublish {
		return skipError("publishing skipped")
	}

	cfg := ctx.Config.Release.GitHub
	if cfg.Owner == "" {
		return skipError("no GitHub release configured")
	}

	if len(ctx.Files) == 0 {
		return fmt.Errorf("no files to release")
	}

	client := ctx.GitHubClient
	if client == nil {
		c, err := github.NewClient(token(ctx))
		if err != nil {
			return err
		}
		client = c
		ctx.GitHubClient = c
	}

	tag, err := releaseTag(ctx)
	if err != nil {
		return err
	}

	release, err := findOrCreateRelease(ctx, client, tag)
	if err != nil {
		return err
	}
	ctx.Logger.Infof("Using release %s", release.GetHTMLURL())

	for _, f := range ctx.Files {
		if err := ctx.Err(); err != nil {
			return err
		}

		asset, err := uploadAsset(ctx, client, release.GetID(), f)
		if err != nil {
			return fmt.Errorf("failed to upload asset %s: %w", f.Name, err)
		}

		ctx.Published = append(ctx.Published, context.Published{
			File:        f.Name,
			Destination: "github",
			Location:    asset.GetBrowserDownloadURL(),
		})
		ctx.Logger.Infof("Uploaded %s (%s)", f.Name, f.ContentType())
	}

	return nil
}

func findOrCreateRelease(ctx *context.Context, client github.ClientInterface, tag string) (*gogithub.RepositoryRelease, error) {
	cfg := ctx.Config.Release.GitHub

	release, err := client.GetRelease(ctx.StdCtx, cfg.Owner, cfg.Repo, tag)
	if err == nil {
		return release, nil
	}
	if !github.IsNotFound(err) {
		return nil, fmt.Errorf("failed to look up GitHub release %s: %w", tag, err)
	}

	ctx.Logger.Infof("Creating release %s in %s/%s", tag, cfg.Owner, cfg.Repo)
	release, err = client.CreateRelease(ctx.StdCtx, cfg.Owner, cfg.Repo, &gogithub.RepositoryRelease{
		TagName: gogithub.String(tag),
		Name:    gogithub.String(tag),
		Draft:   gogithub.Bool(cfg.Draft),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GitHub release %s: %w", tag, err)
	}
	return release, nil
}

func uploadAsset(ctx *context.Context, client github.ClientInterface, releaseID int64, f *upload.LocalFile) (*gogithub.ReleaseAsset, error) {
	body, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer func() { _ = body.Close() }()

	cfg := ctx.Config.Release.GitHub
	return client.UploadReleaseAsset(ctx.StdCtx, cfg.Owner, cfg.Repo, releaseID, github.Asset{
		Name:        f.Name,
		ContentType: f.ContentType(),
		Size:        f.Size,
		Body:        body,
	})
}
