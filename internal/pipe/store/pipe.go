package store

import (
	"fmt"
	"path"

	"github.com/mimeset/mimeset/pkg/context"
	"github.com/mimeset/mimeset/pkg/s3store"
	"github.com/mimeset/mimeset/pkg/upload"
)

// Pipe puts every input file into the configured S3 bucket with its
// resolved content type.
type Pipe struct{}

func (Pipe) String() string { return "storing files in S3" }

func (Pipe) Run(ctx *context.Context) error {
	if ctx.SkipPublish {
		return skipError("publishing skipped")
	}

	cfg := ctx.Config.Store.S3
	if cfg.Bucket == "" {
		return skipError("no S3 bucket configured")
	}

	if len(ctx.Files) == 0 {
		return fmt.Errorf("no files to store")
	}

	client := ctx.S3Client
	if client == nil {
		c, err := s3store.NewClient(ctx.StdCtx, cfg)
		if err != nil {
			return err
		}
		client = c
		ctx.S3Client = c
	}

	store, err := s3store.New(client, cfg.Bucket)
	if err != nil {
		return err
	}

	prefix := path.Join(cfg.Prefix, ctx.Config.Uploader.Prefix)
	for _, f := range ctx.Files {
		if err := ctx.Err(); err != nil {
			return err
		}

		location, err := put(ctx, store, prefix, f)
		if err != nil {
			return fmt.Errorf("failed to store %s: %w", f.Name, err)
		}

		ctx.Published = append(ctx.Published, context.Published{
			File:        f.Name,
			Destination: "s3",
			Location:    location,
		})
		ctx.Logger.Infof("Stored %s (%s)", location, f.ContentType())
	}

	return nil
}

func put(ctx *context.Context, store *s3store.Store, prefix string, f *upload.LocalFile) (string, error) {
	body, err := f.Open()
	if err != nil {
		return "", err
	}
	defer func() { _ = body.Close() }()

	return store.Put(ctx.StdCtx, s3store.Object{
		Key:         s3store.Key(prefix, ctx.Config.Uploader.Name, f.Name),
		Body:        body,
		Size:        f.Size,
		ContentType: f.ContentType(),
		SHA256:      f.SHA256,
	})
}
