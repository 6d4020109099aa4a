package context

import (
	"context"

	"github.com/mimeset/mimeset/pkg/config"
	"github.com/mimeset/mimeset/pkg/github"
	"github.com/mimeset/mimeset/pkg/s3store"
	"github.com/mimeset/mimeset/pkg/upload"
	"github.com/sirupsen/logrus"
)

// Published records one file delivered to a destination
type Published struct {
	File        string // original filename
	Destination string // "s3" or "github"
	Location    string // object URI or asset download URL
}

// Context provides shared state for all pipes
type Context struct {
	StdCtx context.Context // Standard context for cancellation support
	Config *config.Config
	Logger *logrus.Logger

	Files       []*upload.LocalFile
	Override    bool // force content type resolution (--override)
	SkipPublish bool // resolve and checksum only (--skip-publish)
	Published   []Published

	GitHubClient github.ClientInterface // injectable for testing; created from config when nil
	S3Client     s3store.API            // injectable for testing; created from config when nil
}

// NewContext creates a new context with the given standard context, config, and logger.
// If stdCtx is nil, context.Background() is used.
func NewContext(stdCtx context.Context, cfg *config.Config, logger *logrus.Logger) *Context {
	if stdCtx == nil {
		stdCtx = context.Background()
	}
	return &Context{
		StdCtx: stdCtx,
		Config: cfg,
		Logger: logger,
	}
}

// Err returns the error from the standard context
func (c *Context) Err() error {
	return c.StdCtx.Err()
}
