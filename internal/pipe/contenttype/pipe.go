package contenttype

import (
	"fmt"

	"github.com/mimeset/mimeset/pkg/config"
	"github.com/mimeset/mimeset/pkg/context"
	ct "github.com/mimeset/mimeset/pkg/contenttype"
	"github.com/mimeset/mimeset/pkg/mimetypes"
	"github.com/sirupsen/logrus"
)

// Pipe assigns a content type to every input file.
type Pipe struct{}

func (Pipe) String() string { return "resolving content types" }

func (Pipe) Run(ctx *context.Context) error {
	if len(ctx.Files) == 0 {
		return fmt.Errorf("no files to process")
	}

	cfg := ctx.Config.ContentType
	resolver := NewResolver(cfg)
	override := ctx.Override || cfg.Override

	for _, f := range ctx.Files {
		if err := ctx.Err(); err != nil {
			return err
		}

		declared := f.ContentType()
		changed, err := resolver.Set(f, override)
		if err != nil {
			return fmt.Errorf("%s: %w", f.Name, err)
		}

		entry := ctx.Logger.WithFields(logrus.Fields{
			"file":         f.Name,
			"content_type": f.ContentType(),
		})
		switch {
		case !changed:
			entry.Info("kept declared content type")
		case f.ContentType() == "":
			entry.Warn("no content type found")
		case declared != "" && declared != f.ContentType():
			entry.WithField("declared", declared).Info("replaced content type")
		default:
			entry.Info("resolved content type")
		}
	}

	return nil
}

// NewResolver builds a resolver from configuration. Custom type rules are
// consulted before the built-in tables.
func NewResolver(cfg config.ContentTypeConfig) *ct.Resolver {
	registry := mimetypes.NewRegistry(mimetypes.WithSystemTypes(cfg.UseSystemTypes()))
	for _, rule := range cfg.Types {
		registry.Add(rule.Extension, rule.Type)
	}

	var opts []ct.Option
	if cfg.Sniff {
		opts = append(opts, ct.WithSniffer(mimetypes.NewSniffer()))
	}
	return ct.NewResolver(registry, opts...)
}
