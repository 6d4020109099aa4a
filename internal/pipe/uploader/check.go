package uploader

import (
	"fmt"
	"strings"

	"github.com/mimeset/mimeset/pkg/context"
	"github.com/mimeset/mimeset/pkg/env"
	"github.com/mimeset/mimeset/pkg/validate"
)

// CheckPipe validates uploader configuration
type CheckPipe struct{}

func (CheckPipe) String() string { return "validating uploader configuration" }

func (CheckPipe) Run(ctx *context.Context) error {
	cfg := ctx.Config.Uploader

	if err := validate.RequiredString(cfg.Name, "uploader.name"); err != nil {
		return err
	}
	if err := env.CheckResolved(cfg.Prefix, "uploader.prefix"); err != nil {
		return err
	}

	// name becomes a single object key segment
	if strings.ContainsAny(cfg.Name, `/\`) {
		return fmt.Errorf("uploader.name must not contain path separators: %s", cfg.Name)
	}

	ctx.Logger.Debug("Uploader configuration validated successfully")
	return nil
}
