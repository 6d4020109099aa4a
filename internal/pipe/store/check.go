package store

import (
	"fmt"

	"github.com/mimeset/mimeset/pkg/context"
	"github.com/mimeset/mimeset/pkg/env"
	"github.com/mimeset/mimeset/pkg/validate"
)

// skipError signals an intentional skip. It satisfies the pipe.IsSkip interface
// checked by the pipeline runner, without importing pkg/pipe (which would cause
// an import cycle through pkg/pipe/registry.go).
type skipError string

func (e skipError) Error() string { return string(e) }
func (e skipError) IsSkip() bool  { return true }

// CheckPipe validates S3 store configuration
type CheckPipe struct{}

func (CheckPipe) String() string { return "validating store configuration" }

func (CheckPipe) Run(ctx *context.Context) error {
	cfg := ctx.Config.Store.S3

	if cfg.Bucket == "" {
		return skipError("no S3 bucket configured")
	}

	fields := []struct{ value, name string }{
		{cfg.Bucket, "store.s3.bucket"},
		{cfg.Region, "store.s3.region"},
		{cfg.Prefix, "store.s3.prefix"},
		{cfg.Endpoint, "store.s3.endpoint"},
		{cfg.Credentials.AccessKey, "store.s3.credentials.access_key"},
		{cfg.Credentials.SecretKey, "store.s3.credentials.secret_key"},
	}
	for _, f := range fields {
		if err := env.CheckResolved(f.value, f.name); err != nil {
			return err
		}
	}

	if err := validate.RequiredString(cfg.Region, "store.s3.region"); err != nil {
		return err
	}

	if (cfg.Credentials.AccessKey == "") != (cfg.Credentials.SecretKey == "") {
		return fmt.Errorf("store.s3.credentials requires both access_key and secret_key")
	}

	ctx.Logger.Debug("Store configuration validated successfully")
	return nil
}
