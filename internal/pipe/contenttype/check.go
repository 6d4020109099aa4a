package contenttype

import (
	"fmt"

	"github.com/mimeset/mimeset/pkg/context"
	"github.com/mimeset/mimeset/pkg/env"
	"github.com/mimeset/mimeset/pkg/validate"
)

// CheckPipe validates content type configuration
type CheckPipe struct{}

func (CheckPipe) String() string { return "validating content type configuration" }

func (CheckPipe) Run(ctx *context.Context) error {
	cfg := ctx.Config.ContentType

	for i, rule := range cfg.Types {
		field := fmt.Sprintf("content_type.types[%d]", i)

		if err := env.CheckResolved(rule.Type, field+".type"); err != nil {
			return err
		}
		if err := validate.Extension(rule.Extension, field+".extension"); err != nil {
			return err
		}
		if err := validate.MediaType(rule.Type, field+".type"); err != nil {
			return err
		}
	}

	if !cfg.UseSystemTypes() {
		ctx.Logger.Debug("System MIME table disabled")
	}

	ctx.Logger.Debug("Content type configuration validated successfully")
	return nil
}
