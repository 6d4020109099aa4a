package checksum

import (
	"fmt"

	"github.com/mimeset/mimeset/pkg/checksum"
	"github.com/mimeset/mimeset/pkg/context"
)

// Pipe records the SHA256 of every input file.
type Pipe struct{}

func (Pipe) String() string { return "computing checksums" }

func (Pipe) Run(ctx *context.Context) error {
	for _, f := range ctx.Files {
		if err := ctx.Err(); err != nil {
			return err
		}

		sum, err := checksum.ComputeSHA256(f.Path)
		if err != nil {
			return fmt.Errorf("%s: %w", f.Name, err)
		}
		f.SHA256 = sum
		ctx.Logger.Debugf("sha256 %s %s", sum, f.Name)
	}

	ctx.Logger.Infof("Computed %d checksums", len(ctx.Files))
	return nil
}
