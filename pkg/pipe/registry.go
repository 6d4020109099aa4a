package pipe

import (
	"github.com/mimeset/mimeset/internal/pipe/checksum"
	"github.com/mimeset/mimeset/internal/pipe/contenttype"
	"github.com/mimeset/mimeset/internal/pipe/release"
	"github.com/mimeset/mimeset/internal/pipe/store"
	"github.com/mimeset/mimeset/internal/pipe/uploader"
)

// ValidationPipes contains all validation pipes, run by check and as the
// first stage of upload.
var ValidationPipes = []Piper{
	uploader.CheckPipe{},    // Validate uploader config
	contenttype.CheckPipe{}, // Validate custom type rules
	store.CheckPipe{},       // Validate S3 config
	release.CheckPipe{},     // Validate GitHub release config
}

// ExecutionPipes contains all execution pipes, run after validation
// succeeds in the upload command.
var ExecutionPipes = []Piper{
	contenttype.Pipe{}, // Resolve content types
	checksum.Pipe{},    // SHA256 of every file
	store.Pipe{},       // Put objects into S3
	release.Pipe{},     // Attach files to a GitHub release
}

// ResolvePipes only assigns content types, used by the resolve command.
var ResolvePipes = []Piper{
	contenttype.CheckPipe{},
	contenttype.Pipe{},
}
