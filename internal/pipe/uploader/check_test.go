package uploader

import (
	"context"
	"strings"
	"testing"

	"github.com/mimeset/mimeset/pkg/config"
	mimeCtx "github.com/mimeset/mimeset/pkg/context"
	"github.com/sirupsen/logrus"
)

func TestCheckPipe(t *testing.T) {
	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)

	tests := []struct {
		name    string
		config  *config.Config
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid configuration",
			config: &config.Config{
				Uploader: config.UploaderConfig{Name: "avatars"},
			},
			wantErr: false,
		},
		{
			name: "valid with prefix",
			config: &config.Config{
				Uploader: config.UploaderConfig{Name: "avatars", Prefix: "uploads/2024"},
			},
			wantErr: false,
		},
		{
			name: "missing name",
			config: &config.Config{
				Uploader: config.UploaderConfig{Name: ""},
			},
			wantErr: true,
			errMsg:  "uploader.name is required",
		},
		{
			name: "name with separator",
			config: &config.Config{
				Uploader: config.UploaderConfig{Name: "users/avatars"},
			},
			wantErr: true,
			errMsg:  "must not contain path separators",
		},
		{
			name: "unresolved prefix",
			config: &config.Config{
				Uploader: config.UploaderConfig{Name: "avatars", Prefix: "env(UPLOAD_PREFIX)"},
			},
			wantErr: true,
			errMsg:  "uploader.prefix: environment variable UPLOAD_PREFIX is not set",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := mimeCtx.NewContext(context.Background(), tt.config, logger)
			err := CheckPipe{}.Run(ctx)

			if (err != nil) != tt.wantErr {
				t.Errorf("Run() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if tt.wantErr && tt.errMsg != "" {
				if err == nil || !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("Run() error = %v, want error containing %q", err, tt.errMsg)
				}
			}
		})
	}
}

func TestCheckPipeString(t *testing.T) {
	p := CheckPipe{}
	expected := "validating uploader configuration"
	if got := p.String(); got != expected {
		t.Errorf("String() = %q, want %q", got, expected)
	}
}
