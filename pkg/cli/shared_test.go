package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mimeset/mimeset/pkg/config"
	mimeCtx "github.com/mimeset/mimeset/pkg/context"
	"github.com/mimeset/mimeset/pkg/logging"
	"github.com/mimeset/mimeset/pkg/pipeline"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{"zero", 0, "0ms"},
		{"milliseconds", 523 * time.Millisecond, "523ms"},
		{"sub-second", 999 * time.Millisecond, "999ms"},
		{"one second", time.Second, "1s"},
		{"seconds", 45 * time.Second, "45s"},
		{"one minute", time.Minute, "1m"},
		{"minutes and seconds", time.Minute + 32*time.Second, "1m32s"},
		{"exact minutes", 2 * time.Minute, "2m"},
		{"large", 5*time.Minute + 12*time.Second, "5m12s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatDuration(tt.d)
			if got != tt.want {
				t.Errorf("formatDuration(%v) = %q, want %q", tt.d, got, tt.want)
			}
		})
	}
}

func TestSetupLogger(t *testing.T) {
	logger := SetupLogger(false)
	if logger.GetLevel() != logrus.InfoLevel {
		t.Errorf("level = %v, want info", logger.GetLevel())
	}
	if _, ok := logger.Formatter.(*logging.BulletFormatter); !ok {
		t.Errorf("formatter = %T, want *logging.BulletFormatter", logger.Formatter)
	}

	debug := SetupLogger(true)
	if debug.GetLevel() != logrus.DebugLevel {
		t.Errorf("level = %v, want debug", debug.GetLevel())
	}
	if _, ok := debug.Formatter.(*logrus.TextFormatter); !ok {
		t.Errorf("formatter = %T, want *logrus.TextFormatter", debug.Formatter)
	}
}

func TestLoadFiles(t *testing.T) {
	dir := t.TempDir()
	photo := filepath.Join(dir, "photo.jpg")
	if err := os.WriteFile(photo, []byte("jpeg"), 0644); err != nil {
		t.Fatal(err)
	}

	files, err := loadFiles([]string{photo}, "application/octet-stream")
	if err != nil {
		t.Fatalf("loadFiles() unexpected error: %v", err)
	}
	if len(files) != 1 || files[0].ContentType() != "application/octet-stream" {
		t.Errorf("loadFiles() = %+v, want one file with the declared type", files)
	}

	if _, err := loadFiles([]string{photo, dir}, ""); err == nil || !strings.Contains(err.Error(), "not a regular file") {
		t.Errorf("loadFiles() error = %v, want not a regular file", err)
	}
}

func TestWriteResolved(t *testing.T) {
	dir := t.TempDir()
	paths := []string{filepath.Join(dir, "photo.jpg"), filepath.Join(dir, "blob.nosuchextension")}
	for _, p := range paths {
		if err := os.WriteFile(p, []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	files, err := loadFiles(paths, "")
	if err != nil {
		t.Fatal(err)
	}
	files[0].SetContentType("image/jpeg")

	var buf bytes.Buffer
	writeResolved(&buf, []string{"photo.jpg", "blob.nosuchextension"}, files)

	want := "photo.jpg\timage/jpeg\nblob.nosuchextension\t\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestApplyFileFlagsResolveOutput(t *testing.T) {
	dir := t.TempDir()
	photo := filepath.Join(dir, "photo.jpg")
	if err := os.WriteFile(photo, []byte("jpeg"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		flags    map[string]string
		want     string
		override bool
	}{
		{name: "no declared type", want: "photo.jpg\timage/jpeg\n"},
		{name: "generic declared type", flags: map[string]string{"content-type": "application/octet-stream"}, want: "photo.jpg\timage/jpeg\n"},
		{name: "specific declared type kept", flags: map[string]string{"content-type": "image/custom"}, want: "photo.jpg\timage/custom\n"},
		{name: "specific declared type overridden", flags: map[string]string{"content-type": "image/custom", "override": "true"}, want: "photo.jpg\timage/jpeg\n", override: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &cobra.Command{Use: "resolve"}
			addFileFlags(cmd)
			for name, value := range tt.flags {
				if err := cmd.Flags().Set(name, value); err != nil {
					t.Fatalf("Set(%s): %v", name, err)
				}
			}

			logger := logrus.New()
			logger.SetOutput(io.Discard)
			ctx := mimeCtx.NewContext(context.Background(), &config.Config{}, logger)
			if err := applyFileFlags(cmd, []string{photo}, ctx); err != nil {
				t.Fatalf("applyFileFlags() unexpected error: %v", err)
			}
			if ctx.Override != tt.override {
				t.Errorf("Override = %v, want %v", ctx.Override, tt.override)
			}
			if want := tt.flags["content-type"]; ctx.Files[0].ContentType() != want {
				t.Errorf("declared type = %q, want %q", ctx.Files[0].ContentType(), want)
			}

			if err := pipeline.RunResolve(ctx); err != nil {
				t.Fatalf("RunResolve() error = %v", err)
			}

			var buf bytes.Buffer
			writeResolved(&buf, []string{"photo.jpg"}, ctx.Files)
			if buf.String() != tt.want {
				t.Errorf("output = %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestApplyFileFlagsMissingFile(t *testing.T) {
	cmd := &cobra.Command{Use: "resolve"}
	addFileFlags(cmd)
	ctx := mimeCtx.NewContext(context.Background(), &config.Config{}, logrus.New())

	if err := applyFileFlags(cmd, []string{filepath.Join(t.TempDir(), "missing.jpg")}, ctx); err == nil {
		t.Error("applyFileFlags() expected error for missing file")
	}
	if ctx.Files != nil {
		t.Errorf("Files = %v, want nil on error", ctx.Files)
	}
}
