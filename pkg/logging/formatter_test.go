package logging

import (
	"testing"

	"github.com/sirupsen/logrus"
)

func TestBulletFormatterAction(t *testing.T) {
	f := &BulletFormatter{}
	entry := &logrus.Entry{
		Level: logrus.InfoLevel,
		Data:  logrus.Fields{"action": "resolving content types"},
	}
	out, err := f.Format(entry)
	if err != nil {
		t.Fatal(err)
	}
	want := "  * resolving content types\n"
	if string(out) != want {
		t.Errorf("got %q, want %q", string(out), want)
	}
}

func TestBulletFormatterActionWithFields(t *testing.T) {
	f := &BulletFormatter{}
	entry := &logrus.Entry{
		Level: logrus.InfoLevel,
		Data: logrus.Fields{
			"action": "storing files in S3",
			"bucket": "media",
			"region": "eu-central-1",
		},
	}
	out, err := f.Format(entry)
	if err != nil {
		t.Fatal(err)
	}
	want := "  * storing files in S3  bucket=media region=eu-central-1\n"
	if string(out) != want {
		t.Errorf("got %q, want %q", string(out), want)
	}
}

func TestBulletFormatterInfo(t *testing.T) {
	f := &BulletFormatter{}
	entry := &logrus.Entry{
		Level:   logrus.InfoLevel,
		Message: "Uploaded photo.jpg (image/jpeg)",
		Data:    logrus.Fields{},
	}
	out, err := f.Format(entry)
	if err != nil {
		t.Fatal(err)
	}
	want := "    * Uploaded photo.jpg (image/jpeg)\n"
	if string(out) != want {
		t.Errorf("got %q, want %q", string(out), want)
	}
}

func TestBulletFormatterWarn(t *testing.T) {
	f := &BulletFormatter{}
	entry := &logrus.Entry{
		Level:   logrus.WarnLevel,
		Message: "no content type found",
		Data:    logrus.Fields{},
	}
	out, err := f.Format(entry)
	if err != nil {
		t.Fatal(err)
	}
	want := "    ! no content type found\n"
	if string(out) != want {
		t.Errorf("got %q, want %q", string(out), want)
	}
}

func TestBulletFormatterError(t *testing.T) {
	f := &BulletFormatter{}
	entry := &logrus.Entry{
		Level:   logrus.ErrorLevel,
		Message: "upload failed",
		Data:    logrus.Fields{},
	}
	out, err := f.Format(entry)
	if err != nil {
		t.Fatal(err)
	}
	want := "  x upload failed\n"
	if string(out) != want {
		t.Errorf("got %q, want %q", string(out), want)
	}
}

func TestBulletFormatterInfoWithFields(t *testing.T) {
	f := &BulletFormatter{}
	entry := &logrus.Entry{
		Level:   logrus.InfoLevel,
		Message: "resolved content type",
		Data:    logrus.Fields{"file": "photo.jpg", "content_type": "image/jpeg"},
	}
	out, err := f.Format(entry)
	if err != nil {
		t.Fatal(err)
	}
	want := "    * resolved content type  content_type=image/jpeg file=photo.jpg\n"
	if string(out) != want {
		t.Errorf("got %q, want %q", string(out), want)
	}
}

func TestBulletFormatterDebug(t *testing.T) {
	f := &BulletFormatter{}
	entry := &logrus.Entry{
		Level:   logrus.DebugLevel,
		Message: "completed: computing checksums",
		Data:    logrus.Fields{"took": "3ms"},
	}
	out, err := f.Format(entry)
	if err != nil {
		t.Fatal(err)
	}
	want := "      completed: computing checksums  took=3ms\n"
	if string(out) != want {
		t.Errorf("got %q, want %q", string(out), want)
	}
}
