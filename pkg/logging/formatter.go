// Package logging holds the console formatter used outside debug mode.
package logging

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

// ActionKey marks an entry as the start of a pipeline step.
const ActionKey = "action"

// BulletFormatter prints entries as indented bullets:
//
//	  * resolving content types
//	    * resolved content type  content_type=image/jpeg file=photo.jpg
//	    ! no content type found  file=scan.bin
//	  x upload failed
//
// Entries carrying ActionKey become top-level bullets. Remaining fields are
// appended as sorted key=value pairs.
type BulletFormatter struct{}

func (f *BulletFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var buf bytes.Buffer

	if action, ok := entry.Data[ActionKey]; ok {
		fmt.Fprintf(&buf, "  * %v", action)
	} else {
		fmt.Fprintf(&buf, "%s%s", bullet(entry.Level), entry.Message)
	}
	buf.WriteString(formatFields(entry.Data, ActionKey))

	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func bullet(level logrus.Level) string {
	switch {
	case level <= logrus.ErrorLevel:
		return "  x "
	case level == logrus.WarnLevel:
		return "    ! "
	case level == logrus.InfoLevel:
		return "    * "
	default:
		return "      "
	}
}

// formatFields returns "  k=v k=v" for the fields not in skip, or "".
func formatFields(fields logrus.Fields, skip ...string) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		skipped := false
		for _, s := range skip {
			if k == s {
				skipped = true
				break
			}
		}
		if !skipped {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return ""
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%v", k, fields[k])
	}
	return "  " + strings.Join(parts, " ")
}
