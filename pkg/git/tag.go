// Package git reads release tags from the local repository.
package git

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrNoTags is returned when the repository has no reachable tag.
var ErrNoTags = errors.New("no git tags found")

// LatestTag returns the most recent tag reachable from HEAD in dir
// (`git describe --tags --abbrev=0`). An empty dir means the working directory.
func LatestTag(ctx context.Context, dir string) (string, error) {
	if _, err := exec.LookPath("git"); err != nil {
		return "", fmt.Errorf("git is not installed or not in PATH")
	}

	cmd := exec.CommandContext(ctx, "git", "describe", "--tags", "--abbrev=0")
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			stderr := string(exitErr.Stderr)
			if strings.Contains(stderr, "No names found") || strings.Contains(stderr, "No tags") {
				return "", ErrNoTags
			}
			if strings.Contains(stderr, "not a git repository") {
				return "", fmt.Errorf("%s is not a git repository", dirName(dir))
			}
		}
		return "", fmt.Errorf("failed to read latest git tag: %w", err)
	}

	tag := strings.TrimSpace(string(out))
	if tag == "" {
		return "", ErrNoTags
	}
	return tag, nil
}

func dirName(dir string) string {
	if dir == "" {
		return "working directory"
	}
	return dir
}
