// Package home resolves paths relative to the user's home directory.
package home

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Dir returns the user's home directory, or an empty string when it cannot be
// determined.
var Dir = sync.OnceValue(func() string {
	dir, err := os.UserHomeDir()
	if err != nil {
		slog.Warn("could not find the user home directory", "error", err)
		return ""
	}
	return dir
})

// Long expands a leading `~` to [Dir].
func Long(p string) string {
	if Dir() == "" {
		return p
	}
	if p == "~" {
		return Dir()
	}
	if rest, ok := strings.CutPrefix(p, "~/"); ok {
		return filepath.Join(Dir(), rest)
	}
	return p
}
