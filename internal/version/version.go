package version

import "runtime/debug"

// Version is set at build time via -ldflags.
var Version = "devel"

// Binaries built with `go install github.com/charmbracelet/capitalize/cmd/capitalize@latest`
// carry no ldflags, but the module version is embedded in the build info.
func init() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	if v := info.Main.Version; v != "" && v != "(devel)" {
		Version = v
	}
}
