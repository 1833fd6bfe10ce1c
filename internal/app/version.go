package app

import (
	"fmt"
	"io"
	"runtime"
)

// Version is the application version, overridable at build time with
// -ldflags "-X github.com/agbru/finagent/internal/app.Version=...".
var Version = "1.0.0"

// HasVersionFlag reports whether args contains a version flag.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		if arg == "--version" || arg == "-version" || arg == "-v" {
			return true
		}
	}
	return false
}

// PrintVersion writes the version line to out.
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, "finagent %s (%s, %s/%s)\n",
		Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
