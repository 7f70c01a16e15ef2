package app

import (
	"fmt"
	"io"
)

// Version is the application version. It is overridable at build time via
// -ldflags "-X github.com/numkit/seqcalc/internal/app.Version=v1.2.3".
var Version = "dev"

// HasVersionFlag reports whether the arguments request the version banner.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		if arg == "--version" || arg == "-version" {
			return true
		}
	}
	return false
}

// PrintVersion writes the version banner.
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, "seqcalc %s\n", Version)
}
