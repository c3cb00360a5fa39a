//go:build !windows

package config

import (
	"os"

	"golang.org/x/term"
)

func enableColorOutput(stream *os.File) bool {
	if noColor() || os.Getenv("TERM") == "dumb" {
		return false
	}
	return term.IsTerminal(int(stream.Fd()))
}
