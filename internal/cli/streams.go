// SPDX-License-Identifier: MIT

package cli

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// Streams bundles the I/O handles a command tree reads and writes.
// Tests replace them with buffers.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer

	// IsTerminal reports whether In is an interactive terminal. It decides
	// whether the input prompt is shown in "auto" mode.
	IsTerminal func() bool
}

// StdStreams returns the process streams.
func StdStreams() Streams {
	return Streams{
		In:  os.Stdin,
		Out: os.Stdout,
		Err: os.Stderr,
		IsTerminal: func() bool {
			fd := os.Stdin.Fd()

			return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
		},
	}
}

// interactive is IsTerminal with a nil guard.
func (s Streams) interactive() bool {
	return s.IsTerminal != nil && s.IsTerminal()
}
