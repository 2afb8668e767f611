package greeting

import (
	"fmt"
	"io"
	"os"
)

// SharedGreeter is the component intended to ship in a separately
// loadable artifact. Its source lives here so the plugin and any
// in-process fallback build from the same definition; the executable
// normally obtains an instance through internal/loader.
type SharedGreeter struct {
	out io.Writer
}

// NewSharedGreeter creates a SharedGreeter writing to out.
// A nil writer defaults to os.Stdout.
func NewSharedGreeter(out io.Writer) *SharedGreeter {
	if out == nil {
		out = os.Stdout
	}
	return &SharedGreeter{out: out}
}

// Greet writes the shared greeting line. Repeated calls write the
// identical line each time.
func (g *SharedGreeter) Greet() {
	fmt.Fprintln(g.out, SharedMessage)
}
