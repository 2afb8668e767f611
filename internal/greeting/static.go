package greeting

import (
	"fmt"
	"io"
	"os"
)

// StaticGreeter is the component embedded in the executable at build
// time. It carries no state beyond its output destination.
type StaticGreeter struct {
	out io.Writer
}

// NewStaticGreeter creates a StaticGreeter writing to out.
// A nil writer defaults to os.Stdout.
func NewStaticGreeter(out io.Writer) *StaticGreeter {
	if out == nil {
		out = os.Stdout
	}
	return &StaticGreeter{out: out}
}

// Greet writes the static greeting line. Repeated calls write the
// identical line each time.
func (g *StaticGreeter) Greet() {
	fmt.Fprintln(g.out, StaticMessage)
}
