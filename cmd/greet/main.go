// Command greet links the two greeter components in different ways and
// emits the fixed three-line greeting: the shared component's line,
// the static component's line, then its own trailer.
//
// The shared component is resolved at run time from greetshared.so
// beside the executable (build it with `make plugin`); the static
// component is compiled into this binary.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mwade/greetlink/internal/greeting"
	"github.com/mwade/greetlink/internal/loader"
	"github.com/mwade/greetlink/internal/logging"
	"github.com/mwade/greetlink/internal/runid"

	"github.com/sirupsen/logrus"
)

// Version is set at build time via -ldflags.
var Version = "0.1.0"

func main() {
	logging.Init(os.Stderr, logrus.InfoLevel, runid.New())
	logging.Info("starting", map[string]interface{}{"version": Version})

	if err := run(os.Stdout, loadShared); err != nil {
		// Only reachable with broken or missing build artifacts.
		logging.Error("run failed", err)
		os.Exit(1)
	}
}

// loadShared resolves the shared greeter from its default artifact
// location beside the executable.
func loadShared() (greeting.Greeter, error) {
	path, err := loader.DefaultPath()
	if err != nil {
		return nil, err
	}
	return loader.Load(path)
}

// run drives the fixed greeting sequence: obtain the shared component,
// construct the static one, then greet in order and write the trailer.
func run(out io.Writer, load func() (greeting.Greeter, error)) error {
	shared, err := load()
	if err != nil {
		return err
	}
	static := greeting.NewStaticGreeter(out)

	shared.Greet()
	static.Greet()

	_, err = fmt.Fprintln(out, greeting.ExecutableMessage)
	return err
}
