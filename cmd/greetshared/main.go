// Command greetshared is the shared greeter artifact. Build it with
// `go build -buildmode=plugin` (see `make plugin`); the greet
// executable opens the resulting greetshared.so at run time and
// constructs the component through the NewGreeter symbol.
package main

import (
	"github.com/mwade/greetlink/internal/greeting"
)

// NewGreeter is the constructor symbol the executable resolves from
// this artifact. The returned greeter writes to the process stdout.
func NewGreeter() greeting.Greeter {
	return greeting.NewSharedGreeter(nil)
}

func main() {
	// Required by the plugin build mode, never executed.
}
