//go:build noplugin || (!linux && !darwin)
// +build noplugin !linux,!darwin

package loader

import (
	"github.com/mwade/greetlink/internal/greeting"
	"github.com/mwade/greetlink/internal/logging"
)

// Load constructs the shared greeter in process. This build has no
// plugin support, so the component is compiled into the executable
// like the static one and path is ignored.
func Load(path string) (greeting.Greeter, error) {
	logging.Debug("plugin loading unavailable in this build, constructing shared greeter in process",
		map[string]interface{}{"path": path})
	return greeting.NewSharedGreeter(nil), nil
}
