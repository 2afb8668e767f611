// Package loader resolves the shared greeter component at run time.
// On platforms with plugin support the component comes from a
// separately built artifact; elsewhere an in-process fallback is
// compiled in (see loader_plugin.go / loader_inprocess.go).
package loader

import (
	"os"
	"path/filepath"
)

// ArtifactName is the file name of the shared greeter artifact the
// executable looks for beside itself.
const ArtifactName = "greetshared.so"

// ConstructorSymbol is the symbol the shared artifact must export:
// a func() greeting.Greeter.
const ConstructorSymbol = "NewGreeter"

// DefaultPath returns the expected location of the shared greeter
// artifact: ArtifactName in the executable's directory.
func DefaultPath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Join(filepath.Dir(exe), ArtifactName), nil
}
