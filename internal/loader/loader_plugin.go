//go:build (linux || darwin) && !noplugin
// +build linux darwin
// +build !noplugin

package loader

import (
	"fmt"
	"os"
	"plugin"

	"github.com/mwade/greetlink/internal/apperr"
	"github.com/mwade/greetlink/internal/greeting"
	"github.com/mwade/greetlink/internal/logging"
)

// Load opens the shared greeter artifact at path and constructs a
// greeter through its exported constructor symbol.
func Load(path string) (greeting.Greeter, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, apperr.Wrap(apperr.ErrArtifactMissing,
			fmt.Sprintf("shared greeter artifact not found at %s", path), err)
	}

	p, err := plugin.Open(path)
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrPluginOpen,
			fmt.Sprintf("failed to open shared greeter artifact %s", path), err)
	}

	sym, err := p.Lookup(ConstructorSymbol)
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrPluginSymbol,
			fmt.Sprintf("artifact does not export %s", ConstructorSymbol), err)
	}

	construct, ok := sym.(func() greeting.Greeter)
	if !ok {
		return nil, apperr.New(apperr.ErrPluginType,
			fmt.Sprintf("%s has type %T, want func() greeting.Greeter", ConstructorSymbol, sym))
	}

	logging.Debug("loaded shared greeter artifact", map[string]interface{}{"path": path})
	return construct(), nil
}
