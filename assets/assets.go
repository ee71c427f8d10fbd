// Package assets bundles the JSON Schemas used for the optional conformance
// pass of the validators.
package assets

import (
	"embed"

	"github.com/pkg/errors"
)

//go:embed *.schema.json
var files embed.FS

// Asset returns the contents of the named bundled file.
func Asset(name string) ([]byte, error) {
	content, err := files.ReadFile(name)
	if err != nil {
		return nil, errors.Wrapf(err, "asset %s", name)
	}

	return content, nil
}
