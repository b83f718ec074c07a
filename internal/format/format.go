// Package format decodes config files by extension.
package format

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gopatchy/pardiff/pkg/errors"
)

// Format decodes one document into a top-level map
type Format struct {
	Decode func([]byte) (map[string]any, error)
}

var formatByExtension = map[string]Format{
	"json":       {Decode: jsonDecode},
	"toml":       {Decode: tomlDecode},
	"yaml":       {Decode: yamlDecode},
	"yml":        {Decode: yamlDecode},
	"properties": {Decode: propertiesDecode},
}

// Get retrieves a format by extension from the registry
func Get(name string) (*Format, error) {
	ft, found := formatByExtension[name]
	if !found {
		return nil, fmt.Errorf("%q (want one of %s): %w", name, strings.Join(Extensions(), ", "), errors.ErrUnknownFormat)
	}

	return &ft, nil
}

// Extensions returns all supported format extensions, sorted
func Extensions() []string {
	exts := make([]string, 0, len(formatByExtension))
	for ext := range formatByExtension {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}
