// Package config loads the optional pardiff config file.
package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/gopatchy/pardiff/internal/format"
	"github.com/gopatchy/pardiff/internal/fsys"
	"github.com/gopatchy/pardiff/internal/layout"
	"github.com/gopatchy/pardiff/internal/utils"
	"github.com/gopatchy/pardiff/pkg/errors"
	"github.com/gopatchy/pardiff/pkg/log"
)

// Config holds defaults that command line flags override.
type Config struct {
	// Width is the output width; 0 means unset.
	Width int

	// Context makes context mode the default.
	Context bool
}

// LoadFile reads a config file from the local filesystem.
func LoadFile(path string) (*Config, error) {
	resolved, err := utils.ResolvePath(path, "/", "")
	if err != nil {
		return nil, fmt.Errorf("%s: %v (%w)", path, err, errors.ErrConfig)
	}

	return Load(os.DirFS("/"), resolved)
}

// Load reads the config file at path from fx. The format is chosen by the
// file extension.
func Load(fx fs.FS, path string) (*Config, error) {
	f, err := format.Get(utils.Ext(path))
	if err != nil {
		return nil, err
	}

	data, err := fsys.New(fx).ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %v (%w)", path, err, errors.ErrConfig)
	}

	doc, err := f.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %v (%w)", path, err, errors.ErrConfig)
	}

	cfg, err := fromMap(doc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	log.Debugf("config: loaded %s: %+v", path, *cfg)

	return cfg, nil
}

func fromMap(doc map[string]any) (*Config, error) {
	cfg := &Config{}

	for key, val := range doc {
		switch key {
		case "width":
			width, err := toInt(val)
			if err != nil {
				return nil, fmt.Errorf("width: %v (%w)", err, errors.ErrConfig)
			}

			if width <= 0 || width > layout.MaxWidth {
				log.Debugf("config: ignoring width %d", width)
				continue
			}

			cfg.Width = width

		case "context":
			ctx, err := toBool(val)
			if err != nil {
				return nil, fmt.Errorf("context: %v (%w)", err, errors.ErrConfig)
			}

			cfg.Context = ctx

		default:
			log.Debugf("config: ignoring unknown key %q", key)
		}
	}

	return cfg, nil
}

func toInt(val any) (int, error) {
	switch v := val.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		if v != float64(int(v)) {
			return 0, fmt.Errorf("%v is not an integer", v)
		}
		return int(v), nil
	case json.Number:
		return toInt(string(v))
	case string:
		return strconv.Atoi(strings.TrimSpace(v))
	default:
		return 0, fmt.Errorf("unsupported type %T", val)
	}
}

func toBool(val any) (bool, error) {
	switch v := val.(type) {
	case bool:
		return v, nil
	case string:
		return strconv.ParseBool(strings.TrimSpace(v))
	default:
		return false, fmt.Errorf("unsupported type %T", val)
	}
}
