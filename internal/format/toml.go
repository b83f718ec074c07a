package format

import (
	"github.com/pelletier/go-toml/v2"
)

func tomlDecode(data []byte) (map[string]any, error) {
	doc := map[string]any{}

	err := toml.Unmarshal(data, &doc)
	if err != nil {
		return nil, err
	}

	return doc, nil
}
