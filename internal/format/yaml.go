package format

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

func yamlDecode(data []byte) (map[string]any, error) {
	var doc any

	err := yaml.Unmarshal(data, &doc)
	if err != nil {
		return nil, err
	}

	switch v := doc.(type) {
	case nil:
		return map[string]any{}, nil
	case map[string]any:
		return v, nil
	default:
		return nil, fmt.Errorf("yaml config requires top-level map, got %T", doc)
	}
}
