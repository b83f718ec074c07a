package format

import (
	"bytes"
	"encoding/json"
	"fmt"
)

func jsonDecode(data []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc any

	err := dec.Decode(&doc)
	if err != nil {
		return nil, err
	}

	obj, ok := doc.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("json config requires top-level object, got %T", doc)
	}

	return obj, nil
}
