package format

import (
	"github.com/magiconair/properties"
)

// Values come back as strings; callers convert.
func propertiesDecode(data []byte) (map[string]any, error) {
	p, err := properties.Load(data, properties.UTF8)
	if err != nil {
		return nil, err
	}

	result := make(map[string]any, p.Len())
	for _, key := range p.Keys() {
		value, _ := p.Get(key)
		result[key] = value
	}

	return result, nil
}
