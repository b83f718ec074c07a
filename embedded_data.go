package pardiff

import (
	_ "embed"

	"github.com/pelletier/go-toml/v2"
)

//go:embed tests.toml
var testsData []byte

// TestCase is one example rendering, keyed by name in tests.toml.
type TestCase struct {
	Description string   `toml:"description"`
	Mode        string   `toml:"mode"`
	Width       int      `toml:"width"`
	Input       string   `toml:"input"`
	Expected    string   `toml:"expected,omitempty"`
	Errors      []string `toml:"errors,omitempty"`
}

func (tc *TestCase) Options() (Options, error) {
	mode, err := ParseMode(tc.Mode)
	if err != nil {
		return Options{}, err
	}

	return Options{Mode: mode, Width: tc.Width}, nil
}

func GetTests() (map[string]*TestCase, error) {
	var tests map[string]*TestCase
	if err := toml.Unmarshal(testsData, &tests); err != nil {
		return nil, err
	}
	return tests, nil
}
