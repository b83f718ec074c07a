package pardiff_test

import (
	"flag"
	"strings"
	"testing"

	"github.com/gopatchy/pardiff"
)

var (
	testFilter  = flag.String("test.filter", "", "Run only specified tests from tests.toml (comma-separated list)")
	testExclude = flag.String("test.exclude", "", "Exclude specified tests from tests.toml (comma-separated list)")
)

func getFilteredTests(t *testing.T) (map[string]*pardiff.TestCase, map[string]bool, map[string]bool) {
	tests, err := pardiff.GetTests()
	if err != nil {
		t.Fatalf("Failed to get tests: %v", err)
	}

	return tests, parseTestList(t, tests, *testFilter), parseTestList(t, tests, *testExclude)
}

func parseTestList(t *testing.T, tests map[string]*pardiff.TestCase, list string) map[string]bool {
	names := map[string]bool{}

	for _, name := range strings.Split(list, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		if _, ok := tests[name]; !ok {
			t.Fatalf("Test %q not found in tests.toml", name)
		}

		names[name] = true
	}

	return names
}

func skipTest(name string, filterTests, excludeTests map[string]bool) bool {
	if len(filterTests) > 0 && !filterTests[name] {
		return true
	}

	return excludeTests[name]
}

func checkErrors(t *testing.T, expected []string, err error, output string) {
	t.Helper()

	if err == nil {
		t.Fatalf("Expected error containing one of %v, but got no error", expected)
	}

	for _, expectedError := range expected {
		if strings.Contains(err.Error(), expectedError) || strings.Contains(output, expectedError) {
			return
		}
	}

	t.Fatalf("Expected error containing one of %v, but got: %v\nOutput: %s", expected, err, output)
}
