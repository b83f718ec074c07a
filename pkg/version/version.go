package version

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
)

func GetVersion() *debug.BuildInfo {
	bi, _ := debug.ReadBuildInfo()
	return bi
}

// String returns a one-line version such as "pardiff v1.2.3 (go1.24.0)".
func String() string {
	bi := GetVersion()
	if bi == nil {
		return "pardiff (unknown)"
	}

	ver := bi.Main.Version
	if ver == "" {
		ver = "(devel)"
	}

	return fmt.Sprintf("pardiff %s (%s)", ver, bi.GoVersion)
}

// Write writes the full build info to w.
func Write(w io.Writer) error {
	bi := GetVersion()
	if bi == nil {
		return fmt.Errorf("ReadBuildInfo() failed") //nolint:goerr113
	}

	_, err := fmt.Fprintf(w, "%s", bi)
	return err
}

// PrintVersion prints build info and exits when requested is true or
// PARDIFF_VERSION is set. Otherwise it returns.
func PrintVersion(requested bool) {
	if !requested && os.Getenv("PARDIFF_VERSION") == "" {
		return
	}

	err := Write(os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}

	os.Exit(0)
}
