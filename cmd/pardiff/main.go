package main

import (
	"fmt"
	"os"

	"github.com/gopatchy/pardiff"
	"github.com/gopatchy/pardiff/internal/config"
	"github.com/gopatchy/pardiff/pkg/log"
	"github.com/gopatchy/pardiff/pkg/version"
	"github.com/jessevdk/go-flags"
)

type options struct {
	Context  bool   `short:"C" long:"context" description:"input is a context diff (diff -c / diff -C n)"`
	Width    *int   `short:"w" long:"width" description:"output width in columns (default: terminal width, or 80)"`
	Config   string `long:"config" env:"PARDIFF_CONFIG" description:"config file (.toml, .yaml, .json or .properties)"`
	RootPath string `short:"r" long:"root-path" description:"restrict file access to this root directory" default:"/"`
	Verbose  bool   `long:"verbose" description:"enable verbose logging"`
	Version  bool   `short:"v" long:"version" description:"print version and exit"`

	Positional struct {
		InputPaths []flags.Filename `positional-arg-name:"inputPath" required:"0" description:"diff output to render; - for stdin"`
	} `positional-args:"yes"`
}

func main() {
	opts := &options{}

	fp := flags.NewParser(opts, flags.Default)
	fp.LongDescription = `
pardiff renders diff output as two side-by-side columns.

Input is read from the named files, or stdin if there are none. By default it
must be in the normal diff format; with -C it must be a context diff.

The width comes from -w, then DIFFER_WIDTH or DIFFER_COLS (context mode only),
then the config file, then the terminal, then 80.

Related tools:
* pdiff
* pardiff-mcp`

	_, err := fp.Parse()
	if err != nil {
		if !flags.WroteHelp(err) {
			fp.WriteHelp(os.Stderr)
		}
		os.Exit(1)
	}

	version.PrintVersion(opts.Version)

	if opts.Verbose {
		log.Debug = true
	}

	if opts.Width != nil {
		err = pardiff.CheckWidth(*opts.Width)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", err)
			fp.WriteHelp(os.Stderr)
			os.Exit(1)
		}
	}

	cfg := &config.Config{}

	if opts.Config != "" {
		cfg, err = config.LoadFile(opts.Config)
		if err != nil {
			fatal(err)
		}
	}

	mode := pardiff.ModeStandard
	if opts.Context || cfg.Context {
		mode = pardiff.ModeContext
	}

	explicit := 0
	if opts.Width != nil {
		explicit = *opts.Width
	}

	paths := make([]string, len(opts.Positional.InputPaths))
	for i, path := range opts.Positional.InputPaths {
		paths[i] = string(path)
	}

	root, err := os.OpenRoot(opts.RootPath)
	if err != nil {
		fatal(err)
	}
	defer root.Close()

	err = pardiff.RenderFiles(root.FS(), paths, opts.RootPath, "", os.Stdin, os.Stdout, pardiff.Options{
		Mode:  mode,
		Width: pardiff.OutputWidth(explicit, mode, cfg.Width),
	})
	if err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}
