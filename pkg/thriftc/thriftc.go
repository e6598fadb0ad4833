// Package thriftc provides a public API for invoking the bundled thrift
// compiler.
//
// The compiler binary for the host platform is embedded in the
// distribution, materialized to a temporary file on first use, and
// invoked once per source file. Generated sources land directly in the
// output directory.
//
// Basic usage:
//
//	result, err := thriftc.Compile([]string{"idl/user.thrift"}, "build/gen", &thriftc.Options{
//	    IncludeDirs: []string{"idl"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if result.ExitCode != 0 {
//	    fmt.Println(result.Stderr)
//	}
package thriftc

import (
	"fmt"
	"os"

	"github.com/wadey/thriftc/internal/binaries"
	"github.com/wadey/thriftc/internal/config"
	"github.com/wadey/thriftc/internal/platform"
	"github.com/wadey/thriftc/internal/thrift"
)

// Options configures a compilation.
type Options struct {
	// IncludeDirs are the directories searched for imported thrift
	// definitions. Every compiled file must live under one of them.
	IncludeDirs []string

	// Generator is the value for the compiler's --gen option.
	// Defaults to the configured generator ("java" unless overridden
	// via THRIFTC_GENERATOR).
	Generator string

	// Version selects which bundled compiler version to use.
	// Defaults to the configured tool version.
	Version string

	// Executable is an external compiler path. When set, the embedded
	// binary is bypassed entirely.
	Executable string
}

// Result holds the outcome of a compilation.
type Result struct {
	// ExitCode is the compiler's exit status. Zero means every file
	// compiled; a nonzero value is the status of the first failing file.
	ExitCode int

	// Stdout is the captured standard output of the most recent
	// compiler invocation.
	Stdout string

	// Stderr is the captured standard error of the most recent
	// compiler invocation.
	Stderr string
}

// Compile compiles the given thrift files into outputDir.
//
// The output directory is created if it does not exist. A nonzero
// compiler exit is reported through Result.ExitCode, not as an error;
// errors are reserved for configuration problems, launch failures, and
// relocation failures.
func Compile(files []string, outputDir string, opts *Options) (*Result, error) {
	if opts == nil {
		opts = &Options{}
	}
	cfg := config.Get()
	generator := opts.Generator
	if generator == "" {
		generator = cfg.Generator
	}
	version := opts.Version
	if version == "" {
		version = cfg.ToolVersion
	}

	executable := opts.Executable
	if executable == "" {
		executable = cfg.Executable
	}
	if executable == "" {
		platformName, arch := platform.Host()
		id, err := platform.ResolveExecutable(platformName, arch, version)
		if err != nil {
			return nil, err
		}
		executable, err = binaries.Materialize(id)
		if err != nil {
			return nil, err
		}
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output dir: %w", err)
	}

	b, err := thrift.NewBuilder(executable, outputDir)
	if err != nil {
		return nil, err
	}
	if err := b.AddPathElements(opts.IncludeDirs); err != nil {
		return nil, err
	}
	if err := b.AddFiles(files); err != nil {
		return nil, err
	}
	if err := b.SetGenerator(generator); err != nil {
		return nil, err
	}

	built, err := b.Build()
	if err != nil {
		return nil, err
	}

	code, err := built.Compile()
	if err != nil {
		return nil, err
	}

	return &Result{
		ExitCode: code,
		Stdout:   built.Output(),
		Stderr:   built.Errors(),
	}, nil
}

// Cleanup removes any compiler binaries materialized to temporary files.
// Call it once at process exit.
func Cleanup() {
	binaries.Cleanup()
}
