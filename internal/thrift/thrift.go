// Package thrift provides an invokable configuration of the thrift
// compiler: a validating builder, command construction, and the per-file
// compile loop that relocates generated sources into the output
// directory.
package thrift

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/wadey/thriftc/internal/executor"
	"github.com/wadey/thriftc/internal/output"
)

// Version is the bundled thrift compiler version.
const Version = "0.5.0"

// Thrift is an immutable, invokable compiler configuration produced by
// Builder.Build.
type Thrift struct {
	executable   string
	outputDir    string
	generator    string
	pathElements []string
	files        []string
	runner       executor.Runner

	stdout string
	stderr string
}

// GeneratedDirName returns the conventional subdirectory the compiler
// emits generated sources into for a --gen value: "gen-java" for "java"
// and for option-carrying values like "java:beans".
func GeneratedDirName(generator string) string {
	lang, _, _ := strings.Cut(generator, ":")
	return "gen-" + lang
}

// Compile invokes the compiler once per source file and returns the
// first nonzero exit status, or 0 once every file has compiled. After
// each successful invocation the generated subdirectory is merged into
// the output directory. A nonzero exit halts the loop; remaining files
// are not processed and nothing is relocated for the failed file. An
// error is returned only when the process cannot be launched or
// relocation fails.
func (t *Thrift) Compile() (int, error) {
	for _, file := range t.files {
		res, err := t.runner.Run(t.executable, t.buildCommand(file))
		t.stdout = res.Stdout
		t.stderr = res.Stderr
		if err != nil {
			return 0, err
		}
		if res.ExitCode != 0 {
			return res.ExitCode, nil
		}

		genDir := filepath.Join(t.outputDir, GeneratedDirName(t.generator))
		if info, err := os.Stat(genDir); err == nil && info.IsDir() {
			if err := output.Relocate(genDir, t.outputDir); err != nil {
				return 0, fmt.Errorf("failed to relocate generated sources for %s: %w", file, err)
			}
		}
	}
	return 0, nil
}

// Output returns the captured stdout of the most recent invocation.
func (t *Thrift) Output() string {
	return t.stdout
}

// Errors returns the captured stderr of the most recent invocation.
func (t *Thrift) Errors() string {
	return t.stderr
}
