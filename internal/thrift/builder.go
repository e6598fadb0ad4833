package thrift

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/wadey/thriftc/internal/executor"
)

// SourceExt is the required extension for thrift source files.
const SourceExt = ".thrift"

// Builder accumulates a compiler configuration and validates each
// addition. Build produces an immutable Thrift; the builder may be
// discarded afterwards.
type Builder struct {
	executable   string
	outputDir    string
	generator    string
	pathElements map[string]struct{}
	files        map[string]struct{}
	runner       executor.Runner
}

// NewBuilder constructs a builder for the given compiler executable and
// output directory. The output directory must already exist and be a
// directory.
func NewBuilder(executable, outputDir string) (*Builder, error) {
	info, err := os.Stat(outputDir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: output directory %s is not a directory", ErrInvalidArgument, outputDir)
	}
	return &Builder{
		executable:   executable,
		outputDir:    outputDir,
		pathElements: make(map[string]struct{}),
		files:        make(map[string]struct{}),
		runner:       executor.New(),
	}, nil
}

// SetRunner replaces the process runner used by the built configuration.
// This is primarily useful for testing.
func (b *Builder) SetRunner(r executor.Runner) *Builder {
	b.runner = r
	return b
}

// AddPathElement registers a directory to be searched for imported
// thrift definitions. Duplicates collapse.
func (b *Builder) AddPathElement(dir string) error {
	abs, err := absDir(dir)
	if err != nil {
		return err
	}
	b.pathElements[abs] = struct{}{}
	return nil
}

// AddPathElements registers each directory in turn, stopping at the
// first failure.
func (b *Builder) AddPathElements(dirs []string) error {
	for _, dir := range dirs {
		if err := b.AddPathElement(dir); err != nil {
			return err
		}
	}
	return nil
}

// AddFile adds a thrift source file to be compiled. The file must exist,
// be a regular file with the .thrift extension, and live somewhere below
// a directory already registered with AddPathElement.
func (b *Builder) AddFile(file string) error {
	abs, err := filepath.Abs(file)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidArgument, file, err)
	}
	info, err := os.Stat(abs)
	if err != nil || !info.Mode().IsRegular() {
		return fmt.Errorf("%w: %s is not a regular file", ErrInvalidArgument, file)
	}
	if !strings.HasSuffix(abs, SourceExt) {
		return fmt.Errorf("%w: %s does not have the %s extension", ErrInvalidArgument, file, SourceExt)
	}
	if !b.onThriftPath(filepath.Dir(abs)) {
		return fmt.Errorf("%w: %s is not under any thrift path element", ErrInvalidState, file)
	}
	b.files[abs] = struct{}{}
	return nil
}

// AddFiles adds each source file in turn, stopping at the first failure.
func (b *Builder) AddFiles(files []string) error {
	for _, file := range files {
		if err := b.AddFile(file); err != nil {
			return err
		}
	}
	return nil
}

// SetGenerator sets the value for the compiler's --gen option,
// overwriting any previous value.
func (b *Builder) SetGenerator(generator string) error {
	if generator == "" {
		return fmt.Errorf("%w: generator must not be empty", ErrInvalidArgument)
	}
	b.generator = generator
	return nil
}

// Build freezes the accumulated configuration into an immutable Thrift.
// At least one source file and a generator are required. The returned
// value holds defensive copies; later builder mutation has no effect on
// it.
func (b *Builder) Build() (*Thrift, error) {
	if len(b.files) == 0 {
		return nil, fmt.Errorf("%w: no thrift files added", ErrInvalidState)
	}
	if b.generator == "" {
		return nil, fmt.Errorf("%w: no generator set", ErrInvalidState)
	}
	return &Thrift{
		executable:   b.executable,
		outputDir:    b.outputDir,
		generator:    b.generator,
		pathElements: sortedKeys(b.pathElements),
		files:        sortedKeys(b.files),
		runner:       b.runner,
	}, nil
}

// onThriftPath walks upward from dir, testing membership in the path
// element set at each level until the filesystem root. A registered
// ancestor at any depth is a match.
func (b *Builder) onThriftPath(dir string) bool {
	for {
		if _, ok := b.pathElements[dir]; ok {
			return true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return false
		}
		dir = parent
	}
}

func absDir(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrInvalidArgument, dir, err)
	}
	info, err := os.Stat(abs)
	if err != nil || !info.IsDir() {
		return "", fmt.Errorf("%w: %s is not a directory", ErrInvalidArgument, dir)
	}
	return abs, nil
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
