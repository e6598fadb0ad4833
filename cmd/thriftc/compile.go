package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wadey/thriftc/internal/config"
	"github.com/wadey/thriftc/internal/manifest"
	"github.com/wadey/thriftc/pkg/thriftc"
)

var (
	includeDirs  []string
	outputDir    string
	generator    string
	manifestFile string
)

// compileCmd represents the compile command
var compileCmd = &cobra.Command{
	Use:   "compile [thrift files...]",
	Short: "Compile thrift files into generated sources",
	Long: `Compile invokes the bundled thrift compiler once per source file and
merges the generated code into the output directory.

Sources can be given directly with include dirs and an output dir, or
through a YAML manifest describing one or more compilations.

Examples:
  thriftc compile -I idl -o build/gen idl/user.thrift idl/order.thrift
  thriftc compile -I idl -I shared/idl --gen java:beans -o build/gen idl/user.thrift
  thriftc compile -m thrift.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if manifestFile != "" {
			return compileManifests(manifestFile)
		}

		if len(args) == 0 {
			return fmt.Errorf("thrift files required: pass them as arguments or use -m <manifest>")
		}
		if len(includeDirs) == 0 {
			return fmt.Errorf("at least one include dir required: use -I <dir>")
		}

		return compileTarget("", args, includeDirs, generator, outputDir)
	},
}

// compileManifests compiles every manifest document in the file.
func compileManifests(path string) error {
	ms, err := manifest.LoadManifests(path)
	if err != nil {
		return fmt.Errorf("failed to load manifest: %w", err)
	}

	for _, m := range ms {
		if err := m.Validate(); err != nil {
			return err
		}
		if err := compileTarget(m.Name, m.Files, m.Includes, m.Generator, m.Output); err != nil {
			return err
		}
	}
	return nil
}

func compileTarget(name string, files, includes []string, gen, out string) error {
	if name != "" {
		fmt.Printf("🔧 Compiling %s (%d files)...\n", name, len(files))
	} else {
		fmt.Printf("🔧 Compiling %d files...\n", len(files))
	}

	result, err := thriftc.Compile(files, out, &thriftc.Options{
		IncludeDirs: includes,
		Generator:   gen,
	})
	if err != nil {
		return err
	}

	if config.Get().Verbose && result.Stdout != "" {
		fmt.Print(result.Stdout)
	}

	if result.ExitCode != 0 {
		fmt.Printf("❌ thrift exited with status %d\n", result.ExitCode)
		if result.Stderr != "" {
			fmt.Fprint(os.Stderr, result.Stderr)
		}
		thriftc.Cleanup()
		os.Exit(result.ExitCode)
	}

	fmt.Printf("✅ Generated sources in %s\n", out)
	return nil
}

func init() {
	rootCmd.AddCommand(compileCmd)
	compileCmd.Flags().StringArrayVarP(&includeDirs, "include", "I", nil, "Directory to search for imported thrift definitions (repeatable)")
	compileCmd.Flags().StringVarP(&outputDir, "output", "o", "build/gen", "Output directory for generated sources")
	compileCmd.Flags().StringVar(&generator, "gen", "", "Value for the compiler's --gen option (default from THRIFTC_GENERATOR or \"java\")")
	compileCmd.Flags().StringVarP(&manifestFile, "manifest", "m", "", "YAML manifest describing compilations")
}
