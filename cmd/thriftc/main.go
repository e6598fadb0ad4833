package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/wadey/thriftc/pkg/thriftc"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "thriftc",
	Short: "Compile thrift IDL files with the bundled thrift compiler",
	Long: `thriftc invokes the thrift compiler bundled with this distribution,
one process per source file, and merges the generated sources into the
output directory.

Features:
  - Embedded compiler binaries per platform, no thrift install needed
  - Validated thrift path: every source must sit under an include dir
  - YAML build manifests for multi-target compilations

Examples:
  thriftc compile -I idl -o build/gen idl/user.thrift
  thriftc compile -m thrift.yaml
  thriftc which`,
}

func main() {
	defer thriftc.Cleanup()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
