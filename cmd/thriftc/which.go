package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wadey/thriftc/internal/config"
	"github.com/wadey/thriftc/internal/platform"
)

// whichCmd represents the which command
var whichCmd = &cobra.Command{
	Use:   "which",
	Short: "Print the embedded compiler identifier for this host",
	RunE: func(cmd *cobra.Command, args []string) error {
		platformName, arch := platform.Host()
		id, err := platform.ResolveExecutable(platformName, arch, config.Get().ToolVersion)
		if err != nil {
			return err
		}
		fmt.Println(id)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(whichCmd)
}
