package commands

import (
	"fmt"

	"github.com/l3montree-dev/brandguard/config"
	"github.com/spf13/cobra"
)

func NewVersionCommand() *cobra.Command {
	version := cobra.Command{
		Use:   "version",
		Short: "Print the build information",
		Args:  cobra.ExactArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("version: %s\ncommit: %s\nbranch: %s\nbuild date: %s\n", config.Version, config.Commit, config.Branch, config.BuildDate)
		},
	}

	return &version
}
