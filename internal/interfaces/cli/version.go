package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Overridden via -ldflags at build time.
var (
	Version   = "dev"
	CommitSHA = "unknown"
	BuildDate = "unknown"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version info",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("datsassist %s (commit=%s, built=%s)\n", Version, CommitSHA, BuildDate)
		},
	}
}
