package cli

import (
	"github.com/spf13/cobra"
)

func NewRoot() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "datsassist",
		Short: "DATS ride assistant",
	}
	cmd.AddCommand(NewServerCmd())
	cmd.AddCommand(NewBookCmd())
	cmd.AddCommand(NewCancelCmd())
	cmd.AddCommand(NewTripsCmd())
	cmd.AddCommand(NewPingCmd())
	cmd.AddCommand(newVersionCmd())
	return cmd
}
