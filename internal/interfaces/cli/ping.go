package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func NewPingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Verify DATS credentials with a login round-trip",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			d, err := buildDeps(ctx)
			if err != nil {
				return err
			}
			defer d.close()

			if err := d.client.Login(ctx); err != nil {
				return err
			}
			fmt.Printf("%s: ok\n", d.client.Name())
			return nil
		},
	}
}
