package cli

import (
	"context"
	"time"

	"github.com/example/dats-assistant/internal/interfaces/web"
	"github.com/spf13/cobra"
)

func NewServerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "server",
		Short: "Start the tool API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
			defer cancel()

			d, err := buildDeps(ctx)
			if err != nil {
				return err
			}
			defer d.close()

			srv := web.New(d.cfg.HTTPAddr, d.book, d.cancel, d.list)
			return srv.ListenAndServe()
		},
	}
}
