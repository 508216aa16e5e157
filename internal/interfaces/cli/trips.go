package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func NewTripsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "trips",
		Short: "List booked rides",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
			defer cancel()

			d, err := buildDeps(ctx)
			if err != nil {
				return err
			}
			defer d.close()

			res, err := d.list.Execute(ctx)
			if err != nil {
				return err
			}
			if res.Message != "" {
				fmt.Println(res.Message)
			}
			for _, t := range res.Trips {
				fmt.Println(t.Describe())
			}
			return nil
		},
	}
}
