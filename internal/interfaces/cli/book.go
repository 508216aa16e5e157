package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/example/dats-assistant/internal/application/usecases"
	"github.com/spf13/cobra"
)

func NewBookCmd() *cobra.Command {
	var date, pickupTime, from, to, purpose string
	var aids []string
	c := &cobra.Command{
		Use:   "book",
		Short: "Book a ride",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
			defer cancel()

			d, err := buildDeps(ctx)
			if err != nil {
				return err
			}
			defer d.close()

			res, err := d.book.Execute(ctx, usecases.BookTripParams{
				Date:           date,
				Time:           pickupTime,
				PickupAddress:  from,
				DropoffAddress: to,
				Purpose:        purpose,
				MobilityAids:   aids,
			})
			if err != nil {
				return err
			}
			fmt.Println(res.Message)
			return nil
		},
	}
	c.Flags().StringVar(&date, "date", "", `pickup date ("tomorrow", "friday", "2026-01-13")`)
	c.Flags().StringVar(&pickupTime, "time", "", `pickup time ("09:30" or "9:30 AM")`)
	c.Flags().StringVar(&from, "from", "", "pickup address")
	c.Flags().StringVar(&to, "to", "", "dropoff address")
	c.Flags().StringVar(&purpose, "purpose", "", "trip purpose (optional)")
	c.Flags().StringSliceVar(&aids, "aid", nil, "mobility aid, repeatable (optional)")
	_ = c.MarkFlagRequired("date")
	_ = c.MarkFlagRequired("time")
	_ = c.MarkFlagRequired("from")
	_ = c.MarkFlagRequired("to")
	return c
}
