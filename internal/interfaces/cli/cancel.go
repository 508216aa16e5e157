package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/example/dats-assistant/internal/application/usecases"
	"github.com/spf13/cobra"
)

func NewCancelCmd() *cobra.Command {
	var bookingID, date, pickupTime string
	c := &cobra.Command{
		Use:   "cancel",
		Short: "Cancel a booked ride",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
			defer cancel()

			d, err := buildDeps(ctx)
			if err != nil {
				return err
			}
			defer d.close()

			res, err := d.cancel.Execute(ctx, usecases.CancelTripParams{
				BookingID: bookingID,
				Date:      date,
				Time:      pickupTime,
			})
			if err != nil {
				return err
			}
			fmt.Println(res.Message)
			return nil
		},
	}
	c.Flags().StringVar(&bookingID, "booking", "", "booking ID to cancel")
	c.Flags().StringVar(&date, "date", "", "the trip's scheduled date")
	c.Flags().StringVar(&pickupTime, "time", "", "the trip's scheduled pickup time")
	_ = c.MarkFlagRequired("booking")
	_ = c.MarkFlagRequired("date")
	_ = c.MarkFlagRequired("time")
	return c
}
