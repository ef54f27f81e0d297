package main

import (
	"fmt"
	"strconv"

	"github.com/frontandrew/drivesure/internal/usecase/booking"
	"github.com/spf13/cobra"
)

func newCentersCmd(get func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "centers",
		Short: "List LACVIS inspection centers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := get()
			centers, err := a.booking.FetchInspectionCenters(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			title(out, a.t("selectCenter"))
			for _, c := range centers {
				fmt.Fprintf(out, "  %s. %s\n     %s\n", c.ID, c.Name, labelStyle.Render(c.Address))
			}
			return nil
		},
	}
}

func newBookCmd(get func() *app) *cobra.Command {
	req := &booking.BookingRequest{}

	cmd := &cobra.Command{
		Use:   "book",
		Short: "Book a roadworthiness inspection",
		Example: `  drivesure book --center 3 --date 2026-11-02 --time 10:00
  drivesure book --center "LACVIS, Epe" --date 2026-11-02`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := get()
			if err := a.requireOnline(); err != nil {
				return err
			}
			account, err := a.currentDriver(cmd.Context())
			if err != nil {
				return err
			}

			// Центр можно указать номером из `drivesure centers`
			if _, err := strconv.Atoi(req.Center); err == nil {
				centers, err := a.booking.FetchInspectionCenters(cmd.Context())
				if err != nil {
					return err
				}
				for _, c := range centers {
					if c.ID == req.Center {
						req.Center = c.Name
						break
					}
				}
			}

			result, err := a.booking.BookInspection(cmd.Context(), account.ID, req)
			if err != nil {
				return err
			}
			if !result.Success {
				return fmt.Errorf("no driver data for %s", account.Email)
			}

			out := cmd.OutOrStdout()
			title(out, a.t("bookingConfirmed"))
			fmt.Fprintln(out, "  "+a.t("bookingSuccessMsg"))
			field(out, a.t("selectCenter"), req.Center)
			field(out, a.t("selectDate"), req.Date)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Center, "center", "", "center name or number")
	cmd.Flags().StringVar(&req.Date, "date", "", "inspection date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&req.Time, "time", "", "preferred time (HH:MM)")
	_ = cmd.MarkFlagRequired("center")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}
