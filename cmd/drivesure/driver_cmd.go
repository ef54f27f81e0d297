package main

import (
	"fmt"

	"github.com/frontandrew/drivesure/internal/domain"
	"github.com/spf13/cobra"
	qrcode "github.com/skip2/go-qrcode"
)

func newDashboardCmd(get func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show the certificate status, profile and notifications",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := get()
			account, err := a.currentDriver(cmd.Context())
			if err != nil {
				return err
			}

			dashboard, err := a.driver.Dashboard(cmd.Context(), account.ID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			profile := dashboard.Profile

			title(out, a.t("roadworthinessCertificate"))
			if latest := dashboard.LatestInspection; latest != nil {
				field(out, a.t("status"), badge(string(latest.Status)))
				field(out, a.t("expires"), latest.Expiry)
			} else {
				field(out, a.t("status"), badge(string(domain.DocumentMissing)))
			}
			fmt.Fprintln(out)

			title(out, a.t("driverInfo"))
			field(out, a.t("name"), profile.Name)
			field(out, "Driver ID", profile.DriverID)
			field(out, a.t("phone"), profile.Phone)
			fmt.Fprintln(out)

			title(out, a.t("vehicleInfo"))
			field(out, a.t("plateNumber"), profile.Vehicle.PlateNumber)
			field(out, a.t("vin"), profile.Vehicle.VIN)
			field(out, "Vehicle", profile.Vehicle.Title())
			fmt.Fprintln(out)

			if dashboard.HasUnpaidFines {
				fmt.Fprintf(out, "%s %s\n\n", badge(string(domain.FineUnpaid)), a.t("myFines"))
			}

			title(out, a.t("notifications"))
			for _, n := range dashboard.Notifications {
				marker := " "
				if !n.Read {
					marker = "•"
				}
				fmt.Fprintf(out, "  %s %s (%s)\n    %s\n", marker, n.Title, n.Date, n.Message)
			}
			return nil
		},
	}
}

func newQRCmd(get func() *app) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "qr",
		Short: "Show the QR code to present to an officer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := get()
			if err := a.requireOnline(); err != nil {
				return err
			}
			account, err := a.currentDriver(cmd.Context())
			if err != nil {
				return err
			}

			payload, err := a.driver.QRPayload(cmd.Context(), account.ID)
			if err != nil {
				return err
			}
			text, err := payload.Encode()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if raw {
				fmt.Fprintln(out, text)
				return nil
			}

			code, err := qrcode.New(text, qrcode.Medium)
			if err != nil {
				return fmt.Errorf("failed to render QR code: %w", err)
			}
			fmt.Fprint(out, code.ToSmallString(false))
			fmt.Fprintln(out, a.t("showToOfficer"))
			field(out, a.t("plateNumber"), payload.PlateNumber)
			field(out, a.t("expires"), payload.ExpiryDate)
			return nil
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "print the encoded payload instead of the QR code")
	return cmd
}

func newDocumentsCmd(get func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "documents",
		Short: "List vehicle documents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := get()
			account, err := a.currentDriver(cmd.Context())
			if err != nil {
				return err
			}

			documents, err := a.driver.Documents(cmd.Context(), account.ID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			title(out, a.t("myDocuments"))
			for _, d := range documents {
				fmt.Fprintf(out, "  %-16s %s  %s - %s\n", d.Name, badge(string(d.Status)), d.IssueDate, d.ExpiryDate)
			}
			return nil
		},
	}
}

func newFinesCmd(get func() *app) *cobra.Command {
	var unpaidOnly bool

	cmd := &cobra.Command{
		Use:   "fines",
		Short: "List traffic fines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := get()
			account, err := a.currentDriver(cmd.Context())
			if err != nil {
				return err
			}

			var fines []domain.Fine
			if unpaidOnly {
				fines, err = a.driver.UnpaidFines(cmd.Context(), account.ID)
			} else {
				fines, err = a.driver.Fines(cmd.Context(), account.ID)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			title(out, a.t("myFines"))
			if len(fines) == 0 {
				fmt.Fprintln(out, "  "+a.t("noFines"))
				return nil
			}
			for _, f := range fines {
				fmt.Fprintf(out, "  [%s] %s  %s  %s (%s)\n", f.ID, badge(string(f.Status)), naira(f.Amount), f.Violation, f.Date)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&unpaidOnly, "unpaid", false, "show only unpaid fines")
	return cmd
}

func newPayCmd(get func() *app) *cobra.Command {
	return &cobra.Command{
		Use:     "pay <fine-id>",
		Short:   "Pay a fine",
		Example: "  drivesure pay fine1",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := get()
			if err := a.requireOnline(); err != nil {
				return err
			}
			account, err := a.currentDriver(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), a.t("paying"))
			result, err := a.driver.PayFine(cmd.Context(), account.ID, args[0])
			if err != nil {
				return err
			}
			if !result.Success {
				return fmt.Errorf("%w: %s", domain.ErrFineNotFound, args[0])
			}

			fmt.Fprintf(cmd.OutOrStdout(), "  %s %s\n", args[0], badge(string(domain.FinePaid)))
			return nil
		},
	}
}
